package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/datatypes"
)

func TestStamp_IsRFC3339(t *testing.T) {
	stamp := Stamp()
	_, err := time.Parse(time.RFC3339, stamp)
	assert.NoError(t, err)
}

func TestProjectColleagues_RoundTrip(t *testing.T) {
	var p Project
	p.SetColleagues([]string{"ada@test.com", "grace@test.com"})

	assert.Equal(t, []string{"ada@test.com", "grace@test.com"}, p.GetColleagues())
}

func TestProjectColleagues_NilAndAbsent(t *testing.T) {
	var p Project
	assert.Equal(t, []string{}, p.GetColleagues())

	p.SetColleagues(nil)
	assert.Equal(t, []string{}, p.GetColleagues())
	assert.Equal(t, "[]", string(p.Colleagues))

	p.Colleagues = datatypes.JSON("null")
	assert.Equal(t, []string{}, p.GetColleagues())
}

func TestDecodeList(t *testing.T) {
	items := DecodeList(datatypes.JSON(`[{"degree":"PhD","year":"2010"}]`))
	require.Len(t, items, 1)
	assert.Equal(t, "PhD", items[0]["degree"])

	assert.Empty(t, DecodeList(nil))
	assert.Empty(t, DecodeList(datatypes.JSON("null")))
	assert.Empty(t, DecodeList(datatypes.JSON("not json")))
}

func TestEncodeList(t *testing.T) {
	assert.Equal(t, "[]", string(EncodeList(nil)))

	encoded := EncodeList([]map[string]interface{}{{"title": "Best Paper"}})
	assert.JSONEq(t, `[{"title":"Best Paper"}]`, string(encoded))
}
