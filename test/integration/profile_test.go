package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"scholar_backend/internal/services/dto"
	"scholar_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_GetMissingReturnsNull(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/profile/"+helpers.UniqueEmail("noprofile"), nil)

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "null", body)
}

func TestProfile_UpsertCreatesThenUpdates(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := helpers.UniqueEmail("profile")

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/profile", map[string]interface{}{
		"userEmail":   email,
		"fullName":    "Dr. Grace Hopper",
		"designation": "Professor",
		"institution": "Navy Research Lab",
		"degrees": []map[string]interface{}{
			{"degree": "PhD Mathematics", "institution": "Yale", "year": "1934"},
		},
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)

	var first dto.ProfileResponse
	require.NoError(t, json.Unmarshal([]byte(body), &first))
	assert.Equal(t, "Dr. Grace Hopper", first.FullName)
	require.Len(t, first.Degrees, 1)
	assert.NotEmpty(t, first.CreatedDate)

	// Second upsert for the same email replaces fields and preserves
	// the original created date.
	res, body = ts.SendRequest(t, tx, http.MethodPost, "/profile", map[string]interface{}{
		"userEmail":   email,
		"fullName":    "Grace Hopper",
		"designation": "Rear Admiral",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)

	var second dto.ProfileResponse
	require.NoError(t, json.Unmarshal([]byte(body), &second))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Rear Admiral", second.Designation)
	assert.Equal(t, first.CreatedDate, second.CreatedDate)
}

func TestProfile_UpsertRequiresEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/profile", map[string]interface{}{
		"fullName": "Anonymous",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "error")
}

func TestProfile_MissingListsDecodeEmpty(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := helpers.UniqueEmail("emptylists")
	res, body := ts.SendRequest(t, tx, http.MethodPost, "/profile", map[string]interface{}{
		"userEmail": email,
		"fullName":  "Minimal Profile",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)

	var resp dto.ProfileResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.NotNil(t, resp.Degrees)
	assert.Empty(t, resp.Degrees)
	assert.Contains(t, body, `"grants":[]`)
}

func TestProfile_Delete(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := helpers.UniqueEmail("profile_del")
	ts.SendRequest(t, tx, http.MethodPost, "/profile", map[string]interface{}{
		"userEmail": email,
		"fullName":  "To Delete",
	})

	res, body := ts.SendRequest(t, tx, http.MethodDelete, "/profile/"+email, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"deleted":1`)

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/profile/"+email, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "null", body)
}

func TestGenerateResume_RendersProfileSections(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := helpers.UniqueEmail("resume")
	ts.SendRequest(t, tx, http.MethodPost, "/profile", map[string]interface{}{
		"userEmail":        email,
		"fullName":         "Dr. Resume Subject",
		"designation":      "Associate Professor",
		"researchKeywords": "databases, distributed systems",
		"degrees": []map[string]interface{}{
			{"degree": "PhD Computer Science", "institution": "MIT", "year": "2010"},
		},
		"awards": []map[string]interface{}{
			{"title": "Best Paper", "year": "2018"},
		},
	})

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/generate-resume/"+email, nil)

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "Dr. Resume Subject")
	assert.Contains(t, body, "PhD Computer Science")
	assert.Contains(t, body, "Best Paper")
	assert.Contains(t, body, "distributed systems")
}

func TestGenerateResume_MissingProfileRendersFallback(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/generate-resume/"+helpers.UniqueEmail("noresume"), nil)

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "Profile Not Found")
}
