package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"scholar_backend/internal/models"
	"scholar_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarEvent_BooleansRoundTrip(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	owner := helpers.UniqueEmail("calendar")

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/events", map[string]interface{}{
		"userEmail": owner,
		"title":     "Conference keynote",
		"eventDate": "2026-10-01",
		"isAllDay":  true,
		"isOnline":  false,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)

	var created models.CalendarEvent
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.True(t, created.IsAllDay)
	assert.False(t, created.IsOnline)
	// Booleans serialize as JSON true/false, not strings.
	assert.Contains(t, body, `"isAllDay":true`)
	assert.Contains(t, body, `"isOnline":false`)
}

func TestCalendarEvent_CreateAppliesDefaults(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/events", map[string]interface{}{
		"userEmail": helpers.UniqueEmail("cal_def"),
		"title":     "Office hours",
		"eventDate": "2026-09-10",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)

	var created models.CalendarEvent
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "Work", created.Category)
	assert.Equal(t, 15, created.Reminder)
	assert.Equal(t, "none", created.Recurrence)
	assert.Equal(t, "busy", created.ShowAs)
	assert.Equal(t, "normal", created.Priority)
	assert.Equal(t, created.CreatedDate, created.ModifiedDate)
}

func TestCalendarEvent_OrderedByDateThenTime(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	owner := helpers.UniqueEmail("cal_order")
	for _, ev := range []struct{ title, date, start string }{
		{"Afternoon", "2026-09-02", "14:00"},
		{"NextDay", "2026-09-03", "09:00"},
		{"Morning", "2026-09-02", "09:00"},
	} {
		_, body := ts.SendRequest(t, tx, http.MethodPost, "/events", map[string]interface{}{
			"userEmail": owner,
			"title":     ev.title,
			"eventDate": ev.date,
			"startTime": ev.start,
		})
		require.Contains(t, body, ev.title)
	}

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/events/"+owner, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var events []models.CalendarEvent
	require.NoError(t, json.Unmarshal([]byte(body), &events))
	require.Len(t, events, 3)
	assert.Equal(t, "Morning", events[0].Title)
	assert.Equal(t, "Afternoon", events[1].Title)
	assert.Equal(t, "NextDay", events[2].Title)
}

func TestCalendarEvent_UpdateRefreshesModifiedDate(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	owner := helpers.UniqueEmail("cal_upd")
	_, body := ts.SendRequest(t, tx, http.MethodPost, "/events", map[string]interface{}{
		"userEmail":   owner,
		"title":       "Draft",
		"eventDate":   "2026-09-20",
		"createdDate": "2024-01-01T00:00:00Z",
	})
	var created models.CalendarEvent
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	res, body := ts.SendRequest(t, tx, http.MethodPut, fmt.Sprintf("/events/%d", created.ID), map[string]interface{}{
		"userEmail": owner,
		"title":     "Final",
		"eventDate": "2026-09-21",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)
	assert.Contains(t, body, `"updated":1`)

	var stored models.CalendarEvent
	require.NoError(t, tx.First(&stored, created.ID).Error)
	assert.Equal(t, "Final", stored.Title)
	assert.NotEqual(t, created.ModifiedDate, stored.ModifiedDate)
}

func TestCalendarEvent_LegacyAlias(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	owner := helpers.UniqueEmail("cal_alias")
	res, body := ts.SendRequest(t, tx, http.MethodPost, "/calendar_events", map[string]interface{}{
		"userEmail": owner,
		"title":     "Alias event",
		"eventDate": "2026-09-25",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)

	res, aliasBody := ts.SendRequest(t, tx, http.MethodGet, "/calendar_events/"+owner, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	_, canonicalBody := ts.SendRequest(t, tx, http.MethodGet, "/events/"+owner, nil)
	assert.JSONEq(t, canonicalBody, aliasBody)
}
