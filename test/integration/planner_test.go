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

func TestIdea_CrudFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	owner := helpers.UniqueEmail("idea")

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/ideas", map[string]interface{}{
		"user_email": owner,
		"title":      "Replication study",
		"content":    "Re-run the 2019 experiment",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)

	var created models.Idea
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "general", created.Category)
	assert.NotEmpty(t, created.CreatedDate)

	path := fmt.Sprintf("/ideas/%d", created.ID)
	res, body = ts.SendRequest(t, tx, http.MethodPut, path, map[string]interface{}{
		"user_email": owner,
		"title":      "Replication study v2",
		"category":   "methodology",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)
	assert.Contains(t, body, `"updated":1`)

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/ideas/"+owner, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Replication study v2")
	assert.Contains(t, body, "methodology")

	res, body = ts.SendRequest(t, tx, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"deleted":1`)
}

func TestIdea_CreateRequiresTitle(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/ideas", map[string]interface{}{
		"user_email": helpers.UniqueEmail("untitled"),
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "error")
}

func TestNote_CreatedDateHonoredVerbatim(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	owner := helpers.UniqueEmail("note")
	supplied := "2024-01-15T09:30:00Z"

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/notes", map[string]interface{}{
		"user_email":   owner,
		"title":        "Archived note",
		"created_date": supplied,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)

	var created models.Note
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, supplied, created.CreatedDate)
}

func TestFutureWork_AliasRoute(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	owner := helpers.UniqueEmail("future")
	res, body := ts.SendRequest(t, tx, http.MethodPost, "/future_work", map[string]interface{}{
		"user_email": owner,
		"title":      "Longitudinal follow-up",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)

	var created models.FutureWork
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "medium", created.Priority)

	// /future/:email serves the same list as /future_work/:email.
	res, aliasBody := ts.SendRequest(t, tx, http.MethodGet, "/future/"+owner, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	_, canonicalBody := ts.SendRequest(t, tx, http.MethodGet, "/future_work/"+owner, nil)
	assert.JSONEq(t, canonicalBody, aliasBody)
}

func TestDeadline_OrderedByDueDate(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	owner := helpers.UniqueEmail("deadline_order")
	helpers.CreateDeadline(t, tx, owner, "Later", "2026-12-01T00:00:00Z")
	helpers.CreateDeadline(t, tx, owner, "Sooner", "2026-09-01T00:00:00Z")
	helpers.CreateDeadline(t, tx, owner, "Middle", "2026-10-15T00:00:00Z")

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/deadlines/"+owner, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var deadlines []models.Deadline
	require.NoError(t, json.Unmarshal([]byte(body), &deadlines))
	require.Len(t, deadlines, 3)
	assert.Equal(t, "Sooner", deadlines[0].Title)
	assert.Equal(t, "Middle", deadlines[1].Title)
	assert.Equal(t, "Later", deadlines[2].Title)
}

func TestDeadline_DefaultsApplied(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/deadlines", map[string]interface{}{
		"user_email": helpers.UniqueEmail("deadline_def"),
		"title":      "Submit abstract",
		"due_date":   "2026-11-30T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)

	var created models.Deadline
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "medium", created.Priority)
	assert.Equal(t, "pending", created.Status)
}

func TestMeeting_CrudFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	colleague := helpers.UniqueEmail("colleague")

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/meetings", map[string]interface{}{
		"colleague_email": colleague,
		"date":            "2026-09-05T14:00:00Z",
		"description":     "Weekly sync",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)

	var created models.Meeting
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.NotZero(t, created.ID)

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/meetings/"+colleague, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Weekly sync")

	res, body = ts.SendRequest(t, tx, http.MethodDelete, fmt.Sprintf("/meetings/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"deleted":1`)
}

func TestPlanner_UpdateMissingRowReportsZero(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPut, "/notes/999999999", map[string]interface{}{
		"user_email": helpers.UniqueEmail("missing"),
		"title":      "ghost",
	})

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"updated":0`)
}

func TestPlanner_InvalidIDRejected(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodDelete, "/notes/not-a-number", nil)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "error")

	// Ids beyond 32 bits are rejected, not wrapped.
	res, body = ts.SendRequest(t, tx, http.MethodDelete, "/notes/4294967296", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "error")
}
