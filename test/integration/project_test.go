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

func TestProject_CreateAndList(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	owner := helpers.UniqueEmail("project_owner")

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/projects", map[string]interface{}{
		"name":        "Grant Proposal",
		"owner_email": owner,
		"status":      "active",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)

	var created models.Project
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.NotZero(t, created.ID)
	assert.NotEmpty(t, created.CreatedDate)

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/projects/"+owner, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var listed []models.Project
	require.NoError(t, json.Unmarshal([]byte(body), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Grant Proposal", listed[0].Name)
}

func TestProject_CreateRequiresNameAndOwner(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/projects", map[string]interface{}{
		"name": "No owner",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "error")
}

func TestProject_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	owner := helpers.UniqueEmail("project_upd")
	_, body := ts.SendRequest(t, tx, http.MethodPost, "/projects", map[string]interface{}{
		"name":        "Before",
		"owner_email": owner,
	})
	var created models.Project
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	path := fmt.Sprintf("/projects/%d", created.ID)
	res, body := ts.SendRequest(t, tx, http.MethodPut, path, map[string]interface{}{
		"name":        "After",
		"owner_email": owner,
		"status":      "done",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)
	assert.Contains(t, body, `"updated":1`)

	res, body = ts.SendRequest(t, tx, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"deleted":1`)

	// Deleting again reports zero, not an error.
	res, body = ts.SendRequest(t, tx, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"deleted":0`)
}

func TestProject_UpdateWithoutColleaguesStoresEmptyList(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	owner := helpers.UniqueEmail("project_coll")
	_, body := ts.SendRequest(t, tx, http.MethodPost, "/projects", map[string]interface{}{
		"name":        "Shared",
		"owner_email": owner,
		"colleagues":  []string{"ada@test.com"},
	})
	var created models.Project
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	// Full-replace update omitting colleagues clears the list.
	res, body := ts.SendRequest(t, tx, http.MethodPut, fmt.Sprintf("/projects/%d", created.ID), map[string]interface{}{
		"name":        "Shared",
		"owner_email": owner,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)
	assert.Contains(t, body, `"updated":1`)

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/projects/"+owner, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"colleagues":[]`)
	assert.NotContains(t, body, `"colleagues":null`)

	var listed []models.Project
	require.NoError(t, json.Unmarshal([]byte(body), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, []string{}, listed[0].GetColleagues())
}

func TestProject_ListUnknownOwnerIsEmpty(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/projects/"+helpers.UniqueEmail("nobody"), nil)

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, "[]", body)
}

func TestProjectDescription_RoundTrip(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	owner := helpers.UniqueEmail("desc")
	_, body := ts.SendRequest(t, tx, http.MethodPost, "/projects", map[string]interface{}{
		"name":        "Described",
		"owner_email": owner,
	})
	var created models.Project
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	descPath := fmt.Sprintf("/projects/%d/description", created.ID)

	// Fresh projects have an all-empty description, not an error.
	res, body := ts.SendRequest(t, tx, http.MethodGet, descPath, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"background":""`)
	assert.Contains(t, body, `"dataCollection":""`)

	res, body = ts.SendRequest(t, tx, http.MethodPut, descPath, map[string]interface{}{
		"background":     "Prior art review",
		"objectives":     "Three aims",
		"dataCollection": "Surveys",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)
	assert.Contains(t, body, `"updated":1`)

	res, body = ts.SendRequest(t, tx, http.MethodGet, descPath, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Prior art review")
	assert.Contains(t, body, "Surveys")
}

func TestProjectDescription_UpdateIsFullReplace(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	owner := helpers.UniqueEmail("desc_replace")
	_, body := ts.SendRequest(t, tx, http.MethodPost, "/projects", map[string]interface{}{
		"name":        "Replace",
		"owner_email": owner,
	})
	var created models.Project
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	descPath := fmt.Sprintf("/projects/%d/description", created.ID)
	ts.SendRequest(t, tx, http.MethodPut, descPath, map[string]interface{}{
		"background": "keep or lose",
		"objectives": "original",
	})

	// A second update omitting background must clear it.
	res, body := ts.SendRequest(t, tx, http.MethodPut, descPath, map[string]interface{}{
		"objectives": "rewritten",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)

	res, body = ts.SendRequest(t, tx, http.MethodGet, descPath, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"background":""`)
	assert.Contains(t, body, "rewritten")
}

func TestProjectDescription_MissingProjectUpdatesZero(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPut, "/projects/999999999/description", map[string]interface{}{
		"background": "nobody home",
	})

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"updated":0`)
}
