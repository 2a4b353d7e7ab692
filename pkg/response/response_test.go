package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Created", map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Created", body["message"])
	assert.Equal(t, map[string]interface{}{"id": "1"}, body["data"])
	assert.NotContains(t, body, "error")
}

func TestErrorHelpersPassMessageThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	BadRequest(rec, "Failed to create appointment", errors.New("database is locked"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "database is locked", body["error"])

	rec = httptest.NewRecorder()
	InternalServerError(rec, "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, body, "error")

	rec = httptest.NewRecorder()
	NotFound(rec, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Resource not found", decode(t, rec)["message"])

	rec = httptest.NewRecorder()
	Conflict(rec, "Email already exists")
	assert.Equal(t, http.StatusConflict, rec.Code)
}
