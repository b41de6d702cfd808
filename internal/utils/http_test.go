package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/azimovr/go-user-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	_, err := WriteJSON(rr, map[string]string{"hello": "world"}, http.StatusCreated)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"hello":"world"}`, rr.Body.String())
}

func TestWriteError_WithDetails(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, "invalid data provided", []string{"username is required"}, http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "invalid data provided", body.Message)
	assert.Equal(t, []string{"username is required"}, body.Details)
}

func TestWriteError_WithoutDetails_OmitsField(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, "not found", nil, http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"not found"}`, rr.Body.String())
}
