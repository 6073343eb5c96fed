package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"attraction not found", ErrAttractionNotFound, http.StatusNotFound},
		{"plan not found", fmt.Errorf("get: %w", ErrPlanNotFound), http.StatusNotFound},
		{"session not found", ErrSessionNotFound, http.StatusNotFound},
		{"credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"email taken", ErrEmailAlreadyExists, http.StatusConflict},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"page", ErrInvalidPage, http.StatusBadRequest},
		{"db", ErrDatabaseError, http.StatusInternalServerError},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := StatusForError(tt.err)
			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestRespondServiceError_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("trace_id", "trace-123")

	code, message := StatusForError(ErrEmailAlreadyExists)
	RespondServiceError(c, code, message, ErrEmailAlreadyExists)

	require.Equal(t, http.StatusConflict, w.Code)
	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "Email already exists", body.Message)
	assert.Equal(t, "trace-123", body.TraceID)
	assert.Equal(t, http.StatusConflict, body.Code)
}
