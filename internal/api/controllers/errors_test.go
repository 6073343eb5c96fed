package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"darwinplanner/internal/planner"
	"darwinplanner/pkg/utils"
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
		{"step error", &planner.StepError{Step: planner.StepAwaitingBudget, Err: planner.ErrValidation, Message: "bad budget"}, http.StatusUnprocessableEntity},
		{"invalid date", fmt.Errorf("parse: %w", planner.ErrInvalidDate), http.StatusUnprocessableEntity},
		{"busy", fmt.Errorf("submit: %w", planner.ErrBusy), http.StatusConflict},
		{"not ready", planner.ErrNotReady, http.StatusConflict},
		{"generation", planner.ErrGeneration, http.StatusBadGateway},
		{"unavailable", fmt.Errorf("catalog: %w", planner.ErrUnavailable), http.StatusServiceUnavailable},
		{"plan not found", utils.ErrPlanNotFound, http.StatusNotFound},
		{"credentials", utils.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := statusForError(tt.err)
			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, msg)
		})
	}

	_, msg := statusForError(&planner.StepError{Err: planner.ErrParse, Message: "use YYYY-MM-DD"})
	assert.Equal(t, "use YYYY-MM-DD", msg)
}

func TestHandleServiceError_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("trace_id", "trace-123")

	handleServiceError(c, planner.ErrBusy)

	require.Equal(t, http.StatusConflict, w.Code)
	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "trace-123", body.TraceID)
	assert.Equal(t, http.StatusConflict, body.Code)
}
