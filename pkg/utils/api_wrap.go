package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusCreated, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// RespondErrorWithData is used when the caller still needs the payload,
// e.g. the unchanged conversation after a rejected answer.
func RespondErrorWithData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

// RespondServiceError writes an already mapped service error. Server side
// failures are logged with the trace id.
func RespondServiceError(c *gin.Context, code int, message string, err error) {
	if code >= http.StatusInternalServerError {
		zap.S().Errorw("internal error", "trace_id", c.GetString("trace_id"), "path", c.FullPath(), "error", err)
	}
	RespondError(c, code, message)
}

// StatusForError maps the shared service errors onto an HTTP status and the
// message shown to the client.
func StatusForError(err error) (int, string) {
	switch {
	case errors.Is(err, ErrAttractionNotFound):
		return http.StatusNotFound, "Attraction not found"
	case errors.Is(err, ErrRestaurantNotFound):
		return http.StatusNotFound, "Restaurant not found"
	case errors.Is(err, ErrPlanNotFound):
		return http.StatusNotFound, "Travel plan not found"
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound, "Conversation not found"
	case errors.Is(err, ErrAccountNotFound):
		return http.StatusNotFound, "Account not found"
	case errors.Is(err, ErrRecordNotFound):
		return http.StatusNotFound, "Record not found"
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, ErrEmailAlreadyExists):
		return http.StatusConflict, "Email already exists"
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, "Forbidden: insufficient permissions"
	case errors.Is(err, ErrInvalidPage):
		return http.StatusBadRequest, "Page must be greater than 0"
	case errors.Is(err, ErrInvalidPageSize):
		return http.StatusBadRequest, "Page size must be between 1 and 100"
	case errors.Is(err, ErrDatabaseError):
		return http.StatusInternalServerError, "Internal server error"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
