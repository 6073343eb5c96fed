package controllers

import (
	"errors"
	"net/http"

	"darwinplanner/internal/planner"
	"darwinplanner/pkg/utils"
	"github.com/gin-gonic/gin"
)

func handleServiceError(c *gin.Context, err error) {
	code, message := statusForError(err)
	utils.RespondServiceError(c, code, message, err)
}

// statusForError maps planner errors and leaves everything else to
// utils.StatusForError.
func statusForError(err error) (int, string) {
	var stepErr *planner.StepError
	switch {
	case errors.As(err, &stepErr):
		return http.StatusUnprocessableEntity, stepErr.Message
	case errors.Is(err, planner.ErrParse), errors.Is(err, planner.ErrValidation), errors.Is(err, planner.ErrInvalidDate):
		return http.StatusUnprocessableEntity, "Invalid answer"
	case errors.Is(err, planner.ErrBusy):
		return http.StatusConflict, "A travel plan is still being generated, please wait"
	case errors.Is(err, planner.ErrNotReady):
		return http.StatusConflict, "The trip request is not complete yet"
	case errors.Is(err, planner.ErrGeneration):
		return http.StatusBadGateway, planner.GenerationFailedMessage
	case errors.Is(err, planner.ErrUnavailable):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return utils.StatusForError(err)
	}
}
