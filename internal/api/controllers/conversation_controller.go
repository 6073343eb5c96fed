package controllers

import (
	"errors"
	"net/http"

	"darwinplanner/internal/models/request_models"
	"darwinplanner/internal/planner"
	"darwinplanner/internal/services"
	"darwinplanner/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ConversationController struct {
	conversationService services.ConversationServiceInterface
}

func NewConversationController(conversationService services.ConversationServiceInterface) *ConversationController {
	return &ConversationController{
		conversationService: conversationService,
	}
}

// Start godoc
// @Summary Start a trip planning conversation
// @Tags Conversations
// @Produce json
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /conversations [post]
func (cc *ConversationController) Start(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	conv, err := cc.conversationService.Start(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, conv, "Conversation started")
}

func (cc *ConversationController) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	conv, err := cc.conversationService.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, conv, "Conversation fetched successfully")
}

// Answer godoc
// @Summary Answer the current question
// @Description A rejected answer responds 422 with the unchanged conversation in data.
// @Tags Conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param request body request_models.AnswerRequest true "Answer payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /conversations/{id}/answers [post]
func (cc *ConversationController) Answer(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	conv, err := cc.conversationService.Submit(c.Request.Context(), userID, c.Param("id"), req.Answer)
	if err != nil {
		var stepErr *planner.StepError
		if errors.As(err, &stepErr) || errors.Is(err, planner.ErrBusy) {
			code, message := statusForError(err)
			utils.RespondErrorWithData(c, code, message, conv)
			return
		}
		handleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, conv, conv.Reply)
}

func (cc *ConversationController) Reset(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	conv, err := cc.conversationService.Reset(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, conv, "Conversation restarted")
}

// Discard godoc
// @Summary Discard a conversation
// @Tags Conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /conversations/{id} [delete]
func (cc *ConversationController) Discard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := cc.conversationService.Discard(c.Request.Context(), userID, c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Conversation discarded")
}
