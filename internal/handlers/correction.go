package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clearboard/clearboard-backend/internal/services"
)

type CorrectionHandler struct {
	feedbackService services.FeedbackService
}

func NewCorrectionHandler(feedbackService services.FeedbackService) *CorrectionHandler {
	return &CorrectionHandler{feedbackService: feedbackService}
}

func (ch *CorrectionHandler) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req services.CorrectionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", fmt.Errorf("invalid request body"))
		return
	}
	correction, err := ch.feedbackService.SubmitCorrection(c.Request.Context(), userID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, correction)
}

func (ch *CorrectionHandler) ListByTeacher(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teacherID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	corrections, err := ch.feedbackService.ListCorrections(c.Request.Context(), userID, teacherID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"corrections": corrections})
}

func (ch *CorrectionHandler) LearningSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	summary, err := ch.feedbackService.LearningSummary(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"elements": summary})
}

func (ch *CorrectionHandler) ElementSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	elementID := c.Param("elementId")
	if elementID == "" {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("an element id is required"))
		return
	}
	summary, err := ch.feedbackService.ElementSummary(c.Request.Context(), userID, elementID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, summary)
}
