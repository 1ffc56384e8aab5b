package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clearboard/clearboard-backend/internal/modules/advisory"
	"github.com/clearboard/clearboard-backend/internal/services"
)

type SuggestionHandler struct {
	advisoryService services.AdvisoryService
}

func NewSuggestionHandler(advisoryService services.AdvisoryService) *SuggestionHandler {
	return &SuggestionHandler{advisoryService: advisoryService}
}

func (sh *SuggestionHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teacherID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	suggestions, err := sh.advisoryService.GenerateSuggestions(c.Request.Context(), userID, teacherID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"suggestions": suggestions})
}

func (sh *SuggestionHandler) ListByTeacher(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teacherID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	suggestions, err := sh.advisoryService.ListSuggestions(c.Request.Context(), userID, teacherID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"suggestions": suggestions})
}

func (sh *SuggestionHandler) UpdateStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		RespondError(c, http.StatusBadRequest, "invalid_body", fmt.Errorf("a status is required"))
		return
	}
	suggestion, err := sh.advisoryService.UpdateSuggestionStatus(c.Request.Context(), userID, id, advisory.Status(req.Status))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, suggestion)
}
