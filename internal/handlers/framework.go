package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clearboard/clearboard-backend/internal/services"
)

type FrameworkHandler struct {
	frameworkService services.FrameworkService
}

func NewFrameworkHandler(frameworkService services.FrameworkService) *FrameworkHandler {
	return &FrameworkHandler{frameworkService: frameworkService}
}

func (fh *FrameworkHandler) List(c *gin.Context) {
	frameworks, err := fh.frameworkService.ListFrameworks(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"frameworks": frameworks})
}

func (fh *FrameworkHandler) GetSelection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sel, err := fh.frameworkService.GetSelection(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, sel)
}

func (fh *FrameworkHandler) SaveSelection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req services.Selection
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", fmt.Errorf("invalid request body"))
		return
	}
	sel, err := fh.frameworkService.SaveSelection(c.Request.Context(), userID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, sel)
}
