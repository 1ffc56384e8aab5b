package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clearboard/clearboard-backend/internal/services"
)

type AssessmentHandler struct {
	assessmentService services.AssessmentService
}

func NewAssessmentHandler(assessmentService services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

func (ah *AssessmentHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req services.AssessmentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", fmt.Errorf("invalid request body"))
		return
	}
	assessment, err := ah.assessmentService.CreateAssessment(c.Request.Context(), userID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assessment)
}

func (ah *AssessmentHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	assessment, err := ah.assessmentService.GetAssessment(c.Request.Context(), userID, id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, assessment)
}

func (ah *AssessmentHandler) ListByTeacher(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teacherID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	from, to, err := dateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_date", err)
		return
	}
	assessments, err := ah.assessmentService.ListAssessments(c.Request.Context(), userID, teacherID, from, to)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"assessments": assessments})
}

func (ah *AssessmentHandler) SummaryInsights(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teacherID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := ah.assessmentService.SummaryInsights(c.Request.Context(), userID, teacherID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, view)
}

func (ah *AssessmentHandler) CreateObservation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req services.ObservationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", fmt.Errorf("invalid request body"))
		return
	}
	observation, err := ah.assessmentService.CreateObservation(c.Request.Context(), userID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, observation)
}

func (ah *AssessmentHandler) ListObservations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teacherID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	observations, err := ah.assessmentService.ListObservations(c.Request.Context(), userID, teacherID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"observations": observations})
}

func (ah *AssessmentHandler) UpdateObservation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req services.ObservationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", fmt.Errorf("invalid request body"))
		return
	}
	observation, err := ah.assessmentService.UpdateObservation(c.Request.Context(), userID, id, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, observation)
}
