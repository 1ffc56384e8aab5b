package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clearboard/clearboard-backend/internal/modules/trend"
	"github.com/clearboard/clearboard-backend/internal/services"
)

type PerformanceHandler struct {
	performanceService services.PerformanceService
}

func NewPerformanceHandler(performanceService services.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{performanceService: performanceService}
}

func (ph *PerformanceHandler) Roster(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	from, to, err := dateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_date", err)
		return
	}
	roster, err := ph.performanceService.GetRoster(c.Request.Context(), userID, from, to)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, roster)
}

func (ph *PerformanceHandler) Dashboard(c *gin.Context) {
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
	dashboard, err := ph.performanceService.GetDashboard(c.Request.Context(), userID, teacherID, from, to)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, dashboard)
}

func (ph *PerformanceHandler) Trends(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teacherID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	periodType, err := trend.ParsePeriodType(c.Query("period"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_period", err)
		return
	}
	view, err := ph.performanceService.GetTrends(c.Request.Context(), userID, teacherID, periodType)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, view)
}

func (ph *PerformanceHandler) RecomputeTrends(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teacherID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	periodType, err := trend.ParsePeriodType(c.Query("period"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_period", err)
		return
	}
	view, err := ph.performanceService.RecomputeTrends(c.Request.Context(), userID, teacherID, periodType)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, view)
}

func (ph *PerformanceHandler) PeerRecommendations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teacherID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	recs, err := ph.performanceService.GetPeerRecommendations(c.Request.Context(), userID, teacherID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"recommendations": recs})
}
