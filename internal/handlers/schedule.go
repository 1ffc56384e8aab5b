package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clearboard/clearboard-backend/internal/services"
)

type ScheduleHandler struct {
	scheduleService services.ScheduleService
}

func NewScheduleHandler(scheduleService services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

func (sh *ScheduleHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req services.ScheduleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", fmt.Errorf("invalid request body"))
		return
	}
	schedule, err := sh.scheduleService.CreateSchedule(c.Request.Context(), userID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

func (sh *ScheduleHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var teacherID *uuid.UUID
	if raw := c.Query("teacher_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("teacher_id is not a valid id"))
			return
		}
		teacherID = &id
	}
	schedules, err := sh.scheduleService.ListSchedules(c.Request.Context(), userID, teacherID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"schedules": schedules})
}

func (sh *ScheduleHandler) UpdateStatus(c *gin.Context) {
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
	schedule, err := sh.scheduleService.UpdateScheduleStatus(c.Request.Context(), userID, id, req.Status)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, schedule)
}
