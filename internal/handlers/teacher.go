package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clearboard/clearboard-backend/internal/services"
)

type TeacherHandler struct {
	teacherService services.TeacherService
}

func NewTeacherHandler(teacherService services.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherService: teacherService}
}

func (th *TeacherHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req services.TeacherInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", fmt.Errorf("invalid request body"))
		return
	}
	teacher, err := th.teacherService.CreateTeacher(c.Request.Context(), userID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, teacher)
}

func (th *TeacherHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	teacher, err := th.teacherService.GetTeacher(c.Request.Context(), userID, id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, teacher)
}

func (th *TeacherHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teachers, err := th.teacherService.ListTeachers(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"teachers": teachers})
}

func (th *TeacherHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req services.TeacherInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", fmt.Errorf("invalid request body"))
		return
	}
	teacher, err := th.teacherService.UpdateTeacher(c.Request.Context(), userID, id, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, teacher)
}

func (th *TeacherHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := th.teacherService.DeleteTeacher(c.Request.Context(), userID, id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "teacher deleted"})
}

func (th *TeacherHandler) GetReflection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teacherID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	reflection, err := th.teacherService.GetReflection(c.Request.Context(), userID, teacherID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, reflection)
}

func (th *TeacherHandler) SaveReflection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teacherID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req services.ReflectionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", fmt.Errorf("invalid request body"))
		return
	}
	reflection, err := th.teacherService.SaveReflection(c.Request.Context(), userID, teacherID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, reflection)
}
