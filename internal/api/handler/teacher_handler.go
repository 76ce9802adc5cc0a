package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/dto"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/service"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/response"
)

// TeacherHandler 教师与科目分配 HTTP 处理器
type TeacherHandler struct {
	teacherSvc service.TeacherService
	logger     *zap.Logger
}

// NewTeacherHandler 创建 TeacherHandler
func NewTeacherHandler(teacherSvc service.TeacherService, logger *zap.Logger) *TeacherHandler {
	return &TeacherHandler{teacherSvc: teacherSvc, logger: logger}
}

// ListTeachers 教师列表（含已分配科目）
// GET /api/teachers
func (h *TeacherHandler) ListTeachers(c *gin.Context) {
	list, err := h.teacherSvc.List(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// GetTeacher 教师详情
// GET /api/teacher/:id
func (h *TeacherHandler) GetTeacher(c *gin.Context) {
	id, ok := MustGetStringParam(c, "id")
	if !ok {
		return
	}

	teacher, err := h.teacherSvc.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, teacher)
}

// UpdateTeacher 更新资料并同步科目分配
// PUT /api/teacher/:id
func (h *TeacherHandler) UpdateTeacher(c *gin.Context) {
	id, ok := MustGetStringParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTeacherRequest
	if !bindJSON(c, &req) {
		return
	}

	teacher, err := h.teacherSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, teacher)
}

// DeleteTeacher 删除教师
// DELETE /api/teacher/:id
func (h *TeacherHandler) DeleteTeacher(c *gin.Context) {
	id, ok := MustGetStringParam(c, "id")
	if !ok {
		return
	}

	if err := h.teacherSvc.Delete(c.Request.Context(), id); err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}

// GetTeacherSubjects 教师已分配的科目
// GET /api/teacher/:id/subjects
func (h *TeacherHandler) GetTeacherSubjects(c *gin.Context) {
	id, ok := MustGetStringParam(c, "id")
	if !ok {
		return
	}

	list, err := h.teacherSvc.Subjects(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// AssignSubject 单个分配
// POST /api/assignSubjects
func (h *TeacherHandler) AssignSubject(c *gin.Context) {
	var req dto.AssignSubjectRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.teacherSvc.Assign(c.Request.Context(), &req)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.Created(c, result)
}

// UnassignSubject 取消分配
// DELETE /api/unassignSubject/:id
func (h *TeacherHandler) UnassignSubject(c *gin.Context) {
	id, ok := MustGetIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.teacherSvc.Unassign(c.Request.Context(), id); err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}
