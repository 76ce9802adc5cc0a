package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/dto"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/service"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/response"
)

// SubjectHandler 科目模块 HTTP 处理器
type SubjectHandler struct {
	subjectSvc service.SubjectService
	logger     *zap.Logger
}

// NewSubjectHandler 创建 SubjectHandler
func NewSubjectHandler(subjectSvc service.SubjectService, logger *zap.Logger) *SubjectHandler {
	return &SubjectHandler{subjectSvc: subjectSvc, logger: logger}
}

// ListSubjects 科目列表，可按课程三元组过滤
// GET /api/subjects
func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	var q dto.CohortQuery
	if !bindQuery(c, &q) {
		return
	}

	list, err := h.subjectSvc.List(c.Request.Context(), &q)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// AddSubjectsToCourse 批量添加科目（课程不存在时创建）
// POST /api/subjects-to-course
func (h *SubjectHandler) AddSubjectsToCourse(c *gin.Context) {
	var req dto.AddSubjectsToCourseRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.subjectSvc.AddToCourse(c.Request.Context(), &req)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.Created(c, result)
}

// DeleteSubject 删除科目
// DELETE /api/subjects/:id
func (h *SubjectHandler) DeleteSubject(c *gin.Context) {
	id, ok := MustGetIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.subjectSvc.Delete(c.Request.Context(), id); err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}
