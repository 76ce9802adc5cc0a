package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/dto"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/service"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/response"
)

// StudentHandler 学生模块 HTTP 处理器
type StudentHandler struct {
	studentSvc    service.StudentService
	attendanceSvc service.AttendanceService
	logger        *zap.Logger
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService, attendanceSvc service.AttendanceService, logger *zap.Logger) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc, attendanceSvc: attendanceSvc, logger: logger}
}

// ListStudents 学生列表
// GET /api/students
func (h *StudentHandler) ListStudents(c *gin.Context) {
	var q dto.CohortQuery
	if !bindQuery(c, &q) {
		return
	}

	list, err := h.studentSvc.List(c.Request.Context(), &q)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// GetStudent 学生详情
// GET /api/student/:id
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, ok := MustGetIDParam(c, "id")
	if !ok {
		return
	}

	student, err := h.studentSvc.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, student)
}

// UpdateStudent 更新学生
// PUT /api/student/:id
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, ok := MustGetIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateStudentRequest
	if !bindJSON(c, &req) {
		return
	}

	student, err := h.studentSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, student)
}

// DeleteStudent 删除学生（考勤记录级联删除）
// DELETE /api/student/:id
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, ok := MustGetIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.studentSvc.Delete(c.Request.Context(), id); err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}

// GetStudentSubjects 学生所在课程的科目
// GET /api/student/:id/subjects
func (h *StudentHandler) GetStudentSubjects(c *gin.Context) {
	id, ok := MustGetIDParam(c, "id")
	if !ok {
		return
	}

	list, err := h.studentSvc.Subjects(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// GetAttendanceStats 学生某科目的月度统计
// GET /api/student/:id/attendance-stats?subject_id=&month=&year=
func (h *StudentHandler) GetAttendanceStats(c *gin.Context) {
	id, ok := MustGetIDParam(c, "id")
	if !ok {
		return
	}
	var q dto.StudentStatsQuery
	if !bindQuery(c, &q) {
		return
	}

	stats, err := h.attendanceSvc.StudentStats(c.Request.Context(), id, &q)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, stats)
}
