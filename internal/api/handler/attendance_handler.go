package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/dto"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/service"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/response"
)

// AttendanceHandler 考勤模块 HTTP 处理器
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
	logger        *zap.Logger
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(attendanceSvc service.AttendanceService, logger *zap.Logger) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc, logger: logger}
}

// GetRoster 点名名单及当天状态
// GET /api/attendance?subject_id=&date=
func (h *AttendanceHandler) GetRoster(c *gin.Context) {
	var q dto.RosterQuery
	if !bindQuery(c, &q) {
		return
	}

	roster, err := h.attendanceSvc.Roster(c.Request.Context(), &q)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, roster)
}

// SaveAttendance 批量保存考勤
// POST /api/attendance
func (h *AttendanceHandler) SaveAttendance(c *gin.Context) {
	var req dto.SaveAttendanceRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.attendanceSvc.Save(c.Request.Context(), &req)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, result)
}

// GetClassReport 班级区间报表
// GET /api/attendance/report?subject_id=&start_date=&end_date=
func (h *AttendanceHandler) GetClassReport(c *gin.Context) {
	var q dto.ClassReportQuery
	if !bindQuery(c, &q) {
		return
	}

	result, err := h.attendanceSvc.ClassReport(c.Request.Context(), &q)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, result)
}
