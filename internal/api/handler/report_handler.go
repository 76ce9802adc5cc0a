package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/dto"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/service"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/response"
)

// ReportHandler 管理端报表 HTTP 处理器
type ReportHandler struct {
	reportSvc service.ReportService
	logger    *zap.Logger
}

// NewReportHandler 创建 ReportHandler
func NewReportHandler(reportSvc service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc, logger: logger}
}

// GetReportData 课程月报
// GET /api/report-data?program_id=&department_id=&semester=&month=&year=
func (h *ReportHandler) GetReportData(c *gin.Context) {
	var q dto.ReportQuery
	if !bindQuery(c, &q) {
		return
	}

	data, err := h.reportSvc.Monthly(c.Request.Context(), &q)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, data)
}

// GetDashboardStats 仪表盘统计
// GET /api/dashboard-stats?today=
func (h *ReportHandler) GetDashboardStats(c *gin.Context) {
	var q dto.DashboardQuery
	if !bindQuery(c, &q) {
		return
	}

	var today time.Time
	if q.Today != "" {
		t, err := dto.ParseDate(q.Today)
		if err != nil {
			handleError(c, h.logger, service.ErrInvalidDate)
			return
		}
		today = t
	}

	stats, err := h.reportSvc.Dashboard(c.Request.Context(), today)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, stats)
}
