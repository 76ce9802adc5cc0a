package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/dto"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/service"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
	logger    *zap.Logger
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc, logger: logger}
}

// ExportReport 导出课程月报
// GET /api/report-data/export?program_id=&department_id=&semester=&month=&year=&format=xlsx|pdf
func (h *ExportHandler) ExportReport(c *gin.Context) {
	var q dto.ExportQuery
	if !bindQuery(c, &q) {
		return
	}

	file, err := h.exportSvc.ExportMonthly(c.Request.Context(), &q)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.File(c, file.ContentType, file.Filename, file.Body)
}
