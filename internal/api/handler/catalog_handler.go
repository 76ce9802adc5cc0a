package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/dto"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/service"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/response"
)

// CatalogHandler 专业 / 院系 / 课程查询
type CatalogHandler struct {
	catalogSvc service.CatalogService
	logger     *zap.Logger
}

// NewCatalogHandler 创建 CatalogHandler
func NewCatalogHandler(catalogSvc service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc, logger: logger}
}

// ListPrograms 专业列表
// GET /api/programs
func (h *CatalogHandler) ListPrograms(c *gin.Context) {
	list, err := h.catalogSvc.ListPrograms(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// ListDepartments 院系列表
// GET /api/departments
func (h *CatalogHandler) ListDepartments(c *gin.Context) {
	list, err := h.catalogSvc.ListDepartments(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// GetCourse 按 (专业, 院系, 学期) 查询课程
// GET /api/courses?program_id=&department_id=&semester=
func (h *CatalogHandler) GetCourse(c *gin.Context) {
	var q dto.CourseQuery
	if !bindQuery(c, &q) {
		return
	}

	course, err := h.catalogSvc.GetCourse(c.Request.Context(), &q)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, course)
}
