package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/dto"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/repository"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/database"
	pkgerrors "github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/errors"
)

// ── 基础数据业务错误 ──

var (
	ErrCourseNotFound   = pkgerrors.New(pkgerrors.KindNotFound, 10201, "课程不存在")
	ErrInvalidReference = pkgerrors.New(pkgerrors.KindValidation, 10202, "引用的专业、院系或科目不存在")
)

// CatalogService 专业 / 院系 / 课程查询
type CatalogService interface {
	ListPrograms(ctx context.Context) ([]dto.CatalogItem, error)
	ListDepartments(ctx context.Context) ([]dto.CatalogItem, error)
	GetCourse(ctx context.Context, q *dto.CourseQuery) (*dto.CourseResponse, error)
}

type catalogService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCatalogService 创建 CatalogService 实例
func NewCatalogService(repo *repository.Repository, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

func (s *catalogService) ListPrograms(ctx context.Context) ([]dto.CatalogItem, error) {
	programs, err := s.repo.Catalog.ListPrograms(ctx)
	if err != nil {
		return nil, translateStoreError(s.logger, "查询专业列表失败", err)
	}
	out := make([]dto.CatalogItem, 0, len(programs))
	for _, p := range programs {
		out = append(out, dto.CatalogItem{ID: p.ID, Name: p.Name})
	}
	return out, nil
}

func (s *catalogService) ListDepartments(ctx context.Context) ([]dto.CatalogItem, error) {
	depts, err := s.repo.Catalog.ListDepartments(ctx)
	if err != nil {
		return nil, translateStoreError(s.logger, "查询院系列表失败", err)
	}
	out := make([]dto.CatalogItem, 0, len(depts))
	for _, d := range depts {
		out = append(out, dto.CatalogItem{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

func (s *catalogService) GetCourse(ctx context.Context, q *dto.CourseQuery) (*dto.CourseResponse, error) {
	course, err := s.repo.Catalog.GetCourse(ctx, q.Key())
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrCourseNotFound
		}
		return nil, translateStoreError(s.logger, "查询课程失败", err)
	}
	resp := dto.NewCourseResponse(course)
	return &resp, nil
}
