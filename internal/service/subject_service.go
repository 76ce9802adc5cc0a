package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/dto"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/repository"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/database"
	pkgerrors "github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/errors"
)

// ── 科目模块业务错误 ──

var (
	ErrSubjectNotFound = pkgerrors.New(pkgerrors.KindNotFound, 10302, "科目不存在")
	ErrSubjectInUse    = pkgerrors.New(pkgerrors.KindConflict, 10303, "科目已分配给教师或存在考勤记录，无法删除")
)

// SubjectService 科目业务接口
type SubjectService interface {
	List(ctx context.Context, q *dto.CohortQuery) ([]dto.SubjectResponse, error)
	// AddToCourse 单事务：课程不存在则创建，再逐个插入科目；任一失败全部回滚
	AddToCourse(ctx context.Context, req *dto.AddSubjectsToCourseRequest) (*dto.AddSubjectsResponse, error)
	// Delete 被分配或有考勤记录时返回 ErrSubjectInUse，数据不变
	Delete(ctx context.Context, id int64) error
}

type subjectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSubjectService 创建 SubjectService 实例
func NewSubjectService(repo *repository.Repository, logger *zap.Logger) SubjectService {
	return &subjectService{repo: repo, logger: logger}
}

func (s *subjectService) List(ctx context.Context, q *dto.CohortQuery) ([]dto.SubjectResponse, error) {
	subjects, err := s.repo.Subject.List(ctx, repository.SubjectFilter{
		ProgramID:    q.ProgramID,
		DepartmentID: q.DepartmentID,
		Semester:     q.Semester,
	})
	if err != nil {
		return nil, translateStoreError(s.logger, "查询科目列表失败", err)
	}
	return dto.NewSubjectResponses(subjects), nil
}

// ────────────────────── AddToCourse ──────────────────────

func (s *subjectService) AddToCourse(ctx context.Context, req *dto.AddSubjectsToCourseRequest) (*dto.AddSubjectsResponse, error) {
	var (
		course  *model.Course
		created []model.Subject
	)

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		var err error
		course, err = tx.Catalog.FirstOrCreateCourse(ctx, req.Key())
		if err != nil {
			if database.IsForeignKeyViolation(err) {
				return pkgerrors.Wrap(ErrInvalidReference, err)
			}
			return err
		}

		created = make([]model.Subject, 0, len(req.SubjectNames))
		for _, name := range req.SubjectNames {
			subject := model.Subject{Name: strings.TrimSpace(name), CourseID: course.ID}
			if err := tx.Subject.Create(ctx, &subject); err != nil {
				return err
			}
			subject.Course = course
			created = append(created, subject)
		}
		return nil
	})
	if err != nil {
		return nil, translateStoreError(s.logger, "添加科目失败", err,
			zap.Int64("program_id", req.ProgramID),
			zap.Int64("department_id", req.DepartmentID),
			zap.Int("semester", req.Semester),
		)
	}

	s.logger.Info("科目已添加到课程",
		zap.Int64("course_id", course.ID),
		zap.Int("count", len(created)),
	)
	return &dto.AddSubjectsResponse{
		Course:   dto.NewCourseResponse(course),
		Subjects: dto.NewSubjectResponses(created),
	}, nil
}

// ────────────────────── Delete ──────────────────────

func (s *subjectService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Subject.Delete(ctx, id)
	switch {
	case err == nil:
		s.logger.Info("科目已删除", zap.Int64("subject_id", id))
		return nil
	case database.IsNotFound(err):
		return ErrSubjectNotFound
	case database.IsForeignKeyViolation(err):
		return pkgerrors.Wrap(ErrSubjectInUse, err)
	}
	return translateStoreError(s.logger, "删除科目失败", err, zap.Int64("subject_id", id))
}
