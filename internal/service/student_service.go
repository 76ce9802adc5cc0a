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

// ── 学生模块业务错误 ──

var ErrStudentNotFound = pkgerrors.New(pkgerrors.KindNotFound, 10501, "学生不存在")

// StudentService 学生业务接口
type StudentService interface {
	List(ctx context.Context, q *dto.CohortQuery) ([]dto.StudentResponse, error)
	Get(ctx context.Context, id int64) (*dto.StudentResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id int64) error
	// Subjects 学生所在课程的科目；课程尚未建立时为空
	Subjects(ctx context.Context, id int64) ([]dto.SubjectResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) List(ctx context.Context, q *dto.CohortQuery) ([]dto.StudentResponse, error) {
	students, err := s.repo.Student.List(ctx, repository.StudentFilter{
		ProgramID:    q.ProgramID,
		DepartmentID: q.DepartmentID,
		Semester:     q.Semester,
	})
	if err != nil {
		return nil, translateStoreError(s.logger, "查询学生列表失败", err)
	}
	out := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, dto.NewStudentResponse(&students[i]))
	}
	return out, nil
}

func (s *studentService) Get(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := getStudent(ctx, s.repo, s.logger, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

func (s *studentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	err := s.repo.Student.Update(ctx, &model.Student{
		ID:           id,
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		RollNumber:   strings.TrimSpace(req.RollNumber),
		ProgramID:    req.ProgramID,
		DepartmentID: req.DepartmentID,
		Semester:     req.Semester,
	})
	if err != nil {
		switch {
		case database.IsNotFound(err):
			return nil, ErrStudentNotFound
		case database.IsForeignKeyViolation(err):
			return nil, pkgerrors.Wrap(ErrInvalidReference, err)
		}
		return nil, translateStoreError(s.logger, "更新学生失败", err, zap.Int64("student_id", id))
	}
	return s.Get(ctx, id)
}

func (s *studentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Student.Delete(ctx, id); err != nil {
		if database.IsNotFound(err) {
			return ErrStudentNotFound
		}
		return translateStoreError(s.logger, "删除学生失败", err, zap.Int64("student_id", id))
	}
	s.logger.Info("学生已删除", zap.Int64("student_id", id))
	return nil
}

func (s *studentService) Subjects(ctx context.Context, id int64) ([]dto.SubjectResponse, error) {
	student, err := getStudent(ctx, s.repo, s.logger, id)
	if err != nil {
		return nil, err
	}

	course, err := s.repo.Catalog.GetCourse(ctx, student.CourseKey())
	if err != nil {
		if database.IsNotFound(err) {
			return []dto.SubjectResponse{}, nil
		}
		return nil, translateStoreError(s.logger, "查询课程失败", err, zap.Int64("student_id", id))
	}

	subjects, err := s.repo.Subject.ListByCourse(ctx, course.ID)
	if err != nil {
		return nil, translateStoreError(s.logger, "查询科目失败", err, zap.Int64("course_id", course.ID))
	}
	for i := range subjects {
		subjects[i].Course = course
	}
	return dto.NewSubjectResponses(subjects), nil
}

// getStudent 学生查询，考勤模块共用
func getStudent(ctx context.Context, repo *repository.Repository, logger *zap.Logger, id int64) (*model.Student, error) {
	student, err := repo.Student.GetByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrStudentNotFound
		}
		return nil, translateStoreError(logger, "查询学生失败", err, zap.Int64("student_id", id))
	}
	return student, nil
}

// getSubject 科目查询（含课程），考勤与报表模块共用
func getSubject(ctx context.Context, repo *repository.Repository, logger *zap.Logger, id int64) (*model.Subject, error) {
	subject, err := repo.Subject.GetByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrSubjectNotFound
		}
		return nil, translateStoreError(logger, "查询科目失败", err, zap.Int64("subject_id", id))
	}
	return subject, nil
}
