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

// ── 教师模块业务错误 ──

var (
	ErrTeacherNotFound    = pkgerrors.New(pkgerrors.KindNotFound, 10402, "教师不存在")
	ErrAssignmentNotFound = pkgerrors.New(pkgerrors.KindNotFound, 10403, "分配记录不存在")
)

// TeacherService 教师与科目分配业务接口
type TeacherService interface {
	List(ctx context.Context) ([]dto.TeacherResponse, error)
	Get(ctx context.Context, id string) (*dto.TeacherResponse, error)
	// Update 单事务：更新资料 + 全量替换科目分配；失败时恢复到调用前状态
	Update(ctx context.Context, id string, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error)
	Delete(ctx context.Context, id string) error
	// Assign 单个分配；已存在时返回 ErrAlreadyAssigned，不覆盖
	Assign(ctx context.Context, req *dto.AssignSubjectRequest) (*dto.AssignmentResponse, error)
	Unassign(ctx context.Context, assignmentID int64) error
	Subjects(ctx context.Context, id string) ([]dto.AssignedSubjectResponse, error)
}

type teacherService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeacherService 创建 TeacherService 实例
func NewTeacherService(repo *repository.Repository, logger *zap.Logger) TeacherService {
	return &teacherService{repo: repo, logger: logger}
}

// ────────────────────── 查询 ──────────────────────

func (s *teacherService) List(ctx context.Context) ([]dto.TeacherResponse, error) {
	teachers, err := s.repo.Teacher.List(ctx)
	if err != nil {
		return nil, translateStoreError(s.logger, "查询教师列表失败", err)
	}
	out := make([]dto.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		out = append(out, dto.NewTeacherResponse(&teachers[i]))
	}
	return out, nil
}

func (s *teacherService) Get(ctx context.Context, id string) (*dto.TeacherResponse, error) {
	teacher, err := s.getTeacher(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewTeacherResponse(teacher)
	return &resp, nil
}

func (s *teacherService) Subjects(ctx context.Context, id string) ([]dto.AssignedSubjectResponse, error) {
	if _, err := s.getTeacher(ctx, s.repo, id); err != nil {
		return nil, err
	}
	list, err := s.repo.Assignment.ListByTeacher(ctx, id)
	if err != nil {
		return nil, translateStoreError(s.logger, "查询教师科目失败", err, zap.String("teacher_id", id))
	}
	return dto.NewAssignedSubjects(list), nil
}

func (s *teacherService) getTeacher(ctx context.Context, repo *repository.Repository, id string) (*model.Teacher, error) {
	teacher, err := repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrTeacherNotFound
		}
		return nil, translateStoreError(s.logger, "查询教师失败", err, zap.String("teacher_id", id))
	}
	return teacher, nil
}

// ────────────────────── Update + Sync ──────────────────────

func (s *teacherService) Update(ctx context.Context, id string, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error) {
	subjectIDs := dedupeIDs(req.SubjectIDs)

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		err := tx.Teacher.UpdateProfile(ctx, &model.Teacher{
			ID:           id,
			Name:         strings.TrimSpace(req.Name),
			Email:        normalizeEmail(req.Email),
			DepartmentID: req.DepartmentID,
		})
		if err != nil {
			if database.IsNotFound(err) {
				return ErrTeacherNotFound
			}
			return err
		}

		// 全量替换：先删后插
		if err := tx.Assignment.DeleteByTeacher(ctx, id); err != nil {
			return err
		}
		if err := tx.Assignment.BatchCreate(ctx, id, subjectIDs); err != nil {
			if database.IsForeignKeyViolation(err) {
				return pkgerrors.Wrap(ErrInvalidReference, err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			// 院系不存在
			return nil, pkgerrors.Wrap(ErrInvalidReference, err)
		}
		return nil, translateStoreError(s.logger, "更新教师失败", err, zap.String("teacher_id", id))
	}

	s.logger.Info("教师信息已更新",
		zap.String("teacher_id", id),
		zap.Int("subject_count", len(subjectIDs)),
	)
	return s.Get(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *teacherService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Teacher.Delete(ctx, id); err != nil {
		if database.IsNotFound(err) {
			return ErrTeacherNotFound
		}
		return translateStoreError(s.logger, "删除教师失败", err, zap.String("teacher_id", id))
	}
	s.logger.Info("教师已删除", zap.String("teacher_id", id))
	return nil
}

// ────────────────────── Assign / Unassign ──────────────────────

func (s *teacherService) Assign(ctx context.Context, req *dto.AssignSubjectRequest) (*dto.AssignmentResponse, error) {
	teacherID := strings.TrimSpace(req.TeacherID)
	if _, err := s.getTeacher(ctx, s.repo, teacherID); err != nil {
		return nil, err
	}
	if _, err := getSubject(ctx, s.repo, s.logger, req.SubjectID); err != nil {
		return nil, err
	}

	a := &model.TeacherSubject{TeacherID: teacherID, SubjectID: req.SubjectID}
	if err := s.repo.Assignment.Create(ctx, a); err != nil {
		return nil, translateStoreError(s.logger, "分配科目失败", err,
			zap.String("teacher_id", teacherID),
			zap.Int64("subject_id", req.SubjectID),
		)
	}

	return &dto.AssignmentResponse{ID: a.ID, TeacherID: a.TeacherID, SubjectID: a.SubjectID}, nil
}

func (s *teacherService) Unassign(ctx context.Context, assignmentID int64) error {
	if err := s.repo.Assignment.Delete(ctx, assignmentID); err != nil {
		if database.IsNotFound(err) {
			return ErrAssignmentNotFound
		}
		return translateStoreError(s.logger, "取消分配失败", err, zap.Int64("assignment_id", assignmentID))
	}
	return nil
}
