package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/config"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/dto"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/repository"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/database"
	pkgerrors "github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/errors"
)

// ── 认证模块业务错误 ──

var (
	ErrInvalidCredentials = pkgerrors.New(pkgerrors.KindUnauthorized, 10100, "邮箱或密码错误")
	ErrUnknownProgram     = pkgerrors.New(pkgerrors.KindValidation, 10104, "专业不存在")
	ErrUnknownDepartment  = pkgerrors.New(pkgerrors.KindValidation, 10105, "院系不存在")
	ErrUnsupportedRole    = pkgerrors.New(pkgerrors.KindValidation, 10106, "不支持的登录角色")
)

// AuthService 认证业务接口
// 登录只校验凭据并返回会话对象，不签发任何 token
type AuthService interface {
	Login(ctx context.Context, role model.Role, req *dto.LoginRequest) (*dto.SessionResponse, error)
	TeacherSignup(ctx context.Context, req *dto.TeacherSignupRequest) (*dto.TeacherSignupResponse, error)
	StudentSignup(ctx context.Context, req *dto.StudentSignupRequest) (*dto.StudentSignupResponse, error)
	// EnsureAdmin 启动时引导创建管理员；email 为空时跳过，已存在时不修改
	EnsureAdmin(ctx context.Context, cfg *config.AdminConfig) error
}

type authService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(repo *repository.Repository, logger *zap.Logger) AuthService {
	return &authService{repo: repo, logger: logger}
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, role model.Role, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	email := normalizeEmail(req.Email)

	switch role {
	case model.RoleAdmin:
		admin, err := s.repo.Admin.GetByEmail(ctx, email)
		if err != nil {
			return nil, s.loginLookupError(err, role)
		}
		if !checkPassword(admin.PasswordHash, req.Password) {
			return nil, ErrInvalidCredentials
		}
		return &dto.SessionResponse{
			Role:  role,
			Admin: &dto.AdminProfile{ID: admin.ID, Name: admin.Name, Email: admin.Email},
		}, nil

	case model.RoleTeacher:
		teacher, err := s.repo.Teacher.GetByEmail(ctx, email)
		if err != nil {
			return nil, s.loginLookupError(err, role)
		}
		if !checkPassword(teacher.PasswordHash, req.Password) {
			return nil, ErrInvalidCredentials
		}
		return &dto.SessionResponse{
			Role: role,
			Teacher: &dto.TeacherProfile{
				ID:         teacher.ID,
				Name:       teacher.Name,
				Email:      teacher.Email,
				Department: dto.DepartmentItem(teacher.Department),
			},
		}, nil

	case model.RoleStudent:
		student, err := s.repo.Student.GetByEmail(ctx, email)
		if err != nil {
			return nil, s.loginLookupError(err, role)
		}
		if !checkPassword(student.PasswordHash, req.Password) {
			return nil, ErrInvalidCredentials
		}
		return &dto.SessionResponse{
			Role: role,
			Student: &dto.StudentProfile{
				ID:         student.ID,
				Name:       student.Name,
				Email:      student.Email,
				RollNumber: student.RollNumber,
				Program:    dto.ProgramItem(student.Program),
				Department: dto.DepartmentItem(student.Department),
				Semester:   student.Semester,
			},
		}, nil
	}

	return nil, ErrUnsupportedRole
}

// loginLookupError 账号不存在与密码错误返回同一错误
func (s *authService) loginLookupError(err error, role model.Role) error {
	if database.IsNotFound(err) {
		return ErrInvalidCredentials
	}
	return translateStoreError(s.logger, "登录查询失败", err, zap.String("role", string(role)))
}

// ────────────────────── Signup ──────────────────────

func (s *authService) TeacherSignup(ctx context.Context, req *dto.TeacherSignupRequest) (*dto.TeacherSignupResponse, error) {
	dept, err := s.repo.Catalog.GetDepartmentByName(ctx, strings.TrimSpace(req.Department))
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrUnknownDepartment
		}
		return nil, translateStoreError(s.logger, "查询院系失败", err)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		s.logger.Error("密码加密失败", zap.Error(err))
		return nil, pkgerrors.Wrap(ErrInternal, err)
	}

	teacher := &model.Teacher{
		ID:           strings.TrimSpace(req.ID),
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		DepartmentID: dept.ID,
	}
	if err := s.repo.Teacher.Create(ctx, teacher); err != nil {
		return nil, translateStoreError(s.logger, "创建教师失败", err, zap.String("teacher_id", teacher.ID))
	}

	s.logger.Info("教师注册成功", zap.String("teacher_id", teacher.ID))
	return &dto.TeacherSignupResponse{ID: teacher.ID}, nil
}

func (s *authService) StudentSignup(ctx context.Context, req *dto.StudentSignupRequest) (*dto.StudentSignupResponse, error) {
	prog, err := s.repo.Catalog.GetProgramByName(ctx, strings.TrimSpace(req.Program))
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrUnknownProgram
		}
		return nil, translateStoreError(s.logger, "查询专业失败", err)
	}
	dept, err := s.repo.Catalog.GetDepartmentByName(ctx, strings.TrimSpace(req.Department))
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrUnknownDepartment
		}
		return nil, translateStoreError(s.logger, "查询院系失败", err)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		s.logger.Error("密码加密失败", zap.Error(err))
		return nil, pkgerrors.Wrap(ErrInternal, err)
	}

	student := &model.Student{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		RollNumber:   strings.TrimSpace(req.RollNumber),
		ProgramID:    prog.ID,
		DepartmentID: dept.ID,
		Semester:     req.Semester,
	}
	if err := s.repo.Student.Create(ctx, student); err != nil {
		return nil, translateStoreError(s.logger, "创建学生失败", err, zap.String("roll_number", student.RollNumber))
	}

	s.logger.Info("学生注册成功", zap.Int64("student_id", student.ID))
	return &dto.StudentSignupResponse{ID: student.ID}, nil
}

// ────────────────────── Bootstrap ──────────────────────

func (s *authService) EnsureAdmin(ctx context.Context, cfg *config.AdminConfig) error {
	email := normalizeEmail(cfg.Email)
	if email == "" {
		return nil
	}

	_, err := s.repo.Admin.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !database.IsNotFound(err) {
		return translateStoreError(s.logger, "查询管理员失败", err)
	}

	hash, err := hashPassword(cfg.Password)
	if err != nil {
		return pkgerrors.Wrap(ErrInternal, err)
	}
	name := cfg.Name
	if name == "" {
		name = "Administrator"
	}
	admin := &model.Admin{Name: name, Email: email, PasswordHash: hash}
	if err := s.repo.Admin.Create(ctx, admin); err != nil {
		// 多实例同时启动时可能已被其他实例创建
		if database.IsUniqueViolation(err) {
			return nil
		}
		return translateStoreError(s.logger, "创建管理员失败", err)
	}

	s.logger.Info("已创建初始管理员", zap.String("email", email))
	return nil
}

// ── 辅助函数 ──

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
