package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
)

// TeacherRepository 教师数据访问接口
type TeacherRepository interface {
	Create(ctx context.Context, teacher *model.Teacher) error
	GetByID(ctx context.Context, id string) (*model.Teacher, error)
	GetByEmail(ctx context.Context, email string) (*model.Teacher, error)
	List(ctx context.Context) ([]model.Teacher, error)
	// UpdateProfile 仅更新姓名 / 邮箱 / 院系
	UpdateProfile(ctx context.Context, teacher *model.Teacher) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type teacherRepo struct {
	db *gorm.DB
}

// NewTeacherRepo 创建 TeacherRepository 实例
func NewTeacherRepo(db *gorm.DB) TeacherRepository {
	return &teacherRepo{db: db}
}

func (r *teacherRepo) withRelations() *gorm.DB {
	return r.db.
		Preload("Department").
		Preload("Assignments", func(db *gorm.DB) *gorm.DB { return db.Order("teacher_subjects.id ASC") }).
		Preload("Assignments.Subject").
		Preload("Assignments.Subject.Course").
		Preload("Assignments.Subject.Course.Program").
		Preload("Assignments.Subject.Course.Department")
}

func (r *teacherRepo) Create(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

func (r *teacherRepo) GetByID(ctx context.Context, id string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.withRelations().WithContext(ctx).
		Where("id = ?", id).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) GetByEmail(ctx context.Context, email string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("email = ?", email).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) List(ctx context.Context) ([]model.Teacher, error) {
	var teachers []model.Teacher
	err := r.withRelations().WithContext(ctx).
		Order("name ASC").
		Find(&teachers).Error
	return teachers, err
}

func (r *teacherRepo) UpdateProfile(ctx context.Context, teacher *model.Teacher) error {
	res := r.db.WithContext(ctx).
		Model(&model.Teacher{}).
		Where("id = ?", teacher.ID).
		Updates(map[string]interface{}{
			"name":          teacher.Name,
			"email":         teacher.Email,
			"department_id": teacher.DepartmentID,
			"updated_at":    gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete 删除教师，分配记录由外键级联删除
func (r *teacherRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Teacher{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *teacherRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Teacher{}).Count(&count).Error
	return count, err
}
