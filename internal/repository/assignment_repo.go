package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
)

// AssignmentRepository 教师-科目分配数据访问接口
type AssignmentRepository interface {
	Create(ctx context.Context, a *model.TeacherSubject) error
	GetByID(ctx context.Context, id int64) (*model.TeacherSubject, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]model.TeacherSubject, error)
	Delete(ctx context.Context, id int64) error
	// DeleteByTeacher 删除教师的全部分配（同步前清空）
	DeleteByTeacher(ctx context.Context, teacherID string) error
	// BatchCreate 批量插入分配
	BatchCreate(ctx context.Context, teacherID string, subjectIDs []int64) error
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo 创建 AssignmentRepository 实例
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, a *model.TeacherSubject) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *assignmentRepo) GetByID(ctx context.Context, id int64) (*model.TeacherSubject, error) {
	var a model.TeacherSubject
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepo) ListByTeacher(ctx context.Context, teacherID string) ([]model.TeacherSubject, error) {
	var list []model.TeacherSubject
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Subject.Course").
		Preload("Subject.Course.Program").
		Preload("Subject.Course.Department").
		Where("teacher_id = ?", teacherID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *assignmentRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TeacherSubject{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *assignmentRepo) DeleteByTeacher(ctx context.Context, teacherID string) error {
	return r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Delete(&model.TeacherSubject{}).Error
}

func (r *assignmentRepo) BatchCreate(ctx context.Context, teacherID string, subjectIDs []int64) error {
	if len(subjectIDs) == 0 {
		return nil
	}
	rows := make([]model.TeacherSubject, 0, len(subjectIDs))
	for _, sid := range subjectIDs {
		rows = append(rows, model.TeacherSubject{TeacherID: teacherID, SubjectID: sid})
	}
	return r.db.WithContext(ctx).CreateInBatches(rows, 100).Error
}
