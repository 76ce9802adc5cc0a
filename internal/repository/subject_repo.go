package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
)

// SubjectFilter 科目列表筛选，零值字段不参与筛选
type SubjectFilter struct {
	ProgramID    int64
	DepartmentID int64
	Semester     int
}

// SubjectRepository 科目数据访问接口
type SubjectRepository interface {
	Create(ctx context.Context, subject *model.Subject) error
	GetByID(ctx context.Context, id int64) (*model.Subject, error)
	List(ctx context.Context, filter SubjectFilter) ([]model.Subject, error)
	ListByCourse(ctx context.Context, courseID int64) ([]model.Subject, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Subject, error)
	Delete(ctx context.Context, id int64) error
}

type subjectRepo struct {
	db *gorm.DB
}

// NewSubjectRepo 创建 SubjectRepository 实例
func NewSubjectRepo(db *gorm.DB) SubjectRepository {
	return &subjectRepo{db: db}
}

func (r *subjectRepo) withCourse() *gorm.DB {
	return r.db.Preload("Course").Preload("Course.Program").Preload("Course.Department")
}

func (r *subjectRepo) Create(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepo) GetByID(ctx context.Context, id int64) (*model.Subject, error) {
	var subject model.Subject
	err := r.withCourse().WithContext(ctx).
		Where("id = ?", id).
		First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepo) List(ctx context.Context, filter SubjectFilter) ([]model.Subject, error) {
	var subjects []model.Subject
	q := r.withCourse().WithContext(ctx).
		Select("subjects.*").
		Joins("JOIN courses ON courses.id = subjects.course_id")
	if filter.ProgramID > 0 {
		q = q.Where("courses.program_id = ?", filter.ProgramID)
	}
	if filter.DepartmentID > 0 {
		q = q.Where("courses.department_id = ?", filter.DepartmentID)
	}
	if filter.Semester > 0 {
		q = q.Where("courses.semester = ?", filter.Semester)
	}
	err := q.Order("courses.semester ASC, subjects.name ASC").Find(&subjects).Error
	return subjects, err
}

func (r *subjectRepo) ListByCourse(ctx context.Context, courseID int64) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("name ASC").
		Find(&subjects).Error
	return subjects, err
}

func (r *subjectRepo) ListByIDs(ctx context.Context, ids []int64) ([]model.Subject, error) {
	if len(ids) == 0 {
		return []model.Subject{}, nil
	}
	var subjects []model.Subject
	err := r.withCourse().WithContext(ctx).
		Where("id IN ?", ids).
		Order("name ASC").
		Find(&subjects).Error
	return subjects, err
}

// Delete 物理删除；被分配或存在考勤记录时由外键 RESTRICT 拒绝
func (r *subjectRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Subject{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
