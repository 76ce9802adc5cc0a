package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
)

// CatalogRepository 专业 / 院系 / 课程数据访问接口
type CatalogRepository interface {
	ListPrograms(ctx context.Context) ([]model.Program, error)
	ListDepartments(ctx context.Context) ([]model.Department, error)
	GetProgramByName(ctx context.Context, name string) (*model.Program, error)
	GetDepartmentByName(ctx context.Context, name string) (*model.Department, error)
	GetCourse(ctx context.Context, key model.CourseKey) (*model.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*model.Course, error)
	// FirstOrCreateCourse 课程不存在时创建；并发创建时依赖唯一约束兜底
	FirstOrCreateCourse(ctx context.Context, key model.CourseKey) (*model.Course, error)
}

type catalogRepo struct {
	db *gorm.DB
}

// NewCatalogRepo 创建 CatalogRepository 实例
func NewCatalogRepo(db *gorm.DB) CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) ListPrograms(ctx context.Context) ([]model.Program, error) {
	var programs []model.Program
	err := r.db.WithContext(ctx).Order("name ASC").Find(&programs).Error
	return programs, err
}

func (r *catalogRepo) ListDepartments(ctx context.Context) ([]model.Department, error) {
	var depts []model.Department
	err := r.db.WithContext(ctx).Order("name ASC").Find(&depts).Error
	return depts, err
}

func (r *catalogRepo) GetProgramByName(ctx context.Context, name string) (*model.Program, error) {
	var p model.Program
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *catalogRepo) GetDepartmentByName(ctx context.Context, name string) (*model.Department, error) {
	var d model.Department
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *catalogRepo) GetCourse(ctx context.Context, key model.CourseKey) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Preload("Program").Preload("Department").
		Where("program_id = ? AND department_id = ? AND semester = ?", key.ProgramID, key.DepartmentID, key.Semester).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *catalogRepo) GetCourseByID(ctx context.Context, id int64) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Preload("Program").Preload("Department").
		Where("id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *catalogRepo) FirstOrCreateCourse(ctx context.Context, key model.CourseKey) (*model.Course, error) {
	course := model.Course{
		ProgramID:    key.ProgramID,
		DepartmentID: key.DepartmentID,
		Semester:     key.Semester,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&course).Error
	if err != nil {
		return nil, err
	}
	return r.GetCourse(ctx, key)
}
