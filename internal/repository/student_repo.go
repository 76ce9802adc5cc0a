package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
)

// StudentFilter 学生列表筛选，零值字段不参与筛选
type StudentFilter struct {
	ProgramID    int64
	DepartmentID int64
	Semester     int
}

// StudentRepository 学生数据访问接口
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id int64) (*model.Student, error)
	GetByEmail(ctx context.Context, email string) (*model.Student, error)
	List(ctx context.Context, filter StudentFilter) ([]model.Student, error)
	// ListByCourse 课程下的学生，按学号排序
	ListByCourse(ctx context.Context, key model.CourseKey) ([]model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Program").Preload("Department").
		Where("id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Program").Preload("Department").
		Where("email = ?", email).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context, filter StudentFilter) ([]model.Student, error) {
	var students []model.Student
	q := r.db.WithContext(ctx).Preload("Program").Preload("Department")
	if filter.ProgramID > 0 {
		q = q.Where("program_id = ?", filter.ProgramID)
	}
	if filter.DepartmentID > 0 {
		q = q.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.Semester > 0 {
		q = q.Where("semester = ?", filter.Semester)
	}
	err := q.Order("roll_number ASC").Find(&students).Error
	return students, err
}

func (r *studentRepo) ListByCourse(ctx context.Context, key model.CourseKey) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Where("program_id = ? AND department_id = ? AND semester = ?", key.ProgramID, key.DepartmentID, key.Semester).
		Order("roll_number ASC").
		Find(&students).Error
	return students, err
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	res := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Where("id = ?", student.ID).
		Updates(map[string]interface{}{
			"name":          student.Name,
			"email":         student.Email,
			"roll_number":   student.RollNumber,
			"program_id":    student.ProgramID,
			"department_id": student.DepartmentID,
			"semester":      student.Semester,
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

// Delete 删除学生，考勤记录由外键级联删除
func (r *studentRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Student{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *studentRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Student{}).Count(&count).Error
	return count, err
}
