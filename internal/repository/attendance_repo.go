package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
)

// MarkFilter 考勤记录查询条件，空切片 / 零值不参与筛选
// From / To 为闭区间，按自然日比较
type MarkFilter struct {
	SubjectIDs []int64
	StudentIDs []int64
	From       time.Time
	To         time.Time
}

// AttendanceRepository 考勤数据访问接口
type AttendanceRepository interface {
	// Upsert 按 (student_id, subject_id, attendance_date) 插入或覆盖状态
	Upsert(ctx context.Context, records []model.Attendance) error
	ListBySubjectAndDate(ctx context.Context, subjectID int64, date time.Time) ([]model.Attendance, error)
	ListMarks(ctx context.Context, filter MarkFilter) ([]model.Attendance, error)
	// CountByStatusOnDate 某天全部考勤记录按状态计数
	CountByStatusOnDate(ctx context.Context, date time.Time) (map[model.AttendanceStatus]int64, error)
	// CountAttendedStudentsOnDate 某天至少有一条 present/late 记录的学生数
	CountAttendedStudentsOnDate(ctx context.Context, date time.Time) (int64, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Upsert(ctx context.Context, records []model.Attendance) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "student_id"},
				{Name: "subject_id"},
				{Name: "attendance_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(&records).Error
}

func (r *attendanceRepo) ListBySubjectAndDate(ctx context.Context, subjectID int64, date time.Time) ([]model.Attendance, error) {
	var list []model.Attendance
	err := r.db.WithContext(ctx).
		Where("subject_id = ? AND attendance_date = ?", subjectID, formatDate(date)).
		Find(&list).Error
	return list, err
}

func (r *attendanceRepo) ListMarks(ctx context.Context, filter MarkFilter) ([]model.Attendance, error) {
	var list []model.Attendance
	q := r.db.WithContext(ctx).
		Select("id", "student_id", "subject_id", "attendance_date", "status")
	if len(filter.SubjectIDs) > 0 {
		q = q.Where("subject_id IN ?", filter.SubjectIDs)
	}
	if len(filter.StudentIDs) > 0 {
		q = q.Where("student_id IN ?", filter.StudentIDs)
	}
	if !filter.From.IsZero() {
		q = q.Where("attendance_date >= ?", formatDate(filter.From))
	}
	if !filter.To.IsZero() {
		q = q.Where("attendance_date <= ?", formatDate(filter.To))
	}
	err := q.Order("attendance_date ASC, student_id ASC").Find(&list).Error
	return list, err
}

type statusCount struct {
	Status model.AttendanceStatus
	Count  int64
}

func (r *attendanceRepo) CountByStatusOnDate(ctx context.Context, date time.Time) (map[model.AttendanceStatus]int64, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Select("status, COUNT(*) AS count").
		Where("attendance_date = ?", formatDate(date)).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[model.AttendanceStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *attendanceRepo) CountAttendedStudentsOnDate(ctx context.Context, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Where("attendance_date = ? AND status IN ?", formatDate(date),
			[]model.AttendanceStatus{model.StatusPresent, model.StatusLate}).
		Distinct("student_id").
		Count(&count).Error
	return count, err
}
