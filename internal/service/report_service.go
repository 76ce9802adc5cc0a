package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/dto"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/report"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/repository"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/database"
	pkgerrors "github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/errors"
)

// ReportService 管理端报表
type ReportService interface {
	// Monthly 课程月报：课程不存在返回 ErrCourseNotFound；
	// 课程没有学生或科目时直接返回空报表，不查询考勤
	Monthly(ctx context.Context, q *dto.ReportQuery) (*dto.ReportResponse, error)
	// Dashboard today 为零值时取服务器当天
	Dashboard(ctx context.Context, today time.Time) (*dto.DashboardStatsResponse, error)
}

type reportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReportService 创建 ReportService 实例
func NewReportService(repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// Monthly，课程月报
// ═══════════════════════════════════════════════════════════

func (s *reportService) Monthly(ctx context.Context, q *dto.ReportQuery) (*dto.ReportResponse, error) {
	if q.Month == nil {
		return nil, ErrInvalidMonth
	}
	start, end, err := report.MonthRange(*q.Month, q.Year)
	if err != nil {
		return nil, pkgerrors.Wrap(ErrInvalidMonth, err)
	}

	// 1. 课程
	course, err := s.repo.Catalog.GetCourse(ctx, q.Key())
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrCourseNotFound
		}
		return nil, translateStoreError(s.logger, "查询课程失败", err)
	}

	// 2. 范围：课程下的科目与学生
	subjects, err := s.repo.Subject.ListByCourse(ctx, course.ID)
	if err != nil {
		return nil, translateStoreError(s.logger, "查询科目失败", err, zap.Int64("course_id", course.ID))
	}
	students, err := s.repo.Student.ListByCourse(ctx, q.Key())
	if err != nil {
		return nil, translateStoreError(s.logger, "查询学生失败", err, zap.Int64("course_id", course.ID))
	}

	scope := report.Scope{
		Subjects: make(map[int64]string, len(subjects)),
		Students: make(map[int64]struct{}, len(students)),
	}
	subjectIDs := make([]int64, 0, len(subjects))
	for _, sub := range subjects {
		scope.Subjects[sub.ID] = sub.Name
		subjectIDs = append(subjectIDs, sub.ID)
	}
	studentIDs := make([]int64, 0, len(students))
	for _, st := range students {
		scope.Students[st.ID] = struct{}{}
		studentIDs = append(studentIDs, st.ID)
	}

	info := dto.StudentInfo{
		Semester:      course.Semester,
		MonthName:     start.Month().String(),
		Year:          q.Year,
		TotalStudents: len(students),
		TotalSubjects: len(subjects),
	}
	if course.Program != nil {
		info.Program = course.Program.Name
	}
	if course.Department != nil {
		info.Department = course.Department.Name
	}

	if scope.Empty() {
		return &dto.ReportResponse{
			StudentInfo: info,
			Summary:     report.EmptySummary(report.NoDataMessage),
			TableData:   []report.DayRow{},
		}, nil
	}

	// 3. 考勤
	records, err := s.repo.Attendance.ListMarks(ctx, repository.MarkFilter{
		SubjectIDs: subjectIDs,
		StudentIDs: studentIDs,
		From:       start,
		To:         end,
	})
	if err != nil {
		return nil, translateStoreError(s.logger, "查询考勤失败", err, zap.Int64("course_id", course.ID))
	}

	rows, summary := report.DailyClassReport(scope, toMarks(records), start.Month(), q.Year)
	return &dto.ReportResponse{
		StudentInfo: info,
		Summary:     summary,
		TableData:   rows,
	}, nil
}

// ═══════════════════════════════════════════════════════════
// Dashboard，管理端仪表盘
// ═══════════════════════════════════════════════════════════
//
// attendanceRate 与月报相同口径：分母为当天的考勤记录条数
// presentToday 为当天至少有一条 present/late 记录的学生人数

func (s *reportService) Dashboard(ctx context.Context, today time.Time) (*dto.DashboardStatsResponse, error) {
	if today.IsZero() {
		today = clock()
	}
	today = report.DayOf(today)

	teachers, err := s.repo.Teacher.Count(ctx)
	if err != nil {
		return nil, translateStoreError(s.logger, "统计教师数失败", err)
	}
	students, err := s.repo.Student.Count(ctx)
	if err != nil {
		return nil, translateStoreError(s.logger, "统计学生数失败", err)
	}
	counts, err := s.repo.Attendance.CountByStatusOnDate(ctx, today)
	if err != nil {
		return nil, translateStoreError(s.logger, "统计当日考勤失败", err)
	}
	present, err := s.repo.Attendance.CountAttendedStudentsOnDate(ctx, today)
	if err != nil {
		return nil, translateStoreError(s.logger, "统计当日出勤人数失败", err)
	}

	tally := report.TallyFromCounts(counts)
	return &dto.DashboardStatsResponse{
		TotalTeachers:  teachers,
		TotalStudents:  students,
		PresentToday:   present,
		AttendanceRate: tally.Percentage(),
	}, nil
}
