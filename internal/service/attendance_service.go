package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/dto"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/report"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/repository"
	pkgerrors "github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/errors"
)

// ── 考勤模块业务错误 ──

var (
	ErrInvalidDate      = pkgerrors.New(pkgerrors.KindValidation, 10601, "日期格式应为 YYYY-MM-DD")
	ErrInvalidDateRange = pkgerrors.New(pkgerrors.KindValidation, 10602, "开始日期不能晚于结束日期")
	ErrInvalidMonth     = pkgerrors.New(pkgerrors.KindValidation, 10603, "月份应在 0-11 之间")
)

// AttendanceService 考勤业务接口
type AttendanceService interface {
	// Roster 科目所在课程的学生名单及当天状态，未记录为 nil
	Roster(ctx context.Context, q *dto.RosterQuery) (*dto.RosterResponse, error)
	// Save 单事务批量 upsert；学生不属于该课程或重复出现时整体拒绝
	Save(ctx context.Context, req *dto.SaveAttendanceRequest) (*dto.SaveAttendanceResponse, error)
	ClassReport(ctx context.Context, q *dto.ClassReportQuery) (*dto.ClassReportResponse, error)
	StudentStats(ctx context.Context, studentID int64, q *dto.StudentStatsQuery) (*dto.StudentStatsResponse, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

// ────────────────────── Roster ──────────────────────

func (s *attendanceService) Roster(ctx context.Context, q *dto.RosterQuery) (*dto.RosterResponse, error) {
	date, err := parseDate(q.Date)
	if err != nil {
		return nil, err
	}
	subject, err := getSubject(ctx, s.repo, s.logger, q.SubjectID)
	if err != nil {
		return nil, err
	}
	students, err := s.enrolled(ctx, subject)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.Attendance.ListBySubjectAndDate(ctx, subject.ID, date)
	if err != nil {
		return nil, translateStoreError(s.logger, "查询考勤失败", err, zap.Int64("subject_id", subject.ID))
	}
	statuses := make(map[int64]model.AttendanceStatus, len(records))
	for _, r := range records {
		statuses[r.StudentID] = r.Status
	}

	entries := make([]dto.RosterEntryResponse, 0, len(students))
	for _, st := range students {
		entry := dto.RosterEntryResponse{StudentID: st.ID, Name: st.Name, RollNumber: st.RollNumber}
		if status, ok := statuses[st.ID]; ok {
			status := status
			entry.Status = &status
		}
		entries = append(entries, entry)
	}

	return &dto.RosterResponse{
		Subject:  dto.NewSubjectResponse(subject),
		Date:     report.FormatDate(date),
		Students: entries,
	}, nil
}

// ────────────────────── Save ──────────────────────

func (s *attendanceService) Save(ctx context.Context, req *dto.SaveAttendanceRequest) (*dto.SaveAttendanceResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if len(req.Records) == 0 {
		return nil, pkgerrors.Validation("考勤记录不能为空")
	}
	subject, err := getSubject(ctx, s.repo, s.logger, req.SubjectID)
	if err != nil {
		return nil, err
	}
	students, err := s.enrolled(ctx, subject)
	if err != nil {
		return nil, err
	}

	enrolled := make(map[int64]struct{}, len(students))
	for _, st := range students {
		enrolled[st.ID] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(req.Records))
	var duplicated, outsiders []int64
	records := make([]model.Attendance, 0, len(req.Records))
	for _, m := range req.Records {
		if !m.Status.Valid() {
			return nil, pkgerrors.Validation(fmt.Sprintf("学生 %d 的考勤状态无效: %q", m.StudentID, m.Status))
		}
		if _, ok := seen[m.StudentID]; ok {
			duplicated = append(duplicated, m.StudentID)
			continue
		}
		seen[m.StudentID] = struct{}{}
		if _, ok := enrolled[m.StudentID]; !ok {
			outsiders = append(outsiders, m.StudentID)
			continue
		}
		records = append(records, model.Attendance{
			StudentID:      m.StudentID,
			SubjectID:      subject.ID,
			AttendanceDate: date,
			Status:         m.Status,
		})
	}
	if len(duplicated) > 0 {
		return nil, pkgerrors.Validation("同一学生重复出现: " + joinIDs(duplicated))
	}
	if len(outsiders) > 0 {
		return nil, pkgerrors.Validation("以下学生不属于该科目所在课程: " + joinIDs(outsiders))
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		return tx.Attendance.Upsert(ctx, records)
	})
	if err != nil {
		return nil, translateStoreError(s.logger, "保存考勤失败", err,
			zap.Int64("subject_id", subject.ID),
			zap.String("date", req.Date),
		)
	}

	s.logger.Info("考勤已保存",
		zap.Int64("subject_id", subject.ID),
		zap.String("date", req.Date),
		zap.Int("count", len(records)),
	)
	return &dto.SaveAttendanceResponse{Saved: len(records)}, nil
}

// ────────────────────── Reports ──────────────────────

func (s *attendanceService) ClassReport(ctx context.Context, q *dto.ClassReportQuery) (*dto.ClassReportResponse, error) {
	start, err := parseDate(q.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(q.EndDate)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	subject, err := getSubject(ctx, s.repo, s.logger, q.SubjectID)
	if err != nil {
		return nil, err
	}
	students, err := s.enrolled(ctx, subject)
	if err != nil {
		return nil, err
	}

	roster := make([]report.RosterEntry, 0, len(students))
	for _, st := range students {
		roster = append(roster, report.RosterEntry{StudentID: st.ID, Name: st.Name, RollNumber: st.RollNumber})
	}

	var marks []report.Mark
	if len(roster) > 0 {
		records, err := s.repo.Attendance.ListMarks(ctx, repository.MarkFilter{
			SubjectIDs: []int64{subject.ID},
			From:       start,
			To:         end,
		})
		if err != nil {
			return nil, translateStoreError(s.logger, "查询考勤失败", err, zap.Int64("subject_id", subject.ID))
		}
		marks = toMarks(records)
	}

	return &dto.ClassReportResponse{
		Subject:   dto.NewSubjectResponse(subject),
		StartDate: report.FormatDate(start),
		EndDate:   report.FormatDate(end),
		Students:  report.ClassRangeReport(roster, subject.ID, marks, start, end),
	}, nil
}

func (s *attendanceService) StudentStats(ctx context.Context, studentID int64, q *dto.StudentStatsQuery) (*dto.StudentStatsResponse, error) {
	if q.Month == nil {
		return nil, ErrInvalidMonth
	}
	start, end, err := report.MonthRange(*q.Month, q.Year)
	if err != nil {
		return nil, pkgerrors.Wrap(ErrInvalidMonth, err)
	}

	if _, err := getStudent(ctx, s.repo, s.logger, studentID); err != nil {
		return nil, err
	}
	subject, err := getSubject(ctx, s.repo, s.logger, q.SubjectID)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.Attendance.ListMarks(ctx, repository.MarkFilter{
		SubjectIDs: []int64{subject.ID},
		StudentIDs: []int64{studentID},
		From:       start,
		To:         end,
	})
	if err != nil {
		return nil, translateStoreError(s.logger, "查询考勤失败", err, zap.Int64("student_id", studentID))
	}

	return &dto.StudentStatsResponse{
		StudentID:    studentID,
		Subject:      dto.NewSubjectResponse(subject),
		Month:        *q.Month,
		Year:         q.Year,
		MonthlyStats: report.StudentMonthly(toMarks(records), start.Month(), q.Year),
	}, nil
}

// enrolled 科目所在课程的学生（按学号排序）
func (s *attendanceService) enrolled(ctx context.Context, subject *model.Subject) ([]model.Student, error) {
	if subject.Course == nil {
		course, err := s.repo.Catalog.GetCourseByID(ctx, subject.CourseID)
		if err != nil {
			return nil, translateStoreError(s.logger, "查询课程失败", err, zap.Int64("course_id", subject.CourseID))
		}
		subject.Course = course
	}
	c := subject.Course
	students, err := s.repo.Student.ListByCourse(ctx, model.CourseKey{
		ProgramID:    c.ProgramID,
		DepartmentID: c.DepartmentID,
		Semester:     c.Semester,
	})
	if err != nil {
		return nil, translateStoreError(s.logger, "查询学生名单失败", err, zap.Int64("course_id", c.ID))
	}
	return students, nil
}

// ── 辅助函数 ──

func parseDate(s string) (time.Time, error) {
	t, err := dto.ParseDate(s)
	if err != nil {
		return time.Time{}, pkgerrors.Wrap(ErrInvalidDate, err)
	}
	return t, nil
}

func toMarks(records []model.Attendance) []report.Mark {
	marks := make([]report.Mark, 0, len(records))
	for _, r := range records {
		marks = append(marks, report.Mark{
			StudentID: r.StudentID,
			SubjectID: r.SubjectID,
			Date:      r.AttendanceDate,
			Status:    r.Status,
		})
	}
	return marks
}

func joinIDs(ids []int64) string {
	sorted := append([]int64(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	parts := make([]string, 0, len(sorted))
	for _, id := range sorted {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ", ")
}
