package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/dto"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/report"
)

func monthlyQuery(key model.CourseKey, month0, year int) *dto.ReportQuery {
	return &dto.ReportQuery{
		CourseQuery: dto.CourseQuery{ProgramID: key.ProgramID, DepartmentID: key.DepartmentID, Semester: key.Semester},
		Month:       intPtr(month0),
		Year:        year,
	}
}

func TestReportService_MonthlySingleDay(t *testing.T) {
	env := newSeededEnv()
	env.seedMark(1, 100, 10, day(2025, 1, 5), model.StatusPresent)
	env.seedMark(2, 101, 10, day(2025, 1, 5), model.StatusAbsent)
	env.seedMark(3, 100, 11, day(2025, 1, 5), model.StatusLate)
	// 其他月份、其他课程的记录不计入
	env.seedMark(4, 100, 10, day(2025, 2, 5), model.StatusAbsent)
	env.seedCourse(2, cohortKey(2, 2, 1))
	env.seedSubject(20, 2, "Circuits")
	env.seedMark(5, 100, 20, day(2025, 1, 5), model.StatusAbsent)
	svc := NewReportService(env.repo, nopLogger)

	resp, err := svc.Monthly(context.Background(), monthlyQuery(cohort, 0, 2025))
	if err != nil {
		t.Fatalf("月报失败: %v", err)
	}

	info := resp.StudentInfo
	if info.Program != "B.Tech" || info.Department != "Computer Science" || info.MonthName != "January" ||
		info.TotalStudents != 2 || info.TotalSubjects != 2 {
		t.Errorf("月报抬头错误: %+v", info)
	}
	if len(resp.TableData) != 1 {
		t.Fatalf("期望 1 天，实际 %d", len(resp.TableData))
	}
	row := resp.TableData[0]
	if row.Date != "2025-01-05" || row.Weekday != "Sunday" || row.Present != 1 || row.Absent != 1 || row.Late != 1 {
		t.Errorf("日报行错误: %+v", row)
	}
	if row.Subjects != "Math, Physics" {
		t.Errorf("科目应为 \"Math, Physics\"，实际 %q", row.Subjects)
	}
	sum := resp.Summary
	if sum.TotalDays != 1 || sum.AverageAttendancePercent != 67 || sum.Message != "" {
		t.Errorf("汇总错误: %+v", sum)
	}
}

func TestReportService_MonthlyEmptyCourse(t *testing.T) {
	env := newTestEnv()
	env.seedCourse(1, cohort)
	env.seedSubject(10, 1, "Math")
	svc := NewReportService(env.repo, nopLogger)

	resp, err := svc.Monthly(context.Background(), monthlyQuery(cohort, 0, 2025))
	if err != nil {
		t.Fatalf("月报失败: %v", err)
	}
	if resp.TableData == nil || len(resp.TableData) != 0 {
		t.Errorf("tableData 应为空数组，实际 %+v", resp.TableData)
	}
	if resp.Summary.Message != report.NoDataMessage || resp.Summary.TotalDays != 0 {
		t.Errorf("汇总应为无数据提示: %+v", resp.Summary)
	}
	if env.store.calls["attendance.ListMarks"] != 0 {
		t.Error("课程没有学生时不应查询考勤")
	}
}

func TestReportService_MonthlyErrors(t *testing.T) {
	env := newSeededEnv()
	svc := NewReportService(env.repo, nopLogger)
	ctx := context.Background()

	_, err := svc.Monthly(ctx, monthlyQuery(cohortKey(2, 2, 8), 0, 2025))
	assertIs(t, err, ErrCourseNotFound)

	_, err = svc.Monthly(ctx, monthlyQuery(cohort, 12, 2025))
	assertIs(t, err, ErrInvalidMonth)

	env.store.failOn["attendance.ListMarks"] = errors.New("timeout")
	_, err = svc.Monthly(ctx, monthlyQuery(cohort, 0, 2025))
	assertIs(t, err, ErrInternal)
}

func TestReportService_Dashboard(t *testing.T) {
	env := newSeededEnv()
	env.seedTeacher("T-1", "t1@school.test")
	env.seedStudent(102, "Chen", "R-03", cohort)
	today := day(2025, 1, 5)
	// Asha 两门都出勤只计一人；Bilal 迟到计入；Chen 缺勤
	env.seedMark(1, 100, 10, today, model.StatusPresent)
	env.seedMark(2, 100, 11, today, model.StatusPresent)
	env.seedMark(3, 101, 10, today, model.StatusLate)
	env.seedMark(4, 102, 10, today, model.StatusAbsent)
	env.seedMark(5, 102, 10, day(2025, 1, 4), model.StatusPresent)
	svc := NewReportService(env.repo, nopLogger)

	stats, err := svc.Dashboard(context.Background(), today)
	if err != nil {
		t.Fatalf("仪表盘失败: %v", err)
	}
	want := dto.DashboardStatsResponse{TotalTeachers: 1, TotalStudents: 3, PresentToday: 2, AttendanceRate: 75}
	if *stats != want {
		t.Errorf("期望 %+v，实际 %+v", want, *stats)
	}

	// 当天无记录
	stats, err = svc.Dashboard(context.Background(), day(2025, 3, 1))
	if err != nil || stats.PresentToday != 0 || stats.AttendanceRate != 0 {
		t.Errorf("无记录时应为 0: %+v, err=%v", stats, err)
	}
}

func TestReportService_DashboardDefaultsToClock(t *testing.T) {
	env := newSeededEnv()
	env.seedMark(1, 100, 10, day(2025, 6, 1), model.StatusPresent)
	svc := NewReportService(env.repo, nopLogger)

	orig := clock
	clock = func() time.Time { return time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC) }
	defer func() { clock = orig }()

	stats, err := svc.Dashboard(context.Background(), time.Time{})
	if err != nil || stats.PresentToday != 1 || stats.AttendanceRate != 100 {
		t.Errorf("应统计服务器当天: %+v, err=%v", stats, err)
	}
}
