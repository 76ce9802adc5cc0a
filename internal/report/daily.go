package report

import (
	"sort"
	"strings"
	"time"
)

// NoDataMessage 课程下没有学生或科目时的提示
const NoDataMessage = "no students or subjects found"

// Scope 报表范围：课程下的科目（id → 名称）与学生
type Scope struct {
	Subjects map[int64]string
	Students map[int64]struct{}
}

// Empty 没有学生或没有科目
func (s Scope) Empty() bool {
	return len(s.Subjects) == 0 || len(s.Students) == 0
}

// Contains 记录是否属于本范围
func (s Scope) Contains(m Mark) bool {
	if _, ok := s.Subjects[m.SubjectID]; !ok {
		return false
	}
	_, ok := s.Students[m.StudentID]
	return ok
}

// DayRow 月报中的一天
type DayRow struct {
	Date     string `json:"date"`
	Weekday  string `json:"day"`
	Present  int    `json:"present"`
	Absent   int    `json:"absent"`
	Late     int    `json:"late"`
	Subjects string `json:"subjects"`
}

// Summary 月报汇总
type Summary struct {
	TotalDays                int    `json:"total_days"`
	TotalPresent             int    `json:"total_present"`
	TotalAbsent              int    `json:"total_absent"`
	TotalLate                int    `json:"total_late"`
	AverageAttendancePercent int    `json:"average_attendance"`
	Message                  string `json:"message,omitempty"`
}

// EmptySummary 无数据汇总
func EmptySummary(message string) Summary {
	return Summary{Message: message}
}

// DailyClassReport 课程月报：按自然日分组
//   - 仅统计落在 month/year 且属于 scope 的记录
//   - 每天累计三种状态计数与当天涉及的科目名
//   - 汇总的出勤率以记录条数为分母
func DailyClassReport(scope Scope, marks []Mark, month time.Month, year int) ([]DayRow, Summary) {
	buckets := Reduce(marks, func(m Mark) (time.Time, bool) {
		if m.Date.Year() != year || m.Date.Month() != month {
			return time.Time{}, false
		}
		return m.Day(), scope.Contains(m)
	})

	days := make([]time.Time, 0, len(buckets))
	for d := range buckets {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	rows := make([]DayRow, 0, len(days))
	var total Tally
	for _, d := range days {
		b := buckets[d]
		total.Merge(b.Tally)

		names := make([]string, 0, len(b.subjects))
		for _, id := range b.SubjectIDs() {
			names = append(names, scope.Subjects[id])
		}
		sort.Strings(names)

		rows = append(rows, DayRow{
			Date:     FormatDate(d),
			Weekday:  d.Weekday().String(),
			Present:  b.Present,
			Absent:   b.Absent,
			Late:     b.Late,
			Subjects: strings.Join(names, ", "),
		})
	}

	return rows, Summary{
		TotalDays:                len(rows),
		TotalPresent:             total.Present,
		TotalAbsent:              total.Absent,
		TotalLate:                total.Late,
		AverageAttendancePercent: total.Percentage(),
	}
}
