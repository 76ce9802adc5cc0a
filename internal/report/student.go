package report

import (
	"sort"
	"time"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
)

// DayMark 月历中的一天
type DayMark struct {
	Date    string                 `json:"date"`
	Day     int                    `json:"day"`
	Weekday string                 `json:"weekday"`
	Status  model.AttendanceStatus `json:"status"`
}

// MonthlyStats 单个学生单个科目的月度统计
type MonthlyStats struct {
	TotalDays  int       `json:"total_days"`
	Present    int       `json:"present"`
	Absent     int       `json:"absent"`
	Late       int       `json:"late"`
	Percentage int       `json:"attendance_percentage"`
	Days       []DayMark `json:"days"`
}

// StudentMonthly 学生月度统计；marks 应已限定为同一学生同一科目
func StudentMonthly(marks []Mark, month time.Month, year int) MonthlyStats {
	inMonth := func(m Mark) bool {
		return m.Date.Year() == year && m.Date.Month() == month
	}
	b := Total(marks, inMonth)

	days := make([]DayMark, 0, b.Total())
	for _, m := range marks {
		if !inMonth(m) || !m.Status.Valid() {
			continue
		}
		d := m.Day()
		days = append(days, DayMark{
			Date:    FormatDate(d),
			Day:     d.Day(),
			Weekday: d.Weekday().String(),
			Status:  m.Status,
		})
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return MonthlyStats{
		TotalDays:  b.Total(),
		Present:    b.Present,
		Absent:     b.Absent,
		Late:       b.Late,
		Percentage: b.Percentage(),
		Days:       days,
	}
}
