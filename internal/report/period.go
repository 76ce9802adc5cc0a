package report

import (
	"fmt"
	"time"
)

// MonthRange 返回月份的首日与末日（UTC）；month0 为 0 起始的月份（0=一月）
func MonthRange(month0, year int) (time.Time, time.Time, error) {
	if month0 < 0 || month0 > 11 {
		return time.Time{}, time.Time{}, fmt.Errorf("month 必须在 0-11 之间: %d", month0)
	}
	if year < 1970 || year > 9999 {
		return time.Time{}, time.Time{}, fmt.Errorf("year 不合法: %d", year)
	}
	start := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

// InRange 日期是否落在 [start, end]（按自然日比较，含两端）
func InRange(t, start, end time.Time) bool {
	d := DayOf(t)
	return !d.Before(DayOf(start)) && !d.After(DayOf(end))
}

// FormatDate 统一的日期输出格式
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
