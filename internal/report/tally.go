// Package report 考勤统计引擎：把原始考勤记录归约为日报、班级区间报表与个人月度统计。
//
// 三种报表共用同一个归约函数 Reduce 与同一个出勤率函数 Percentage，
// 保证各处的百分比口径与取整方式完全一致。本包不依赖存储层。
package report

import "github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"

// Percentage 出勤率（整数百分比，四舍五入，0.5 向上）
//
//	round(100 * (present + late) / total)，total <= 0 时为 0
//
// 使用整数运算避免浮点误差：floor((200*attended + total) / (2*total))
func Percentage(present, late, total int) int {
	if total <= 0 {
		return 0
	}
	attended := present + late
	if attended <= 0 {
		return 0
	}
	return (200*attended + total) / (2 * total)
}

// Tally 三种状态的计数
type Tally struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
}

// Add 按状态累加 n 次，未知状态忽略
func (t *Tally) Add(status model.AttendanceStatus, n int) {
	switch status {
	case model.StatusPresent:
		t.Present += n
	case model.StatusAbsent:
		t.Absent += n
	case model.StatusLate:
		t.Late += n
	}
}

// Merge 合并另一组计数
func (t *Tally) Merge(o Tally) {
	t.Present += o.Present
	t.Absent += o.Absent
	t.Late += o.Late
}

// Total 已记录的考勤条数
func (t Tally) Total() int {
	return t.Present + t.Absent + t.Late
}

// Attended 出勤条数（present + late）
func (t Tally) Attended() int {
	return t.Present + t.Late
}

// Percentage 出勤率
func (t Tally) Percentage() int {
	return Percentage(t.Present, t.Late, t.Total())
}

// TallyFromCounts 由按状态分组的计数构造 Tally
func TallyFromCounts(counts map[model.AttendanceStatus]int64) Tally {
	var t Tally
	for status, n := range counts {
		t.Add(status, int(n))
	}
	return t
}
