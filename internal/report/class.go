package report

import "time"

// RosterEntry 名单中的一名学生
type RosterEntry struct {
	StudentID  int64
	Name       string
	RollNumber string
}

// StudentRow 班级区间报表中的一行
// 仅输出原始计数与个人出勤率，合计行由调用方按行求和
type StudentRow struct {
	StudentID    int64  `json:"student_id"`
	Name         string `json:"name"`
	RollNumber   string `json:"roll_number"`
	TotalClasses int    `json:"total_classes"`
	Present      int    `json:"present"`
	Absent       int    `json:"absent"`
	Late         int    `json:"late"`
	Percentage   int    `json:"attendance_percentage"`
}

// ClassRangeReport 单科目、日期区间 [start, end] 的班级报表
// 按名单顺序每名学生一行；没有记录的学生各项为 0
func ClassRangeReport(roster []RosterEntry, subjectID int64, marks []Mark, start, end time.Time) []StudentRow {
	enrolled := make(map[int64]struct{}, len(roster))
	for _, r := range roster {
		enrolled[r.StudentID] = struct{}{}
	}

	buckets := Reduce(marks, func(m Mark) (int64, bool) {
		if m.SubjectID != subjectID || !InRange(m.Date, start, end) {
			return 0, false
		}
		_, ok := enrolled[m.StudentID]
		return m.StudentID, ok
	})

	rows := make([]StudentRow, 0, len(roster))
	for _, r := range roster {
		row := StudentRow{
			StudentID:  r.StudentID,
			Name:       r.Name,
			RollNumber: r.RollNumber,
		}
		if b, ok := buckets[r.StudentID]; ok {
			row.TotalClasses = b.Total()
			row.Present = b.Present
			row.Absent = b.Absent
			row.Late = b.Late
			row.Percentage = b.Percentage()
		}
		rows = append(rows, row)
	}
	return rows
}
