package model

import "time"

// AttendanceStatus 考勤状态；未记录 = 无记录，不是第四种状态
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
)

// Valid 是否为合法状态
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	default:
		return false
	}
}

// Attended 出勤（present 与 late 均计入出勤率分子）
func (s AttendanceStatus) Attended() bool {
	return s == StatusPresent || s == StatusLate
}

// Attendance 考勤记录表，对应 attendance
// (student_id, subject_id, attendance_date) 唯一
type Attendance struct {
	ID             int64            `gorm:"primaryKey;autoIncrement"  json:"id"`
	StudentID      int64            `gorm:"not null"                  json:"student_id"`
	SubjectID      int64            `gorm:"not null"                  json:"subject_id"`
	AttendanceDate time.Time        `gorm:"type:date;not null"        json:"attendance_date"`
	Status         AttendanceStatus `gorm:"type:varchar(10);not null" json:"status"`
	Timestamps
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendance" }
