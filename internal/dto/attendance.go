package dto

import (
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/report"
)

// ── 考勤模块 DTO ──

// RosterQuery 点名名单查询
type RosterQuery struct {
	SubjectID int64  `form:"subject_id" binding:"required,min=1"`
	Date      string `form:"date"       binding:"required,ymd"`
}

// SaveAttendanceRequest 批量保存某科目某天的考勤
// 未点名的学生由调用方省略，不会写入第四种状态
type SaveAttendanceRequest struct {
	SubjectID int64            `json:"subject_id" binding:"required,min=1"`
	Date      string           `json:"date"       binding:"required,ymd"`
	Records   []AttendanceMark `json:"records"    binding:"required,min=1,dive"`
}

// AttendanceMark 单个学生的考勤状态
type AttendanceMark struct {
	StudentID int64                  `json:"student_id" binding:"required,min=1"`
	Status    model.AttendanceStatus `json:"status"     binding:"required,attendance_status"`
}

// ClassReportQuery 班级区间报表查询，日期为闭区间
type ClassReportQuery struct {
	SubjectID int64  `form:"subject_id" binding:"required,min=1"`
	StartDate string `form:"start_date" binding:"required,ymd"`
	EndDate   string `form:"end_date"   binding:"required,ymd"`
}

// StudentStatsQuery 学生月度统计查询，month 从 0 开始
type StudentStatsQuery struct {
	SubjectID int64 `form:"subject_id" binding:"required,min=1"`
	Month     *int  `form:"month"      binding:"required,min=0,max=11"`
	Year      int   `form:"year"       binding:"required,min=1970,max=9999"`
}

// RosterEntryResponse 名单中的一名学生，status 为 null 表示当天未记录
type RosterEntryResponse struct {
	StudentID  int64                   `json:"student_id"`
	Name       string                  `json:"name"`
	RollNumber string                  `json:"roll_number"`
	Status     *model.AttendanceStatus `json:"status"`
}

// RosterResponse 点名名单
type RosterResponse struct {
	Subject  SubjectResponse       `json:"subject"`
	Date     string                `json:"date"`
	Students []RosterEntryResponse `json:"students"`
}

// SaveAttendanceResponse 保存结果
type SaveAttendanceResponse struct {
	Saved int `json:"saved"`
}

// ClassReportResponse 班级区间报表
type ClassReportResponse struct {
	Subject   SubjectResponse     `json:"subject"`
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	Students  []report.StudentRow `json:"students"`
}

// StudentStatsResponse 学生月度统计
type StudentStatsResponse struct {
	StudentID int64           `json:"student_id"`
	Subject   SubjectResponse `json:"subject"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	report.MonthlyStats
}
