package dto

import "github.com/souravmahato2004/Attendance-Management-System-sub000/internal/report"

// ── 管理端报表 DTO ──

// ReportQuery 课程月报查询，month 从 0 开始
type ReportQuery struct {
	CourseQuery
	Month *int `form:"month" binding:"required,min=0,max=11"`
	Year  int  `form:"year"  binding:"required,min=1970,max=9999"`
}

// ExportQuery 月报导出
type ExportQuery struct {
	ReportQuery
	Format string `form:"format" binding:"omitempty,oneof=xlsx pdf"`
}

// DashboardQuery 仪表盘查询，today 缺省为服务器当天
type DashboardQuery struct {
	Today string `form:"today" binding:"omitempty,ymd"`
}

// StudentInfo 月报抬头
type StudentInfo struct {
	Program       string `json:"program"`
	Department    string `json:"department"`
	Semester      int    `json:"semester"`
	MonthName     string `json:"month_name"`
	Year          int    `json:"year"`
	TotalStudents int    `json:"total_students"`
	TotalSubjects int    `json:"total_subjects"`
}

// ReportResponse 课程月报
type ReportResponse struct {
	StudentInfo StudentInfo     `json:"studentInfo"`
	Summary     report.Summary  `json:"summary"`
	TableData   []report.DayRow `json:"tableData"`
}

// DashboardStatsResponse 管理端仪表盘
type DashboardStatsResponse struct {
	TotalTeachers  int64 `json:"totalTeachers"`
	TotalStudents  int64 `json:"totalStudents"`
	PresentToday   int64 `json:"presentToday"`
	AttendanceRate int   `json:"attendanceRate"`
}
