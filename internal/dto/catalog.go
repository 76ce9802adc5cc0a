package dto

import (
	"time"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
)

// DateLayout 请求与响应中的日期格式
const DateLayout = "2006-01-02"

// ParseDate 解析 YYYY-MM-DD，结果为 UTC 零点
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// ── 基础数据 DTO ──

// CatalogItem 专业 / 院系简要信息
type CatalogItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CohortQuery 按 专业 / 院系 / 学期 筛选，零值表示不筛选
type CohortQuery struct {
	ProgramID    int64 `form:"program_id"    binding:"omitempty,min=1"`
	DepartmentID int64 `form:"department_id" binding:"omitempty,min=1"`
	Semester     int   `form:"semester"      binding:"omitempty,min=1,max=12"`
}

// CourseQuery 课程精确查询
type CourseQuery struct {
	ProgramID    int64 `form:"program_id"    binding:"required,min=1"`
	DepartmentID int64 `form:"department_id" binding:"required,min=1"`
	Semester     int   `form:"semester"      binding:"required,min=1,max=12"`
}

// Key 转为课程三元组
func (q *CourseQuery) Key() model.CourseKey {
	return model.CourseKey{ProgramID: q.ProgramID, DepartmentID: q.DepartmentID, Semester: q.Semester}
}

// CourseResponse 课程信息
type CourseResponse struct {
	ID         int64       `json:"id"`
	Program    CatalogItem `json:"program"`
	Department CatalogItem `json:"department"`
	Semester   int         `json:"semester"`
}

// ── 转换 ──

// ProgramItem model → CatalogItem
func ProgramItem(p *model.Program) *CatalogItem {
	if p == nil {
		return nil
	}
	return &CatalogItem{ID: p.ID, Name: p.Name}
}

// DepartmentItem model → CatalogItem
func DepartmentItem(d *model.Department) *CatalogItem {
	if d == nil {
		return nil
	}
	return &CatalogItem{ID: d.ID, Name: d.Name}
}

// NewCourseResponse 需预加载 Program / Department
func NewCourseResponse(c *model.Course) CourseResponse {
	resp := CourseResponse{
		ID:         c.ID,
		Program:    CatalogItem{ID: c.ProgramID},
		Department: CatalogItem{ID: c.DepartmentID},
		Semester:   c.Semester,
	}
	if c.Program != nil {
		resp.Program.Name = c.Program.Name
	}
	if c.Department != nil {
		resp.Department.Name = c.Department.Name
	}
	return resp
}
