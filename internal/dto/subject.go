package dto

import "github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"

// ── 科目模块 DTO ──

// AddSubjectsToCourseRequest 向课程批量添加科目（课程不存在时自动创建）
type AddSubjectsToCourseRequest struct {
	ProgramID    int64    `json:"program_id"    binding:"required,min=1"`
	DepartmentID int64    `json:"department_id" binding:"required,min=1"`
	Semester     int      `json:"semester"      binding:"required,min=1,max=12"`
	SubjectNames []string `json:"subject_names" binding:"required,min=1,dive,notblank,max=150"`
}

// Key 转为课程三元组
func (r *AddSubjectsToCourseRequest) Key() model.CourseKey {
	return model.CourseKey{ProgramID: r.ProgramID, DepartmentID: r.DepartmentID, Semester: r.Semester}
}

// SubjectResponse 科目信息（含所属课程三元组）
type SubjectResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CourseID     int64  `json:"course_id"`
	ProgramID    int64  `json:"program_id"`
	Program      string `json:"program,omitempty"`
	DepartmentID int64  `json:"department_id"`
	Department   string `json:"department,omitempty"`
	Semester     int    `json:"semester"`
}

// AddSubjectsResponse 添加科目结果
type AddSubjectsResponse struct {
	Course   CourseResponse    `json:"course"`
	Subjects []SubjectResponse `json:"subjects"`
}

// NewSubjectResponse Course 未预加载时只填科目自身字段
func NewSubjectResponse(s *model.Subject) SubjectResponse {
	resp := SubjectResponse{ID: s.ID, Name: s.Name, CourseID: s.CourseID}
	if c := s.Course; c != nil {
		resp.ProgramID = c.ProgramID
		resp.DepartmentID = c.DepartmentID
		resp.Semester = c.Semester
		if c.Program != nil {
			resp.Program = c.Program.Name
		}
		if c.Department != nil {
			resp.Department = c.Department.Name
		}
	}
	return resp
}

// NewSubjectResponses 批量转换
func NewSubjectResponses(list []model.Subject) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(list))
	for i := range list {
		out = append(out, NewSubjectResponse(&list[i]))
	}
	return out
}
