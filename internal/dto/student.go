package dto

import "github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"

// ── 学生模块 DTO ──

// UpdateStudentRequest 更新学生信息
type UpdateStudentRequest struct {
	Name         string `json:"name"          binding:"required,notblank,max=100"`
	Email        string `json:"email"         binding:"required,email,max=255"`
	RollNumber   string `json:"roll_number"   binding:"required,notblank,max=50"`
	ProgramID    int64  `json:"program_id"    binding:"required,min=1"`
	DepartmentID int64  `json:"department_id" binding:"required,min=1"`
	Semester     int    `json:"semester"      binding:"required,min=1,max=12"`
}

// StudentResponse 学生信息
type StudentResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	RollNumber   string `json:"roll_number"`
	ProgramID    int64  `json:"program_id"`
	Program      string `json:"program,omitempty"`
	DepartmentID int64  `json:"department_id"`
	Department   string `json:"department,omitempty"`
	Semester     int    `json:"semester"`
}

// NewStudentResponse Program / Department 可未预加载
func NewStudentResponse(s *model.Student) StudentResponse {
	resp := StudentResponse{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		RollNumber:   s.RollNumber,
		ProgramID:    s.ProgramID,
		DepartmentID: s.DepartmentID,
		Semester:     s.Semester,
	}
	if s.Program != nil {
		resp.Program = s.Program.Name
	}
	if s.Department != nil {
		resp.Department = s.Department.Name
	}
	return resp
}
