package dto

import "github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"

// ── 教师模块 DTO ──

// UpdateTeacherRequest 更新教师资料并同步科目分配
// subject_ids 为目标全集，[] 表示清空；重复 id 按一个处理
type UpdateTeacherRequest struct {
	Name         string  `json:"name"          binding:"required,notblank,max=100"`
	Email        string  `json:"email"         binding:"required,email,max=255"`
	DepartmentID int64   `json:"department_id" binding:"required,min=1"`
	SubjectIDs   []int64 `json:"subject_ids"   binding:"required,dive,min=1"`
}

// AssignSubjectRequest 单个分配
type AssignSubjectRequest struct {
	TeacherID string `json:"teacher_id" binding:"required,notblank"`
	SubjectID int64  `json:"subject_id" binding:"required,min=1"`
}

// TeacherResponse 教师信息（含已分配科目）
type TeacherResponse struct {
	ID           string                    `json:"id"`
	Name         string                    `json:"name"`
	Email        string                    `json:"email"`
	DepartmentID int64                     `json:"department_id"`
	Department   string                    `json:"department,omitempty"`
	Subjects     []AssignedSubjectResponse `json:"subjects"`
}

// AssignedSubjectResponse 分配记录 + 科目
type AssignedSubjectResponse struct {
	AssignmentID int64 `json:"assignment_id"`
	SubjectResponse
}

// AssignmentResponse 分配记录
type AssignmentResponse struct {
	ID        int64  `json:"id"`
	TeacherID string `json:"teacher_id"`
	SubjectID int64  `json:"subject_id"`
}

// NewAssignedSubjects 分配列表 → 响应，Subject 需预加载
func NewAssignedSubjects(list []model.TeacherSubject) []AssignedSubjectResponse {
	out := make([]AssignedSubjectResponse, 0, len(list))
	for i := range list {
		a := &list[i]
		item := AssignedSubjectResponse{AssignmentID: a.ID}
		if a.Subject != nil {
			item.SubjectResponse = NewSubjectResponse(a.Subject)
		} else {
			item.SubjectResponse = SubjectResponse{ID: a.SubjectID}
		}
		out = append(out, item)
	}
	return out
}

// NewTeacherResponse 需预加载 Department / Assignments
func NewTeacherResponse(t *model.Teacher) TeacherResponse {
	resp := TeacherResponse{
		ID:           t.ID,
		Name:         t.Name,
		Email:        t.Email,
		DepartmentID: t.DepartmentID,
		Subjects:     NewAssignedSubjects(t.Assignments),
	}
	if t.Department != nil {
		resp.Department = t.Department.Name
	}
	return resp
}
