package model

// Course 课程表，对应 courses
// (program_id, department_id, semester) 唯一，标识一届学生的培养方案
type Course struct {
	ID           int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ProgramID    int64 `gorm:"not null"                 json:"program_id"`
	DepartmentID int64 `gorm:"not null"                 json:"department_id"`
	Semester     int   `gorm:"not null"                 json:"semester"`
	Timestamps

	// 关联
	Program    *Program    `gorm:"foreignKey:ProgramID"    json:"program,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }

// CourseKey 课程三元组
type CourseKey struct {
	ProgramID    int64
	DepartmentID int64
	Semester     int
}
