package model

// Student 学生表，对应 students
// 学生通过 (program_id, department_id, semester) 归属到课程
type Student struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"          json:"id"`
	Name         string `gorm:"type:varchar(100);not null"        json:"name"`
	Email        string `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"        json:"-"`
	RollNumber   string `gorm:"type:varchar(50);not null;unique"  json:"roll_number"`
	ProgramID    int64  `gorm:"not null"                          json:"program_id"`
	DepartmentID int64  `gorm:"not null"                          json:"department_id"`
	Semester     int    `gorm:"not null"                          json:"semester"`
	Timestamps

	// 关联
	Program    *Program    `gorm:"foreignKey:ProgramID"    json:"program,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }

// CourseKey 学生所在课程三元组
func (s *Student) CourseKey() CourseKey {
	return CourseKey{ProgramID: s.ProgramID, DepartmentID: s.DepartmentID, Semester: s.Semester}
}
