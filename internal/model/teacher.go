package model

// Teacher 教师表，对应 teachers，ID 为学校分配的工号
type Teacher struct {
	ID           string `gorm:"type:varchar(50);primaryKey"       json:"id"`
	Name         string `gorm:"type:varchar(100);not null"        json:"name"`
	Email        string `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"        json:"-"`
	DepartmentID int64  `gorm:"not null"                          json:"department_id"`
	Timestamps

	// 关联
	Department  *Department      `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Assignments []TeacherSubject `gorm:"foreignKey:TeacherID"    json:"assignments,omitempty"`
}

// TableName 指定表名
func (Teacher) TableName() string { return "teachers" }
