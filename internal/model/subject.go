package model

// Subject 科目表，对应 subjects，每个科目只属于一个课程
type Subject struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name     string `gorm:"type:varchar(150);not null" json:"name"`
	CourseID int64  `gorm:"not null"                   json:"course_id"`
	Timestamps

	// 关联
	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

// TableName 指定表名
func (Subject) TableName() string { return "subjects" }
