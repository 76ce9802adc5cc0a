package model

// Program 专业表，对应 programs（静态基础数据）
type Program struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"          json:"id"`
	Name string `gorm:"type:varchar(100);not null;unique" json:"name"`
	Timestamps
}

// TableName 指定表名
func (Program) TableName() string { return "programs" }
