package model

// Admin 管理员表，对应 admins
type Admin struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"          json:"id"`
	Name         string `gorm:"type:varchar(100);not null"        json:"name"`
	Email        string `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"        json:"-"`
	Timestamps
}

// TableName 指定表名
func (Admin) TableName() string { return "admins" }
