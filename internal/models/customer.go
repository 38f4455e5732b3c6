package models

import "time"

// Customer 顾客档案（与账号一对一）
type Customer struct {
	ID        uint      `gorm:"primarykey" json:"id"`                // 主键
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"` // 账号ID
	Name      string    `gorm:"type:varchar(200)" json:"name"`       // 姓名
	Phone     string    `gorm:"type:varchar(15)" json:"phone"`       // 电话
	Email     string    `gorm:"type:varchar(200);index" json:"email"`
	CreatedAt time.Time `json:"created_at"` // 创建时间
	UpdatedAt time.Time `json:"updated_at"` // 更新时间
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}
