package models

import "time"

// Newsletter 订阅线索
type Newsletter struct {
	ID        uint      `gorm:"primarykey" json:"id"` // 主键
	Username  string    `gorm:"type:varchar(100)" json:"username"`
	Email     string    `gorm:"type:varchar(254);uniqueIndex;not null" json:"email"` // 邮箱（唯一）
	CreatedAt time.Time `json:"created_at"`                                          // 创建时间
}

// TableName 指定表名
func (Newsletter) TableName() string {
	return "newsletters"
}

// ContactUs 联系我们留言
type ContactUs struct {
	ID        uint      `gorm:"primarykey" json:"id"` // 主键
	FirstName string    `gorm:"type:varchar(100)" json:"firstname"`
	LastName  string    `gorm:"type:varchar(100)" json:"lastname"`
	Email     string    `gorm:"type:varchar(254)" json:"email"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"` // 创建时间
}

// TableName 指定表名
func (ContactUs) TableName() string {
	return "contact_us"
}
