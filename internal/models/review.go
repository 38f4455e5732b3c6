package models

import "time"

// Review 商品评价（1-5 星 + 评论）
type Review struct {
	ID        uint      `gorm:"primarykey" json:"id"`             // 主键
	ProductID uint      `gorm:"index;not null" json:"product_id"` // 商品ID
	UserID    uint      `gorm:"index;not null" json:"user_id"`    // 用户ID
	Rating    int       `gorm:"not null" json:"rating"`           // 评分（1-5）
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `gorm:"index" json:"created_at"` // 创建时间

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"` // 评价人
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}
