package models

import "time"

// Banner 首页轮播图
type Banner struct {
	ID         uint      `gorm:"primarykey" json:"id"`                       // 主键
	Title      string    `gorm:"type:varchar(200);not null" json:"title"`    // 标题
	Subtitle   string    `gorm:"type:varchar(200)" json:"subtitle"`          // 副标题
	ButtonText string    `gorm:"type:varchar(50)" json:"button_text"`        // 按钮文案
	Image      string    `gorm:"type:varchar(500);not null" json:"image"`    // 图片
	SortOrder  int       `gorm:"default:0;index" json:"sort_order"`          // 排序
	IsActive   bool      `gorm:"default:true;index" json:"is_active"`        // 是否启用
	CreatedAt  time.Time `json:"created_at"`                                 // 创建时间
	UpdatedAt  time.Time `json:"updated_at"`                                 // 更新时间
}

// TableName 指定表名
func (Banner) TableName() string {
	return "banners"
}

// FeaturedCategory 首页推荐分类
type FeaturedCategory struct {
	ID         uint      `gorm:"primarykey" json:"id"`                    // 主键
	Title      string    `gorm:"type:varchar(100);not null" json:"title"` // 标题
	Subtitle   string    `gorm:"type:varchar(100)" json:"subtitle"`       // 副标题
	ButtonText string    `gorm:"type:varchar(50);default:'Shop Now'" json:"button_text"`
	Image      string    `gorm:"type:varchar(500);not null" json:"image"` // 图片
	SortOrder  int       `gorm:"default:0;index" json:"sort_order"`       // 排序
	IsActive   bool      `gorm:"default:true;index" json:"is_active"`     // 是否启用
	CreatedAt  time.Time `json:"created_at"`                              // 创建时间
	UpdatedAt  time.Time `json:"updated_at"`                              // 更新时间
}

// TableName 指定表名
func (FeaturedCategory) TableName() string {
	return "featured_categories"
}

// InstagramImage 首页 Instagram 图片条
type InstagramImage struct {
	ID        uint      `gorm:"primarykey" json:"id"`                    // 主键
	Image     string    `gorm:"type:varchar(500);not null" json:"image"` // 图片
	AltText   string    `gorm:"type:varchar(255)" json:"alt_text"`       // 替代文本
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`       // 排序
	IsActive  bool      `gorm:"default:true;index" json:"is_active"`     // 是否启用
	CreatedAt time.Time `json:"created_at"`                              // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                              // 更新时间
}

// TableName 指定表名
func (InstagramImage) TableName() string {
	return "instagram_images"
}
