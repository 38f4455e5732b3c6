package models

import "time"

// Product 商品表
type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`                            // 主键
	Name        string    `gorm:"type:varchar(200);not null;index" json:"name"`    // 商品名称
	Price       Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价
	Category    string    `gorm:"type:varchar(100);index" json:"category"`         // 分类名
	Tagline     string    `gorm:"type:varchar(200)" json:"tagline"`                // 一句话卖点
	Description string    `gorm:"type:text" json:"description"`                    // 详情描述
	Image       string    `gorm:"type:varchar(500)" json:"image"`                  // 主图路径
	IsDigital   bool      `gorm:"default:false" json:"is_digital"`                 // 虚拟商品标记
	IsFeatured  bool      `gorm:"default:false;index" json:"is_featured"`          // 首页推荐
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                         // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                      // 更新时间

	// 关联
	Images []ProductImage `gorm:"foreignKey:ProductID" json:"images,omitempty"` // 附加图片
	Sizes  []ProductSize  `gorm:"foreignKey:ProductID" json:"sizes,omitempty"`  // 尺码可售状态
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// ProductImage 商品附加图片
type ProductImage struct {
	ID        uint      `gorm:"primarykey" json:"id"`             // 主键
	ProductID uint      `gorm:"index;not null" json:"product_id"` // 商品ID
	Image     string    `gorm:"type:varchar(500);not null" json:"image"`
	CreatedAt time.Time `json:"created_at"` // 创建时间
}

// TableName 指定表名
func (ProductImage) TableName() string {
	return "product_images"
}
