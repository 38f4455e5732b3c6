package models

// SizeOption 全局尺码表
type SizeOption struct {
	ID   uint   `gorm:"primarykey" json:"id"`                          // 主键
	Code string `gorm:"type:varchar(5);uniqueIndex;not null" json:"code"` // 尺码编码（如 M / L / XL）
}

// TableName 指定表名
func (SizeOption) TableName() string {
	return "size_options"
}

// ProductSize 商品尺码可售状态（商品 × 尺码 唯一）
type ProductSize struct {
	ID          uint `gorm:"primarykey" json:"id"`                                          // 主键
	ProductID   uint `gorm:"not null;uniqueIndex:idx_product_size" json:"product_id"`       // 商品ID
	SizeID      uint `gorm:"not null;uniqueIndex:idx_product_size" json:"size_id"`          // 尺码ID
	IsAvailable bool `gorm:"not null;default:true" json:"is_available"`                     // 是否可售

	Size *SizeOption `gorm:"foreignKey:SizeID" json:"size,omitempty"` // 关联尺码
}

// TableName 指定表名
func (ProductSize) TableName() string {
	return "product_sizes"
}
