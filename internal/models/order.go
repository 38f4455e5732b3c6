package models

import "time"

// Order 订单表。complete 为 false 时即购物车；结算后不可变。
//
// OpenSlot 在订单未结算时恒为 1，结算/取消后置 NULL；与 customer_id 组成
// 唯一索引，由数据库保证同一顾客最多只有一张未结算订单。
type Order struct {
	ID             uint       `gorm:"primarykey" json:"id"`                                           // 主键
	OrderNo        string     `gorm:"type:varchar(20);uniqueIndex" json:"order_no"`                   // 订单编号（结算时生成，不可变）
	CustomerID     uint       `gorm:"not null;index;uniqueIndex:idx_orders_customer_open" json:"customer_id"` // 顾客ID
	OpenSlot       *int16     `gorm:"uniqueIndex:idx_orders_customer_open" json:"-"`                  // 未结算占位（1 / NULL）
	Status         string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"` // 订单状态
	PaymentMethod  string     `gorm:"type:varchar(50)" json:"payment_method"`                         // 支付方式
	TransactionID  string     `gorm:"type:varchar(200)" json:"transaction_id"`                        // 交易号
	Complete       bool       `gorm:"not null;default:false;index" json:"complete"`                   // 是否已结算
	ShippingCharge Money      `gorm:"type:decimal(20,2);not null;default:99" json:"shipping_charge"`  // 固定运费
	OrderedAt      *time.Time `gorm:"index" json:"ordered_at"`                                        // 结算时间
	CreatedAt      time.Time  `gorm:"index" json:"created_at"`                                        // 创建时间
	UpdatedAt      time.Time  `json:"updated_at"`                                                     // 更新时间

	// 关联
	Items            []OrderItem      `gorm:"foreignKey:OrderID" json:"items,omitempty"`             // 订单项
	ShippingAddress  *ShippingAddress `gorm:"foreignKey:OrderID" json:"shipping_address,omitempty"`  // 收货地址
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单项表（订单 × 商品 × 尺码 唯一）
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                             // 主键
	OrderID   uint      `gorm:"not null;uniqueIndex:idx_order_product_size" json:"order_id"`      // 订单ID
	ProductID uint      `gorm:"not null;uniqueIndex:idx_order_product_size" json:"product_id"`    // 商品ID
	Size      string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_order_product_size" json:"size"` // 尺码编码
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`                               // 数量
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                          // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                                       // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}

// ShippingAddress 收货地址（结算时一次性写入）
type ShippingAddress struct {
	ID         uint      `gorm:"primarykey" json:"id"`             // 主键
	OrderID    uint      `gorm:"index;not null" json:"order_id"`   // 订单ID
	CustomerID uint      `gorm:"index" json:"customer_id"`         // 顾客ID
	FirstName  string    `gorm:"type:varchar(100)" json:"first_name"`
	LastName   string    `gorm:"type:varchar(100)" json:"last_name"`
	Address    string    `gorm:"type:varchar(200)" json:"address"`
	City       string    `gorm:"type:varchar(200)" json:"city"`
	State      string    `gorm:"type:varchar(200)" json:"state"`
	Zipcode    string    `gorm:"type:varchar(200)" json:"zipcode"`
	Phone      string    `gorm:"type:varchar(15)" json:"phone"`
	CreatedAt  time.Time `json:"created_at"` // 创建时间
}

// TableName 指定表名
func (ShippingAddress) TableName() string {
	return "shipping_addresses"
}
