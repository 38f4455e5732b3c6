package repository

import (
	"errors"
	"strings"

	"github.com/wabi-shop/internal/constants"
	"github.com/wabi-shop/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	CreateOpen(customerID uint) (*models.Order, error)
	GetOpenByCustomer(customerID uint) (*models.Order, error)
	GetByID(id uint) (*models.Order, error)
	GetByOrderNoAndCustomer(orderNo string, customerID uint) (*models.Order, error)
	ListCompletedByCustomer(filter OrderListFilter) ([]models.Order, int64, error)
	ListAdmin(filter OrderListFilter) ([]models.Order, int64, error)
	GetItem(orderID, productID uint, size string) (*models.OrderItem, error)
	GetItemByID(itemID uint) (*models.OrderItem, error)
	CreateItem(item *models.OrderItem) error
	UpdateItemQuantity(itemID uint, quantity int) error
	DeleteItem(itemID uint) error
	ListItems(orderID uint) ([]models.OrderItem, error)
	Finalize(id uint, updates map[string]interface{}) error
	UpdateStatus(id uint, status string) error
	CreateShippingAddress(address *models.ShippingAddress) error
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

func (r *GormOrderRepository) withDetail(query *gorm.DB) *gorm.DB {
	return query.Preload("Items").Preload("Items.Product").Preload("ShippingAddress")
}

// CreateOpen 为顾客创建未结算订单。唯一索引 (customer_id, open_slot)
// 在并发下只允许一条成功，冲突由调用方重查处理。
func (r *GormOrderRepository) CreateOpen(customerID uint) (*models.Order, error) {
	slot := int16(1)
	order := models.Order{
		CustomerID: customerID,
		OpenSlot:   &slot,
		Status:     constants.OrderStatusPending,
	}
	if err := r.db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOpenByCustomer 获取顾客的未结算订单
func (r *GormOrderRepository) GetOpenByCustomer(customerID uint) (*models.Order, error) {
	var order models.Order
	query := r.withDetail(r.db).Where("customer_id = ? AND open_slot IS NOT NULL", customerID)
	if err := query.First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByID 根据 ID 获取订单
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.withDetail(r.db).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderNoAndCustomer 按订单号获取顾客自己的订单
func (r *GormOrderRepository) GetByOrderNoAndCustomer(orderNo string, customerID uint) (*models.Order, error) {
	trimmed := strings.TrimSpace(orderNo)
	if trimmed == "" {
		return nil, nil
	}
	var order models.Order
	query := r.withDetail(r.db).Where("order_no = ? AND customer_id = ?", trimmed, customerID)
	if err := query.First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// ListCompletedByCustomer 顾客已结算订单列表
func (r *GormOrderRepository) ListCompletedByCustomer(filter OrderListFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	query := r.db.Model(&models.Order{}).
		Where("customer_id = ? AND complete = ?", filter.CustomerID, true)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrderNo != "" {
		query = query.Where("order_no LIKE ?", "%"+filter.OrderNo+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := r.withDetail(query).Order("ordered_at desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListAdmin 管理端订单列表
func (r *GormOrderRepository) ListAdmin(filter OrderListFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	query := r.db.Model(&models.Order{})

	if filter.CompleteOnly {
		query = query.Where("complete = ?", true)
	}
	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrderNo != "" {
		query = query.Where("order_no = ?", filter.OrderNo)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := r.withDetail(query).Order("id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// GetItem 按 (订单, 商品, 尺码) 获取订单项
func (r *GormOrderRepository) GetItem(orderID, productID uint, size string) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := r.db.
		Where("order_id = ? AND product_id = ? AND size = ?", orderID, productID, size).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetItemByID 根据 ID 获取订单项
func (r *GormOrderRepository) GetItemByID(itemID uint) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := r.db.Preload("Product").First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// CreateItem 创建订单项
func (r *GormOrderRepository) CreateItem(item *models.OrderItem) error {
	return r.db.Create(item).Error
}

// UpdateItemQuantity 更新订单项数量
func (r *GormOrderRepository) UpdateItemQuantity(itemID uint, quantity int) error {
	return r.db.Model(&models.OrderItem{}).Where("id = ?", itemID).Update("quantity", quantity).Error
}

// DeleteItem 删除订单项
func (r *GormOrderRepository) DeleteItem(itemID uint) error {
	return r.db.Delete(&models.OrderItem{}, itemID).Error
}

// ListItems 获取订单项（含商品）
func (r *GormOrderRepository) ListItems(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.db.Preload("Product").
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Finalize 结算订单：写入订单号等字段并释放 open_slot
func (r *GormOrderRepository) Finalize(id uint, updates map[string]interface{}) error {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["open_slot"] = nil
	updates["complete"] = true
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error
}

// UpdateStatus 更新订单状态
func (r *GormOrderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}

// CreateShippingAddress 写入收货地址
func (r *GormOrderRepository) CreateShippingAddress(address *models.ShippingAddress) error {
	return r.db.Create(address).Error
}
