package repository

import (
	"errors"
	"strings"

	"github.com/wabi-shop/internal/models"

	"gorm.io/gorm"
)

// SizeRepository 尺码数据访问接口
type SizeRepository interface {
	ListOptions() ([]models.SizeOption, error)
	GetOptionByCode(code string) (*models.SizeOption, error)
	CreateOption(option *models.SizeOption) error
	DeleteOption(id uint) error
	ListByProduct(productID uint) ([]models.ProductSize, error)
	GetProductSize(productID, sizeID uint) (*models.ProductSize, error)
	CreateProductSize(row *models.ProductSize) error
	SetAvailability(productID, sizeID uint, available bool) error
	SyncProductSizes(productID uint) (int, error)
	WithTx(tx *gorm.DB) *GormSizeRepository
}

// GormSizeRepository GORM 实现
type GormSizeRepository struct {
	db *gorm.DB
}

// NewSizeRepository 创建尺码仓库
func NewSizeRepository(db *gorm.DB) *GormSizeRepository {
	return &GormSizeRepository{db: db}
}

// WithTx 绑定事务
func (r *GormSizeRepository) WithTx(tx *gorm.DB) *GormSizeRepository {
	if tx == nil {
		return r
	}
	return &GormSizeRepository{db: tx}
}

// ListOptions 获取全量尺码字典
func (r *GormSizeRepository) ListOptions() ([]models.SizeOption, error) {
	var options []models.SizeOption
	if err := r.db.Order("id asc").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

// GetOptionByCode 按尺码代码获取
func (r *GormSizeRepository) GetOptionByCode(code string) (*models.SizeOption, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return nil, nil
	}
	var option models.SizeOption
	if err := r.db.Where("code = ?", trimmed).First(&option).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &option, nil
}

// CreateOption 新增尺码字典项
func (r *GormSizeRepository) CreateOption(option *models.SizeOption) error {
	return r.db.Create(option).Error
}

// DeleteOption 删除尺码字典项及其商品尺码行
func (r *GormSizeRepository) DeleteOption(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("size_id = ?", id).Delete(&models.ProductSize{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SizeOption{}, id).Error
	})
}

// ListByProduct 获取商品的尺码行（含字典项）
func (r *GormSizeRepository) ListByProduct(productID uint) ([]models.ProductSize, error) {
	var rows []models.ProductSize
	if err := r.db.Preload("Size").
		Where("product_id = ?", productID).
		Order("size_id asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetProductSize 获取单个商品尺码行
func (r *GormSizeRepository) GetProductSize(productID, sizeID uint) (*models.ProductSize, error) {
	var row models.ProductSize
	if err := r.db.Where("product_id = ? AND size_id = ?", productID, sizeID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// CreateProductSize 新增商品尺码行
func (r *GormSizeRepository) CreateProductSize(row *models.ProductSize) error {
	return r.db.Create(row).Error
}

// SetAvailability 设置商品尺码可售状态
func (r *GormSizeRepository) SetAvailability(productID, sizeID uint, available bool) error {
	return r.db.Model(&models.ProductSize{}).
		Where("product_id = ? AND size_id = ?", productID, sizeID).
		Update("is_available", available).Error
}

// SyncProductSizes 为商品补齐全部尺码行（缺失的按不可售创建），返回新建数量
func (r *GormSizeRepository) SyncProductSizes(productID uint) (int, error) {
	options, err := r.ListOptions()
	if err != nil {
		return 0, err
	}
	created := 0
	for _, option := range options {
		existing, err := r.GetProductSize(productID, option.ID)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}
		row := models.ProductSize{
			ProductID:   productID,
			SizeID:      option.ID,
			IsAvailable: false,
		}
		if err := r.db.Create(&row).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
