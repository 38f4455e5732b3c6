package repository

import (
	"errors"

	"github.com/wabi-shop/internal/models"

	"gorm.io/gorm"
)

// MerchandisingRepository 首页运营位数据访问接口
type MerchandisingRepository interface {
	ListActiveBanners() ([]models.Banner, error)
	ListBanners() ([]models.Banner, error)
	GetBanner(id uint) (*models.Banner, error)
	SaveBanner(banner *models.Banner) error
	DeleteBanner(id uint) error
	ListActiveFeaturedCategories() ([]models.FeaturedCategory, error)
	ListFeaturedCategories() ([]models.FeaturedCategory, error)
	GetFeaturedCategory(id uint) (*models.FeaturedCategory, error)
	SaveFeaturedCategory(category *models.FeaturedCategory) error
	DeleteFeaturedCategory(id uint) error
	ListActiveInstagramImages() ([]models.InstagramImage, error)
	ListInstagramImages() ([]models.InstagramImage, error)
	GetInstagramImage(id uint) (*models.InstagramImage, error)
	SaveInstagramImage(image *models.InstagramImage) error
	DeleteInstagramImage(id uint) error
}

// GormMerchandisingRepository GORM 实现
type GormMerchandisingRepository struct {
	db *gorm.DB
}

// NewMerchandisingRepository 创建运营位仓库
func NewMerchandisingRepository(db *gorm.DB) *GormMerchandisingRepository {
	return &GormMerchandisingRepository{db: db}
}

// ListActiveBanners 启用中的轮播图（按排序）
func (r *GormMerchandisingRepository) ListActiveBanners() ([]models.Banner, error) {
	var banners []models.Banner
	if err := r.db.Where("is_active = ?", true).
		Order("sort_order asc, id asc").
		Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// ListBanners 全部轮播图
func (r *GormMerchandisingRepository) ListBanners() ([]models.Banner, error) {
	var banners []models.Banner
	if err := r.db.Order("sort_order asc, id asc").Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// GetBanner 根据 ID 获取轮播图
func (r *GormMerchandisingRepository) GetBanner(id uint) (*models.Banner, error) {
	var banner models.Banner
	if err := r.db.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &banner, nil
}

// SaveBanner 保存轮播图
func (r *GormMerchandisingRepository) SaveBanner(banner *models.Banner) error {
	return r.db.Save(banner).Error
}

// DeleteBanner 删除轮播图
func (r *GormMerchandisingRepository) DeleteBanner(id uint) error {
	return r.db.Delete(&models.Banner{}, id).Error
}

// ListActiveFeaturedCategories 启用中的推荐分类
func (r *GormMerchandisingRepository) ListActiveFeaturedCategories() ([]models.FeaturedCategory, error) {
	var categories []models.FeaturedCategory
	if err := r.db.Where("is_active = ?", true).
		Order("sort_order asc, id asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListFeaturedCategories 全部推荐分类
func (r *GormMerchandisingRepository) ListFeaturedCategories() ([]models.FeaturedCategory, error) {
	var categories []models.FeaturedCategory
	if err := r.db.Order("sort_order asc, id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetFeaturedCategory 根据 ID 获取推荐分类
func (r *GormMerchandisingRepository) GetFeaturedCategory(id uint) (*models.FeaturedCategory, error) {
	var category models.FeaturedCategory
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// SaveFeaturedCategory 保存推荐分类
func (r *GormMerchandisingRepository) SaveFeaturedCategory(category *models.FeaturedCategory) error {
	return r.db.Save(category).Error
}

// DeleteFeaturedCategory 删除推荐分类
func (r *GormMerchandisingRepository) DeleteFeaturedCategory(id uint) error {
	return r.db.Delete(&models.FeaturedCategory{}, id).Error
}

// ListActiveInstagramImages 启用中的 Instagram 图片
func (r *GormMerchandisingRepository) ListActiveInstagramImages() ([]models.InstagramImage, error) {
	var images []models.InstagramImage
	if err := r.db.Where("is_active = ?", true).
		Order("sort_order asc, id asc").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// ListInstagramImages 全部 Instagram 图片
func (r *GormMerchandisingRepository) ListInstagramImages() ([]models.InstagramImage, error) {
	var images []models.InstagramImage
	if err := r.db.Order("sort_order asc, id asc").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// GetInstagramImage 根据 ID 获取 Instagram 图片
func (r *GormMerchandisingRepository) GetInstagramImage(id uint) (*models.InstagramImage, error) {
	var image models.InstagramImage
	if err := r.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

// SaveInstagramImage 保存 Instagram 图片
func (r *GormMerchandisingRepository) SaveInstagramImage(image *models.InstagramImage) error {
	return r.db.Save(image).Error
}

// DeleteInstagramImage 删除 Instagram 图片
func (r *GormMerchandisingRepository) DeleteInstagramImage(id uint) error {
	return r.db.Delete(&models.InstagramImage{}, id).Error
}
