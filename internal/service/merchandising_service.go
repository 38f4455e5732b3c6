package service

import (
	"strings"

	"github.com/wabi-shop/internal/models"
	"github.com/wabi-shop/internal/repository"
)

// HomeContent 首页聚合内容
type HomeContent struct {
	Banners            []models.Banner           `json:"banners"`
	FeaturedCategories []models.FeaturedCategory `json:"featured_categories"`
	FeaturedProducts   []models.Product          `json:"featured_products"`
	InstagramImages    []models.InstagramImage   `json:"instagram_images"`
}

// MerchandisingService 首页运营位服务
type MerchandisingService struct {
	merchRepo   repository.MerchandisingRepository
	productRepo repository.ProductRepository
}

// NewMerchandisingService 创建运营位服务
func NewMerchandisingService(merchRepo repository.MerchandisingRepository, productRepo repository.ProductRepository) *MerchandisingService {
	return &MerchandisingService{
		merchRepo:   merchRepo,
		productRepo: productRepo,
	}
}

// GetHomeContent 首页内容：轮播、推荐分类、推荐商品与 Instagram 图片条
func (s *MerchandisingService) GetHomeContent() (*HomeContent, error) {
	banners, err := s.merchRepo.ListActiveBanners()
	if err != nil {
		return nil, err
	}
	categories, err := s.merchRepo.ListActiveFeaturedCategories()
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.ListFeatured(8)
	if err != nil {
		return nil, err
	}
	images, err := s.merchRepo.ListActiveInstagramImages()
	if err != nil {
		return nil, err
	}
	return &HomeContent{
		Banners:            banners,
		FeaturedCategories: categories,
		FeaturedProducts:   products,
		InstagramImages:    images,
	}, nil
}

// SaveBannerInput 轮播图输入
type SaveBannerInput struct {
	Title      string
	Subtitle   string
	ButtonText string
	Image      string
	SortOrder  int
	IsActive   bool
}

// ListBanners 全部轮播图
func (s *MerchandisingService) ListBanners() ([]models.Banner, error) {
	return s.merchRepo.ListBanners()
}

// SaveBanner 创建或更新轮播图
func (s *MerchandisingService) SaveBanner(id uint, input SaveBannerInput) (*models.Banner, error) {
	banner := &models.Banner{}
	if id != 0 {
		existing, err := s.merchRepo.GetBanner(id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrNotFound
		}
		banner = existing
	}
	banner.Title = strings.TrimSpace(input.Title)
	banner.Subtitle = strings.TrimSpace(input.Subtitle)
	banner.ButtonText = strings.TrimSpace(input.ButtonText)
	banner.Image = strings.TrimSpace(input.Image)
	banner.SortOrder = input.SortOrder
	banner.IsActive = input.IsActive
	if err := s.merchRepo.SaveBanner(banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// DeleteBanner 删除轮播图
func (s *MerchandisingService) DeleteBanner(id uint) error {
	return s.merchRepo.DeleteBanner(id)
}

// SaveFeaturedCategoryInput 推荐分类输入
type SaveFeaturedCategoryInput struct {
	Title      string
	Subtitle   string
	ButtonText string
	Image      string
	SortOrder  int
	IsActive   bool
}

// ListFeaturedCategories 全部推荐分类
func (s *MerchandisingService) ListFeaturedCategories() ([]models.FeaturedCategory, error) {
	return s.merchRepo.ListFeaturedCategories()
}

// SaveFeaturedCategory 创建或更新推荐分类
func (s *MerchandisingService) SaveFeaturedCategory(id uint, input SaveFeaturedCategoryInput) (*models.FeaturedCategory, error) {
	category := &models.FeaturedCategory{}
	if id != 0 {
		existing, err := s.merchRepo.GetFeaturedCategory(id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrNotFound
		}
		category = existing
	}
	category.Title = strings.TrimSpace(input.Title)
	category.Subtitle = strings.TrimSpace(input.Subtitle)
	category.Image = strings.TrimSpace(input.Image)
	category.SortOrder = input.SortOrder
	category.IsActive = input.IsActive
	if text := strings.TrimSpace(input.ButtonText); text != "" {
		category.ButtonText = text
	}
	if err := s.merchRepo.SaveFeaturedCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteFeaturedCategory 删除推荐分类
func (s *MerchandisingService) DeleteFeaturedCategory(id uint) error {
	return s.merchRepo.DeleteFeaturedCategory(id)
}

// SaveInstagramImageInput Instagram 图片输入
type SaveInstagramImageInput struct {
	Image     string
	AltText   string
	SortOrder int
	IsActive  bool
}

// ListInstagramImages 全部 Instagram 图片
func (s *MerchandisingService) ListInstagramImages() ([]models.InstagramImage, error) {
	return s.merchRepo.ListInstagramImages()
}

// SaveInstagramImage 创建或更新 Instagram 图片
func (s *MerchandisingService) SaveInstagramImage(id uint, input SaveInstagramImageInput) (*models.InstagramImage, error) {
	image := &models.InstagramImage{}
	if id != 0 {
		existing, err := s.merchRepo.GetInstagramImage(id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrNotFound
		}
		image = existing
	}
	image.Image = strings.TrimSpace(input.Image)
	image.AltText = strings.TrimSpace(input.AltText)
	image.SortOrder = input.SortOrder
	image.IsActive = input.IsActive
	if err := s.merchRepo.SaveInstagramImage(image); err != nil {
		return nil, err
	}
	return image, nil
}

// DeleteInstagramImage 删除 Instagram 图片
func (s *MerchandisingService) DeleteInstagramImage(id uint) error {
	return s.merchRepo.DeleteInstagramImage(id)
}
