package service

import (
	"math"
	"strings"

	"github.com/wabi-shop/internal/models"
	"github.com/wabi-shop/internal/repository"
)

// SizeAnnotation 商品详情中的尺码标注。字典里的每个尺码都会出现，
// 商品没有对应尺码行时按不可售返回。
type SizeAnnotation struct {
	SizeID      uint   `json:"size_id"`
	Code        string `json:"code"`
	IsAvailable bool   `json:"is_available"`
}

// ProductDetail 商品详情
type ProductDetail struct {
	Product       *models.Product  `json:"product"`
	Sizes         []SizeAnnotation `json:"sizes"`
	Related       []models.Product `json:"related"`
	AverageRating float64          `json:"average_rating"`
	ReviewCount   int64            `json:"review_count"`
}

// CatalogService 商品目录服务
type CatalogService struct {
	productRepo repository.ProductRepository
	sizeRepo    repository.SizeRepository
	reviewRepo  repository.ReviewRepository
}

// NewCatalogService 创建目录服务
func NewCatalogService(productRepo repository.ProductRepository, sizeRepo repository.SizeRepository, reviewRepo repository.ReviewRepository) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		sizeRepo:    sizeRepo,
		reviewRepo:  reviewRepo,
	}
}

// ListProducts 商品列表
func (s *CatalogService) ListProducts(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	return s.productRepo.List(filter)
}

// ListCategories 分类列表
func (s *CatalogService) ListCategories() ([]string, error) {
	return s.productRepo.ListCategories()
}

// ListFeatured 推荐商品
func (s *CatalogService) ListFeatured(limit int) ([]models.Product, error) {
	return s.productRepo.ListFeatured(limit)
}

// GetProductDetail 商品详情：含全量尺码标注、同类推荐与平均评分
func (s *CatalogService) GetProductDetail(productID uint) (*ProductDetail, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	sizes, err := s.annotateSizes(product)
	if err != nil {
		return nil, err
	}

	related, err := s.productRepo.ListRelated(product.Category, product.ID, 10)
	if err != nil {
		return nil, err
	}

	avg, count, err := s.reviewRepo.AverageRating(product.ID)
	if err != nil {
		return nil, err
	}

	return &ProductDetail{
		Product:       product,
		Sizes:         sizes,
		Related:       related,
		AverageRating: roundRating(avg),
		ReviewCount:   count,
	}, nil
}

// annotateSizes 把尺码字典与商品尺码行拼成完整标注
func (s *CatalogService) annotateSizes(product *models.Product) ([]SizeAnnotation, error) {
	options, err := s.sizeRepo.ListOptions()
	if err != nil {
		return nil, err
	}

	availableBySize := make(map[uint]bool, len(product.Sizes))
	for _, row := range product.Sizes {
		availableBySize[row.SizeID] = row.IsAvailable
	}

	annotations := make([]SizeAnnotation, 0, len(options))
	for _, option := range options {
		annotations = append(annotations, SizeAnnotation{
			SizeID:      option.ID,
			Code:        option.Code,
			IsAvailable: availableBySize[option.ID],
		})
	}
	return annotations, nil
}

// roundRating 平均评分保留 1 位小数
func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

// SaveProductInput 商品创建/更新输入
type SaveProductInput struct {
	Name        string
	Price       models.Money
	Category    string
	Tagline     string
	Description string
	Image       string
	IsDigital   bool
	IsFeatured  bool
}

// CreateProduct 创建商品并补齐尺码行
func (s *CatalogService) CreateProduct(input SaveProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProductNameRequired
	}
	product := &models.Product{
		Name:        name,
		Price:       input.Price,
		Category:    strings.TrimSpace(input.Category),
		Tagline:     strings.TrimSpace(input.Tagline),
		Description: input.Description,
		Image:       strings.TrimSpace(input.Image),
		IsDigital:   input.IsDigital,
		IsFeatured:  input.IsFeatured,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	if _, err := s.sizeRepo.SyncProductSizes(product.ID); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(product.ID)
}

// UpdateProduct 更新商品
func (s *CatalogService) UpdateProduct(productID uint, input SaveProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Price = input.Price
	product.Category = strings.TrimSpace(input.Category)
	product.Tagline = strings.TrimSpace(input.Tagline)
	product.Description = input.Description
	if strings.TrimSpace(input.Image) != "" {
		product.Image = strings.TrimSpace(input.Image)
	}
	product.IsDigital = input.IsDigital
	product.IsFeatured = input.IsFeatured

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(product.ID)
}

// DeleteProduct 删除商品
func (s *CatalogService) DeleteProduct(productID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(productID)
}

// SyncSizes 为商品补齐全部尺码行，返回新建数量
func (s *CatalogService) SyncSizes(productID uint) (int, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, ErrProductNotFound
	}
	return s.sizeRepo.SyncProductSizes(productID)
}

// SetSizeAvailability 设置商品尺码可售状态
func (s *CatalogService) SetSizeAvailability(productID uint, sizeCode string, available bool) error {
	option, err := s.sizeRepo.GetOptionByCode(sizeCode)
	if err != nil {
		return err
	}
	if option == nil {
		return ErrInvalidSizeCode
	}
	row, err := s.sizeRepo.GetProductSize(productID, option.ID)
	if err != nil {
		return err
	}
	if row == nil {
		return s.sizeRepo.CreateProductSize(&models.ProductSize{
			ProductID:   productID,
			SizeID:      option.ID,
			IsAvailable: available,
		})
	}
	return s.sizeRepo.SetAvailability(productID, option.ID, available)
}

// ListSizeOptions 尺码字典
func (s *CatalogService) ListSizeOptions() ([]models.SizeOption, error) {
	return s.sizeRepo.ListOptions()
}

// CreateSizeOption 新增尺码字典项
func (s *CatalogService) CreateSizeOption(code string) (*models.SizeOption, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(code))
	if trimmed == "" || len(trimmed) > 5 {
		return nil, ErrInvalidSizeCode
	}
	existing, err := s.sizeRepo.GetOptionByCode(trimmed)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSizeExists
	}
	option := &models.SizeOption{Code: trimmed}
	if err := s.sizeRepo.CreateOption(option); err != nil {
		return nil, err
	}
	return option, nil
}

// DeleteSizeOption 删除尺码字典项
func (s *CatalogService) DeleteSizeOption(id uint) error {
	return s.sizeRepo.DeleteOption(id)
}

// ReplaceProductImages 替换商品图册
func (s *CatalogService) ReplaceProductImages(productID uint, urls []string) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	images := make([]models.ProductImage, 0, len(urls))
	for _, url := range urls {
		trimmed := strings.TrimSpace(url)
		if trimmed == "" {
			continue
		}
		images = append(images, models.ProductImage{Image: trimmed})
	}
	return s.productRepo.ReplaceImages(productID, images)
}
