package service

import (
	"strings"

	"github.com/wabi-shop/internal/models"
	"github.com/wabi-shop/internal/repository"
)

// CreateReviewInput 创建评价输入
type CreateReviewInput struct {
	ProductID uint
	UserID    uint
	Rating    int
	Comment   string
}

// ReviewService 商品评价服务
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

// NewReviewService 创建评价服务
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// Create 发表评价。评分限定 1-5，评论必填。
func (s *ReviewService) Create(input CreateReviewInput) (*models.Review, error) {
	if input.UserID == 0 {
		return nil, ErrNotFound
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}
	comment := strings.TrimSpace(input.Comment)
	if comment == "" {
		return nil, ErrCommentRequired
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	review := &models.Review{
		ProductID: product.ID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Comment:   comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListByProduct 商品评价列表
func (s *ReviewService) ListByProduct(productID uint, page, pageSize int) ([]models.Review, int64, error) {
	if pageSize <= 0 {
		pageSize = 20
	}
	return s.reviewRepo.ListByProduct(repository.ReviewListFilter{
		Page:      page,
		PageSize:  pageSize,
		ProductID: productID,
	})
}

// Delete 管理端删除评价
func (s *ReviewService) Delete(id uint) error {
	return s.reviewRepo.Delete(id)
}
