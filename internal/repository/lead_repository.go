package repository

import (
	"errors"
	"strings"

	"github.com/wabi-shop/internal/models"

	"gorm.io/gorm"
)

// LeadRepository 线索数据访问接口（订阅与联系我们）
type LeadRepository interface {
	CreateNewsletter(entry *models.Newsletter) error
	GetNewsletterByEmail(email string) (*models.Newsletter, error)
	ListNewsletters(filter LeadListFilter) ([]models.Newsletter, int64, error)
	CreateContactUs(entry *models.ContactUs) error
	ListContactUs(filter LeadListFilter) ([]models.ContactUs, int64, error)
}

// GormLeadRepository GORM 实现
type GormLeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository 创建线索仓库
func NewLeadRepository(db *gorm.DB) *GormLeadRepository {
	return &GormLeadRepository{db: db}
}

// CreateNewsletter 创建订阅记录
func (r *GormLeadRepository) CreateNewsletter(entry *models.Newsletter) error {
	return r.db.Create(entry).Error
}

// GetNewsletterByEmail 按邮箱查订阅记录
func (r *GormLeadRepository) GetNewsletterByEmail(email string) (*models.Newsletter, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, nil
	}
	var entry models.Newsletter
	if err := r.db.Where("email = ?", normalized).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// ListNewsletters 订阅列表
func (r *GormLeadRepository) ListNewsletters(filter LeadListFilter) ([]models.Newsletter, int64, error) {
	var entries []models.Newsletter
	query := r.db.Model(&models.Newsletter{})

	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("email LIKE ? OR username LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id desc").Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// CreateContactUs 创建留言
func (r *GormLeadRepository) CreateContactUs(entry *models.ContactUs) error {
	return r.db.Create(entry).Error
}

// ListContactUs 留言列表
func (r *GormLeadRepository) ListContactUs(filter LeadListFilter) ([]models.ContactUs, int64, error) {
	var entries []models.ContactUs
	query := r.db.Model(&models.ContactUs{})

	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("email LIKE ? OR first_name LIKE ? OR last_name LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id desc").Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
