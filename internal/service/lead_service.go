package service

import (
	"strings"

	"github.com/wabi-shop/internal/models"
	"github.com/wabi-shop/internal/repository"
)

// LeadService 订阅与留言服务
type LeadService struct {
	leadRepo repository.LeadRepository
}

// NewLeadService 创建线索服务
func NewLeadService(leadRepo repository.LeadRepository) *LeadService {
	return &LeadService{leadRepo: leadRepo}
}

// Subscribe 订阅邮件列表，重复邮箱拒绝
func (s *LeadService) Subscribe(username, email string) (*models.Newsletter, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	existing, err := s.leadRepo.GetNewsletterByEmail(normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadySubscribed
	}

	entry := &models.Newsletter{
		Username: strings.TrimSpace(username),
		Email:    normalized,
	}
	if err := s.leadRepo.CreateNewsletter(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ContactUsInput 联系我们输入
type ContactUsInput struct {
	FirstName string
	LastName  string
	Email     string
	Message   string
}

// SubmitContactUs 提交留言
func (s *LeadService) SubmitContactUs(input ContactUsInput) (*models.ContactUs, error) {
	normalized, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, ErrCommentRequired
	}

	entry := &models.ContactUs{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     normalized,
		Message:   strings.TrimSpace(input.Message),
	}
	if err := s.leadRepo.CreateContactUs(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListNewsletters 管理端订阅列表
func (s *LeadService) ListNewsletters(filter repository.LeadListFilter) ([]models.Newsletter, int64, error) {
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	return s.leadRepo.ListNewsletters(filter)
}

// ListContactUs 管理端留言列表
func (s *LeadService) ListContactUs(filter repository.LeadListFilter) ([]models.ContactUs, int64, error) {
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	return s.leadRepo.ListContactUs(filter)
}
