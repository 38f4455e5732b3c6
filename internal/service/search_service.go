package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/wabi-shop/internal/cache"
	"github.com/wabi-shop/internal/constants"
	"github.com/wabi-shop/internal/models"
	"github.com/wabi-shop/internal/repository"
)

// 搜索词归一化：小写后只保留字母、数字与空白
var searchNormalizePattern = regexp.MustCompile(`[^a-z0-9\s]`)

// SearchResult 搜索结果。Match 指示命中形态：
// none 无命中、one 唯一命中（直接给出商品）、many 多命中（结果暂存，
// 凭会话键在列表页取回）。
type SearchResult struct {
	Match    string           `json:"match"`
	Query    string           `json:"query"`
	Product  *models.Product  `json:"product,omitempty"`
	Products []models.Product `json:"products,omitempty"`
}

// SearchService 商品搜索服务
type SearchService struct {
	productRepo repository.ProductRepository
	stash       cache.SearchStash
}

// NewSearchService 创建搜索服务
func NewSearchService(productRepo repository.ProductRepository, stash cache.SearchStash) *SearchService {
	return &SearchService{
		productRepo: productRepo,
		stash:       stash,
	}
}

// NormalizeQuery 归一化搜索词
func NormalizeQuery(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	cleaned := searchNormalizePattern.ReplaceAllString(lowered, "")
	return strings.Join(strings.Fields(cleaned), " ")
}

// Search 按归一化子串匹配商品名。多命中时把命中 ID 暂存到会话键下。
func (s *SearchService) Search(ctx context.Context, rawQuery, sessionKey string) (*SearchResult, error) {
	query := NormalizeQuery(rawQuery)
	if query == "" {
		return nil, ErrSearchQueryRequired
	}

	products, err := s.productRepo.ListAll()
	if err != nil {
		return nil, err
	}

	var matched []models.Product
	for _, product := range products {
		if strings.Contains(NormalizeQuery(product.Name), query) {
			matched = append(matched, product)
		}
	}

	switch len(matched) {
	case 0:
		return &SearchResult{Match: constants.SearchMatchNone, Query: query}, nil
	case 1:
		product, err := s.productRepo.GetByID(matched[0].ID)
		if err != nil {
			return nil, err
		}
		return &SearchResult{Match: constants.SearchMatchOne, Query: query, Product: product}, nil
	default:
		ids := make([]uint, 0, len(matched))
		for _, product := range matched {
			ids = append(ids, product.ID)
		}
		if err := s.stash.Put(ctx, sessionKey, cache.StashedSearch{ProductIDs: ids, Query: query}); err != nil {
			return nil, err
		}
		return &SearchResult{Match: constants.SearchMatchMany, Query: query, Products: matched}, nil
	}
}

// TakeStashed 凭会话键取回并消费暂存的多命中结果，附带原始搜索词
func (s *SearchService) TakeStashed(ctx context.Context, sessionKey string) ([]models.Product, string, bool, error) {
	entry, found, err := s.stash.Take(ctx, sessionKey)
	if err != nil || !found {
		return nil, "", false, err
	}
	products, err := s.productRepo.ListByIDs(entry.ProductIDs)
	if err != nil {
		return nil, "", false, err
	}
	return products, entry.Query, true, nil
}
