package admin

import (
	"errors"

	"github.com/wabi-shop/internal/http/response"
	"github.com/wabi-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// SaveBannerRequest 保存轮播图请求
type SaveBannerRequest struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"button_text"`
	Image      string `json:"image" binding:"required"`
	SortOrder  int    `json:"sort_order"`
	IsActive   *bool  `json:"is_active"`
}

// SaveFeaturedCategoryRequest 保存推荐分类请求
type SaveFeaturedCategoryRequest struct {
	ID         uint   `json:"id"`
	Title      string `json:"title" binding:"required"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"button_text"`
	Image      string `json:"image"`
	SortOrder  int    `json:"sort_order"`
	IsActive   *bool  `json:"is_active"`
}

// SaveInstagramImageRequest 保存 Instagram 图片请求
type SaveInstagramImageRequest struct {
	ID        uint   `json:"id"`
	Image     string `json:"image" binding:"required"`
	AltText   string `json:"alt_text"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

func boolOrDefault(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// GetAdminBanners 轮播图列表 (Admin)
func (h *Handler) GetAdminBanners(c *gin.Context) {
	banners, err := h.MerchandisingService.ListBanners()
	if err != nil {
		respondError(c, response.CodeInternal, "error.banner_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"banners": banners})
}

// SaveBanner 创建/更新轮播图
func (h *Handler) SaveBanner(c *gin.Context) {
	var req SaveBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	banner, err := h.MerchandisingService.SaveBanner(req.ID, service.SaveBannerInput{
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		ButtonText: req.ButtonText,
		Image:      req.Image,
		SortOrder:  req.SortOrder,
		IsActive:   boolOrDefault(req.IsActive, true),
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.banner_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.banner_save_failed", err)
		return
	}
	response.Success(c, banner)
}

// DeleteBanner 删除轮播图
func (h *Handler) DeleteBanner(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "error.bad_request")
	if !ok {
		return
	}
	if err := h.MerchandisingService.DeleteBanner(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.banner_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.banner_delete_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// GetAdminFeaturedCategories 推荐分类列表 (Admin)
func (h *Handler) GetAdminFeaturedCategories(c *gin.Context) {
	categories, err := h.MerchandisingService.ListFeaturedCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}

// SaveFeaturedCategory 创建/更新推荐分类
func (h *Handler) SaveFeaturedCategory(c *gin.Context) {
	var req SaveFeaturedCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category, err := h.MerchandisingService.SaveFeaturedCategory(req.ID, service.SaveFeaturedCategoryInput{
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		ButtonText: req.ButtonText,
		Image:      req.Image,
		SortOrder:  req.SortOrder,
		IsActive:   boolOrDefault(req.IsActive, true),
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.category_save_failed", err)
		return
	}
	response.Success(c, category)
}

// DeleteFeaturedCategory 删除推荐分类
func (h *Handler) DeleteFeaturedCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "error.bad_request")
	if !ok {
		return
	}
	if err := h.MerchandisingService.DeleteFeaturedCategory(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.category_delete_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// GetAdminInstagramImages Instagram 图片列表 (Admin)
func (h *Handler) GetAdminInstagramImages(c *gin.Context) {
	images, err := h.MerchandisingService.ListInstagramImages()
	if err != nil {
		respondError(c, response.CodeInternal, "error.instagram_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"images": images})
}

// SaveInstagramImage 创建/更新 Instagram 图片
func (h *Handler) SaveInstagramImage(c *gin.Context) {
	var req SaveInstagramImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	image, err := h.MerchandisingService.SaveInstagramImage(req.ID, service.SaveInstagramImageInput{
		Image:     req.Image,
		AltText:   req.AltText,
		SortOrder: req.SortOrder,
		IsActive:  boolOrDefault(req.IsActive, true),
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.instagram_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.instagram_save_failed", err)
		return
	}
	response.Success(c, image)
}

// DeleteInstagramImage 删除 Instagram 图片
func (h *Handler) DeleteInstagramImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "error.bad_request")
	if !ok {
		return
	}
	if err := h.MerchandisingService.DeleteInstagramImage(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.instagram_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.instagram_delete_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
