package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/wabi-shop/internal/http/handlers/shared"
	"github.com/wabi-shop/internal/http/response"
	"github.com/wabi-shop/internal/models"
	"github.com/wabi-shop/internal/repository"
	"github.com/wabi-shop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SaveProductRequest 创建/更新商品请求
type SaveProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Tagline     string  `json:"tagline"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	IsDigital   bool    `json:"is_digital"`
	IsFeatured  bool    `json:"is_featured"`
	Images      []string `json:"images"`
}

func (req *SaveProductRequest) toServiceInput() service.SaveProductInput {
	return service.SaveProductInput{
		Name:        req.Name,
		Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(req.Price)),
		Category:    req.Category,
		Tagline:     req.Tagline,
		Description: req.Description,
		Image:       req.Image,
		IsDigital:   req.IsDigital,
		IsFeatured:  req.IsFeatured,
	}
}

func parseIDParam(c *gin.Context, name, errKey string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, errKey, nil)
		return 0, false
	}
	return uint(id), true
}

// GetAdminProducts 获取商品列表 (Admin)
func (h *Handler) GetAdminProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	products, total, err := h.CatalogService.ListProducts(repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetAdminProduct 获取商品详情 (Admin)
func (h *Handler) GetAdminProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "error.product_id_invalid")
	if !ok {
		return
	}

	detail, err := h.CatalogService.GetProductDetail(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, detail)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.CatalogService.CreateProduct(req.toServiceInput())
	if err != nil {
		if errors.Is(err, service.ErrProductNameRequired) {
			respondError(c, response.CodeBadRequest, "error.product_name_required", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_save_failed", err)
		return
	}

	if len(req.Images) > 0 {
		if err := h.CatalogService.ReplaceProductImages(product.ID, req.Images); err != nil {
			requestLog(c).Warnw("admin_product_images_save_failed",
				"product_id", product.ID,
				"error", err,
			)
		}
	}
	response.Success(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "error.product_id_invalid")
	if !ok {
		return
	}
	var req SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.CatalogService.UpdateProduct(id, req.toServiceInput())
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_save_failed", err)
		return
	}

	if req.Images != nil {
		if err := h.CatalogService.ReplaceProductImages(product.ID, req.Images); err != nil {
			requestLog(c).Warnw("admin_product_images_save_failed",
				"product_id", product.ID,
				"error", err,
			)
		}
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "error.product_id_invalid")
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteProduct(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_delete_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// SyncProductSizes 为商品补齐缺失的尺码行
func (h *Handler) SyncProductSizes(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "error.product_id_invalid")
	if !ok {
		return
	}
	created, err := h.CatalogService.SyncSizes(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.size_sync_failed", err)
		return
	}
	response.Success(c, gin.H{"created": created})
}

// SetSizeAvailabilityRequest 设置商品尺码可售状态请求
type SetSizeAvailabilityRequest struct {
	Size      string `json:"size" binding:"required"`
	Available *bool  `json:"available" binding:"required"`
}

// SetProductSizeAvailability 设置商品尺码可售状态
func (h *Handler) SetProductSizeAvailability(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "error.product_id_invalid")
	if !ok {
		return
	}
	var req SetSizeAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CatalogService.SetSizeAvailability(id, strings.TrimSpace(req.Size), *req.Available); err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
		case errors.Is(err, service.ErrInvalidSizeCode):
			respondError(c, response.CodeBadRequest, "error.size_code_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.size_save_failed", err)
		}
		return
	}
	response.Success(c, gin.H{"updated": true})
}
