package public

import (
	"errors"
	"strconv"

	"github.com/wabi-shop/internal/http/handlers/shared"
	"github.com/wabi-shop/internal/http/response"
	"github.com/wabi-shop/internal/repository"
	"github.com/wabi-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts 商品列表（支持分类过滤与关键字）
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	products, total, err := h.CatalogService.ListProducts(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		Category:     c.Query("category"),
		Search:       c.Query("search"),
		FeaturedOnly: c.Query("featured") == "true",
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_list_failed", err)
		return
	}

	response.SuccessWithPage(c, gin.H{"products": products}, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.product_id_invalid", nil)
		return
	}

	detail, err := h.CatalogService.GetProductDetail(uint(productID))
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

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_list_failed", err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}
