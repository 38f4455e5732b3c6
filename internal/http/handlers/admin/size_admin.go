package admin

import (
	"errors"

	"github.com/wabi-shop/internal/http/response"
	"github.com/wabi-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateSizeOptionRequest 新增尺码字典项请求
type CreateSizeOptionRequest struct {
	Code string `json:"code" binding:"required"`
}

// GetSizeOptions 尺码字典列表
func (h *Handler) GetSizeOptions(c *gin.Context) {
	options, err := h.CatalogService.ListSizeOptions()
	if err != nil {
		respondError(c, response.CodeInternal, "error.size_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"sizes": options})
}

// CreateSizeOption 新增尺码字典项
func (h *Handler) CreateSizeOption(c *gin.Context) {
	var req CreateSizeOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	option, err := h.CatalogService.CreateSizeOption(req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSizeCode):
			respondError(c, response.CodeBadRequest, "error.size_code_invalid", nil)
		case errors.Is(err, service.ErrSizeExists):
			respondError(c, response.CodeBadRequest, "error.size_exists", nil)
		default:
			respondError(c, response.CodeInternal, "error.size_save_failed", err)
		}
		return
	}
	response.Success(c, option)
}

// DeleteSizeOption 删除尺码字典项及其商品尺码行
func (h *Handler) DeleteSizeOption(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "error.size_code_invalid")
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteSizeOption(id); err != nil {
		respondError(c, response.CodeInternal, "error.size_delete_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
