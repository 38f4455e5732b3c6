package admin

import (
	"strconv"

	"github.com/wabi-shop/internal/http/handlers/shared"
	"github.com/wabi-shop/internal/http/response"
	"github.com/wabi-shop/internal/repository"

	"github.com/gin-gonic/gin"
)

func leadFilterFromQuery(c *gin.Context) repository.LeadListFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)
	return repository.LeadListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("search"),
	}
}

// GetAdminNewsletters 订阅列表 (Admin)
func (h *Handler) GetAdminNewsletters(c *gin.Context) {
	filter := leadFilterFromQuery(c)
	subscribers, total, err := h.LeadService.ListNewsletters(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.newsletter_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, subscribers, response.Pagination{
		Page:      filter.Page,
		PageSize:  filter.PageSize,
		Total:     total,
		TotalPage: (total + int64(filter.PageSize) - 1) / int64(filter.PageSize),
	})
}

// GetAdminContactMessages 联系我们留言列表 (Admin)
func (h *Handler) GetAdminContactMessages(c *gin.Context) {
	filter := leadFilterFromQuery(c)
	messages, total, err := h.LeadService.ListContactUs(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.contact_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, messages, response.Pagination{
		Page:      filter.Page,
		PageSize:  filter.PageSize,
		Total:     total,
		TotalPage: (total + int64(filter.PageSize) - 1) / int64(filter.PageSize),
	})
}
