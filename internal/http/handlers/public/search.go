package public

import (
	"errors"
	"strings"

	"github.com/wabi-shop/internal/http/response"
	"github.com/wabi-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchRequest 搜索请求
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

func searchSessionKey(c *gin.Context) string {
	key := strings.TrimSpace(c.GetHeader("X-Session-Key"))
	if key == "" {
		key = c.ClientIP()
	}
	return key
}

// Search 商品搜索：无命中、唯一命中与多命中三种结果形态
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	result, err := h.SearchService.Search(c.Request.Context(), req.Query, searchSessionKey(c))
	if err != nil {
		if errors.Is(err, service.ErrSearchQueryRequired) {
			respondError(c, response.CodeBadRequest, "error.search_query_required", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.search_failed", err)
		return
	}
	response.Success(c, result)
}

// SearchResults 取回多命中搜索结果，命中列表取回一次即失效
func (h *Handler) SearchResults(c *gin.Context) {
	products, query, found, err := h.SearchService.TakeStashed(c.Request.Context(), searchSessionKey(c))
	if err != nil {
		respondError(c, response.CodeInternal, "error.search_failed", err)
		return
	}
	if !found {
		respondError(c, response.CodeNotFound, "error.search_session_expired", nil)
		return
	}
	response.Success(c, gin.H{
		"query":    query,
		"products": products,
	})
}
