package admin

import (
	"errors"

	"github.com/wabi-shop/internal/http/response"
	"github.com/wabi-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// DeleteReview 删除评价 (Admin)
func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "error.bad_request")
	if !ok {
		return
	}
	if err := h.ReviewService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.review_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.review_delete_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
