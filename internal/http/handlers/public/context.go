package public

import (
	handlershared "github.com/wabi-shop/internal/http/handlers/shared"
	"github.com/wabi-shop/internal/http/response"

	"github.com/gin-gonic/gin"
)

func getContextUintWithKeys(c *gin.Context, key, invalidKey, typeInvalidKey string) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, key, invalidKey, typeInvalidKey)
}

func getUserID(c *gin.Context) (uint, bool) {
	return getContextUintWithKeys(c, "user_id", "error.user_id_invalid", "error.user_id_type_invalid")
}

// getCustomerID 取当前登录用户对应的顾客档案 ID，首次访问自动建档
func (h *Handler) getCustomerID(c *gin.Context) (uint, bool) {
	uid, ok := getUserID(c)
	if !ok {
		return 0, false
	}
	customer, err := h.UserAuthService.EnsureCustomer(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.customer_resolve_failed", err)
		return 0, false
	}
	return customer.ID, true
}
