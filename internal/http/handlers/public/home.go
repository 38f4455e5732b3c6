package public

import (
	"strconv"

	"github.com/wabi-shop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetHome 首页内容：轮播、推荐分类、推荐商品与 Instagram 图片条
func (h *Handler) GetHome(c *gin.Context) {
	content, err := h.MerchandisingService.GetHomeContent()
	if err != nil {
		respondError(c, response.CodeInternal, "error.home_fetch_failed", err)
		return
	}
	response.Success(c, content)
}

// GetSiteConfig 站点配置（币种、运费等前端展示信息）
func (h *Handler) GetSiteConfig(c *gin.Context) {
	response.Success(c, gin.H{
		"currency":        h.Config.Store.Currency,
		"shipping_charge": strconv.FormatFloat(h.Config.Store.ShippingCharge, 'f', 2, 64),
	})
}
