package public

import (
	"strconv"
	"strings"

	"github.com/wabi-shop/internal/http/handlers/shared"
	"github.com/wabi-shop/internal/http/response"
	"github.com/wabi-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 结算请求（货到付款）
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method"`
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Address       string `json:"address" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
	Zipcode       string `json:"zipcode" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
}

// Checkout 提交结算，生成订单号并关闭当前购物车
func (h *Handler) Checkout(c *gin.Context) {
	customerID, ok := h.getCustomerID(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	result, err := h.CheckoutService.Checkout(service.CheckoutInput{
		CustomerID:    customerID,
		PaymentMethod: req.PaymentMethod,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Zipcode:       req.Zipcode,
		Phone:         req.Phone,
	})
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.checkout_failed")
		return
	}
	response.Success(c, result)
}

// GetOrder 按订单号查询已完成订单（仅限本人）
func (h *Handler) GetOrder(c *gin.Context) {
	customerID, ok := h.getCustomerID(c)
	if !ok {
		return
	}
	orderNo := strings.TrimSpace(c.Param("order_no"))
	if orderNo == "" {
		respondError(c, response.CodeBadRequest, "error.order_no_invalid", nil)
		return
	}

	order, err := h.CheckoutService.GetOrderForCustomer(orderNo, customerID)
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.order_fetch_failed")
		return
	}
	response.Success(c, order)
}

// ListOrders 历史订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	customerID, ok := h.getCustomerID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	orders, total, err := h.CheckoutService.ListOrderHistory(customerID, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_list_failed", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"orders": orders}, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// CancelOrder 取消待处理订单
func (h *Handler) CancelOrder(c *gin.Context) {
	customerID, ok := h.getCustomerID(c)
	if !ok {
		return
	}
	orderNo := strings.TrimSpace(c.Param("order_no"))
	if orderNo == "" {
		respondError(c, response.CodeBadRequest, "error.order_no_invalid", nil)
		return
	}

	if err := h.CheckoutService.CancelOrder(orderNo, customerID); err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.order_update_failed")
		return
	}
	response.Success(c, gin.H{"cancelled": true})
}
