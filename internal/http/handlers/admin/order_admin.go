package admin

import (
	"strconv"
	"strings"
	"time"

	"github.com/wabi-shop/internal/constants"
	"github.com/wabi-shop/internal/http/handlers/shared"
	"github.com/wabi-shop/internal/http/response"
	"github.com/wabi-shop/internal/repository"

	"github.com/gin-gonic/gin"
)

// adminOrderListFilter 从查询参数组装订单过滤条件。
// 默认只列已结算订单，complete=false 时连同进行中的购物车一起列出。
func adminOrderListFilter(c *gin.Context, page, pageSize int) repository.OrderListFilter {
	filter := repository.OrderListFilter{
		Page:         page,
		PageSize:     pageSize,
		Status:       c.Query("status"),
		OrderNo:      c.Query("order_no"),
		CompleteOnly: c.Query("complete") != "false",
	}
	if raw := c.Query("customer_id"); raw != "" {
		if customerID, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.CustomerID = uint(customerID)
		}
	}
	if raw := c.Query("created_from"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			filter.CreatedFrom = &t
		}
	}
	if raw := c.Query("created_to"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			end := t.Add(24*time.Hour - time.Nanosecond)
			filter.CreatedTo = &end
		}
	}
	return filter
}

// GetAdminOrders 获取订单列表 (Admin)
func (h *Handler) GetAdminOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	orders, total, err := h.OrderRepo.ListAdmin(adminOrderListFilter(c, page, pageSize))
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, orders, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetAdminOrder 获取订单详情 (Admin)
func (h *Handler) GetAdminOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "error.order_no_invalid")
	if !ok {
		return
	}

	order, err := h.OrderRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	if order == nil {
		respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		return
	}
	response.Success(c, order)
}

// UpdateOrderStatusRequest 更新订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

var adminOrderStatuses = map[string]bool{
	constants.OrderStatusPending:   true,
	constants.OrderStatusCompleted: true,
	constants.OrderStatusCancelled: true,
}

// UpdateOrderStatus 更新订单状态 (Admin)
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "error.order_no_invalid")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if !adminOrderStatuses[status] {
		respondError(c, response.CodeBadRequest, "error.order_status_invalid", nil)
		return
	}

	order, err := h.OrderRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	if order == nil {
		respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		return
	}
	if !order.Complete {
		respondError(c, response.CodeBadRequest, "error.order_not_finalized", nil)
		return
	}

	if err := h.OrderRepo.UpdateStatus(id, status); err != nil {
		respondError(c, response.CodeInternal, "error.order_update_failed", err)
		return
	}

	requestLog(c).Infow("admin_order_status_updated",
		"order_id", id,
		"status", status,
	)
	response.Success(c, gin.H{"updated": true})
}
