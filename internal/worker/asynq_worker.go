package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/wabi-shop/internal/logger"
	"github.com/wabi-shop/internal/models"
	"github.com/wabi-shop/internal/provider"
	"github.com/wabi-shop/internal/queue"
	"github.com/wabi-shop/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPlacedEmail, c.handleOrderPlacedEmail)
}

// handleOrderPlacedEmail 向店铺通知邮箱发送下单摘要
func (c *Consumer) handleOrderPlacedEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_placed_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderPlacedEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_placed_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_placed_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_placed_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil || !order.Complete {
		logger.Debugw("worker_order_placed_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}

	customer, err := c.CustomerRepo.GetByID(order.CustomerID)
	if err != nil {
		logger.Warnw("worker_order_placed_email_fetch_customer_failed", "order_id", order.ID, "customer_id", order.CustomerID, "error", err)
		return err
	}

	notifyEmail := strings.TrimSpace(c.Config.Store.NotifyEmail)
	if notifyEmail == "" {
		logger.Debugw("worker_order_placed_email_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_placed_email_skip_email_service_nil", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}

	input := buildOrderPlacedEmailInput(order, customer, c.Config.Store.Currency)

	if err := c.EmailService.SendOrderPlacedEmail(notifyEmail, input); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) || errors.Is(err, service.ErrEmailServiceNotConfigured) {
			logger.Debugw("worker_order_placed_email_skip_disabled", "order_id", order.ID, "order_no", order.OrderNo)
			return nil
		}
		logger.Warnw("worker_order_placed_email_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"receiver_email", notifyEmail,
			"error", err,
		)
		return err
	}
	return nil
}

// buildOrderPlacedEmailInput 组装下单通知邮件内容。商品已被删除的行
// 仍按商品 ID 列出，但无法计价，合计金额会缺少这部分。
func buildOrderPlacedEmailInput(order *models.Order, customer *models.Customer, currency string) service.OrderPlacedEmailInput {
	input := service.OrderPlacedEmailInput{
		OrderNo:  order.OrderNo,
		Currency: currency,
	}
	if customer != nil {
		input.CustomerName = customer.Name
		input.CustomerEmail = customer.Email
	}

	total := order.ShippingCharge.Decimal
	for _, item := range order.Items {
		if item.Product == nil {
			logger.Warnw("worker_order_placed_email_item_unpriced",
				"order_no", order.OrderNo,
				"order_item_id", item.ID,
				"product_id", item.ProductID,
			)
			input.ItemLines = append(input.ItemLines, fmt.Sprintf("#%d x%d (%s)", item.ProductID, item.Quantity, item.Size))
			continue
		}
		input.ItemLines = append(input.ItemLines, fmt.Sprintf("%s x%d (%s)", item.Product.Name, item.Quantity, item.Size))
		total = total.Add(item.Product.Price.Decimal.Mul(decimalFromInt(item.Quantity)))
	}
	input.GrandTotal = models.NewMoneyFromDecimal(total)

	if order.ShippingAddress != nil {
		addr := order.ShippingAddress
		input.ShipTo = strings.TrimSpace(fmt.Sprintf("%s %s, %s, %s, %s %s",
			addr.FirstName, addr.LastName, addr.Address, addr.City, addr.State, addr.Zipcode))
	}
	return input
}
