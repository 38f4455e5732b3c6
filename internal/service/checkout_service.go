package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/wabi-shop/internal/constants"
	"github.com/wabi-shop/internal/logger"
	"github.com/wabi-shop/internal/models"
	"github.com/wabi-shop/internal/queue"
	"github.com/wabi-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckoutInput 结算输入。金额一律以服务端购物车为准，
// 客户端传来的商品与金额字段不参与计算。
type CheckoutInput struct {
	CustomerID    uint
	PaymentMethod string
	FirstName     string
	LastName      string
	Address       string
	City          string
	State         string
	Zipcode       string
	Phone         string
}

// CheckoutResult 结算结果
type CheckoutResult struct {
	Order      *models.Order `json:"order"`
	OrderNo    string        `json:"order_no"`
	GrandTotal models.Money  `json:"grand_total"`
}

// CheckoutService 结算服务
type CheckoutService struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	cartService *CartService
	queueClient *queue.Client
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(db *gorm.DB, orderRepo repository.OrderRepository, cartService *CartService, queueClient *queue.Client) *CheckoutService {
	return &CheckoutService{
		db:          db,
		orderRepo:   orderRepo,
		cartService: cartService,
		queueClient: queueClient,
	}
}

// Checkout 货到付款结算：生成订单号、冻结订单、写入收货地址。
func (s *CheckoutService) Checkout(input CheckoutInput) (*CheckoutResult, error) {
	if input.CustomerID == 0 {
		return nil, ErrNotFound
	}
	if err := validateShipping(input); err != nil {
		return nil, err
	}
	// 目前只支持货到付款，留空视为默认
	method := strings.ToLower(strings.TrimSpace(input.PaymentMethod))
	if method != "" && method != constants.PaymentMethodCOD {
		return nil, ErrPaymentMethodInvalid
	}

	order, err := s.orderRepo.GetOpenByCustomer(input.CustomerID)
	if err != nil {
		return nil, err
	}
	if order == nil || len(order.Items) == 0 {
		return nil, ErrEmptyCart
	}

	cart, err := s.cartService.buildDetail(order.ID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 || !cart.CartTotal.Decimal.GreaterThan(decimal.Zero) {
		return nil, ErrEmptyCart
	}

	now := time.Now()
	orderNo := generateOrderNo(now)
	transactionID := fmt.Sprintf("%d", now.UnixNano())

	err = s.db.Transaction(func(tx *gorm.DB) error {
		txOrderRepo := s.orderRepo.WithTx(tx)
		updates := map[string]interface{}{
			"order_no":        orderNo,
			"status":          constants.OrderStatusPending,
			"payment_method":  constants.PaymentMethodCOD,
			"transaction_id":  transactionID,
			"shipping_charge": cart.ShippingCharge,
			"ordered_at":      now,
		}
		if err := txOrderRepo.Finalize(order.ID, updates); err != nil {
			return err
		}

		address := &models.ShippingAddress{
			OrderID:    order.ID,
			CustomerID: input.CustomerID,
			FirstName:  strings.TrimSpace(input.FirstName),
			LastName:   strings.TrimSpace(input.LastName),
			Address:    strings.TrimSpace(input.Address),
			City:       strings.TrimSpace(input.City),
			State:      strings.TrimSpace(input.State),
			Zipcode:    strings.TrimSpace(input.Zipcode),
			Phone:      strings.TrimSpace(input.Phone),
		}
		return txOrderRepo.CreateShippingAddress(address)
	})
	if err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueOrderPlacedEmail(queue.OrderPlacedEmailPayload{OrderID: order.ID}); err != nil {
		// 通知失败不影响下单结果
		logger.Warnw("order_placed_email_enqueue_failed", "order_id", order.ID, "error", err)
	}

	finalized, err := s.orderRepo.GetByID(order.ID)
	if err != nil {
		return nil, err
	}
	return &CheckoutResult{
		Order:      finalized,
		OrderNo:    orderNo,
		GrandTotal: cart.GrandTotal,
	}, nil
}

// GetOrderForCustomer 按订单号取顾客自己的已结算订单
func (s *CheckoutService) GetOrderForCustomer(orderNo string, customerID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNoAndCustomer(orderNo, customerID)
	if err != nil {
		return nil, err
	}
	if order == nil || !order.Complete {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrderHistory 顾客已结算订单列表
func (s *CheckoutService) ListOrderHistory(customerID uint, page, pageSize int) ([]models.Order, int64, error) {
	if pageSize <= 0 {
		pageSize = 20
	}
	return s.orderRepo.ListCompletedByCustomer(repository.OrderListFilter{
		Page:       page,
		PageSize:   pageSize,
		CustomerID: customerID,
	})
}

// CancelOrder 顾客取消待处理订单
func (s *CheckoutService) CancelOrder(orderNo string, customerID uint) error {
	order, err := s.GetOrderForCustomer(orderNo, customerID)
	if err != nil {
		return err
	}
	if order.Status != constants.OrderStatusPending {
		return ErrOrderAlreadyClosed
	}
	return s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusCancelled)
}

func validateShipping(input CheckoutInput) error {
	required := []string{
		input.FirstName,
		input.LastName,
		input.Address,
		input.City,
		input.State,
		input.Zipcode,
		input.Phone,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return ErrShippingIncomplete
		}
	}
	return nil
}

// generateOrderNo 生成订单号：ORD-YYYYMMDD-XXXXXX（6 位大写十六进制）
func generateOrderNo(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}
