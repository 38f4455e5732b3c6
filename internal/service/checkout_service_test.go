package service

import (
	"errors"
	"regexp"
	"testing"

	"github.com/wabi-shop/internal/constants"
	"github.com/wabi-shop/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCheckoutServiceTest(t *testing.T) (*CheckoutService, *CartService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	orderRepo := repository.NewOrderRepository(db)
	cartService := NewCartService(
		orderRepo,
		repository.NewProductRepository(db),
		repository.NewSizeRepository(db),
		decimal.NewFromInt(99),
	)
	return NewCheckoutService(db, orderRepo, cartService, nil), cartService, db
}

func validShipping(customerID uint) CheckoutInput {
	return CheckoutInput{
		CustomerID: customerID,
		FirstName:  "Asha",
		LastName:   "Rao",
		Address:    "12 MG Road",
		City:       "Bengaluru",
		State:      "Karnataka",
		Zipcode:    "560001",
		Phone:      "9876543210",
	}
}

func TestCheckoutFinalizesOpenOrder(t *testing.T) {
	svc, cartService, db := setupCheckoutServiceTest(t)
	customer := createTestCustomer(t, db, "checkout@example.com")
	product := createTestProduct(t, db, "Tee", 500, "M")

	if _, err := cartService.AddItem(AddCartItemInput{CustomerID: customer.ID, ProductID: product.ID, Size: "M", Quantity: 2}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	result, err := svc.Checkout(validShipping(customer.ID))
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	orderNoPattern := regexp.MustCompile(`^ORD-\d{8}-[0-9A-F]{6}$`)
	if !orderNoPattern.MatchString(result.OrderNo) {
		t.Fatalf("order no format invalid: %s", result.OrderNo)
	}
	if !result.GrandTotal.Decimal.Equal(decimal.NewFromInt(1099)) {
		t.Fatalf("grand total want 1099 got %s", result.GrandTotal.Decimal)
	}

	order := result.Order
	if order == nil {
		t.Fatalf("checkout should return the finalized order")
	}
	if !order.Complete {
		t.Fatalf("order should be complete after checkout")
	}
	if order.OpenSlot != nil {
		t.Fatalf("open slot should be released after checkout")
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want pending got %s", order.Status)
	}
	if order.PaymentMethod != constants.PaymentMethodCOD {
		t.Fatalf("payment method want cod got %s", order.PaymentMethod)
	}
	if order.OrderedAt == nil {
		t.Fatalf("ordered_at should be set")
	}
	if order.ShippingAddress == nil || order.ShippingAddress.City != "Bengaluru" {
		t.Fatalf("shipping address should be persisted, got %+v", order.ShippingAddress)
	}

	// 结算后可开新购物车，且与旧订单互不影响
	fresh, err := cartService.GetOrCreateOpenOrder(customer.ID)
	if err != nil {
		t.Fatalf("new open order failed: %v", err)
	}
	if fresh.ID == order.ID {
		t.Fatalf("finalized order must not be reused as cart")
	}
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	svc, cartService, db := setupCheckoutServiceTest(t)
	customer := createTestCustomer(t, db, "paymethod@example.com")
	product := createTestProduct(t, db, "Tee", 500, "M")

	if _, err := cartService.AddItem(AddCartItemInput{CustomerID: customer.ID, ProductID: product.ID, Size: "M"}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	input := validShipping(customer.ID)
	input.PaymentMethod = "card"
	if _, err := svc.Checkout(input); !errors.Is(err, ErrPaymentMethodInvalid) {
		t.Fatalf("want ErrPaymentMethodInvalid got %v", err)
	}

	// 显式写 cod 与留空等价
	input.PaymentMethod = " COD "
	if _, err := svc.Checkout(input); err != nil {
		t.Fatalf("cod checkout failed: %v", err)
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	svc, cartService, db := setupCheckoutServiceTest(t)
	customer := createTestCustomer(t, db, "emptycheckout@example.com")

	if _, err := cartService.GetCart(customer.ID); err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if _, err := svc.Checkout(validShipping(customer.ID)); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart got %v", err)
	}
}

func TestCheckoutRejectsIncompleteShipping(t *testing.T) {
	svc, cartService, db := setupCheckoutServiceTest(t)
	customer := createTestCustomer(t, db, "shipmiss@example.com")
	product := createTestProduct(t, db, "Tee", 500, "M")

	if _, err := cartService.AddItem(AddCartItemInput{CustomerID: customer.ID, ProductID: product.ID, Size: "M"}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	input := validShipping(customer.ID)
	input.Zipcode = "   "
	if _, err := svc.Checkout(input); !errors.Is(err, ErrShippingIncomplete) {
		t.Fatalf("want ErrShippingIncomplete got %v", err)
	}
}

func TestGetOrderForCustomerScopedAndCompleteOnly(t *testing.T) {
	svc, cartService, db := setupCheckoutServiceTest(t)
	customer := createTestCustomer(t, db, "scope@example.com")
	stranger := createTestCustomer(t, db, "stranger@example.com")
	product := createTestProduct(t, db, "Tee", 500, "M")

	if _, err := cartService.AddItem(AddCartItemInput{CustomerID: customer.ID, ProductID: product.ID, Size: "M"}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	result, err := svc.Checkout(validShipping(customer.ID))
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := svc.GetOrderForCustomer(result.OrderNo, customer.ID); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if _, err := svc.GetOrderForCustomer(result.OrderNo, stranger.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("foreign lookup want ErrOrderNotFound got %v", err)
	}
}

func TestCancelOrderOnlyWhilePending(t *testing.T) {
	svc, cartService, db := setupCheckoutServiceTest(t)
	customer := createTestCustomer(t, db, "cancel@example.com")
	product := createTestProduct(t, db, "Tee", 500, "M")

	if _, err := cartService.AddItem(AddCartItemInput{CustomerID: customer.ID, ProductID: product.ID, Size: "M"}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	result, err := svc.Checkout(validShipping(customer.ID))
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if err := svc.CancelOrder(result.OrderNo, customer.ID); err != nil {
		t.Fatalf("cancel pending failed: %v", err)
	}

	order, err := svc.GetOrderForCustomer(result.OrderNo, customer.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if order.Status != constants.OrderStatusCancelled {
		t.Fatalf("status want cancelled got %s", order.Status)
	}

	// 已取消订单不能再次取消
	if err := svc.CancelOrder(result.OrderNo, customer.ID); !errors.Is(err, ErrOrderAlreadyClosed) {
		t.Fatalf("want ErrOrderAlreadyClosed got %v", err)
	}
}

func TestCheckoutZeroTotalCartRejected(t *testing.T) {
	svc, cartService, db := setupCheckoutServiceTest(t)
	customer := createTestCustomer(t, db, "zerototal@example.com")
	product := createTestProduct(t, db, "Freebie", 0, "M")

	if _, err := cartService.AddItem(AddCartItemInput{CustomerID: customer.ID, ProductID: product.ID, Size: "M"}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if _, err := svc.Checkout(validShipping(customer.ID)); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("zero-total cart want ErrEmptyCart got %v", err)
	}
}
