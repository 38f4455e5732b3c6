package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/wabi-shop/internal/constants"
	"github.com/wabi-shop/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.ShippingAddress{},
	); err != nil {
		t.Fatalf("migrate order tables failed: %v", err)
	}
	return NewOrderRepository(db), db
}

func TestCreateOpenEnforcesSingleOpenOrder(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	first, err := repo.CreateOpen(1)
	if err != nil {
		t.Fatalf("first open order failed: %v", err)
	}
	if first.OpenSlot == nil || *first.OpenSlot != 1 {
		t.Fatalf("open order should hold the open slot, got %v", first.OpenSlot)
	}

	// 同一顾客的第二条未结算订单撞唯一索引
	if _, err := repo.CreateOpen(1); err == nil {
		t.Fatalf("second open order for same customer should violate unique index")
	}

	// 其他顾客不受影响
	if _, err := repo.CreateOpen(2); err != nil {
		t.Fatalf("open order for another customer failed: %v", err)
	}
}

func TestFinalizeReleasesOpenSlot(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	order, err := repo.CreateOpen(1)
	if err != nil {
		t.Fatalf("create open failed: %v", err)
	}

	now := time.Now()
	err = repo.Finalize(order.ID, map[string]interface{}{
		"order_no":       "ORD-20260829-ABCDEF",
		"payment_method": constants.PaymentMethodCOD,
		"ordered_at":     &now,
	})
	if err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.OpenSlot != nil {
		t.Fatalf("finalize must release the open slot, got %v", reloaded.OpenSlot)
	}
	if !reloaded.Complete {
		t.Fatalf("finalize must mark the order complete")
	}
	if reloaded.OrderNo != "ORD-20260829-ABCDEF" {
		t.Fatalf("order no want ORD-20260829-ABCDEF got %s", reloaded.OrderNo)
	}

	// 释放后可以再开新单
	if _, err := repo.CreateOpen(1); err != nil {
		t.Fatalf("open order after finalize failed: %v", err)
	}
}

func TestGetItemMatchesProductAndSize(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	order, err := repo.CreateOpen(1)
	if err != nil {
		t.Fatalf("create open failed: %v", err)
	}
	product := &models.Product{
		Name:  "Tee",
		Price: models.NewMoneyFromDecimal(decimal.NewFromInt(500)),
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	item := &models.OrderItem{OrderID: order.ID, ProductID: product.ID, Size: "M", Quantity: 2}
	if err := repo.CreateItem(item); err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	got, err := repo.GetItem(order.ID, product.ID, "M")
	if err != nil {
		t.Fatalf("get item failed: %v", err)
	}
	if got == nil || got.ID != item.ID {
		t.Fatalf("want item %d got %+v", item.ID, got)
	}

	// 尺码不同视为不同行
	got, err = repo.GetItem(order.ID, product.ID, "L")
	if err != nil {
		t.Fatalf("get item L failed: %v", err)
	}
	if got != nil {
		t.Fatalf("different size should not match, got %+v", got)
	}
}

func TestGetByOrderNoAndCustomerScopesOwner(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	order, err := repo.CreateOpen(7)
	if err != nil {
		t.Fatalf("create open failed: %v", err)
	}
	if err := repo.Finalize(order.ID, map[string]interface{}{"order_no": "ORD-20260829-AAAAAA"}); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	got, err := repo.GetByOrderNoAndCustomer("ORD-20260829-AAAAAA", 7)
	if err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if got == nil {
		t.Fatalf("owner should find the order")
	}

	got, err = repo.GetByOrderNoAndCustomer("ORD-20260829-AAAAAA", 8)
	if err != nil {
		t.Fatalf("foreign lookup failed: %v", err)
	}
	if got != nil {
		t.Fatalf("foreign customer must not see the order")
	}

	got, err = repo.GetByOrderNoAndCustomer("   ", 7)
	if err != nil {
		t.Fatalf("blank order no lookup failed: %v", err)
	}
	if got != nil {
		t.Fatalf("blank order no should return nothing")
	}
}

func TestListCompletedByCustomerExcludesOpenOrders(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	done, err := repo.CreateOpen(3)
	if err != nil {
		t.Fatalf("create open failed: %v", err)
	}
	now := time.Now()
	if err := repo.Finalize(done.ID, map[string]interface{}{
		"order_no":   "ORD-20260829-BBBBBB",
		"ordered_at": &now,
	}); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	// 进行中的购物车不应出现在历史里
	if _, err := repo.CreateOpen(3); err != nil {
		t.Fatalf("second open failed: %v", err)
	}

	orders, total, err := repo.ListCompletedByCustomer(OrderListFilter{CustomerID: 3, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("want exactly the finalized order, got total=%d n=%d", total, len(orders))
	}
	if orders[0].OrderNo != "ORD-20260829-BBBBBB" {
		t.Fatalf("unexpected order in history: %s", orders[0].OrderNo)
	}
}
