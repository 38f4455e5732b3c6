package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/wabi-shop/internal/models"
	"github.com/wabi-shop/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.ProductImage{},
		&models.SizeOption{},
		&models.ProductSize{},
		&models.Order{},
		&models.OrderItem{},
		&models.ShippingAddress{},
		&models.Review{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	return NewCartService(
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		repository.NewSizeRepository(db),
		decimal.NewFromInt(99),
	), db
}

func createTestCustomer(t *testing.T, db *gorm.DB, email string) *models.Customer {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	customer := &models.Customer{UserID: user.ID, Name: "Test", Email: email}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	return customer
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price int64, sizes ...string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Category: "t-shirts",
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	for _, code := range sizes {
		option := &models.SizeOption{Code: code}
		if err := db.Where("code = ?", code).FirstOrCreate(option).Error; err != nil {
			t.Fatalf("ensure size option failed: %v", err)
		}
		row := &models.ProductSize{ProductID: product.ID, SizeID: option.ID, IsAvailable: true}
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("create product size failed: %v", err)
		}
	}
	return product
}

func TestAddItemMergesSameProductAndSize(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	customer := createTestCustomer(t, db, "merge@example.com")
	product := createTestProduct(t, db, "Tee", 500, "M")

	cart, err := svc.AddItem(AddCartItemInput{CustomerID: customer.ID, ProductID: product.ID, Size: "M", Quantity: 2})
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("after first add want 1 item qty 2, got %+v", cart.Items)
	}

	cart, err = svc.AddItem(AddCartItemInput{CustomerID: customer.ID, ProductID: product.ID, Size: "m", Quantity: 3})
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("same product/size should merge into one item, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("merged quantity want 5 got %d", cart.Items[0].Quantity)
	}
}

func TestAddItemSeparateLinesPerSize(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	customer := createTestCustomer(t, db, "sizes@example.com")
	product := createTestProduct(t, db, "Tee", 500, "M", "L")

	if _, err := svc.AddItem(AddCartItemInput{CustomerID: customer.ID, ProductID: product.ID, Size: "M"}); err != nil {
		t.Fatalf("add M failed: %v", err)
	}
	cart, err := svc.AddItem(AddCartItemInput{CustomerID: customer.ID, ProductID: product.ID, Size: "L"})
	if err != nil {
		t.Fatalf("add L failed: %v", err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("different sizes should be separate lines, got %d", len(cart.Items))
	}
}

func TestAddItemRejectsUnavailableSize(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	customer := createTestCustomer(t, db, "unavail@example.com")
	product := createTestProduct(t, db, "Tee", 500, "M")

	// XL 不在该商品的尺码行里
	if _, err := svc.AddItem(AddCartItemInput{CustomerID: customer.ID, ProductID: product.ID, Size: "XL"}); !errors.Is(err, ErrSizeNotAvailable) {
		t.Fatalf("want ErrSizeNotAvailable got %v", err)
	}

	// 尺码行存在但标记为不可售
	if err := db.Model(&models.ProductSize{}).
		Where("product_id = ?", product.ID).
		Update("is_available", false).Error; err != nil {
		t.Fatalf("mark unavailable failed: %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{CustomerID: customer.ID, ProductID: product.ID, Size: "M"}); !errors.Is(err, ErrSizeNotAvailable) {
		t.Fatalf("want ErrSizeNotAvailable for disabled row got %v", err)
	}
}

func TestCartTotalsDerivedFromItems(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	customer := createTestCustomer(t, db, "totals@example.com")
	tee := createTestProduct(t, db, "Tee", 500, "M")
	jacket := createTestProduct(t, db, "Jacket", 2000, "L")

	if _, err := svc.AddItem(AddCartItemInput{CustomerID: customer.ID, ProductID: tee.ID, Size: "M", Quantity: 2}); err != nil {
		t.Fatalf("add tee failed: %v", err)
	}
	cart, err := svc.AddItem(AddCartItemInput{CustomerID: customer.ID, ProductID: jacket.ID, Size: "L", Quantity: 1})
	if err != nil {
		t.Fatalf("add jacket failed: %v", err)
	}

	if cart.ItemCount != 3 {
		t.Fatalf("item count want 3 got %d", cart.ItemCount)
	}
	if !cart.CartTotal.Decimal.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("cart total want 3000 got %s", cart.CartTotal.Decimal)
	}
	if !cart.ShippingCharge.Decimal.Equal(decimal.NewFromInt(99)) {
		t.Fatalf("shipping want 99 got %s", cart.ShippingCharge.Decimal)
	}
	if !cart.GrandTotal.Decimal.Equal(decimal.NewFromInt(3099)) {
		t.Fatalf("grand total want 3099 got %s", cart.GrandTotal.Decimal)
	}
}

func TestEmptyCartHasNoShippingCharge(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	customer := createTestCustomer(t, db, "empty@example.com")

	cart, err := svc.GetCart(customer.ID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("new cart should be empty")
	}
	if !cart.GrandTotal.Decimal.IsZero() || !cart.ShippingCharge.Decimal.IsZero() {
		t.Fatalf("empty cart totals should be zero, got grand=%s shipping=%s", cart.GrandTotal.Decimal, cart.ShippingCharge.Decimal)
	}
}

func TestSetQuantityZeroRemovesItem(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	customer := createTestCustomer(t, db, "qty@example.com")
	product := createTestProduct(t, db, "Tee", 500, "M")

	cart, err := svc.AddItem(AddCartItemInput{CustomerID: customer.ID, ProductID: product.ID, Size: "M", Quantity: 2})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	itemID := cart.Items[0].ItemID

	cart, err = svc.SetQuantity(customer.ID, itemID, 0)
	if err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("quantity 0 should remove the item, got %d items", len(cart.Items))
	}
}

func TestCartItemOwnershipScoped(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	owner := createTestCustomer(t, db, "owner@example.com")
	other := createTestCustomer(t, db, "other@example.com")
	product := createTestProduct(t, db, "Tee", 500, "M")

	cart, err := svc.AddItem(AddCartItemInput{CustomerID: owner.ID, ProductID: product.ID, Size: "M"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	itemID := cart.Items[0].ItemID

	if _, err := svc.SetQuantity(other.ID, itemID, 5); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("foreign customer should get ErrCartItemNotFound, got %v", err)
	}
	if _, err := svc.RemoveItem(other.ID, itemID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("foreign remove should get ErrCartItemNotFound, got %v", err)
	}

	// 原持有人不受影响
	ownerCart, err := svc.GetCart(owner.ID)
	if err != nil {
		t.Fatalf("owner get cart failed: %v", err)
	}
	if len(ownerCart.Items) != 1 {
		t.Fatalf("owner cart should keep its item")
	}
}

func TestGetOrCreateOpenOrderIsSingleton(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	customer := createTestCustomer(t, db, "singleton@example.com")

	first, err := svc.GetOrCreateOpenOrder(customer.ID)
	if err != nil {
		t.Fatalf("first open order failed: %v", err)
	}
	second, err := svc.GetOrCreateOpenOrder(customer.ID)
	if err != nil {
		t.Fatalf("second open order failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("open order should be reused, got %d and %d", first.ID, second.ID)
	}

	var count int64
	if err := db.Model(&models.Order{}).Where("customer_id = ?", customer.ID).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("customer should have exactly one order, got %d", count)
	}
}
