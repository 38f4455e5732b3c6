package service

import (
	"errors"
	"testing"

	"github.com/wabi-shop/internal/models"
	"github.com/wabi-shop/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCatalogServiceTest(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	return NewCatalogService(
		repository.NewProductRepository(db),
		repository.NewSizeRepository(db),
		repository.NewReviewRepository(db),
	), db
}

func ensureSizeOptions(t *testing.T, db *gorm.DB, codes ...string) {
	t.Helper()
	for _, code := range codes {
		option := &models.SizeOption{Code: code}
		if err := db.Where("code = ?", code).FirstOrCreate(option).Error; err != nil {
			t.Fatalf("ensure size option %s failed: %v", code, err)
		}
	}
}

func TestProductDetailAnnotatesEverySize(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	ensureSizeOptions(t, db, "M", "L", "XL")
	// 商品只开了 M 码
	product := createTestProduct(t, db, "Tee", 500, "M")

	detail, err := svc.GetProductDetail(product.ID)
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if len(detail.Sizes) != 3 {
		t.Fatalf("every dictionary size should be annotated, want 3 got %d", len(detail.Sizes))
	}
	available := map[string]bool{}
	for _, size := range detail.Sizes {
		available[size.Code] = size.IsAvailable
	}
	if !available["M"] {
		t.Fatalf("M should be available")
	}
	if available["L"] || available["XL"] {
		t.Fatalf("sizes without rows should be unavailable, got %+v", available)
	}
}

func TestProductDetailNotFound(t *testing.T) {
	svc, _ := setupCatalogServiceTest(t)
	if _, err := svc.GetProductDetail(9999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound got %v", err)
	}
}

func TestProductDetailRelatedSameCategoryOnly(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	product := createTestProduct(t, db, "Tee A", 500)
	createTestProduct(t, db, "Tee B", 600)
	other := &models.Product{
		Name:     "Jacket",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(2000)),
		Category: "jackets",
	}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("create jacket failed: %v", err)
	}

	detail, err := svc.GetProductDetail(product.ID)
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if len(detail.Related) != 1 {
		t.Fatalf("related want 1 got %d", len(detail.Related))
	}
	if detail.Related[0].Name != "Tee B" {
		t.Fatalf("related should exclude self and other categories, got %s", detail.Related[0].Name)
	}
}

func TestProductDetailAverageRating(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	product := createTestProduct(t, db, "Tee", 500)
	user := &models.User{Email: "rater@example.com", PasswordHash: "x"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	for _, rating := range []int{5, 4, 4} {
		review := &models.Review{ProductID: product.ID, UserID: user.ID, Rating: rating, Comment: "ok"}
		if err := db.Create(review).Error; err != nil {
			t.Fatalf("create review failed: %v", err)
		}
	}

	detail, err := svc.GetProductDetail(product.ID)
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if detail.ReviewCount != 3 {
		t.Fatalf("review count want 3 got %d", detail.ReviewCount)
	}
	if detail.AverageRating != 4.3 {
		t.Fatalf("average rating want 4.3 got %v", detail.AverageRating)
	}
}

func TestCreateProductSyncsSizeRows(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	ensureSizeOptions(t, db, "M", "L", "XL")

	product, err := svc.CreateProduct(SaveProductInput{
		Name:     "New Tee",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(700)),
		Category: "t-shirts",
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	var rows []models.ProductSize
	if err := db.Where("product_id = ?", product.ID).Find(&rows).Error; err != nil {
		t.Fatalf("load size rows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("size rows want 3 got %d", len(rows))
	}
	for _, row := range rows {
		if row.IsAvailable {
			t.Fatalf("new size rows should default to unavailable")
		}
	}
}

func TestCreateSizeOptionValidation(t *testing.T) {
	svc, _ := setupCatalogServiceTest(t)

	option, err := svc.CreateSizeOption(" xxl ")
	if err != nil {
		t.Fatalf("create size failed: %v", err)
	}
	if option.Code != "XXL" {
		t.Fatalf("code should be trimmed and uppercased, got %s", option.Code)
	}

	if _, err := svc.CreateSizeOption("xxl"); !errors.Is(err, ErrSizeExists) {
		t.Fatalf("duplicate want ErrSizeExists got %v", err)
	}
	if _, err := svc.CreateSizeOption(""); !errors.Is(err, ErrInvalidSizeCode) {
		t.Fatalf("empty want ErrInvalidSizeCode got %v", err)
	}
	if _, err := svc.CreateSizeOption("TOOLONG"); !errors.Is(err, ErrInvalidSizeCode) {
		t.Fatalf("overlong want ErrInvalidSizeCode got %v", err)
	}
}

func TestSetSizeAvailabilityCreatesMissingRow(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	ensureSizeOptions(t, db, "M")
	product := createTestProduct(t, db, "Tee", 500)

	if err := svc.SetSizeAvailability(product.ID, "M", true); err != nil {
		t.Fatalf("set availability failed: %v", err)
	}

	var row models.ProductSize
	if err := db.Where("product_id = ?", product.ID).First(&row).Error; err != nil {
		t.Fatalf("load row failed: %v", err)
	}
	if !row.IsAvailable {
		t.Fatalf("row should be available")
	}

	if err := svc.SetSizeAvailability(product.ID, "ZZ", true); !errors.Is(err, ErrInvalidSizeCode) {
		t.Fatalf("unknown size want ErrInvalidSizeCode got %v", err)
	}
}
