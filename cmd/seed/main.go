package main

import (
	"github.com/wabi-shop/internal/config"
	"github.com/wabi-shop/internal/constants"
	"github.com/wabi-shop/internal/logger"
	"github.com/wabi-shop/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 默认尺码
	if err := models.EnsureDefaultSizeOptions(constants.DefaultAvailableSizes); err != nil {
		stdLog.Fatalf("Failed to seed size options: %v", err)
	}

	// 示例商品
	products := []models.Product{
		{
			Name:       "Oversized Graphic Tee",
			Price:      models.NewMoneyFromDecimal(decimal.NewFromInt(799)),
			Category:   "t-shirts",
			Tagline:    "Heavyweight cotton, relaxed fit",
			Image:      "/uploads/product/sample/tee-black.jpg",
			IsFeatured: true,
		},
		{
			Name:       "Washed Denim Jacket",
			Price:      models.NewMoneyFromDecimal(decimal.NewFromInt(2499)),
			Category:   "jackets",
			Tagline:    "Stone washed, boxy cut",
			Image:      "/uploads/product/sample/denim-jacket.jpg",
			IsFeatured: true,
		},
		{
			Name:     "Pleated Wide Trousers",
			Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(1899)),
			Category: "trousers",
			Tagline:  "Drapey twill, high waist",
			Image:    "/uploads/product/sample/trousers.jpg",
		},
		{
			Name:     "Linen Camp Shirt",
			Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(1499)),
			Category: "shirts",
			Tagline:  "Breathable linen blend",
			Image:    "/uploads/product/sample/camp-shirt.jpg",
		},
	}

	var sizeOptions []models.SizeOption
	if err := models.DB.Find(&sizeOptions).Error; err != nil {
		stdLog.Fatalf("Failed to load size options: %v", err)
	}

	for _, p := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", p.Name).First(&existing).Error; err == nil {
			stdLog.Printf("Product already exists: %s", p.Name)
			continue
		}
		product := p
		if err := models.DB.Create(&product).Error; err != nil {
			stdLog.Printf("Failed to create product %s: %v", p.Name, err)
			continue
		}
		for _, option := range sizeOptions {
			row := models.ProductSize{
				ProductID:   product.ID,
				SizeID:      option.ID,
				IsAvailable: true,
			}
			if err := models.DB.Create(&row).Error; err != nil {
				stdLog.Printf("Failed to create size row for %s/%s: %v", p.Name, option.Code, err)
			}
		}
		stdLog.Printf("Created product: %s", p.Name)
	}

	// 首页轮播
	banners := []models.Banner{
		{
			Title:      "New Season Drop",
			Subtitle:   "Fresh fits for the monsoon",
			ButtonText: "Shop Now",
			Image:      "/uploads/banner/sample/drop.jpg",
			SortOrder:  1,
			IsActive:   true,
		},
		{
			Title:      "Free Shipping Over ₹1999",
			Subtitle:   "Cash on delivery available",
			ButtonText: "Browse",
			Image:      "/uploads/banner/sample/shipping.jpg",
			SortOrder:  2,
			IsActive:   true,
		},
	}
	for _, b := range banners {
		var existing models.Banner
		if err := models.DB.Where("title = ?", b.Title).First(&existing).Error; err == nil {
			stdLog.Printf("Banner already exists: %s", b.Title)
			continue
		}
		banner := b
		if err := models.DB.Create(&banner).Error; err != nil {
			stdLog.Printf("Failed to create banner %s: %v", b.Title, err)
			continue
		}
		stdLog.Printf("Created banner: %s", b.Title)
	}

	// 推荐分类
	featured := []models.FeaturedCategory{
		{
			Title:      "T-Shirts",
			Subtitle:   "Everyday staples",
			ButtonText: "View All",
			Image:      "/uploads/category/sample/tees.jpg",
			SortOrder:  1,
			IsActive:   true,
		},
		{
			Title:      "Jackets",
			Subtitle:   "Layer up",
			ButtonText: "View All",
			Image:      "/uploads/category/sample/jackets.jpg",
			SortOrder:  2,
			IsActive:   true,
		},
	}
	for _, f := range featured {
		var existing models.FeaturedCategory
		if err := models.DB.Where("title = ?", f.Title).First(&existing).Error; err == nil {
			stdLog.Printf("Featured category already exists: %s", f.Title)
			continue
		}
		category := f
		if err := models.DB.Create(&category).Error; err != nil {
			stdLog.Printf("Failed to create featured category %s: %v", f.Title, err)
			continue
		}
		stdLog.Printf("Created featured category: %s", f.Title)
	}

	// Instagram 图片条
	instagram := []models.InstagramImage{
		{Image: "/uploads/instagram/sample/1.jpg", AltText: "street look 1", SortOrder: 1, IsActive: true},
		{Image: "/uploads/instagram/sample/2.jpg", AltText: "street look 2", SortOrder: 2, IsActive: true},
		{Image: "/uploads/instagram/sample/3.jpg", AltText: "street look 3", SortOrder: 3, IsActive: true},
	}
	for _, img := range instagram {
		var existing models.InstagramImage
		if err := models.DB.Where("image = ?", img.Image).First(&existing).Error; err == nil {
			continue
		}
		row := img
		if err := models.DB.Create(&row).Error; err != nil {
			stdLog.Printf("Failed to create instagram image %s: %v", img.Image, err)
			continue
		}
		stdLog.Printf("Created instagram image: %s", img.Image)
	}

	stdLog.Printf("Seed finished")
}
