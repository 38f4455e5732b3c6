package router

import (
	"fmt"
	"strings"

	"github.com/wabi-shop/internal/cache"
	"github.com/wabi-shop/internal/config"
	adminhandlers "github.com/wabi-shop/internal/http/handlers/admin"
	publichandlers "github.com/wabi-shop/internal/http/handlers/public"
	"github.com/wabi-shop/internal/logger"
	"github.com/wabi-shop/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "ws"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（上传的图片）- 必须放在最前面
	r.Static("/uploads", "./uploads")

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetSiteConfig)
			public.GET("/home", publicHandler.GetHome)
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/products/:id/reviews", publicHandler.ListReviews)
			public.GET("/categories", publicHandler.ListCategories)
			public.POST("/search", publicHandler.Search)
			public.GET("/search/results", publicHandler.SearchResults)
			public.POST("/newsletter", publicHandler.Subscribe)
			public.POST("/contact", publicHandler.SubmitContactUs)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
		}

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetProfile)
			user.PUT("/me/profile", publicHandler.UpdateProfile)
			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.PUT("/cart/items/:item_id", publicHandler.UpdateCartItem)
			user.DELETE("/cart/items/:item_id", publicHandler.DeleteCartItem)
			user.POST("/checkout", publicHandler.Checkout)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:order_no", publicHandler.GetOrder)
			user.POST("/orders/:order_no/cancel", publicHandler.CancelOrder)
			user.POST("/products/:id/reviews", publicHandler.CreateReview)
		}

		// 管理员接口
		admin := apiV1.Group("/admin")
		{
			// 登录接口（无需鉴权）
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), adminHandler.AdminLogin)

			// 需要鉴权的接口
			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				authorized.PUT("/password", adminHandler.UpdateAdminPassword)

				// 商品管理
				authorized.GET("/products", adminHandler.GetAdminProducts)
				authorized.GET("/products/:id", adminHandler.GetAdminProduct)
				authorized.POST("/products", adminHandler.CreateProduct)
				authorized.PUT("/products/:id", adminHandler.UpdateProduct)
				authorized.DELETE("/products/:id", adminHandler.DeleteProduct)
				authorized.POST("/products/:id/sizes/sync", adminHandler.SyncProductSizes)
				authorized.PUT("/products/:id/sizes", adminHandler.SetProductSizeAvailability)

				// 尺码字典
				authorized.GET("/sizes", adminHandler.GetSizeOptions)
				authorized.POST("/sizes", adminHandler.CreateSizeOption)
				authorized.DELETE("/sizes/:id", adminHandler.DeleteSizeOption)

				// 订单管理
				authorized.GET("/orders", adminHandler.GetAdminOrders)
				authorized.GET("/orders/:id", adminHandler.GetAdminOrder)
				authorized.PATCH("/orders/:id", adminHandler.UpdateOrderStatus)

				// 首页内容管理
				authorized.GET("/banners", adminHandler.GetAdminBanners)
				authorized.POST("/banners", adminHandler.SaveBanner)
				authorized.DELETE("/banners/:id", adminHandler.DeleteBanner)
				authorized.GET("/featured-categories", adminHandler.GetAdminFeaturedCategories)
				authorized.POST("/featured-categories", adminHandler.SaveFeaturedCategory)
				authorized.DELETE("/featured-categories/:id", adminHandler.DeleteFeaturedCategory)
				authorized.GET("/instagram-images", adminHandler.GetAdminInstagramImages)
				authorized.POST("/instagram-images", adminHandler.SaveInstagramImage)
				authorized.DELETE("/instagram-images/:id", adminHandler.DeleteInstagramImage)

				// 用户与线索
				authorized.GET("/users", adminHandler.GetAdminUsers)
				authorized.GET("/customers", adminHandler.GetAdminCustomers)
				authorized.GET("/newsletters", adminHandler.GetAdminNewsletters)
				authorized.GET("/contact-messages", adminHandler.GetAdminContactMessages)

				// 评价管理
				authorized.DELETE("/reviews/:id", adminHandler.DeleteReview)

				// 文件上传
				authorized.POST("/upload", adminHandler.UploadFile)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
