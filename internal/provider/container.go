package provider

import (
	"time"

	"github.com/wabi-shop/internal/cache"
	"github.com/wabi-shop/internal/config"
	"github.com/wabi-shop/internal/logger"
	"github.com/wabi-shop/internal/models"
	"github.com/wabi-shop/internal/queue"
	"github.com/wabi-shop/internal/repository"
	"github.com/wabi-shop/internal/service"

	"github.com/shopspring/decimal"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo    repository.AdminRepository
	UserRepo     repository.UserRepository
	CustomerRepo repository.CustomerRepository
	ProductRepo  repository.ProductRepository
	SizeRepo     repository.SizeRepository
	OrderRepo    repository.OrderRepository
	ReviewRepo   repository.ReviewRepository
	MerchRepo    repository.MerchandisingRepository
	LeadRepo     repository.LeadRepository

	// Services
	AuthService          *service.AuthService
	UserAuthService      *service.UserAuthService
	EmailService         *service.EmailService
	UploadService        *service.UploadService
	CatalogService       *service.CatalogService
	CartService          *service.CartService
	CheckoutService      *service.CheckoutService
	SearchService        *service.SearchService
	ReviewService        *service.ReviewService
	MerchandisingService *service.MerchandisingService
	LeadService          *service.LeadService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.SizeRepo = repository.NewSizeRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.MerchRepo = repository.NewMerchandisingRepository(db)
	c.LeadRepo = repository.NewLeadRepository(db)
}

func (c *Container) initServices() {
	shippingCharge := decimal.NewFromFloat(c.Config.Store.ShippingCharge)
	stashTTL := time.Duration(c.Config.Search.StashTTLSeconds) * time.Second

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo, c.CustomerRepo)
	c.UploadService = service.NewUploadService(c.Config)
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.SizeRepo, c.ReviewRepo)
	c.CartService = service.NewCartService(c.OrderRepo, c.ProductRepo, c.SizeRepo, shippingCharge)
	c.CheckoutService = service.NewCheckoutService(models.DB, c.OrderRepo, c.CartService, c.QueueClient)
	c.SearchService = service.NewSearchService(c.ProductRepo, cache.NewSearchStash(stashTTL))
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.ProductRepo)
	c.MerchandisingService = service.NewMerchandisingService(c.MerchRepo, c.ProductRepo)
	c.LeadService = service.NewLeadService(c.LeadRepo)
}
