package provider

import (
	"github.com/brewnext/internal/authz"
	"github.com/brewnext/internal/cache"
	"github.com/brewnext/internal/config"
	"github.com/brewnext/internal/kvstore"
	"github.com/brewnext/internal/logger"
	"github.com/brewnext/internal/models"
	"github.com/brewnext/internal/queue"
	"github.com/brewnext/internal/repository"
	"github.com/brewnext/internal/seed"
	"github.com/brewnext/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Store       kvstore.Store

	// Repositories
	AdminRepo        repository.AdminRepository
	UserRepo         repository.UserRepository
	ProductRepo      repository.ProductRepository
	OrderRepo        repository.OrderRepository
	ReviewRepo       repository.ReviewRepository
	NotificationRepo repository.NotificationRepository

	// Services
	AuthzService        *authz.Service
	AuthService         *service.AuthService
	UserAuthService     *service.UserAuthService
	UserService         *service.UserService
	CaptchaService      *service.CaptchaService
	ProductService      *service.ProductService
	CartService         *service.CartService
	OrderService        *service.OrderService
	ReviewService       *service.ReviewService
	NotificationService *service.NotificationService
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
		Store:       kvstore.NewGormStore(models.DB),
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	c.AdminRepo = repository.NewAdminRepository(models.DB)
	c.UserRepo = repository.NewUserRepository(models.DB)
	c.ProductRepo = repository.NewMemoryProductRepository(seed.Products())
	c.OrderRepo = repository.NewOrderRepository(c.Store)
	c.ReviewRepo = repository.NewReviewRepository(c.Store)
	c.NotificationRepo = repository.NewNotificationRepository(c.Store)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo, c.Store)
	c.UserService = service.NewUserService(c.UserRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.ProductService = service.NewProductService(c.ProductRepo, c.Config.Catalog.FeaturedLimit)
	c.CartService = service.NewCartService(c.Store, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.QueueClient)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.ProductRepo)
	c.NotificationService = service.NewNotificationService(c.NotificationRepo)
}

// Close 释放容器持有的资源
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("provider_close_queue_client_failed", "error", err)
		}
	}
}
