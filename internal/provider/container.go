package provider

import (
	"time"

	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/backend"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/cache"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/config"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/events"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/logger"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/models"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/queue"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/service"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/sessionstore"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	SessionStore sessionstore.Store
	Bus          *events.Bus
	Backend      *backend.Client

	// Services
	CartService    *service.CartService
	CatalogService *service.CatalogService
	OrderService   *service.OrderService
	AuthService    *service.AuthService
	SEOService     *service.SEOService
	PageService    *service.PageService
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

	c.initSessionStore()
	c.Bus = events.NewBus()
	c.Backend = backend.New(cfg.Backend)
	c.initServices()

	return c
}

// initSessionStore 按配置选择会话存储后端
// redis 后端在 Redis 未启用时回落到数据库键值表。
func (c *Container) initSessionStore() {
	cfg := c.Config.Session
	if cfg.Backend == "redis" && cache.Enabled() {
		idleTTL := time.Duration(cfg.IdleTTLDays) * 24 * time.Hour
		c.SessionStore = sessionstore.NewRedisStore(cache.Client(), cache.Prefix(), idleTTL)
		return
	}
	if cfg.Backend == "redis" {
		logger.Warnw("session_store_redis_unavailable", "fallback", "database")
	}
	c.SessionStore = sessionstore.NewGormStore(models.DB)
}

func (c *Container) initServices() {
	var dispatcher service.CheckoutDispatcher
	if c.QueueClient != nil && c.QueueClient.Enabled() {
		dispatcher = c.QueueClient
	}
	c.CartService = service.NewCartService(c.SessionStore, c.Bus, dispatcher)
	c.CatalogService = service.NewCatalogService(c.Backend, c.Config.Catalog)
	c.OrderService = service.NewOrderService(c.Backend)
	c.AuthService = service.NewAuthService(c.Backend, c.SessionStore)
	c.SEOService = service.NewSEOService(c.Backend, c.Config.SEO)
	c.PageService = service.NewPageService()
}
