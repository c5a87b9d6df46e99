package router

import (
	"fmt"
	"strings"

	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/cache"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/config"
	storefronthandlers "github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/http/handlers/storefront"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/logger"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := storefronthandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sf"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	r.Use(SessionMiddleware(cfg.Session))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 浏览与静态内容
		apiV1.GET("/catalog/:section", handler.GetCatalogSection)
		apiV1.GET("/seo/meta", handler.GetPageMeta)
		apiV1.GET("/pages/policy", handler.GetPolicyPage)

		// 认证代理
		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), handler.Login)
			auth.POST("/register", handler.Register)
			auth.POST("/logout", handler.Logout)
		}

		// 会话购物车
		cart := apiV1.Group("/cart")
		{
			cart.GET("", handler.GetCart)
			cart.POST("/items", handler.AddCartItem)
			cart.PATCH("/items/:id/quantity", handler.UpdateCartItemQuantity)
			cart.DELETE("/items/:id", handler.RemoveCartItem)
			cart.POST("/items/:id/wishlist", handler.MoveCartItemToWishlist)
			cart.PUT("/address", handler.SubmitAddress)
			cart.POST("/address/preview", handler.PreviewAddress)
			cart.POST("/checkout", handler.Checkout)
		}
		apiV1.GET("/wishlist", handler.GetWishlist)

		// 订单历史（需登录态）
		orders := apiV1.Group("/orders")
		orders.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey))
		{
			orders.GET("", handler.ListMyOrders)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
