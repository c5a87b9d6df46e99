package config

import (
	"fmt"
	"strings"

	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/logger"

	"github.com/spf13/viper"
)

// Config 应用配置结构
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Session  SessionConfig  `mapstructure:"session"`
	Backend  BackendConfig  `mapstructure:"backend"`
	UserJWT  JWTConfig      `mapstructure:"user_jwt"`
	Queue    QueueConfig    `mapstructure:"queue"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Security SecurityConfig `mapstructure:"security"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	SEO      SEOConfig      `mapstructure:"seo"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug / release
}

// LogConfig 日志配置
type LogConfig struct {
	Dir        string `mapstructure:"dir"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// ToLoggerOptions 转换为 logger 配置
func (c LogConfig) ToLoggerOptions() logger.Options {
	return logger.Options{
		Dir:        c.Dir,
		Filename:   c.Filename,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
}

// DatabasePoolConfig 数据库连接池配置
type DatabasePoolConfig struct {
	MaxOpenConns           int `mapstructure:"max_open_conns"`
	MaxIdleConns           int `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeSeconds int `mapstructure:"conn_max_lifetime_seconds"`
	ConnMaxIdleTimeSeconds int `mapstructure:"conn_max_idle_time_seconds"`
}

// DatabaseConfig 数据库配置（会话键值表的落库后端）
type DatabaseConfig struct {
	Driver string             `mapstructure:"driver"` // sqlite / postgres
	DSN    string             `mapstructure:"dsn"`
	Pool   DatabasePoolConfig `mapstructure:"pool"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// SessionConfig 会话存储配置
type SessionConfig struct {
	Backend     string `mapstructure:"backend"` // redis / database
	CookieName  string `mapstructure:"cookie_name"`
	HeaderName  string `mapstructure:"header_name"`
	IdleTTLDays int    `mapstructure:"idle_ttl_days"` // 仅 redis 后端生效，0 表示不过期
}

// BackendConfig 外部业务后端配置
type BackendConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutMS      int    `mapstructure:"timeout_ms"`
	ProductsPath   string `mapstructure:"products_path"`
	OrdersPath     string `mapstructure:"orders_path"`
	LoginPath      string `mapstructure:"login_path"`
	RegisterPath   string `mapstructure:"register_path"`
	SiteConfigPath string `mapstructure:"site_config_path"`
	CheckoutPath   string `mapstructure:"checkout_path"`
}

// JWTConfig JWT 配置（与外部认证服务共享密钥）
type JWTConfig struct {
	SecretKey string `mapstructure:"secret"`
}

// QueueConfig 异步队列配置
type QueueConfig struct {
	Enabled     bool           `mapstructure:"enabled"`
	Host        string         `mapstructure:"host"`
	Port        int            `mapstructure:"port"`
	Password    string         `mapstructure:"password"`
	DB          int            `mapstructure:"db"`
	Concurrency int            `mapstructure:"concurrency"`
	Queues      map[string]int `mapstructure:"queues"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	LoginRateLimit LoginRateLimitConfig `mapstructure:"login_rate_limit"`
}

// LoginRateLimitConfig 登录限流配置
type LoginRateLimitConfig struct {
	WindowSeconds int `mapstructure:"window_seconds"`
	MaxAttempts   int `mapstructure:"max_attempts"`
}

// CatalogConfig 商品浏览配置
type CatalogConfig struct {
	CacheTTLSeconds       int `mapstructure:"cache_ttl_seconds"`
	FeaturedDiscountFloor int `mapstructure:"featured_discount_floor"`
	MaxItemsPerSection    int `mapstructure:"max_items_per_section"`
}

// SEOConfig 站点 SEO 配置
type SEOConfig struct {
	CacheTTLSeconds    int    `mapstructure:"cache_ttl_seconds"`
	DefaultTitle       string `mapstructure:"default_title"`
	DefaultDescription string `mapstructure:"default_description"`
	DefaultImage       string `mapstructure:"default_image"`
	SiteURL            string `mapstructure:"site_url"`
}

// Load 从 config.yml 加载配置
func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")   // 如果从 cmd/server 运行
	viper.AddConfigPath("./etc") // etc 文件夹

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("log.dir", "")
	viper.SetDefault("log.filename", "storefront.log")
	viper.SetDefault("log.max_size_mb", 100)
	viper.SetDefault("log.max_backups", 7)
	viper.SetDefault("log.max_age_days", 30)
	viper.SetDefault("log.compress", true)
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "./db/storefront.db")
	viper.SetDefault("database.pool.max_open_conns", 1)
	viper.SetDefault("database.pool.max_idle_conns", 1)
	viper.SetDefault("database.pool.conn_max_lifetime_seconds", 0)
	viper.SetDefault("database.pool.conn_max_idle_time_seconds", 0)
	viper.SetDefault("redis.enabled", true)
	viper.SetDefault("redis.host", "127.0.0.1")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.prefix", "sf")
	viper.SetDefault("session.backend", "redis")
	viper.SetDefault("session.cookie_name", "sf_session")
	viper.SetDefault("session.header_name", "X-Session-ID")
	viper.SetDefault("session.idle_ttl_days", 30)
	viper.SetDefault("backend.base_url", "http://127.0.0.1:9000")
	viper.SetDefault("backend.timeout_ms", 5000)
	viper.SetDefault("backend.products_path", "/api/products")
	viper.SetDefault("backend.orders_path", "/api/orders/my-orders")
	viper.SetDefault("backend.login_path", "/api/auth/login")
	viper.SetDefault("backend.register_path", "/api/auth/register")
	viper.SetDefault("backend.site_config_path", "/api/site-config")
	viper.SetDefault("backend.checkout_path", "/api/checkout")
	viper.SetDefault("user_jwt.secret", "user-change-me-in-production")
	viper.SetDefault("queue.enabled", true)
	viper.SetDefault("queue.host", "127.0.0.1")
	viper.SetDefault("queue.port", 6379)
	viper.SetDefault("queue.password", "")
	viper.SetDefault("queue.db", 1)
	viper.SetDefault("queue.concurrency", 10)
	viper.SetDefault("queue.queues", map[string]int{
		"default":  10,
		"critical": 5,
	})
	viper.SetDefault("cors.allowed_origins", []string{"*"})
	viper.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	viper.SetDefault("cors.allowed_headers", []string{
		"Content-Type",
		"Content-Length",
		"Accept-Encoding",
		"Authorization",
		"Cache-Control",
		"X-Requested-With",
		"X-Session-ID",
	})
	viper.SetDefault("cors.allow_credentials", true)
	viper.SetDefault("cors.max_age", 600)
	viper.SetDefault("security.login_rate_limit.window_seconds", 300)
	viper.SetDefault("security.login_rate_limit.max_attempts", 5)
	viper.SetDefault("catalog.cache_ttl_seconds", 60)
	viper.SetDefault("catalog.featured_discount_floor", 30)
	viper.SetDefault("catalog.max_items_per_section", 0)
	viper.SetDefault("seo.cache_ttl_seconds", 300)
	viper.SetDefault("seo.default_title", "Storefront")
	viper.SetDefault("seo.default_description", "")
	viper.SetDefault("seo.default_image", "")
	viper.SetDefault("seo.site_url", "")

	// 环境变量支持（server.port -> SERVER_PORT）
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		logger.Warnw("config_file_read_failed",
			"error", err,
			"fallback", "env_or_defaults",
		)
	} else {
		logger.Infow("config_file_loaded", "file", viper.ConfigFileUsed())
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		logger.Errorw("config_unmarshal_failed", "error", err)
		panic(fmt.Errorf("配置解析失败: %w", err))
	}

	return &cfg
}
