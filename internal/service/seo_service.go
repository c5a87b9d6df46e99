package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/backend"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/cache"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/config"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/logger"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/models"
)

const seoCacheKey = "seo:site_config"

// PageMeta 某个路由解析后的 SEO 元数据
type PageMeta struct {
	Path         string   `json:"path"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Keywords     []string `json:"keywords,omitempty"`
	Image        string   `json:"image,omitempty"`
	Canonical    string   `json:"canonical,omitempty"`
	HeadFragment string   `json:"head_fragment"`
}

// SEOService SEO 元数据注入服务
// 站点级配置来自外部站点配置服务（带缓存），按路由覆盖后渲染 head 片段。
// 外部配置拉取失败时退回本地默认值，SEO 永不阻塞页面。
type SEOService struct {
	client *backend.Client
	cfg    config.SEOConfig
}

// NewSEOService 创建 SEO 服务
func NewSEOService(client *backend.Client, cfg config.SEOConfig) *SEOService {
	return &SEOService{client: client, cfg: cfg}
}

// MetaFor 解析指定路由的 SEO 元数据并渲染 head 片段
func (s *SEOService) MetaFor(ctx context.Context, path string) PageMeta {
	path = normalizePath(path)
	siteConfig := s.siteConfig(ctx)

	meta := PageMeta{
		Path:        path,
		Title:       s.cfg.DefaultTitle,
		Description: s.cfg.DefaultDescription,
		Image:       s.cfg.DefaultImage,
	}
	if siteConfig != nil {
		if siteConfig.SiteTitle != "" {
			meta.Title = siteConfig.SiteTitle
		}
		if siteConfig.SiteDescription != "" {
			meta.Description = siteConfig.SiteDescription
		}
		if siteConfig.OGImage != "" {
			meta.Image = siteConfig.OGImage
		}
		meta.Keywords = siteConfig.Keywords

		if route, ok := siteConfig.Routes[path]; ok {
			if route.Title != "" {
				meta.Title = applyTitleTemplate(siteConfig.TitleTemplate, route.Title)
			}
			if route.Description != "" {
				meta.Description = route.Description
			}
			if route.Image != "" {
				meta.Image = route.Image
			}
		}
	}
	if s.cfg.SiteURL != "" {
		meta.Canonical = strings.TrimRight(s.cfg.SiteURL, "/") + path
	}
	meta.HeadFragment = renderHeadFragment(meta, siteConfig)
	return meta
}

func (s *SEOService) siteConfig(ctx context.Context) *models.SiteConfig {
	var cached models.SiteConfig
	if found, err := cache.GetJSON(ctx, seoCacheKey, &cached); err == nil && found {
		return &cached
	}

	siteConfig, err := s.client.FetchSiteConfig(ctx)
	if err != nil {
		logger.Warnw("site_config_fetch_failed", "error", err)
		return nil
	}
	ttl := time.Duration(s.cfg.CacheTTLSeconds) * time.Second
	if ttl > 0 {
		if err := cache.SetJSON(ctx, seoCacheKey, siteConfig, ttl); err != nil {
			logger.Warnw("site_config_cache_write_failed", "error", err)
		}
	}
	return siteConfig
}

func renderHeadFragment(meta PageMeta, siteConfig *models.SiteConfig) string {
	var b strings.Builder
	title := html.EscapeString(meta.Title)
	description := html.EscapeString(meta.Description)

	fmt.Fprintf(&b, "<title>%s</title>\n", title)
	if description != "" {
		fmt.Fprintf(&b, "<meta name=\"description\" content=\"%s\">\n", description)
	}
	if len(meta.Keywords) > 0 {
		fmt.Fprintf(&b, "<meta name=\"keywords\" content=\"%s\">\n", html.EscapeString(strings.Join(meta.Keywords, ", ")))
	}
	fmt.Fprintf(&b, "<meta property=\"og:title\" content=\"%s\">\n", title)
	if description != "" {
		fmt.Fprintf(&b, "<meta property=\"og:description\" content=\"%s\">\n", description)
	}
	if meta.Image != "" {
		fmt.Fprintf(&b, "<meta property=\"og:image\" content=\"%s\">\n", html.EscapeString(meta.Image))
	}
	if meta.Canonical != "" {
		fmt.Fprintf(&b, "<meta property=\"og:url\" content=\"%s\">\n", html.EscapeString(meta.Canonical))
		fmt.Fprintf(&b, "<link rel=\"canonical\" href=\"%s\">\n", html.EscapeString(meta.Canonical))
	}
	fmt.Fprintf(&b, "<meta name=\"twitter:card\" content=\"summary_large_image\">\n")
	if siteConfig != nil && siteConfig.TwitterHandle != "" {
		fmt.Fprintf(&b, "<meta name=\"twitter:site\" content=\"%s\">\n", html.EscapeString(siteConfig.TwitterHandle))
	}
	return b.String()
}

func applyTitleTemplate(template, title string) string {
	if strings.Contains(template, "%s") {
		return fmt.Sprintf(template, title)
	}
	return title
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
