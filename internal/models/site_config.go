package models

// SiteConfig 外部站点配置服务返回的 SEO 元数据
type SiteConfig struct {
	SiteTitle       string               `json:"site_title"`
	TitleTemplate   string               `json:"title_template"`
	SiteDescription string               `json:"site_description"`
	Keywords        []string             `json:"keywords"`
	OGImage         string               `json:"og_image"`
	TwitterHandle   string               `json:"twitter_handle"`
	Routes          map[string]RouteMeta `json:"routes,omitempty"`
}

// RouteMeta 按路由覆盖的 SEO 元数据
type RouteMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
