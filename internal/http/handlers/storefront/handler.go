package storefront

import "github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/provider"

// Handler 店面接口处理器入口
// 说明：该处理器承载购物车、浏览、认证代理与 SEO 等全部对外 API。
type Handler struct {
	*provider.Container
}

// New 创建店面处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
