package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/config"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/models"
)

// 外部后端错误
var (
	ErrRequestFailed    = errors.New("backend request failed")
	ErrUnexpectedStatus = errors.New("backend returned unexpected status")
	ErrUnauthorized     = errors.New("backend rejected credentials")
)

const defaultTimeout = 5 * time.Second

// Client 外部业务后端客户端
// 商品目录、订单历史、认证、站点配置与结算交接都由该后端提供，
// 本服务只做会话侧的编排，不落地这些数据。
type Client struct {
	cfg        config.BackendConfig
	httpClient *http.Client
}

// AuthUser 外部认证服务返回的用户信息
type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResult 登录/注册结果
type AuthResult struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// New 创建后端客户端
func New(cfg config.BackendConfig) *Client {
	timeout := defaultTimeout
	if cfg.TimeoutMS > 0 {
		timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchProducts 拉取全量商品列表
func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	body, status, err := c.doJSON(ctx, http.MethodGet, c.cfg.ProductsPath, "", nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: products status %d", ErrUnexpectedStatus, status)
	}
	var products []models.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("%w: decode products failed", ErrRequestFailed)
	}
	return products, nil
}

// FetchMyOrders 拉取当前用户历史订单，需携带登录令牌
func (c *Client) FetchMyOrders(ctx context.Context, token string) ([]models.Order, error) {
	body, status, err := c.doJSON(ctx, http.MethodGet, c.cfg.OrdersPath, token, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return nil, ErrUnauthorized
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: orders status %d", ErrUnexpectedStatus, status)
	}
	var orders []models.Order
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, fmt.Errorf("%w: decode orders failed", ErrRequestFailed)
	}
	return orders, nil
}

// Login 透传登录请求
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	payload, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	body, status, err := c.doJSON(ctx, http.MethodPost, c.cfg.LoginPath, "", payload)
	if err != nil {
		return nil, err
	}
	return decodeAuthResult(body, status)
}

// Register 透传注册请求
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	payload, _ := json.Marshal(map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	body, status, err := c.doJSON(ctx, http.MethodPost, c.cfg.RegisterPath, "", payload)
	if err != nil {
		return nil, err
	}
	return decodeAuthResult(body, status)
}

// FetchSiteConfig 拉取站点 SEO 配置
func (c *Client) FetchSiteConfig(ctx context.Context) (*models.SiteConfig, error) {
	body, status, err := c.doJSON(ctx, http.MethodGet, c.cfg.SiteConfigPath, "", nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: site config status %d", ErrUnexpectedStatus, status)
	}
	var siteConfig models.SiteConfig
	if err := json.Unmarshal(body, &siteConfig); err != nil {
		return nil, fmt.Errorf("%w: decode site config failed", ErrRequestFailed)
	}
	return &siteConfig, nil
}

// DeliverCheckout 交付结算快照给外部结算流程
func (c *Client) DeliverCheckout(ctx context.Context, payload models.CheckoutPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encode checkout payload failed", ErrRequestFailed)
	}
	_, status, err := c.doJSON(ctx, http.MethodPost, c.cfg.CheckoutPath, "", body)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("%w: checkout status %d", ErrUnexpectedStatus, status)
	}
	return nil
}

func decodeAuthResult(body []byte, status int) (*AuthResult, error) {
	if status == http.StatusUnauthorized || status == http.StatusForbidden ||
		status == http.StatusBadRequest || status == http.StatusConflict {
		return nil, ErrUnauthorized
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: auth status %d", ErrUnexpectedStatus, status)
	}
	var result AuthResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: decode auth response failed", ErrRequestFailed)
	}
	if strings.TrimSpace(result.Token) == "" {
		return nil, fmt.Errorf("%w: token is empty", ErrUnexpectedStatus)
	}
	return &result, nil
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, body []byte) ([]byte, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: build request failed", ErrRequestFailed)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if strings.TrimSpace(token) != "" {
		req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(token))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s %s", ErrRequestFailed, method, path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: read response failed", ErrRequestFailed)
	}
	return respBody, resp.StatusCode, nil
}
