package sessionstore

import (
	"context"

	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/constants"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/models"
)

// Store 会话键值存储抽象
// 语义与浏览器端键值存储对齐：同步 get/set/remove，无事务、无过期（后端
// 可自行附加闲置 TTL 作为运维策略）。同一会话并发读改写为 last-writer-wins。
type Store interface {
	Get(ctx context.Context, sessionID, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, sessionID, key string, value interface{}) error
	Remove(ctx context.Context, sessionID, key string) error
	Clear(ctx context.Context, sessionID string) error
}

// Session 绑定单个会话的类型化访问器，避免调用方散落字符串键
type Session struct {
	store Store
	id    string
}

// NewSession 创建会话访问器
func NewSession(store Store, sessionID string) *Session {
	return &Session{store: store, id: sessionID}
}

// ID 返回会话标识
func (s *Session) ID() string {
	return s.id
}

// Cart 读取购物车；键不存在返回空购物车
func (s *Session) Cart(ctx context.Context) (models.Cart, error) {
	var cart models.Cart
	found, err := s.store.Get(ctx, s.id, constants.SessionKeyCart, &cart)
	if err != nil {
		return nil, err
	}
	if !found || cart == nil {
		return models.Cart{}, nil
	}
	return cart, nil
}

// SaveCart 写入购物车
func (s *Session) SaveCart(ctx context.Context, cart models.Cart) error {
	return s.store.Set(ctx, s.id, constants.SessionKeyCart, cart)
}

// Wishlist 读取收藏列表；键不存在返回空列表
func (s *Session) Wishlist(ctx context.Context) (models.Wishlist, error) {
	var wishlist models.Wishlist
	found, err := s.store.Get(ctx, s.id, constants.SessionKeyWishlist, &wishlist)
	if err != nil {
		return nil, err
	}
	if !found || wishlist == nil {
		return models.Wishlist{}, nil
	}
	return wishlist, nil
}

// SaveWishlist 写入收藏列表
func (s *Session) SaveWishlist(ctx context.Context, wishlist models.Wishlist) error {
	return s.store.Set(ctx, s.id, constants.SessionKeyWishlist, wishlist)
}

// Address 读取收货地址；键不存在返回 nil
func (s *Session) Address(ctx context.Context) (*models.DeliveryAddress, error) {
	var address models.DeliveryAddress
	found, err := s.store.Get(ctx, s.id, constants.SessionKeyDeliveryAddress, &address)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &address, nil
}

// SaveAddress 写入收货地址
func (s *Session) SaveAddress(ctx context.Context, address models.DeliveryAddress) error {
	return s.store.Set(ctx, s.id, constants.SessionKeyDeliveryAddress, address)
}

// SaveCheckout 写入结算快照
func (s *Session) SaveCheckout(ctx context.Context, payload models.CheckoutPayload) error {
	return s.store.Set(ctx, s.id, constants.SessionKeyCheckoutData, payload)
}

// Checkout 读取结算快照；键不存在返回 nil
func (s *Session) Checkout(ctx context.Context) (*models.CheckoutPayload, error) {
	var payload models.CheckoutPayload
	found, err := s.store.Get(ctx, s.id, constants.SessionKeyCheckoutData, &payload)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &payload, nil
}

// Token 读取登录令牌；键不存在返回空串
func (s *Session) Token(ctx context.Context) (string, error) {
	var token string
	found, err := s.store.Get(ctx, s.id, constants.SessionKeyToken, &token)
	if err != nil {
		return "", err
	}
	if !found {
		return "", nil
	}
	return token, nil
}

// SaveToken 写入登录令牌
func (s *Session) SaveToken(ctx context.Context, token string) error {
	return s.store.Set(ctx, s.id, constants.SessionKeyToken, token)
}

// RemoveToken 删除登录令牌
func (s *Session) RemoveToken(ctx context.Context) error {
	return s.store.Remove(ctx, s.id, constants.SessionKeyToken)
}

// Clear 清空整个会话（登出）
func (s *Session) Clear(ctx context.Context) error {
	return s.store.Clear(ctx, s.id)
}
