package service

import (
	"context"
	"strings"
	"time"

	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/constants"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/events"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/logger"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/models"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/pricing"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/sessionstore"

	"github.com/google/uuid"
)

// CheckoutDispatcher 结算交接分发器（由队列客户端实现）
type CheckoutDispatcher interface {
	EnqueueCheckoutHandoff(ctx context.Context, sessionID string, payload models.CheckoutPayload) error
}

// CartView 购物车视图：行项、地址、配送计算与金额汇总的打包
type CartView struct {
	Items        models.Cart                `json:"items"`
	Address      *models.DeliveryAddress    `json:"address"`
	AddressState string                     `json:"address_state"`
	Delivery     models.DeliveryComputation `json:"delivery"`
	Summary      models.OrderSummary        `json:"summary"`
}

// CartService 购物车服务
// 会话内购物车、收藏与收货地址的唯一写入方；配送费与税费在小计或地址
// 任一变化时整体重算，从不增量修补。
type CartService struct {
	store      sessionstore.Store
	bus        *events.Bus
	dispatcher CheckoutDispatcher
}

// NewCartService 创建购物车服务；dispatcher 可为 nil（结算交接降级为仅落库）
func NewCartService(store sessionstore.Store, bus *events.Bus, dispatcher CheckoutDispatcher) *CartService {
	return &CartService{store: store, bus: bus, dispatcher: dispatcher}
}

// LoadSession 加载会话状态
// 任何其他购物车操作前必须先经过这里：缺失键按空购物车/空地址处理，
// 读到的地址视为已提交并立即计算配送费。
func (s *CartService) LoadSession(ctx context.Context, sessionID string) (*CartView, error) {
	session := sessionstore.NewSession(s.store, sessionID)
	cart, err := session.Cart(ctx)
	if err != nil {
		return nil, err
	}
	address, err := session.Address(ctx)
	if err != nil {
		return nil, err
	}
	if address != nil && !address.Submitted {
		address.Submitted = true
		if err := session.SaveAddress(ctx, *address); err != nil {
			return nil, err
		}
	}
	return s.buildView(cart, address), nil
}

// AddItem 添加商品到购物车
// 同 id 已存在时累加数量；数量始终收敛到 [1, maxStock]。
func (s *CartService) AddItem(ctx context.Context, sessionID string, item models.CartLineItem) (*CartView, error) {
	if strings.TrimSpace(item.ID) == "" {
		return nil, ErrInvalidCartItem
	}
	session := sessionstore.NewSession(s.store, sessionID)
	cart, err := session.Cart(ctx)
	if err != nil {
		return nil, err
	}

	if idx := cart.IndexOf(item.ID); idx >= 0 {
		cart[idx].Quantity += item.Quantity
		cart[idx].ClampQuantity()
	} else {
		item.ClampQuantity()
		cart = append(cart, item)
	}

	if err := session.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	s.publish(constants.EventCartChanged)
	return s.viewFor(ctx, session, cart)
}

// RemoveItem 删除购物车行项；id 不存在时为无副作用的成功（幂等）
func (s *CartService) RemoveItem(ctx context.Context, sessionID, id string) (*CartView, error) {
	session := sessionstore.NewSession(s.store, sessionID)
	cart, err := session.Cart(ctx)
	if err != nil {
		return nil, err
	}

	idx := cart.IndexOf(id)
	if idx < 0 {
		return s.viewFor(ctx, session, cart)
	}
	cart = append(cart[:idx], cart[idx+1:]...)
	if err := session.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	s.publish(constants.EventCartChanged)
	return s.viewFor(ctx, session, cart)
}

// UpdateQuantity 调整行项数量：new = clamp(current + delta, 1, maxStock)
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, id string, delta int) (*CartView, error) {
	session := sessionstore.NewSession(s.store, sessionID)
	cart, err := session.Cart(ctx)
	if err != nil {
		return nil, err
	}

	idx := cart.IndexOf(id)
	if idx < 0 {
		return nil, ErrCartItemNotFound
	}
	cart[idx].Quantity += delta
	cart[idx].ClampQuantity()

	if err := session.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	s.publish(constants.EventCartChanged)
	return s.viewFor(ctx, session, cart)
}

// MoveToWishlist 将行项移入收藏
// 先写收藏再删购物车：中途失败宁可重复也不丢数据。收藏按 id 去重。
func (s *CartService) MoveToWishlist(ctx context.Context, sessionID, id string) (*CartView, error) {
	session := sessionstore.NewSession(s.store, sessionID)
	cart, err := session.Cart(ctx)
	if err != nil {
		return nil, err
	}
	idx := cart.IndexOf(id)
	if idx < 0 {
		return nil, ErrCartItemNotFound
	}

	wishlist, err := session.Wishlist(ctx)
	if err != nil {
		return nil, err
	}
	if !wishlist.Contains(id) {
		wishlist = append(wishlist, models.WishlistItemFromCart(cart[idx]))
		if err := session.SaveWishlist(ctx, wishlist); err != nil {
			return nil, err
		}
		s.publish(constants.EventWishlistChanged)
	}

	return s.RemoveItem(ctx, sessionID, id)
}

// Wishlist 读取收藏列表
func (s *CartService) Wishlist(ctx context.Context, sessionID string) (models.Wishlist, error) {
	session := sessionstore.NewSession(s.store, sessionID)
	return session.Wishlist(ctx)
}

// SubmitAddress 校验并提交收货地址
// 五个字段按 country → city → street → phone → email 的顺序校验，
// 首个失败即返回且不做任何持久化；通过后标记已提交并重算配送费。
func (s *CartService) SubmitAddress(ctx context.Context, sessionID string, candidate models.DeliveryAddress) (*CartView, error) {
	if err := validateAddress(candidate); err != nil {
		return nil, err
	}
	session := sessionstore.NewSession(s.store, sessionID)
	candidate.Submitted = true
	if err := session.SaveAddress(ctx, candidate); err != nil {
		return nil, err
	}

	cart, err := session.Cart(ctx)
	if err != nil {
		return nil, err
	}
	return s.buildView(cart, &candidate), nil
}

// PreviewAddress 地址草稿的配送费实时预览，不持久化
// 国家或城市未填时按默认地址返回"待定"，避免空国家误入国际分支。
func (s *CartService) PreviewAddress(ctx context.Context, sessionID string, candidate models.DeliveryAddress) (models.DeliveryComputation, error) {
	session := sessionstore.NewSession(s.store, sessionID)
	cart, err := session.Cart(ctx)
	if err != nil {
		return models.DeliveryComputation{}, err
	}
	if strings.TrimSpace(candidate.Country) == "" || strings.TrimSpace(candidate.City) == "" {
		return pricing.Compute(cart.Subtotal(), models.NewDeliveryAddress()), nil
	}
	return pricing.Compute(cart.Subtotal(), candidate), nil
}

// Checkout 结算交接
// 前置条件：购物车非空且地址已提交。打包快照落库后交给异步分发器投递。
func (s *CartService) Checkout(ctx context.Context, sessionID string) (*models.CheckoutPayload, error) {
	session := sessionstore.NewSession(s.store, sessionID)
	cart, err := session.Cart(ctx)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, ErrCartEmpty
	}
	address, err := session.Address(ctx)
	if err != nil {
		return nil, err
	}
	if address == nil || !address.Submitted {
		return nil, ErrAddressNotSubmitted
	}

	subtotal := cart.Subtotal()
	computation := pricing.Compute(subtotal, *address)
	summary := pricing.Summarize(subtotal, computation)

	payload := models.CheckoutPayload{
		ID:              uuid.NewString(),
		Cart:            cart,
		DeliveryAddress: *address,
		Subtotal:        summary.Subtotal,
		Shipping:        summary.DeliveryCharge,
		Tax:             summary.TaxAmount,
		Total:           summary.Total,
		DeliveryInfo:    computation,
		CreatedAt:       time.Now(),
	}
	if err := session.SaveCheckout(ctx, payload); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueCheckoutHandoff(ctx, sessionID, payload); err != nil {
			// 快照已落库，投递失败只记日志，外部结算页仍可从会话读取
			logger.Warnw("checkout_handoff_enqueue_failed",
				"checkout_id", payload.ID,
				"error", err,
			)
		}
	}
	return &payload, nil
}

func (s *CartService) viewFor(ctx context.Context, session *sessionstore.Session, cart models.Cart) (*CartView, error) {
	address, err := session.Address(ctx)
	if err != nil {
		return nil, err
	}
	return s.buildView(cart, address), nil
}

func (s *CartService) buildView(cart models.Cart, address *models.DeliveryAddress) *CartView {
	view := &CartView{
		Items:        cart,
		Address:      address,
		AddressState: constants.AddressStateNone,
	}
	subtotal := cart.Subtotal()
	// 地址缺失时按默认地址（Nepal、城市未选）计算，呈现"待定"而非误入国际分支
	effective := models.NewDeliveryAddress()
	if address != nil {
		effective = *address
		view.AddressState = address.State()
	}
	view.Delivery = pricing.Compute(subtotal, effective)
	view.Summary = pricing.Summarize(subtotal, view.Delivery)
	return view
}

func (s *CartService) publish(topic string) {
	if s.bus != nil {
		s.bus.Publish(topic)
	}
}

func validateAddress(candidate models.DeliveryAddress) error {
	if strings.TrimSpace(candidate.Country) == "" {
		return ErrCountryRequired
	}
	if strings.TrimSpace(candidate.City) == "" {
		return ErrCityRequired
	}
	if strings.TrimSpace(candidate.StreetAddress) == "" {
		return ErrStreetRequired
	}
	if strings.TrimSpace(candidate.Phone) == "" {
		return ErrPhoneRequired
	}
	if strings.TrimSpace(candidate.Email) == "" {
		return ErrEmailRequired
	}
	return nil
}
