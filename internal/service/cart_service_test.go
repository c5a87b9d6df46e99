package service

import (
	"context"
	"errors"
	"testing"

	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/constants"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/events"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/models"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/sessionstore"
)

type fakeDispatcher struct {
	sessions []string
	payloads []models.CheckoutPayload
	fail     bool
}

func (f *fakeDispatcher) EnqueueCheckoutHandoff(ctx context.Context, sessionID string, payload models.CheckoutPayload) error {
	if f.fail {
		return errors.New("queue down")
	}
	f.sessions = append(f.sessions, sessionID)
	f.payloads = append(f.payloads, payload)
	return nil
}

func newCartFixture() (*CartService, *events.Bus, sessionstore.Store, *fakeDispatcher) {
	store := sessionstore.NewMemoryStore()
	bus := events.NewBus()
	dispatcher := &fakeDispatcher{}
	return NewCartService(store, bus, dispatcher), bus, store, dispatcher
}

func testItem(id string, price int64, qty, stock int) models.CartLineItem {
	return models.CartLineItem{
		ID:             id,
		Name:           "Item " + id,
		FinalUnitPrice: models.NewMoneyFromInt(price),
		UnitPrice:      models.NewMoneyFromInt(price),
		Quantity:       qty,
		MaxStock:       stock,
	}
}

func validAddress() models.DeliveryAddress {
	return models.DeliveryAddress{
		Country:       "Nepal",
		City:          "Bhaktapur",
		StreetAddress: "x",
		Phone:         "1",
		Email:         "a@b.com",
	}
}

func TestLoadSessionFreshIsEmpty(t *testing.T) {
	svc, _, _, _ := newCartFixture()
	view, err := svc.LoadSession(context.Background(), "s1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("expected empty cart")
	}
	if view.Address != nil {
		t.Fatalf("expected no address")
	}
	if view.AddressState != constants.AddressStateNone {
		t.Fatalf("expected no_address state, got %s", view.AddressState)
	}
	if view.Delivery.ChargeStatus != constants.DeliveryChargeStatusPending {
		t.Fatalf("fresh session delivery must be pending, got %s", view.Delivery.ChargeStatus)
	}
}

func TestLoadSessionMarksFoundAddressSubmitted(t *testing.T) {
	svc, _, store, _ := newCartFixture()
	ctx := context.Background()
	addr := validAddress()
	addr.Submitted = false
	session := sessionstore.NewSession(store, "s1")
	if err := session.SaveAddress(ctx, addr); err != nil {
		t.Fatalf("seed address: %v", err)
	}

	view, err := svc.LoadSession(ctx, "s1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if view.Address == nil || !view.Address.Submitted {
		t.Fatalf("address found on load must be treated as submitted: %+v", view.Address)
	}
	if view.AddressState != constants.AddressStateSubmitted {
		t.Fatalf("expected submitted state, got %s", view.AddressState)
	}
	if !view.Delivery.FreeDelivery {
		t.Fatalf("Bhaktapur address must compute free delivery on load")
	}
}

func TestAddItemDedupAndClamp(t *testing.T) {
	svc, _, _, _ := newCartFixture()
	ctx := context.Background()

	view, err := svc.AddItem(ctx, "s1", testItem("a", 100, 2, 5))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].Quantity != 2 {
		t.Fatalf("unexpected cart: %+v", view.Items)
	}

	view, err = svc.AddItem(ctx, "s1", testItem("a", 100, 10, 5))
	if err != nil {
		t.Fatalf("add again: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("same id must not create a second line")
	}
	if view.Items[0].Quantity != 5 {
		t.Fatalf("quantity must clamp to maxStock, got %d", view.Items[0].Quantity)
	}
}

func TestAddItemRejectsEmptyID(t *testing.T) {
	svc, _, _, _ := newCartFixture()
	if _, err := svc.AddItem(context.Background(), "s1", testItem("  ", 100, 1, 5)); !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("expected ErrInvalidCartItem, got %v", err)
	}
}

func TestRemoveItemIdempotent(t *testing.T) {
	svc, bus, _, _ := newCartFixture()
	ctx := context.Background()
	if _, err := svc.AddItem(ctx, "s1", testItem("a", 100, 1, 5)); err != nil {
		t.Fatalf("add: %v", err)
	}

	var notified int
	bus.Subscribe(constants.EventCartChanged, func(string) { notified++ })

	view, err := svc.RemoveItem(ctx, "s1", "a")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("item not removed")
	}
	if notified != 1 {
		t.Fatalf("expected one cart_changed notification, got %d", notified)
	}

	// 第二次删除同一 id：无错误、不再广播
	if _, err := svc.RemoveItem(ctx, "s1", "a"); err != nil {
		t.Fatalf("second remove must be a no-op, got %v", err)
	}
	if notified != 1 {
		t.Fatalf("no-op remove must not notify, got %d", notified)
	}
}

func TestUpdateQuantityClampsBothBounds(t *testing.T) {
	svc, _, _, _ := newCartFixture()
	ctx := context.Background()
	if _, err := svc.AddItem(ctx, "s1", testItem("a", 100, 3, 5)); err != nil {
		t.Fatalf("add: %v", err)
	}

	view, err := svc.UpdateQuantity(ctx, "s1", "a", 100)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if view.Items[0].Quantity != 5 {
		t.Fatalf("expected clamp to 5, got %d", view.Items[0].Quantity)
	}

	view, err = svc.UpdateQuantity(ctx, "s1", "a", -100)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if view.Items[0].Quantity != 1 {
		t.Fatalf("expected clamp to 1, got %d", view.Items[0].Quantity)
	}
}

func TestUpdateQuantityUnknownID(t *testing.T) {
	svc, _, _, _ := newCartFixture()
	if _, err := svc.UpdateQuantity(context.Background(), "s1", "missing", 1); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestMoveToWishlistDedup(t *testing.T) {
	svc, bus, _, _ := newCartFixture()
	ctx := context.Background()

	var wishlistNotified int
	bus.Subscribe(constants.EventWishlistChanged, func(string) { wishlistNotified++ })

	if _, err := svc.AddItem(ctx, "s1", testItem("a", 100, 2, 5)); err != nil {
		t.Fatalf("add: %v", err)
	}
	view, err := svc.MoveToWishlist(ctx, "s1", "a")
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("cart must be empty after move")
	}

	// 重新加入再移动：收藏仍只有一条
	if _, err := svc.AddItem(ctx, "s1", testItem("a", 100, 1, 5)); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if _, err := svc.MoveToWishlist(ctx, "s1", "a"); err != nil {
		t.Fatalf("second move: %v", err)
	}

	wishlist, err := svc.Wishlist(ctx, "s1")
	if err != nil {
		t.Fatalf("wishlist: %v", err)
	}
	if len(wishlist) != 1 || wishlist[0].ID != "a" {
		t.Fatalf("expected exactly one wishlist entry, got %+v", wishlist)
	}
	if wishlistNotified != 1 {
		t.Fatalf("dedup move must not re-notify, got %d", wishlistNotified)
	}
}

func TestMoveToWishlistUnknownID(t *testing.T) {
	svc, _, _, _ := newCartFixture()
	if _, err := svc.MoveToWishlist(context.Background(), "s1", "missing"); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestSubmitAddressValidationOrder(t *testing.T) {
	svc, _, store, _ := newCartFixture()
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*models.DeliveryAddress)
		wantErr error
	}{
		{"country first", func(a *models.DeliveryAddress) { a.Country = ""; a.City = ""; a.Phone = "" }, ErrCountryRequired},
		{"city second", func(a *models.DeliveryAddress) { a.City = ""; a.Phone = "" }, ErrCityRequired},
		{"street third", func(a *models.DeliveryAddress) { a.StreetAddress = " "; a.Email = "" }, ErrStreetRequired},
		{"phone fourth", func(a *models.DeliveryAddress) { a.Phone = ""; a.Email = "" }, ErrPhoneRequired},
		{"email last", func(a *models.DeliveryAddress) { a.Email = "" }, ErrEmailRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			addr := validAddress()
			tc.mutate(&addr)
			if _, err := svc.SubmitAddress(ctx, "s1", addr); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	// 校验失败不得持久化
	session := sessionstore.NewSession(store, "s1")
	persisted, err := session.Address(ctx)
	if err != nil {
		t.Fatalf("address: %v", err)
	}
	if persisted != nil {
		t.Fatalf("failed submission must not persist, got %+v", persisted)
	}
}

func TestSubmitAddressSuccess(t *testing.T) {
	svc, _, store, _ := newCartFixture()
	ctx := context.Background()
	if _, err := svc.AddItem(ctx, "s1", testItem("a", 100, 2, 5)); err != nil {
		t.Fatalf("add: %v", err)
	}

	view, err := svc.SubmitAddress(ctx, "s1", validAddress())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if view.AddressState != constants.AddressStateSubmitted {
		t.Fatalf("expected submitted state, got %s", view.AddressState)
	}
	if !view.Delivery.FreeDelivery {
		t.Fatalf("Bhaktapur must be free delivery")
	}
	if view.Summary.Total.String() != "200.00" {
		t.Fatalf("expected total 200.00, got %s", view.Summary.Total)
	}

	session := sessionstore.NewSession(store, "s1")
	persisted, _ := session.Address(ctx)
	if persisted == nil || !persisted.Submitted {
		t.Fatalf("submitted address must persist: %+v", persisted)
	}
}

func TestPreviewAddressDoesNotPersist(t *testing.T) {
	svc, _, store, _ := newCartFixture()
	ctx := context.Background()
	if _, err := svc.AddItem(ctx, "s1", testItem("a", 100, 2, 5)); err != nil {
		t.Fatalf("add: %v", err)
	}

	computation, err := svc.PreviewAddress(ctx, "s1", models.DeliveryAddress{Country: "Nepal", City: "Pokhara"})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if computation.ChargeStatus != constants.DeliveryChargeStatusCharged || computation.DeliveryCharge.String() != "500.00" {
		t.Fatalf("unexpected preview: %+v", computation)
	}

	session := sessionstore.NewSession(store, "s1")
	persisted, _ := session.Address(ctx)
	if persisted != nil {
		t.Fatalf("preview must not persist")
	}
}

func TestPreviewAddressIncompleteDraftStaysPending(t *testing.T) {
	svc, _, _, _ := newCartFixture()
	ctx := context.Background()
	if _, err := svc.AddItem(ctx, "s1", testItem("a", 100, 2, 5)); err != nil {
		t.Fatalf("add: %v", err)
	}

	computation, err := svc.PreviewAddress(ctx, "s1", models.DeliveryAddress{Country: "", City: "Berlin"})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if computation.ChargeStatus != constants.DeliveryChargeStatusPending {
		t.Fatalf("empty country draft should stay pending, got %+v", computation)
	}
	if computation.TaxApplicable {
		t.Fatalf("incomplete draft must not trigger international tax")
	}
}

func TestCheckoutPreconditions(t *testing.T) {
	svc, _, _, _ := newCartFixture()
	ctx := context.Background()

	if _, err := svc.Checkout(ctx, "s1"); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}

	if _, err := svc.AddItem(ctx, "s1", testItem("a", 100, 2, 5)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Checkout(ctx, "s1"); !errors.Is(err, ErrAddressNotSubmitted) {
		t.Fatalf("expected ErrAddressNotSubmitted, got %v", err)
	}
}

func TestCheckoutPersistsAndDispatches(t *testing.T) {
	svc, _, store, dispatcher := newCartFixture()
	ctx := context.Background()
	if _, err := svc.AddItem(ctx, "s1", testItem("a", 100, 2, 5)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.SubmitAddress(ctx, "s1", validAddress()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	payload, err := svc.Checkout(ctx, "s1")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if payload.ID == "" {
		t.Fatalf("payload must carry an id")
	}
	if payload.Total.String() != "200.00" {
		t.Fatalf("expected total 200.00, got %s", payload.Total)
	}

	session := sessionstore.NewSession(store, "s1")
	persisted, err := session.Checkout(ctx)
	if err != nil {
		t.Fatalf("read checkout: %v", err)
	}
	if persisted == nil || persisted.ID != payload.ID {
		t.Fatalf("checkout payload must persist under the session")
	}
	if len(dispatcher.payloads) != 1 || dispatcher.payloads[0].ID != payload.ID {
		t.Fatalf("payload must be handed to the dispatcher")
	}
	if len(dispatcher.sessions) != 1 || dispatcher.sessions[0] != "s1" {
		t.Fatalf("dispatcher must receive the session id, got %v", dispatcher.sessions)
	}
}

func TestCheckoutSurvivesDispatcherFailure(t *testing.T) {
	store := sessionstore.NewMemoryStore()
	svc := NewCartService(store, events.NewBus(), &fakeDispatcher{fail: true})
	ctx := context.Background()
	if _, err := svc.AddItem(ctx, "s1", testItem("a", 100, 1, 5)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.SubmitAddress(ctx, "s1", validAddress()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	payload, err := svc.Checkout(ctx, "s1")
	if err != nil {
		t.Fatalf("checkout must succeed when only the dispatcher fails: %v", err)
	}
	session := sessionstore.NewSession(store, "s1")
	persisted, _ := session.Checkout(ctx)
	if persisted == nil || persisted.ID != payload.ID {
		t.Fatalf("snapshot must persist even when dispatch fails")
	}
}

func TestEndToEndTotals(t *testing.T) {
	cases := []struct {
		name      string
		city      string
		country   string
		wantTotal string
	}{
		{"free zone", "Bhaktapur", "Nepal", "200.00"},
		{"flat fee", "Biratnagar", "Nepal", "700.00"},
		{"international", "Delhi", "India", "236.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _, _ := newCartFixture()
			ctx := context.Background()
			if _, err := svc.AddItem(ctx, "s1", testItem("a", 100, 2, 5)); err != nil {
				t.Fatalf("add: %v", err)
			}
			addr := validAddress()
			addr.Country = tc.country
			addr.City = tc.city
			view, err := svc.SubmitAddress(ctx, "s1", addr)
			if err != nil {
				t.Fatalf("submit: %v", err)
			}
			if view.Summary.Total.String() != tc.wantTotal {
				t.Fatalf("expected total %s, got %s", tc.wantTotal, view.Summary.Total)
			}
		})
	}
}
