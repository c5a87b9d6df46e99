package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/backend"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/config"
)

func orderFixture(t *testing.T, handler http.HandlerFunc) *OrderService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := backend.New(config.BackendConfig{
		BaseURL:    srv.URL,
		OrdersPath: "/api/orders/my-orders",
		TimeoutMS:  2000,
	})
	return NewOrderService(client)
}

func TestListMyOrders(t *testing.T) {
	svc := orderFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer jwt-abc" {
			t.Errorf("token not forwarded, got %q", got)
		}
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "o1", "total_price": "700.00", "is_paid": true},
		})
	})
	orders, err := svc.ListMyOrders(context.Background(), "jwt-abc")
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "o1" {
		t.Fatalf("unexpected orders: %+v", orders)
	}
}

func TestListMyOrdersWithoutToken(t *testing.T) {
	svc := orderFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend must not be called without a token")
	})
	if _, err := svc.ListMyOrders(context.Background(), "  "); !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("expected ErrLoginRequired, got %v", err)
	}
}

func TestListMyOrdersExpiredToken(t *testing.T) {
	svc := orderFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	if _, err := svc.ListMyOrders(context.Background(), "expired"); !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("expected ErrLoginRequired, got %v", err)
	}
}

func TestListMyOrdersEmptyHistory(t *testing.T) {
	svc := orderFixture(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]interface{}{})
	})
	orders, err := svc.ListMyOrders(context.Background(), "jwt-abc")
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Fatalf("expected empty non-nil slice, got %+v", orders)
	}
}
