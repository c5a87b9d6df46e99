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

func catalogFixture(t *testing.T, products []map[string]interface{}) *CatalogService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(products)
	}))
	t.Cleanup(srv.Close)
	client := backend.New(config.BackendConfig{
		BaseURL:      srv.URL,
		ProductsPath: "/api/products",
		TimeoutMS:    2000,
	})
	return NewCatalogService(client, config.CatalogConfig{FeaturedDiscountFloor: 30})
}

func sampleProducts() []map[string]interface{} {
	return []map[string]interface{}{
		{"id": "p1", "name": "Phone", "category": "Mobile Electronics", "final_price": "300.00", "discount_percent": 10},
		{"id": "p2", "name": "Sneakers", "category": "Fashion Shoes", "final_price": "120.00", "discount_percent": 40},
		{"id": "p3", "name": "Dumbbell", "category": "Fitness Equipment", "final_price": "80.00", "discount_percent": 5},
		{"id": "p4", "name": "Jacket", "category": "Clothing", "final_price": "200.00", "discount_percent": 15, "featured": true},
	}
}

func TestSectionFiltering(t *testing.T) {
	svc := catalogFixture(t, sampleProducts())
	ctx := context.Background()

	electronics, err := svc.Section(ctx, "electronics", "")
	if err != nil {
		t.Fatalf("electronics: %v", err)
	}
	if len(electronics) != 1 || electronics[0].ID != "p1" {
		t.Fatalf("unexpected electronics: %+v", electronics)
	}

	fashion, err := svc.Section(ctx, "fashion", "")
	if err != nil {
		t.Fatalf("fashion: %v", err)
	}
	if len(fashion) != 2 {
		t.Fatalf("expected sneakers and jacket in fashion, got %+v", fashion)
	}

	sports, err := svc.Section(ctx, "sports", "")
	if err != nil {
		t.Fatalf("sports: %v", err)
	}
	if len(sports) != 1 || sports[0].ID != "p3" {
		t.Fatalf("unexpected sports: %+v", sports)
	}
}

func TestFeaturedSection(t *testing.T) {
	svc := catalogFixture(t, sampleProducts())
	featured, err := svc.Section(context.Background(), "featured", "")
	if err != nil {
		t.Fatalf("featured: %v", err)
	}
	// p2 折扣 40 >= 30，p4 显式 featured
	if len(featured) != 2 {
		t.Fatalf("expected 2 featured products, got %+v", featured)
	}
}

func TestSectionSorting(t *testing.T) {
	svc := catalogFixture(t, sampleProducts())
	ctx := context.Background()

	fashion, err := svc.Section(ctx, "fashion", "price_asc")
	if err != nil {
		t.Fatalf("sort asc: %v", err)
	}
	if fashion[0].ID != "p2" || fashion[1].ID != "p4" {
		t.Fatalf("price_asc order wrong: %+v", fashion)
	}

	fashion, err = svc.Section(ctx, "fashion", "price_desc")
	if err != nil {
		t.Fatalf("sort desc: %v", err)
	}
	if fashion[0].ID != "p4" {
		t.Fatalf("price_desc order wrong: %+v", fashion)
	}

	fashion, err = svc.Section(ctx, "fashion", "discount_desc")
	if err != nil {
		t.Fatalf("sort discount: %v", err)
	}
	if fashion[0].ID != "p2" {
		t.Fatalf("discount_desc order wrong: %+v", fashion)
	}
}

func TestSectionUnknown(t *testing.T) {
	svc := catalogFixture(t, nil)
	if _, err := svc.Section(context.Background(), "toys", ""); !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
}

func TestSectionBackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	client := backend.New(config.BackendConfig{BaseURL: srv.URL, ProductsPath: "/api/products"})
	svc := NewCatalogService(client, config.CatalogConfig{})

	if _, err := svc.Section(context.Background(), "electronics", ""); !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}

func TestSectionMaxItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(sampleProducts())
	}))
	defer srv.Close()
	client := backend.New(config.BackendConfig{BaseURL: srv.URL, ProductsPath: "/api/products"})
	svc := NewCatalogService(client, config.CatalogConfig{MaxItemsPerSection: 1})

	fashion, err := svc.Section(context.Background(), "fashion", "")
	if err != nil {
		t.Fatalf("fashion: %v", err)
	}
	if len(fashion) != 1 {
		t.Fatalf("expected section capped at 1 item, got %d", len(fashion))
	}
}
