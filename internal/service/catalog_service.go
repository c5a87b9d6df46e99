package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/backend"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/cache"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/config"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/constants"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/logger"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/models"
)

const catalogCacheKey = "catalog:products"

// sectionKeywords 板块关键字：命中商品分类任一关键字即归入该板块
var sectionKeywords = map[string][]string{
	constants.CatalogSectionElectronics: {"electronic", "mobile", "laptop", "camera", "headphone", "gadget"},
	constants.CatalogSectionFashion:     {"fashion", "clothing", "apparel", "shoe", "watch", "accessor"},
	constants.CatalogSectionSports:      {"sport", "fitness", "gym", "outdoor"},
}

// CatalogService 商品浏览服务
// 商品数据归外部目录服务所有，这里只做拉取、板块过滤与排序；
// 全量列表短 TTL 缓存，避免每个板块请求都打到外部接口。
type CatalogService struct {
	client *backend.Client
	cfg    config.CatalogConfig
}

// NewCatalogService 创建商品浏览服务
func NewCatalogService(client *backend.Client, cfg config.CatalogConfig) *CatalogService {
	return &CatalogService{client: client, cfg: cfg}
}

// Section 返回指定板块的商品列表，可选排序
func (s *CatalogService) Section(ctx context.Context, section, sortBy string) ([]models.Product, error) {
	section = strings.ToLower(strings.TrimSpace(section))
	if !isKnownSection(section) {
		return nil, ErrUnknownSection
	}

	products, err := s.allProducts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if s.matchesSection(p, section) {
			filtered = append(filtered, p)
		}
	}
	sortProducts(filtered, sortBy)

	if s.cfg.MaxItemsPerSection > 0 && len(filtered) > s.cfg.MaxItemsPerSection {
		filtered = filtered[:s.cfg.MaxItemsPerSection]
	}
	return filtered, nil
}

func (s *CatalogService) allProducts(ctx context.Context) ([]models.Product, error) {
	var cached []models.Product
	if found, err := cache.GetJSON(ctx, catalogCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	products, err := s.client.FetchProducts(ctx)
	if err != nil {
		if errors.Is(err, backend.ErrRequestFailed) || errors.Is(err, backend.ErrUnexpectedStatus) {
			return nil, ErrBackendUnavailable
		}
		return nil, err
	}

	ttl := time.Duration(s.cfg.CacheTTLSeconds) * time.Second
	if ttl > 0 {
		if err := cache.SetJSON(ctx, catalogCacheKey, products, ttl); err != nil {
			logger.Warnw("catalog_cache_write_failed", "error", err)
		}
	}
	return products, nil
}

func (s *CatalogService) matchesSection(p models.Product, section string) bool {
	if section == constants.CatalogSectionFeatured {
		floor := s.cfg.FeaturedDiscountFloor
		if floor <= 0 {
			floor = 30
		}
		return p.Featured || p.DiscountPercent >= floor
	}
	category := strings.ToLower(p.Category)
	for _, keyword := range sectionKeywords[section] {
		if strings.Contains(category, keyword) {
			return true
		}
	}
	return false
}

func isKnownSection(section string) bool {
	switch section {
	case constants.CatalogSectionElectronics,
		constants.CatalogSectionFashion,
		constants.CatalogSectionSports,
		constants.CatalogSectionFeatured:
		return true
	}
	return false
}

func sortProducts(products []models.Product, sortBy string) {
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case constants.CatalogSortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].FinalPrice.LessThan(products[j].FinalPrice.Decimal)
		})
	case constants.CatalogSortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].FinalPrice.LessThan(products[i].FinalPrice.Decimal)
		})
	case constants.CatalogSortDiscountDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DiscountPercent > products[j].DiscountPercent
		})
	}
}
