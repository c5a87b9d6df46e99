package service

import (
	"context"
	"errors"
	"strings"

	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/backend"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/models"
)

// OrderService 订单历史服务（外部订单服务的透传代理）
type OrderService struct {
	client *backend.Client
}

// NewOrderService 创建订单历史服务
func NewOrderService(client *backend.Client) *OrderService {
	return &OrderService{client: client}
}

// ListMyOrders 拉取当前用户的历史订单
func (s *OrderService) ListMyOrders(ctx context.Context, token string) ([]models.Order, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrLoginRequired
	}
	orders, err := s.client.FetchMyOrders(ctx, token)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			return nil, ErrLoginRequired
		}
		return nil, ErrBackendUnavailable
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}
