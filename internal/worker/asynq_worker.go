package worker

import (
	"context"
	"encoding/json"

	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/logger"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/provider"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskCheckoutHandoff, c.handleCheckoutHandoff)
}

// handleCheckoutHandoff 把结算快照投递给外部结算接口
// 返回错误让 asynq 按退避策略重试；载荷损坏时直接丢弃。
func (c *Consumer) handleCheckoutHandoff(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_checkout_handoff_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.CheckoutHandoffPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_checkout_handoff_unmarshal_failed", "error", err)
		return err
	}
	if payload.Checkout.ID == "" {
		logger.Debugw("worker_checkout_handoff_skip_invalid_payload")
		return nil
	}
	if c.Backend == nil {
		logger.Warnw("worker_checkout_handoff_skip_backend_nil", "checkout_id", payload.Checkout.ID)
		return nil
	}

	if err := c.Backend.DeliverCheckout(ctx, payload.Checkout); err != nil {
		logger.Warnw("worker_checkout_handoff_deliver_failed",
			"checkout_id", payload.Checkout.ID,
			"error", err,
		)
		return err
	}
	logger.Infow("worker_checkout_handoff_delivered",
		"checkout_id", payload.Checkout.ID,
		"total", payload.Checkout.Total.String(),
	)
	return nil
}
