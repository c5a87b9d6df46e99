package events

import (
	"sync"

	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/logger"
)

// Handler 事件回调；事件不携带载荷，订阅方自行回读存储
type Handler func(topic string)

// Bus 进程内同步广播总线（fire-and-forget）
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]Handler
}

// NewBus 创建事件总线
func NewBus() *Bus {
	return &Bus{subscribers: make(map[string][]Handler)}
}

// Subscribe 订阅主题
func (b *Bus) Subscribe(topic string, handler Handler) {
	if b == nil || handler == nil || topic == "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[topic] = append(b.subscribers[topic], handler)
}

// Publish 同步广播主题；订阅方按注册顺序依次执行
func (b *Bus) Publish(topic string) {
	if b == nil || topic == "" {
		return
	}
	b.mu.RLock()
	handlers := make([]Handler, len(b.subscribers[topic]))
	copy(handlers, b.subscribers[topic])
	b.mu.RUnlock()

	logger.Debugw("event_publish", "topic", topic, "subscribers", len(handlers))
	for _, handler := range handlers {
		handler(topic)
	}
}
