package sessionstore

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore 进程内会话存储，测试与单机兜底用
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string][]byte
}

// NewMemoryStore 创建内存会话存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]map[string][]byte)}
}

// Get 读取会话键
func (m *MemoryStore) Get(ctx context.Context, sessionID, key string, dest interface{}) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries, ok := m.sessions[sessionID]
	if !ok {
		return false, nil
	}
	payload, ok := entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set 写入会话键
func (m *MemoryStore) Set(ctx context.Context, sessionID, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	entries, ok := m.sessions[sessionID]
	if !ok {
		entries = make(map[string][]byte)
		m.sessions[sessionID] = entries
	}
	entries[key] = payload
	return nil
}

// Remove 删除会话键
func (m *MemoryStore) Remove(ctx context.Context, sessionID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if entries, ok := m.sessions[sessionID]; ok {
		delete(entries, key)
	}
	return nil
}

// Clear 清空会话
func (m *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}
