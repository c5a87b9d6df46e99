package sessionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore Redis 会话存储
type RedisStore struct {
	client  *redis.Client
	prefix  string
	idleTTL time.Duration
}

// NewRedisStore 创建 Redis 会话存储；idleTTL <= 0 表示键不过期
func NewRedisStore(client *redis.Client, prefix string, idleTTL time.Duration) *RedisStore {
	trimmed := strings.TrimSpace(prefix)
	if trimmed == "" {
		trimmed = "sf"
	}
	return &RedisStore{client: client, prefix: trimmed, idleTTL: idleTTL}
}

// Get 读取会话键；键不存在返回 found=false
func (r *RedisStore) Get(ctx context.Context, sessionID, key string, dest interface{}) (bool, error) {
	if r == nil || r.client == nil {
		return false, nil
	}
	val, err := r.client.Get(ctx, r.buildKey(sessionID, key)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set 写入会话键
func (r *RedisStore) Set(ctx context.Context, sessionID, key string, value interface{}) error {
	if r == nil || r.client == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	ttl := time.Duration(0)
	if r.idleTTL > 0 {
		ttl = r.idleTTL
	}
	return r.client.Set(ctx, r.buildKey(sessionID, key), payload, ttl).Err()
}

// Remove 删除会话键
func (r *RedisStore) Remove(ctx context.Context, sessionID, key string) error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Del(ctx, r.buildKey(sessionID, key)).Err()
}

// Clear 清空会话下全部键
func (r *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if r == nil || r.client == nil {
		return nil
	}
	pattern := fmt.Sprintf("%s:session:%s:*", r.prefix, sessionID)
	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (r *RedisStore) buildKey(sessionID, key string) string {
	return fmt.Sprintf("%s:session:%s:%s", r.prefix, sessionID, key)
}
