package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/models"

	"gorm.io/gorm"
)

// GormStore 数据库会话存储（session_entries 键值表）
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 创建数据库会话存储
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get 读取会话键；键不存在返回 found=false
func (g *GormStore) Get(ctx context.Context, sessionID, key string, dest interface{}) (bool, error) {
	var entry models.SessionEntry
	err := g.db.WithContext(ctx).
		Where("session_id = ? AND key = ?", sessionID, key).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(entry.Value, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set 写入会话键（存在则更新）
func (g *GormStore) Set(ctx context.Context, sessionID, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	now := time.Now()

	var existing models.SessionEntry
	err = g.db.WithContext(ctx).
		Where("session_id = ? AND key = ?", sessionID, key).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry := models.SessionEntry{
			SessionID: sessionID,
			Key:       key,
			Value:     payload,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return g.db.WithContext(ctx).Create(&entry).Error
	}
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"value":      payload,
		"updated_at": now,
	}
	return g.db.WithContext(ctx).Model(&existing).Updates(updates).Error
}

// Remove 删除会话键
func (g *GormStore) Remove(ctx context.Context, sessionID, key string) error {
	return g.db.WithContext(ctx).
		Where("session_id = ? AND key = ?", sessionID, key).
		Delete(&models.SessionEntry{}).Error
}

// Clear 清空会话下全部键
func (g *GormStore) Clear(ctx context.Context, sessionID string) error {
	return g.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&models.SessionEntry{}).Error
}
