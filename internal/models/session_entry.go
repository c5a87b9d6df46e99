package models

import "time"

// SessionEntry 会话键值表：每行一个 (session_id, key) 下的 JSON 值
type SessionEntry struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	SessionID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_session_entry_sid_key" json:"session_id"`
	Key       string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_session_entry_sid_key" json:"key"`
	Value     []byte    `gorm:"type:blob" json:"value"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`
}

// TableName 指定表名
func (SessionEntry) TableName() string {
	return "session_entries"
}
