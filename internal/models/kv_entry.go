package models

import "time"

// KVEntry 键值存储表：购物车、订单、评论等文档以 JSON 形式落在这里
type KVEntry struct {
	ID        uint      `gorm:"primarykey" json:"id"`                 // 主键
	Key       string    `gorm:"uniqueIndex;not null;size:191" json:"key"` // 文档键（含命名空间前缀）
	Value     []byte    `gorm:"not null" json:"-"`                    // JSON 文档内容
	CreatedAt time.Time `json:"created_at"`                           // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`              // 更新时间
}

// TableName 指定表名
func (KVEntry) TableName() string {
	return "kv_entries"
}
