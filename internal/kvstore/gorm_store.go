package kvstore

import (
	"errors"

	"github.com/brewnext/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore 数据库实现：文档落在 kv_entries 表
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 创建数据库键值存储
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get 读取文档
func (s *GormStore) Get(key string) ([]byte, bool, error) {
	var entry models.KVEntry
	err := s.db.Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return entry.Value, true, nil
}

// Set 写入文档（存在则覆盖）
func (s *GormStore) Set(key string, value []byte) error {
	entry := models.KVEntry{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Delete 删除文档（不存在时静默成功）
func (s *GormStore) Delete(key string) error {
	return s.db.Where("key = ?", key).Delete(&models.KVEntry{}).Error
}
