package kvstore

import (
	"encoding/json"

	"github.com/brewnext/internal/logger"
)

// Store 键值文档存储能力：购物车、订单、评论等状态的持久化出口。
// Get 未命中时返回 found=false 且 err=nil；err 仅表示底层存储故障。
type Store interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Scoped 返回带命名空间前缀的存储视图，键写为 "<namespace>/<key>"
func Scoped(store Store, namespace string) Store {
	return &scopedStore{inner: store, prefix: namespace + "/"}
}

type scopedStore struct {
	inner  Store
	prefix string
}

func (s *scopedStore) Get(key string) ([]byte, bool, error) {
	return s.inner.Get(s.prefix + key)
}

func (s *scopedStore) Set(key string, value []byte) error {
	return s.inner.Set(s.prefix+key, value)
}

func (s *scopedStore) Delete(key string) error {
	return s.inner.Delete(s.prefix + key)
}

// LoadJSON 读取并解析 JSON 文档。未命中、存储故障、JSON 损坏或校验不通过时
// 返回 ok=false，调用方回退到自己的兜底值；存储故障与损坏文档只记日志，不上抛。
func LoadJSON[T any](store Store, key string, validate func(*T) bool) (T, bool) {
	var value T
	raw, found, err := store.Get(key)
	if err != nil {
		logger.Warnw("kvstore_read_failed", "key", key, "error", err)
		return value, false
	}
	if !found {
		return value, false
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		logger.Warnw("kvstore_document_malformed", "key", key, "error", err)
		return value, false
	}
	if validate != nil && !validate(&value) {
		logger.Warnw("kvstore_document_invalid", "key", key)
		return value, false
	}
	return value, true
}

// SaveJSON 序列化并写入 JSON 文档
func SaveJSON[T any](store Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return store.Set(key, raw)
}
