package kvstore

// NoopStore 空实现：读取永远未命中，写入与删除静默成功。
// 用于无持久化上下文（脚本、一次性任务）。
type NoopStore struct{}

// NewNoopStore 创建空键值存储
func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

// Get 永远未命中
func (s *NoopStore) Get(string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set 静默成功
func (s *NoopStore) Set(string, []byte) error {
	return nil
}

// Delete 静默成功
func (s *NoopStore) Delete(string) error {
	return nil
}
