package store

// MemoryStore 内存键值存储，进程退出后数据丢失
type MemoryStore struct {
	data map[string][]byte
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryStore) Set(key string, data []byte) error {
	m.data[key] = append([]byte(nil), data...)
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	delete(m.data, key)
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
