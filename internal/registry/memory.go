package registry

import "sync"

// MemoryStore is an in-memory Store used by tests and non-Windows builds.
type MemoryStore struct {
	strings map[string]string
	dwords  map[string]uint32
	mu      sync.Mutex
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		strings: make(map[string]string),
		dwords:  make(map[string]uint32),
	}
}

var _ Store = (*MemoryStore)(nil)

func (m *MemoryStore) GetString(path, name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.strings[path+`\`+name]
	if !ok {
		return "", ErrNotExist
	}
	return val, nil
}

func (m *MemoryStore) SetString(path, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.strings[path+`\`+name] = value
	return nil
}

func (m *MemoryStore) GetDWord(path, name string) (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.dwords[path+`\`+name]
	if !ok {
		return 0, ErrNotExist
	}
	return val, nil
}

func (m *MemoryStore) SetDWord(path, name string, value uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dwords[path+`\`+name] = value
	return nil
}
