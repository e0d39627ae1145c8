package storage

// Memory is an Adapter backed by a plain map. It is the default for
// tests and for runs that do not want durable state.
type Memory struct {
	docs map[string][]byte
}

// NewMemory creates an empty in-memory adapter.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

// Load returns the document stored under key.
func (m *Memory) Load(key string) ([]byte, bool, error) {
	data, ok := m.docs[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true, nil
}

// Save stores a copy of data under key.
func (m *Memory) Save(key string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	m.docs[key] = cp
	return nil
}
