package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/cardscan/internal/client/models"
)

// MemoryStore keeps the session in process memory only.
type MemoryStore struct {
	mu  sync.RWMutex
	cur *models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) IsAuthenticated(ctx context.Context) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cur.Valid()
}

func (m *MemoryStore) CurrentUser(ctx context.Context) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.cur == nil {
		return nil, nil
	}
	s := *m.cur
	return &s, nil
}

func (m *MemoryStore) Save(ctx context.Context, s models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cur = &s
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cur = nil
	return nil
}
