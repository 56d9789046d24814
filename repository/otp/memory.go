package otp

import (
	"context"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type entry struct {
	hash      []byte
	expiresAt time.Time
}

// MemoryStore keeps OTP entries in a mutex-guarded map. Entries do not
// survive a process restart; affected users must request a new code.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]entry)}
}

func (m *MemoryStore) Save(ctx context.Context, number, code string, ttl time.Duration) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[number] = entry{hash: hash, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (m *MemoryStore) Consume(ctx context.Context, code string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for number, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, number)
			continue
		}
		if bcrypt.CompareHashAndPassword(e.hash, []byte(code)) == nil {
			delete(m.entries, number)
			return number, nil
		}
	}
	return "", ErrCodeNotFound
}
