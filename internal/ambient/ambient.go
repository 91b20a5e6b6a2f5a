// Package ambient holds the origin-wide string slots shared by every visitor:
// the personal theme preference, the blend color list, and the broadcast
// record. It is a separate surface from the partition record store.
package ambient

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// Well-known slot names.
const (
	SlotTheme       = "blair_theme"
	SlotBlendColors = "blair_blend"
	SlotGlobalEvent = "blair_global_event"
)

// Store is a named-slot accessor over plain serialized text. Injected rather
// than reached for globally so tests can swap in the memory implementation.
type Store interface {
	Get(ctx context.Context, slot string) (value string, ok bool, err error)
	Set(ctx context.Context, slot, value string) error
	Clear(ctx context.Context, slot string) error
}

// SQLStore keeps slots in the ambient_slots table of the studio database.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(ctx context.Context, slot string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM ambient_slots WHERE slot = ?
	`, slot).Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get slot %s: %w", slot, err)
	}

	return value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, slot, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ambient_slots (slot, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, slot, value)
	if err != nil {
		return fmt.Errorf("failed to set slot %s: %w", slot, err)
	}

	return nil
}

func (s *SQLStore) Clear(ctx context.Context, slot string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM ambient_slots WHERE slot = ?
	`, slot)
	if err != nil {
		return fmt.Errorf("failed to clear slot %s: %w", slot, err)
	}

	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu    sync.RWMutex
	slots map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{slots: make(map[string]string)}
}

func (s *MemStore) Get(_ context.Context, slot string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.slots[slot]
	return value, ok, nil
}

func (s *MemStore) Set(_ context.Context, slot, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot] = value
	return nil
}

func (s *MemStore) Clear(_ context.Context, slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, slot)
	return nil
}
