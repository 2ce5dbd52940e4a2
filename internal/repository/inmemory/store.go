package inmemory

import (
	"context"
	"sync"
)

// Store keeps entities in insertion order and assigns sequential IDs through
// setID, mimicking an auto-increment primary key.
type Store[T any] struct {
	mu     sync.RWMutex
	items  []*T
	nextID uint
	writes int
	setID  func(*T, uint)
}

func NewStore[T any](setID func(*T, uint)) *Store[T] {
	return &Store[T]{nextID: 1, setID: setID}
}

func (s *Store[T]) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.items)), nil
}

func (s *Store[T]) Save(ctx context.Context, entity *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insert(entity)
	s.writes++
	return nil
}

func (s *Store[T]) SaveAll(ctx context.Context, entities []*T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entity := range entities {
		s.insert(entity)
	}
	s.writes++
	return nil
}

// All returns the stored entities in insertion order.
func (s *Store[T]) All() []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*T, len(s.items))
	copy(result, s.items)
	return result
}

// Writes reports how many Save/SaveAll calls succeeded.
func (s *Store[T]) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

func (s *Store[T]) insert(entity *T) {
	if s.setID != nil {
		s.setID(entity, s.nextID)
	}
	s.nextID++
	s.items = append(s.items, entity)
}
