package foodlog

import (
	"context"
	"sync"
	"time"

	"recipe-dashboard/domain"
)

type (
	// FoodLogRepository owns one FoodLog per session. Logs live in memory
	// only and are gone after a restart.
	FoodLogRepository interface {
		CreateSession(ctx context.Context, sessionID string) error
		DeleteSession(ctx context.Context, sessionID string) error
		AppendEntry(ctx context.Context, sessionID, recipeName string) error
		ClearEntries(ctx context.Context, sessionID string) error
		GetEntries(ctx context.Context, sessionID string) ([]string, error)
		PurgeIdle(ctx context.Context, idleSince time.Time) int
	}

	sessionLog struct {
		log      *domain.FoodLog
		lastSeen time.Time
	}

	memoryFoodLogRepository struct {
		mu       sync.RWMutex
		sessions map[string]*sessionLog
		now      func() time.Time
	}
)

func NewMemoryFoodLogRepository() FoodLogRepository {
	return &memoryFoodLogRepository{
		sessions: make(map[string]*sessionLog),
		now:      time.Now,
	}
}

// CreateSession starts an empty log. Creating an existing session resets it.
func (r *memoryFoodLogRepository) CreateSession(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sessionID] = &sessionLog{log: domain.NewFoodLog(), lastSeen: r.now()}
	return nil
}

func (r *memoryFoodLogRepository) DeleteSession(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, sessionID)
	return nil
}

func (r *memoryFoodLogRepository) AppendEntry(ctx context.Context, sessionID, recipeName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return domain.ErrSessionNotFound
	}
	s.log.Append(recipeName)
	s.lastSeen = r.now()
	return nil
}

func (r *memoryFoodLogRepository) ClearEntries(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return domain.ErrSessionNotFound
	}
	s.log.Clear()
	s.lastSeen = r.now()
	return nil
}

func (r *memoryFoodLogRepository) GetEntries(ctx context.Context, sessionID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s.log.Entries(), nil
}

// PurgeIdle drops sessions not mutated since idleSince and reports how many.
func (r *memoryFoodLogRepository) PurgeIdle(ctx context.Context, idleSince time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	purged := 0
	for id, s := range r.sessions {
		if s.lastSeen.Before(idleSince) {
			delete(r.sessions, id)
			purged++
		}
	}
	return purged
}
