package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem-server/pkg/holdem"
)

// MemoryStore keeps game snapshots in memory
// Games are stored encoded so callers never share state with the store.
type MemoryStore struct {
	logger logrus.FieldLogger
	mu     sync.RWMutex
	games  map[uuid.UUID][]byte
}

// NewMemoryStore returns an empty MemoryStore
func NewMemoryStore(logger logrus.FieldLogger) *MemoryStore {
	return &MemoryStore{
		logger: logger,
		games:  make(map[uuid.UUID][]byte),
	}
}

// Create stores a new game
func (m *MemoryStore) Create(_ context.Context, game *holdem.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.games[game.ID()]; ok {
		return ErrGameExists
	}

	m.games[game.ID()] = data
	return nil
}

// Load returns a copy of the stored game
func (m *MemoryStore) Load(_ context.Context, id uuid.UUID) (*holdem.Game, error) {
	m.mu.RLock()
	data, ok := m.games[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrGameNotFound
	}

	return holdem.UnmarshalGame(m.logger, data)
}

// Save replaces a stored game
func (m *MemoryStore) Save(_ context.Context, game *holdem.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.games[game.ID()]; !ok {
		return ErrGameNotFound
	}

	m.games[game.ID()] = data
	return nil
}
