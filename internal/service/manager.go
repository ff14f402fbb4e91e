// Package service manages the set of games hosted by the server.
package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/mpolden/notate/internal/chess"
	apperrors "github.com/mpolden/notate/internal/errors"
	"github.com/mpolden/notate/internal/game"
)

// Manager holds all live games keyed by ID. Each game is single-threaded
// by design, so the manager serializes every move on a game under its lock.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*game.Game
}

// NewManager creates an empty game manager.
func NewManager() *Manager {
	return &Manager{games: make(map[string]*game.Game)}
}

// Create starts a new game and returns its ID. An empty fen starts from
// the standard position.
func (m *Manager) Create(fen string) (string, error) {
	g := game.New()
	if fen != "" {
		var err error
		g, err = game.NewFromFEN(fen)
		if err != nil {
			return "", err
		}
	}

	id := uuid.New().String()
	m.mu.Lock()
	m.games[id] = g
	m.mu.Unlock()
	return id, nil
}

// Move plays a token on the identified game.
func (m *Manager) Move(id, token string) (chess.Move, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.games[id]
	if !ok {
		return chess.Move{}, apperrors.ErrGameNotFound
	}
	return g.Play(token)
}

// State returns a snapshot of the identified game's board.
func (m *Manager) State(id string) (*chess.Board, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, ok := m.games[id]
	if !ok {
		return nil, apperrors.ErrGameNotFound
	}
	return g.Board().Copy(), nil
}

// Remove deletes the identified game.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	delete(m.games, id)
	m.mu.Unlock()
}

// Len returns the number of live games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
