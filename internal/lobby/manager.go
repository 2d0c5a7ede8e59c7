package lobby

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// Manager manages multiple lobbies.
type Manager struct {
	mu         sync.Mutex
	lobbies    map[string]*Lobby
	minPlayers int
	maxPlayers int
}

func NewManager(minPlayers, maxPlayers int) *Manager {
	return &Manager{
		lobbies:    make(map[string]*Lobby),
		minPlayers: minPlayers,
		maxPlayers: maxPlayers,
	}
}

// Create creates a new lobby and returns its ID. Game IDs stay short
// so they fit in a join URL a phone can type.
func (m *Manager) Create() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := generateID()
	m.lobbies[id] = NewLobby(id, m.minPlayers, m.maxPlayers)
	return id
}

// Get returns a lobby by ID.
func (m *Manager) Get(id string) *Lobby {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lobbies[id]
}

func generateID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
