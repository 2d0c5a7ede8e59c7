package lobby

import (
	"fmt"
	"sync"
)

// PlayerInfo holds lobby-level player information.
type PlayerInfo struct {
	ID     string
	Name   string
	Ready  bool
	IsHost bool
}

// Lobby represents a game room waiting for players. The first player
// to join becomes the host and controls the pace of the game.
type Lobby struct {
	mu         sync.Mutex
	ID         string
	Players    []*PlayerInfo
	MaxPlayers int
	MinPlayers int
	Started    bool
}

// NewLobby creates a new lobby.
func NewLobby(id string, minPlayers, maxPlayers int) *Lobby {
	return &Lobby{
		ID:         id,
		MinPlayers: minPlayers,
		MaxPlayers: maxPlayers,
	}
}

// Join adds a player to the lobby. Rejoining with a known ID updates
// the name instead, so reconnecting phones keep their seat.
func (l *Lobby) Join(id, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Started {
		return fmt.Errorf("game already started")
	}
	if len(l.Players) >= l.MaxPlayers {
		return fmt.Errorf("lobby is full")
	}
	for _, p := range l.Players {
		if p.ID == id {
			p.Name = name
			return nil
		}
	}
	l.Players = append(l.Players, &PlayerInfo{
		ID:     id,
		Name:   name,
		IsHost: len(l.Players) == 0,
	})
	return nil
}

// Leave removes a player. If the host leaves before the game starts,
// hosting passes to the next seat.
func (l *Lobby) Leave(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, p := range l.Players {
		if p.ID != id {
			continue
		}
		wasHost := p.IsHost
		l.Players = append(l.Players[:i], l.Players[i+1:]...)
		if wasHost && len(l.Players) > 0 {
			l.Players[0].IsHost = true
		}
		return
	}
}

// SetReady toggles a player's ready state.
func (l *Lobby) SetReady(id string, ready bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.Players {
		if p.ID == id {
			p.Ready = ready
			return
		}
	}
}

// HostID returns the current host's player ID, or "".
func (l *Lobby) HostID() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.Players {
		if p.IsHost {
			return p.ID
		}
	}
	return ""
}

// CanStart returns true if enough players are ready.
func (l *Lobby) CanStart() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.Players) < l.MinPlayers {
		return false
	}
	for _, p := range l.Players {
		if !p.Ready {
			return false
		}
	}
	return true
}

// Start marks the lobby as started.
func (l *Lobby) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Started {
		return fmt.Errorf("already started")
	}
	if len(l.Players) < l.MinPlayers {
		return fmt.Errorf("not enough players")
	}
	l.Started = true
	return nil
}

// GetPlayers returns a copy of the player list in seating order.
func (l *Lobby) GetPlayers() []PlayerInfo {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]PlayerInfo, len(l.Players))
	for i, p := range l.Players {
		out[i] = *p
	}
	return out
}
