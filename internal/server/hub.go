package server

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"witswagers/internal/engine"
	"witswagers/internal/lobby"
	"witswagers/internal/protocol"
)

// Hub manages WebSocket connections and game state for one game room.
type Hub struct {
	mu         sync.Mutex
	gameID     string
	lobby      *lobby.Lobby
	config     engine.GameConfig
	game       *engine.Game
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	quit       chan struct{}
}

func NewHub(gameID string, lob *lobby.Lobby, config engine.GameConfig) *Hub {
	return &Hub{
		gameID:     gameID,
		lobby:      lob,
		config:     config,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.sendLobbyUpdate()
			if h.game != nil {
				h.sendStateToClient(client)
			}

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case msg := <-h.incoming:
			h.handleMessage(msg)

		case <-h.quit:
			return
		}
	}
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	switch msg.Envelope.Type {
	case protocol.MsgJoin:
		h.handleJoin(msg)
	case protocol.MsgReady:
		h.handleReady(msg)
	case protocol.MsgStartGame:
		h.handleStartGame(msg)
	default:
		h.handleGameAction(msg)
	}
}

func (h *Hub) handleJoin(msg IncomingMessage) {
	var join protocol.JoinMsg
	if err := json.Unmarshal(msg.Envelope.Payload, &join); err != nil {
		h.sendError(msg.Client, "invalid join message")
		return
	}
	msg.Client.PlayerID = join.PlayerID
	if err := h.lobby.Join(join.PlayerID, join.Name); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	h.sendLobbyUpdate()
}

func (h *Hub) handleReady(msg IncomingMessage) {
	var ready protocol.ReadyMsg
	if err := json.Unmarshal(msg.Envelope.Payload, &ready); err != nil {
		h.sendError(msg.Client, "invalid ready message")
		return
	}
	h.lobby.SetReady(msg.Client.PlayerID, ready.Ready)
	h.sendLobbyUpdate()
}

func (h *Hub) handleStartGame(msg IncomingMessage) {
	if msg.Client.PlayerID != h.lobby.HostID() {
		h.sendError(msg.Client, "only the host can start the game")
		return
	}
	if !h.lobby.CanStart() {
		h.sendError(msg.Client, "not all players ready")
		return
	}
	if err := h.lobby.Start(); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}

	lobbyPlayers := h.lobby.GetPlayers()
	players := make([]engine.Player, len(lobbyPlayers))
	for i, lp := range lobbyPlayers {
		players[i] = engine.NewPlayer(lp.ID, lp.Name)
	}

	h.game = engine.NewGame(players, h.config)
	events, err := h.game.StartGame()
	if err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	h.broadcastEvents(events)
	h.broadcastState()
}

func (h *Hub) handleGameAction(msg IncomingMessage) {
	if h.game == nil {
		h.sendError(msg.Client, "game not started")
		return
	}

	action, err := h.parseAction(msg.Envelope)
	if err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}

	events, err := h.game.Apply(msg.Client.PlayerID, action)
	if err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}

	h.broadcastEvents(events)
	h.broadcastState()
}

func (h *Hub) parseAction(env protocol.Envelope) (engine.Action, error) {
	action := engine.Action{Type: engine.ActionType(env.Type)}
	if len(env.Payload) == 0 {
		return action, nil
	}
	var params protocol.ActionMsg
	if err := json.Unmarshal(env.Payload, &params); err != nil {
		return engine.Action{}, fmt.Errorf("invalid payload")
	}
	action.Value = params.Value
	action.Slot = params.Slot
	return action, nil
}

func (h *Hub) broadcastEvents(events []engine.Event) {
	for _, ev := range events {
		env := protocol.MustEnvelope(protocol.MsgEvent, ev)
		h.broadcastAll(env)
	}
}

func (h *Hub) broadcastState() {
	if h.game == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		h.sendStateToClient(client)
	}
}

func (h *Hub) sendStateToClient(client *Client) {
	if h.game == nil {
		return
	}
	if client.Type == ClientBoard {
		pv := h.game.PublicView()
		client.SendEnvelope(protocol.MustEnvelope(protocol.MsgGameState, pv))
	} else {
		view := h.game.ViewFor(client.PlayerID)
		client.SendEnvelope(protocol.MustEnvelope(protocol.MsgPlayerState, view))
	}
}

func (h *Hub) sendLobbyUpdate() {
	players := h.lobby.GetPlayers()
	lps := make([]protocol.LobbyPlayer, len(players))
	for i, p := range players {
		lps[i] = protocol.LobbyPlayer{ID: p.ID, Name: p.Name, Ready: p.Ready, IsHost: p.IsHost}
	}
	env := protocol.MustEnvelope(protocol.MsgLobbyUpdate, protocol.LobbyUpdate{
		GameID:  h.gameID,
		Players: lps,
		Started: h.lobby.Started,
	})
	h.broadcastAll(env)
}

func (h *Hub) broadcastAll(env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("broadcast marshal error: %v", err)
		return
	}
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			log.Printf("client %s buffer full", client.PlayerID)
		}
	}
}

func (h *Hub) sendError(client *Client, message string) {
	env := protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: message})
	client.SendEnvelope(env)
}
