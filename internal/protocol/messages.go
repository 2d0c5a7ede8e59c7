package protocol

// Message types: Server → Client
const (
	MsgLobbyUpdate = "lobby_update"
	MsgGameState   = "game_state"   // public view for the board screen
	MsgPlayerState = "player_state" // per-player view
	MsgEvent       = "event"
	MsgError       = "error"
)

// Message types: Client → Server
const (
	MsgJoin      = "join"
	MsgReady     = "ready"
	MsgStartGame = "start_game"
	// In-game actions use the same names as engine ActionType
	MsgSubmitAnswer = "submit_answer"
	MsgPlaceBet     = "place_bet"
	MsgCloseAnswers = "close_answers"
	MsgReveal       = "reveal"
	MsgNextRound    = "next_round"
)

// LobbyUpdate is sent to all clients when lobby state changes.
type LobbyUpdate struct {
	GameID  string        `json:"game_id"`
	Players []LobbyPlayer `json:"players"`
	Started bool          `json:"started"`
}

type LobbyPlayer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Ready  bool   `json:"ready"`
	IsHost bool   `json:"is_host"`
}

// JoinMsg is sent by a player to join the game.
type JoinMsg struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// ReadyMsg is sent by a player to toggle ready state.
type ReadyMsg struct {
	Ready bool `json:"ready"`
}

// ActionMsg carries the parameters of an in-game action.
type ActionMsg struct {
	Value float64 `json:"value,omitempty"` // submit_answer
	Slot  int     `json:"slot,omitempty"`  // place_bet
}

// ErrorMsg is sent to a client on error.
type ErrorMsg struct {
	Message string `json:"message"`
}
