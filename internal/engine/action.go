package engine

// ActionType identifies player actions sent to Game.Apply.
type ActionType string

const (
	ActionSubmitAnswer ActionType = "submit_answer"
	ActionPlaceBet     ActionType = "place_bet"
	ActionCloseAnswers ActionType = "close_answers" // host: answering -> betting
	ActionReveal       ActionType = "reveal"        // host: betting -> results
	ActionNextRound    ActionType = "next_round"    // host: results -> answering or game over
)

// Action is a player's action input.
type Action struct {
	Type ActionType `json:"type"`
	// Params depend on Type:
	// submit_answer: Value
	// place_bet: Slot
	Value float64 `json:"value,omitempty"`
	Slot  int     `json:"slot,omitempty"`
}

// EventType identifies events emitted by the engine.
type EventType string

const (
	EventRoundStart      EventType = "round_start"
	EventAnswerSubmitted EventType = "answer_submitted"
	EventBettingOpen     EventType = "betting_open"
	EventBetPlaced       EventType = "bet_placed"
	EventRoundResult     EventType = "round_result"
	EventGameOver        EventType = "game_over"
	EventPhaseChange     EventType = "phase_change"
)

// Event is emitted by the engine after state changes.
type Event struct {
	Type   EventType   `json:"type"`
	Player string      `json:"player,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}
