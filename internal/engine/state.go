package engine

import "math"

// MaxChips is the number of bet chips each player holds per round.
const MaxChips = 2

// Player holds one player's persistent state.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func NewPlayer(id, name string) Player {
	return Player{ID: id, Name: name}
}

// PlayerAnswer is one player's numeric guess for the current question.
type PlayerAnswer struct {
	PlayerID string  `json:"player_id"`
	Answer   float64 `json:"answer"`
}

// PlayerBet records the board slots a player's chips sit on.
// Two chips on the same slot appear as a duplicate index.
type PlayerBet struct {
	PlayerID string `json:"player_id"`
	Slots    []int  `json:"slots"`
}

// GameState is an immutable snapshot of everything the scoring engine
// consumes: players, the round's answers and bets, the 0-based round
// index and the per-player score history. Engine operations never
// mutate a snapshot; they return a fresh one.
type GameState struct {
	Players      []Player         `json:"players"`
	Answers      []PlayerAnswer   `json:"answers"`
	Bets         []PlayerBet      `json:"bets"`
	Round        int              `json:"round"`
	ScoreHistory map[string][]int `json:"score_history"`
}

// NewGameState builds the initial snapshot for the given players.
func NewGameState(players []Player) GameState {
	s := GameState{
		Players:      make([]Player, len(players)),
		ScoreHistory: make(map[string][]int, len(players)),
	}
	copy(s.Players, players)
	return s
}

func (s GameState) clone() GameState {
	next := GameState{
		Players:      make([]Player, len(s.Players)),
		Answers:      make([]PlayerAnswer, len(s.Answers)),
		Bets:         make([]PlayerBet, len(s.Bets)),
		Round:        s.Round,
		ScoreHistory: make(map[string][]int, len(s.ScoreHistory)),
	}
	copy(next.Players, s.Players)
	copy(next.Answers, s.Answers)
	for i, b := range s.Bets {
		next.Bets[i] = PlayerBet{PlayerID: b.PlayerID, Slots: append([]int(nil), b.Slots...)}
	}
	for id, hist := range s.ScoreHistory {
		next.ScoreHistory[id] = append([]int(nil), hist...)
	}
	return next
}

// GetPlayer finds a player by ID, or nil.
func (s GameState) GetPlayer(id string) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// AnswerOf returns the player's submitted answer for this round.
func (s GameState) AnswerOf(playerID string) (float64, bool) {
	for _, a := range s.Answers {
		if a.PlayerID == playerID {
			return a.Answer, true
		}
	}
	return 0, false
}

// ChipsPlaced counts the chips the player has already committed.
func (s GameState) ChipsPlaced(playerID string) int {
	for _, b := range s.Bets {
		if b.PlayerID == playerID {
			return len(b.Slots)
		}
	}
	return 0
}

// WithAnswer records a guess and returns the new snapshot. A repeat
// submission replaces the player's earlier guess. Negative or
// non-finite values are rejected before they enter the answer set.
func (s GameState) WithAnswer(playerID string, value float64) (GameState, error) {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return s, ErrInvalidAnswer
	}
	if s.GetPlayer(playerID) == nil {
		return s, ErrPlayerNotFound
	}
	next := s.clone()
	for i := range next.Answers {
		if next.Answers[i].PlayerID == playerID {
			next.Answers[i].Answer = value
			return next, nil
		}
	}
	next.Answers = append(next.Answers, PlayerAnswer{PlayerID: playerID, Answer: value})
	return next, nil
}

// WithBet commits one chip to a board slot and returns the new
// snapshot. Betting on a slot outside the board, or on a non-special
// slot that holds no answer groups, is rejected. A chip beyond the
// per-player limit is silently ignored: the snapshot comes back
// unchanged with no error.
func (s GameState) WithBet(playerID string, slot int, board []BettingSlot) (GameState, error) {
	if s.GetPlayer(playerID) == nil {
		return s, ErrPlayerNotFound
	}
	if slot < 0 || slot >= NumSlots || slot >= len(board) {
		return s, ErrInvalidSlot
	}
	if slot != SpecialSlot && len(board[slot].AnswerGroups) == 0 {
		return s, ErrEmptySlot
	}
	if s.ChipsPlaced(playerID) >= MaxChips {
		return s, nil
	}
	next := s.clone()
	for i := range next.Bets {
		if next.Bets[i].PlayerID == playerID {
			next.Bets[i].Slots = append(next.Bets[i].Slots, slot)
			return next, nil
		}
	}
	next.Bets = append(next.Bets, PlayerBet{PlayerID: playerID, Slots: []int{slot}})
	return next, nil
}

// NextRound clears the round's answers and bets and advances the
// round index. Scores and history carry over untouched.
func (s GameState) NextRound() GameState {
	next := s.clone()
	next.Answers = nil
	next.Bets = nil
	next.Round++
	return next
}
