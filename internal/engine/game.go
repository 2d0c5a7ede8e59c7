package engine

import "errors"

var (
	ErrInvalidAction  = errors.New("invalid action")
	ErrWrongPhase     = errors.New("wrong phase for this action")
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidAnswer  = errors.New("answer must be a finite non-negative number")
	ErrInvalidSlot    = errors.New("slot index outside the board")
	ErrEmptySlot      = errors.New("cannot bet on empty slot")
	ErrNoAnswers      = errors.New("round has no answers")
	ErrNotHost        = errors.New("only the host can do that")
	ErrNoQuestions    = errors.New("question deck is empty")
)

// Game sequences a whole session: it owns the current state snapshot,
// the phase, the question deck and the round's board. Board building
// and scoring themselves stay in the pure functions; Game only decides
// when they run.
type Game struct {
	State  GameState  `json:"state"`
	Config GameConfig `json:"-"`
	Deck   *Deck      `json:"-"`
	HostID string     `json:"host_id"`

	Phase    GamePhase      `json:"phase"`
	Question *Question      `json:"-"`
	Board    []BettingSlot  `json:"board,omitempty"`
	Results  *ScoringResult `json:"results,omitempty"`
}

// NewGame creates a new game with the given players. The first player
// is the host and drives phase transitions.
func NewGame(players []Player, config GameConfig) *Game {
	g := &Game{
		State:  NewGameState(players),
		Config: config,
		Deck:   NewDeck(config.Questions, config.Labels),
		Phase:  PhaseSetup,
	}
	if len(players) > 0 {
		g.HostID = players[0].ID
	}
	return g
}

// StartGame draws the first question and opens round 0 for answers.
func (g *Game) StartGame() ([]Event, error) {
	if g.Phase != PhaseSetup {
		return nil, ErrWrongPhase
	}
	q, ok := g.Deck.Draw()
	if !ok {
		return nil, ErrNoQuestions
	}
	g.Question = &q
	g.Phase = PhaseAnswering

	return []Event{
		{Type: EventRoundStart, Data: map[string]interface{}{
			"round":    g.State.Round,
			"rounds":   g.Config.Rounds,
			"question": q.Text,
		}},
		g.phaseEvent(),
	}, nil
}

// Apply is the single entry point for player actions.
func (g *Game) Apply(playerID string, action Action) ([]Event, error) {
	switch action.Type {
	case ActionSubmitAnswer:
		return g.applySubmitAnswer(playerID, action)
	case ActionPlaceBet:
		return g.applyPlaceBet(playerID, action)
	case ActionCloseAnswers:
		return g.applyCloseAnswers(playerID)
	case ActionReveal:
		return g.applyReveal(playerID)
	case ActionNextRound:
		return g.applyNextRound(playerID)
	default:
		return nil, ErrInvalidAction
	}
}

func (g *Game) applySubmitAnswer(playerID string, action Action) ([]Event, error) {
	if g.Phase != PhaseAnswering {
		return nil, ErrWrongPhase
	}
	next, err := g.State.WithAnswer(playerID, action.Value)
	if err != nil {
		return nil, err
	}
	g.State = next

	// The value itself stays hidden until the board goes up.
	return []Event{
		{Type: EventAnswerSubmitted, Player: playerID, Data: map[string]interface{}{
			"answered": len(g.State.Answers),
			"players":  len(g.State.Players),
		}},
	}, nil
}

func (g *Game) applyCloseAnswers(playerID string) ([]Event, error) {
	if g.Phase != PhaseAnswering {
		return nil, ErrWrongPhase
	}
	if playerID != g.HostID {
		return nil, ErrNotHost
	}
	if len(g.State.Answers) == 0 {
		return nil, ErrNoAnswers
	}

	g.Board = CreateBoard(g.State.Answers)
	g.Phase = PhaseBetting

	return []Event{
		{Type: EventBettingOpen, Data: map[string]interface{}{
			"board": g.Board,
		}},
		g.phaseEvent(),
	}, nil
}

func (g *Game) applyPlaceBet(playerID string, action Action) ([]Event, error) {
	if g.Phase != PhaseBetting {
		return nil, ErrWrongPhase
	}
	before := g.State.ChipsPlaced(playerID)
	next, err := g.State.WithBet(playerID, action.Slot, g.Board)
	if err != nil {
		return nil, err
	}
	g.State = next

	placed := g.State.ChipsPlaced(playerID)
	if placed == before {
		// Chip limit reached: a deliberate no-op, not an error.
		return nil, nil
	}
	return []Event{
		{Type: EventBetPlaced, Player: playerID, Data: map[string]interface{}{
			"slot":       action.Slot,
			"chips_left": MaxChips - placed,
		}},
	}, nil
}

func (g *Game) applyReveal(playerID string) ([]Event, error) {
	if g.Phase != PhaseBetting {
		return nil, ErrWrongPhase
	}
	if playerID != g.HostID {
		return nil, ErrNotHost
	}

	result := CalculateRoundScores(g.State, g.Question.Answer)
	g.State = ApplyScores(g.State, result)
	g.Results = &result
	g.Phase = PhaseResults

	return []Event{
		{Type: EventRoundResult, Data: map[string]interface{}{
			"correct_answer": g.Question.Answer,
			"winning_slot":   result.WinningSlot,
			"payout":         result.Payout,
			"winning_answer": result.WinningAnswer,
			"breakdown":      result.Breakdown,
			"scoreboard":     Scoreboard(g.State),
		}},
		g.phaseEvent(),
	}, nil
}

func (g *Game) applyNextRound(playerID string) ([]Event, error) {
	if g.Phase != PhaseResults {
		return nil, ErrWrongPhase
	}
	if playerID != g.HostID {
		return nil, ErrNotHost
	}

	if g.State.Round+1 >= g.Config.Rounds || g.Deck.Len() == 0 {
		return g.endGame(), nil
	}

	q, _ := g.Deck.Draw()
	g.State = g.State.NextRound()
	g.Question = &q
	g.Board = nil
	g.Results = nil
	g.Phase = PhaseAnswering

	return []Event{
		{Type: EventRoundStart, Data: map[string]interface{}{
			"round":    g.State.Round,
			"rounds":   g.Config.Rounds,
			"question": q.Text,
		}},
		g.phaseEvent(),
	}, nil
}

func (g *Game) endGame() []Event {
	g.Phase = PhaseGameOver
	return []Event{
		{Type: EventGameOver, Data: map[string]interface{}{
			"scoreboard": Scoreboard(g.State),
		}},
		g.phaseEvent(),
	}
}

func (g *Game) phaseEvent() Event {
	return Event{Type: EventPhaseChange, Data: map[string]interface{}{
		"phase": g.Phase.String(),
	}}
}
