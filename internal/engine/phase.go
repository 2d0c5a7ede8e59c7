package engine

// GamePhase represents the current phase of the round state machine.
type GamePhase int

const (
	PhaseSetup     GamePhase = iota // waiting for players
	PhaseAnswering                  // players submitting numeric guesses
	PhaseBetting                    // guesses on the board, players placing chips
	PhaseResults                    // round scored, results on display
	PhaseGameOver                   // all rounds played
)

var phaseNames = map[GamePhase]string{
	PhaseSetup:     "Setup",
	PhaseAnswering: "Answering",
	PhaseBetting:   "Betting",
	PhaseResults:   "Results",
	PhaseGameOver:  "GameOver",
}

func (p GamePhase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}
