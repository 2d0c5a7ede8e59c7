package engine_test

import (
	"testing"

	"witswagers/internal/engine"
)

func testPlayers(ids ...string) []engine.Player {
	out := make([]engine.Player, len(ids))
	for i, id := range ids {
		out[i] = engine.NewPlayer(id, "Player "+id)
	}
	return out
}

func stateWith(t *testing.T, players []engine.Player, guesses map[string]float64) engine.GameState {
	t.Helper()
	state := engine.NewGameState(players)
	for _, p := range players {
		guess, ok := guesses[p.ID]
		if !ok {
			continue
		}
		next, err := state.WithAnswer(p.ID, guess)
		if err != nil {
			t.Fatalf("answer for %s: %v", p.ID, err)
		}
		state = next
	}
	return state
}

func placeChips(t *testing.T, state engine.GameState, playerID string, slots ...int) engine.GameState {
	t.Helper()
	board := engine.CreateBoard(state.Answers)
	for _, s := range slots {
		next, err := state.WithBet(playerID, s, board)
		if err != nil {
			t.Fatalf("bet for %s on %d: %v", playerID, s, err)
		}
		state = next
	}
	return state
}

func TestWinningAnswer(t *testing.T) {
	tests := []struct {
		name      string
		guesses   []float64
		correct   float64
		wantValue float64
		wantIdx   int
	}{
		{"closest under", []float64{50, 75, 100}, 80, 75, 1},
		{"exact match", []float64{50, 75, 100}, 100, 100, 2},
		{"all over: smallest wins", []float64{50, 75, 100}, 30, 50, 0},
		{"equal to smallest", []float64{50, 75, 100}, 50, 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			winner, idx, sorted := engine.WinningAnswer(answers(tt.guesses...), tt.correct)
			if winner == nil {
				t.Fatal("expected a winner")
			}
			if winner.Answer != tt.wantValue {
				t.Errorf("winning value: got %v, want %v", winner.Answer, tt.wantValue)
			}
			if idx != tt.wantIdx {
				t.Errorf("winning index: got %d, want %d", idx, tt.wantIdx)
			}
			if len(sorted) != len(tt.guesses) {
				t.Errorf("sorted answers: got %d, want %d", len(sorted), len(tt.guesses))
			}
			for i := 1; i < len(sorted); i++ {
				if sorted[i-1].Answer > sorted[i].Answer {
					t.Error("sorted answers not ascending")
				}
			}
		})
	}
}

func TestWinningAnswerEmpty(t *testing.T) {
	winner, idx, sorted := engine.WinningAnswer(nil, 10)
	if winner != nil || idx != -1 || sorted != nil {
		t.Errorf("empty answers: got (%v, %d, %v)", winner, idx, sorted)
	}
}

func TestCalculateRoundScoresAnswerBonus(t *testing.T) {
	// Guesses 50/75/100 with correct answer 80: 75 wins from the
	// median slot, its owner gets the answer bonus.
	state := stateWith(t, testPlayers("a", "b", "c"), map[string]float64{
		"a": 50, "b": 75, "c": 100,
	})
	result := engine.CalculateRoundScores(state, 80)

	if result.WinningSlot != 4 {
		t.Errorf("winning slot: got %d, want 4", result.WinningSlot)
	}
	if result.Payout != 2 {
		t.Errorf("payout: got %d, want 2", result.Payout)
	}
	if result.WinningAnswer == nil || result.WinningAnswer.Answer != 75 {
		t.Errorf("winning answer: got %v, want 75", result.WinningAnswer)
	}
	if got := result.PointsAwarded["b"]; got != 3 {
		t.Errorf("winner points: got %d, want 3", got)
	}
	if got := result.PointsAwarded["a"]; got != 0 {
		t.Errorf("loser points: got %d, want 0", got)
	}
}

func TestCalculateRoundScoresBetPayout(t *testing.T) {
	// Even case: slot 4 empty, 50 on slot 3 and 75 on slot 5. Player b
	// guessed the winning 75 and doubled down on its slot: 3 answer
	// bonus plus two chips at 3:1.
	state := stateWith(t, testPlayers("a", "b"), map[string]float64{
		"a": 50, "b": 75,
	})
	state = placeChips(t, state, "b", 5, 5)

	result := engine.CalculateRoundScores(state, 80)
	if result.WinningSlot != 5 {
		t.Fatalf("winning slot: got %d, want 5", result.WinningSlot)
	}
	if got := result.PointsAwarded["b"]; got != 3+2*3 {
		t.Errorf("points: got %d, want %d", got, 3+2*3)
	}
}

func TestCalculateRoundScoresSpecialSlot(t *testing.T) {
	// Correct answer below every guess: the special slot wins at 6:1
	// and nobody collects the answer bonus.
	state := stateWith(t, testPlayers("a", "b"), map[string]float64{
		"a": 50, "b": 75,
	})
	state = placeChips(t, state, "a", engine.SpecialSlot)

	result := engine.CalculateRoundScores(state, 30)
	if result.WinningSlot != engine.SpecialSlot {
		t.Fatalf("winning slot: got %d, want special", result.WinningSlot)
	}
	if result.Payout != 6 {
		t.Errorf("payout: got %d, want 6", result.Payout)
	}
	if got := result.PointsAwarded["a"]; got != 6 {
		t.Errorf("special bettor: got %d, want 6", got)
	}
	if got := result.PointsAwarded["b"]; got != 0 {
		t.Errorf("no answer bonus through the special slot: got %d, want 0", got)
	}
}

func TestRoundBonusGating(t *testing.T) {
	state := stateWith(t, testPlayers("a", "b"), map[string]float64{
		"a": 50, "b": 999,
	})
	state.Round = 5

	result := engine.CalculateRoundScores(state, 60)
	// a wins the answer bonus and the round 5 bonus on top.
	if got := result.PointsAwarded["a"]; got != 3+5 {
		t.Errorf("scoring player: got %d, want 8", got)
	}
	// b scored nothing, so the round bonus must not apply.
	if got := result.PointsAwarded["b"]; got != 0 {
		t.Errorf("round bonus must be gated on points > 0: got %d, want 0", got)
	}
}

func TestSharedWinningValue(t *testing.T) {
	// Two players on the exact winning value both get the full bonus.
	state := stateWith(t, testPlayers("a", "b", "c"), map[string]float64{
		"a": 75, "b": 75, "c": 90,
	})
	result := engine.CalculateRoundScores(state, 80)
	if result.PointsAwarded["a"] != 3 || result.PointsAwarded["b"] != 3 {
		t.Errorf("both 75-guessers should get 3, got a=%d b=%d",
			result.PointsAwarded["a"], result.PointsAwarded["b"])
	}
}

func TestApplyScores(t *testing.T) {
	state := stateWith(t, testPlayers("a", "b"), map[string]float64{"a": 10})
	result := engine.ScoringResult{PointsAwarded: map[string]int{"a": 7}}

	next := engine.ApplyScores(state, result)

	if next.GetPlayer("a").Score != 7 {
		t.Errorf("a score: got %d, want 7", next.GetPlayer("a").Score)
	}
	// Missing entries are zero, not an error.
	if next.GetPlayer("b").Score != 0 {
		t.Errorf("b score: got %d, want 0", next.GetPlayer("b").Score)
	}

	// Exactly one history value per player per call.
	if h := next.ScoreHistory["a"]; len(h) != 1 || h[0] != 7 {
		t.Errorf("a history: got %v, want [7]", h)
	}
	if h := next.ScoreHistory["b"]; len(h) != 1 || h[0] != 0 {
		t.Errorf("b history: got %v, want [0]", h)
	}

	// The input snapshot is untouched.
	if state.GetPlayer("a").Score != 0 || len(state.ScoreHistory["a"]) != 0 {
		t.Error("ApplyScores must not mutate its input")
	}
}

func TestApplyScoresMonotonic(t *testing.T) {
	state := engine.NewGameState(testPlayers("a"))
	for round := 0; round < 4; round++ {
		prev := state.GetPlayer("a").Score
		state = engine.ApplyScores(state, engine.ScoringResult{
			PointsAwarded: map[string]int{"a": round},
		})
		if state.GetPlayer("a").Score < prev {
			t.Fatalf("round %d: score decreased from %d to %d", round, prev, state.GetPlayer("a").Score)
		}
		if len(state.ScoreHistory["a"]) != round+1 {
			t.Fatalf("round %d: history length %d", round, len(state.ScoreHistory["a"]))
		}
	}
}

func TestScoreboardOrder(t *testing.T) {
	state := engine.NewGameState(testPlayers("a", "b", "c"))
	state = engine.ApplyScores(state, engine.ScoringResult{
		PointsAwarded: map[string]int{"a": 4, "b": 9, "c": 4},
	})
	sb := engine.Scoreboard(state)
	if sb[0].PlayerID != "b" {
		t.Errorf("leader: got %s, want b", sb[0].PlayerID)
	}
	// Ties keep seating order.
	if sb[1].PlayerID != "a" || sb[2].PlayerID != "c" {
		t.Errorf("tie order: got %s, %s", sb[1].PlayerID, sb[2].PlayerID)
	}
}
