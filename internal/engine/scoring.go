package engine

import "sort"

// answerBonusPoints is awarded to every player whose guess matches the
// winning value. Players sharing the value each get the full bonus.
const answerBonusPoints = 3

// ScoringResult is the outcome of one round, produced at the
// betting-to-results transition and folded into scores right away.
type ScoringResult struct {
	WinningAnswer *PlayerAnswer  `json:"winning_answer"`
	WinningSlot   int            `json:"winning_slot"`
	Payout        int            `json:"payout"`
	SortedAnswers []PlayerAnswer `json:"sorted_answers"`
	PointsAwarded map[string]int `json:"points_awarded"`
	Breakdown     []PointsEntry  `json:"breakdown"`
}

// PointsEntry is the per-player scoring breakdown for one round.
type PointsEntry struct {
	PlayerID    string `json:"player_id"`
	PlayerName  string `json:"player_name"`
	AnswerBonus int    `json:"answer_bonus"`
	BetPoints   int    `json:"bet_points"`
	RoundBonus  int    `json:"round_bonus"`
	Total       int    `json:"total"`
}

// WinningAnswer reports which literal guess won, independent of the
// board: the largest guess not exceeding the correct answer, or the
// smallest guess overall when every guess overshoots. Returns the
// winner, its index in the sorted answer list, and that list. With no
// answers the winner is nil and the index -1.
func WinningAnswer(answers []PlayerAnswer, correctAnswer float64) (*PlayerAnswer, int, []PlayerAnswer) {
	if len(answers) == 0 {
		return nil, -1, nil
	}
	sorted := make([]PlayerAnswer, len(answers))
	copy(sorted, answers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Answer < sorted[j].Answer
	})

	winIdx := -1
	for i, a := range sorted {
		if a.Answer <= correctAnswer {
			winIdx = i
		}
	}
	if winIdx == -1 {
		winIdx = 0
	}
	winner := sorted[winIdx]
	return &winner, winIdx, sorted
}

// CalculateRoundScores computes the round's point allocation: the
// answer bonus for matching the winning value (never through the
// special slot), one payout multiple per chip on the winning slot, and
// the round bonus (the 0-based round index) only for players already
// above zero from the first two sources. The caller must have at least
// one recorded answer; an answerless state scores everyone zero.
func CalculateRoundScores(state GameState, correctAnswer float64) ScoringResult {
	board := CreateBoard(state.Answers)
	winSlot := WinningSlotIndex(board, correctAnswer)
	payout := SlotPayout(winSlot)
	winner, _, sorted := WinningAnswer(state.Answers, correctAnswer)

	result := ScoringResult{
		WinningAnswer: winner,
		WinningSlot:   winSlot,
		Payout:        payout,
		SortedAnswers: sorted,
		PointsAwarded: make(map[string]int, len(state.Players)),
	}

	for _, p := range state.Players {
		e := PointsEntry{PlayerID: p.ID, PlayerName: p.Name}

		if winSlot != SpecialSlot && winner != nil {
			if guess, ok := state.AnswerOf(p.ID); ok && guess == winner.Answer {
				e.AnswerBonus = answerBonusPoints
			}
		}

		for _, b := range state.Bets {
			if b.PlayerID != p.ID {
				continue
			}
			for _, slot := range b.Slots {
				if slot == winSlot {
					e.BetPoints += payout
				}
			}
		}

		// The round bonus is gated: zero points from answers and
		// bets means zero total, regardless of round index.
		if e.AnswerBonus+e.BetPoints > 0 {
			e.RoundBonus = state.Round
		}
		e.Total = e.AnswerBonus + e.BetPoints + e.RoundBonus

		result.PointsAwarded[p.ID] = e.Total
		result.Breakdown = append(result.Breakdown, e)
	}

	return result
}

// ApplyScores folds a round's points into cumulative scores and
// appends each player's new total to their score history. The input
// snapshot is left untouched; players missing from PointsAwarded
// simply gain zero.
func ApplyScores(state GameState, result ScoringResult) GameState {
	next := state.clone()
	for i := range next.Players {
		p := &next.Players[i]
		p.Score += result.PointsAwarded[p.ID]
		next.ScoreHistory[p.ID] = append(next.ScoreHistory[p.ID], p.Score)
	}
	return next
}

// ScoreEntry is one scoreboard row.
type ScoreEntry struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Score      int    `json:"score"`
	History    []int  `json:"history,omitempty"`
}

// Scoreboard returns players ranked by score, highest first. Ties keep
// seating order so repeated calls agree exactly.
func Scoreboard(state GameState) []ScoreEntry {
	entries := make([]ScoreEntry, len(state.Players))
	for i, p := range state.Players {
		entries[i] = ScoreEntry{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Score:      p.Score,
			History:    state.ScoreHistory[p.ID],
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}
