package engine

import "sort"

const (
	// NumSlots is the fixed size of the betting board.
	NumSlots = 8
	// SpecialSlot is the "lower than all guesses" side bet.
	SpecialSlot = 0
	// MedianSlot holds the median guess and pays the least.
	MedianSlot = 4
	// NoWinningSlot is returned when no guesses are on the board.
	NoWinningSlot = -1
)

// slotTemplate is the immutable board shape: payouts fan out from the
// 2:1 median slot, with the special slot paying the most.
var slotTemplate = [NumSlots]struct {
	label  string
	payout int
}{
	{"Lower than all guesses", 6},
	{"5 to 1", 5},
	{"4 to 1", 4},
	{"3 to 1", 3},
	{"2 to 1", 2},
	{"3 to 1", 3},
	{"4 to 1", 4},
	{"5 to 1", 5},
}

// AnswerGroup collapses every player who guessed the same value into
// one board entry.
type AnswerGroup struct {
	Answer    float64  `json:"answer"`
	PlayerIDs []string `json:"player_ids"`
}

// BettingSlot is one of the 8 payout buckets on the board.
type BettingSlot struct {
	Index        int           `json:"index"`
	Label        string        `json:"label"`
	Payout       int           `json:"payout"`
	IsSpecial    bool          `json:"is_special"`
	AnswerGroups []AnswerGroup `json:"answer_groups"`
}

// newBoard returns the empty 8-slot template.
func newBoard() []BettingSlot {
	board := make([]BettingSlot, NumSlots)
	for i := range board {
		board[i] = BettingSlot{
			Index:     i,
			Label:     slotTemplate[i].label,
			Payout:    slotTemplate[i].payout,
			IsSpecial: i == SpecialSlot,
		}
	}
	return board
}

// SlotPayout returns the payout multiplier for a slot index, or 0 for
// indices outside the board.
func SlotPayout(index int) int {
	if index < 0 || index >= NumSlots {
		return 0
	}
	return slotTemplate[index].payout
}

// GroupAnswers buckets guesses by exact value and returns the groups
// sorted ascending. Player order inside a group follows submission
// order, so identical inputs always yield identical groups.
func GroupAnswers(answers []PlayerAnswer) []AnswerGroup {
	byValue := make(map[float64][]string)
	var values []float64
	for _, a := range answers {
		if _, seen := byValue[a.Answer]; !seen {
			values = append(values, a.Answer)
		}
		byValue[a.Answer] = append(byValue[a.Answer], a.PlayerID)
	}
	sort.Float64s(values)

	groups := make([]AnswerGroup, len(values))
	for i, v := range values {
		groups[i] = AnswerGroup{Answer: v, PlayerIDs: byValue[v]}
	}
	return groups
}

// AssignToSlots spreads sorted answer groups onto the board around the
// median. With an odd group count the true median takes the 2:1 slot
// and neighbors walk outward. With an even count there is no true
// median: the 2:1 slot stays empty and the two central groups land on
// the 3:1 slots either side of it. The special slot never holds
// groups, so at most 7 groups fit; extras at the extremes fall off.
func AssignToSlots(groups []AnswerGroup) []BettingSlot {
	board := newBoard()
	n := len(groups)
	if n == 0 {
		return board
	}

	if n%2 == 1 {
		mid := (n - 1) / 2
		board[MedianSlot].AnswerGroups = []AnswerGroup{groups[mid]}
		placeBelow(board, groups, mid-1, MedianSlot-1)
		placeAbove(board, groups, mid+1, MedianSlot+1)
		return board
	}

	lower, upper := n/2-1, n/2
	board[MedianSlot-1].AnswerGroups = []AnswerGroup{groups[lower]}
	board[MedianSlot+1].AnswerGroups = []AnswerGroup{groups[upper]}
	placeBelow(board, groups, lower-1, MedianSlot-2)
	placeAbove(board, groups, upper+1, MedianSlot+2)
	return board
}

// placeBelow walks outward toward slot 1, one group per slot.
func placeBelow(board []BettingSlot, groups []AnswerGroup, group, slot int) {
	for ; group >= 0 && slot > SpecialSlot; group, slot = group-1, slot-1 {
		board[slot].AnswerGroups = []AnswerGroup{groups[group]}
	}
}

// placeAbove walks outward toward slot 7, one group per slot.
func placeAbove(board []BettingSlot, groups []AnswerGroup, group, slot int) {
	for ; group < len(groups) && slot < NumSlots; group, slot = group+1, slot+1 {
		board[slot].AnswerGroups = []AnswerGroup{groups[group]}
	}
}

// CreateBoard builds the round's board from raw guesses. Pure and
// idempotent: the same answers always produce the same board.
func CreateBoard(answers []PlayerAnswer) []BettingSlot {
	return AssignToSlots(GroupAnswers(answers))
}

// WinningSlotIndex applies the closest-without-going-over policy:
// the winning slot holds the largest guess that does not exceed the
// correct answer. The special slot wins only when the correct answer
// undercuts every guess. When every guess overshoots, the slot with
// the lowest guess wins instead, never the special slot. Returns
// NoWinningSlot when the board holds no guesses.
func WinningSlotIndex(board []BettingSlot, correctAnswer float64) int {
	minSlot, bestSlot := NoWinningSlot, NoWinningSlot
	var minValue, bestValue float64

	// Scan order is ascending slot index on purpose.
	for i := SpecialSlot + 1; i < len(board); i++ {
		for _, g := range board[i].AnswerGroups {
			if minSlot == NoWinningSlot || g.Answer < minValue {
				minSlot, minValue = i, g.Answer
			}
			if g.Answer <= correctAnswer && (bestSlot == NoWinningSlot || g.Answer > bestValue) {
				bestSlot, bestValue = i, g.Answer
			}
		}
	}

	if minSlot == NoWinningSlot {
		return NoWinningSlot
	}
	if correctAnswer < minValue {
		return SpecialSlot
	}
	if bestSlot == NoWinningSlot {
		// Everyone went over: the lowest guess takes it.
		return minSlot
	}
	return bestSlot
}
