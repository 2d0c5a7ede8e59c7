package engine

import "math/rand/v2"

// Question is one trivia prompt with a numeric answer. The answer is
// never serialized to clients; it reaches them only through the
// results event after the round is scored.
type Question struct {
	Text   string   `json:"text"`
	Answer float64  `json:"-"`
	Labels []string `json:"labels,omitempty"`
}

// HasLabel reports whether the question carries the given label.
func (q Question) HasLabel(label string) bool {
	for _, l := range q.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Deck is a shuffled stack of questions. Question selection is the
// only randomness in the game and it stays out of board construction
// and scoring, which must be deterministic.
type Deck struct {
	questions []Question
}

// NewDeck builds a shuffled deck from the pool, keeping only questions
// carrying at least one of the given labels. An empty label list keeps
// the whole pool.
func NewDeck(pool []Question, labels []string) *Deck {
	d := &Deck{}
	for _, q := range pool {
		if len(labels) == 0 {
			d.questions = append(d.questions, q)
			continue
		}
		for _, l := range labels {
			if q.HasLabel(l) {
				d.questions = append(d.questions, q)
				break
			}
		}
	}
	d.Shuffle()
	return d
}

func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.questions), func(i, j int) {
		d.questions[i], d.questions[j] = d.questions[j], d.questions[i]
	})
}

// Draw removes and returns the top question. ok is false when the
// deck is exhausted.
func (d *Deck) Draw() (Question, bool) {
	if len(d.questions) == 0 {
		return Question{}, false
	}
	q := d.questions[0]
	d.questions = d.questions[1:]
	return q, true
}

// Len returns the number of questions remaining.
func (d *Deck) Len() int {
	return len(d.questions)
}
