package engine

// PublicViewData is the game state visible on the shared board screen.
type PublicViewData struct {
	Phase         string             `json:"phase"`
	Round         int                `json:"round"`
	Rounds        int                `json:"rounds"`
	Question      string             `json:"question,omitempty"`
	CorrectAnswer *float64           `json:"correct_answer,omitempty"` // results only
	Players       []PublicPlayerData `json:"players"`
	Board         []BettingSlot      `json:"board,omitempty"`
	Results       *ScoringResult     `json:"results,omitempty"`
	Scoreboard    []ScoreEntry       `json:"scoreboard"`
}

type PublicPlayerData struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
	IsHost   bool   `json:"is_host"`
	Answered bool   `json:"answered"`
	Chips    int    `json:"chips_placed"`
}

func (g *Game) PublicView() PublicViewData {
	pv := PublicViewData{
		Phase:      g.Phase.String(),
		Round:      g.State.Round,
		Rounds:     g.Config.Rounds,
		Board:      g.Board,
		Results:    g.Results,
		Scoreboard: Scoreboard(g.State),
	}

	if g.Question != nil && g.Phase != PhaseSetup {
		pv.Question = g.Question.Text
		if g.Phase == PhaseResults || g.Phase == PhaseGameOver {
			answer := g.Question.Answer
			pv.CorrectAnswer = &answer
		}
	}

	for _, p := range g.State.Players {
		_, answered := g.State.AnswerOf(p.ID)
		pv.Players = append(pv.Players, PublicPlayerData{
			ID:       p.ID,
			Name:     p.Name,
			Score:    p.Score,
			IsHost:   p.ID == g.HostID,
			Answered: answered,
			Chips:    g.State.ChipsPlaced(p.ID),
		})
	}

	return pv
}

// PlayerViewData is the game state visible to a specific player.
type PlayerViewData struct {
	PublicViewData
	IsHost    bool     `json:"is_host"`
	MyAnswer  *float64 `json:"my_answer,omitempty"`
	MyBets    []int    `json:"my_bets,omitempty"`
	ChipsLeft int      `json:"chips_left"`
	CanAnswer bool     `json:"can_answer"`
	CanBet    bool     `json:"can_bet"`
}

func (g *Game) ViewFor(playerID string) PlayerViewData {
	pv := PlayerViewData{
		PublicViewData: g.PublicView(),
	}

	p := g.State.GetPlayer(playerID)
	if p == nil {
		return pv
	}

	pv.IsHost = playerID == g.HostID
	pv.CanAnswer = g.Phase == PhaseAnswering

	if answer, ok := g.State.AnswerOf(playerID); ok {
		pv.MyAnswer = &answer
	}

	for _, b := range g.State.Bets {
		if b.PlayerID == playerID {
			pv.MyBets = b.Slots
			break
		}
	}
	pv.ChipsLeft = MaxChips - g.State.ChipsPlaced(playerID)
	pv.CanBet = g.Phase == PhaseBetting && pv.ChipsLeft > 0

	return pv
}
