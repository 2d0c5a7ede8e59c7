package engine

// GameConfig holds configuration for creating a new game.
type GameConfig struct {
	MinPlayers int        // fewest players a game can start with
	MaxPlayers int        // lobby capacity
	Rounds     int        // questions played before game over
	Labels     []string   // question labels to draw from; empty = all
	Questions  []Question // question pool
}

func DefaultConfig() GameConfig {
	return GameConfig{
		MinPlayers: 2,
		MaxPlayers: 7,
		Rounds:     7,
		Questions:  BaseQuestions(),
	}
}
