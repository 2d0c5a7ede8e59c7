package engine

// BaseQuestions returns the built-in question pool. Every answer is a
// finite non-negative number so any question can go straight onto the
// board. Hosts can replace the pool with their own pack via config.
func BaseQuestions() []Question {
	return []Question{
		{Text: "In what year did the first person walk on the Moon?", Answer: 1969, Labels: []string{"history", "science"}},
		{Text: "How many bones are in the adult human body?", Answer: 206, Labels: []string{"science"}},
		{Text: "How tall is the Eiffel Tower, in meters?", Answer: 330, Labels: []string{"geography"}},
		{Text: "In what year was the Great Wall of China's oldest section begun (BC)?", Answer: 771, Labels: []string{"history"}},
		{Text: "How many keys are on a standard piano?", Answer: 88, Labels: []string{"music"}},
		{Text: "What is the boiling point of water at sea level, in Fahrenheit?", Answer: 212, Labels: []string{"science"}},
		{Text: "How many countries are members of the United Nations?", Answer: 193, Labels: []string{"geography"}},
		{Text: "In what year did the Titanic sink?", Answer: 1912, Labels: []string{"history"}},
		{Text: "How long is the Nile river, in kilometers?", Answer: 6650, Labels: []string{"geography"}},
		{Text: "How many squares are on a chessboard?", Answer: 64, Labels: []string{"games"}},
		{Text: "In what year was the first iPhone released?", Answer: 2007, Labels: []string{"technology"}},
		{Text: "How many minutes are in a week?", Answer: 10080, Labels: []string{"math"}},
		{Text: "How many players are on the field for one soccer team?", Answer: 11, Labels: []string{"sports"}},
		{Text: "What is the average distance from the Earth to the Moon, in thousands of kilometers?", Answer: 384, Labels: []string{"science"}},
		{Text: "In what year did World War I begin?", Answer: 1914, Labels: []string{"history"}},
		{Text: "How many strings does a standard violin have?", Answer: 4, Labels: []string{"music"}},
		{Text: "How many time zones does Russia span?", Answer: 11, Labels: []string{"geography"}},
		{Text: "What is the maximum score in a single game of ten-pin bowling?", Answer: 300, Labels: []string{"sports", "games"}},
		{Text: "In what year was the World Wide Web invented?", Answer: 1989, Labels: []string{"technology"}},
		{Text: "How many hearts does an octopus have?", Answer: 3, Labels: []string{"science"}},
		{Text: "How many steps are there to the top of the Statue of Liberty's crown?", Answer: 354, Labels: []string{"geography"}},
		{Text: "In what year did the Berlin Wall fall?", Answer: 1989, Labels: []string{"history"}},
		{Text: "How many Olympic gold medals did Michael Phelps win?", Answer: 23, Labels: []string{"sports"}},
		{Text: "How many spots are on a pair of standard dice?", Answer: 42, Labels: []string{"games", "math"}},
		{Text: "What is the deepest point of the ocean, in meters?", Answer: 10935, Labels: []string{"science", "geography"}},
		{Text: "In what year was the printing press invented?", Answer: 1440, Labels: []string{"history", "technology"}},
		{Text: "How many films did Alfred Hitchcock direct?", Answer: 53, Labels: []string{"movies"}},
		{Text: "How many dimples does a regulation golf ball have, on average?", Answer: 336, Labels: []string{"sports"}},
		{Text: "How many episodes of 'Friends' were made?", Answer: 236, Labels: []string{"tv"}},
		{Text: "What is the wingspan of a Boeing 747-8, in meters?", Answer: 68, Labels: []string{"technology"}},
	}
}
