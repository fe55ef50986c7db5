package scaffold

// affirmations holds the praise shown for a solved problem. Unaided solves
// read differently from guided ones.
var affirmations = map[HintLevel][]string{
	HintFull: {
		"Nice work following the steps!",
		"Step by step, you got there.",
		"That's the method. Well done!",
		"You walked it through perfectly.",
	},
	HintPartial: {
		"Great, you only needed a nudge!",
		"Nicely done with just a head start.",
		"You filled in the rest yourself.",
		"Almost no help needed. Good going!",
	},
	HintNone: {
		"Perfect, all on your own!",
		"Solved unaided. Impressive!",
		"That's real mental math.",
		"No hints, no problem!",
	},
}

// Affirmations returns the praise pool for level.
func Affirmations(level HintLevel) []string {
	return affirmations[level]
}
