package calibration

// Bracket groups levels that share numeric-range and operator policies.
type Bracket int

const (
	Beginner     Bracket = iota // Levels 1-3: small whole numbers, + and -
	Intermediate                // Levels 4-7: all four operators, exact results
	Advanced                    // Levels 8-10: one-decimal operands
)

// BracketFor returns the bracket a level belongs to. Out-of-range levels
// are clamped first.
func BracketFor(level int) Bracket {
	switch level = Clamp(level); {
	case level <= 3:
		return Beginner
	case level <= 7:
		return Intermediate
	default:
		return Advanced
	}
}

// String returns the lowercase bracket name.
func (b Bracket) String() string {
	switch b {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	default:
		return "unknown"
	}
}
