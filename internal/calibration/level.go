package calibration

import "time"

const (
	// MinLevel is the lowest skill level.
	MinLevel = 1

	// MaxLevel is the highest skill level.
	MaxLevel = 10

	// SlowestTime is the standard time at MinLevel, in seconds.
	SlowestTime = 15.0

	// FastestTime is the standard time at MaxLevel, in seconds.
	FastestTime = 4.0

	// PromoteAccuracy is the accuracy percentage needed for promotion.
	PromoteAccuracy = 80.0

	// DemoteAccuracy is the accuracy percentage below which a learner is demoted.
	DemoteAccuracy = 50.0
)

// StandardTime returns the maximum response time in seconds considered on
// pace for a level, interpolated linearly from 15s at level 1 to 4s at level 10.
func StandardTime(level int) float64 {
	return SlowestTime - float64(level-MinLevel)*(SlowestTime-FastestTime)/float64(MaxLevel-MinLevel)
}

// NextLevel computes the level that follows a session with the given
// accuracy percentage (0-100) and average response time in seconds.
func NextLevel(accuracy, avgResponseTime float64, current int) int {
	switch {
	case accuracy >= PromoteAccuracy && avgResponseTime < StandardTime(current):
		return min(current+1, MaxLevel)
	case accuracy < DemoteAccuracy:
		return max(current-1, MinLevel)
	default:
		return current
	}
}

// Clamp forces level into [MinLevel, MaxLevel].
func Clamp(level int) int {
	return max(MinLevel, min(level, MaxLevel))
}

// Outcome aggregates the answers of one practice session.
type Outcome struct {
	Attempts  int
	Correct   int
	TotalTime time.Duration
}

// Record adds one answer to the outcome.
func (o *Outcome) Record(correct bool, elapsed time.Duration) {
	o.Attempts++
	if correct {
		o.Correct++
	}
	o.TotalTime += elapsed
}

// Accuracy returns the percentage of correct answers (0-100).
func (o Outcome) Accuracy() float64 {
	if o.Attempts == 0 {
		return 0
	}
	return float64(o.Correct) / float64(o.Attempts) * 100
}

// AvgSeconds returns the mean response time in seconds.
func (o Outcome) AvgSeconds() float64 {
	if o.Attempts == 0 {
		return 0
	}
	return o.TotalTime.Seconds() / float64(o.Attempts)
}

// Next returns the level following this outcome. An empty outcome leaves
// the level unchanged.
func (o Outcome) Next(current int) int {
	current = Clamp(current)
	if o.Attempts == 0 {
		return current
	}
	return NextLevel(o.Accuracy(), o.AvgSeconds(), current)
}
