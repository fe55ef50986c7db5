package diagnosis

import "time"

// DefaultSpeedRushThreshold is the response time under which a miss is
// treated as rushed.
const DefaultSpeedRushThreshold = 2 * time.Second

// SpeedRushClassifier flags misses answered faster than Threshold. A zero
// Threshold uses DefaultSpeedRushThreshold.
type SpeedRushClassifier struct {
	Threshold time.Duration
}

func (c *SpeedRushClassifier) Name() string { return "speed-rush" }

func (c *SpeedRushClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	limit := c.Threshold
	if limit <= 0 {
		limit = DefaultSpeedRushThreshold
	}
	if time.Duration(input.ResponseTimeMs)*time.Millisecond >= limit {
		return "", 0
	}
	return CategorySpeedRush, 0.9
}
