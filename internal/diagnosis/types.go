package diagnosis

import "github.com/abhisek/quickcalc/internal/problemgen"

// ErrorRecord is one historically wrong answer. Slices of records are
// ordered most-recent-first.
type ErrorRecord struct {
	Operator problemgen.Operator `json:"operator"`
}

// ErrorCategory classifies a wrong answer.
type ErrorCategory string

const (
	CategoryCareless  ErrorCategory = "careless"
	CategorySpeedRush ErrorCategory = "speed-rush"
	CategoryGap       ErrorCategory = "gap"
)

// ClassifyInput holds the context for classification.
type ClassifyInput struct {
	Problem          problemgen.Problem
	LearnerAnswer    float64
	ResponseTimeMs   int
	OperatorAccuracy float64 // Session accuracy on this operator so far (0.0–1.0)
}

// DiagnosisResult is the output of classifying a wrong answer.
type DiagnosisResult struct {
	Category       ErrorCategory
	Confidence     float64 // 0.0–1.0
	ClassifierName string  // Which classifier produced this result
}
