package diagnosis

import (
	"math"

	"github.com/abhisek/quickcalc/internal/problemgen"
)

// CarelessAccuracyThreshold is the minimum operator accuracy (exclusive)
// for a wrong answer to be classified as a careless error.
const CarelessAccuracyThreshold = 0.80

// CarelessClassifier flags wrong answers that are a slip rather than a
// knowledge gap: either the learner is otherwise accurate on the operator,
// or the answer is off by exactly one in the last whole digit.
type CarelessClassifier struct{}

func (c *CarelessClassifier) Name() string { return "careless" }

func (c *CarelessClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	if input.OperatorAccuracy > CarelessAccuracyThreshold {
		return CategoryCareless, 0.8
	}
	if problemgen.ApproxEqual(math.Abs(input.LearnerAnswer-input.Problem.CorrectAnswer), 1) {
		return CategoryCareless, 0.6
	}
	return "", 0
}
