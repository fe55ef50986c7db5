package session

import (
	"time"

	"github.com/abhisek/quickcalc/internal/calibration"
	"github.com/abhisek/quickcalc/internal/diagnosis"
	"github.com/abhisek/quickcalc/internal/problemgen"
)

// Summary is the end-of-session report.
type Summary struct {
	Duration     time.Duration
	Attempts     int
	Correct      int
	Accuracy     float64 // Percent, 0-100
	AvgSeconds   float64
	StandardTime float64 // Seconds allowed per problem at LevelBefore
	LevelBefore  int
	LevelAfter   int

	// MissesByCategory counts wrong answers per diagnosis.
	MissesByCategory map[diagnosis.ErrorCategory]int

	// Missed lists wrong answers' operators, most recent first, ready to
	// feed the next session's weak-operator ranking.
	Missed []diagnosis.ErrorRecord
}

// Summary builds the report. Unanswered problems do not count; a session
// with no answers keeps the level.
func (s *Session) Summary() Summary {
	var outcome calibration.Outcome
	misses := make(map[diagnosis.ErrorCategory]int)
	var missed []diagnosis.ErrorRecord

	for i := len(s.results) - 1; i >= 0; i-- {
		r := s.results[i]
		if !r.Correct {
			missed = append(missed, diagnosis.ErrorRecord{Operator: r.Problem.Operator})
			if r.Diagnosis != nil {
				misses[r.Diagnosis.Category]++
			}
		}
	}
	for _, r := range s.results {
		outcome.Record(r.Correct, r.Elapsed)
	}

	return Summary{
		Duration:         time.Since(s.started),
		Attempts:         outcome.Attempts,
		Correct:          outcome.Correct,
		Accuracy:         outcome.Accuracy(),
		AvgSeconds:       outcome.AvgSeconds(),
		StandardTime:     calibration.StandardTime(s.levelBefore),
		LevelBefore:      s.levelBefore,
		LevelAfter:       outcome.Next(s.levelBefore),
		MissesByCategory: misses,
		Missed:           missed,
	}
}

// OperatorBreakdown returns attempts and correct answers per operator, in
// canonical operator order, skipping operators not seen.
func (s *Session) OperatorBreakdown() []OperatorResult {
	var out []OperatorResult
	for _, op := range problemgen.AllOperators() {
		if t := s.tally[op]; t != nil {
			out = append(out, OperatorResult{Operator: op, Attempts: t.attempts, Correct: t.correct})
		}
	}
	return out
}

// OperatorResult is one row of OperatorBreakdown.
type OperatorResult struct {
	Operator problemgen.Operator
	Attempts int
	Correct  int
}
