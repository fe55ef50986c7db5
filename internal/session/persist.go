package session

import (
	"context"
	"fmt"

	"github.com/abhisek/quickcalc/internal/diagnosis"
	"github.com/abhisek/quickcalc/internal/store"
)

// Recorder runs writes atomically. *store.Store implements it.
type Recorder interface {
	WithTx(ctx context.Context, fn func(events store.EventRepo, profiles store.ProfileRepo) error) error
}

// Persist writes every answer, an end-of-session event and the new level
// in one transaction. On error nothing is saved.
func (s *Session) Persist(ctx context.Context, rec Recorder) (Summary, error) {
	sum := s.Summary()
	err := rec.WithTx(ctx, func(events store.EventRepo, profiles store.ProfileRepo) error {
		for _, r := range s.results {
			var category diagnosis.ErrorCategory
			if r.Diagnosis != nil {
				category = r.Diagnosis.Category
			}
			err := events.AppendAnswerEvent(ctx, store.AnswerEventData{
				SessionID:     s.ID,
				Problem:       r.Problem,
				LearnerAnswer: r.LearnerAnswer,
				Correct:       r.Correct,
				TimeMs:        int(r.Elapsed.Milliseconds()),
				Category:      category,
			})
			if err != nil {
				return fmt.Errorf("persist answer: %w", err)
			}
		}

		err := events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:      s.ID,
			Action:         store.SessionEnd,
			ProblemsServed: sum.Attempts,
			CorrectAnswers: sum.Correct,
			Duration:       sum.Duration,
			LevelBefore:    sum.LevelBefore,
			LevelAfter:     sum.LevelAfter,
		})
		if err != nil {
			return fmt.Errorf("persist session: %w", err)
		}

		if err := profiles.SaveLevel(ctx, sum.LevelAfter); err != nil {
			return fmt.Errorf("persist level: %w", err)
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	return sum, nil
}
