package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendLessonEvent(ctx context.Context, data LessonEventData) error {
	_, err := r.insertEvent(ctx, LessonEventsTable.Name,
		[]string{"session_id", "slug", "phase", "attempts", "hints_shown", "solved"},
		[]any{data.SessionID, data.Slug, data.Phase, data.Attempts, data.HintsShown, data.Solved},
	)
	if err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}
	return nil
}
