package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// Session event actions.
const (
	SessionStart = "start"
	SessionEnd   = "end"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	_, err := r.insertEvent(ctx, SessionEventsTable.Name,
		[]string{"session_id", "action", "problems_served", "correct_answers",
			"duration_ms", "level_before", "level_after"},
		[]any{data.SessionID, data.Action, data.ProblemsServed, data.CorrectAnswers,
			data.Duration.Milliseconds(), data.LevelBefore, data.LevelAfter},
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionCount(ctx context.Context) (int, error) {
	query, args := builder().Select(entsql.Count("*")).
		From(entsql.Table(SessionEventsTable.Name)).
		Where(entsql.EQ("action", SessionEnd)).
		Query()
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}
