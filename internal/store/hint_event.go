package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendHintEvent(ctx context.Context, data HintEventData) error {
	_, err := r.insertEvent(ctx, HintEventsTable.Name,
		[]string{"session_id", "problem_text", "step_prompt", "hint_text"},
		[]any{data.SessionID, data.ProblemText, data.StepPrompt, data.HintText},
	)
	if err != nil {
		return fmt.Errorf("save hint event: %w", err)
	}
	return nil
}
