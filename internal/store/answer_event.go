package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/quickcalc/internal/diagnosis"
	"github.com/abhisek/quickcalc/internal/problemgen"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	p := data.Problem
	_, err := r.insertEvent(ctx, AnswerEventsTable.Name,
		[]string{"session_id", "operand1", "operand2", "operator", "technique",
			"correct_answer", "learner_answer", "correct", "time_ms", "category"},
		[]any{data.SessionID, p.Operand1, p.Operand2, string(p.Operator), p.TechniqueTag,
			p.CorrectAnswer, data.LearnerAnswer, data.Correct, data.TimeMs, string(data.Category)},
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentErrors(ctx context.Context, limit int) ([]diagnosis.ErrorRecord, error) {
	sel := builder().Select("operator").
		From(entsql.Table(AnswerEventsTable.Name)).
		Where(entsql.EQ("correct", false)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent errors: %w", err)
	}
	defer rows.Close()

	var records []diagnosis.ErrorRecord
	for rows.Next() {
		var op string
		if err := rows.Scan(&op); err != nil {
			return nil, fmt.Errorf("scan recent error: %w", err)
		}
		records = append(records, diagnosis.ErrorRecord{Operator: problemgen.Operator(op)})
	}
	return records, rows.Err()
}

func (r *eventRepo) OperatorAccuracy(ctx context.Context, op problemgen.Operator) (float64, error) {
	query, args := builder().Select(entsql.Count("*"), "COALESCE(SUM(correct), 0)").
		From(entsql.Table(AnswerEventsTable.Name)).
		Where(entsql.EQ("operator", string(op))).
		Query()

	var total, correct int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total, &correct); err != nil {
		return 0, fmt.Errorf("query operator accuracy: %w", err)
	}
	if total == 0 {
		return 0, nil
	}
	return float64(correct) / float64(total), nil
}
