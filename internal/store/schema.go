package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Every event table starts with the same three columns: id, the global
// sequence number and a unix-millisecond timestamp.
func eventColumns(cols ...*schema.Column) []*schema.Column {
	return append([]*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeInt64},
	}, cols...)
}

var (
	// ProfileColumns holds the single learner profile row.
	ProfileColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "updated_at", Type: field.TypeInt64},
	}
	ProfileTable = &schema.Table{
		Name:       "profile",
		Columns:    ProfileColumns,
		PrimaryKey: []*schema.Column{ProfileColumns[0]},
	}

	// LearnedTechniquesColumns holds one row per technique the learner
	// has completed a lesson for.
	LearnedTechniquesColumns = []*schema.Column{
		{Name: "slug", Type: field.TypeString},
		{Name: "learned_at", Type: field.TypeInt64},
	}
	LearnedTechniquesTable = &schema.Table{
		Name:       "learned_techniques",
		Columns:    LearnedTechniquesColumns,
		PrimaryKey: []*schema.Column{LearnedTechniquesColumns[0]},
	}

	AnswerEventsColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "operand1", Type: field.TypeFloat64},
		&schema.Column{Name: "operand2", Type: field.TypeFloat64},
		&schema.Column{Name: "operator", Type: field.TypeString},
		&schema.Column{Name: "technique", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "correct_answer", Type: field.TypeFloat64},
		&schema.Column{Name: "learner_answer", Type: field.TypeFloat64},
		&schema.Column{Name: "correct", Type: field.TypeBool},
		&schema.Column{Name: "time_ms", Type: field.TypeInt},
		&schema.Column{Name: "category", Type: field.TypeString, Default: ""},
	)
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "answerevent_session_id", Columns: []*schema.Column{AnswerEventsColumns[3]}},
			{Name: "answerevent_operator", Columns: []*schema.Column{AnswerEventsColumns[6]}},
			{Name: "answerevent_correct", Columns: []*schema.Column{AnswerEventsColumns[10]}},
		},
	}

	SessionEventsColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "action", Type: field.TypeString},
		&schema.Column{Name: "problems_served", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		&schema.Column{Name: "level_before", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "level_after", Type: field.TypeInt, Default: 0},
	)
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "sessionevent_session_id", Columns: []*schema.Column{SessionEventsColumns[3]}},
		},
	}

	LessonEventsColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "slug", Type: field.TypeString},
		&schema.Column{Name: "phase", Type: field.TypeString},
		&schema.Column{Name: "attempts", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "hints_shown", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "solved", Type: field.TypeBool},
	)
	LessonEventsTable = &schema.Table{
		Name:       "lesson_events",
		Columns:    LessonEventsColumns,
		PrimaryKey: []*schema.Column{LessonEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "lessonevent_slug", Columns: []*schema.Column{LessonEventsColumns[4]}},
		},
	}

	HintEventsColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "problem_text", Type: field.TypeString},
		&schema.Column{Name: "step_prompt", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "hint_text", Type: field.TypeString},
	)
	HintEventsTable = &schema.Table{
		Name:       "hint_events",
		Columns:    HintEventsColumns,
		PrimaryKey: []*schema.Column{HintEventsColumns[0]},
	}

	// Tables lists every table the store manages.
	Tables = []*schema.Table{
		ProfileTable,
		LearnedTechniquesTable,
		AnswerEventsTable,
		SessionEventsTable,
		LessonEventsTable,
		HintEventsTable,
	}
)
