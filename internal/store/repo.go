package store

import (
	"context"
	"time"

	"github.com/abhisek/quickcalc/internal/diagnosis"
	"github.com/abhisek/quickcalc/internal/problemgen"
)

// Profile is the learner's persisted state.
type Profile struct {
	Level     int
	Learned   []string // Technique slugs, in the order they were learned
	UpdatedAt time.Time
}

// ProfileRepo reads and writes the learner profile.
type ProfileRepo interface {
	// Load returns the profile. A fresh database yields level 1 and no
	// learned techniques.
	Load(ctx context.Context) (Profile, error)

	// SaveLevel stores the learner's level, clamped to the valid range.
	SaveLevel(ctx context.Context, level int) error

	// LearnTechnique marks slug as learned. Learning it again is a no-op.
	LearnTechnique(ctx context.Context, slug string) error

	// LearnedTechniques returns learned slugs in the order they were learned.
	LearnedTechniques(ctx context.Context) ([]string, error)
}

// AnswerEventData captures one answered practice problem.
type AnswerEventData struct {
	SessionID     string
	Problem       problemgen.Problem
	LearnerAnswer float64
	Correct       bool
	TimeMs        int
	Category      diagnosis.ErrorCategory // Empty for correct answers
}

// SessionEventData captures the start or end of a practice session.
type SessionEventData struct {
	SessionID      string
	Action         string // "start" or "end"
	ProblemsServed int
	CorrectAnswers int
	Duration       time.Duration
	LevelBefore    int
	LevelAfter     int
}

// LessonEventData captures one scaffolded lesson exercise.
type LessonEventData struct {
	SessionID  string
	Slug       string
	Phase      string
	Attempts   int
	HintsShown int
	Solved     bool
}

// HintEventData captures a hint surfaced during a lesson.
type HintEventData struct {
	SessionID   string
	ProblemText string
	StepPrompt  string
	HintText    string
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendAnswerEvent records an answered problem.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// RecentErrors returns up to limit wrong answers, most recent first.
	RecentErrors(ctx context.Context, limit int) ([]diagnosis.ErrorRecord, error)

	// OperatorAccuracy returns the fraction of correct answers for op
	// (0.0-1.0), or 0 if it has never been answered.
	OperatorAccuracy(ctx context.Context, op problemgen.Operator) (float64, error)

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// SessionCount returns the number of completed sessions.
	SessionCount(ctx context.Context) (int, error)

	// AppendLessonEvent records a lesson exercise outcome.
	AppendLessonEvent(ctx context.Context, data LessonEventData) error

	// AppendHintEvent records a surfaced hint.
	AppendHintEvent(ctx context.Context, data HintEventData) error
}
