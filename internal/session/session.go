// Package session runs a practice session: it builds a batch of problems
// for the learner's level, weak operators and learned techniques, grades
// answers, and computes the level the learner moves to.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quickcalc/internal/diagnosis"
	"github.com/abhisek/quickcalc/internal/exercise"
	"github.com/abhisek/quickcalc/internal/problemgen"
	"github.com/abhisek/quickcalc/internal/store"
)

// DefaultProblemCount is the number of problems in a session.
const DefaultProblemCount = 10

// Options configures a session.
type Options struct {
	ProblemCount int

	// Diverse requests a technique-coverage batch when enough techniques
	// have been learned.
	Diverse bool

	// PriorAccuracy is the learner's historical accuracy per operator
	// (0.0-1.0), used to classify misses on operators not yet seen in
	// this session.
	PriorAccuracy map[problemgen.Operator]float64

	// Classifiers override diagnosis.DefaultClassifiers.
	Classifiers []diagnosis.Classifier
}

// Result is the graded outcome of one answer.
type Result struct {
	Problem       problemgen.Problem
	LearnerAnswer float64
	Correct       bool
	Elapsed       time.Duration

	// Diagnosis is set for wrong answers.
	Diagnosis *diagnosis.DiagnosisResult
}

type opTally struct {
	attempts, correct int
}

// Session is a single practice run. It is not safe for concurrent use.
type Session struct {
	ID string

	levelBefore int
	weak        []problemgen.Operator
	selected    []string
	problems    []problemgen.Problem
	results     []Result

	classifiers []diagnosis.Classifier
	prior       map[problemgen.Operator]float64
	tally       map[problemgen.Operator]*opTally
	started     time.Time
}

// New builds a session for profile. recentErrors are most-recent-first;
// only the engine's error window of them is ranked.
func New(engine *exercise.Engine, profile store.Profile, recentErrors []diagnosis.ErrorRecord, opts Options) *Session {
	if opts.ProblemCount <= 0 {
		opts.ProblemCount = DefaultProblemCount
	}
	classifiers := opts.Classifiers
	if classifiers == nil {
		classifiers = diagnosis.DefaultClassifiers()
	}

	s := &Session{
		ID:          uuid.NewString(),
		levelBefore: profile.Level,
		weak:        diagnosis.RankWeakOperators(diagnosis.RecentWindow(recentErrors, engine.Config().ErrorWindow)),
		classifiers: classifiers,
		prior:       opts.PriorAccuracy,
		tally:       make(map[problemgen.Operator]*opTally),
		started:     time.Now(),
	}

	if opts.Diverse {
		s.problems, s.selected = engine.GenerateDiverseBatchDetailed(opts.ProblemCount, profile.Level, profile.Learned, s.weak)
	} else {
		s.problems = engine.GenerateBatch(opts.ProblemCount, profile.Level, s.weak, profile.Learned)
	}
	return s
}

// Problems returns the full batch.
func (s *Session) Problems() []problemgen.Problem {
	return s.problems
}

// WeakOperators returns the ranked weak operators the batch was biased
// toward.
func (s *Session) WeakOperators() []problemgen.Operator {
	return s.weak
}

// SelectedTechniques returns the techniques a diverse batch guarantees.
func (s *Session) SelectedTechniques() []string {
	return s.selected
}

// Done reports whether every problem has been answered.
func (s *Session) Done() bool {
	return len(s.results) >= len(s.problems)
}

// Position returns the 1-based index of the current problem and the total.
func (s *Session) Position() (int, int) {
	return len(s.results) + 1, len(s.problems)
}

// Current returns the problem awaiting an answer.
func (s *Session) Current() (problemgen.Problem, bool) {
	if s.Done() {
		return problemgen.Problem{}, false
	}
	return s.problems[len(s.results)], true
}

// Submit grades value against the current problem and moves on. It
// returns false once the session is done.
func (s *Session) Submit(value float64, elapsed time.Duration) (Result, bool) {
	p, ok := s.Current()
	if !ok {
		return Result{}, false
	}

	r := Result{
		Problem:       p,
		LearnerAnswer: value,
		Correct:       problemgen.CheckAnswer(p, value),
		Elapsed:       elapsed,
	}
	if !r.Correct {
		diag := diagnosis.Classify(s.classifiers, &diagnosis.ClassifyInput{
			Problem:          p,
			LearnerAnswer:    value,
			ResponseTimeMs:   int(elapsed.Milliseconds()),
			OperatorAccuracy: s.operatorAccuracy(p.Operator),
		})
		r.Diagnosis = &diag
	}

	t := s.tally[p.Operator]
	if t == nil {
		t = &opTally{}
		s.tally[p.Operator] = t
	}
	t.attempts++
	if r.Correct {
		t.correct++
	}

	s.results = append(s.results, r)
	return r, true
}

// Results returns the graded answers so far.
func (s *Session) Results() []Result {
	return s.results
}

// operatorAccuracy prefers this session's record on op and falls back to
// the learner's history.
func (s *Session) operatorAccuracy(op problemgen.Operator) float64 {
	if t := s.tally[op]; t != nil && t.attempts > 0 {
		return float64(t.correct) / float64(t.attempts)
	}
	return s.prior[op]
}
