package scaffold

import (
	"github.com/abhisek/quickcalc/internal/problemgen"
)

// DefaultHintAfterFailures is the number of consecutive misses on a step
// after which its hint is surfaced.
const DefaultHintAfterFailures = 2

// Options configures a Protocol.
type Options struct {
	HintAfterFailures int
	Source            problemgen.Source
}

// DefaultOptions returns the production settings.
func DefaultOptions() Options {
	return Options{
		HintAfterFailures: DefaultHintAfterFailures,
		Source:            problemgen.DefaultSource(),
	}
}

// Feedback describes the outcome of one submission.
type Feedback struct {
	Correct bool

	// Advanced is true when the submission moved the state forward.
	Advanced bool

	// Hint is the authored step hint surfaced by this submission, if any.
	Hint string

	// Affirmation is set when the final answer is accepted.
	Affirmation string

	// Ignored is true when the problem was already solved.
	Ignored bool
}

// Protocol validates submissions against a scaffold State.
type Protocol struct {
	opts Options
}

// NewProtocol creates a Protocol. Zero-valued options fall back to
// DefaultOptions.
func NewProtocol(opts Options) *Protocol {
	def := DefaultOptions()
	if opts.HintAfterFailures <= 0 {
		opts.HintAfterFailures = def.HintAfterFailures
	}
	if opts.Source == nil {
		opts.Source = def.Source
	}
	return &Protocol{opts: opts}
}

// Advance applies a submitted value to s and returns the next state.
func (p *Protocol) Advance(s State, value float64) (State, Feedback) {
	switch s.Phase {
	case PhaseStep:
		return p.advanceStep(s, value)
	case PhaseFinal:
		return p.advanceFinal(s, value)
	default:
		return s, Feedback{Correct: true, Ignored: true}
	}
}

func (p *Protocol) advanceStep(s State, value float64) (State, Feedback) {
	step, ok := s.ActiveStep()
	if !ok {
		s.Phase = PhaseFinal
		return p.advanceFinal(s, value)
	}

	if problemgen.ApproxEqual(value, step.Answer) {
		s.Index++
		s.Attempts = 0
		s.HintRevealed = false
		if s.Index >= len(s.Steps) {
			s.Phase = PhaseFinal
		}
		return s, Feedback{Correct: true, Advanced: true}
	}

	s.Attempts++
	var fb Feedback
	if s.Attempts >= p.opts.HintAfterFailures && step.Hint != "" {
		s.HintRevealed = true
		fb.Hint = step.Hint
	}
	return s, fb
}

func (p *Protocol) advanceFinal(s State, value float64) (State, Feedback) {
	if !problemgen.CheckAnswer(s.Problem, value) {
		s.Attempts++
		return s, Feedback{}
	}
	s.Phase = PhaseDone
	s.Attempts = 0
	return s, Feedback{
		Correct:     true,
		Advanced:    true,
		Affirmation: p.affirm(s.HintLevel),
	}
}

func (p *Protocol) affirm(level HintLevel) string {
	pool, ok := affirmations[level]
	if !ok {
		pool = affirmations[HintFull]
	}
	return pool[p.opts.Source.IntN(len(pool))]
}
