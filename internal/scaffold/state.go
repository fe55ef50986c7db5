// Package scaffold drives a single problem through its strategy steps,
// validating each intermediate answer before the final one is accepted.
package scaffold

import (
	"fmt"

	"github.com/abhisek/quickcalc/internal/problemgen"
	"github.com/abhisek/quickcalc/internal/technique"
)

// HintLevel controls how much of the step sequence is revealed up front.
type HintLevel string

const (
	HintFull    HintLevel = "full"
	HintPartial HintLevel = "partial"
	HintNone    HintLevel = "none"
)

// Phase is the position of a problem in the scaffold.
type Phase int

const (
	PhaseStep  Phase = iota // Answering StrategyStep Index
	PhaseFinal              // Answering the problem itself
	PhaseDone               // Solved; further submissions are ignored
)

func (p Phase) String() string {
	switch p {
	case PhaseStep:
		return "step"
	case PhaseFinal:
		return "final"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is the scaffold position for one problem. It is a value: every
// transition returns a new State and the previous one stays valid.
type State struct {
	Problem   problemgen.Problem
	Steps     []technique.StrategyStep
	HintLevel HintLevel

	Phase Phase

	// Index is the active step while Phase is PhaseStep. Steps before it
	// have been solved or were pre-solved.
	Index int

	// Attempts counts consecutive misses at the current step or at the
	// final answer.
	Attempts int

	// UpfrontHint is set for partial scaffolds: step 0's answer, shown
	// before the learner submits anything.
	UpfrontHint string

	// HintRevealed is true once the active step's authored hint has been
	// surfaced.
	HintRevealed bool
}

// Start builds the initial state for problem. The step slice is shared,
// not copied; callers must not modify it afterwards.
func Start(problem problemgen.Problem, steps []technique.StrategyStep, level HintLevel) State {
	s := State{Problem: problem, Steps: steps, HintLevel: level}

	switch {
	case len(steps) == 0 || level == HintNone:
		s.Phase = PhaseFinal
	case level == HintPartial:
		// With a single step, pre-solving step 0 would hand over the
		// final answer itself.
		if len(steps) < 2 {
			s.Phase = PhaseFinal
			break
		}
		first := steps[0]
		s.UpfrontHint = fmt.Sprintf("%s = %s", first.Prompt, problemgen.FormatNumber(first.Answer))
		s.Phase = PhaseStep
		s.Index = 1
	default:
		s.Phase = PhaseStep
	}
	return s
}

// Done reports whether the problem has been solved.
func (s State) Done() bool {
	return s.Phase == PhaseDone
}

// ActiveStep returns the step awaiting an answer, if any.
func (s State) ActiveStep() (technique.StrategyStep, bool) {
	if s.Phase != PhaseStep || s.Index >= len(s.Steps) {
		return technique.StrategyStep{}, false
	}
	return s.Steps[s.Index], true
}

// RevealedSteps returns the steps whose answers the learner can see.
func (s State) RevealedSteps() []technique.StrategyStep {
	switch s.Phase {
	case PhaseStep:
		return s.Steps[:s.Index]
	case PhaseFinal, PhaseDone:
		if s.HintLevel == HintNone {
			return nil
		}
		return s.Steps
	}
	return nil
}

// VisibleHint returns the hint currently on screen: the active step's
// authored hint once revealed, otherwise the upfront hint of a partial
// scaffold.
func (s State) VisibleHint() string {
	if step, ok := s.ActiveStep(); ok && s.HintRevealed {
		return step.Hint
	}
	if s.Phase == PhaseStep {
		return s.UpfrontHint
	}
	return ""
}

// RequestHint reveals the active step's hint on demand. Only full
// scaffolds hand out hints before the learner has missed the step.
func (s State) RequestHint() (State, string) {
	step, ok := s.ActiveStep()
	if !ok || s.HintLevel != HintFull || step.Hint == "" {
		return s, ""
	}
	s.HintRevealed = true
	return s, step.Hint
}
