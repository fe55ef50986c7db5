package lessons

import (
	"fmt"

	"github.com/abhisek/quickcalc/internal/problemgen"
	"github.com/abhisek/quickcalc/internal/scaffold"
	"github.com/abhisek/quickcalc/internal/technique"
)

// DefaultExercisesPerPhase is the number of solved problems that move a
// lesson to its next phase.
const DefaultExercisesPerPhase = 2

// FlowPhase is a stage of a lesson.
type FlowPhase int

const (
	PhaseGuided     FlowPhase = iota // Every step, hints on demand
	PhaseSemiGuided                  // First step pre-solved
	PhaseFree                        // Final answer only, generated problems
	PhaseComplete
)

func (p FlowPhase) String() string {
	switch p {
	case PhaseGuided:
		return "guided"
	case PhaseSemiGuided:
		return "semi-guided"
	case PhaseFree:
		return "free"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("FlowPhase(%d)", int(p))
	}
}

// Flow walks a learner through one lesson. It is not safe for concurrent
// use.
type Flow struct {
	lesson    Lesson
	technique technique.Technique
	rng       problemgen.Source
	perPhase  int

	phase  FlowPhase
	solved int
	served int
}

// Flow starts the lesson for slug. perPhase values below one use
// DefaultExercisesPerPhase.
func (c *Catalog) Flow(slug string, perPhase int, r problemgen.Source) (*Flow, error) {
	if c.registry == nil {
		return nil, ErrUnbound
	}
	lesson, err := c.Lesson(slug)
	if err != nil {
		return nil, err
	}
	t, err := c.registry.Lookup(slug)
	if err != nil {
		return nil, err
	}
	if perPhase < 1 {
		perPhase = DefaultExercisesPerPhase
	}
	if r == nil {
		r = problemgen.DefaultSource()
	}
	return &Flow{lesson: lesson, technique: t, rng: r, perPhase: perPhase}, nil
}

// Lesson returns the lesson being taught.
func (f *Flow) Lesson() Lesson {
	return f.lesson
}

// Phase returns the current phase.
func (f *Flow) Phase() FlowPhase {
	return f.phase
}

// Complete reports whether every phase is finished.
func (f *Flow) Complete() bool {
	return f.phase == PhaseComplete
}

// HintLevel returns the scaffold hint level for the current phase.
func (f *Flow) HintLevel() scaffold.HintLevel {
	switch f.phase {
	case PhaseGuided:
		return scaffold.HintFull
	case PhaseSemiGuided:
		return scaffold.HintPartial
	default:
		return scaffold.HintNone
	}
}

// Next returns the next exercise. Guided and semi-guided phases cycle
// through the authored exercises; the free phase draws from the
// technique's generator and carries no narrative hints.
func (f *Flow) Next() Exercise {
	if f.phase >= PhaseFree {
		return Exercise{Problem: f.technique.Generate(f.rng)}
	}
	authored := f.lesson.Exercises
	offset := int(f.phase) * f.perPhase
	ex := authored[(offset+f.served)%len(authored)]
	f.served++
	return ex
}

// Start builds the scaffold for ex at the current phase's hint level.
func (f *Flow) Start(ex Exercise) scaffold.State {
	return scaffold.Start(ex.Problem, f.Steps(ex), f.HintLevel())
}

// Steps returns the strategy steps for ex.
func (f *Flow) Steps(ex Exercise) []technique.StrategyStep {
	if f.technique.Steps != nil {
		return f.technique.Steps(ex.Problem)
	}
	return technique.Decompose(ex.Problem)
}

// NarrativeHint returns the authored hint matching the current phase.
func (f *Flow) NarrativeHint(ex Exercise) string {
	switch f.phase {
	case PhaseGuided:
		return ex.FullHint
	case PhaseSemiGuided:
		return ex.PartialHint
	default:
		return ""
	}
}

// Walkthrough returns the authored step-by-step narrative for ex. Only
// the guided phase shows it; semi-guided and free phases return nil.
func (f *Flow) Walkthrough(ex Exercise) []string {
	if f.HintLevel() != scaffold.HintFull {
		return nil
	}
	return ex.StepByStep
}

// Record notes the outcome of the last exercise and moves to the next
// phase after enough solved problems.
func (f *Flow) Record(solved bool) {
	if f.Complete() || !solved {
		return
	}
	f.solved++
	if f.solved >= f.perPhase {
		f.phase++
		f.solved = 0
		f.served = 0
	}
}
