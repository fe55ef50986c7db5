// Package technique holds the named mental-math strategies a learner can be
// taught, each with its own problem generator and step builder.
package technique

import "github.com/abhisek/quickcalc/internal/problemgen"

// StrategyStep is one intermediate checkpoint on the way to a problem's
// final answer.
type StrategyStep struct {
	Prompt string  `json:"prompt"`
	Answer float64 `json:"answer"`
	Hint   string  `json:"hint,omitempty"`
}

// Generator produces problems that exercise a single technique.
type Generator interface {
	Generate(r problemgen.Source) problemgen.Problem
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(r problemgen.Source) problemgen.Problem

func (f GeneratorFunc) Generate(r problemgen.Source) problemgen.Problem {
	return f(r)
}

// StepBuilder derives the ordered steps for a problem. It must be
// deterministic: the same problem always yields the same steps.
type StepBuilder func(p problemgen.Problem) []StrategyStep

// Technique is a named strategy with its generator and step builder.
type Technique struct {
	Slug    string
	Name    string
	Summary string

	Generator Generator
	Steps     StepBuilder
}

// Generate produces a problem tagged with the technique's slug.
func (t Technique) Generate(r problemgen.Source) problemgen.Problem {
	return t.Generator.Generate(r).WithTechnique(t.Slug)
}
