// Package exercise decides which problems a learner sees: it biases
// selection toward weak operators and learned techniques and builds
// batches with an optional technique-coverage guarantee.
package exercise

import (
	"errors"
	"log/slog"

	"github.com/abhisek/quickcalc/internal/calibration"
	"github.com/abhisek/quickcalc/internal/problemgen"
	"github.com/abhisek/quickcalc/internal/technique"
)

// Engine generates problems. It is stateless apart from its random source;
// an Engine built on DefaultSource is safe for concurrent use.
type Engine struct {
	cfg      Config
	registry *technique.Registry
	rng      problemgen.Source
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource replaces the process-wide random source, e.g. with a seeded
// one for reproducible output.
func WithSource(r problemgen.Source) Option {
	return func(e *Engine) { e.rng = r }
}

// WithLogger sets the logger used for degraded-path diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an Engine resolving technique slugs through registry.
func New(registry *technique.Registry, cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:      cfg,
		registry: registry,
		rng:      problemgen.DefaultSource(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine's selection policy.
func (e *Engine) Config() Config {
	return e.cfg
}

// GenerateProblem produces one problem for level. With learned techniques
// present it first reinforces one of them with probability
// TechniqueProbability; otherwise it samples an operator from the level's
// pool, narrowed toward weak operators with probability
// WeakOperatorProbability.
func (e *Engine) GenerateProblem(level int, weak []problemgen.Operator, learned []string) problemgen.Problem {
	if len(learned) > 0 && problemgen.Chance(e.rng, e.cfg.TechniqueProbability) {
		slug := learned[e.rng.IntN(len(learned))]
		if p, ok := e.fromTechnique(slug); ok {
			return p
		}
	}
	return e.fromLevel(level, weak)
}

func (e *Engine) fromLevel(level int, weak []problemgen.Operator) problemgen.Problem {
	pool := problemgen.OperatorsFor(calibration.BracketFor(level))
	if len(weak) > 0 {
		if focus := intersect(weak, pool); len(focus) > 0 && problemgen.Chance(e.rng, e.cfg.WeakOperatorProbability) {
			pool = focus
		}
	}
	return problemgen.Synthesize(e.rng, level, pool[e.rng.IntN(len(pool))])
}

// fromTechnique runs a technique's generator. Unknown slugs and generators
// that emit arithmetically inconsistent problems report false so the
// caller can fall back to level synthesis.
func (e *Engine) fromTechnique(slug string) (problemgen.Problem, bool) {
	t, err := e.registry.Lookup(slug)
	if err != nil {
		if errors.Is(err, technique.ErrUnknownTechnique) {
			e.logger.Debug("skipping unknown technique", "slug", slug)
		}
		return problemgen.Problem{}, false
	}

	p := t.Generate(e.rng)
	if verr := problemgen.Validate(p, &problemgen.ArithmeticValidator{}); verr != nil {
		e.logger.Warn("discarding technique problem", "slug", slug, "problem", p.Text(), "error", verr)
		return problemgen.Problem{}, false
	}
	return p, true
}

// intersect returns the distinct operators of weak that are also in pool,
// in weak's order.
func intersect(weak, pool []problemgen.Operator) []problemgen.Operator {
	allowed := make(map[problemgen.Operator]bool, len(pool))
	for _, op := range pool {
		allowed[op] = true
	}
	var out []problemgen.Operator
	for _, op := range weak {
		if allowed[op] {
			out = append(out, op)
			allowed[op] = false
		}
	}
	return out
}
