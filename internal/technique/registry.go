package technique

import (
	"errors"
	"fmt"
	"sort"

	"github.com/abhisek/quickcalc/internal/problemgen"
)

// ErrUnknownTechnique is returned when a slug has no registered technique.
var ErrUnknownTechnique = errors.New("unknown technique")

// Registry maps technique slugs to techniques. A Registry is read-only
// after construction and safe for concurrent lookups.
type Registry struct {
	bySlug map[string]Technique
}

// NewRegistry builds a registry from techniques. Duplicate or empty slugs
// and techniques without a generator are rejected.
func NewRegistry(techniques ...Technique) (*Registry, error) {
	r := &Registry{bySlug: make(map[string]Technique, len(techniques))}
	for _, t := range techniques {
		if err := r.register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) register(t Technique) error {
	if t.Slug == "" {
		return fmt.Errorf("technique %q has an empty slug", t.Name)
	}
	if t.Generator == nil {
		return fmt.Errorf("technique %q has no generator", t.Slug)
	}
	if _, dup := r.bySlug[t.Slug]; dup {
		return fmt.Errorf("duplicate technique %q", t.Slug)
	}
	r.bySlug[t.Slug] = t
	return nil
}

// Lookup returns the technique for slug, or an error wrapping
// ErrUnknownTechnique.
func (r *Registry) Lookup(slug string) (Technique, error) {
	if r != nil {
		if t, ok := r.bySlug[slug]; ok {
			return t, nil
		}
	}
	return Technique{}, fmt.Errorf("%w: %q", ErrUnknownTechnique, slug)
}

// Slugs returns all registered slugs in alphabetical order.
func (r *Registry) Slugs() []string {
	if r == nil {
		return nil
	}
	slugs := make([]string, 0, len(r.bySlug))
	for s := range r.bySlug {
		slugs = append(slugs, s)
	}
	sort.Strings(slugs)
	return slugs
}

// All returns every technique ordered by slug.
func (r *Registry) All() []Technique {
	var out []Technique
	for _, s := range r.Slugs() {
		out = append(out, r.bySlug[s])
	}
	return out
}

// Known filters slugs down to those present in the registry, preserving order.
func (r *Registry) Known(slugs []string) []string {
	var out []string
	for _, s := range slugs {
		if _, err := r.Lookup(s); err == nil {
			out = append(out, s)
		}
	}
	return out
}

// BuildStrategySteps returns the step plan for p. Problems tagged with a
// registered technique use that technique's builder; everything else gets
// the generic place-value decomposition.
func BuildStrategySteps(r *Registry, p problemgen.Problem) []StrategyStep {
	if p.Tagged() {
		if t, err := r.Lookup(p.TechniqueTag); err == nil && t.Steps != nil {
			return t.Steps(p)
		}
	}
	return Decompose(p)
}
