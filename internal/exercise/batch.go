package exercise

import (
	"slices"

	"github.com/abhisek/quickcalc/internal/problemgen"
)

// GenerateBatch returns count independently generated problems. Repeats
// are possible.
func (e *Engine) GenerateBatch(count, level int, weak []problemgen.Operator, learned []string) []problemgen.Problem {
	batch := make([]problemgen.Problem, 0, max(count, 0))
	for i := 0; i < count; i++ {
		batch = append(batch, e.GenerateProblem(level, weak, learned))
	}
	return batch
}

// GenerateDiverseBatch returns a batch in which every technique selected
// internally appears at least once. See GenerateDiverseBatchDetailed.
func (e *Engine) GenerateDiverseBatch(count, level int, learned []string, weak []problemgen.Operator) []problemgen.Problem {
	batch, _ := e.GenerateDiverseBatchDetailed(count, level, learned, weak)
	return batch
}

// GenerateDiverseBatchDetailed builds a batch that covers between
// MinDiverseTechniques and MaxDiverseTechniques of the learned techniques,
// and also returns the slugs it selected for coverage.
//
// With fewer than MinDiverseTechniques resolvable techniques it falls back
// to GenerateBatch and selects nothing. Coverage wins over count: when
// count is smaller than the number of selected techniques the batch holds
// one problem per selected technique.
func (e *Engine) GenerateDiverseBatchDetailed(count, level int, learned []string, weak []problemgen.Operator) ([]problemgen.Problem, []string) {
	known := e.registry.Known(distinct(learned))
	if len(known) < e.cfg.MinDiverseTechniques {
		return e.GenerateBatch(count, level, weak, learned), nil
	}

	shuffled := slices.Clone(known)
	e.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	k := problemgen.IntRange(e.rng, e.cfg.MinDiverseTechniques, min(e.cfg.MaxDiverseTechniques, len(shuffled)))
	selected := shuffled[:k]

	batch := make([]problemgen.Problem, 0, max(count, k))
	for _, slug := range selected {
		p, ok := e.fromTechnique(slug)
		if !ok {
			p = e.fromLevel(level, weak)
		}
		batch = append(batch, p)
	}

	for len(batch) < count {
		if problemgen.Chance(e.rng, e.cfg.FillTechniqueProbability) {
			if p, ok := e.fromTechnique(learned[e.rng.IntN(len(learned))]); ok {
				batch = append(batch, p)
				continue
			}
		}
		batch = append(batch, e.GenerateProblem(level, weak, nil))
	}

	e.rng.Shuffle(len(batch), func(i, j int) {
		batch[i], batch[j] = batch[j], batch[i]
	})
	return batch, selected
}

func distinct(slugs []string) []string {
	seen := make(map[string]bool, len(slugs))
	var out []string
	for _, s := range slugs {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
