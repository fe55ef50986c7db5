package exercise

// Config holds the tuning constants of the selection policy. None of them
// are invariants; they are product-tuning values.
type Config struct {
	// TechniqueProbability is the chance that a problem reinforces one of
	// the learner's learned techniques instead of following the level.
	TechniqueProbability float64 `yaml:"technique_probability" validate:"gte=0,lte=1"`

	// WeakOperatorProbability is the chance that the operator pool is
	// narrowed to the learner's weak operators.
	WeakOperatorProbability float64 `yaml:"weak_operator_probability" validate:"gte=0,lte=1"`

	// FillTechniqueProbability is the chance that a diverse-batch filler
	// slot comes from a technique rather than the level selector.
	FillTechniqueProbability float64 `yaml:"fill_technique_probability" validate:"gte=0,lte=1"`

	// MinDiverseTechniques is both the number of learned techniques a
	// diverse batch requires and the fewest techniques it covers.
	MinDiverseTechniques int `yaml:"min_diverse_techniques" validate:"gte=1"`

	// MaxDiverseTechniques is the most techniques a diverse batch covers.
	MaxDiverseTechniques int `yaml:"max_diverse_techniques" validate:"gtefield=MinDiverseTechniques"`

	// ErrorWindow is how many recent error records feed weak-operator ranking.
	ErrorWindow int `yaml:"error_window" validate:"gte=1"`
}

// DefaultConfig returns the standard selection policy.
func DefaultConfig() Config {
	return Config{
		TechniqueProbability:     0.3,
		WeakOperatorProbability:  0.7,
		FillTechniqueProbability: 0.5,
		MinDiverseTechniques:     3,
		MaxDiverseTechniques:     5,
		ErrorWindow:              20,
	}
}
