package diagnosis

// Classifier is one diagnosis rule. Classify reports a category with a
// confidence in [0, 1], or ("", 0) when the rule does not match.
type Classifier interface {
	Name() string
	Classify(input *ClassifyInput) (ErrorCategory, float64)
}

// DefaultClassifiers returns the rules in priority order: speed-rush, then
// careless.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&SpeedRushClassifier{},
		&CarelessClassifier{},
	}
}

// Classify runs classifiers in order and returns the first match. A miss
// no rule explains is a knowledge gap.
func Classify(classifiers []Classifier, input *ClassifyInput) DiagnosisResult {
	for _, c := range classifiers {
		cat, conf := c.Classify(input)
		if cat != "" {
			return DiagnosisResult{Category: cat, Confidence: conf, ClassifierName: c.Name()}
		}
	}
	return DiagnosisResult{Category: CategoryGap, Confidence: 0.5, ClassifierName: "default"}
}
