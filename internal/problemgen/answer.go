package problemgen

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Epsilon is the tolerance used when comparing a submitted value with an
// expected one. It absorbs float noise in decimal input while rejecting
// any answer off by a hundredth or more.
const Epsilon = 0.001

// ApproxEqual reports whether a and b differ by less than Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// CheckAnswer reports whether candidate is the correct answer to p.
func CheckAnswer(p Problem, candidate float64) bool {
	return ApproxEqual(candidate, p.CorrectAnswer)
}

// ParseAnswer converts raw learner input to a number.
//
// Normalization rules:
// - Whitespace is trimmed
// - Thousands separators ("1,250") and a leading "+" are ignored
// - A single comma with 1-2 trailing digits is read as a decimal point ("3,5")
// - Empty or non-numeric input is an error
func ParseAnswer(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return 0, fmt.Errorf("empty answer")
	}

	if i := strings.LastIndex(s, ","); i >= 0 && !strings.Contains(s, ".") &&
		strings.Count(s, ",") == 1 && len(s)-i-1 <= 2 {
		s = s[:i] + "." + s[i+1:]
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	return f, nil
}
