package problemgen

import (
	"fmt"
	"math"
	"strconv"
)

// Operator is one of the four basic arithmetic operators.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "×"
	OpDiv Operator = "÷"
)

// AllOperators returns the four operators in display order.
func AllOperators() []Operator {
	return []Operator{OpAdd, OpSub, OpMul, OpDiv}
}

// Valid reports whether o is one of the four known operators.
func (o Operator) Valid() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// ParseOperator accepts the canonical symbols and their common ASCII and
// typographic aliases ("*", "x", "/", "−").
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "+":
		return OpAdd, nil
	case "-", "−":
		return OpSub, nil
	case "×", "*", "x", "X":
		return OpMul, nil
	case "÷", "/":
		return OpDiv, nil
	}
	return "", fmt.Errorf("unknown operator %q", s)
}

// Apply evaluates a op b without rounding.
func Apply(op Operator, a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	}
	return math.NaN()
}

// Round2 rounds x to two decimal places, half away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Problem is a single arithmetic exercise. Problems are immutable values.
type Problem struct {
	Operand1 float64  `json:"operand1"`
	Operand2 float64  `json:"operand2"`
	Operator Operator `json:"operator"`

	// CorrectAnswer is Operator applied to the operands, rounded to 2 decimals.
	CorrectAnswer float64 `json:"correct_answer"`

	// TechniqueTag is the slug of the technique whose generator produced
	// this problem. Empty for level-synthesized problems.
	TechniqueTag string `json:"technique_tag,omitempty"`
}

// NewProblem builds a Problem and computes its correct answer.
func NewProblem(a, b float64, op Operator) Problem {
	return Problem{
		Operand1:      a,
		Operand2:      b,
		Operator:      op,
		CorrectAnswer: Round2(Apply(op, a, b)),
	}
}

// WithTechnique returns a copy of p tagged with a technique slug.
func (p Problem) WithTechnique(slug string) Problem {
	p.TechniqueTag = slug
	return p
}

// Tagged reports whether the problem came from a technique generator.
func (p Problem) Tagged() bool {
	return p.TechniqueTag != ""
}

// Text renders the problem as shown to the learner, e.g. "47 + 12".
func (p Problem) Text() string {
	return FormatNumber(p.Operand1) + " " + string(p.Operator) + " " + FormatNumber(p.Operand2)
}

// FormatNumber prints n with the fewest digits needed (no trailing zeros).
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
