package technique

import (
	"fmt"
	"math"

	"github.com/abhisek/quickcalc/internal/problemgen"
)

// Decompose splits a problem by place value: the second operand is broken
// into its tens part and its ones part. Decimal problems, division and
// operands below ten get a single step.
func Decompose(p problemgen.Problem) []StrategyStep {
	a, b := p.Operand1, p.Operand2
	single := []StrategyStep{{Prompt: p.Text(), Answer: p.CorrectAnswer}}

	if !whole(a) || !whole(b) || b < 10 || math.Mod(b, 10) == 0 {
		return single
	}
	ones := math.Mod(b, 10)
	tens := b - ones

	switch p.Operator {
	case problemgen.OpAdd:
		first := a + tens
		return []StrategyStep{
			{Prompt: expr(a, "+", tens), Answer: first, Hint: "Add the tens first."},
			{Prompt: expr(first, "+", ones), Answer: p.CorrectAnswer, Hint: "Now add the ones."},
		}
	case problemgen.OpSub:
		first := a - tens
		return []StrategyStep{
			{Prompt: expr(a, "-", tens), Answer: first, Hint: "Take away the tens first."},
			{Prompt: expr(first, "-", ones), Answer: p.CorrectAnswer, Hint: "Now take away the ones."},
		}
	case problemgen.OpMul:
		left, right := a*tens, a*ones
		return []StrategyStep{
			{Prompt: expr(a, "×", tens), Answer: left, Hint: fmt.Sprintf("Multiply by %s, then add a zero.", num(tens/10))},
			{Prompt: expr(a, "×", ones), Answer: right, Hint: "Multiply by the ones digit."},
			{Prompt: expr(left, "+", right), Answer: p.CorrectAnswer, Hint: "Add the two partial products."},
		}
	}
	return single
}

func expr(a float64, op string, b float64) string {
	return num(a) + " " + op + " " + num(b)
}

func num(x float64) string {
	return problemgen.FormatNumber(x)
}

func whole(x float64) bool {
	return x == math.Trunc(x)
}
