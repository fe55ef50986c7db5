package technique

import (
	"fmt"

	"github.com/abhisek/quickcalc/internal/problemgen"
)

// Built-in technique slugs.
const (
	MultiplyBy11         = "multiply-by-11"
	SquareEndingIn5      = "square-ending-in-5"
	MultiplyBy5          = "multiply-by-5"
	AddNearHundred       = "add-near-hundred"
	SubtractFromThousand = "subtract-from-thousand"
	MultiplyBy9          = "multiply-by-9"
	DoubleAndHalve       = "double-and-halve"
)

// Builtin returns the techniques shipped with the product.
func Builtin() []Technique {
	return []Technique{
		{
			Slug:    MultiplyBy11,
			Name:    "Multiply by 11",
			Summary: "Split the digits and put their sum in the middle.",
			Generator: GeneratorFunc(func(r problemgen.Source) problemgen.Problem {
				return problemgen.NewProblem(float64(problemgen.IntRange(r, 12, 99)), 11, problemgen.OpMul)
			}),
			Steps: multiplyBy11Steps,
		},
		{
			Slug:    SquareEndingIn5,
			Name:    "Squares ending in 5",
			Summary: "n5 × n5 is n × (n+1) followed by 25.",
			Generator: GeneratorFunc(func(r problemgen.Source) problemgen.Problem {
				x := float64(10*problemgen.IntRange(r, 1, 9) + 5)
				return problemgen.NewProblem(x, x, problemgen.OpMul)
			}),
			Steps: squareEndingIn5Steps,
		},
		{
			Slug:    MultiplyBy5,
			Name:    "Multiply by 5",
			Summary: "Multiply by 10, then halve.",
			Generator: GeneratorFunc(func(r problemgen.Source) problemgen.Problem {
				return problemgen.NewProblem(float64(problemgen.IntRange(r, 12, 198)), 5, problemgen.OpMul)
			}),
			Steps: multiplyBy5Steps,
		},
		{
			Slug:    AddNearHundred,
			Name:    "Add a number near a hundred",
			Summary: "Add the round hundred, then take back the difference.",
			Generator: GeneratorFunc(func(r problemgen.Source) problemgen.Problem {
				a := problemgen.IntRange(r, 20, 899)
				b := 100*problemgen.IntRange(r, 1, 4) - problemgen.IntRange(r, 1, 3)
				return problemgen.NewProblem(float64(a), float64(b), problemgen.OpAdd)
			}),
			Steps: addNearHundredSteps,
		},
		{
			Slug:    SubtractFromThousand,
			Name:    "Subtract from 1000",
			Summary: "Subtract from 999 digit by digit, then add 1.",
			Generator: GeneratorFunc(func(r problemgen.Source) problemgen.Problem {
				return problemgen.NewProblem(1000, float64(problemgen.IntRange(r, 101, 999)), problemgen.OpSub)
			}),
			Steps: subtractFromThousandSteps,
		},
		{
			Slug:    MultiplyBy9,
			Name:    "Multiply by 9",
			Summary: "Multiply by 10, then subtract the number once.",
			Generator: GeneratorFunc(func(r problemgen.Source) problemgen.Problem {
				return problemgen.NewProblem(float64(problemgen.IntRange(r, 12, 99)), 9, problemgen.OpMul)
			}),
			Steps: multiplyBy9Steps,
		},
		{
			Slug:    DoubleAndHalve,
			Name:    "Double and halve",
			Summary: "Halve one factor and double the other until the product is easy.",
			Generator: GeneratorFunc(func(r problemgen.Source) problemgen.Problem {
				a := 4 * problemgen.IntRange(r, 2, 12)
				b := 10*problemgen.IntRange(r, 1, 4) + 5
				return problemgen.NewProblem(float64(a), float64(b), problemgen.OpMul)
			}),
			Steps: doubleAndHalveSteps,
		},
	}
}

// DefaultRegistry returns a registry of the built-in techniques.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(Builtin()...)
	if err != nil {
		// Built-in slugs are constants; a failure here is a programming error.
		panic(err)
	}
	return r
}

func multiplyBy11Steps(p problemgen.Problem) []StrategyStep {
	n := int(p.Operand1)
	tens, ones := n/10, n%10
	sum := tens + ones
	return []StrategyStep{
		{
			Prompt: fmt.Sprintf("%d + %d", tens, ones),
			Answer: float64(sum),
			Hint:   fmt.Sprintf("Add the two digits of %d.", n),
		},
		{
			Prompt: fmt.Sprintf("%d × 11", n),
			Answer: p.CorrectAnswer,
			Hint:   fmt.Sprintf("Write %d, then %d in the middle, then %d. Carry if the middle is 10 or more.", tens, sum, ones),
		},
	}
}

func squareEndingIn5Steps(p problemgen.Problem) []StrategyStep {
	n := int(p.Operand1) / 10
	return []StrategyStep{
		{
			Prompt: fmt.Sprintf("%d × %d", n, n+1),
			Answer: float64(n * (n + 1)),
			Hint:   fmt.Sprintf("Multiply the leading digit %d by the next number up.", n),
		},
		{
			Prompt: p.Text(),
			Answer: p.CorrectAnswer,
			Hint:   fmt.Sprintf("Write 25 after %d.", n*(n+1)),
		},
	}
}

func multiplyBy5Steps(p problemgen.Problem) []StrategyStep {
	tenTimes := p.Operand1 * 10
	return []StrategyStep{
		{
			Prompt: expr(p.Operand1, "×", 10),
			Answer: tenTimes,
			Hint:   "Add a zero to the end.",
		},
		{
			Prompt: expr(tenTimes, "÷", 2),
			Answer: p.CorrectAnswer,
			Hint:   "Halve it.",
		},
	}
}

func addNearHundredSteps(p problemgen.Problem) []StrategyStep {
	round := roundUpToHundred(p.Operand2)
	diff := round - p.Operand2
	first := p.Operand1 + round
	return []StrategyStep{
		{
			Prompt: expr(p.Operand1, "+", round),
			Answer: first,
			Hint:   fmt.Sprintf("%s is %s less than %s.", num(p.Operand2), num(diff), num(round)),
		},
		{
			Prompt: expr(first, "-", diff),
			Answer: p.CorrectAnswer,
			Hint:   fmt.Sprintf("You added %s too much. Take it back.", num(diff)),
		},
	}
}

func subtractFromThousandSteps(p problemgen.Problem) []StrategyStep {
	nines := 999 - p.Operand2
	return []StrategyStep{
		{
			Prompt: expr(999, "-", p.Operand2),
			Answer: nines,
			Hint:   "Subtract each digit from 9. No borrowing needed.",
		},
		{
			Prompt: expr(nines, "+", 1),
			Answer: p.CorrectAnswer,
			Hint:   "999 is one less than 1000, so add 1 back.",
		},
	}
}

func multiplyBy9Steps(p problemgen.Problem) []StrategyStep {
	tenTimes := p.Operand1 * 10
	return []StrategyStep{
		{
			Prompt: expr(p.Operand1, "×", 10),
			Answer: tenTimes,
			Hint:   "Add a zero to the end.",
		},
		{
			Prompt: expr(tenTimes, "-", p.Operand1),
			Answer: p.CorrectAnswer,
			Hint:   fmt.Sprintf("Nine of something is ten of it minus one %s.", num(p.Operand1)),
		},
	}
}

func doubleAndHalveSteps(p problemgen.Problem) []StrategyStep {
	half, double := p.Operand1/2, p.Operand2*2
	return []StrategyStep{
		{
			Prompt: expr(p.Operand1, "÷", 2),
			Answer: half,
			Hint:   fmt.Sprintf("Halve %s.", num(p.Operand1)),
		},
		{
			Prompt: expr(p.Operand2, "×", 2),
			Answer: double,
			Hint:   fmt.Sprintf("Double %s.", num(p.Operand2)),
		},
		{
			Prompt: expr(half, "×", double),
			Answer: p.CorrectAnswer,
			Hint:   "The product has not changed, but the numbers are friendlier.",
		},
	}
}

func roundUpToHundred(x float64) float64 {
	n := int(x)
	if n%100 == 0 {
		return float64(n)
	}
	return float64((n/100 + 1) * 100)
}
