package problemgen

import "github.com/abhisek/quickcalc/internal/calibration"

// OperatorsFor returns the operators a bracket may exercise.
func OperatorsFor(b calibration.Bracket) []Operator {
	if b == calibration.Beginner {
		return []Operator{OpAdd, OpSub}
	}
	return AllOperators()
}

// Allowed reports whether op is in the bracket's operator pool.
func Allowed(b calibration.Bracket, op Operator) bool {
	for _, o := range OperatorsFor(b) {
		if o == op {
			return true
		}
	}
	return false
}

// SynthesizeRandom builds a problem for level using an operator drawn
// uniformly from the level's bracket pool.
func SynthesizeRandom(r Source, level int) Problem {
	pool := OperatorsFor(calibration.BracketFor(level))
	return Synthesize(r, level, pool[r.IntN(len(pool))])
}

// Synthesize builds a problem for op that satisfies the numeric-range
// constraints of level's bracket. An operator outside the bracket pool is
// replaced by addition.
func Synthesize(r Source, level int, op Operator) Problem {
	b := calibration.BracketFor(level)
	if !Allowed(b, op) {
		op = OpAdd
	}
	switch b {
	case calibration.Beginner:
		return beginner(r, op)
	case calibration.Intermediate:
		return intermediate(r, op)
	default:
		return advanced(r, op)
	}
}

func beginner(r Source, op Operator) Problem {
	a := IntRange(r, 2, 49)
	b := IntRange(r, 2, 49)
	if op == OpSub && a < b {
		a, b = b, a
	}
	return NewProblem(float64(a), float64(b), op)
}

func intermediate(r Source, op Operator) Problem {
	switch op {
	case OpSub:
		a := IntRange(r, 50, 300)
		b := IntRange(r, 10, a-1)
		return NewProblem(float64(a), float64(b), op)
	case OpMul:
		return NewProblem(float64(IntRange(r, 4, 15)), float64(IntRange(r, 6, 15)), op)
	case OpDiv:
		divisor := IntRange(r, 2, 12)
		quotient := IntRange(r, 3, 15)
		return NewProblem(float64(divisor*quotient), float64(divisor), op)
	default:
		return NewProblem(float64(IntRange(r, 20, 200)), float64(IntRange(r, 20, 200)), op)
	}
}

// advanced problems carry one decimal digit. Division picks a continuous
// quotient, rounds the dividend to 2 decimals, then recomputes the answer
// from the rounded dividend, so the quotient shown is not always exact.
func advanced(r Source, op Operator) Problem {
	switch op {
	case OpMul:
		factor := tenths(IntRange(r, 11, 999))
		return NewProblem(factor, float64(IntRange(r, 2, 12)), op)
	case OpDiv:
		divisor := float64(IntRange(r, 2, 12))
		quotient := 1.5 + r.Float64()*48.5
		return NewProblem(Round2(divisor*quotient), divisor, op)
	default:
		a := tenths(IntRange(r, 100, 9999))
		b := tenths(IntRange(r, 100, 9999))
		if op == OpSub && a < b {
			a, b = b, a
		}
		return NewProblem(a, b, op)
	}
}

func tenths(n int) float64 {
	return float64(n) / 10
}
