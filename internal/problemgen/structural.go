package problemgen

import (
	"fmt"
	"math"

	"github.com/abhisek/quickcalc/internal/calibration"
)

// BracketValidator checks that a level-synthesized problem respects the
// operator pool and numeric ranges of its level's bracket. Technique
// problems follow their own generator's ranges and are not checked.
type BracketValidator struct {
	Level int
}

func (v *BracketValidator) Name() string { return "bracket" }

func (v *BracketValidator) Validate(p Problem) *ValidationError {
	b := calibration.BracketFor(v.Level)
	if !Allowed(b, p.Operator) {
		return v.fail("operator %s not allowed for %s levels", p.Operator, b)
	}

	switch b {
	case calibration.Beginner:
		if !inRange(p.Operand1, 2, 49) || !inRange(p.Operand2, 2, 49) || !whole(p.Operand1) || !whole(p.Operand2) {
			return v.fail("operands of %s outside [2,49]", p.Text())
		}
	case calibration.Intermediate:
		if !whole(p.Operand1) || !whole(p.Operand2) || !whole(p.CorrectAnswer) {
			return v.fail("%s is not whole-number arithmetic", p.Text())
		}
		if msg := intermediateRanges(p); msg != "" {
			return v.fail("%s", msg)
		}
	case calibration.Advanced:
		if p.Operator == OpDiv && (!whole(p.Operand2) || !inRange(p.Operand2, 2, 12)) {
			return v.fail("divisor of %s outside [2,12]", p.Text())
		}
	}
	return nil
}

func (v *BracketValidator) fail(format string, args ...any) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
}

func intermediateRanges(p Problem) string {
	a, b := p.Operand1, p.Operand2
	switch p.Operator {
	case OpAdd:
		if !inRange(a, 20, 200) || !inRange(b, 20, 200) {
			return fmt.Sprintf("operands of %s outside [20,200]", p.Text())
		}
	case OpSub:
		if !inRange(a, 50, 300) || !inRange(b, 10, a-1) {
			return fmt.Sprintf("operands of %s outside subtraction ranges", p.Text())
		}
	case OpMul:
		if !inRange(a, 4, 15) || !inRange(b, 6, 15) {
			return fmt.Sprintf("factors of %s outside [4,15]x[6,15]", p.Text())
		}
	case OpDiv:
		if !inRange(b, 2, 12) || !inRange(p.CorrectAnswer, 3, 15) {
			return fmt.Sprintf("%s outside divisor [2,12] / quotient [3,15]", p.Text())
		}
	}
	return ""
}

func inRange(x, lo, hi float64) bool {
	return x >= lo && x <= hi
}

func whole(x float64) bool {
	return x == math.Trunc(x)
}
