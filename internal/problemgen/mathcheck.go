package problemgen

import "fmt"

// ArithmeticValidator independently recomputes the answer and checks the
// operator-specific invariants: known operator, non-zero divisor and a
// non-negative subtraction result.
type ArithmeticValidator struct{}

func (v *ArithmeticValidator) Name() string { return "arithmetic" }

func (v *ArithmeticValidator) Validate(p Problem) *ValidationError {
	if !p.Operator.Valid() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("unknown operator %q", p.Operator),
		}
	}
	if p.Operator == OpDiv && p.Operand2 == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "divisor is zero",
		}
	}
	if p.Operator == OpSub && p.Operand1 < p.Operand2 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%s has a negative result", p.Text()),
		}
	}
	computed := Round2(Apply(p.Operator, p.Operand1, p.Operand2))
	if !ApproxEqual(computed, p.CorrectAnswer) {
		return &ValidationError{
			Validator: v.Name(),
			Message: fmt.Sprintf("computed %s but problem claims %s",
				FormatNumber(computed), FormatNumber(p.CorrectAnswer)),
		}
	}
	return nil
}
