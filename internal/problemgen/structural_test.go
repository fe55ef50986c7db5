package problemgen

import "testing"

func TestBracketValidator(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		p       Problem
		wantErr bool
	}{
		{"beginner addition", 2, NewProblem(12, 30, OpAdd), false},
		{"beginner multiplication", 2, NewProblem(4, 6, OpMul), true},
		{"beginner operand too large", 1, NewProblem(50, 3, OpAdd), true},
		{"beginner operand too small", 3, NewProblem(1, 3, OpAdd), true},
		{"intermediate addition", 5, NewProblem(120, 35, OpAdd), false},
		{"intermediate subtraction", 6, NewProblem(250, 249, OpSub), false},
		{"intermediate subtraction subtrahend too small", 6, NewProblem(250, 9, OpSub), true},
		{"intermediate multiplication", 4, NewProblem(15, 6, OpMul), false},
		{"intermediate multiplication out of range", 4, NewProblem(3, 6, OpMul), true},
		{"intermediate division", 7, NewProblem(96, 8, OpDiv), false},
		{"intermediate division quotient too small", 7, NewProblem(4, 2, OpDiv), true},
		{"intermediate decimal", 7, NewProblem(20.5, 20, OpAdd), true},
		{"advanced decimal addition", 9, NewProblem(123.4, 56.7, OpAdd), false},
		{"advanced division divisor", 9, NewProblem(44.5, 13, OpDiv), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := &BracketValidator{Level: tc.level}
			err := v.Validate(tc.p)
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate(%s) at level %d = %v, wantErr %v", tc.p.Text(), tc.level, err, tc.wantErr)
			}
		})
	}
}
