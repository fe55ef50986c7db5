package technique

import (
	"testing"

	"github.com/abhisek/quickcalc/internal/problemgen"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name    string
		p       problemgen.Problem
		answers []float64
	}{
		{"addition", problemgen.NewProblem(47, 38, problemgen.OpAdd), []float64{77, 85}},
		{"subtraction", problemgen.NewProblem(92, 47, problemgen.OpSub), []float64{52, 45}},
		{"multiplication", problemgen.NewProblem(6, 23, problemgen.OpMul), []float64{120, 18, 138}},
		{"division is single step", problemgen.NewProblem(84, 12, problemgen.OpDiv), []float64{7}},
		{"small second operand", problemgen.NewProblem(47, 8, problemgen.OpAdd), []float64{55}},
		{"round tens", problemgen.NewProblem(47, 30, problemgen.OpAdd), []float64{77}},
		{"decimals", problemgen.NewProblem(12.5, 31.2, problemgen.OpAdd), []float64{43.7}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			steps := Decompose(tc.p)
			if len(steps) != len(tc.answers) {
				t.Fatalf("got %d steps, want %d", len(steps), len(tc.answers))
			}
			for i, want := range tc.answers {
				if !problemgen.ApproxEqual(steps[i].Answer, want) {
					t.Errorf("step %d answer = %v, want %v", i, steps[i].Answer, want)
				}
			}
		})
	}
}
