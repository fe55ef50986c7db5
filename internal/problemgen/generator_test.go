package problemgen

import (
	"math"
	"testing"

	"github.com/abhisek/quickcalc/internal/calibration"
)

const draws = 500

func TestSynthesize_BeginnerConstraints(t *testing.T) {
	r := NewSeededSource(1)
	for level := 1; level <= 3; level++ {
		for i := 0; i < draws; i++ {
			p := SynthesizeRandom(r, level)
			if p.Operator != OpAdd && p.Operator != OpSub {
				t.Fatalf("level %d: operator %s outside {+,-}", level, p.Operator)
			}
			if p.Operand1 < 2 || p.Operand1 > 49 || p.Operand2 < 2 || p.Operand2 > 49 {
				t.Fatalf("level %d: operands out of [2,49]: %s", level, p.Text())
			}
			if p.Operator == OpSub && p.Operand1 < p.Operand2 {
				t.Fatalf("level %d: negative subtraction %s", level, p.Text())
			}
		}
	}
}

func TestSynthesize_BeginnerCoercesOperator(t *testing.T) {
	r := NewSeededSource(2)
	p := Synthesize(r, 2, OpDiv)
	if p.Operator != OpAdd {
		t.Errorf("beginner ÷ request produced %s, want +", p.Operator)
	}
}

func TestSynthesize_PassesValidators(t *testing.T) {
	r := NewSeededSource(3)
	for level := calibration.MinLevel; level <= calibration.MaxLevel; level++ {
		for _, op := range OperatorsFor(calibration.BracketFor(level)) {
			for i := 0; i < draws/10; i++ {
				p := Synthesize(r, level, op)
				if err := Validate(p, &ArithmeticValidator{}, &BracketValidator{Level: level}); err != nil {
					t.Fatalf("level %d %s: %v", level, p.Text(), err)
				}
			}
		}
	}
}

func TestSynthesize_IntermediateDivisionIsExact(t *testing.T) {
	r := NewSeededSource(4)
	for i := 0; i < draws; i++ {
		p := Synthesize(r, 5, OpDiv)
		q := p.Operand1 / p.Operand2
		if q != math.Trunc(q) {
			t.Fatalf("%s is not exact", p.Text())
		}
		if p.CorrectAnswer != q {
			t.Fatalf("%s answer %v, want %v", p.Text(), p.CorrectAnswer, q)
		}
	}
}

func TestSynthesize_AdvancedDivisionUsesRoundedDividend(t *testing.T) {
	// IntN(11)=1 -> divisor 3; Float64 0.123 -> quotient 7.4655.
	r := &fixedSource{ints: []int{1}, floats: []float64{0.123}}
	p := Synthesize(r, 9, OpDiv)

	quotient := 1.5 + 0.123*48.5
	wantDividend := Round2(3 * quotient)
	if p.Operand2 != 3 {
		t.Fatalf("divisor = %v, want 3", p.Operand2)
	}
	if p.Operand1 != wantDividend {
		t.Fatalf("dividend = %v, want %v", p.Operand1, wantDividend)
	}
	if want := Round2(wantDividend / 3); p.CorrectAnswer != want {
		t.Errorf("answer = %v, want %v (from rounded dividend)", p.CorrectAnswer, want)
	}
}

func TestSynthesize_AdvancedDivisionProperty(t *testing.T) {
	r := NewSeededSource(5)
	for i := 0; i < draws; i++ {
		p := Synthesize(r, 10, OpDiv)
		if p.Operand1 != Round2(p.Operand1) {
			t.Fatalf("dividend %v has more than 2 decimals", p.Operand1)
		}
		if p.CorrectAnswer != Round2(p.Operand1/p.Operand2) {
			t.Fatalf("%s answer %v, want %v", p.Text(), p.CorrectAnswer, Round2(p.Operand1/p.Operand2))
		}
	}
}

func TestSynthesize_AdvancedUsesDecimals(t *testing.T) {
	r := NewSeededSource(6)
	sawDecimal := false
	for i := 0; i < draws; i++ {
		p := Synthesize(r, 8, OpAdd)
		if p.Operand1 != math.Trunc(p.Operand1) || p.Operand2 != math.Trunc(p.Operand2) {
			sawDecimal = true
		}
		// One decimal digit at most.
		if math.Abs(p.Operand1*10-math.Round(p.Operand1*10)) > 1e-9 {
			t.Fatalf("operand %v has more than one decimal", p.Operand1)
		}
	}
	if !sawDecimal {
		t.Error("advanced addition never produced a decimal operand")
	}
}

func TestSynthesize_SubtractionNeverNegative(t *testing.T) {
	r := NewSeededSource(7)
	for level := calibration.MinLevel; level <= calibration.MaxLevel; level++ {
		for i := 0; i < draws/5; i++ {
			p := Synthesize(r, level, OpSub)
			if p.CorrectAnswer < 0 {
				t.Fatalf("level %d: %s = %v", level, p.Text(), p.CorrectAnswer)
			}
		}
	}
}

func TestOperatorsFor(t *testing.T) {
	if got := OperatorsFor(calibration.Beginner); len(got) != 2 {
		t.Errorf("beginner pool = %v, want 2 operators", got)
	}
	if got := OperatorsFor(calibration.Advanced); len(got) != 4 {
		t.Errorf("advanced pool = %v, want 4 operators", got)
	}
}
