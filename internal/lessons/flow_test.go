package lessons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quickcalc/internal/problemgen"
	"github.com/abhisek/quickcalc/internal/scaffold"
	"github.com/abhisek/quickcalc/internal/technique"
)

func boundCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	require.NoError(t, err)
	require.NoError(t, c.Bind(technique.DefaultRegistry()))
	return c
}

func TestFlow_RequiresBind(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	_, err = c.Flow(technique.MultiplyBy11, 2, nil)
	assert.ErrorIs(t, err, ErrUnbound)
}

func TestFlow_PhasesAndHintLevels(t *testing.T) {
	f, err := boundCatalog(t).Flow(technique.MultiplyBy11, 2, problemgen.NewSeededSource(3))
	require.NoError(t, err)

	want := []struct {
		phase FlowPhase
		level scaffold.HintLevel
	}{
		{PhaseGuided, scaffold.HintFull},
		{PhaseSemiGuided, scaffold.HintPartial},
		{PhaseFree, scaffold.HintNone},
	}
	for _, w := range want {
		assert.Equal(t, w.phase, f.Phase())
		assert.Equal(t, w.level, f.HintLevel())

		f.Next()
		f.Record(false)
		assert.Equal(t, w.phase, f.Phase(), "a miss does not advance")

		f.Record(true)
		f.Next()
		f.Record(true)
	}
	assert.True(t, f.Complete())

	f.Record(true)
	assert.Equal(t, PhaseComplete, f.Phase())
}

func TestFlow_AuthoredThenGenerated(t *testing.T) {
	c := boundCatalog(t)
	lesson, err := c.Lesson(technique.MultiplyBy9)
	require.NoError(t, err)

	f, err := c.Flow(technique.MultiplyBy9, 2, problemgen.NewSeededSource(4))
	require.NoError(t, err)

	assert.Equal(t, lesson.Exercises[0], f.Next())
	f.Record(true)
	assert.Equal(t, lesson.Exercises[1], f.Next())
	f.Record(true)

	semi := f.Next()
	assert.Equal(t, lesson.Exercises[2], semi)
	assert.Equal(t, semi.PartialHint, f.NarrativeHint(semi))
	f.Record(true)
	f.Next()
	f.Record(true)

	free := f.Next()
	assert.Equal(t, technique.MultiplyBy9, free.Problem.TechniqueTag)
	assert.Equal(t, 9.0, free.Problem.Operand2)
	assert.Empty(t, free.StepByStep)
	assert.Empty(t, f.NarrativeHint(free))
}

func TestFlow_StartUsesPhaseHintLevel(t *testing.T) {
	f, err := boundCatalog(t).Flow(technique.SubtractFromThousand, 1, problemgen.NewSeededSource(5))
	require.NoError(t, err)

	guided := f.Start(f.Next())
	assert.Equal(t, scaffold.PhaseStep, guided.Phase)
	assert.Equal(t, 0, guided.Index)
	f.Record(true)

	semi := f.Start(f.Next())
	assert.Equal(t, 1, semi.Index)
	assert.NotEmpty(t, semi.UpfrontHint)
	f.Record(true)

	free := f.Start(f.Next())
	assert.Equal(t, scaffold.PhaseFinal, free.Phase)
}

func TestFlow_DefaultPerPhase(t *testing.T) {
	f, err := boundCatalog(t).Flow(technique.MultiplyBy5, 0, problemgen.NewSeededSource(6))
	require.NoError(t, err)
	for i := 0; i < DefaultExercisesPerPhase; i++ {
		f.Next()
		f.Record(true)
	}
	assert.Equal(t, PhaseSemiGuided, f.Phase())
}

func TestFlow_WalkthroughByHintLevel(t *testing.T) {
	c := boundCatalog(t)
	lesson, err := c.Lesson(technique.MultiplyBy11)
	require.NoError(t, err)
	authored := lesson.Exercises[0]
	require.NotEmpty(t, authored.StepByStep)

	f, err := c.Flow(technique.MultiplyBy11, 1, problemgen.NewSeededSource(7))
	require.NoError(t, err)

	tests := []struct {
		level scaffold.HintLevel
		want  []string
	}{
		{scaffold.HintFull, authored.StepByStep},
		{scaffold.HintPartial, nil},
		{scaffold.HintNone, nil},
	}
	for _, tt := range tests {
		require.Equal(t, tt.level, f.HintLevel())
		assert.Equal(t, tt.want, f.Walkthrough(authored), tt.level)
		f.Next()
		f.Record(true)
	}
	assert.True(t, f.Complete())
	assert.Nil(t, f.Walkthrough(authored))
}
