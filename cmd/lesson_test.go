package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quickcalc/internal/lessons"
	"github.com/abhisek/quickcalc/internal/problemgen"
	"github.com/abhisek/quickcalc/internal/scaffold"
	"github.com/abhisek/quickcalc/internal/store"
	"github.com/abhisek/quickcalc/internal/technique"
)

type memEvents struct {
	store.EventRepo
	lessons []store.LessonEventData
	hints   []store.HintEventData
}

func (m *memEvents) AppendLessonEvent(_ context.Context, d store.LessonEventData) error {
	m.lessons = append(m.lessons, d)
	return nil
}

func (m *memEvents) AppendHintEvent(_ context.Context, d store.HintEventData) error {
	m.hints = append(m.hints, d)
	return nil
}

type memProfiles struct {
	store.ProfileRepo
	learned []string
}

func (m *memProfiles) LearnTechnique(_ context.Context, slug string) error {
	m.learned = append(m.learned, slug)
	return nil
}

// tutor feeds scripted replies first, then answers whatever the lesson
// is currently asking.
type tutor struct {
	run    *lessonRun
	script []string
}

func (t *tutor) Read(p []byte) (int, error) {
	var line string
	switch {
	case len(t.script) > 0:
		line, t.script = t.script[0], t.script[1:]
	default:
		if step, ok := t.run.state.ActiveStep(); ok {
			line = problemgen.FormatNumber(step.Answer)
		} else {
			line = problemgen.FormatNumber(t.run.state.Problem.CorrectAnswer)
		}
	}
	return copy(p, line+"\n"), nil
}

func newTestLessonRun(t *testing.T, slug string, script ...string) (*lessonRun, *memEvents, *memProfiles, *bytes.Buffer) {
	t.Helper()
	catalog, err := lessons.Load()
	require.NoError(t, err)
	require.NoError(t, catalog.Bind(technique.DefaultRegistry()))

	r := problemgen.NewSeededSource(21)
	flow, err := catalog.Flow(slug, 1, r)
	require.NoError(t, err)

	events, profiles, out := &memEvents{}, &memProfiles{}, &bytes.Buffer{}
	run := &lessonRun{
		flow:      flow,
		protocol:  scaffold.NewProtocol(scaffold.Options{Source: r}),
		events:    events,
		profiles:  profiles,
		out:       out,
		sessionID: "lesson-test",
	}
	run.in = newPrompter(&tutor{run: run, script: script}, out)
	return run, events, profiles, out
}

func TestLessonRun_CompletesAndMarksLearned(t *testing.T) {
	run, events, profiles, out := newTestLessonRun(t, technique.MultiplyBy11, "?", "0", "0")

	completed, err := run.play(context.Background())
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, []string{technique.MultiplyBy11}, profiles.learned)

	require.Len(t, events.lessons, 3)
	for i, phase := range []string{"guided", "semi-guided", "free"} {
		assert.Equal(t, phase, events.lessons[i].Phase)
		assert.True(t, events.lessons[i].Solved)
		assert.Equal(t, "lesson-test", events.lessons[i].SessionID)
	}
	assert.GreaterOrEqual(t, events.lessons[0].Attempts, 3, "two misses plus the right answers")
	assert.Positive(t, events.lessons[0].HintsShown)
	assert.NotEmpty(t, events.hints)
	assert.Equal(t, "23 × 11", events.hints[0].ProblemText)

	text := ansi.Strip(out.String())
	assert.Contains(t, text, "Split 23 into 2 and 3.")
	assert.Contains(t, text, "Not quite, try again.")
}

func TestLessonRun_PauseRecordsUnsolved(t *testing.T) {
	run, events, profiles, _ := newTestLessonRun(t, technique.MultiplyBy11, "q")

	completed, err := run.play(context.Background())
	require.NoError(t, err)
	assert.False(t, completed)
	assert.Empty(t, profiles.learned)
	require.Len(t, events.lessons, 1)
	assert.False(t, events.lessons[0].Solved)
}

func TestLessonRun_WalkthroughOnlyWhenGuided(t *testing.T) {
	run, _, _, out := newTestLessonRun(t, technique.MultiplyBy11)

	_, err := run.play(context.Background())
	require.NoError(t, err)

	text := ansi.Strip(out.String())
	semi := strings.Index(text, "semi-guided")
	require.Positive(t, semi)
	assert.Contains(t, text[:semi], "Split 23 into 2 and 3.")
	assert.NotContains(t, text[semi:], "Split 45 into 4 and 5.")
}

func TestLessonCommand_HintShowsWalkthrough(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader("?\nq\n"))
	rootCmd.SetArgs([]string{"lesson", technique.MultiplyBy11, "--db", filepath.Join(t.TempDir(), "lesson.db")})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	text := ansi.Strip(out.String())
	assert.Contains(t, text, "Split 23 into 2 and 3.")
	assert.Contains(t, text, "Lesson paused.")
}
