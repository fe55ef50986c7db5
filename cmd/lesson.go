package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/quickcalc/internal/lessons"
	"github.com/abhisek/quickcalc/internal/problemgen"
	"github.com/abhisek/quickcalc/internal/scaffold"
	"github.com/abhisek/quickcalc/internal/store"
	"github.com/abhisek/quickcalc/internal/technique"
	"github.com/abhisek/quickcalc/internal/ui/theme"
)

const hintRequest = "?"

var lessonCmd = &cobra.Command{
	Use:   "lesson [slug]",
	Short: "Learn a technique step by step",
	Long: "Learn a technique in three phases: guided, semi-guided and free. " +
		"Without a slug, lists the available lessons. Type ? for a hint during the guided phase.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := lessons.Load()
		if err != nil {
			return fmt.Errorf("load lessons: %w", err)
		}
		if err := catalog.Bind(technique.DefaultRegistry()); err != nil {
			return fmt.Errorf("bind lessons: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, l := range catalog.Lessons() {
				fmt.Fprintf(out, "%-26s  %s\n", l.Slug, l.Title)
			}
			return nil
		}

		r := source()
		flow, err := catalog.Flow(args[0], cfg.Lessons.ExercisesPerPhase, r)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		run := &lessonRun{
			flow:      flow,
			protocol:  newProtocol(r),
			events:    st.EventRepo(),
			profiles:  st.ProfileRepo(),
			in:        newPrompter(cmd.InOrStdin(), out),
			out:       out,
			sessionID: uuid.NewString(),
		}
		_, err = run.play(cmd.Context())
		return err
	},
}

// lessonRun drives one lesson over a line-based terminal.
type lessonRun struct {
	flow      *lessons.Flow
	protocol  *scaffold.Protocol
	events    store.EventRepo
	profiles  store.ProfileRepo
	in        *prompter
	out       io.Writer
	sessionID string

	// state is the scaffold of the exercise being answered.
	state scaffold.State
}

// play runs every phase, marks the technique learned once the last phase
// is done, and reports whether the lesson was completed.
func (l *lessonRun) play(ctx context.Context) (bool, error) {
	lesson := l.flow.Lesson()
	fmt.Fprintln(l.out, theme.Title.Render(lesson.Title))
	fmt.Fprintln(l.out, theme.Body.Render(lesson.Intro))

	phase := lessons.FlowPhase(-1)
	for !l.flow.Complete() {
		if l.flow.Phase() != phase {
			phase = l.flow.Phase()
			fmt.Fprintf(l.out, "\n%s\n", theme.Subtitle.Render("── "+phase.String()+" ──"))
		}

		ex := l.flow.Next()
		data, err := l.exercise(ctx, ex)
		data.SessionID = l.sessionID
		data.Slug = lesson.Slug
		data.Phase = phase.String()
		if errors.Is(err, errQuit) {
			fmt.Fprintln(l.out, theme.Hint.Render("\nLesson paused."))
			return false, l.events.AppendLessonEvent(ctx, data)
		}
		if err != nil {
			return false, err
		}
		if err := l.events.AppendLessonEvent(ctx, data); err != nil {
			return false, fmt.Errorf("record lesson exercise: %w", err)
		}
		l.flow.Record(data.Solved)
	}

	if err := l.profiles.LearnTechnique(ctx, lesson.Slug); err != nil {
		return false, fmt.Errorf("mark technique learned: %w", err)
	}
	fmt.Fprintln(l.out, theme.Promoted.Render(fmt.Sprintf("Learned %s! It will now show up in practice.", lesson.Title)))
	return true, nil
}

// exercise scaffolds ex until it is solved.
func (l *lessonRun) exercise(ctx context.Context, ex lessons.Exercise) (store.LessonEventData, error) {
	var data store.LessonEventData
	l.state = l.flow.Start(ex)
	walkthrough := l.flow.Walkthrough(ex)
	walked := false

	fmt.Fprintf(l.out, "\n%s\n", theme.Problem.Render(ex.Problem.Text()))
	if narrative := l.flow.NarrativeHint(ex); narrative != "" {
		fmt.Fprintln(l.out, theme.Hint.Render(narrative))
	}
	if hint := l.state.VisibleHint(); hint != "" {
		fmt.Fprintln(l.out, theme.Hint.Render("First step: "+hint))
	}

	for !l.state.Done() {
		label := theme.Step.Render("  "+ex.Problem.Text()) + " = "
		if step, ok := l.state.ActiveStep(); ok {
			label = theme.Step.Render("  "+step.Prompt) + " = "
		}

		var accept []string
		if l.state.HintLevel == scaffold.HintFull {
			accept = []string{hintRequest}
		}
		v, text, err := l.in.number(label, accept...)
		if err != nil {
			return data, err
		}

		if text == hintRequest {
			var hint string
			l.state, hint = l.state.RequestHint()
			shown := false
			if hint != "" {
				if err := l.showHint(ctx, hint); err != nil {
					return data, err
				}
				data.HintsShown++
				shown = true
			}
			if !walked && len(walkthrough) > 0 {
				l.showWalkthrough(walkthrough)
				if err := l.recordHint(ctx, strings.Join(walkthrough, " ")); err != nil {
					return data, err
				}
				walked = true
				data.HintsShown++
				shown = true
			}
			if !shown {
				fmt.Fprintln(l.out, theme.Hint.Render("  No hint for this step."))
			}
			continue
		}

		var fb scaffold.Feedback
		l.state, fb = l.protocol.Advance(l.state, v)
		data.Attempts++
		switch {
		case fb.Affirmation != "":
			fmt.Fprintln(l.out, theme.Correct.Render("  "+fb.Affirmation))
		case fb.Correct:
			fmt.Fprintln(l.out, theme.Correct.Render("  ✓"))
		default:
			fmt.Fprintln(l.out, theme.Incorrect.Render("  Not quite, try again."))
		}
		if fb.Hint != "" {
			if err := l.showHint(ctx, fb.Hint); err != nil {
				return data, err
			}
			data.HintsShown++
		}
		if fb.Advanced && l.state.Phase == scaffold.PhaseFinal {
			for _, step := range l.state.RevealedSteps() {
				fmt.Fprintln(l.out, theme.Hint.Render(fmt.Sprintf("  %s = %s", step.Prompt, problemgen.FormatNumber(step.Answer))))
			}
		}
	}

	if !walked && len(walkthrough) > 0 {
		l.showWalkthrough(walkthrough)
	}
	data.Solved = true
	return data, nil
}

func (l *lessonRun) showWalkthrough(lines []string) {
	for i, line := range lines {
		fmt.Fprintln(l.out, theme.Hint.Render(fmt.Sprintf("  %d. %s", i+1, line)))
	}
}

func (l *lessonRun) showHint(ctx context.Context, hint string) error {
	fmt.Fprintln(l.out, theme.Hint.Render("  Hint: "+hint))
	return l.recordHint(ctx, hint)
}

func (l *lessonRun) recordHint(ctx context.Context, hint string) error {
	step, _ := l.state.ActiveStep()
	err := l.events.AppendHintEvent(ctx, store.HintEventData{
		SessionID:   l.sessionID,
		ProblemText: l.state.Problem.Text(),
		StepPrompt:  step.Prompt,
		HintText:    hint,
	})
	if err != nil {
		return fmt.Errorf("record hint: %w", err)
	}
	return nil
}
