package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickcalc/internal/calibration"
	"github.com/abhisek/quickcalc/internal/diagnosis"
	"github.com/abhisek/quickcalc/internal/problemgen"
	"github.com/abhisek/quickcalc/internal/session"
	"github.com/abhisek/quickcalc/internal/store"
	"github.com/abhisek/quickcalc/internal/ui/components"
	"github.com/abhisek/quickcalc/internal/ui/theme"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start a practice session",
	Long:  "Start a practice session. Type each answer and press Enter; q ends the session early.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		profiles, events := st.ProfileRepo(), st.EventRepo()
		profile, err := profiles.Load(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		recent, err := events.RecentErrors(ctx, cfg.Engine.ErrorWindow)
		if err != nil {
			return fmt.Errorf("load recent errors: %w", err)
		}
		prior := make(map[problemgen.Operator]float64)
		for _, op := range problemgen.AllOperators() {
			acc, err := events.OperatorAccuracy(ctx, op)
			if err != nil {
				return fmt.Errorf("load accuracy: %w", err)
			}
			prior[op] = acc
		}

		opts := session.Options{
			ProblemCount:  cfg.Session.ProblemCount,
			Diverse:       cfg.Session.Diverse,
			PriorAccuracy: prior,
			Classifiers: []diagnosis.Classifier{
				&diagnosis.SpeedRushClassifier{Threshold: time.Duration(cfg.Session.SpeedRushMs) * time.Millisecond},
				&diagnosis.CarelessClassifier{},
			},
		}
		if cmd.Flags().Changed("count") {
			opts.ProblemCount, _ = cmd.Flags().GetInt("count")
		}
		if cmd.Flags().Changed("diverse") {
			opts.Diverse, _ = cmd.Flags().GetBool("diverse")
		}

		sess := session.New(newEngine(source()), profile, recent, opts)
		if err := events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:   sess.ID,
			Action:      store.SessionStart,
			LevelBefore: profile.Level,
		}); err != nil {
			return fmt.Errorf("record session start: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("Level %d practice", profile.Level)),
			theme.Subtitle.Render(fmt.Sprintf("(%.1fs per problem)", calibration.StandardTime(profile.Level))))
		if weak := sess.WeakOperators(); len(weak) > 0 {
			fmt.Fprintln(out, theme.Hint.Render("Focusing on: "+joinOperators(weak)))
		}
		fmt.Fprintln(out)

		in := newPrompter(cmd.InOrStdin(), out)
		for !sess.Done() {
			p, _ := sess.Current()
			pos, total := sess.Position()
			label := fmt.Sprintf("%s  %s = ", theme.Subtitle.Render(fmt.Sprintf("[%d/%d]", pos, total)), theme.Problem.Render(p.Text()))

			shown := time.Now()
			v, _, err := in.number(label)
			if errors.Is(err, errQuit) {
				fmt.Fprintln(out)
				break
			}
			if err != nil {
				return err
			}

			r, _ := sess.Submit(v, time.Since(shown))
			printResult(out, r)
		}

		if len(sess.Results()) == 0 {
			fmt.Fprintln(out, theme.Hint.Render("No answers recorded."))
			return nil
		}

		sum, err := sess.Persist(ctx, st)
		if err != nil {
			return err
		}
		printSummary(out, sum, sess.OperatorBreakdown())
		return nil
	},
}

func init() {
	practiceCmd.Flags().Int("count", session.DefaultProblemCount, "Number of problems")
	practiceCmd.Flags().Bool("diverse", true, "Cover several learned techniques when possible")
}

func printResult(out io.Writer, r session.Result) {
	if r.Correct {
		fmt.Fprintln(out, theme.Correct.Render("  ✓ correct"))
		return
	}
	line := fmt.Sprintf("  ✗ %s = %s", r.Problem.Text(), problemgen.FormatNumber(r.Problem.CorrectAnswer))
	if r.Diagnosis != nil {
		line += theme.Hint.Render(fmt.Sprintf("  (%s)", r.Diagnosis.Category))
	}
	fmt.Fprintln(out, theme.Incorrect.Render(line))
}

func printSummary(out io.Writer, sum session.Summary, ops []session.OperatorResult) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", theme.Title.Render("Session summary"))
	fmt.Fprintf(&b, "Correct   %d/%d\n", sum.Correct, sum.Attempts)
	fmt.Fprintf(&b, "%s\n", components.NewProgressBar("Accuracy", sum.Accuracy/100, true, 30).View())
	fmt.Fprintf(&b, "Average   %.1fs (standard %.1fs)\n", sum.AvgSeconds, sum.StandardTime)
	for _, o := range ops {
		fmt.Fprintf(&b, "  %s       %d/%d\n", o.Operator, o.Correct, o.Attempts)
	}
	for _, cat := range []diagnosis.ErrorCategory{diagnosis.CategoryCareless, diagnosis.CategorySpeedRush, diagnosis.CategoryGap} {
		if n := sum.MissesByCategory[cat]; n > 0 {
			fmt.Fprintf(&b, "%s\n", theme.Hint.Render(fmt.Sprintf("  %d %s", n, cat)))
		}
	}

	level := fmt.Sprintf("Level %d", sum.LevelAfter)
	switch {
	case sum.LevelAfter > sum.LevelBefore:
		level = theme.Promoted.Render(fmt.Sprintf("Level up! %d → %d", sum.LevelBefore, sum.LevelAfter))
	case sum.LevelAfter < sum.LevelBefore:
		level = theme.Demoted.Render(fmt.Sprintf("Level down %d → %d", sum.LevelBefore, sum.LevelAfter))
	}
	fmt.Fprintf(&b, "\n%s\n%s", level, components.LevelBar(sum.LevelAfter, calibration.MaxLevel, 30))

	fmt.Fprintln(out, theme.Card.Render(b.String()))
}

func joinOperators(ops []problemgen.Operator) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = string(op)
	}
	return strings.Join(parts, " ")
}
