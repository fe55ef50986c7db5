package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickcalc/internal/calibration"
	"github.com/abhisek/quickcalc/internal/diagnosis"
	"github.com/abhisek/quickcalc/internal/problemgen"
	"github.com/abhisek/quickcalc/internal/ui/components"
	"github.com/abhisek/quickcalc/internal/ui/theme"
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Show the current level and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		profile, err := st.ProfileRepo().Load(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		sessions, err := st.EventRepo().SessionCount(ctx)
		if err != nil {
			return fmt.Errorf("count sessions: %w", err)
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%s\n", theme.Title.Render(fmt.Sprintf("Level %d · %s", profile.Level, calibration.BracketFor(profile.Level))))
		fmt.Fprintf(&b, "%s\n\n", components.LevelBar(profile.Level, calibration.MaxLevel, 30))
		fmt.Fprintf(&b, "Standard time %.1fs per problem\n", calibration.StandardTime(profile.Level))
		fmt.Fprintf(&b, "Sessions      %d\n", sessions)
		if len(profile.Learned) > 0 {
			fmt.Fprintf(&b, "Techniques    %s\n", strings.Join(profile.Learned, ", "))
		}

		recent, err := st.EventRepo().RecentErrors(ctx, cfg.Engine.ErrorWindow)
		if err != nil {
			return fmt.Errorf("load recent errors: %w", err)
		}
		if weak := diagnosis.TopWeak(recent, 2); len(weak) > 0 {
			fmt.Fprintf(&b, "Focus on      %s\n", joinOperators(weak))
		}

		fmt.Fprintf(&b, "\n%-9s %s\n", "Operator", "Accuracy")
		fmt.Fprintln(&b, strings.Repeat("─", 18))
		for _, op := range problemgen.AllOperators() {
			acc, err := st.EventRepo().OperatorAccuracy(ctx, op)
			if err != nil {
				return fmt.Errorf("load accuracy: %w", err)
			}
			fmt.Fprintf(&b, "%-9s %7.0f%%\n", op, acc*100)
		}

		fmt.Fprintln(cmd.OutOrStdout(), theme.Card.Render(b.String()))
		return nil
	},
}
