package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickcalc/internal/calibration"
	"github.com/abhisek/quickcalc/internal/diagnosis"
	"github.com/abhisek/quickcalc/internal/problemgen"
	"github.com/abhisek/quickcalc/internal/session"
	"github.com/abhisek/quickcalc/internal/ui/theme"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Print a batch of problems without answering them",
	Long: "Print a batch of problems. Level, weak operators and learned techniques " +
		"come from the learner profile unless given as flags.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		flags := cmd.Flags()

		count, _ := flags.GetInt("count")
		level, _ := flags.GetInt("level")
		diverse, _ := flags.GetBool("diverse")
		asJSON, _ := flags.GetBool("json")
		learned, _ := flags.GetStringSlice("learned")
		weakRaw, _ := flags.GetStringSlice("weak")

		var weak []problemgen.Operator
		for _, s := range weakRaw {
			op, err := problemgen.ParseOperator(s)
			if err != nil {
				return err
			}
			weak = append(weak, op)
		}

		if !flags.Changed("level") || !flags.Changed("weak") || !flags.Changed("learned") {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			profile, err := st.ProfileRepo().Load(ctx)
			if err != nil {
				return fmt.Errorf("load profile: %w", err)
			}
			if !flags.Changed("level") {
				level = profile.Level
			}
			if !flags.Changed("learned") {
				learned = profile.Learned
			}
			if !flags.Changed("weak") {
				recent, err := st.EventRepo().RecentErrors(ctx, cfg.Engine.ErrorWindow)
				if err != nil {
					return fmt.Errorf("load recent errors: %w", err)
				}
				weak = diagnosis.RankWeakOperators(recent)
			}
		}
		level = calibration.Clamp(level)

		engine := newEngine(source())
		var problems []problemgen.Problem
		var selected []string
		if diverse {
			problems, selected = engine.GenerateDiverseBatchDetailed(count, level, learned, weak)
		} else {
			problems = engine.GenerateBatch(count, level, weak, learned)
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(batchReport{
				Level:              level,
				WeakOperators:      weak,
				SelectedTechniques: selected,
				Problems:           problems,
			})
		}

		fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("Level %d (%s)", level, calibration.BracketFor(level))))
		if len(selected) > 0 {
			fmt.Fprintln(out, theme.Hint.Render(fmt.Sprintf("Techniques: %v", selected)))
		}
		for i, p := range problems {
			line := fmt.Sprintf("%3d. %s", i+1, theme.Problem.Render(p.Text()))
			if p.Tagged() {
				line += "  " + theme.Tag.Render(p.TechniqueTag)
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

type batchReport struct {
	Level              int                   `json:"level"`
	WeakOperators      []problemgen.Operator `json:"weak_operators"`
	SelectedTechniques []string              `json:"selected_techniques,omitempty"`
	Problems           []problemgen.Problem  `json:"problems"`
}

func init() {
	batchCmd.Flags().Int("count", session.DefaultProblemCount, "Number of problems")
	batchCmd.Flags().Int("level", 0, "Skill level 1-10 (defaults to the profile level)")
	batchCmd.Flags().Bool("diverse", false, "Cover several learned techniques when possible")
	batchCmd.Flags().Bool("json", false, "Print the batch as JSON")
	batchCmd.Flags().StringSlice("weak", nil, "Weak operators, most important first (e.g. ×,÷ or *,/)")
	batchCmd.Flags().StringSlice("learned", nil, "Learned technique slugs")
}
