package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickcalc/internal/problemgen"
	"github.com/abhisek/quickcalc/internal/technique"
	"github.com/abhisek/quickcalc/internal/ui/theme"
)

var techniquesCmd = &cobra.Command{
	Use:   "techniques [slug]",
	Short: "List techniques, or walk through an example of one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := technique.DefaultRegistry()
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			t, err := reg.Lookup(args[0])
			if err != nil {
				return err
			}
			p := t.Generate(source())
			fmt.Fprintln(out, theme.Title.Render(t.Name))
			fmt.Fprintln(out, theme.Subtitle.Render(t.Summary))
			fmt.Fprintf(out, "\n%s\n", theme.Problem.Render(p.Text()))
			for i, step := range technique.BuildStrategySteps(reg, p) {
				fmt.Fprintf(out, "  %d. %s = %s\n", i+1, theme.Step.Render(step.Prompt), problemgen.FormatNumber(step.Answer))
			}
			return nil
		}

		var learned []string
		if st, err := openStore(cmd); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Learner profile unavailable:", err)
		} else {
			defer st.Close()
			learned, err = st.ProfileRepo().LearnedTechniques(cmd.Context())
			if err != nil {
				return fmt.Errorf("load learned techniques: %w", err)
			}
		}

		fmt.Fprintf(out, "%-26s  %-28s  %s\n", "Slug", "Name", "Learned")
		fmt.Fprintln(out, strings.Repeat("─", 66))
		for _, t := range reg.All() {
			mark := ""
			if slices.Contains(learned, t.Slug) {
				mark = theme.Correct.Render("✓")
			}
			fmt.Fprintf(out, "%-26s  %-28s  %s\n", t.Slug, t.Name, mark)
		}
		fmt.Fprintf(out, "\n%d techniques\n", len(reg.All()))
		return nil
	},
}
