package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickcalc/internal/config"
	"github.com/abhisek/quickcalc/internal/exercise"
	"github.com/abhisek/quickcalc/internal/problemgen"
	"github.com/abhisek/quickcalc/internal/scaffold"
	"github.com/abhisek/quickcalc/internal/store"
	"github.com/abhisek/quickcalc/internal/technique"
)

// cfg is loaded once per invocation by rootCmd's PersistentPreRunE.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:           "quickcalc",
	Short:         "Mental arithmetic trainer",
	Long:          "Quickcalc drills mental arithmetic at your level, biased toward the operators you miss and the shortcuts you have learned.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			loaded.Seed, _ = cmd.Flags().GetUint64("seed")
		}
		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			loaded.LogLevel = lvl
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		cfg = loaded

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
		slog.SetDefault(logger)
		return nil
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUICKCALC_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides QUICKCALC_CONFIG env var)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for reproducible problems (0 picks a random seed)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(techniquesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file's db_path, then QUICKCALC_DB or the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	slog.Debug("store opened", "path", dbPath)
	return st, nil
}

// source returns a seeded generator when a seed is configured.
func source() problemgen.Source {
	if cfg.Seed != 0 {
		return problemgen.NewSeededSource(cfg.Seed)
	}
	return problemgen.DefaultSource()
}

func newEngine(r problemgen.Source) *exercise.Engine {
	return exercise.New(technique.DefaultRegistry(), cfg.Engine,
		exercise.WithSource(r),
		exercise.WithLogger(slog.Default()),
	)
}

func newProtocol(r problemgen.Source) *scaffold.Protocol {
	return scaffold.NewProtocol(scaffold.Options{
		HintAfterFailures: cfg.Scaffold.HintAfterFailures,
		Source:            r,
	})
}
