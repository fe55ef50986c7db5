// Package config loads quickcalc settings from defaults, an optional YAML
// file and QUICKCALC_* environment variables, in that order of priority.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/quickcalc/internal/diagnosis"
	"github.com/abhisek/quickcalc/internal/exercise"
	"github.com/abhisek/quickcalc/internal/lessons"
	"github.com/abhisek/quickcalc/internal/scaffold"
	"github.com/abhisek/quickcalc/internal/session"
)

// Config holds all quickcalc settings.
type Config struct {
	// DBPath overrides the default database location.
	DBPath string `yaml:"db_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// Seed makes problem generation reproducible when non-zero.
	Seed uint64 `yaml:"seed"`

	Engine   exercise.Config `yaml:"engine"`
	Scaffold ScaffoldConfig  `yaml:"scaffold"`
	Session  SessionConfig   `yaml:"session"`
	Lessons  LessonsConfig   `yaml:"lessons"`
}

// ScaffoldConfig configures step-by-step verification.
type ScaffoldConfig struct {
	HintAfterFailures int `yaml:"hint_after_failures" validate:"gte=1"`
}

// SessionConfig configures practice sessions.
type SessionConfig struct {
	ProblemCount int  `yaml:"problem_count" validate:"gte=1,lte=100"`
	Diverse      bool `yaml:"diverse"`

	// SpeedRushMs is the response time under which a miss counts as rushed.
	SpeedRushMs int `yaml:"speed_rush_ms" validate:"gte=1"`
}

// LessonsConfig configures lesson flow.
type LessonsConfig struct {
	ExercisesPerPhase int `yaml:"exercises_per_phase" validate:"gte=1"`
}

// DefaultConfig returns a Config with the standard settings.
func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Engine:   exercise.DefaultConfig(),
		Scaffold: ScaffoldConfig{HintAfterFailures: scaffold.DefaultHintAfterFailures},
		Session: SessionConfig{
			ProblemCount: session.DefaultProblemCount,
			Diverse:      true,
			SpeedRushMs:  int(diagnosis.DefaultSpeedRushThreshold.Milliseconds()),
		},
		Lessons: LessonsConfig{ExercisesPerPhase: lessons.DefaultExercisesPerPhase},
	}
}

var validate = validator.New()

// Load builds a Config with priority env > file > defaults. An empty path
// falls back to QUICKCALC_CONFIG; a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv("QUICKCALC_CONFIG")
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	return validate.Struct(c)
}

// SlogLevel converts LogLevel to a slog.Level.
func (c Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return l
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	// JSON is valid YAML, so JSON files decode here too with the same keys.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// applyEnv overrides cfg from QUICKCALC_* variables. Unlike a bad config
// file value, a malformed variable is reported rather than ignored.
func applyEnv(cfg *Config) error {
	var errs []error

	str := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	integer := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = i
		}
	}
	float := func(key string, dst *float64) {
		if v := os.Getenv(key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = f
		}
	}
	boolean := func(key string, dst *bool) {
		if v := os.Getenv(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}

	str("QUICKCALC_DB", &cfg.DBPath)
	str("QUICKCALC_LOG_LEVEL", &cfg.LogLevel)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if v := os.Getenv("QUICKCALC_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("QUICKCALC_SEED: %w", err))
		} else {
			cfg.Seed = seed
		}
	}

	float("QUICKCALC_TECHNIQUE_PROBABILITY", &cfg.Engine.TechniqueProbability)
	float("QUICKCALC_WEAK_OPERATOR_PROBABILITY", &cfg.Engine.WeakOperatorProbability)
	float("QUICKCALC_FILL_TECHNIQUE_PROBABILITY", &cfg.Engine.FillTechniqueProbability)
	integer("QUICKCALC_MIN_DIVERSE_TECHNIQUES", &cfg.Engine.MinDiverseTechniques)
	integer("QUICKCALC_MAX_DIVERSE_TECHNIQUES", &cfg.Engine.MaxDiverseTechniques)
	integer("QUICKCALC_ERROR_WINDOW", &cfg.Engine.ErrorWindow)
	integer("QUICKCALC_HINT_AFTER_FAILURES", &cfg.Scaffold.HintAfterFailures)
	integer("QUICKCALC_PROBLEM_COUNT", &cfg.Session.ProblemCount)
	boolean("QUICKCALC_DIVERSE", &cfg.Session.Diverse)
	integer("QUICKCALC_SPEED_RUSH_MS", &cfg.Session.SpeedRushMs)
	integer("QUICKCALC_EXERCISES_PER_PHASE", &cfg.Lessons.ExercisesPerPhase)

	return errors.Join(errs...)
}
