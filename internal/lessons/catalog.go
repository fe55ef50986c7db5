// Package lessons loads the authored lesson catalog and runs the
// guided, semi-guided and free phases of a lesson.
package lessons

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/abhisek/quickcalc/internal/problemgen"
	"github.com/abhisek/quickcalc/internal/technique"
)

//go:embed content/lessons.json
var embeddedContent []byte

// SupportedMajor is the content format major version this build reads.
const SupportedMajor = "v1"

// Exercise is an authored lesson problem with its narrative hints.
type Exercise struct {
	Problem     problemgen.Problem
	FullHint    string
	PartialHint string
	StepByStep  []string
}

// Lesson teaches one technique.
type Lesson struct {
	Slug      string
	Title     string
	Intro     string
	Exercises []Exercise
}

// Catalog is the parsed set of lessons.
type Catalog struct {
	Version string

	lessons  []Lesson
	bySlug   map[string]int
	registry *technique.Registry
}

type contentFile struct {
	Version string          `json:"version"`
	Lessons []contentLesson `json:"lessons"`
}

type contentLesson struct {
	Slug      string            `json:"slug"`
	Title     string            `json:"title"`
	Intro     string            `json:"intro"`
	Exercises []contentExercise `json:"exercises"`
}

type contentExercise struct {
	Operand1    float64  `json:"operand1"`
	Operand2    float64  `json:"operand2"`
	Operator    string   `json:"operator"`
	FullHint    string   `json:"full_hint"`
	PartialHint string   `json:"partial_hint"`
	StepByStep  []string `json:"step_by_step"`
}

// Load parses the lesson content compiled into the binary.
func Load() (*Catalog, error) {
	return Parse(embeddedContent)
}

// Parse validates and parses lesson content. Answers are always computed
// from the operands; authored content never supplies them.
func Parse(data []byte) (*Catalog, error) {
	if err := validateContent(data); err != nil {
		return nil, err
	}

	var f contentFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &ContentError{Err: fmt.Errorf("decode: %w", err)}
	}

	if !semver.IsValid(f.Version) {
		return nil, &ContentError{Err: fmt.Errorf("invalid version %q", f.Version)}
	}
	if major := semver.Major(f.Version); major != SupportedMajor {
		return nil, &ContentError{Err: fmt.Errorf("unsupported content version %s (want %s.x.y)", f.Version, SupportedMajor)}
	}

	c := &Catalog{
		Version: f.Version,
		bySlug:  make(map[string]int, len(f.Lessons)),
	}
	var errs []string
	for _, cl := range f.Lessons {
		if _, dup := c.bySlug[cl.Slug]; dup {
			errs = append(errs, fmt.Sprintf("duplicate lesson slug %q", cl.Slug))
			continue
		}
		lesson, err := buildLesson(cl)
		if err != nil {
			return nil, err
		}
		c.bySlug[cl.Slug] = len(c.lessons)
		c.lessons = append(c.lessons, lesson)
	}
	if len(errs) > 0 {
		return nil, &ContentError{Err: errors.New(strings.Join(errs, "; "))}
	}
	return c, nil
}

func buildLesson(cl contentLesson) (Lesson, error) {
	lesson := Lesson{Slug: cl.Slug, Title: cl.Title, Intro: cl.Intro}
	for i, ce := range cl.Exercises {
		op, err := problemgen.ParseOperator(ce.Operator)
		if err != nil {
			return Lesson{}, &ContentError{Lesson: cl.Slug, Err: fmt.Errorf("exercise %d: %w", i, err)}
		}
		p := problemgen.NewProblem(ce.Operand1, ce.Operand2, op).WithTechnique(cl.Slug)
		if verr := problemgen.Validate(p, &problemgen.ArithmeticValidator{}); verr != nil {
			return Lesson{}, &ContentError{Lesson: cl.Slug, Err: fmt.Errorf("exercise %d: %w", i, verr)}
		}
		lesson.Exercises = append(lesson.Exercises, Exercise{
			Problem:     p,
			FullHint:    ce.FullHint,
			PartialHint: ce.PartialHint,
			StepByStep:  ce.StepByStep,
		})
	}
	return lesson, nil
}

// Bind attaches the technique registry that backs the lessons. Every
// lesson must name a registered technique.
func (c *Catalog) Bind(reg *technique.Registry) error {
	var missing []string
	for _, l := range c.lessons {
		if _, err := reg.Lookup(l.Slug); err != nil {
			missing = append(missing, l.Slug)
		}
	}
	if len(missing) > 0 {
		return &ContentError{Err: fmt.Errorf("%w: %s", technique.ErrUnknownTechnique, strings.Join(missing, ", "))}
	}
	c.registry = reg
	return nil
}

// Lessons returns all lessons in authored order.
func (c *Catalog) Lessons() []Lesson {
	return c.lessons
}

// Lesson returns the lesson for slug.
func (c *Catalog) Lesson(slug string) (Lesson, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Lesson{}, fmt.Errorf("%w: %s", ErrUnknownLesson, slug)
	}
	return c.lessons[i], nil
}
