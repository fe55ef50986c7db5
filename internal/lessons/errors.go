package lessons

import (
	"errors"
	"fmt"
)

// ErrUnknownLesson is returned when a lesson slug is not in the catalog.
var ErrUnknownLesson = errors.New("unknown lesson")

// ErrUnbound is returned when a catalog is used before Bind.
var ErrUnbound = errors.New("lesson catalog not bound to a technique registry")

// ContentError reports malformed lesson content.
type ContentError struct {
	Lesson string // Slug of the offending lesson, if known
	Err    error
}

func (e *ContentError) Error() string {
	if e.Lesson != "" {
		return fmt.Sprintf("lesson content %q: %v", e.Lesson, e.Err)
	}
	return fmt.Sprintf("lesson content: %v", e.Err)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}
