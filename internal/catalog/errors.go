package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var errDuplicateID = errors.New("duplicate id")

// Problem describes one defect found while building the catalog.
type Problem struct {
	Index int
	ID    string
	Field string
	Err   error
}

func (p Problem) String() string {
	who := p.ID
	if who == "" {
		who = fmt.Sprintf("#%d", p.Index)
	}
	return fmt.Sprintf("%s.%s: %v", who, p.Field, p.Err)
}

// ValidationError aggregates every problem found in a catalog file. It is a
// fatal configuration error: the catalog is unusable until all are fixed.
type ValidationError struct {
	problems []Problem
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.problems))
	for _, p := range e.problems {
		parts = append(parts, p.String())
	}
	return fmt.Sprintf("catalog validation failed: %s", strings.Join(parts, "; "))
}

// Problems returns a copy of the recorded problems.
func (e *ValidationError) Problems() []Problem {
	out := make([]Problem, len(e.problems))
	copy(out, e.problems)
	return out
}

// Unwrap exposes the underlying causes to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	out := make([]error, 0, len(e.problems))
	for _, p := range e.problems {
		out = append(out, p.Err)
	}
	return out
}

func structProblems(index int, id string, err error) []Problem {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Problem{{Index: index, ID: id, Field: "record", Err: err}}
	}
	out := make([]Problem, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Problem{
			Index: index,
			ID:    id,
			Field: fe.Field(),
			Err:   fmt.Errorf("failed %q rule", fe.Tag()),
		})
	}
	return out
}
