package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidInputs = errors.New("invalid projection inputs")
	ErrNoRecipients  = errors.New("no email recipients given")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrEmailDisabled = errors.New("email sending is disabled")
)

// ValidationError lists the rejected input fields with a user-facing message each.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("%s (%s)", ErrInvalidInputs, strings.Join(parts, "; "))
}

// Is makes errors.Is(err, ErrInvalidInputs) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInputs
}
