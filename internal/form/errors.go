package form

import (
	"fmt"
	"strings"
)

type ErrMalformedField struct {
	error
	Key string
}

func NewErrMalformedField(f Field, raw string) *ErrMalformedField {
	return &ErrMalformedField{error: fmt.Errorf("%s: %q is not a valid number", f.Label, raw), Key: f.Key}
}

// Violation describes one field outside of its allowed range.
type Violation struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

type ErrOutOfBounds struct {
	Violations []Violation
}

func (e *ErrOutOfBounds) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, "; ")
}
