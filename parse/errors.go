package parse

import (
	"fmt"
	"strings"

	"github.com/xaanit/ArgumentParse/args"
)

// MissingArgumentsError reports required declarations that had no
// matching token in the text. Under the Quick strategy only the
// declarations visited before scanning stopped are listed.
type MissingArgumentsError struct {
	Missing []args.Argument
}

func (e *MissingArgumentsError) Error() string {
	names := make([]string, len(e.Missing))
	for i, d := range e.Missing {
		names[i] = d.Name
	}
	return fmt.Sprintf("missing required arguments: %s", strings.Join(names, ", "))
}

// ConversionError reports a convert step that failed even though the
// validator accepted the candidate. It aborts the whole parse; no
// partial result is returned.
type ConversionError struct {
	Name      string
	Kind      string
	Candidate string
	Cause     error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("converting argument %q (%s) from %q: %v", e.Name, e.Kind, e.Candidate, e.Cause)
}

func (e *ConversionError) Unwrap() error { return e.Cause }

// UnknownTypeError reports a declaration whose kind has no entry in the
// registry the engine was given.
type UnknownTypeError struct {
	Name string
	Kind string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("argument %q declares unknown type %q", e.Name, e.Kind)
}

// TypePanicError wraps a panic recovered at the engine boundary, so a
// misbehaving Type implementation surfaces as an error outcome instead
// of unwinding into the caller.
type TypePanicError struct {
	Name  string
	Kind  string
	Value any
}

func (e *TypePanicError) Error() string {
	return fmt.Sprintf("argument type %q panicked while matching %q: %v", e.Kind, e.Name, e.Value)
}
