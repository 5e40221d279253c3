// Package types defines the argument kinds the positional matching
// engine understands: for each kind, how to locate a candidate token in
// free-form text, whether that candidate is well formed, and how to turn
// it into a typed value. Kinds are looked up by symbolic name through a
// Registry, so new kinds are added by registering an implementation, not
// by touching the engine.
package types

import "github.com/xaanit/ArgumentParse/result"

// Built-in kind names.
const (
	KindByte     = "byte"
	KindShort    = "short"
	KindInteger  = "integer"
	KindLong     = "long"
	KindFloat    = "float"
	KindDouble   = "double"
	KindBoolean  = "boolean"
	KindString   = "string"
	KindChar     = "char"
	KindUnit     = "unit"
	KindDuration = "duration"
)

// Type is one argument kind over the capability set extract, validate,
// convert.
//
// Extract reports the candidate token found in text and whether one was
// found at all; ok may be true with an empty candidate, which is a match
// that consumes nothing (the unit kind works this way). Extract must
// never panic, whatever the input.
//
// Validate must be pure and total: implementations that validate by
// attempting a parse trap their own failures and return false.
//
// Convert is only invoked on candidates Validate accepted. It returns a
// Value outcome with the typed value, an Error outcome when conversion
// fails anyway, or Empty to deliberately decline producing a value.
type Type interface {
	Kind() string
	Extract(text string) (candidate string, ok bool)
	Validate(candidate string) bool
	Convert(candidate string) result.Outcome[any]
}
