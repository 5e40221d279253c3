package parse

import (
	"fmt"
	"strings"
)

// MissingArgsStrategy selects how scanning reacts to a missing required
// argument.
type MissingArgsStrategy int

const (
	// Thorough keeps scanning after a miss and reports every missing
	// required declaration at once.
	Thorough MissingArgsStrategy = iota
	// Quick stops scanning at the first missing required declaration;
	// later declarations are neither matched nor reported.
	Quick
)

func (s MissingArgsStrategy) String() string {
	switch s {
	case Thorough:
		return "thorough"
	case Quick:
		return "quick"
	default:
		return fmt.Sprintf("MissingArgsStrategy(%d)", int(s))
	}
}

// PermissionsFailureMode selects how dispatch reacts when the caller
// lacks a permission the command requires.
type PermissionsFailureMode int

const (
	// ReportMissingPermissions surfaces a permissions error.
	ReportMissingPermissions PermissionsFailureMode = iota
	// IgnoreMissingPermissions drops the command silently.
	IgnoreMissingPermissions
)

func (m PermissionsFailureMode) String() string {
	switch m {
	case ReportMissingPermissions:
		return "report"
	case IgnoreMissingPermissions:
		return "ignore"
	default:
		return fmt.Sprintf("PermissionsFailureMode(%d)", int(m))
	}
}

// Options is the resolved configuration around a parse: the command
// prefix the dispatcher strips, the missing-argument strategy, and the
// permissions-failure policy. The engine itself reads only MissingArgs;
// Prefix and OnMissingPermissions belong to the dispatch layer.
type Options struct {
	Prefix               string
	MissingArgs          MissingArgsStrategy
	OnMissingPermissions PermissionsFailureMode
}

// DefaultOptions returns the stock configuration: prefix "!", thorough
// scanning, permissions failures reported.
func DefaultOptions() Options {
	return Options{
		Prefix:               "!",
		MissingArgs:          Thorough,
		OnMissingPermissions: ReportMissingPermissions,
	}
}

// OptionsBuilder assembles Options fluently:
//
//	opts := parse.NewOptions().
//		WithPrefix("!").
//		WithMissingArgs(parse.Quick).
//		Build()
type OptionsBuilder struct {
	opts Options
}

// NewOptions starts a builder seeded with DefaultOptions.
func NewOptions() *OptionsBuilder {
	return &OptionsBuilder{opts: DefaultOptions()}
}

// WithPrefix sets the command prefix. An empty prefix means commands
// carry no sigil at all.
func (b *OptionsBuilder) WithPrefix(prefix string) *OptionsBuilder {
	b.opts.Prefix = prefix
	return b
}

// WithMissingArgs sets the missing-argument strategy.
func (b *OptionsBuilder) WithMissingArgs(s MissingArgsStrategy) *OptionsBuilder {
	b.opts.MissingArgs = s
	return b
}

// WithOnMissingPermissions sets the permissions-failure policy.
func (b *OptionsBuilder) WithOnMissingPermissions(m PermissionsFailureMode) *OptionsBuilder {
	b.opts.OnMissingPermissions = m
	return b
}

// Build validates and returns the Options. Invalid configuration is a
// programming error and panics, matching how schema builders behave.
func (b *OptionsBuilder) Build() Options {
	if err := b.validate(); err != nil {
		panic(fmt.Sprintf("parse: invalid options: %v", err))
	}
	return b.opts
}

func (b *OptionsBuilder) validate() error {
	if strings.ContainsAny(b.opts.Prefix, " \t\r\n") {
		return fmt.Errorf("prefix %q must not contain whitespace", b.opts.Prefix)
	}
	switch b.opts.MissingArgs {
	case Thorough, Quick:
	default:
		return fmt.Errorf("unknown missing-args strategy %d", int(b.opts.MissingArgs))
	}
	switch b.opts.OnMissingPermissions {
	case ReportMissingPermissions, IgnoreMissingPermissions:
	default:
		return fmt.Errorf("unknown permissions-failure mode %d", int(b.opts.OnMissingPermissions))
	}
	return nil
}
