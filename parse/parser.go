// Package parse implements the positional matching engine: given a set
// of argument declarations, a type registry, and the raw command text,
// it walks the declarations in position order, extracts and converts
// one token per slot, and returns either every parsed value or a
// structured failure.
package parse

import (
	"fmt"
	"strings"

	"github.com/xaanit/ArgumentParse/args"
	"github.com/xaanit/ArgumentParse/result"
	"github.com/xaanit/ArgumentParse/types"
)

// Parse matches decls against text and returns the full ordered value
// collection, or the first failure.
//
// Declarations are de-duplicated structurally and sorted by Position
// before matching; declarations sharing a position keep caller order.
// For each slot the registry entry for the declared kind extracts a
// candidate from the remaining text; a candidate the validator rejects
// counts as no candidate at all. A missing required slot is recorded,
// and under the Quick strategy scanning stops right there. A found
// candidate is consumed at its first occurrence (everything up to and
// including the match, whitespace-trimmed) and then converted: an Empty
// conversion skips the slot, an error aborts the whole parse, a value
// is recorded under the declaration's name.
//
// Parse never panics: failures from Type implementations, including
// panics, come back as Error outcomes.
func Parse(reg *types.Registry, decls []args.Argument, text string, opts Options) (out result.Outcome[*args.ParsedArguments]) {
	if reg == nil {
		return result.Error[*args.ParsedArguments](fmt.Errorf("parse: nil registry"))
	}

	ordered := args.Normalize(decls)

	var current args.Argument
	defer func() {
		if r := recover(); r != nil {
			out = result.Error[*args.ParsedArguments](&TypePanicError{
				Name:  current.Name,
				Kind:  current.Type,
				Value: r,
			})
		}
	}()

	remaining := strings.TrimSpace(text)
	parsed := args.NewParsedArguments()
	var missing []args.Argument

	for _, decl := range ordered {
		current = decl

		typ, ok := reg.Lookup(decl.Type)
		if !ok {
			return result.Error[*args.ParsedArguments](&UnknownTypeError{Name: decl.Name, Kind: decl.Type})
		}

		candidate, found := typ.Extract(remaining)
		if found && !typ.Validate(candidate) {
			found = false
		}

		if !found {
			debugLogger.Debug("slot unmatched",
				"name", decl.Name, "position", decl.Position, "kind", decl.Type, "required", decl.Required)
			if decl.Required {
				missing = append(missing, decl)
				if opts.MissingArgs == Quick {
					break
				}
			}
			continue
		}

		// Consume through the first occurrence of the candidate; the
		// pattern-scan kinds may have matched past unrelated text, and
		// that text is consumed with the token.
		idx := strings.Index(remaining, candidate)
		remaining = strings.TrimSpace(remaining[idx+len(candidate):])

		outcome := typ.Convert(candidate)
		switch {
		case outcome.IsEmpty():
			debugLogger.Debug("slot declined",
				"name", decl.Name, "position", decl.Position, "kind", decl.Type)
		case outcome.IsError():
			return result.Error[*args.ParsedArguments](&ConversionError{
				Name:      decl.Name,
				Kind:      decl.Type,
				Candidate: candidate,
				Cause:     outcome.Err(),
			})
		default:
			value := outcome.MustGet()
			parsed.Add(decl.Name, value)
			debugLogger.Debug("slot matched",
				"name", decl.Name, "position", decl.Position, "kind", decl.Type,
				"candidate", candidate, "left", len(remaining))
		}
	}

	if len(missing) > 0 {
		return result.Error[*args.ParsedArguments](&MissingArgumentsError{Missing: missing})
	}

	return result.Value(parsed)
}
