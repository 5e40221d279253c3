package defs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/xaanit/ArgumentParse/args"
	"github.com/xaanit/ArgumentParse/parse"
	"github.com/xaanit/ArgumentParse/types"
)

// ErrNotCommand reports a line Dispatch did not act on: one that does
// not start with the configured prefix, or one that is only the
// prefix. Under IgnoreMissingPermissions a permission failure is
// deliberately indistinguishable from a non-command line, so callers
// that stay silent on ErrNotCommand stay silent there too.
var ErrNotCommand = errors.New("not a command")

// PermissionError reports an invocation whose caller lacks some of the
// command's required permissions. It is only returned under
// ReportMissingPermissions.
type PermissionError struct {
	Command string
	Missing []string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("command %q requires permissions: %s", e.Command, strings.Join(e.Missing, ", "))
}

// Invocation is a successfully dispatched line: the command it named
// and the arguments parsed from the rest of it.
type Invocation struct {
	Command *Command
	Args    *args.ParsedArguments
}

// Dispatch routes one raw input line. It strips opts.Prefix, resolves
// the first word to a command, checks granted permissions against the
// command's required ones, and parses the remainder of the line with
// the command's declarations. Leading whitespace before the prefix is
// tolerated.
func (c *Catalog) Dispatch(reg *types.Registry, line string, granted []string, opts parse.Options) (*Invocation, error) {
	body := strings.TrimLeft(line, " \t\r\n")
	if !strings.HasPrefix(body, opts.Prefix) {
		return nil, ErrNotCommand
	}
	body = strings.TrimLeft(body[len(opts.Prefix):], " \t")

	word := body
	rest := ""
	if idx := strings.IndexFunc(body, unicode.IsSpace); idx >= 0 {
		word, rest = body[:idx], body[idx:]
	}
	if word == "" {
		return nil, ErrNotCommand
	}

	cmd, err := c.Command(word)
	if err != nil {
		return nil, err
	}

	if missing := missingPermissions(cmd.Permissions, granted); len(missing) > 0 {
		if opts.OnMissingPermissions == parse.IgnoreMissingPermissions {
			return nil, ErrNotCommand
		}
		return nil, &PermissionError{Command: cmd.Name, Missing: missing}
	}

	out := parse.Parse(reg, cmd.Decls, rest, opts)
	if err := out.Err(); err != nil {
		return nil, fmt.Errorf("command %q: %w", cmd.Name, err)
	}
	parsed, _ := out.Get()
	return &Invocation{Command: cmd, Args: parsed}, nil
}

// missingPermissions returns the required permissions absent from
// granted, sorted for stable reporting.
func missingPermissions(required, granted []string) []string {
	if len(required) == 0 {
		return nil
	}
	have := make(map[string]struct{}, len(granted))
	for _, g := range granted {
		have[g] = struct{}{}
	}
	var missing []string
	for _, r := range required {
		if _, ok := have[r]; !ok {
			missing = append(missing, r)
		}
	}
	sort.Strings(missing)
	return missing
}
