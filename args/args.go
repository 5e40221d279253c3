// Package args holds the argument declarations handed to the positional
// matching engine and the parsed values it hands back.
package args

import (
	"fmt"
	"sort"
	"strings"
)

// Argument declares one expected slot: a label for reporting, the
// numeric position the slot binds to, the symbolic kind resolved
// through a types registry at parse time, and whether the slot must
// match. Arguments are plain comparable values; they are never mutated
// and are safe to share across parses.
type Argument struct {
	Name     string
	Position int
	Type     string
	Required bool
}

func (a Argument) String() string {
	req := "optional"
	if a.Required {
		req = "required"
	}
	return fmt.Sprintf("%s(pos=%d, %s, %s)", a.Name, a.Position, a.Type, req)
}

// Normalize removes structurally-equal duplicates (first occurrence
// wins) and sorts the rest by Position. The sort is stable, so
// declarations sharing a position keep their caller order.
func Normalize(decls []Argument) []Argument {
	seen := make(map[Argument]struct{}, len(decls))
	out := make([]Argument, 0, len(decls))
	for _, d := range decls {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

// Parsed is one (name, value) pair produced for a matched slot.
type Parsed struct {
	Name  string
	Value any
}

// ParsedArguments is the ordered collection of pairs a parse produced,
// in slot-processing order (numeric position order, not the order the
// caller supplied declarations in).
type ParsedArguments struct {
	pairs  []Parsed
	byName map[string]int
}

// NewParsedArguments returns an empty collection.
func NewParsedArguments() *ParsedArguments {
	return &ParsedArguments{byName: make(map[string]int)}
}

// Add appends a pair. When two declarations share a name, the first
// pair recorded under that name is the one Get returns.
func (p *ParsedArguments) Add(name string, value any) {
	if _, exists := p.byName[name]; !exists {
		p.byName[name] = len(p.pairs)
	}
	p.pairs = append(p.pairs, Parsed{Name: name, Value: value})
}

// Len reports how many pairs were produced.
func (p *ParsedArguments) Len() int {
	return len(p.pairs)
}

// Get returns the value recorded under name.
func (p *ParsedArguments) Get(name string) (any, bool) {
	i, ok := p.byName[name]
	if !ok {
		return nil, false
	}
	return p.pairs[i].Value, true
}

// Names returns the pair names in processing order.
func (p *ParsedArguments) Names() []string {
	names := make([]string, len(p.pairs))
	for i, pair := range p.pairs {
		names[i] = pair.Name
	}
	return names
}

// All returns a copy of the pairs in processing order.
func (p *ParsedArguments) All() []Parsed {
	out := make([]Parsed, len(p.pairs))
	copy(out, p.pairs)
	return out
}

func (p *ParsedArguments) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, pair := range p.pairs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", pair.Name, pair.Value)
	}
	b.WriteByte(']')
	return b.String()
}

// Value returns the pair recorded under name as T. ok is false when the
// name is absent or the value is not a T.
func Value[T any](p *ParsedArguments, name string) (T, bool) {
	var zero T
	v, ok := p.Get(name)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
