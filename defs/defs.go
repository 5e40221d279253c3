// Package defs loads command definitions from JSON documents: which
// commands exist, the argument declarations each one parses, and the
// permissions it demands. A loaded Catalog dispatches raw input lines
// to the parsing engine and can be hot-reloaded through a Watcher.
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xaanit/ArgumentParse/args"
	"github.com/xaanit/ArgumentParse/fingerprint"
	"github.com/xaanit/ArgumentParse/types"
)

// supportedMajor is the definitions format major version this package
// reads. Minor and patch bumps are accepted.
const supportedMajor = "v1"

// Document mirrors the on-disk definitions file.
type Document struct {
	Version  string       `json:"version"`
	Prefix   string       `json:"prefix,omitempty"`
	Commands []CommandDef `json:"commands"`
}

// CommandDef is one command entry in the definitions file.
type CommandDef struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	Args        []ArgDef `json:"args,omitempty"`
}

// ArgDef is one argument declaration in the definitions file.
type ArgDef struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
	Type     string `json:"type"`
	Required bool   `json:"required,omitempty"`
}

// Command is a loaded command ready for dispatch. Decls is normalized
// (de-duplicated, position order) and must not be mutated.
type Command struct {
	Name        string
	Description string
	Permissions []string
	Decls       []args.Argument
	Fingerprint fingerprint.Fingerprint
}

// Catalog holds the commands of one loaded definitions document.
type Catalog struct {
	version string
	prefix  string
	byName  map[string]*Command
	names   []string
}

// Load reads and parses the definitions file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definitions: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// Parse validates data against the embedded schema and builds a
// Catalog from it.
func Parse(data []byte) (*Catalog, error) {
	schema, err := documentValidator()
	if err != nil {
		return nil, fmt.Errorf("compile definitions schema: %w", err)
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("definitions document rejected: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode definitions: %w", err)
	}
	return build(&doc)
}

// build turns a schema-valid document into a Catalog, applying the
// structural checks the schema cannot express.
func build(doc *Document) (*Catalog, error) {
	major := doc.Version
	if !strings.HasPrefix(major, "v") {
		major = "v" + major
	}
	if idx := strings.IndexByte(major, '.'); idx >= 0 {
		major = major[:idx]
	}
	if major != supportedMajor {
		return nil, fmt.Errorf("unsupported definitions version %q (want %s.x)", doc.Version, supportedMajor)
	}

	c := &Catalog{
		version: doc.Version,
		prefix:  doc.Prefix,
		byName:  make(map[string]*Command, len(doc.Commands)),
	}
	for _, def := range doc.Commands {
		if _, exists := c.byName[def.Name]; exists {
			return nil, fmt.Errorf("duplicate command %q", def.Name)
		}

		decls := make([]args.Argument, 0, len(def.Args))
		seenPositions := make(map[int]string, len(def.Args))
		for _, a := range def.Args {
			if prior, dup := seenPositions[a.Position]; dup {
				return nil, fmt.Errorf("command %q: arguments %q and %q share position %d",
					def.Name, prior, a.Name, a.Position)
			}
			seenPositions[a.Position] = a.Name
			decls = append(decls, args.Argument{
				Name:     a.Name,
				Position: a.Position,
				Type:     a.Type,
				Required: a.Required,
			})
		}

		fp, err := fingerprint.New(def.Name, decls)
		if err != nil {
			return nil, fmt.Errorf("fingerprint command %q: %w", def.Name, err)
		}
		c.byName[def.Name] = &Command{
			Name:        def.Name,
			Description: def.Description,
			Permissions: append([]string(nil), def.Permissions...),
			Decls:       args.Normalize(decls),
			Fingerprint: fp,
		}
		c.names = append(c.names, def.Name)
	}
	sort.Strings(c.names)
	return c, nil
}

// Version reports the document's declared format version.
func (c *Catalog) Version() string { return c.version }

// Prefix reports the document's command prefix, or "" when the
// document does not set one.
func (c *Catalog) Prefix() string { return c.prefix }

// Len reports how many commands the catalog holds.
func (c *Catalog) Len() int { return len(c.names) }

// Names returns the command names in sorted order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Commands returns the loaded commands in name order.
func (c *Catalog) Commands() []*Command {
	out := make([]*Command, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.byName[name])
	}
	return out
}

// Command looks up a command by exact name. The returned error for an
// unknown name carries the closest known name, when one is close
// enough to be worth suggesting.
func (c *Catalog) Command(name string) (*Command, error) {
	if cmd, ok := c.byName[name]; ok {
		return cmd, nil
	}
	return nil, &UnknownCommandError{
		Name:       name,
		Suggestion: closestMatch(name, c.names),
	}
}

// CheckTypes reports every declaration whose type kind is absent from
// reg, with a suggestion for the closest registered kind. An empty
// result means every declaration can be parsed with reg.
func (c *Catalog) CheckTypes(reg *types.Registry) []error {
	kinds := reg.Kinds()
	var problems []error
	for _, name := range c.names {
		for _, decl := range c.byName[name].Decls {
			if reg.IsRegistered(decl.Type) {
				continue
			}
			err := fmt.Errorf("command %q: argument %q: unknown type %q", name, decl.Name, decl.Type)
			if closest := closestMatch(decl.Type, kinds); closest != "" {
				err = fmt.Errorf("%w (did you mean %q?)", err, closest)
			}
			problems = append(problems, err)
		}
	}
	return problems
}

// UnknownCommandError reports a lookup for a command the catalog does
// not hold.
type UnknownCommandError struct {
	Name       string
	Suggestion string
}

func (e *UnknownCommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown command %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown command %q", e.Name)
}
