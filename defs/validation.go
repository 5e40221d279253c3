package defs

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"
)

// schemaURL is the resource name the embedded schema is registered under.
// The scheme is synthetic; nothing is ever fetched.
const schemaURL = "schema://definitions.json"

// documentSchema validates the raw definitions document before it is
// decoded. additionalProperties is false throughout so typos in field
// names surface as schema errors instead of silently-ignored JSON.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "commands"],
  "additionalProperties": false,
  "properties": {
    "version": {"type": "string", "format": "semver"},
    "prefix": {"type": "string", "maxLength": 16, "pattern": "^\\S*$"},
    "commands": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1, "pattern": "^\\S+$"},
          "description": {"type": "string"},
          "permissions": {
            "type": "array",
            "items": {"type": "string", "minLength": 1},
            "uniqueItems": true
          },
          "args": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name", "position", "type"],
              "additionalProperties": false,
              "properties": {
                "name": {"type": "string", "minLength": 1},
                "position": {"type": "integer", "minimum": 1},
                "type": {"type": "string", "minLength": 1},
                "required": {"type": "boolean"}
              }
            }
          }
        }
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// documentValidator compiles the embedded schema on first use. The
// schema is a constant, so a compile failure is a programming error
// and every caller sees the same result.
func documentValidator() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		compiler.AssertFormat = true

		if compiler.Formats == nil {
			compiler.Formats = make(map[string]func(interface{}) bool)
		}
		for name, validator := range formatValidators() {
			compiler.Formats[name] = validator
		}

		// The document is self-contained; refuse any $ref that would
		// reach outside the embedded resource.
		compiler.LoadURL = func(url string) (io.ReadCloser, error) {
			return nil, fmt.Errorf("external schema reference not allowed: %s", url)
		}

		if err := compiler.AddResource(schemaURL, strings.NewReader(documentSchema)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// formatValidators returns the custom format validators wired into the
// compiler. Non-string inputs pass; type checks are the schema's job.
func formatValidators() map[string]func(interface{}) bool {
	return map[string]func(interface{}) bool{
		"semver": func(v interface{}) bool {
			s, ok := v.(string)
			if !ok {
				return true
			}
			// semver.IsValid requires the "v" prefix (e.g. "v1.2.3");
			// definitions files usually write plain "1.2.3".
			if !strings.HasPrefix(s, "v") {
				s = "v" + s
			}
			return semver.IsValid(s)
		},
	}
}
