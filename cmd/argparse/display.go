package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/xaanit/ArgumentParse/defs"
	"github.com/xaanit/ArgumentParse/types"
)

// printInvocation renders one parsed line as name = value pairs in
// scan order. Values print by their declared kind because rune and
// int32 are the same type to a switch.
func printInvocation(w io.Writer, inv *defs.Invocation) {
	kinds := make(map[string]string, len(inv.Command.Decls))
	for _, decl := range inv.Command.Decls {
		kinds[decl.Name] = decl.Type
	}

	fmt.Fprintf(w, "%s %s\n", color.GreenString("ok:"), inv.Command.Name)
	pairs := inv.Args.All()
	if len(pairs) == 0 {
		fmt.Fprintln(w, color.New(color.Faint).Sprint("  (no arguments parsed)"))
		return
	}
	for _, p := range pairs {
		fmt.Fprintf(w, "  %s = %s (%s)\n", color.CyanString(p.Name), formatValue(p.Value, kinds[p.Name]), kinds[p.Name])
	}
}

func formatValue(v any, kind string) string {
	if kind == types.KindChar {
		if r, ok := v.(rune); ok {
			return fmt.Sprintf("%q", r)
		}
	}
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

// printCatalog lists every loaded command with its fingerprint and
// declarations.
func printCatalog(w io.Writer, c *defs.Catalog) {
	prefix := c.Prefix()
	if prefix == "" {
		prefix = "(none)"
	}
	fmt.Fprintf(w, "definitions %s, prefix %s, %d commands\n", c.Version(), prefix, c.Len())

	for _, cmd := range c.Commands() {
		line := fmt.Sprintf("%s  %s", color.New(color.Bold).Sprint(cmd.Name), color.New(color.Faint).Sprint(cmd.Fingerprint.Short()))
		if cmd.Description != "" {
			line += "  " + cmd.Description
		}
		fmt.Fprintln(w, line)
		for _, decl := range cmd.Decls {
			required := ""
			if decl.Required {
				required = "  required"
			}
			fmt.Fprintf(w, "  %d: %s %s%s\n", decl.Position, decl.Name, decl.Type, required)
		}
		if len(cmd.Permissions) > 0 {
			fmt.Fprintf(w, "  requires: %s\n", strings.Join(cmd.Permissions, ", "))
		}
	}
}

// printUpdate reports a definitions reload, successful or not.
func printUpdate(w io.Writer, u defs.Update) {
	if u.Err != nil {
		fmt.Fprintf(w, "%s %v (keeping previous definitions)\n", color.RedString("reload failed:"), u.Err)
		return
	}
	var parts []string
	for _, name := range u.Added {
		parts = append(parts, "+"+name)
	}
	for _, name := range u.Changed {
		parts = append(parts, "~"+name)
	}
	for _, name := range u.Removed {
		parts = append(parts, "-"+name)
	}
	if len(parts) == 0 {
		return
	}
	fmt.Fprintf(w, "%s %s\n", color.YellowString("definitions reloaded:"), strings.Join(parts, " "))
}
