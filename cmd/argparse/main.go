// Command argparse parses prefixed command lines against argument
// declarations loaded from a JSON definitions file.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joeshaw/envdecode"
	"github.com/spf13/cobra"

	"github.com/xaanit/ArgumentParse/defs"
	"github.com/xaanit/ArgumentParse/parse"
	"github.com/xaanit/ArgumentParse/types"
)

// Config carries the environment settings. Command-line flags default
// to these values and win when set explicitly.
type Config struct {
	// Path to the definitions file. ENV: ARGPARSE_DEFS
	Defs string `env:"ARGPARSE_DEFS,default=defs.json"`
	// Command prefix override. ENV: ARGPARSE_PREFIX
	Prefix string `env:"ARGPARSE_PREFIX"`
	// Stop at the first missing required argument. ENV: ARGPARSE_QUICK
	Quick bool `env:"ARGPARSE_QUICK"`
	// Comma-separated granted permissions. ENV: ARGPARSE_PERMS
	Perms string `env:"ARGPARSE_PERMS"`
	// Disable colored output. ENV: ARGPARSE_NO_COLOR
	NoColor bool `env:"ARGPARSE_NO_COLOR"`
}

func loadConfig() (Config, error) {
	// The Defs default guarantees at least one field decodes, so any
	// error here is a genuinely malformed environment value.
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

// usageError marks errors that should exit with the usage status.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// usage wraps a cobra positional-argument validator so violations are
// reported as usage errors.
func usage(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var (
		defsPath string
		prefix   string
		quick    bool
		perms    string
		noColor  bool
	)

	rootCmd := &cobra.Command{
		Use:   "argparse",
		Short: "Parse prefixed command lines against JSON-defined argument declarations",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&defsPath, "defs", "d", cfg.Defs, "Path to the definitions file")
	rootCmd.PersistentFlags().StringVar(&prefix, "prefix", cfg.Prefix, "Command prefix (overrides the definitions file)")
	rootCmd.PersistentFlags().BoolVar(&quick, "quick", cfg.Quick, "Stop at the first missing required argument")
	rootCmd.PersistentFlags().StringVar(&perms, "perms", cfg.Perms, "Comma-separated granted permissions")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", cfg.NoColor, "Disable colored output")

	rootCmd.AddCommand(
		newParseCmd(&defsPath, &prefix, &quick, &perms),
		newReplCmd(&defsPath, &prefix, &quick, &perms),
		newCheckCmd(&defsPath),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var uerr *usageError
		if errors.As(err, &uerr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newParseCmd(defsPath, prefix *string, quick *bool, perms *string) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [line]",
		Short: "Dispatch one line and print the parsed arguments",
		Args:  usage(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			catalog, err := defs.Load(*defsPath)
			if err != nil {
				return err
			}
			opts, err := resolveOptions(cmd, catalog, *prefix, *quick)
			if err != nil {
				return err
			}

			inv, err := catalog.Dispatch(types.Default(), cmdArgs[0], splitPerms(*perms), opts)
			if err != nil {
				if errors.Is(err, defs.ErrNotCommand) {
					return fmt.Errorf("not a command (prefix %q)", opts.Prefix)
				}
				return err
			}
			printInvocation(cmd.OutOrStdout(), inv)
			return nil
		},
	}
}

func newCheckCmd(defsPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the definitions file and print command fingerprints",
		Args:  usage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			catalog, err := defs.Load(*defsPath)
			if err != nil {
				return err
			}
			printCatalog(cmd.OutOrStdout(), catalog)

			problems := catalog.CheckTypes(types.Default())
			for _, p := range problems {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", color.RedString("problem:"), p)
			}
			if len(problems) > 0 {
				return fmt.Errorf("%d unresolved type kinds", len(problems))
			}
			return nil
		},
	}
}

// resolveOptions builds engine options from the flag set and the
// loaded catalog. An explicit --prefix wins even when empty; otherwise
// a non-empty flag or environment value wins over the document's own
// prefix, which wins over the built-in default.
func resolveOptions(cmd *cobra.Command, catalog *defs.Catalog, prefix string, quick bool) (parse.Options, error) {
	resolved := parse.DefaultOptions().Prefix
	switch {
	case cmd.Flags().Changed("prefix"):
		resolved = prefix
	case prefix != "":
		resolved = prefix
	case catalog.Prefix() != "":
		resolved = catalog.Prefix()
	}
	if strings.ContainsAny(resolved, " \t\r\n") {
		return parse.Options{}, fmt.Errorf("prefix %q must not contain whitespace", resolved)
	}

	strategy := parse.Thorough
	if quick {
		strategy = parse.Quick
	}
	return parse.NewOptions().
		WithPrefix(resolved).
		WithMissingArgs(strategy).
		Build(), nil
}

// splitPerms turns the comma-separated permissions value into a clean
// slice. Empty entries are dropped.
func splitPerms(perms string) []string {
	var out []string
	for _, p := range strings.Split(perms, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
