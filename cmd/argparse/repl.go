package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/xaanit/ArgumentParse/defs"
	"github.com/xaanit/ArgumentParse/types"
)

func newReplCmd(defsPath, prefix *string, quick *bool, perms *string) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively dispatch lines, reloading definitions on change",
		Args:  usage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			return runRepl(cmd, *defsPath, *prefix, *quick, *perms)
		},
	}
}

func runRepl(cmd *cobra.Command, defsPath, prefix string, quick bool, perms string) error {
	out := cmd.OutOrStdout()
	sessionID := uuid.NewString()

	watcher, err := defs.Watch(defsPath, func(u defs.Update) {
		printUpdate(out, u)
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	granted := splitPerms(perms)
	slog.Debug("repl session started",
		slog.String("session", sessionID),
		slog.String("defs", defsPath),
		slog.Int("commands", watcher.Catalog().Len()))

	fmt.Fprintf(out, "%s session %s, %d commands from %s\n",
		color.CyanString("argparse repl:"), sessionID[:8], watcher.Catalog().Len(), defsPath)
	fmt.Fprintln(out, color.New(color.Faint).Sprint("type :help for help, :quit to leave"))

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, color.CyanString("argparse> "))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := scanner.Text()

		switch strings.TrimSpace(line) {
		case "":
			continue
		case ":quit", ":q":
			return nil
		case ":help":
			printHelp(out)
			continue
		case ":commands":
			printCatalog(out, watcher.Catalog())
			continue
		}

		catalog := watcher.Catalog()
		opts, err := resolveOptions(cmd, catalog, prefix, quick)
		if err != nil {
			return err
		}

		slog.Debug("repl dispatch", slog.String("session", sessionID), slog.String("line", line))
		inv, err := catalog.Dispatch(types.Default(), line, granted, opts)
		if err != nil {
			printDispatchError(out, err, opts.Prefix)
			continue
		}
		printInvocation(out, inv)
	}
}

func printDispatchError(w io.Writer, err error, prefix string) {
	if errors.Is(err, defs.ErrNotCommand) {
		fmt.Fprintln(w, color.New(color.Faint).Sprintf("(not a command; prefix is %q)", prefix))
		return
	}
	fmt.Fprintf(w, "%s %v\n", color.RedString("error:"), err)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Type a prefixed command line to parse it, or one of:")
	fmt.Fprintln(w, "  :commands  list the loaded commands")
	fmt.Fprintln(w, "  :help      show this help")
	fmt.Fprintln(w, "  :quit      leave the repl")
}
