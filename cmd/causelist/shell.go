// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/pdiddy/causelist/internal/workflow"
	"github.com/pdiddy/causelist/pkg/types"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive session: load, select, fetch, download, check",
	Long: `Shell reads commands from stdin, one per line, and keeps the current
selection between them. Selecting a new value at any level clears the levels
below it, which must be loaded again.

Commands:
  load states|districts|complexes|courts
  select state|district|complex|court <code>
  options [level]       show loaded options
  date [dd-mm-yyyy]     show or set the cause list date
  fetch civil|criminal  save the selected court's cause list
  download              save civil cause lists for the selected complex
  check <query>         search saved files
  status                show the current selection
  help
  quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		sh := newShell(sess.controller, cmd.OutOrStdout())
		return sh.run(cmd.Context(), cmd.InOrStdin())
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

const shellHelp = `load states|districts|complexes|courts
select state|district|complex|court <code>
options [level] | date [dd-mm-yyyy] | status
fetch civil|criminal | download | check <query>
help | quit`

// shell holds one interactive session's selection.
type shell struct {
	c     *workflow.Controller
	state workflow.State
	out   io.Writer
}

func newShell(c *workflow.Controller, out io.Writer) *shell {
	return &shell{c: c, state: c.NewState(), out: out}
}

func (sh *shell) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(sh.out, "Ready. Type 'load states' to start, 'help' for commands.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(sh.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(sh.out)
			return scanner.Err()
		}
		quit, err := sh.exec(ctx, scanner.Text())
		if err != nil {
			fmt.Fprintf(sh.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// exec runs one command line. Errors are user-input errors; the session
// continues after them.
func (sh *shell) exec(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprintln(sh.out, shellHelp)
	case "status":
		fmt.Fprintln(sh.out, sh.state.String())
	case "load":
		return false, sh.load(args)
	case "select":
		return false, sh.selectCode(args)
	case "options":
		return false, sh.options(args)
	case "date":
		if len(args) == 0 {
			fmt.Fprintln(sh.out, sh.state.Date)
			return false, nil
		}
		sh.state = sh.state.WithDate(args[0])
		fmt.Fprintf(sh.out, "Date set to %s\n", sh.state.Date)
	case "fetch":
		return false, sh.fetch(ctx, args)
	case "download":
		return false, sh.download(ctx)
	case "check":
		return false, sh.check(ctx, afterWord(line))
	default:
		return false, fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return false, nil
}

func (sh *shell) load(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: load states|districts|complexes|courts")
	}
	level, err := parseLevel(args[0])
	if err != nil {
		return err
	}
	next, err := sh.c.Load(sh.state, level)
	if err != nil {
		return err
	}
	sh.state = next
	fmt.Fprintf(sh.out, "Loaded %s: %d\n", plural(level), len(next.Options(level)))
	return nil
}

func (sh *shell) selectCode(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: select state|district|complex|court <code>")
	}
	level, err := parseLevel(args[0])
	if err != nil {
		return err
	}
	next, err := sh.c.Select(sh.state, level, args[1])
	if err != nil {
		return err
	}
	sh.state = next
	node, _ := types.FindNode(next.Options(level), args[1])
	fmt.Fprintf(sh.out, "Selected %s %s\n", level, node.Label())
	return nil
}

func (sh *shell) options(args []string) error {
	level := deepestLoaded(sh.state)
	if len(args) > 0 {
		var err error
		if level, err = parseLevel(args[0]); err != nil {
			return err
		}
	}
	if level == "" {
		return errors.New("nothing loaded yet: run 'load states'")
	}
	for _, n := range sh.state.Options(level) {
		marker := " "
		if n.Code == sh.state.Selected(level) {
			marker = "*"
		}
		fmt.Fprintf(sh.out, "%s %s\n", marker, n.Label())
	}
	return nil
}

func (sh *shell) fetch(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: fetch civil|criminal")
	}
	mode, err := types.ParseMode(args[0])
	if err != nil {
		return err
	}
	saved, err := sh.c.FetchCauseList(ctx, sh.state, mode)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Saved: %s\n", saved.Location)
	return nil
}

func (sh *shell) download(ctx context.Context) error {
	saved, err := sh.c.DownloadAll(ctx, sh.state)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Saved %d JSON cause lists.\n", len(saved))
	return nil
}

func (sh *shell) check(ctx context.Context, query string) error {
	check, err := sh.c.CheckCase(ctx, query)
	if err != nil {
		return err
	}
	if len(check.Result.Matches) == 0 {
		fmt.Fprintf(sh.out, "No matches for %s\n", check.Result.Query)
		return nil
	}
	fmt.Fprintf(sh.out, "Found %d matches. Saved in %s\n", len(check.Result.Matches), check.Location)
	return nil
}

// afterWord returns line without its first word. Spacing inside the rest is
// kept as typed.
func afterWord(line string) string {
	line = strings.TrimSpace(line)
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		return line[i:]
	}
	return ""
}

// parseLevel accepts singular or plural level names.
func parseLevel(s string) (types.Level, error) {
	s = strings.ToLower(s)
	for _, level := range types.Levels {
		if s == string(level) || s == plural(level) {
			return level, nil
		}
	}
	return "", fmt.Errorf("unknown level %q: use state, district, complex, or court", s)
}

func deepestLoaded(s workflow.State) types.Level {
	if s.Stage() == workflow.NoSelection {
		return ""
	}
	return types.Levels[int(s.Stage())-1]
}
