package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/calder-lang/calder/pkg/parser"
)

const (
	replPrompt = "calder> "
	contPrompt = "   ...> "
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive parser session",
		Long: `Repl reads expressions interactively and prints their syntax trees.
Input continues across lines while a scope, group or string is unterminated.`,
		Args: cobra.NoArgs,
		RunE: runRepl,
	}
}

func runRepl(cmd *cobra.Command, _ []string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "calder %s\n", Version)
	fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	fmt.Fprintln(out)

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buf.Reset()
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if buf.Len() == 0 {
			switch strings.TrimSpace(line) {
			case "":
				continue
			case ".quit", ".exit":
				return nil
			case ".help":
				fmt.Fprintln(out, "  .help   show this help")
				fmt.Fprintln(out, "  .quit   exit the session")
				fmt.Fprintln(out, "Anything else is parsed as calder source.")
				continue
			}
		}

		buf.WriteString(line)
		buf.WriteString("\n")
		src := buf.String()

		prog, err := parseSource(src)
		if err != nil {
			// An unterminated scope, group or string means the entry is
			// incomplete, not wrong: keep reading lines.
			var eofErr *parser.EOFError
			if errors.As(err, &eofErr) {
				rl.SetPrompt(contPrompt)
				continue
			}
			fmt.Fprintln(cmd.ErrOrStderr(), renderError(err, src))
		} else {
			printProgram(out, prog)
		}
		buf.Reset()
		rl.SetPrompt(replPrompt)
	}
}
