package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/calder-lang/calder/pkg/ast"
	"github.com/calder-lang/calder/pkg/format"
	"github.com/calder-lang/calder/pkg/parser"
	"github.com/calder-lang/calder/pkg/token"
)

func newParseCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a source file and print the syntax tree",
		Long: `Parse reads calder source from a file (or stdin when no file is given)
and prints the resulting syntax tree. With --watch the file is re-parsed
whenever it changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				src, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				return parseAndPrint(cmd, string(src))
			}

			path := args[0]
			if err := parseFile(cmd, path); err != nil && !watch {
				return err
			}
			if watch {
				return watchFile(cmd, path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-parse on file change")
	return cmd
}

func parseFile(cmd *cobra.Command, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return parseAndPrint(cmd, string(src))
}

func parseAndPrint(cmd *cobra.Command, src string) error {
	prog, err := parseSource(src)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderError(err, src))
		return err
	}
	printProgram(cmd.OutOrStdout(), prog)
	return nil
}

func parseSource(src string) (*ast.Program, error) {
	g := parser.DefaultGrammar()
	g.MaxDepth = cfg.MaxDepth
	toks := parser.NewLexer(src).Tokens()
	return parser.New(token.NewSource(toks), g).ParseProgram()
}

func printProgram(w io.Writer, prog *ast.Program) {
	switch cfg.Output {
	case "canonical":
		fmt.Fprintln(w, format.Canonical(prog))
	default:
		fmt.Fprint(w, format.Pretty(prog))
	}
}

// watchFile re-parses path on every write until interrupted.
func watchFile(cmd *cobra.Command, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: editors often replace the file on save, which
	// drops a watch set on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	logger.Debug("watching for changes", "path", path)
	target, _ := filepath.Abs(path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			evPath, _ := filepath.Abs(event.Name)
			if evPath != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "--- %s\n", path)
			_ = parseFile(cmd, path) // keep watching after parse errors
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		case <-cmd.Context().Done():
			return nil
		}
	}
}
