package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/calder-lang/calder/pkg/parser"
	"github.com/calder-lang/calder/pkg/token"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Lex a source file and print the token stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src []byte
			var err error
			if len(args) == 0 {
				src, err = io.ReadAll(cmd.InOrStdin())
			} else {
				src, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read source: %w", err)
			}

			toks := parser.NewLexer(string(src)).Tokens()
			printTokens(cmd.OutOrStdout(), toks)
			return nil
		},
	}
}

func printTokens(w io.Writer, toks []token.Token) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Kind", "Literal", "Line", "Col"})
	for i, tok := range toks {
		t.AppendRow(table.Row{i, tok.Kind.String(), tok.Literal, tok.Pos.Line, tok.Pos.Column})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
