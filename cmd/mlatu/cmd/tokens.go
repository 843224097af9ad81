package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/mlatu/internal/syntax"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a source",
		Long: `Scan a source and print every token with its position.
Characters that are neither word components, separators nor reserved are
shown as ILLEGAL and reported after the table.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			src, display, err := a.load(name, cmd.InOrStdin())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			var errs []string

			s := syntax.NewScanner(display, src)

			fmt.Fprintf(w, "%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
			fmt.Fprintf(w, "%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

			for {
				s.Next()
				tok := s.Token()
				pos := s.Pos()

				fmt.Fprintf(w, "%-20s %-12s %s\n", pos, tok, strconv.Quote(s.Literal()))

				if tok.IsIllegal() {
					errs = append(errs, fmt.Sprintf("%s: illegal %s", pos, s.Describe()))
				}
				if tok.IsEOF() {
					break
				}
			}

			if len(errs) > 0 {
				e := cmd.ErrOrStderr()
				fmt.Fprintln(e)
				fmt.Fprintln(e, "Errors:")
				for _, msg := range errs {
					fmt.Fprintf(e, "  %s\n", msg)
				}
				return errReported
			}
			return nil
		},
	}
}
