// Package cmd implements the mlatu command tree.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/mlatu/internal/config"
)

// errReported is returned by commands that already printed their
// diagnostics; Execute only sets the exit status for it.
var errReported = errors.New("errors reported")

// app holds state shared by all commands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	noColor bool

	cfg *config.Config
	log *log.Logger
}

// NewRootCmd builds the mlatu command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "mlatu",
		Short: "Parse and check mlatu term-rewriting sources",
		Long: `mlatu reads the surface syntax of the mlatu term-rewriting language:
words, parenthesized quotes, and rules of the form "pattern = replacement ;".

Commands:
  parse   - print the syntax tree of a source
  check   - report syntax errors in many files at once
  fmt     - reprint sources in canonical form
  tokens  - print the token stream of a source`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./"+config.DefaultFile+" if present)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output on stderr")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored diagnostics")

	root.AddCommand(
		newParseCmd(a),
		newCheckCmd(a),
		newFmtCmd(a),
		newTokensCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads the configuration and prepares the logger.
func (a *app) setup(cmd *cobra.Command) error {
	logOut := io.Discard
	if a.verbose {
		logOut = cmd.ErrOrStderr()
	}
	a.log = log.New(logOut, "mlatu: ", 0)

	cfg, used, err := config.Discover(a.cfgFile, ".")
	if err != nil {
		return err
	}
	if used != "" {
		a.log.Printf("using config %s", used)
	}
	if a.noColor {
		cfg.Output.Color = new(bool)
	}
	a.cfg = cfg
	return nil
}

// Execute runs the root command. Errors other than already reported
// diagnostics are printed to stderr.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(err)
	}
	return err
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
