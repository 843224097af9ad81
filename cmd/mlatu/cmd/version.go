package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information, overridden at build time with -ldflags.
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "mlatu v%s\n", Version)
			fmt.Fprintf(w, "  Build Time: %s\n", BuildTime)
			fmt.Fprintf(w, "  Go Version: %s\n", runtime.Version())
			fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
