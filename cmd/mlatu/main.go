package main

import (
	"os"

	"github.com/you-not-fish/mlatu/cmd/mlatu/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
