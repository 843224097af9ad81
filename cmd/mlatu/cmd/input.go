package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// stdinName is how standard input is named in diagnostics.
const stdinName = "<stdin>"

// readInput returns the contents of the named file, or of stdin for "-",
// together with the name to report in positions.
func readInput(name string, stdin io.Reader) (src, display string, err error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", stdinName, fmt.Errorf("read stdin: %w", err)
		}
		return string(data), stdinName, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return "", name, err
	}
	return string(data), name, nil
}

// stdinOnce rejects argument lists that name stdin more than once.
func stdinOnce(args []string) error {
	n := 0
	for _, name := range args {
		if name == "-" {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("standard input %q given %d times", "-", n)
	}
	return nil
}

// trimFinalNewline drops a single trailing "\n" or "\r\n".
func trimFinalNewline(src string) string {
	if s, ok := strings.CutSuffix(src, "\n"); ok {
		return strings.TrimSuffix(s, "\r")
	}
	return src
}

// load reads an input and applies the configured newline trimming.
func (a *app) load(name string, stdin io.Reader) (src, display string, err error) {
	src, display, err = readInput(name, stdin)
	if err != nil {
		return "", display, err
	}
	if *a.cfg.Parse.TrimFinalNewline {
		src = trimFinalNewline(src)
	}
	a.log.Printf("read %s (%d bytes)", display, len(src))
	return src, display, nil
}
