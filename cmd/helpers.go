package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// parseDelimiter maps the config/flag spelling to the csv delimiter rune.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "", ",":
		return ',', nil
	case "\t", "tab":
		return '\t', nil
	case ";":
		return ';', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter: %s (use ','|';'|'tab')", s)
	}
}

// stdoutIsTTY decides whether reports get styled table borders.
func stdoutIsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
