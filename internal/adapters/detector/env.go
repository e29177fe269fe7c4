// Package detector picks the log output format from flags and the terminal.
package detector

import (
	"os"

	"go.trai.ch/envscan/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// LogFormat is the rendering used for log output.
type LogFormat int

const (
	// FormatPretty writes colored human-readable lines.
	FormatPretty LogFormat = iota
	// FormatPlain writes human-readable lines without color.
	FormatPlain
	// FormatJSON writes one JSON object per record.
	FormatJSON
)

// IsInteractive reports whether stderr is a terminal outside of CI.
func IsInteractive() bool {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	return isTTY && !isCI
}

// ResolveLogFormat applies the --log-format flag. "auto" and the empty
// string choose pretty output when interactive and plain output otherwise.
func ResolveLogFormat(flag string, interactive bool) (LogFormat, error) {
	switch flag {
	case "auto", "":
		if interactive {
			return FormatPretty, nil
		}
		return FormatPlain, nil
	case "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatPlain, zerr.With(domain.ErrUnsupportedLogFormat, "format", flag)
	}
}
