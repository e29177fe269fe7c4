package imports

import (
	"regexp"
	"strings"
)

// legacyRewrite turns one legacy construct into its modern equivalent
// without changing the number of lines.
type legacyRewrite struct {
	pattern *regexp.Regexp
	replace string
}

var legacyRewrites = []legacyRewrite{
	// except ValueError, e:
	{regexp.MustCompile(`^(\s*except\s+[^,:()]+?)\s*,\s*([A-Za-z_]\w*)\s*:`), "${1} as ${2}:"},
	// raise ValueError, "message"
	{regexp.MustCompile(`^(\s*raise\s+[\w.]+)\s*,\s*(.+?)\s*$`), "${1}(${2})"},
	// `expr`
	{regexp.MustCompile("`([^`]*)`"), "repr(${1})"},
	// a <> b
	{regexp.MustCompile(`<>`), "!="},
	// 0777
	{regexp.MustCompile(`\b0([0-7]+)\b`), "0o${1}"},
	// 10L
	{regexp.MustCompile(`\b(\d+)[lL]\b`), "${1}"},
	// ur"raw unicode"
	{regexp.MustCompile(`\b[uU][rR](['"])`), "r${1}"},
}

// normaliseLegacy rewrites legacy-only syntax line by line and reports
// whether anything changed.
func normaliseLegacy(src string) (string, bool) {
	lines := strings.Split(src, "\n")
	changed := false
	for i, line := range lines {
		out := line
		for _, rw := range legacyRewrites {
			out = rw.pattern.ReplaceAllString(out, rw.replace)
		}
		if out != line {
			lines[i] = out
			changed = true
		}
	}
	return strings.Join(lines, "\n"), changed
}
