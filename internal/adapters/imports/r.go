package imports

import (
	"regexp"
	"strings"

	"go.trai.ch/envscan/internal/core/domain"
)

const rPackageName = `[a-zA-Z][a-zA-Z0-9.]*[a-zA-Z0-9]`

var (
	rComment     = regexp.MustCompile(`^\s*#`)
	rLibraryCall = regexp.MustCompile(`\b(?:library|require|requireNamespace)\s*\(\s*['"]?(` + rPackageName + `)['"]?\s*[,)]`)
	rQualified   = regexp.MustCompile(`(` + rPackageName + `)\s*:::?\s*[a-zA-Z.]`)
)

func extractR(src string) domain.StringSet {
	mods := make(domain.StringSet)
	for _, line := range strings.Split(src, "\n") {
		if rComment.MatchString(line) {
			continue
		}
		for _, m := range rLibraryCall.FindAllStringSubmatch(line, -1) {
			mods.Add(m[1])
		}
		for _, m := range rQualified.FindAllStringSubmatch(line, -1) {
			mods.Add(m[1])
		}
	}
	return mods
}
