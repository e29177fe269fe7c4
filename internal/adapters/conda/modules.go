package conda

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/envscan/internal/core/domain"
)

// importable is a python module and the file that defines it.
type importable struct {
	module string
	path   string
}

// moduleFromPath derives the dotted module name of a slash-separated path
// relative to an import root. Extension modules drop everything after the
// first dot of their file name.
func moduleFromPath(rel string) (string, bool) {
	dir, file := path.Split(rel)
	dir = strings.TrimSuffix(dir, "/")

	var base string
	switch {
	case file == domain.PythonInitFile:
		if dir == "" {
			return "", false
		}
		return strings.ReplaceAll(dir, "/", "."), true
	case strings.HasSuffix(file, ".py"):
		base = strings.TrimSuffix(file, ".py")
	case strings.HasSuffix(file, ".so"), strings.HasSuffix(file, ".pyd"):
		base, _, _ = strings.Cut(file, ".")
	default:
		return "", false
	}

	if base == "" {
		return "", false
	}
	if dir == "" {
		return base, true
	}
	return strings.ReplaceAll(dir, "/", ".") + "." + base, true
}

// pythonImportables walks root and returns the modules importable from it.
// Only directories holding an __init__.py are entered and hidden names are
// skipped. Results are in lexical path order.
func pythonImportables(root string) []importable {
	var out []importable

	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if p == root {
				return nil
			}
			if isHidden(name) || !isFile(filepath.Join(p, domain.PythonInitFile)) {
				return filepath.SkipDir
			}
			return nil
		}
		if isHidden(name) {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		if mod, ok := moduleFromPath(filepath.ToSlash(rel)); ok {
			out = append(out, importable{module: mod, path: p})
		}
		return nil
	})

	return out
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

// normaliseName lower-cases a distribution name and maps underscores to
// dashes, the spelling conda uses.
func normaliseName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}
