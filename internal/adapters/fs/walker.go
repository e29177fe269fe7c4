package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"

	"go.trai.ch/envscan/internal/core/domain"
)

// Directories yields projectDir and its sub-directories top-down. Hidden
// directories and python package directories are not entered, and the
// reserved names are skipped directly below projectDir.
func (l *Locator) Directories(projectDir string, reserved []string) iter.Seq[string] {
	root := filepath.Clean(projectDir)

	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root {
					return err
				}
				return nil
			}
			if !d.IsDir() {
				return nil
			}

			if path != root {
				if skip := shouldSkipDir(root, path, d.Name(), reserved); skip {
					return filepath.SkipDir
				}
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func shouldSkipDir(root, path, name string, reserved []string) bool {
	if isHidden(name) {
		return true
	}
	if filepath.Dir(path) == root && slices.Contains(reserved, name) {
		return true
	}
	return isFile(filepath.Join(path, domain.PythonInitFile))
}
