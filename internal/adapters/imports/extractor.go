// Package imports extracts imported module names from python, R and notebook files.
package imports

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/envscan/internal/core/domain"
	"go.trai.ch/envscan/internal/core/ports"
)

var _ ports.ImportExtractor = (*Extractor)(nil)

// Extractor implements ports.ImportExtractor.
type Extractor struct {
	logger ports.Logger
}

// NewExtractor creates a new Extractor.
func NewExtractor(logger ports.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// ExtractFile reads path and extracts its imports according to its extension.
func (e *Extractor) ExtractFile(path string) domain.FileImports {
	var language domain.Language
	notebook := false

	switch filepath.Ext(path) {
	case ".py":
		language = domain.LanguagePython
	case ".R", ".r":
		language = domain.LanguageR
	case ".ipynb":
		notebook = true
	default:
		return domain.NoImports()
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the project walk
	if err != nil {
		e.logger.Warn(fmt.Sprintf("%s: CANNOT READ", path))
		return domain.NoImports()
	}

	if notebook {
		res, err := extractNotebook(data)
		if err != nil {
			e.logger.Warn(fmt.Sprintf("%s: CANNOT PARSE NOTEBOOK", path))
			return domain.NoImports()
		}
		if res.Language == domain.LanguageNone {
			e.logger.Debug(fmt.Sprintf("%s: unsupported kernel language %q", path, res.Kernel))
		}
		return res
	}

	return domain.FileImports{
		Modules:  e.Extract(language, string(data)),
		Language: language,
	}
}

// Extract scans text written in language.
func (e *Extractor) Extract(language domain.Language, text string) domain.StringSet {
	switch language {
	case domain.LanguagePython:
		return extractPython(text)
	case domain.LanguageR:
		return extractR(text)
	default:
		return make(domain.StringSet)
	}
}
