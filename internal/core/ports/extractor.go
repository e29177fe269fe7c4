package ports

import "go.trai.ch/envscan/internal/core/domain"

// ImportExtractor finds the modules a source file imports.
//
//go:generate mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks
type ImportExtractor interface {
	// ExtractFile reads path and routes it by extension. Unreadable or
	// unsupported files yield an empty set and LanguageNone.
	ExtractFile(path string) domain.FileImports
	// Extract scans source text of the given language.
	Extract(language domain.Language, text string) domain.StringSet
}
