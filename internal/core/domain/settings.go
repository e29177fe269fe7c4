package domain

import (
	"path/filepath"
	"slices"

	"go.trai.ch/zerr"
)

// Settings holds the resolved configuration of one inventory run.
type Settings struct {
	// Root is the project store holding one directory per owner.
	Root string
	// AnacondaRoot is the shared installation whose environments every project sees.
	AnacondaRoot string
	// ProjectMarker is the file that marks an owner sub-directory as a project.
	ProjectMarker string
	// ReservedDirs are project-level directories that are never scanned.
	ReservedDirs []string
	// BuiltinProbe enables running interpreters to list their builtin modules.
	BuiltinProbe bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Root:          DefaultRoot,
		AnacondaRoot:  DefaultAnacondaRoot,
		ProjectMarker: ProjectMarkerFile,
		ReservedDirs:  DefaultReservedDirs(),
		BuiltinProbe:  true,
	}
}

// Validate checks that the settings can drive a run.
func (s Settings) Validate() error {
	if s.Root == "" {
		return zerr.With(ErrInvalidSettings, "field", "root")
	}
	if s.ProjectMarker == "" || filepath.Base(s.ProjectMarker) != s.ProjectMarker {
		return zerr.With(zerr.With(ErrInvalidSettings, "field", "project_marker"), "value", s.ProjectMarker)
	}
	if slices.Contains(s.ReservedDirs, "") {
		return zerr.With(ErrInvalidSettings, "field", "reserved_dirs")
	}
	return nil
}

// IsReserved reports whether name is a reserved project-level directory.
func (s Settings) IsReserved(name string) bool {
	return slices.Contains(s.ReservedDirs, name)
}
