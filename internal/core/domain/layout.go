package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the optional settings file.
	ConfigFileName = "envscan.yaml"

	// CondaMetaDirName is the directory holding one manifest per managed package.
	CondaMetaDirName = "conda-meta"

	// EnvsDirName is the directory holding named environments below a prefix or project.
	EnvsDirName = "envs"

	// DefaultEnvName is the environment that is preferred when present.
	DefaultEnvName = "default"

	// ProjectMarkerFile marks a directory as a project.
	ProjectMarkerFile = ".projectrc"

	// PythonInitFile marks a directory as a python package.
	PythonInitFile = "__init__.py"

	// PythonBinary is the interpreter path, relative to an environment prefix.
	PythonBinary = "bin/python"

	// DistributionBuild is the build string reported for distribution packages.
	DistributionBuild = "<pip>"

	// LocalVersion is the version and build reported for local packages.
	LocalVersion = "<local>"

	// DefaultRoot is the project store used when none is configured.
	DefaultRoot = "/projects"

	// DefaultAnacondaRoot is the shared installation used when none is configured.
	DefaultAnacondaRoot = "/opt/wakari/anaconda"

	// FilePerm is the default permission for report files (rw-r--r--).
	FilePerm = 0o644

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
)

// DefaultReservedDirs returns the project-level directories that are never scanned.
func DefaultReservedDirs() []string {
	return []string{EnvsDirName, "examples"}
}

// CondaMetaPath returns the manifest directory of the environment at prefix.
func CondaMetaPath(prefix string) string {
	return filepath.Join(prefix, CondaMetaDirName)
}
