package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidPackage is returned when a package record is missing its name.
	ErrInvalidPackage = zerr.New("invalid package")

	// ErrInvalidRecord is returned when an inventory record is missing a required field.
	ErrInvalidRecord = zerr.New("invalid inventory record")

	// ErrInvalidSummary is returned when a summarization request cannot be parsed.
	ErrInvalidSummary = zerr.New("invalid summary request")

	// ErrProjectWithoutOwner is returned when a project is selected without an owner.
	ErrProjectWithoutOwner = zerr.New("must supply --owner with --project")

	// ErrRootNotFound is returned when the project root directory does not exist.
	ErrRootNotFound = zerr.New("project root not found")

	// ErrOwnerNotFound is returned when the selected owner directory does not exist.
	ErrOwnerNotFound = zerr.New("owner not found")

	// ErrProjectNotFound is returned when the selected project directory does not exist.
	ErrProjectNotFound = zerr.New("project not found")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidSettings is returned when the settings fail validation.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrReportWriteFailed is returned when the inventory report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write inventory report")

	// ErrProbeFailed is returned when the interpreter cannot report its builtin modules.
	ErrProbeFailed = zerr.New("failed to probe interpreter builtins")

	// ErrUnsupportedLogFormat is returned for an unknown --log-format value.
	ErrUnsupportedLogFormat = zerr.New("unsupported log format, expected 'auto', 'pretty' or 'json'")
)
