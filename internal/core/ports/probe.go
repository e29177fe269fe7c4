package ports

import "context"

// BuiltinProbe lists the modules compiled into an interpreter binary.
//
//go:generate mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type BuiltinProbe interface {
	// Builtins runs the interpreter at path and returns its builtin module names.
	Builtins(ctx context.Context, path string) ([]string, error)
	// Fallback returns the builtin module list used when probing fails.
	Fallback() []string
}
