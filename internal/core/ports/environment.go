package ports

import (
	"context"

	"go.trai.ch/envscan/internal/core/domain"
)

// EnvironmentIndexer creates sessions that index environments from disk.
//
//go:generate mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentIndexer interface {
	// NewSession returns a session whose caches live until it is discarded.
	// When probeBuiltins is false interpreters are never executed and the
	// fallback builtin list is used instead.
	NewSession(probeBuiltins bool) EnvironmentSession
}

// EnvironmentSession memoizes environments for one inventory run.
type EnvironmentSession interface {
	// Environment returns the environment at prefix, merged with the local
	// packages of overlay when overlay is not empty. An empty prefix yields
	// the empty environment. Results are shared and must not be modified.
	Environment(ctx context.Context, prefix, overlay string) *domain.Environment
}
