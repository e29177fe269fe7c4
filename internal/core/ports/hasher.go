package ports

import "go.trai.ch/envscan/internal/core/domain"

// Hasher fingerprints environments.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// EnvironmentDigest returns a stable hash of an environment's package table.
	EnvironmentDigest(env *domain.Environment) string
}
