package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/envscan/internal/core/domain"
	"go.trai.ch/envscan/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints environments with xxhash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// EnvironmentDigest hashes the name, version and build of every package in
// name order. Two environments with the same package table share a digest.
func (h *Hasher) EnvironmentDigest(env *domain.Environment) string {
	digest := xxhash.New()
	for _, name := range env.PackageNames() {
		pkg, _ := env.Package(name)
		_, _ = fmt.Fprintf(digest, "%s\x00%s\x00%s\n", pkg.Name, pkg.Version, pkg.Build)
	}
	return fmt.Sprintf("%016x", digest.Sum64())
}
