// Package conda indexes conda environments: managed packages from
// conda-meta, distribution packages from site-packages metadata and the
// local packages of a project directory.
package conda

import (
	"go.trai.ch/envscan/internal/core/ports"
)

var _ ports.EnvironmentIndexer = (*Indexer)(nil)

// Indexer implements ports.EnvironmentIndexer.
type Indexer struct {
	extractor ports.ImportExtractor
	probe     ports.BuiltinProbe
	logger    ports.Logger
}

// NewIndexer creates a new Indexer.
func NewIndexer(extractor ports.ImportExtractor, probe ports.BuiltinProbe, logger ports.Logger) *Indexer {
	return &Indexer{
		extractor: extractor,
		probe:     probe,
		logger:    logger,
	}
}

// NewSession returns a Session with empty caches.
func (i *Indexer) NewSession(probeBuiltins bool) ports.EnvironmentSession {
	return newSession(i, probeBuiltins)
}
