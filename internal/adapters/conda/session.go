package conda

import (
	"context"
	"fmt"

	"go.trai.ch/envscan/internal/core/domain"
	"go.trai.ch/envscan/internal/core/ports"
)

var _ ports.EnvironmentSession = (*Session)(nil)

// Session memoizes everything it reads from disk. It is not safe for
// concurrent use.
type Session struct {
	*Indexer
	probeBuiltins bool

	bases    map[string]*domain.Environment
	overlays map[overlayKey]*domain.Environment
	locals   map[string][]*domain.LocalPackage
	builtins map[string][]string
}

type overlayKey struct {
	prefix string
	dir    string
}

func newSession(indexer *Indexer, probeBuiltins bool) *Session {
	return &Session{
		Indexer:       indexer,
		probeBuiltins: probeBuiltins,
		bases:         make(map[string]*domain.Environment),
		overlays:      make(map[overlayKey]*domain.Environment),
		locals:        make(map[string][]*domain.LocalPackage),
		builtins:      make(map[string][]string),
	}
}

// Environment returns the environment at prefix merged with the local
// packages of overlay.
func (s *Session) Environment(ctx context.Context, prefix, overlay string) *domain.Environment {
	base := s.base(ctx, prefix)
	if overlay == "" {
		return base
	}

	key := overlayKey{prefix: prefix, dir: overlay}
	if env, ok := s.overlays[key]; ok {
		return env
	}

	env := base.WithLocals(overlay, s.localPackages(overlay))
	s.overlays[key] = env
	return env
}

func (s *Session) base(ctx context.Context, prefix string) *domain.Environment {
	if env, ok := s.bases[prefix]; ok {
		return env
	}

	var pkgs []*domain.Package
	if prefix != "" {
		managed := s.managedPackages(ctx, prefix)
		pkgs = append(managed, s.distributionPackages(prefix, managed)...)
	}

	env := domain.NewEnvironment(prefix, pkgs)
	if prefix != "" {
		s.logger.Debug(fmt.Sprintf("%s: %d packages, %d python modules, %d R modules",
			prefix, env.Len(), env.ModuleCount(domain.LanguagePython), env.ModuleCount(domain.LanguageR)))
	}
	s.bases[prefix] = env
	return env
}

func (s *Session) localPackages(dir string) []*domain.LocalPackage {
	if locals, ok := s.locals[dir]; ok {
		return locals
	}
	locals := scanLocals(dir, s.extractor)
	s.locals[dir] = locals
	return locals
}

// builtinModules lists the modules compiled into the interpreter at
// binary, falling back to a fixed list when it cannot be run.
func (s *Session) builtinModules(ctx context.Context, binary string) []string {
	if names, ok := s.builtins[binary]; ok {
		return names
	}

	var names []string
	if s.probeBuiltins {
		var err error
		names, err = s.probe.Builtins(ctx, binary)
		if err != nil {
			s.logger.Warn(fmt.Sprintf("%s: cannot list builtin modules, using fallback list: %v", binary, err))
			names = nil
		}
	}
	if names == nil {
		names = s.probe.Fallback()
	}

	s.builtins[binary] = names
	return names
}
