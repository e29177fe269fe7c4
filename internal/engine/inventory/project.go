package inventory

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/envscan/internal/core/domain"
	"go.trai.ch/envscan/internal/engine/resolver"
	"go.trai.ch/envscan/internal/engine/scanorder"
)

// projectScan collects what the files of one project import, per environment.
type projectScan struct {
	*run
	owner string
	dir   string

	envs  []domain.EnvironmentRef
	names map[string]string

	// assigned maps a local file path to the environments its importers
	// ran in, in assignment order.
	assigned  map[string][]string
	requested map[string]domain.StringSet
	missing   map[string]map[domain.Language]domain.StringSet
}

// choice is the environment picked for one file.
type choice struct {
	prefix string
	resolver.Resolution
}

func newProjectScan(r *run, owner, dir string) *projectScan {
	envs := r.locator.VisibleEnvironments(dir, r.settings.AnacondaRoot)
	names := make(map[string]string, len(envs))
	for _, ref := range envs {
		names[ref.Prefix] = ref.Name
	}

	return &projectScan{
		run:       r,
		owner:     owner,
		dir:       dir,
		envs:      envs,
		names:     names,
		assigned:  make(map[string][]string),
		requested: make(map[string]domain.StringSet),
		missing:   make(map[string]map[domain.Language]domain.StringSet),
	}
}

func (s *projectScan) walk(ctx context.Context) error {
	s.logger.Info(fmt.Sprintf("Scanning project: %s/%s", s.owner, filepath.Base(s.dir)))
	s.logger.Info(fmt.Sprintf("  %d visible environments:", len(s.envs)))
	for _, ref := range s.envs {
		s.logger.Info(fmt.Sprintf("    %s: %s", ref.Name, ref.Prefix))
	}

	for dir := range s.locator.Directories(s.dir, s.settings.ReservedDirs) {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.directory(ctx, dir)
	}
	return ctx.Err()
}

// localEnvironment is the overlay of dir on the empty environment, which
// holds the local packages and the edges between them.
func (s *projectScan) localEnvironment(ctx context.Context, dir string) *domain.Environment {
	return s.session.Environment(ctx, "", dir)
}

func (s *projectScan) directory(ctx context.Context, dir string) {
	local := s.localEnvironment(ctx, dir)

	deps := make(map[string]domain.StringSet)
	for _, lp := range local.Locals() {
		deps[lp.Name] = lp.LocalDepends()
	}

	for _, name := range scanorder.Order(deps) {
		lp, _ := local.Local(name)
		s.file(ctx, lp)
	}
}

func (s *projectScan) file(ctx context.Context, lp *domain.LocalPackage) {
	rel := s.relative(lp.Path)
	if lp.Language == domain.LanguageNone {
		s.logger.Debug(fmt.Sprintf("  %s: no supported language, skipped", rel))
		return
	}

	candidates := s.candidates(lp, rel)
	if len(candidates) == 0 {
		s.logger.Warn(fmt.Sprintf("%s: no visible environments", rel))
		return
	}

	best := s.choose(ctx, lp, candidates)
	s.record(ctx, lp, rel, best)
}

// candidates returns the environments lp may run in, in preference order.
// A notebook runs in its kernel's environment when the kernel name maps
// onto a visible one. Other files run in the environments their importers
// were assigned, or in any visible environment.
func (s *projectScan) candidates(lp *domain.LocalPackage, rel string) []string {
	if lp.IsNotebook() {
		if prefix, ok := s.locator.KernelPrefix(s.dir, s.settings.AnacondaRoot, lp.Kernel); ok {
			if _, visible := s.names[filepath.Clean(prefix)]; visible {
				return []string{filepath.Clean(prefix)}
			}
		}
		s.logger.Warn(fmt.Sprintf("%s: unrecognized kernel %q, trying all environments", rel, lp.Kernel))
		return s.visible(nil)
	}

	if assigned := s.assigned[lp.Path]; len(assigned) > 0 {
		return s.visible(assigned)
	}
	return s.visible(nil)
}

// visible returns the visible prefixes in preference order, limited to
// only when it is not nil.
func (s *projectScan) visible(only []string) []string {
	out := make([]string, 0, len(s.envs))
	for _, ref := range s.envs {
		if only == nil || slices.Contains(only, ref.Prefix) {
			out = append(out, ref.Prefix)
		}
	}
	return out
}

// choose resolves lp against every candidate and keeps the first one with
// the fewest missing modules. A candidate with nothing missing ends the search.
func (s *projectScan) choose(ctx context.Context, lp *domain.LocalPackage, candidates []string) choice {
	var best *choice
	for _, prefix := range candidates {
		env := s.session.Environment(ctx, prefix, lp.Dir())
		imports := lp.Imports[lp.Language]
		if merged, ok := env.Local(lp.Name); ok {
			imports = merged.Imports[lp.Language]
		}

		c := choice{prefix: prefix, Resolution: resolver.Resolve(env, imports, lp.Language)}
		if best == nil || c.Missing.Len() < best.Missing.Len() {
			best = &c
		}
		if c.Missing.Len() == 0 {
			break
		}
	}
	return *best
}

func (s *projectScan) record(ctx context.Context, lp *domain.LocalPackage, rel string, c choice) {
	s.logger.Info(fmt.Sprintf("  %s: %s, environment: %s", rel, lp.Language, s.names[c.prefix]))

	envImports := make(domain.StringSet)
	var localImports []string
	for _, name := range c.Requested.Sorted() {
		if domain.IsLocalName(name) {
			localImports = append(localImports, strings.TrimPrefix(name, domain.LocalPrefix))
			continue
		}
		envImports.Add(name)
	}

	if envImports.Len() > 0 {
		s.logger.Info("    packages: " + envImports.Join(", "))
		if _, ok := s.requested[c.prefix]; !ok {
			s.requested[c.prefix] = make(domain.StringSet)
		}
		s.requested[c.prefix].AddAll(envImports)
	}

	if len(localImports) > 0 {
		s.logger.Info("    local imports: " + strings.Join(localImports, ", "))
		for _, file := range localImports {
			s.assign(ctx, lp.Dir(), domain.LocalName(file), c.prefix)
		}
	}

	if c.Missing.Len() > 0 {
		s.logger.Info("    unresolved: " + c.Missing.Join(", "))
		byLanguage, ok := s.missing[c.prefix]
		if !ok {
			byLanguage = make(map[domain.Language]domain.StringSet)
			s.missing[c.prefix] = byLanguage
		}
		if _, ok := byLanguage[lp.Language]; !ok {
			byLanguage[lp.Language] = make(domain.StringSet)
		}
		byLanguage[lp.Language].AddAll(c.Missing)
	}
}

// assign marks the local package name of dir, and every local package it
// imports, as running in prefix.
func (s *projectScan) assign(ctx context.Context, dir, name, prefix string) {
	lp, ok := s.localEnvironment(ctx, dir).Local(name)
	if !ok || slices.Contains(s.assigned[lp.Path], prefix) {
		return
	}
	s.assigned[lp.Path] = append(s.assigned[lp.Path], prefix)

	for _, dep := range lp.LocalDepends().Sorted() {
		s.assign(ctx, dir, dep, prefix)
	}
}

func (s *projectScan) summary() {
	if len(s.requested) == 0 {
		return
	}

	s.logger.Info("  Summary:")
	for _, ref := range s.envs {
		pkgs, ok := s.requested[ref.Prefix]
		if !ok {
			continue
		}
		s.logger.Info("    " + ref.Name)
		s.logger.Info("      packages: " + pkgs.Join(", "))
		for _, lang := range domain.Languages() {
			if mods := s.missing[ref.Prefix][lang]; mods.Len() > 0 {
				s.logger.Info(fmt.Sprintf("      missing %s imports: %s", lang, mods.Join(", ")))
			}
		}
	}
}

// records classifies every environment that received imports, in
// preference order.
func (s *projectScan) records(ctx context.Context) ([]domain.InventoryRecord, error) {
	var records []domain.InventoryRecord
	for _, ref := range s.envs {
		imported, ok := s.requested[ref.Prefix]
		if !ok || imported.Len() == 0 {
			continue
		}

		recs, err := s.environment(ctx, ref, imported)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

func (s *projectScan) environment(ctx context.Context, ref domain.EnvironmentRef, imported domain.StringSet) ([]domain.InventoryRecord, error) {
	ctx, span := s.tracer.Start(ctx, "environment")
	defer span.End()

	env := s.session.Environment(ctx, ref.Prefix, "")
	digest := s.hasher.EnvironmentDigest(env)
	span.SetAttribute("envscan.environment", ref.Name)
	span.SetAttribute("envscan.prefix", ref.Prefix)
	span.SetAttribute("envscan.digest", digest)
	span.SetAttribute("envscan.packages", env.Len())
	s.logger.Debug(fmt.Sprintf("%s: %d packages, digest %s", ref.Name, env.Len(), digest))

	c := Classify(env, imported)
	span.SetAttribute("envscan.requested", c.Requested.Len())
	span.SetAttribute("envscan.required", c.Required.Len())
	span.SetAttribute("envscan.extra", c.Extra.Len())

	records, err := Records(ref.Name, env, c)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return records, nil
}

func (s *projectScan) relative(path string) string {
	if rel, err := filepath.Rel(s.dir, path); err == nil {
		return rel
	}
	return path
}
