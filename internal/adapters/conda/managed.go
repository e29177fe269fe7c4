package conda

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/envscan/internal/core/domain"
)

var (
	pythonFileRe = regexp.MustCompile(`^lib/python\d+\.\d+/(?:site-packages/|lib-dynload/|)(.*)$`)
	eggEntryRe   = regexp.MustCompile(`^([^/]*\.(?:egg-info|dist-info|egg))/?(.*)$`)
	rLibraryRe   = regexp.MustCompile(`^lib/R/library/([^/]+)/`)
)

// manifest is one conda-meta/*.json document.
type manifest struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Build   string   `json:"build"`
	Depends []string `json:"depends"`
	Files   []string `json:"files"`
}

// managedPackages reads every conda-meta manifest of prefix in file name order.
func (s *Session) managedPackages(ctx context.Context, prefix string) []*domain.Package {
	paths, err := filepath.Glob(filepath.Join(domain.CondaMetaPath(prefix), "*.json"))
	if err != nil || len(paths) == 0 {
		s.logger.Debug(fmt.Sprintf("%s: no conda-meta manifests", prefix))
		return nil
	}

	pkgs := make([]*domain.Package, 0, len(paths))
	for _, p := range paths {
		pkg, err := s.managedPackage(ctx, prefix, p)
		if err != nil {
			s.logger.Warn(fmt.Sprintf("%s: skipping manifest: %v", p, err))
			continue
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs
}

func (s *Session) managedPackage(ctx context.Context, prefix, manifestPath string) (*domain.Package, error) {
	m, ok := readManifest(manifestPath)
	if !ok {
		s.logger.Warn(fmt.Sprintf("%s: malformed package manifest, using file name", manifestPath))
	}

	pkg, err := domain.NewPackage(m.Name, m.Version, m.Build, domain.OriginManaged)
	if err != nil {
		return nil, err
	}

	for _, dep := range m.Depends {
		if fields := strings.Fields(dep); len(fields) > 0 {
			pkg.Depends.Add(strings.ToLower(fields[0]))
		}
	}

	for _, f := range m.Files {
		f = filepath.ToSlash(f)
		if match := pythonFileRe.FindStringSubmatch(f); match != nil {
			addManagedPythonFile(pkg, match[1])
		}
		if match := rLibraryRe.FindStringSubmatch(f); match != nil {
			pkg.AddModule(domain.LanguageR, match[1])
		}
		if f == domain.PythonBinary {
			for _, name := range s.builtinModules(ctx, filepath.Join(prefix, domain.PythonBinary)) {
				pkg.AddModule(domain.LanguagePython, name)
			}
		}
	}
	return pkg, nil
}

// addManagedPythonFile registers the module defined by stub, a path below
// site-packages. Files inside distribution metadata only mark the entry as
// owned; files inside an egg directory still define modules.
func addManagedPythonFile(pkg *domain.Package, stub string) {
	if match := eggEntryRe.FindStringSubmatch(stub); match != nil {
		pkg.Eggs.Add(match[1])
		if !strings.HasSuffix(match[1], ".egg") || match[2] == "" {
			return
		}
		stub = match[2]
	}
	if mod, ok := moduleFromPath(stub); ok {
		pkg.AddModule(domain.LanguagePython, mod)
	}
}

// readManifest decodes a manifest. When the document cannot be decoded the
// identity is taken from the file name name-version-build.json and ok is false.
func readManifest(path string) (manifest, bool) {
	data, err := os.ReadFile(path) //nolint:gosec // manifest of a scanned environment
	if err == nil {
		var m manifest
		if err := json.Unmarshal(data, &m); err == nil && m.Name != "" {
			return m, true
		}
	}
	return manifestFromFileName(filepath.Base(path)), false
}

func manifestFromFileName(file string) manifest {
	stem := strings.TrimSuffix(file, filepath.Ext(file))
	parts := strings.Split(stem, "-")
	if len(parts) < 3 {
		return manifest{Name: stem}
	}
	n := len(parts)
	return manifest{
		Name:    strings.Join(parts[:n-2], "-"),
		Version: parts[n-2],
		Build:   parts[n-1],
	}
}
