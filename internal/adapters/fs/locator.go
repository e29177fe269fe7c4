// Package fs provides the file system adapters: the project store layout,
// the project directory walk and environment digests.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/envscan/internal/core/domain"
	"go.trai.ch/envscan/internal/core/ports"
	"go.trai.ch/zerr"
)

const anacondaPrefix = "anaconda:"

var _ ports.ProjectLocator = (*Locator)(nil)

// Locator implements ports.ProjectLocator.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Owners returns the non-hidden directories below root, in name order.
func (l *Locator) Owners(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRootNotFound.Error()), "root", root)
	}

	var owners []string
	for _, e := range entries {
		path := filepath.Join(root, e.Name())
		if isHidden(e.Name()) || !isDir(path) {
			continue
		}
		owners = append(owners, path)
	}
	return owners, nil
}

// Projects returns the directories of ownerDir that contain the marker
// file, in name order.
func (l *Locator) Projects(ownerDir, marker string) ([]string, error) {
	entries, err := os.ReadDir(ownerDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOwnerNotFound.Error()), "owner", ownerDir)
	}

	var projects []string
	for _, e := range entries {
		path := filepath.Join(ownerDir, e.Name())
		if isHidden(e.Name()) || !isDir(path) {
			continue
		}
		if isFile(filepath.Join(path, marker)) {
			projects = append(projects, path)
		}
	}
	return projects, nil
}

// VisibleEnvironments lists the project environments first, then the
// shared installation's environments and finally its root. Only prefixes
// with a conda-meta directory are returned, each once.
func (l *Locator) VisibleEnvironments(projectDir, anacondaRoot string) []domain.EnvironmentRef {
	var candidates []domain.EnvironmentRef

	candidates = append(candidates, namedEnvironments(projectDir, "")...)
	if anacondaRoot != "" {
		candidates = append(candidates, namedEnvironments(anacondaRoot, anacondaPrefix)...)
		candidates = append(candidates, domain.EnvironmentRef{Prefix: anacondaRoot, Name: anacondaPrefix + "root"})
	}

	seen := make(map[string]struct{}, len(candidates))
	refs := make([]domain.EnvironmentRef, 0, len(candidates))
	for _, c := range candidates {
		c.Prefix = filepath.Clean(c.Prefix)
		if _, ok := seen[c.Prefix]; ok {
			continue
		}
		if !isDir(domain.CondaMetaPath(c.Prefix)) {
			continue
		}
		seen[c.Prefix] = struct{}{}
		refs = append(refs, c)
	}
	return refs
}

// namedEnvironments returns the default environment below base followed by
// every environment in base/envs in name order.
func namedEnvironments(base, namePrefix string) []domain.EnvironmentRef {
	envsDir := filepath.Join(base, domain.EnvsDirName)
	refs := []domain.EnvironmentRef{{
		Prefix: filepath.Join(envsDir, domain.DefaultEnvName),
		Name:   namePrefix + domain.DefaultEnvName,
	}}

	matches, err := filepath.Glob(filepath.Join(envsDir, "*"))
	if err != nil {
		return refs
	}
	for _, m := range matches {
		refs = append(refs, domain.EnvironmentRef{Prefix: m, Name: namePrefix + filepath.Base(m)})
	}
	return refs
}

// KernelPrefix maps a kernel name onto an existing environment prefix.
func (l *Locator) KernelPrefix(projectDir, anacondaRoot, kernel string) (string, bool) {
	target := domain.ParseKernelName(filepath.Base(projectDir), kernel)

	var prefix string
	switch target.Location {
	case domain.KernelAnacondaRoot:
		prefix = anacondaRoot
	case domain.KernelAnacondaEnv:
		prefix = filepath.Join(anacondaRoot, domain.EnvsDirName, target.Env)
	case domain.KernelProjectEnv:
		prefix = filepath.Join(projectDir, domain.EnvsDirName, target.Env)
	default:
		return "", false
	}

	if prefix == "" || !isDir(domain.CondaMetaPath(prefix)) {
		return "", false
	}
	return filepath.Clean(prefix), true
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
