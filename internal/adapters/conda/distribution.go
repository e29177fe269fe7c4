package conda

import (
	"archive/zip"
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"net/textproto"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/envscan/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	distInfoExt = ".dist-info"
	eggInfoExt  = ".egg-info"
	eggExt      = ".egg"
	eggInfoDir  = "EGG-INFO"
)

var requirementNameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*`)

// distribution is the metadata of one site-packages entry, abstracted over
// directories, single files and zip archives.
type distribution struct {
	// read returns a metadata file such as PKG-INFO or RECORD.
	read func(name string) ([]byte, error)
	// metadata is the name of the core metadata file.
	metadata string
	// modules returns the modules the distribution installs.
	modules func() []string
}

// distributionPackages scans every site-packages directory of prefix for
// packages that were installed without conda. Entries owned by a managed
// package and names already provided by one are skipped.
func (s *Session) distributionPackages(prefix string, managed []*domain.Package) []*domain.Package {
	owned := make(domain.StringSet)
	names := make(domain.StringSet)
	for _, p := range managed {
		owned.AddAll(p.Eggs)
		names.Add(p.Name)
	}

	dirs, _ := filepath.Glob(filepath.Join(prefix, "lib", "python*", "site-packages"))

	var pkgs []*domain.Package
	for _, dir := range dirs {
		for _, entry := range distributionEntries(dir) {
			if owned.Has(entry) {
				continue
			}
			pkg, err := parseDistribution(dir, entry)
			if err != nil {
				s.logger.Warn(fmt.Sprintf("%s: %v", filepath.Join(dir, entry), err))
				continue
			}
			if names.Has(pkg.Name) {
				continue
			}
			names.Add(pkg.Name)
			pkgs = append(pkgs, pkg)
		}
	}
	return pkgs
}

// distributionEntries lists the metadata entries of a site-packages directory.
func distributionEntries(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var out []string
	for _, e := range entries {
		name := e.Name()
		p := filepath.Join(dir, name)
		switch filepath.Ext(name) {
		case distInfoExt:
			if isFile(filepath.Join(p, "METADATA")) {
				out = append(out, name)
			}
		case eggInfoExt:
			if isFile(p) || isFile(filepath.Join(p, "PKG-INFO")) {
				out = append(out, name)
			}
		case eggExt:
			if isFile(p) || isFile(filepath.Join(p, eggInfoDir, "PKG-INFO")) {
				out = append(out, name)
			}
		}
	}
	return out
}

func parseDistribution(dir, entry string) (*domain.Package, error) {
	dist, closeFn, err := openDistribution(dir, entry)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	stem := strings.TrimSuffix(entry, filepath.Ext(entry))
	name, version, _ := strings.Cut(stem, "-")
	version, _, _ = strings.Cut(version, "-")

	var header textproto.MIMEHeader
	if data, err := dist.read(dist.metadata); err == nil {
		header = parseMetadata(data)
	}
	if v := header.Get("Name"); v != "" {
		name = v
	}
	if v := header.Get("Version"); v != "" {
		version = v
	}

	pkg, err := domain.NewPackage(normaliseName(name), version, domain.DistributionBuild, domain.OriginDistribution)
	if err != nil {
		return nil, err
	}
	pkg.Eggs.Add(entry)

	if reqs := header.Values("Requires-Dist"); len(reqs) > 0 {
		for _, req := range reqs {
			if dep, ok := requirementName(req); ok {
				pkg.Depends.Add(dep)
			}
		}
	} else if data, err := dist.read("requires.txt"); err == nil {
		for _, dep := range parseRequiresTxt(data) {
			pkg.Depends.Add(dep)
		}
	}

	for _, mod := range dist.modules() {
		pkg.AddModule(domain.LanguagePython, mod)
	}
	if data, err := dist.read("top_level.txt"); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				pkg.AddModule(domain.LanguagePython, line)
			}
		}
	}
	return pkg, nil
}

func openDistribution(dir, entry string) (*distribution, func(), error) {
	p := filepath.Join(dir, entry)
	info, err := os.Stat(p)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "cannot open distribution metadata")
	}
	noop := func() {}

	switch {
	case strings.HasSuffix(entry, distInfoExt):
		read := dirReader(p)
		return &distribution{
			read:     read,
			metadata: "METADATA",
			modules:  func() []string { return recordModules(read) },
		}, noop, nil

	case strings.HasSuffix(entry, eggInfoExt) && info.IsDir():
		read := dirReader(p)
		return &distribution{
			read:     read,
			metadata: "PKG-INFO",
			modules:  func() []string { return installedFilesModules(read, entry) },
		}, noop, nil

	case strings.HasSuffix(entry, eggInfoExt):
		return &distribution{
			read: func(name string) ([]byte, error) {
				if name != "PKG-INFO" {
					return nil, fs.ErrNotExist
				}
				return os.ReadFile(p) //nolint:gosec // metadata of a scanned environment
			},
			metadata: "PKG-INFO",
			modules:  func() []string { return nil },
		}, noop, nil

	case info.IsDir():
		return &distribution{
			read:     dirReader(filepath.Join(p, eggInfoDir)),
			metadata: "PKG-INFO",
			modules: func() []string {
				var mods []string
				for _, imp := range pythonImportables(p) {
					mods = append(mods, imp.module)
				}
				return mods
			},
		}, noop, nil

	default:
		zr, err := zip.OpenReader(p)
		if err != nil {
			return nil, nil, zerr.Wrap(err, "cannot open egg archive")
		}
		return zipDistribution(&zr.Reader), func() { _ = zr.Close() }, nil
	}
}

func dirReader(dir string) func(string) ([]byte, error) {
	return func(name string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, name)) //nolint:gosec // metadata of a scanned environment
	}
}

func zipDistribution(zr *zip.Reader) *distribution {
	return &distribution{
		read: func(name string) ([]byte, error) {
			f, err := zr.Open(path.Join(eggInfoDir, name))
			if err != nil {
				return nil, err
			}
			defer f.Close() //nolint:errcheck // read-only archive member
			return io.ReadAll(f)
		},
		metadata: "PKG-INFO",
		modules: func() []string {
			var mods []string
			for _, f := range zr.File {
				if strings.HasPrefix(f.Name, eggInfoDir+"/") {
					continue
				}
				if mod, ok := moduleFromPath(f.Name); ok {
					mods = append(mods, mod)
				}
			}
			return mods
		},
	}
}

// parseMetadata reads the RFC 822 header block of METADATA or PKG-INFO.
// A truncated or malformed block yields the fields read so far.
func parseMetadata(data []byte) textproto.MIMEHeader {
	tp := textproto.NewReader(bufio.NewReader(bytes.NewReader(data)))
	header, _ := tp.ReadMIMEHeader()
	if header == nil {
		header = make(textproto.MIMEHeader)
	}
	return header
}

// requirementName extracts the distribution name of a Requires-Dist entry.
// Requirements that only apply to an extra are skipped.
func requirementName(req string) (string, bool) {
	_, marker, _ := strings.Cut(req, ";")
	if strings.Contains(strings.ReplaceAll(marker, " ", ""), "extra==") {
		return "", false
	}
	name := requirementNameRe.FindString(strings.TrimSpace(req))
	if name == "" {
		return "", false
	}
	return normaliseName(name), true
}

// parseRequiresTxt reads requirement names up to the first [extra] section.
func parseRequiresTxt(data []byte) []string {
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") {
			break
		}
		if name := requirementNameRe.FindString(line); name != "" {
			out = append(out, normaliseName(name))
		}
	}
	return out
}

// recordModules lists the modules of a dist-info RECORD manifest.
func recordModules(read func(string) ([]byte, error)) []string {
	data, err := read("RECORD")
	if err != nil {
		return nil
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil
	}

	var mods []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if mod, ok := sitePackagesModule(row[0]); ok {
			mods = append(mods, mod)
		}
	}
	return mods
}

// installedFilesModules lists the modules of an egg-info installed-files.txt,
// whose paths are relative to the egg-info directory.
func installedFilesModules(read func(string) ([]byte, error), entry string) []string {
	data, err := read("installed-files.txt")
	if err != nil {
		return nil
	}

	var mods []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if mod, ok := sitePackagesModule(path.Join(entry, filepath.ToSlash(line))); ok {
			mods = append(mods, mod)
		}
	}
	return mods
}

// sitePackagesModule maps a path relative to site-packages onto a module.
// Paths leaving site-packages or pointing into metadata entries are ignored.
func sitePackagesModule(rel string) (string, bool) {
	rel = path.Clean(filepath.ToSlash(rel))
	if rel == "." || strings.HasPrefix(rel, "../") || path.IsAbs(rel) {
		return "", false
	}
	if slices.ContainsFunc(strings.Split(rel, "/"), func(part string) bool {
		return strings.HasSuffix(part, distInfoExt) || strings.HasSuffix(part, eggInfoExt) || part == "__pycache__"
	}) {
		return "", false
	}
	return moduleFromPath(rel)
}
