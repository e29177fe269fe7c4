// Package config loads run settings from an envscan.yaml file.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/envscan/internal/core/domain"
	"go.trai.ch/envscan/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the settings file at path, or the nearest envscan.yaml at or
// above cwd when path is empty. Without a file the defaults are returned.
func (l *Loader) Load(path, cwd string) (domain.Settings, error) {
	if path == "" {
		path = findConfiguration(cwd)
		if path == "" {
			l.logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
			return domain.DefaultSettings(), nil
		}
	}

	var cfg Configfile
	if err := readAndUnmarshalYAML(path, &cfg); err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}
	l.logger.Debug("loaded settings from " + path)

	settings := apply(domain.DefaultSettings(), &cfg, filepath.Dir(path))
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}
	return settings, nil
}

func findConfiguration(cwd string) string {
	if cwd == "" {
		return ""
	}

	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// apply overlays the keys set in cfg on base. Relative directories are
// resolved against the directory holding the settings file.
func apply(base domain.Settings, cfg *Configfile, configDir string) domain.Settings {
	if cfg.Root != "" {
		base.Root = resolvePath(configDir, cfg.Root)
	}
	if cfg.AnacondaRoot != "" {
		base.AnacondaRoot = resolvePath(configDir, cfg.AnacondaRoot)
	}
	if cfg.ProjectMarker != "" {
		base.ProjectMarker = cfg.ProjectMarker
	}
	if cfg.ReservedDirs != nil {
		base.ReservedDirs = cfg.ReservedDirs
	}
	if cfg.BuiltinProbe != nil {
		base.BuiltinProbe = *cfg.BuiltinProbe
	}
	return base
}

func resolvePath(configDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(configDir, path))
}

// readAndUnmarshalYAML reads a YAML file and decodes it into target,
// rejecting unknown keys. An empty file decodes to the zero value.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath comes from the command line or the upward search
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}
