package ports

import "go.trai.ch/envscan/internal/core/domain"

// ConfigLoader defines the interface for loading run settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings file at path. An empty path searches upward
	// from cwd; when nothing is found the defaults are returned.
	Load(path, cwd string) (domain.Settings, error)
}
