// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/envscan/internal/adapters/conda"
	_ "go.trai.ch/envscan/internal/adapters/config"
	_ "go.trai.ch/envscan/internal/adapters/fs"
	_ "go.trai.ch/envscan/internal/adapters/imports"
	_ "go.trai.ch/envscan/internal/adapters/logger"
	_ "go.trai.ch/envscan/internal/adapters/report"
	_ "go.trai.ch/envscan/internal/adapters/shell"
	_ "go.trai.ch/envscan/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/envscan/internal/app"
	_ "go.trai.ch/envscan/internal/engine/inventory"
)
