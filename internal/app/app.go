// Package app implements the application layer for envscan.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/envscan/internal/adapters/detector"
	"go.trai.ch/envscan/internal/core/domain"
	"go.trai.ch/envscan/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	builder      ports.InventoryBuilder
	report       ports.ReportWriter
	logger       ports.Logger
	interactive  func() bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	builder ports.InventoryBuilder,
	report ports.ReportWriter,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		builder:      builder,
		report:       report,
		logger:       log,
		interactive:  detector.IsInteractive,
	}
}

// WithInteractive overrides the terminal detection used for --log-format auto.
// This is primarily used for testing.
func (a *App) WithInteractive(fn func() bool) *App {
	a.interactive = fn
	return a
}

// LoggingOptions configuration for the ConfigureLogging method.
type LoggingOptions struct {
	Verbose bool
	Format  string
}

// configurableLogger is implemented by the slog-backed logger adapter.
type configurableLogger interface {
	SetJSON(enable bool)
	SetColor(enable bool)
	SetVerbose(enable bool)
}

// ConfigureLogging applies the global logging flags. Loggers that cannot be
// reconfigured are left untouched once the format has been validated.
func (a *App) ConfigureLogging(opts LoggingOptions) error {
	format, err := detector.ResolveLogFormat(opts.Format, a.interactive())
	if err != nil {
		return err
	}

	l, ok := a.logger.(configurableLogger)
	if !ok {
		return nil
	}
	l.SetVerbose(opts.Verbose)
	l.SetJSON(format == detector.FormatJSON)
	l.SetColor(format == detector.FormatPretty)
	return nil
}

// InventoryOptions configuration for the Inventory method. Empty strings
// keep the value from the settings file.
type InventoryOptions struct {
	Root           string
	AnacondaRoot   string
	Owner          string
	Project        string
	Output         string
	Summarize      string
	ConfigPath     string
	NoBuiltinProbe bool
	// Stdout receives the report when Output is empty or "-".
	Stdout io.Writer
}

// Inventory scans the selected part of the hierarchy and writes the
// (optionally summarised) inventory table.
func (a *App) Inventory(ctx context.Context, opts InventoryOptions) error {
	// 1. Validate the request before touching the filesystem
	summary, err := domain.ParseSummary(opts.Summarize)
	if err != nil {
		return err
	}
	if opts.Project != "" && opts.Owner == "" {
		return domain.ErrProjectWithoutOwner
	}

	// 2. Load settings
	settings, err := a.settings(opts)
	if err != nil {
		return err
	}

	// 3. Scan
	records, err := a.builder.Build(ctx, settings, domain.Selection{
		Owner:   opts.Owner,
		Project: opts.Project,
	})
	if err != nil {
		return zerr.Wrap(err, "inventory failed")
	}

	// 4. Report
	return a.write(opts, summary.Apply(records))
}

func (a *App) settings(opts InventoryOptions) (domain.Settings, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to get current working directory")
	}

	settings, err := a.configLoader.Load(opts.ConfigPath, cwd)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Root != "" {
		settings.Root = opts.Root
	}
	if opts.AnacondaRoot != "" {
		settings.AnacondaRoot = opts.AnacondaRoot
	}
	if opts.NoBuiltinProbe {
		settings.BuiltinProbe = false
	}
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

func (a *App) write(opts InventoryOptions, table domain.Table) error {
	if opts.Output == "" || opts.Output == "-" {
		stdout := opts.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		return a.report.Write(stdout, table)
	}

	f, err := os.OpenFile(opts.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", opts.Output)
	}
	if err := a.report.Write(f, table); err != nil {
		_ = f.Close()
		return zerr.With(err, "path", opts.Output)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", opts.Output)
	}
	a.logger.Info("wrote " + opts.Output)
	return nil
}
