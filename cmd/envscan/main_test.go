package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/envscan/internal/adapters/report"
	"go.trai.ch/envscan/internal/app"
	"go.trai.ch/envscan/internal/core/domain"
	"go.trai.ch/envscan/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func provide(a *app.App, log *mocks.MockLogger) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: a, Logger: log}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	application := app.New(
		mocks.NewMockConfigLoader(ctrl),
		mocks.NewMockInventoryBuilder(ctrl),
		mocks.NewMockReportWriter(ctrl),
		mockLogger,
	)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provide(application, mockLogger))
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	application := app.New(
		mockLoader,
		mocks.NewMockInventoryBuilder(ctrl),
		mocks.NewMockReportWriter(ctrl),
		mockLogger,
	)

	mockLoader.EXPECT().Load("missing.yaml", gomock.Any()).Return(domain.Settings{}, domain.ErrConfigReadFailed)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
	})

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"inventory", "--config", "missing.yaml"}, stderr, provide(application, mockLogger))
	assert.Equal(t, 1, exitCode)
}

// TestRun_InvalidSummary verifies that a malformed request fails before any scanning.
func TestRun_InvalidSummary(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	application := app.New(
		mocks.NewMockConfigLoader(ctrl),
		mocks.NewMockInventoryBuilder(ctrl),
		mocks.NewMockReportWriter(ctrl),
		mockLogger,
	)
	mockLogger.EXPECT().Error(gomock.Any())

	exitCode := run(context.Background(), []string{"inventory", "--summarize", "owner/galaxy"}, new(bytes.Buffer), provide(application, mockLogger))
	assert.Equal(t, 1, exitCode)
}

// TestRun_Inventory verifies the path from flags to the report file.
func TestRun_Inventory(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockBuilder := mocks.NewMockInventoryBuilder(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	application := app.New(mockLoader, mockBuilder, report.NewCSVWriter(), mockLogger)

	out := filepath.Join(t.TempDir(), "inventory.csv")
	mockLoader.EXPECT().Load("", gomock.Any()).Return(domain.DefaultSettings(), nil)
	mockBuilder.EXPECT().
		Build(gomock.Any(), gomock.Any(), domain.Selection{Owner: "alice"}).
		DoAndReturn(func(_ context.Context, settings domain.Settings, _ domain.Selection) ([]domain.InventoryRecord, error) {
			assert.Equal(t, "/srv/projects", settings.Root)
			return []domain.InventoryRecord{
				{Owner: "alice", Project: "demo", Environment: "default", Package: "numpy", Version: "1.26.4", Build: "py312_0", Required: true, Requested: true},
			}, nil
		})
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	args := []string{"inventory", "--root", "/srv/projects", "--owner", "alice", "--summarize", "owner/package", "--output", out}
	exitCode := run(context.Background(), args, new(bytes.Buffer), provide(application, mockLogger))
	require.Equal(t, 0, exitCode)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "owner,package,required,requested,environments\nalice,numpy,True,True,1\n", string(data))
}
