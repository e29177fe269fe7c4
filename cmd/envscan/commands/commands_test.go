package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/envscan/cmd/envscan/commands"
	"go.trai.ch/envscan/internal/app"
	"go.trai.ch/envscan/internal/build"
)

type mockApp struct {
	loggingFunc   func(opts app.LoggingOptions) error
	inventoryFunc func(ctx context.Context, opts app.InventoryOptions) error
}

func (m *mockApp) ConfigureLogging(opts app.LoggingOptions) error {
	if m.loggingFunc != nil {
		return m.loggingFunc(opts)
	}
	return nil
}

func (m *mockApp) Inventory(ctx context.Context, opts app.InventoryOptions) error {
	if m.inventoryFunc != nil {
		return m.inventoryFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Inventory(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.InventoryOptions
		called := false

		mock := &mockApp{
			inventoryFunc: func(_ context.Context, opts app.InventoryOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{
			"inventory",
			"--root", "/srv/projects",
			"--anaconda-root", "/opt/anaconda",
			"--owner", "alice",
			"--project", "demo",
			"-o", "report.csv",
			"--summarize", "owner/package",
			"--config", "envscan.yaml",
			"--no-builtin-probe",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "/srv/projects", captured.Root)
		assert.Equal(t, "/opt/anaconda", captured.AnacondaRoot)
		assert.Equal(t, "alice", captured.Owner)
		assert.Equal(t, "demo", captured.Project)
		assert.Equal(t, "report.csv", captured.Output)
		assert.Equal(t, "owner/package", captured.Summarize)
		assert.Equal(t, "envscan.yaml", captured.ConfigPath)
		assert.True(t, captured.NoBuiltinProbe)
		assert.Same(t, out, captured.Stdout)
	})

	t.Run("reads environment variables", func(t *testing.T) {
		t.Setenv("ENVSCAN_ROOT", "/env/projects")
		t.Setenv("ENVSCAN_ANACONDA_ROOT", "/env/anaconda")
		t.Setenv("ENVSCAN_NO_BUILTIN_PROBE", "true")

		var captured app.InventoryOptions
		mock := &mockApp{
			inventoryFunc: func(_ context.Context, opts app.InventoryOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"inventory", "--anaconda-root", "/flag/anaconda"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "/env/projects", captured.Root)
		assert.Equal(t, "/flag/anaconda", captured.AnacondaRoot, "flags win over the environment")
		assert.True(t, captured.NoBuiltinProbe)
		assert.Empty(t, captured.Owner)
	})

	t.Run("returns error on inventory failure", func(t *testing.T) {
		mock := &mockApp{
			inventoryFunc: func(_ context.Context, _ app.InventoryOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"inventory"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		mock := &mockApp{
			inventoryFunc: func(_ context.Context, _ app.InventoryOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"inventory", "alice"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Logging(t *testing.T) {
	t.Run("passes global flags", func(t *testing.T) {
		var captured app.LoggingOptions
		mock := &mockApp{
			loggingFunc: func(opts app.LoggingOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"inventory", "-v", "--log-format", "json"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, captured.Verbose)
		assert.Equal(t, "json", captured.Format)
	})

	t.Run("defaults to auto", func(t *testing.T) {
		var captured app.LoggingOptions
		mock := &mockApp{
			loggingFunc: func(opts app.LoggingOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"inventory"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.False(t, captured.Verbose)
		assert.Equal(t, "auto", captured.Format)
	})

	t.Run("stops before the command on error", func(t *testing.T) {
		mock := &mockApp{
			loggingFunc: func(_ app.LoggingOptions) error {
				return errors.New("unsupported log format")
			},
			inventoryFunc: func(_ context.Context, _ app.InventoryOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"inventory", "--log-format", "xml"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.ErrorContains(t, err, "unsupported log format")
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t,
		"envscan version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n",
		buf.String())
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t,
		"envscan version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n",
		buf.String())
}

func TestCommands_VersionRejectsArgs(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version", "extra"})

	require.Error(t, cli.Execute(context.Background()))
	assert.NotContains(t, buf.String(), "envscan version")
}
