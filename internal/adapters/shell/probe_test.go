package shell_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/envscan/internal/adapters/shell"
	"go.trai.ch/envscan/internal/core/domain"
)

// fakeInterpreter writes a shell script standing in for a python binary.
func fakeInterpreter(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	path := filepath.Join(t.TempDir(), "python")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestProbe_Builtins(t *testing.T) {
	path := fakeInterpreter(t, `echo '["_io", "posix", "sys"]'`)

	names, err := shell.NewProbe().Builtins(t.Context(), path)

	require.NoError(t, err)
	assert.Equal(t, []string{"_io", "posix", "sys"}, names)
}

func TestProbe_Builtins_Failures(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "non-zero exit",
			path: func(t *testing.T) string { return fakeInterpreter(t, "echo broken >&2; exit 3") },
		},
		{
			name: "invalid output",
			path: func(t *testing.T) string { return fakeInterpreter(t, "echo not-json") },
		},
		{
			name: "missing binary",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "bin", "python") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := shell.NewProbe().Builtins(t.Context(), tt.path(t))
			require.ErrorContains(t, err, domain.ErrProbeFailed.Error())
		})
	}
}

func TestProbe_Fallback(t *testing.T) {
	probe := shell.NewProbe()

	first := probe.Fallback()
	assert.Contains(t, first, "sys")
	assert.Contains(t, first, "builtins")

	first[0] = "mutated"
	assert.NotEqual(t, "mutated", probe.Fallback()[0])
}
