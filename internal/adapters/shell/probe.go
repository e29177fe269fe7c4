// Package shell runs interpreters to introspect their builtin modules.
package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"slices"

	"go.trai.ch/envscan/internal/core/domain"
	"go.trai.ch/envscan/internal/core/ports"
	"go.trai.ch/zerr"
)

const builtinScript = "import sys, json; print(json.dumps(sorted(sys.builtin_module_names)))"

var _ ports.BuiltinProbe = (*Probe)(nil)

// Probe implements ports.BuiltinProbe using os/exec.
type Probe struct{}

// NewProbe creates a new Probe.
func NewProbe() *Probe {
	return &Probe{}
}

// Builtins runs the python binary at path and decodes the JSON list of
// builtin module names it prints.
func (p *Probe) Builtins(ctx context.Context, path string) ([]string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, path, "-c", builtinScript) //nolint:gosec // interpreter of a scanned environment
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrProbeFailed.Error())
		wrapped = zerr.With(wrapped, "interpreter", path)
		if stderr.Len() > 0 {
			wrapped = zerr.With(wrapped, "stderr", string(bytes.TrimSpace(stderr.Bytes())))
		}
		return nil, wrapped
	}

	var names []string
	if err := json.Unmarshal(bytes.TrimSpace(stdout.Bytes()), &names); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProbeFailed.Error()), "interpreter", path)
	}
	return names, nil
}

// Fallback returns the builtin modules of a typical CPython 3 build.
func (p *Probe) Fallback() []string {
	return slices.Clone(fallbackBuiltins)
}

var fallbackBuiltins = []string{
	"_abc", "_ast", "_codecs", "_collections", "_functools", "_imp", "_io",
	"_locale", "_operator", "_signal", "_sre", "_stat", "_string",
	"_symtable", "_thread", "_tokenize", "_tracemalloc", "_typing",
	"_warnings", "_weakref", "atexit", "builtins", "errno", "faulthandler",
	"gc", "itertools", "marshal", "posix", "pwd", "sys", "time", "xxsubtype",
}
