package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/envscan/internal/core/domain"
)

func mustPackage(t *testing.T, name string, modules []string, depends ...string) *domain.Package {
	t.Helper()
	p, err := domain.NewPackage(name, "1.0", "0", domain.OriginManaged)
	require.NoError(t, err)
	for _, m := range modules {
		p.AddModule(domain.LanguagePython, m)
	}
	p.Depends.Add(depends...)
	return p
}

func scenarioEnvironment(t *testing.T) *domain.Environment {
	t.Helper()
	return domain.NewEnvironment("/env", []*domain.Package{
		mustPackage(t, "python", []string{"os", "sys"}),
		mustPackage(t, "numpy", []string{"numpy", "numpy.linalg"}, "python", "libblas"),
		mustPackage(t, "pandas", []string{"pandas"}, "python", "numpy"),
	})
}

func TestNewPackage(t *testing.T) {
	p, err := domain.NewPackage("PyYAML", "5.1", "py36", domain.OriginDistribution)
	require.NoError(t, err)
	assert.Equal(t, "pyyaml", p.Name)

	local, err := domain.NewPackage("./Report.py", domain.LocalVersion, domain.LocalVersion, domain.OriginLocal)
	require.NoError(t, err)
	assert.Equal(t, "./Report.py", local.Name)

	_, err = domain.NewPackage("  ", "1", "0", domain.OriginManaged)
	require.ErrorContains(t, err, domain.ErrInvalidPackage.Error())
}

func TestEnvironment_ReverseAndDependencies(t *testing.T) {
	env := scenarioEnvironment(t)

	numpy, ok := env.Package("numpy")
	require.True(t, ok)
	assert.Equal(t, domain.NewStringSet("pandas"), numpy.Reverse)
	assert.Equal(t, domain.NewStringSet("python"), env.Dependencies("numpy"), "uninstalled dependency is not an edge")
	assert.True(t, numpy.Depends.Has("libblas"), "declared dependency is kept")

	python, _ := env.Package("python")
	assert.Equal(t, domain.NewStringSet("numpy", "pandas"), python.Reverse)
	assert.Equal(t, []string{"numpy", "pandas", "python"}, env.PackageNames())
}

func TestEnvironment_Lookup(t *testing.T) {
	env := scenarioEnvironment(t)

	tests := []struct {
		name   string
		module string
		want   string
		found  bool
	}{
		{name: "exact", module: "numpy.linalg", want: "numpy", found: true},
		{name: "parent", module: "pandas.core.frame", want: "pandas", found: true},
		{name: "missing", module: "requests.adapters", found: false},
		{name: "empty", module: "", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := env.Lookup(domain.LanguagePython, tt.module)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnvironment_ModuleCollision_LastWriterWins(t *testing.T) {
	env := domain.NewEnvironment("/env", []*domain.Package{
		mustPackage(t, "first", []string{"shared"}),
		mustPackage(t, "second", []string{"shared"}),
	})

	got, ok := env.LookupExact(domain.LanguagePython, "shared")
	require.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestEnvironment_WithLocals(t *testing.T) {
	base := scenarioEnvironment(t)

	analysis := domain.NewLocalPackage(domain.LocalName("analysis.py"), "/proj/analysis.py", domain.LocalScript)
	analysis.Modules[domain.LanguagePython].Add("analysis")
	analysis.Imports[domain.LanguagePython].Add("helpers", "pandas", "analysis")

	helpers := domain.NewLocalPackage(domain.LocalName("helpers.py"), "/proj/helpers.py", domain.LocalScript)
	helpers.Modules[domain.LanguagePython].Add("helpers")
	helpers.Imports[domain.LanguagePython].Add("numpy.linalg", "os")

	overlay := base.WithLocals("/proj", []*domain.LocalPackage{helpers, analysis})

	t.Run("local modules resolve to local names", func(t *testing.T) {
		got, ok := overlay.Lookup(domain.LanguagePython, "helpers.util")
		require.True(t, ok)
		assert.Equal(t, "./helpers.py", got)
	})

	t.Run("depends computed through merged index", func(t *testing.T) {
		a, ok := overlay.Local("./analysis.py")
		require.True(t, ok)
		assert.Equal(t, domain.NewStringSet("./helpers.py", "pandas"), a.Depends)
		assert.Equal(t, domain.NewStringSet("./helpers.py"), a.LocalDepends())

		h, _ := overlay.Local("./helpers.py")
		assert.Equal(t, domain.NewStringSet("numpy", "python"), h.Depends)
	})

	t.Run("base is not mutated", func(t *testing.T) {
		_, ok := base.Lookup(domain.LanguagePython, "helpers")
		assert.False(t, ok)
		assert.Empty(t, base.Locals())
		assert.Empty(t, analysis.Depends, "input local packages are copied")
		assert.Empty(t, base.Overlay())
	})

	t.Run("locals are listed in name order", func(t *testing.T) {
		locals := overlay.Locals()
		require.Len(t, locals, 2)
		assert.Equal(t, "./analysis.py", locals[0].Name)
		assert.Equal(t, "./helpers.py", locals[1].Name)
		assert.Equal(t, "/proj", overlay.Overlay())
	})
}
