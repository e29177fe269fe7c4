package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/envscan/internal/core/domain"
	"go.trai.ch/envscan/internal/engine/inventory"
)

func newPackage(t *testing.T, name string, modules []string, depends ...string) *domain.Package {
	t.Helper()
	p, err := domain.NewPackage(name, "1.0", "0", domain.OriginManaged)
	require.NoError(t, err)
	for _, m := range modules {
		p.AddModule(domain.LanguagePython, m)
	}
	p.Depends.Add(depends...)
	return p
}

// scenarioEnvironment holds a runtime, pandas depending on numpy, and an
// unused requests.
func scenarioEnvironment(t *testing.T, prefix string) *domain.Environment {
	t.Helper()
	return domain.NewEnvironment(prefix, []*domain.Package{
		newPackage(t, "python", []string{"os", "sys"}),
		newPackage(t, "numpy", []string{"numpy"}, "python"),
		newPackage(t, "pandas", []string{"pandas"}, "python", "numpy", "python-dateutil"),
		newPackage(t, "requests", []string{"requests"}, "python", "idna"),
	})
}

func TestClassify(t *testing.T) {
	env := scenarioEnvironment(t, "/env")

	c := inventory.Classify(env, domain.NewStringSet("pandas", "python", "not-installed"))

	assert.Equal(t, []string{"pandas", "python"}, c.Requested.Sorted())
	assert.Equal(t, []string{"numpy", "pandas", "python"}, c.Required.Sorted())
	assert.Equal(t, []string{"requests"}, c.Extra.Sorted())
}

func TestClassify_RuntimeRequiredBecomesRequested(t *testing.T) {
	env := scenarioEnvironment(t, "/env")

	c := inventory.Classify(env, domain.NewStringSet("numpy"))

	assert.Equal(t, []string{"numpy", "python"}, c.Requested.Sorted())
	assert.Equal(t, []string{"numpy", "python"}, c.Required.Sorted())
}

func TestClassify_Invariants(t *testing.T) {
	env := scenarioEnvironment(t, "/env")

	for _, imported := range [][]string{nil, {"requests"}, {"pandas", "requests"}, {"numpy"}} {
		c := inventory.Classify(env, domain.NewStringSet(imported...))

		assert.Equal(t, 0, c.Requested.Difference(c.Required).Len(), "requested must be required")
		assert.Equal(t, 0, c.Extra.Intersect(c.Required).Len(), "extra must not be required")
		assert.Equal(t, env.Len(), c.Required.Len()+c.Extra.Len())
	}
}

func TestRequiredBy(t *testing.T) {
	env := domain.NewEnvironment("/env", []*domain.Package{
		newPackage(t, "python", []string{"os"}),
		newPackage(t, "six", nil, "python"),
		newPackage(t, "dateutil", nil, "six"),
		newPackage(t, "pandas", nil, "dateutil", "python"),
		newPackage(t, "matplotlib", nil, "dateutil", "six"),
	})
	requested := domain.NewStringSet("pandas", "matplotlib", "python")

	assert.Equal(t, "matplotlib, pandas", inventory.RequiredBy(env, "dateutil", requested))
	assert.Equal(t, "matplotlib, pandas", inventory.RequiredBy(env, "six", requested))
	assert.Empty(t, inventory.RequiredBy(env, "unknown", requested))
}

func TestRequiredBy_StopsAtRequestedPackages(t *testing.T) {
	env := domain.NewEnvironment("/env", []*domain.Package{
		newPackage(t, "libffi", nil),
		newPackage(t, "cffi", nil, "libffi"),
		newPackage(t, "cryptography", nil, "cffi"),
		newPackage(t, "paramiko", nil, "cryptography"),
		newPackage(t, "orphan", nil),
	})
	requested := domain.NewStringSet("cryptography", "paramiko")

	assert.Equal(t, "cryptography", inventory.RequiredBy(env, "libffi", requested))
	assert.Equal(t, "cryptography", inventory.RequiredBy(env, "cffi", requested))
	assert.Empty(t, inventory.RequiredBy(env, "orphan", requested))
	assert.Empty(t, inventory.RequiredBy(env, "libffi", domain.NewStringSet()))
}

func TestRecords(t *testing.T) {
	env := scenarioEnvironment(t, "/env")
	c := inventory.Classify(env, domain.NewStringSet("pandas", "python"))

	records, err := inventory.Records("default", env, c)
	require.NoError(t, err)

	want := []domain.InventoryRecord{
		{Environment: "default", Package: "pandas", Version: "1.0", Build: "0", Required: true, Requested: true},
		{Environment: "default", Package: "python", Version: "1.0", Build: "0", Required: true, Requested: true},
		{Environment: "default", Package: "numpy", Version: "1.0", Build: "0", Required: true, RequiredBy: "pandas"},
		{Environment: "default", Package: "requests", Version: "1.0", Build: "0"},
	}
	assert.Equal(t, want, records)
}

func TestRecords_InvalidEnvironmentName(t *testing.T) {
	env := scenarioEnvironment(t, "/env")

	_, err := inventory.Records("", env, inventory.Classify(env, domain.NewStringSet("pandas")))

	require.ErrorContains(t, err, domain.ErrInvalidRecord.Error())
}
