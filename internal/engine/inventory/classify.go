package inventory

import (
	"go.trai.ch/envscan/internal/core/domain"
)

// requiredBySep joins the names of a required_by explanation.
const requiredBySep = ", "

// Classification splits the installed packages of one environment by use.
type Classification struct {
	// Requested holds the packages imported directly, plus the language
	// runtimes that ended up required.
	Requested domain.StringSet
	// Required holds Requested and everything it depends on transitively.
	Required domain.StringSet
	// Extra holds the installed packages that are not required.
	Extra domain.StringSet
}

// Classify computes the classification of env given the packages the
// files assigned to it imported. Names that are not installed are dropped.
func Classify(env *domain.Environment, imported domain.StringSet) Classification {
	installed := env.Installed()
	requested := imported.Intersect(installed)
	required := env.DependencyGraph().Closure(requested)

	for _, runtime := range domain.RuntimePackages() {
		if required.Has(runtime) {
			requested.Add(runtime)
		}
	}

	return Classification{
		Requested: requested,
		Required:  required,
		Extra:     installed.Difference(required),
	}
}

// RequiredBy lists the requested packages that pull name in. The walk
// follows reverse dependency edges and stops at requested packages, so a
// package reached only through a runtime is not attributed to everything
// that uses the runtime. A package no requested package depends on yields
// an empty string.
func RequiredBy(env *domain.Environment, name string, requested domain.StringSet) string {
	pkg, ok := env.Package(name)
	if !ok {
		return ""
	}

	revs := env.DependencyGraph().ReverseReach(pkg.Reverse, requested)
	return revs.Intersect(requested).Join(requiredBySep)
}

// Records renders the classification of env as inventory records:
// requested packages first, then required-only ones, then extras, each in
// name order.
func Records(envName string, env *domain.Environment, c Classification) ([]domain.InventoryRecord, error) {
	records := make([]domain.InventoryRecord, 0, env.Len())

	add := func(name string, required, requested bool, requiredBy string) error {
		pkg, _ := env.Package(name)
		rec, err := domain.NewInventoryRecord(envName, pkg, required, requested, requiredBy)
		if err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	}

	for _, name := range c.Requested.Sorted() {
		if err := add(name, true, true, ""); err != nil {
			return nil, err
		}
	}
	for _, name := range c.Required.Difference(c.Requested).Sorted() {
		if err := add(name, true, false, RequiredBy(env, name, c.Requested)); err != nil {
			return nil, err
		}
	}
	for _, name := range c.Extra.Sorted() {
		if err := add(name, false, false, ""); err != nil {
			return nil, err
		}
	}
	return records, nil
}
