package domain

import "go.trai.ch/zerr"

// InventoryColumns is the column order of the unsummarised inventory.
var InventoryColumns = []string{
	"owner", "project", "environment", "package", "version", "build",
	"required", "requested", "required_by",
}

// EnvironmentRef names an environment visible to a project.
type EnvironmentRef struct {
	Prefix string
	Name   string
}

// InventoryRecord is one row of the inventory for one package of one environment.
type InventoryRecord struct {
	Owner       string
	Project     string
	Environment string
	Package     string
	Version     string
	Build       string
	Required    bool
	Requested   bool
	RequiredBy  string
}

// NewInventoryRecord validates and creates a record without hierarchy columns.
func NewInventoryRecord(env string, pkg *Package, required, requested bool, requiredBy string) (InventoryRecord, error) {
	if env == "" {
		return InventoryRecord{}, zerr.With(ErrInvalidRecord, "field", "environment")
	}
	if pkg == nil || pkg.Name == "" {
		return InventoryRecord{}, zerr.With(zerr.With(ErrInvalidRecord, "field", "package"), "environment", env)
	}
	return InventoryRecord{
		Environment: env,
		Package:     pkg.Name,
		Version:     pkg.Version,
		Build:       pkg.Build,
		Required:    required,
		Requested:   requested,
		RequiredBy:  requiredBy,
	}, nil
}

// WithProject returns a copy of r carrying the project column.
func (r InventoryRecord) WithProject(project string) InventoryRecord {
	r.Project = project
	return r
}

// WithOwner returns a copy of r carrying the owner column.
func (r InventoryRecord) WithOwner(owner string) InventoryRecord {
	r.Owner = owner
	return r
}

// Row renders r in InventoryColumns order.
func (r InventoryRecord) Row() []string {
	return []string{
		r.Owner, r.Project, r.Environment, r.Package, r.Version, r.Build,
		FormatBool(r.Required), FormatBool(r.Requested), r.RequiredBy,
	}
}

// FormatBool renders a boolean column.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// Table is a rectangular report ready to be serialised.
type Table struct {
	Header []string
	Rows   [][]string
}

// RecordsTable renders records as the unsummarised inventory table.
func RecordsTable(records []InventoryRecord) Table {
	t := Table{Header: append([]string(nil), InventoryColumns...)}
	t.Rows = make([][]string, 0, len(records))
	for _, r := range records {
		t.Rows = append(t.Rows, r.Row())
	}
	return t
}
