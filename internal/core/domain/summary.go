package domain

import (
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// SummaryScope is the hierarchy level records are grouped by.
type SummaryScope string

// SummaryDetail is the package granularity records are grouped by.
type SummaryDetail string

const (
	ScopeNode        SummaryScope = "node"
	ScopeOwner       SummaryScope = "owner"
	ScopeProject     SummaryScope = "project"
	ScopeEnvironment SummaryScope = "environment"

	DetailPackage SummaryDetail = "package"
	DetailVersion SummaryDetail = "version"
)

// Summary is a parsed --summarize request.
type Summary struct {
	Scope  SummaryScope
	Detail SummaryDetail
}

// ParseSummary parses SCOPE, DETAIL or SCOPE/DETAIL. An empty string yields
// the identity summary environment/version.
func ParseSummary(s string) (Summary, error) {
	out := Summary{Scope: ScopeEnvironment, Detail: DetailVersion}
	s = strings.TrimSpace(s)
	if s == "" {
		return out, nil
	}

	parts := strings.Split(s, "/")
	if len(parts) > 2 {
		return Summary{}, zerr.With(ErrInvalidSummary, "summary", s)
	}

	var sawScope, sawDetail bool
	for _, part := range parts {
		token := strings.ToLower(strings.TrimSpace(part))
		switch {
		case isScope(token) && !sawScope:
			out.Scope = SummaryScope(token)
			sawScope = true
		case isDetail(token) && !sawDetail:
			out.Detail = SummaryDetail(token)
			sawDetail = true
		default:
			return Summary{}, zerr.With(zerr.With(ErrInvalidSummary, "summary", s), "token", part)
		}
	}
	return out, nil
}

func isScope(token string) bool {
	switch SummaryScope(token) {
	case ScopeNode, ScopeOwner, ScopeProject, ScopeEnvironment:
		return true
	}
	return false
}

func isDetail(token string) bool {
	switch SummaryDetail(token) {
	case DetailPackage, DetailVersion:
		return true
	}
	return false
}

// IsIdentity reports whether the summary leaves the records untouched.
func (s Summary) IsIdentity() bool {
	return s.Scope == ScopeEnvironment && s.Detail == DetailVersion
}

func (s Summary) String() string {
	return string(s.Scope) + "/" + string(s.Detail)
}

// Apply groups records into a table.
func (s Summary) Apply(records []InventoryRecord) Table {
	if s.IsIdentity() {
		return RecordsTable(records)
	}

	keyCols := s.keyColumns()
	header := append(slices.Clone(keyCols), "required", "requested", "environments")

	type group struct {
		key       []string
		required  bool
		requested bool
		count     int
	}
	groups := make(map[string]*group)
	for _, r := range records {
		key := s.key(r)
		id := strings.Join(key, "\x00")
		g, ok := groups[id]
		if !ok {
			g = &group{key: key}
			groups[id] = g
		}
		g.required = g.required || r.Required
		g.requested = g.requested || r.Requested
		g.count++
	}

	ordered := make([]*group, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	slices.SortFunc(ordered, func(a, b *group) int {
		return slices.Compare(a.key, b.key)
	})

	t := Table{Header: header, Rows: make([][]string, 0, len(ordered))}
	for _, g := range ordered {
		row := append(slices.Clone(g.key), FormatBool(g.required), FormatBool(g.requested), strconv.Itoa(g.count))
		t.Rows = append(t.Rows, row)
	}
	return t
}

func (s Summary) keyColumns() []string {
	var cols []string
	switch s.Scope {
	case ScopeOwner:
		cols = []string{"owner"}
	case ScopeProject:
		cols = []string{"owner", "project"}
	case ScopeEnvironment:
		cols = []string{"owner", "project", "environment"}
	}
	cols = append(cols, "package")
	if s.Detail == DetailVersion {
		cols = append(cols, "version", "build")
	}
	return cols
}

func (s Summary) key(r InventoryRecord) []string {
	var key []string
	switch s.Scope {
	case ScopeOwner:
		key = []string{r.Owner}
	case ScopeProject:
		key = []string{r.Owner, r.Project}
	case ScopeEnvironment:
		key = []string{r.Owner, r.Project, r.Environment}
	}
	key = append(key, r.Package)
	if s.Detail == DetailVersion {
		key = append(key, r.Version, r.Build)
	}
	return key
}
