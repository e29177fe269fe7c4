package domain

// Selection narrows an inventory run to one owner or one project. The zero
// value selects every owner below the root.
type Selection struct {
	// Owner is an owner name below the root, or a path to an owner directory.
	Owner string
	// Project is a project name below Owner.
	Project string
}
