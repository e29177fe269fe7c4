package ports

import (
	"iter"

	"go.trai.ch/envscan/internal/core/domain"
)

// ProjectLocator knows the on-disk layout of the project store.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type ProjectLocator interface {
	// Owners returns the owner directories below root in name order.
	Owners(root string) ([]string, error)
	// Projects returns the project directories of an owner in name order.
	Projects(ownerDir, marker string) ([]string, error)
	// VisibleEnvironments returns the environments a project can run in, in preference order.
	VisibleEnvironments(projectDir, anacondaRoot string) []domain.EnvironmentRef
	// KernelPrefix maps a notebook kernel name onto an environment prefix.
	KernelPrefix(projectDir, anacondaRoot, kernel string) (string, bool)
	// Directories yields the directories of a project to scan, top-down.
	Directories(projectDir string, reserved []string) iter.Seq[string]
}
