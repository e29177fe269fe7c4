// Package inventory walks the project hierarchy and builds the package
// inventory of every environment the projects use.
package inventory

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/envscan/internal/core/domain"
	"go.trai.ch/envscan/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InventoryBuilder = (*Builder)(nil)

// Builder produces inventory records.
type Builder struct {
	indexer ports.EnvironmentIndexer
	locator ports.ProjectLocator
	hasher  ports.Hasher
	logger  ports.Logger
	tracer  ports.Tracer
}

// NewBuilder creates a new Builder with the given dependencies.
func NewBuilder(
	indexer ports.EnvironmentIndexer,
	locator ports.ProjectLocator,
	hasher ports.Hasher,
	logger ports.Logger,
	tracer ports.Tracer,
) *Builder {
	return &Builder{
		indexer: indexer,
		locator: locator,
		hasher:  hasher,
		logger:  logger,
		tracer:  tracer,
	}
}

// run is the state of one Build call. Every environment read during the
// call is cached in its session and dropped with it.
type run struct {
	*Builder
	settings domain.Settings
	session  ports.EnvironmentSession
}

// Build scans the selected part of the hierarchy and returns one record per
// package of every environment a project imports from. Records carry the
// owner and project they belong to.
func (b *Builder) Build(ctx context.Context, settings domain.Settings, sel domain.Selection) ([]domain.InventoryRecord, error) {
	ctx, span := b.tracer.Start(ctx, "inventory")
	defer span.End()

	r := &run{
		Builder:  b,
		settings: settings,
		session:  b.indexer.NewSession(settings.BuiltinProbe),
	}

	records, err := r.build(ctx, sel)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("envscan.records", len(records))
	return records, nil
}

func (r *run) build(ctx context.Context, sel domain.Selection) ([]domain.InventoryRecord, error) {
	if sel.Owner == "" {
		if sel.Project != "" {
			return nil, domain.ErrProjectWithoutOwner
		}
		return r.node(ctx)
	}

	ownerDir, owner := r.ownerDir(sel.Owner)
	if !isDir(ownerDir) {
		return nil, zerr.With(domain.ErrOwnerNotFound, "owner", sel.Owner)
	}
	if sel.Project == "" {
		return r.owner(ctx, owner, ownerDir)
	}

	projectDir := filepath.Join(ownerDir, sel.Project)
	if !isDir(projectDir) {
		return nil, zerr.With(zerr.With(domain.ErrProjectNotFound, "project", sel.Project), "owner", owner)
	}
	return r.project(ctx, owner, projectDir)
}

// ownerDir resolves an owner given by name or by path.
func (r *run) ownerDir(owner string) (dir, name string) {
	if strings.ContainsRune(owner, filepath.Separator) {
		if abs, err := filepath.Abs(owner); err == nil {
			owner = abs
		}
		dir = filepath.Clean(owner)
		return dir, filepath.Base(dir)
	}
	return filepath.Join(r.settings.Root, owner), owner
}

func (r *run) node(ctx context.Context) ([]domain.InventoryRecord, error) {
	owners, err := r.locator.Owners(r.settings.Root)
	if err != nil {
		return nil, err
	}

	var records []domain.InventoryRecord
	for _, ownerDir := range owners {
		recs, err := r.owner(ctx, filepath.Base(ownerDir), ownerDir)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

func (r *run) owner(ctx context.Context, owner, ownerDir string) ([]domain.InventoryRecord, error) {
	ctx, span := r.tracer.Start(ctx, "owner")
	defer span.End()
	span.SetAttribute("envscan.owner", owner)

	projects, err := r.locator.Projects(ownerDir, r.settings.ProjectMarker)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var records []domain.InventoryRecord
	for _, projectDir := range projects {
		recs, err := r.project(ctx, owner, projectDir)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

func (r *run) project(ctx context.Context, owner, projectDir string) ([]domain.InventoryRecord, error) {
	project := filepath.Base(projectDir)

	ctx, span := r.tracer.Start(ctx, "project")
	defer span.End()
	span.SetAttribute("envscan.owner", owner)
	span.SetAttribute("envscan.project", project)

	scan := newProjectScan(r, owner, projectDir)
	if err := scan.walk(ctx); err != nil {
		span.RecordError(err)
		return nil, err
	}
	scan.summary()

	records, err := scan.records(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	for i := range records {
		records[i] = records[i].WithProject(project).WithOwner(owner)
	}
	span.SetAttribute("envscan.records", len(records))
	return records, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
