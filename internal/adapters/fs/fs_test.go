package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/envscan/internal/adapters/fs"
	"go.trai.ch/envscan/internal/core/domain"
)

func mkdir(t *testing.T, parts ...string) string {
	t.Helper()
	path := filepath.Join(parts...)
	require.NoError(t, os.MkdirAll(path, domain.DirPerm))
	return path
}

func touch(t *testing.T, parts ...string) {
	t.Helper()
	path := filepath.Join(parts...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, nil, domain.FilePerm))
}

func mkenv(t *testing.T, parts ...string) string {
	t.Helper()
	prefix := filepath.Join(parts...)
	mkdir(t, domain.CondaMetaPath(prefix))
	return prefix
}

func TestLocator_Owners(t *testing.T) {
	root := t.TempDir()
	mkdir(t, root, "dave")
	mkdir(t, root, "alice")
	mkdir(t, root, ".trash")
	touch(t, root, "README")

	owners, err := fs.NewLocator().Owners(root)

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "alice"), filepath.Join(root, "dave")}, owners)
}

func TestLocator_Owners_MissingRoot(t *testing.T) {
	_, err := fs.NewLocator().Owners(filepath.Join(t.TempDir(), "nope"))
	require.ErrorContains(t, err, domain.ErrRootNotFound.Error())
}

func TestLocator_Projects(t *testing.T) {
	owner := t.TempDir()
	touch(t, owner, "p1", domain.ProjectMarkerFile)
	touch(t, owner, "p0", domain.ProjectMarkerFile)
	mkdir(t, owner, "scratch")
	touch(t, owner, ".hidden", domain.ProjectMarkerFile)

	projects, err := fs.NewLocator().Projects(owner, domain.ProjectMarkerFile)

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(owner, "p0"), filepath.Join(owner, "p1")}, projects)
}

func TestLocator_Projects_MissingOwner(t *testing.T) {
	_, err := fs.NewLocator().Projects(filepath.Join(t.TempDir(), "ghost"), domain.ProjectMarkerFile)
	require.ErrorContains(t, err, domain.ErrOwnerNotFound.Error())
}

func TestLocator_VisibleEnvironments(t *testing.T) {
	base := t.TempDir()
	project := mkdir(t, base, "alice", "proj")
	anaconda := mkenv(t, base, "anaconda")

	mkenv(t, project, "envs", "zeta")
	mkenv(t, project, "envs", "default")
	mkenv(t, project, "envs", "alpha")
	mkdir(t, project, "envs", "broken")
	mkenv(t, anaconda, "envs", "py27")

	refs := fs.NewLocator().VisibleEnvironments(project, anaconda)

	want := []domain.EnvironmentRef{
		{Prefix: filepath.Join(project, "envs", "default"), Name: "default"},
		{Prefix: filepath.Join(project, "envs", "alpha"), Name: "alpha"},
		{Prefix: filepath.Join(project, "envs", "zeta"), Name: "zeta"},
		{Prefix: filepath.Join(anaconda, "envs", "py27"), Name: "anaconda:py27"},
		{Prefix: anaconda, Name: "anaconda:root"},
	}
	if diff := cmp.Diff(want, refs); diff != "" {
		t.Errorf("VisibleEnvironments() mismatch (-want +got):\n%s", diff)
	}
}

func TestLocator_VisibleEnvironments_NoAnaconda(t *testing.T) {
	project := t.TempDir()
	mkenv(t, project, "envs", "default")

	refs := fs.NewLocator().VisibleEnvironments(project, "")

	require.Len(t, refs, 1)
	assert.Equal(t, "default", refs[0].Name)
}

func TestLocator_KernelPrefix(t *testing.T) {
	base := t.TempDir()
	project := mkdir(t, base, "alice", "proj")
	anaconda := mkenv(t, base, "anaconda")
	mkenv(t, anaconda, "envs", "py3")
	mkenv(t, project, "envs", "default")

	tests := []struct {
		name   string
		kernel string
		want   string
		wantOK bool
	}{
		{"anaconda root", "conda-root-py", anaconda, true},
		{"anaconda env", "conda-env-anaconda-py3-py", filepath.Join(anaconda, "envs", "py3"), true},
		{"project env", "conda-env-proj-default-py", filepath.Join(project, "envs", "default"), true},
		{"missing project env", "conda-env-proj-other-py", "", false},
		{"other project", "conda-env-elsewhere-default-py", "", false},
		{"plain kernel", "python3", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := fs.NewLocator().KernelPrefix(project, anaconda, tt.kernel)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocator_Directories(t *testing.T) {
	project := t.TempDir()
	mkdir(t, project, "analysis", "deep")
	mkdir(t, project, "analysis", "envs")
	touch(t, project, "mypkg", domain.PythonInitFile)
	mkdir(t, project, ".git", "objects")
	mkenv(t, project, "envs", "default")
	mkdir(t, project, "examples")

	var got []string
	for dir := range fs.NewLocator().Directories(project, domain.DefaultReservedDirs()) {
		rel, err := filepath.Rel(project, dir)
		require.NoError(t, err)
		got = append(got, rel)
	}
	slices.Sort(got)

	assert.Equal(t, []string{".", "analysis", "analysis/deep", "analysis/envs"}, got)
}

func TestLocator_Directories_StopsEarly(t *testing.T) {
	project := t.TempDir()
	mkdir(t, project, "a")
	mkdir(t, project, "b")

	count := 0
	for range fs.NewLocator().Directories(project, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestHasher_EnvironmentDigest(t *testing.T) {
	pkg := func(name, version string) *domain.Package {
		p, err := domain.NewPackage(name, version, "0", domain.OriginManaged)
		require.NoError(t, err)
		return p
	}

	h := fs.NewHasher()
	a := h.EnvironmentDigest(domain.NewEnvironment("/a", []*domain.Package{pkg("numpy", "1.0"), pkg("python", "3.6")}))
	b := h.EnvironmentDigest(domain.NewEnvironment("/b", []*domain.Package{pkg("python", "3.6"), pkg("numpy", "1.0")}))
	c := h.EnvironmentDigest(domain.NewEnvironment("/c", []*domain.Package{pkg("python", "3.7"), pkg("numpy", "1.0")}))

	assert.Len(t, a, 16)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
