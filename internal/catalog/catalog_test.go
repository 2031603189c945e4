package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.MkdirAll(filepath.Join(root, n), 0o755))
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "projects.json"), nil)
	require.NoError(t, s.Load())
	assert.Empty(t, s.Projects())
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "projects.json")
	s := NewStore(path, nil)

	assert.True(t, s.Add(NewProject("demo", "/work/demo", "node")))
	assert.True(t, s.Add(Project{Name: "api", RootPath: "/work/api/", Libraries: []string{"express"}}))
	require.NoError(t, s.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rootPath": "/work/demo"`)
	assert.Contains(t, string(data), `"tags": []`)

	reloaded := NewStore(path, nil)
	require.NoError(t, reloaded.Load())
	got := reloaded.Projects()
	require.Len(t, got, 2)
	assert.Equal(t, Project{Name: "demo", RootPath: "/work/demo", Tags: []string{"node"}, Enabled: true}, got[0])
	assert.Equal(t, "/work/api", got[1].RootPath)
	assert.Equal(t, []string{"express"}, got[1].Libraries)
}

func TestStore_AddDeduplicatesByRootPath(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "projects.json"), nil)

	assert.True(t, s.Add(NewProject("demo", "/work/demo")))
	assert.False(t, s.Add(NewProject("renamed", "/work/./demo")))
	assert.Len(t, s.Projects(), 1)
	assert.Equal(t, "demo", s.Projects()[0].Name)
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "not an array"}`), 0o644))

	err := NewStore(path, nil).Load()
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestStore_SaveEmptyWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, NewStore(path, nil).Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestDetectLibraries(t *testing.T) {
	root := t.TempDir()

	libs, err := DetectLibraries(root)
	require.NoError(t, err)
	assert.Empty(t, libs)

	manifest := `{"name": "demo", "dependencies": {"zod": "^3.0.0", "express": "^4.0.0"}, "devDependencies": {"typescript": "^5"}}`
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(manifest), 0o644))

	libs, err = DetectLibraries(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"zod", "express"}, libs)
}

func TestScanner_Scan(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	mkdirs(t, first, "beta", "alpha", ".git")
	mkdirs(t, second, "gamma")
	require.NoError(t, os.WriteFile(filepath.Join(first, "notes.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(second, "gamma", "package.json"),
		[]byte(`{"dependencies": {"electron": "^30"}}`), 0o644))

	sc := NewScanner(nil)
	sc.DetectLibraries = true
	got, err := sc.Scan(context.Background(), first, second)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "alpha", got[0].Name)
	assert.Equal(t, filepath.Join(first, "alpha"), got[0].RootPath)
	assert.Equal(t, "beta", got[1].Name)
	assert.Equal(t, "gamma", got[2].Name)
	assert.Equal(t, []string{"electron"}, got[2].Libraries)
	assert.Nil(t, got[0].Libraries)
	for _, p := range got {
		assert.True(t, p.Enabled)
		assert.False(t, p.Favorite)
		assert.NotNil(t, p.Tags)
	}
}

func TestScanner_IncludeHidden(t *testing.T) {
	base := t.TempDir()
	mkdirs(t, base, ".config", "app")

	sc := NewScanner(nil)
	sc.IncludeHidden = true
	got, err := sc.Scan(context.Background(), base)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestScanner_MissingDir(t *testing.T) {
	_, err := NewScanner(nil).Scan(context.Background(), t.TempDir(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScanner_CanceledContext(t *testing.T) {
	base := t.TempDir()
	mkdirs(t, base, "app")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScanner(nil).Scan(ctx, base)
	assert.ErrorIs(t, err, context.Canceled)
}
