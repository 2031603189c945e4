package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, root, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(content), 0o644))
}

func readManifest(t *testing.T, root string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	require.NoError(t, err)
	return string(data)
}

func TestMergeScripts_ShallowMerge(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"name":"demo","scripts":{"existing":"command","start":"old"},"version":"1.0.0"}`)

	merged, err := MergeScripts(root, map[string]string{"start": "node index.js", "build": "tsc"})
	require.NoError(t, err)
	assert.True(t, merged)

	scripts, err := Scripts(root)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"existing": "command",
		"start":    "node index.js",
		"build":    "tsc",
	}, scripts)
}

func TestMergeScripts_PreservesOtherFieldsAndOrder(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{
  "name": "demo",
  "version": "1.0.0",
  "scripts": {
    "test": "jest"
  },
  "dependencies": {
    "zod": "^3.0.0",
    "express": "^4.0.0"
  }
}`)

	_, err := MergeScripts(root, map[string]string{"lint": "eslint ."})
	require.NoError(t, err)

	want := `{
  "name": "demo",
  "version": "1.0.0",
  "scripts": {
    "test": "jest",
    "lint": "eslint ."
  },
  "dependencies": {
    "zod": "^3.0.0",
    "express": "^4.0.0"
  }
}
`
	assert.Equal(t, want, readManifest(t, root))
}

func TestMergeScripts_NoScriptsSection(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"name":"demo"}`)

	_, err := MergeScripts(root, map[string]string{"b": "2", "a": "1"})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"name\": \"demo\",\n  \"scripts\": {\n    \"a\": \"1\",\n    \"b\": \"2\"\n  }\n}\n", readManifest(t, root))
}

func TestMergeScripts_MissingManifestIsNoop(t *testing.T) {
	root := t.TempDir()

	merged, err := MergeScripts(root, map[string]string{"start": "node ."})
	require.NoError(t, err)
	assert.False(t, merged)

	_, statErr := os.Stat(filepath.Join(root, "package.json"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "manifest must not be created")
}

func TestMergeScripts_InvalidManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `["not", "an", "object"]`)

	_, err := MergeScripts(root, map[string]string{"start": "node ."})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotObject)
}

func TestDependencies(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"dependencies":{"zod":"^3","express":"^4"},"devDependencies":{"jest":"^29"}}`)

	deps, err := Dependencies(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"zod", "express"}, deps)
}

func TestDependencies_MissingSection(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"name":"demo"}`)

	deps, err := Dependencies(root)
	require.NoError(t, err)
	assert.Empty(t, deps)
	assert.True(t, Exists(root))
	assert.False(t, Exists(t.TempDir()))
}
