package fsops

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyTree(t *testing.T) {
	t.Parallel()

	binary := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}
	src := fstest.MapFS{
		"frag/src/main.ts":     {Data: []byte("import './styles.css'\n")},
		"frag/public/logo.png": {Data: binary},
		"frag/.gitignore":      {Data: []byte("node_modules\n")},
		"other/skip.ts":        {Data: []byte("nope")},
	}

	target := t.TempDir()
	upper := func(content []byte, _ string) ([]byte, error) {
		return bytes.ToUpper(content), nil
	}

	written, err := CopyTree(src, "frag", target, upper)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{".gitignore", "public/logo.png", "src/main.ts"}, written)

	got, err := os.ReadFile(filepath.Join(target, "src", "main.ts"))
	require.NoError(t, err)
	assert.Equal(t, "IMPORT './STYLES.CSS'\n", string(got))

	got, err = os.ReadFile(filepath.Join(target, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, "NODE_MODULES\n", string(got))

	got, err = os.ReadFile(filepath.Join(target, "public", "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, binary, got, "binary files are copied verbatim")

	assert.NoFileExists(t, filepath.Join(target, "skip.ts"))
}

func TestCopyTree_MissingSource(t *testing.T) {
	t.Parallel()

	_, err := CopyTree(fstest.MapFS{}, "absent", t.TempDir(), nil)
	assert.Error(t, err)
}

func TestCopyTree_NilTransform(t *testing.T) {
	t.Parallel()

	src := fstest.MapFS{"a/b/c.json": {Data: []byte(`{"x":1}`)}}
	target := filepath.Join(t.TempDir(), "nested", "out")

	written, err := CopyTree(src, "a", target, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"b/c.json"}, written)
	assert.FileExists(t, filepath.Join(target, "b", "c.json"))
}

func TestSafeJoin(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	tests := []struct {
		name    string
		rel     string
		wantErr bool
	}{
		{name: "plain", rel: "src/main.ts"},
		{name: "inner parent", rel: "src/../web/main.ts"},
		{name: "escape", rel: "../outside", wantErr: true},
		{name: "nested escape", rel: "src/../../outside", wantErr: true},
		{name: "absolute", rel: "/etc/passwd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := SafeJoin(root, tt.rel)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPathTraversal)
				return
			}
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(got, root))
		})
	}
}

func TestIsTextFile(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]bool{
		"src/App.tsx":        true,
		"src/App.vue":        true,
		"src/App.svelte":     true,
		".env.example":       true,
		".gitignore":         true,
		"web/.npmrc":         true,
		"README.MD":          true,
		"public/favicon.ico": false,
		"logo.png":           false,
		"Makefile":           false,
	} {
		assert.Equal(t, want, IsTextFile(name), name)
	}
}

func TestProbes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	empty, err := IsDirEmptyOrMissing(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.True(t, empty)

	empty, err = IsDirEmptyOrMissing(dir)
	require.NoError(t, err)
	assert.True(t, empty)

	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	assert.True(t, Exists(file))

	empty, err = IsDirEmptyOrMissing(dir)
	require.NoError(t, err)
	assert.False(t, empty)

	empty, err = IsDirEmptyOrMissing(file)
	require.NoError(t, err)
	assert.False(t, empty)

	require.NoError(t, RemoveIfExists(file))
	assert.False(t, Exists(file))
	require.NoError(t, RemoveIfExists(file), "removing an absent path is a no-op")
}
