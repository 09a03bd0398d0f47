package template

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedded_HasFragments(t *testing.T) {
	t.Parallel()
	lib := Embedded()

	assert.Equal(t, "embedded", lib.Origin())
	for _, p := range []string{
		CoreFragment + "/index.ts",
		"backend-vercel/api/_lib/http.ts",
		"backend-vercel/src/bootstrap/container.ts",
		"backend-vercel/src/adapters/worker_threads/run-heavy-task.ts",
		"frontend-react/vite.config.ts",
	} {
		assert.True(t, lib.Exists(p), p)
	}
}

func TestEmbedded_Templates(t *testing.T) {
	t.Parallel()

	infos, err := Embedded().Templates()
	require.NoError(t, err)

	ids := make(map[string]string, len(infos))
	for _, info := range infos {
		ids[info.ID] = info.Description
	}

	assert.Contains(t, ids, "base")
	assert.NotEmpty(t, ids["base"])
	assert.Contains(t, ids, "backend-vercel")
	assert.Contains(t, ids, "frontend-svelte")
	assert.Contains(t, ids, "overlays/daisyui")
	assert.Contains(t, ids, "adapters/db/postgres")
	assert.NotContains(t, ids, "overlays")
	assert.NotContains(t, ids, "adapters")
}

func TestFromFS(t *testing.T) {
	t.Parallel()

	_, err := FromFS(fstest.MapFS{"frontend-react/index.html": {}}, "test")
	assert.ErrorIs(t, err, ErrLibraryNotFound)

	lib, err := FromFS(fstest.MapFS{"base/src/core/index.ts": {Data: []byte("export {};\n")}}, "test")
	require.NoError(t, err)
	assert.True(t, lib.Exists("base/src/core/index.ts"))
	assert.False(t, lib.Exists("base/missing.ts"))
}

func TestFromDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := FromDir(dir)
	assert.ErrorIs(t, err, ErrLibraryNotFound)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "base", "src", "core"), 0o755))
	lib, err := FromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, lib.Origin())
	assert.True(t, lib.IsDir(CoreFragment))
}
