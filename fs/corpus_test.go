package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threedocs/threedocs"
	"github.com/threedocs/threedocs/fs"
)

func testCorpus() *threedocs.Corpus {
	return &threedocs.Corpus{
		Docs: []*threedocs.Entry{{
			Name:        "Vector3",
			Title:       "Vector3( x: Float, y: Float, z: Float )",
			URL:         "https://threejs.org/docs/index.html#api/en/math/Vector3",
			Description: "Class representing a 3D vector.",
			Properties: []*threedocs.Entry{{
				Name:  "x",
				Title: "x: Float",
				URL:   "https://threejs.org/docs/index.html#api/en/math/Vector3.x",
			}},
		}},
		Examples: []*threedocs.Entry{{
			Name: "webgl_animation_keyframes",
			URL:  "https://threejs.org/examples/#webgl_animation_keyframes",
			Tags: []string{"webgl", "animation", "keyframes"},
		}},
		Revision: "abc123",
	}
}

func TestSaveAndLoadCorpus(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, fs.SaveCorpus(path, testCorpus()))

	loaded, err := fs.NewLoader(path).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, loaded.Docs, 1)
	assert.Equal(t, "Vector3", loaded.Docs[0].Name)
	require.Len(t, loaded.Docs[0].Properties, 1)
	assert.Equal(t, "x: Float", loaded.Docs[0].Properties[0].Title)
	assert.Equal(t, "abc123", loaded.Revision)
}

func TestSaveCorpus_ReplacesExistingDump(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, fs.SaveCorpus(path, testCorpus()))

	updated := testCorpus()
	updated.Revision = "def456"
	require.NoError(t, fs.SaveCorpus(path, updated))

	loaded, err := fs.NewLoader(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "def456", loaded.Revision)

	// No temporary file left behind.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestLoader_Load_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := fs.NewLoader(filepath.Join(t.TempDir(), "nope.json")).Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, threedocs.ENOTFOUND, threedocs.ErrorCode(err))
}

func TestLoader_Load_MalformedJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := fs.NewLoader(path).Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, threedocs.EINVALID, threedocs.ErrorCode(err))
}

func TestLoader_Load_InvalidCorpus(t *testing.T) {
	t.Parallel()

	corpus := testCorpus()
	corpus.Docs = append(corpus.Docs, corpus.Docs[0])

	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, fs.SaveCorpus(path, corpus))

	_, err := fs.NewLoader(path).Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, threedocs.ECONFLICT, threedocs.ErrorCode(err))
}

func TestLoader_Load_CanceledContext(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, fs.SaveCorpus(path, testCorpus()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fs.NewLoader(path).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
