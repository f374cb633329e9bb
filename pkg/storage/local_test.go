package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/ports"
)

func TestLocalUploader_Upload(t *testing.T) {
	root := t.TempDir()
	uploader := NewLocalUploader(&config.StorageConfig{
		Backend:       "local",
		LocalRoot:     root,
		PublicBaseURL: "http://localhost:8080/static/",
	})
	ctx := context.Background()

	writeArtifact := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "artifact.md")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("copies under the root and returns the public url", func(t *testing.T) {
		src := writeArtifact(t, "hello")

		url, err := uploader.Upload(ctx, src, "task-1/artifact.md")
		require.NoError(t, err)
		// Trailing slash on the base URL is normalized away.
		assert.Equal(t, "http://localhost:8080/static/task-1/artifact.md", url)

		data, err := os.ReadFile(filepath.Join(root, "task-1", "artifact.md"))
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("reupload overwrites in place", func(t *testing.T) {
		first := writeArtifact(t, "v1")
		_, err := uploader.Upload(ctx, first, "task-2/artifact.md")
		require.NoError(t, err)

		second := writeArtifact(t, "v2")
		url, err := uploader.Upload(ctx, second, "task-2/artifact.md")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/static/task-2/artifact.md", url)

		data, err := os.ReadFile(filepath.Join(root, "task-2", "artifact.md"))
		require.NoError(t, err)
		assert.Equal(t, "v2", string(data))
	})

	t.Run("rejects keys escaping the root", func(t *testing.T) {
		src := writeArtifact(t, "nope")

		for _, key := range []string{"../outside.md", "a/../../outside.md", "."} {
			_, err := uploader.Upload(ctx, src, key)
			require.Error(t, err, "key %q", key)
			assert.Equal(t, ports.Permanent, ports.KindOf(err), "key %q", key)
		}
	})

	t.Run("missing source file", func(t *testing.T) {
		_, err := uploader.Upload(ctx, filepath.Join(t.TempDir(), "absent.md"), "task-3/a.md")
		require.Error(t, err)
		assert.Equal(t, ports.Permanent, ports.KindOf(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := uploader.Upload(cancelled, writeArtifact(t, "x"), "task-4/a.md")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
