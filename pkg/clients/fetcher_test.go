package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/ports"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	const briefBody = "# Launch brief\n\nShip it."
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/brief.md":
			w.Header().Set("Content-Type", "text/markdown")
			w.Write([]byte(briefBody))
		case "/hero.png":
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte("png-bytes"))
		case "/archive.zip":
			w.Header().Set("Content-Type", "application/zip")
			w.Write([]byte("zip-bytes"))
		case "/unlabeled.png":
			// No usable content type; the extension decides.
			w.Header().Set("Content-Type", "application/octet-stream")
			w.Write([]byte("png-bytes"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher()
	ctx := context.Background()

	t.Run("markdown brief", func(t *testing.T) {
		dir := t.TempDir()
		media, err := fetcher.Fetch(ctx, server.URL+"/brief.md", dir, nil)
		require.NoError(t, err)

		assert.Equal(t, models.MediaMarkdown, media.MediaType)
		assert.Equal(t, "text/markdown", media.MimeType)
		assert.Equal(t, int64(len(briefBody)), media.FileSize)
		assert.Empty(t, media.RemoteURL)
		require.FileExists(t, media.LocalPath)
	})

	t.Run("refetch overwrites in place", func(t *testing.T) {
		dir := t.TempDir()
		first, err := fetcher.Fetch(ctx, server.URL+"/hero.png", dir, nil)
		require.NoError(t, err)
		second, err := fetcher.Fetch(ctx, server.URL+"/hero.png", dir, nil)
		require.NoError(t, err)
		assert.Equal(t, first.LocalPath, second.LocalPath)
	})

	t.Run("content type falls back to extension", func(t *testing.T) {
		dir := t.TempDir()
		media, err := fetcher.Fetch(ctx, server.URL+"/unlabeled.png", dir, nil)
		require.NoError(t, err)
		assert.Equal(t, models.MediaImage, media.MediaType)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		_, err := fetcher.Fetch(ctx, server.URL+"/archive.zip", t.TempDir(), nil)
		require.Error(t, err)
		assert.Equal(t, ports.Unsupported, ports.KindOf(err))
	})

	t.Run("missing asset is permanent", func(t *testing.T) {
		_, err := fetcher.Fetch(ctx, server.URL+"/gone.md", t.TempDir(), nil)
		require.Error(t, err)
		assert.Equal(t, ports.Permanent, ports.KindOf(err))
	})
}

func TestClassifyMedia(t *testing.T) {
	tests := []struct {
		mime string
		want models.MediaType
		ok   bool
	}{
		{"image/png", models.MediaImage, true},
		{"image/jpeg", models.MediaImage, true},
		{"video/mp4", models.MediaVideo, true},
		{"text/markdown", models.MediaMarkdown, true},
		{"text/plain", models.MediaMarkdown, true},
		{"application/pdf", "", false},
		{"audio/mpeg", "", false},
	}

	for _, tt := range tests {
		got, err := classifyMedia(tt.mime)
		if tt.ok {
			require.NoError(t, err, tt.mime)
			assert.Equal(t, tt.want, got, tt.mime)
		} else {
			assert.Error(t, err, tt.mime)
		}
	}
}

func TestLocalName(t *testing.T) {
	a := localName("https://cdn.example.com/brief.md", "text/markdown")
	b := localName("https://cdn.example.com/brief.md", "text/markdown")
	assert.Equal(t, a, b)
	assert.True(t, len(a) > 8)
	assert.Contains(t, a, ".md")

	// Different URLs get different names even with the same filename.
	c := localName("https://other.example.com/brief.md", "text/markdown")
	assert.NotEqual(t, a, c)
}
