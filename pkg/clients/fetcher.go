package clients

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/ports"
)

const fetchTimeout = 10 * time.Minute

// maxFetchSize caps a single download at 2 GiB.
const maxFetchSize = 2 << 30

// HTTPFetcher implements ports.MediaFetcher by downloading source URLs
// into the task workspace over HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a media fetcher.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: fetchTimeout}}
}

// Fetch downloads url into workspaceDir and classifies the asset. The
// local filename is derived from the URL, so fetching the same URL twice
// overwrites in place rather than accumulating copies.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string, workspaceDir string, meta map[string]any) (*models.FetchedMedia, error) {
	const op = "fetch"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, ports.NewError(ports.Permanent, op, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, ports.NewError(ports.Transient, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyStatus(op, resp)
	}

	mimeType := contentType(resp, rawURL)
	mediaType, err := classifyMedia(mimeType)
	if err != nil {
		return nil, ports.NewError(ports.Unsupported, op, err)
	}

	if err := os.MkdirAll(workspaceDir, 0o755); err != nil {
		return nil, ports.NewError(ports.Transient, op, err)
	}

	localPath := filepath.Join(workspaceDir, localName(rawURL, mimeType))
	out, err := os.Create(localPath)
	if err != nil {
		return nil, ports.NewError(ports.Transient, op, err)
	}
	defer out.Close()

	size, err := io.Copy(out, io.LimitReader(resp.Body, maxFetchSize+1))
	if err != nil {
		os.Remove(localPath)
		return nil, ports.NewError(ports.Transient, op, err)
	}
	if size > maxFetchSize {
		os.Remove(localPath)
		return nil, ports.NewError(ports.Unsupported, op, fmt.Errorf("asset exceeds %d bytes", int64(maxFetchSize)))
	}

	return &models.FetchedMedia{
		OriginalURL: rawURL,
		LocalPath:   localPath,
		MediaType:   mediaType,
		FileSize:    size,
		MimeType:    mimeType,
	}, nil
}

func contentType(resp *http.Response, rawURL string) string {
	ct := resp.Header.Get("Content-Type")
	if mt, _, err := mime.ParseMediaType(ct); err == nil && mt != "" && mt != "application/octet-stream" {
		return mt
	}
	// Fall back to the URL extension when the server is unhelpful.
	if mt := mime.TypeByExtension(path.Ext(resp.Request.URL.Path)); mt != "" {
		if parsed, _, err := mime.ParseMediaType(mt); err == nil {
			return parsed
		}
	}
	return ct
}

func classifyMedia(mimeType string) (models.MediaType, error) {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return models.MediaImage, nil
	case strings.HasPrefix(mimeType, "video/"):
		return models.MediaVideo, nil
	case mimeType == "text/markdown", mimeType == "text/plain", mimeType == "text/x-markdown":
		return models.MediaMarkdown, nil
	}
	return "", fmt.Errorf("unsupported media type %q", mimeType)
}

// localName builds a stable filename from the URL hash plus its extension.
func localName(rawURL string, mimeType string) string {
	sum := sha256.Sum256([]byte(rawURL))
	name := hex.EncodeToString(sum[:8])

	ext := path.Ext(rawURL)
	if ext == "" || len(ext) > 8 {
		if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
			ext = exts[0]
		}
	}
	return name + ext
}
