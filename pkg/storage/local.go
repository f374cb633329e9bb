// Package storage provides artifact uploader implementations behind the
// Uploader port. Only the local-filesystem backend ships with the core;
// object-store backends implement the same interface.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/ports"
)

// LocalUploader copies artifacts into a directory served as static files.
type LocalUploader struct {
	root    string
	baseURL string
}

// NewLocalUploader creates a LocalUploader from storage configuration.
func NewLocalUploader(cfg *config.StorageConfig) *LocalUploader {
	return &LocalUploader{
		root:    cfg.LocalRoot,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

// Upload copies localPath to <root>/<key> and returns its public URL.
// Re-uploading the same key overwrites in place, so retries are safe.
func (u *LocalUploader) Upload(ctx context.Context, localPath string, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key = filepath.ToSlash(filepath.Clean(key))
	if key == "." || strings.HasPrefix(key, "..") {
		return "", ports.NewError(ports.Permanent, "upload", fmt.Errorf("invalid storage key %q", key))
	}

	dst := filepath.Join(u.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", ports.NewError(ports.Transient, "upload", err)
	}

	src, err := os.Open(localPath)
	if err != nil {
		return "", ports.NewError(ports.Permanent, "upload", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", ports.NewError(ports.Transient, "upload", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", ports.NewError(ports.Transient, "upload", err)
	}

	return u.baseURL + "/" + key, nil
}
