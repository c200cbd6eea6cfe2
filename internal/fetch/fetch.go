// Package fetch retrieves the OSIS source document and caches it
// locally. Retrieval is deliberately simple: the conversion core is a
// pure function of its input, so transient-fault handling belongs here
// and nowhere downstream.
package fetch

import (
	"archive/zip"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	coreerrors "github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/core/errors"
)

// Fetch downloads rawURL into cacheDir and returns the cached file path.
// The cache key is the BLAKE3 hash of the URL; a later call with the
// same URL is a cache hit (the second return value) and performs no
// network access.
func Fetch(ctx context.Context, rawURL, cacheDir string) (string, bool, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false, coreerrors.NewFetch(rawURL, err)
	}

	sum := blake3.Sum256([]byte(rawURL))
	key := hex.EncodeToString(sum[:])
	path := filepath.Join(cacheDir, key[:2], key+filepath.Ext(u.Path))

	if _, err := os.Stat(path); err == nil {
		return path, true, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", false, coreerrors.NewFetch(rawURL, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", false, coreerrors.NewFetch(rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false, coreerrors.NewFetch(rawURL, fmt.Errorf("unexpected status %s", resp.Status))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", false, coreerrors.NewFetch(rawURL, err)
	}

	// Write through a temp file so a failed download never poisons the
	// cache.
	tmp, err := os.CreateTemp(filepath.Dir(path), "fetch-*")
	if err != nil {
		return "", false, coreerrors.NewFetch(rawURL, err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", false, coreerrors.NewFetch(rawURL, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", false, coreerrors.NewFetch(rawURL, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", false, coreerrors.NewFetch(rawURL, err)
	}

	return path, false, nil
}

// Open opens a cached or local source document, transparently
// decompressing .xz, .gz, and .zip containers by extension.
func Open(path string) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		return openXZ(path)
	case ".gz":
		return openGzip(path)
	case ".zip":
		return openZip(path)
	default:
		return os.Open(path)
	}
}

// multiCloser closes every closer after the primary reader is done.
type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var first error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func openXZ(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := xz.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening xz stream: %w", err)
	}
	return &multiCloser{Reader: r, closers: []io.Closer{f}}, nil
}

func openGzip(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening gzip stream: %w", err)
	}
	return &multiCloser{Reader: r, closers: []io.Closer{r, f}}, nil
}

// openZip returns the first XML entry in the archive; SWORD and
// CrossWire distributions ship the OSIS document zipped this way.
func openZip(path string) (io.ReadCloser, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	for _, entry := range zr.File {
		if strings.HasSuffix(strings.ToLower(entry.Name), ".xml") {
			rc, err := entry.Open()
			if err != nil {
				zr.Close()
				return nil, err
			}
			return &multiCloser{Reader: rc, closers: []io.Closer{rc, zr}}, nil
		}
	}
	zr.Close()
	return nil, coreerrors.NewNotFound("XML entry in archive", path)
}
