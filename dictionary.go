package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Remote dictionary limits.
const (
	maxDictionarySize = 32 * 1024 * 1024
	maxFetchAttempts  = 3
)

var errDictionaryTooLarge = errors.New("dictionary too large")

// httpStatusError is a non-2xx response from a remote dictionary.
type httpStatusError struct {
	StatusCode int
	Status     string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("http %s", e.Status)
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// resolveDictionaryPath makes a relative path relative to base, normally the
// directory holding the executable.
func resolveDictionaryPath(path, base string) string {
	if path == "" || isRemote(path) || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// executableDir returns the directory of the running binary, falling back to
// the working directory.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// openCatalog loads the dictionary at path, either a local file or an
// http(s) URL. Any failure to read it is a *dictionaryError.
func openCatalog(ctx context.Context, path string, r rules, cfg appConfig, log *logger) (*catalog, error) {
	if path == "" {
		return nil, &dictionaryError{Path: path, Err: errors.New("no dictionary configured")}
	}

	var src io.Reader
	if isRemote(path) {
		b, err := fetchDictionary(ctx, path, cfg, log)
		if err != nil {
			return nil, &dictionaryError{Path: path, Err: err}
		}
		src = bytes.NewReader(b)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, &dictionaryError{Path: path, Err: err}
		}
		defer func() { _ = f.Close() }()
		src = f
	}

	c, err := loadCatalog(src, r)
	if err != nil {
		return nil, &dictionaryError{Path: path, Err: err}
	}
	log.debugf("dictionary loaded: path=%s words=%d skipped=%d", path, c.len(), c.rejected)
	return c, nil
}

// fetchDictionary downloads a word list, backing off on 429 responses.
func fetchDictionary(ctx context.Context, url string, cfg appConfig, log *logger) ([]byte, error) {
	client := &http.Client{Timeout: cfg.httpTimeout()}
	backoff := time.Second
	for attempt := 1; ; attempt++ {
		b, err := fetchOnce(ctx, client, url, cfg.UserAgent, maxDictionarySize)
		if err == nil {
			return b, nil
		}
		var se *httpStatusError
		if !errors.As(err, &se) || se.StatusCode != http.StatusTooManyRequests || attempt >= maxFetchAttempts {
			return nil, err
		}
		log.warnf("rate limited (429), waiting %s...", backoff)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

// fetchOnce GETs url, refusing bodies longer than limit bytes.
func fetchOnce(ctx context.Context, client *http.Client, url, userAgent string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &httpStatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if int64(len(b)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", errDictionaryTooLarge, limit)
	}
	return b, nil
}
