package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"

	"github.com/ppiankov/pantrymap/internal/cache"
	"github.com/ppiankov/pantrymap/internal/util"
	"github.com/ppiankov/pantrymap/internal/worker"
)

// ErrDisallowed is returned when robots.txt forbids the download
var ErrDisallowed = errors.New("download disallowed by robots.txt")

const maxAttempts = 3

// fetchSleepFunc is swapped out in tests
var fetchSleepFunc = time.Sleep

// Fetcher downloads the bulk export to disk. It checks robots.txt, paces
// requests per host, and sends conditional requests so an unchanged export
// is not downloaded twice.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
	validators *cache.DiskCache
}

// NewFetcher creates a fetcher. robots, limiter and validators are optional.
func NewFetcher(client *http.Client, userAgent string, robots *util.RobotsChecker, limiter *worker.Limiter, validators *cache.DiskCache) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		httpClient: client,
		userAgent:  userAgent,
		robots:     robots,
		limiter:    limiter,
		validators: validators,
	}
}

// FetchMeta records the validators of a completed download
type FetchMeta struct {
	URL          string    `json:"url"`
	Path         string    `json:"path"`
	ETag         string    `json:"etag,omitempty"`
	LastModified string    `json:"last_modified,omitempty"`
	Bytes        int64     `json:"bytes"`
	FetchedAt    time.Time `json:"fetched_at"`
}

// FetchResult describes the outcome of Download
type FetchResult struct {
	Path        string
	Meta        FetchMeta
	NotModified bool
	Attempts    int
}

// statusError is a non-2xx response
type statusError struct {
	code   int
	status string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status: %d %s", e.code, e.status)
}

func retryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= 500
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Download streams rawURL to dest. Transient failures are retried with
// exponential backoff; a 304 against the cached validators leaves dest
// untouched.
func (f *Fetcher) Download(ctx context.Context, rawURL, dest string) (*FetchResult, error) {
	if f.robots != nil {
		perm, err := f.robots.Check(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !perm.Allowed {
			return nil, fmt.Errorf("%w: %s", ErrDisallowed, rawURL)
		}
		if f.limiter != nil {
			if err := f.limiter.ApplyCrawlDelay(rawURL, perm.CrawlDelay); err != nil {
				return nil, err
			}
		}
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			backoff := time.Duration(1<<(attempt-2)) * time.Second
			slog.Warn("download failed, retrying", "url", rawURL, "attempt", attempt, "backoff", backoff, "error", lastErr)
			fetchSleepFunc(backoff)
		}

		res, err := f.downloadOnce(ctx, rawURL, dest)
		if err == nil {
			res.Attempts = attempt
			return res, nil
		}
		lastErr = err
		if !retryable(err) {
			break
		}
	}
	return nil, lastErr
}

func (f *Fetcher) downloadOnce(ctx context.Context, rawURL, dest string) (*FetchResult, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, rawURL); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	prev, havePrev := f.cachedMeta(rawURL, dest)
	if havePrev {
		if prev.ETag != "" {
			req.Header.Set("If-None-Match", prev.ETag)
		}
		if prev.LastModified != "" {
			req.Header.Set("If-Modified-Since", prev.LastModified)
		}
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotModified && havePrev {
		return &FetchResult{Path: dest, Meta: prev, NotModified: true}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{code: resp.StatusCode, status: resp.Status}
	}

	n, err := writeAtomically(dest, resp.Body, resp.ContentLength)
	if err != nil {
		return nil, err
	}

	meta := FetchMeta{
		URL:          rawURL,
		Path:         dest,
		ETag:         resp.Header.Get("ETag"),
		LastModified: resp.Header.Get("Last-Modified"),
		Bytes:        n,
		FetchedAt:    time.Now().UTC(),
	}
	if f.validators != nil && (meta.ETag != "" || meta.LastModified != "") {
		if err := f.validators.SetJSON(cache.FetchKey(rawURL), meta, 0); err != nil {
			slog.Warn("could not cache download validators", "error", err)
		}
	}
	return &FetchResult{Path: dest, Meta: meta}, nil
}

// cachedMeta returns stored validators only while the file they describe
// is still on disk with the recorded size
func (f *Fetcher) cachedMeta(rawURL, dest string) (FetchMeta, bool) {
	if f.validators == nil {
		return FetchMeta{}, false
	}
	var meta FetchMeta
	if !f.validators.GetJSON(cache.FetchKey(rawURL), &meta) || meta.Path != dest {
		return FetchMeta{}, false
	}
	info, err := os.Stat(dest)
	if err != nil || info.Size() != meta.Bytes {
		return FetchMeta{}, false
	}
	return meta, true
}

// writeAtomically copies body into a temp file beside dest, then renames it
func writeAtomically(dest string, body io.Reader, expected int64) (int64, error) {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create download dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*.part")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}

	pw := &progressWriter{w: tmp, expected: expected, every: rate.Sometimes{Interval: 10 * time.Second}}
	n, err := io.Copy(pw, body)
	if err != nil {
		cleanup()
		return 0, fmt.Errorf("read body: %w", err)
	}
	if expected > 0 && n != expected {
		cleanup()
		return 0, fmt.Errorf("short body: got %d of %d bytes", n, expected)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return 0, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		_ = os.Remove(tmp.Name())
		return 0, fmt.Errorf("rename download: %w", err)
	}
	return n, nil
}

type progressWriter struct {
	w        io.Writer
	written  int64
	expected int64
	every    rate.Sometimes
}

func (p *progressWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	p.written += int64(n)
	p.every.Do(func() {
		if p.expected > 0 {
			slog.Info("downloading", "bytes", p.written, "total", p.expected,
				"percent", fmt.Sprintf("%.1f", float64(p.written)*100/float64(p.expected)))
			return
		}
		slog.Info("downloading", "bytes", p.written)
	})
	return n, err
}
