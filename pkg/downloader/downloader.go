package downloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/kataras/stitch-extractor/pkg/stitch"
)

const maxParallelDownloads = 5

// Source downloads the body behind a Stitch file URL. *stitch.Client implements it.
type Source interface {
	Download(ctx context.Context, downloadURL string) ([]byte, error)
}

// ScreenCode holds the generated code of a screen. A field is empty when the screen
// has no such file or its download failed; failures are listed in Errors.
type ScreenCode struct {
	HTML   string
	CSS    string
	Errors []error
}

// ExportedAsset represents a single file written by ExportAssets.
type ExportedAsset struct {
	Kind     string // "html", "css" or "screenshot"
	FileName string
	Bytes    int
}

// ExportResult holds the results of an asset export.
type ExportResult struct {
	Assets []ExportedAsset
	Errors []error // non-fatal per-file download failures
}

// Fetcher downloads screen files, keeping recently downloaded bodies in an LRU cache.
type Fetcher struct {
	source Source
	cache  *lru.Cache[string, []byte] // nil when caching is disabled
}

// New returns a Fetcher over source. cacheSize is the number of bodies kept in memory;
// zero or less disables the cache.
func New(source Source, cacheSize int) *Fetcher {
	f := &Fetcher{source: source}
	if cacheSize > 0 {
		// lru.New only fails for a non-positive size.
		f.cache, _ = lru.New[string, []byte](cacheSize)
	}
	return f
}

// FetchScreenCode downloads the HTML and CSS of screen concurrently. It never fails:
// a missing file or a failed download leaves the corresponding field empty.
func (f *Fetcher) FetchScreenCode(ctx context.Context, screen *stitch.Screen) ScreenCode {
	var (
		code ScreenCode
		mu   sync.Mutex
	)

	g, gctx := errgroup.WithContext(ctx)

	fetch := func(file *stitch.File, kind string, dst *string) {
		if file == nil || file.DownloadURL == "" {
			return
		}
		g.Go(func() error {
			body, err := f.get(gctx, file.DownloadURL)
			if err != nil {
				mu.Lock()
				code.Errors = append(code.Errors, fmt.Errorf("download %s: %w", kind, err))
				mu.Unlock()
				// Not returned: the other download must not be cancelled.
				return nil
			}
			*dst = string(body)
			return nil
		})
	}

	fetch(screen.HTMLCode, "html", &code.HTML)
	fetch(screen.CSSCode, "css", &code.CSS)

	_ = g.Wait()
	return code
}

// ExportAssets writes the HTML, CSS and screenshot of screen into dir, downloading them
// concurrently. File names derive from the screen title; failed downloads are reported
// in ExportResult.Errors and do not abort the export.
func (f *Fetcher) ExportAssets(ctx context.Context, screen *stitch.Screen, dir string) (*ExportResult, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}

	type job struct {
		kind string
		file *stitch.File
		ext  string
	}

	jobs := []job{
		{kind: "html", file: screen.HTMLCode, ext: "html"},
		{kind: "css", file: screen.CSSCode, ext: "css"},
		{kind: "screenshot", file: screen.Screenshot, ext: screenshotExt(screen.Screenshot)},
	}

	result := &ExportResult{}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelDownloads)

	for _, j := range jobs {
		if j.file == nil || j.file.DownloadURL == "" {
			continue
		}

		fileName := buildFileName(screen.Title, screen.ID(), j.kind, j.ext)

		g.Go(func() error {
			body, err := f.get(gctx, j.file.DownloadURL)
			if err == nil {
				err = os.WriteFile(filepath.Join(dir, fileName), body, 0644)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("failed to export %s: %w", j.kind, err))
				return nil
			}
			result.Assets = append(result.Assets, ExportedAsset{
				Kind:     j.kind,
				FileName: fileName,
				Bytes:    len(body),
			})
			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	if f.cache != nil {
		if body, ok := f.cache.Get(url); ok {
			return body, nil
		}
	}

	body, err := f.source.Download(ctx, url)
	if err != nil {
		return nil, err
	}

	if f.cache != nil {
		f.cache.Add(url, body)
	}
	return body, nil
}

func screenshotExt(file *stitch.File) string {
	if file == nil {
		return "png"
	}
	switch file.MimeType {
	case "image/jpeg":
		return "jpg"
	case "image/webp":
		return "webp"
	default:
		return "png"
	}
}

// buildFileName creates a sanitized file name from a screen title, e.g. "login-screen.html"
// or "login-screen-screenshot.png". It falls back to the screen id, then to "screen".
func buildFileName(title, screenID, kind, ext string) string {
	name := toKebabCase(title)
	if name == "" {
		name = toKebabCase(screenID)
	}
	if name == "" {
		name = "screen"
	}

	if kind == "screenshot" {
		name += "-screenshot"
	}

	return fmt.Sprintf("%s.%s", name, ext)
}

// toKebabCase converts a string to kebab-case format (lowercase with hyphens).
func toKebabCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}

	return result.String()
}
