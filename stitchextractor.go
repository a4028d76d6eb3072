package stitchextractor

import (
	"context"
	"fmt"

	"github.com/kataras/stitch-extractor/pkg/config"
	"github.com/kataras/stitch-extractor/pkg/downloader"
	"github.com/kataras/stitch-extractor/pkg/extractor"
	"github.com/kataras/stitch-extractor/pkg/formatter"
	"github.com/kataras/stitch-extractor/pkg/stitch"
)

// Options configures the extraction.
type Options struct {
	Config       config.Config
	ProjectID    string // bare id or "projects/{id}"
	ScreenID     string // bare id or "projects/{p}/screens/{s}"
	ExportAssets bool
	AssetDir     string // defaults to Config.OutputDir
	Logger       Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the extraction output.
type Result struct {
	Screen   *stitch.Screen
	Context  *extractor.DesignContext
	Markdown string                     // formatted markdown output
	Assets   []downloader.ExportedAsset // empty unless Options.ExportAssets
}

// ScreenGetter fetches screen metadata. *stitch.Client implements it.
type ScreenGetter interface {
	GetScreen(ctx context.Context, projectID, screenID string) (*stitch.Screen, error)
}

func logInfo(l Logger, f string, a ...any) {
	if l != nil {
		l.Infof(f, a...)
	}
}

func logWarn(l Logger, f string, a ...any) {
	if l != nil {
		l.Warnf(f, a...)
	}
}

func logError(l Logger, f string, a ...any) {
	if l != nil {
		l.Errorf(f, a...)
	}
}

// Run executes the Stitch extraction pipeline and returns the result.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.AssetDir == "" {
		opts.AssetDir = opts.Config.OutputDir
	}
	if opts.AssetDir == "" {
		opts.AssetDir = "stitch-assets"
	}

	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logInfo(opts.Logger, "Authenticating with Stitch API...")
	client := stitch.NewClient(opts.Config)
	fetcher := downloader.New(client, opts.Config.CacheSize)

	screen, dc, err := ExtractDesignContext(ctx, client, fetcher, opts.ProjectID, opts.ScreenID, opts.Logger)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Screen:  screen,
		Context: dc,
	}

	if opts.ExportAssets {
		logInfo(opts.Logger, "Exporting screen assets to %s...", opts.AssetDir)
		exported, err := fetcher.ExportAssets(ctx, screen, opts.AssetDir)
		if err != nil {
			return nil, fmt.Errorf("export assets: %w", err)
		}
		for _, dlErr := range exported.Errors {
			logWarn(opts.Logger, "%v", dlErr)
		}
		logInfo(opts.Logger, "Exported %d asset(s)", len(exported.Assets))
		result.Assets = exported.Assets
	}

	logInfo(opts.Logger, "Generating markdown documentation...")
	result.Markdown = formatter.ToMarkdown(dc, screenTitle(screen))

	return result, nil
}

// ExtractDesignContext fetches a screen, downloads its HTML and CSS concurrently and
// extracts its design context. Code download failures are logged and degrade to empty
// sources; only a failure to fetch the screen metadata is returned as an error.
func ExtractDesignContext(ctx context.Context, screens ScreenGetter, fetcher *downloader.Fetcher, projectID, screenID string, logger Logger) (*stitch.Screen, *extractor.DesignContext, error) {
	logInfo(logger, "Fetching screen metadata...")
	screen, err := screens.GetScreen(ctx, projectID, screenID)
	if err != nil {
		logError(logger, "Fetching screen failed: %v", err)
		return nil, nil, fmt.Errorf("fetch screen: %w", err)
	}
	logInfo(logger, "Screen: %s", screenTitle(screen))

	logInfo(logger, "Downloading screen code...")
	code := fetcher.FetchScreenCode(ctx, screen)
	for _, dlErr := range code.Errors {
		logWarn(logger, "%v", dlErr)
	}

	logInfo(logger, "Extracting design tokens...")
	dc := extractor.Extract(code.CSS, code.HTML, screen.Theme)

	return screen, dc, nil
}

func screenTitle(screen *stitch.Screen) string {
	if screen.Title != "" {
		return screen.Title
	}
	return screen.ID()
}
