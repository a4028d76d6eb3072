// Package stitchextractor extracts design systems from screens generated by
// Google Stitch and produces structured output (colors, typography, spacing,
// layout patterns and a full markdown report).
//
// The CLI lives in cmd/stitch-extractor; this root package exposes the same
// pipeline as a Go API so that callers can embed extraction in their own
// tools without shelling out. The MCP server in pkg/mcpserver exposes it to
// chat hosts as tools.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named stitchextractor:
//
//	import "github.com/kataras/stitch-extractor" // package stitchextractor
//
// # Quick start
//
//	cfg := config.DefaultConfig()
//	cfg.APIKey = os.Getenv("STITCH_API_KEY")
//
//	result, err := stitchextractor.Run(ctx, stitchextractor.Options{
//	    Config:    cfg,
//	    ProjectID: "4044680601076201931",
//	    ScreenID:  "98b50e2ddc9943efb387052637738f61",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("design.md", []byte(result.Markdown), 0644)
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # How tokens are recovered
//
// Stitch returns generated screens as HTML (usually Tailwind via CDN with an
// inline tailwind.config) plus an optional CSS file and a structured theme.
// Extraction is a set of deliberately simple pattern scans over that text,
// see pkg/extractor. Downloads that fail degrade to empty input rather than
// failing the whole extraction; the structured theme then acts as fallback.
package stitchextractor
