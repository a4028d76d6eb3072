package stitchextractor

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/kataras/stitch-extractor/pkg/config"
	"github.com/kataras/stitch-extractor/pkg/downloader"
	"github.com/kataras/stitch-extractor/pkg/extractor"
	"github.com/kataras/stitch-extractor/pkg/stitch"
)

type fakeStitch struct {
	screen *stitch.Screen
	files  map[string]string
	err    error
}

func (f *fakeStitch) GetScreen(ctx context.Context, projectID, screenID string) (*stitch.Screen, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.screen, nil
}

func (f *fakeStitch) Download(ctx context.Context, url string) ([]byte, error) {
	body, ok := f.files[url]
	if !ok {
		return nil, fmt.Errorf("no file at %s", url)
	}
	return []byte(body), nil
}

type countingLogger struct {
	infos, warns, errs int
}

func (l *countingLogger) Infof(string, ...any)  { l.infos++ }
func (l *countingLogger) Warnf(string, ...any)  { l.warns++ }
func (l *countingLogger) Errorf(string, ...any) { l.errs++ }

func TestExtractDesignContext(t *testing.T) {
	fake := &fakeStitch{
		screen: &stitch.Screen{
			Name:     "projects/p1/screens/s1",
			Title:    "Checkout",
			HTMLCode: &stitch.File{DownloadURL: "https://files/s1.html"},
			CSSCode:  &stitch.File{DownloadURL: "https://files/s1.css"},
			Theme:    &stitch.Theme{ColorMode: "LIGHT"},
		},
		files: map[string]string{
			"https://files/s1.html": `<div class="absolute"></div>`,
			"https://files/s1.css":  `.a { gap: 4px; }`,
		},
	}
	logger := &countingLogger{}

	screen, dc, err := ExtractDesignContext(context.Background(), fake, downloader.New(fake, 0), "p1", "s1", logger)
	if err != nil {
		t.Fatalf("ExtractDesignContext() error = %v", err)
	}
	if screen.Title != "Checkout" {
		t.Errorf("ExtractDesignContext() screen title = %q, want Checkout", screen.Title)
	}

	want := &extractor.DesignContext{
		Colors:  []extractor.Color{},
		Fonts:   []extractor.Font{},
		Spacing: []extractor.Spacing{{Name: "gap", Value: "4px"}},
		Layouts: []extractor.Layout{
			{Type: "LIGHT", Description: "LIGHT color mode"},
			{Type: "Absolute", Description: "Absolute positioning of overlaid elements"},
		},
	}
	if !reflect.DeepEqual(dc, want) {
		t.Errorf("ExtractDesignContext() = %+v, want %+v", dc, want)
	}
	if logger.warns != 0 || logger.errs != 0 {
		t.Errorf("logger warns = %d, errs = %d, want 0", logger.warns, logger.errs)
	}
}

func TestExtractDesignContextDownloadFailure(t *testing.T) {
	fake := &fakeStitch{
		screen: &stitch.Screen{
			Name:     "projects/p1/screens/s1",
			HTMLCode: &stitch.File{DownloadURL: "https://files/s1.html"},
			Theme:    &stitch.Theme{CustomColor: "#135bec"},
		},
	}
	logger := &countingLogger{}

	_, dc, err := ExtractDesignContext(context.Background(), fake, downloader.New(fake, 0), "p1", "s1", logger)
	if err != nil {
		t.Fatalf("ExtractDesignContext() error = %v", err)
	}
	if len(dc.Colors) != 1 || dc.Colors[0].Hex != "#135bec" {
		t.Errorf("ExtractDesignContext() colors = %+v, want the theme color only", dc.Colors)
	}
	if logger.warns != 1 {
		t.Errorf("logger warns = %d, want 1", logger.warns)
	}
}

func TestExtractDesignContextScreenError(t *testing.T) {
	apiErr := &stitch.APIError{StatusCode: 403, Body: "permission denied"}
	fake := &fakeStitch{err: apiErr}

	_, _, err := ExtractDesignContext(context.Background(), fake, downloader.New(fake, 0), "p1", "s1", nil)

	var got *stitch.APIError
	if !errors.As(err, &got) || got.StatusCode != 403 {
		t.Errorf("ExtractDesignContext() error = %v, want the API error", err)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	_, err := Run(context.Background(), Options{
		Config:    config.DefaultConfig(),
		ProjectID: "p1",
		ScreenID:  "s1",
	})
	if !errors.Is(err, config.ErrMissingCredentials) {
		t.Errorf("Run() error = %v, want ErrMissingCredentials", err)
	}
}

func TestScreenTitle(t *testing.T) {
	tests := []struct {
		screen *stitch.Screen
		want   string
	}{
		{&stitch.Screen{Name: "projects/p/screens/abc", Title: "Home"}, "Home"},
		{&stitch.Screen{Name: "projects/p/screens/abc"}, "abc"},
	}

	for _, tt := range tests {
		if got := screenTitle(tt.screen); got != tt.want {
			t.Errorf("screenTitle() = %q, want %q", got, tt.want)
		}
	}
}
