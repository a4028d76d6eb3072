package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/kataras/stitch-extractor/pkg/extractor"
)

func sampleContext() *extractor.DesignContext {
	return &extractor.DesignContext{
		Colors: []extractor.Color{
			{Name: "primary", Hex: "#135bec", Usage: "Theme primary color"},
			{Name: "color-1", Hex: "#fff", Usage: "Extracted from CSS"},
			{Name: "primary", Hex: "#000", Usage: "Tailwind theme"},
		},
		Fonts: []extractor.Font{
			{Family: "Inter, sans-serif", Weight: "400", Size: "16px", Usage: "Extracted from CSS"},
			{Family: "Space Grotesk", Weight: "400", Size: "16px", Usage: "Theme font"},
			{Family: "Inter", Weight: "400", Size: "16px", Usage: "Tailwind theme"},
		},
		Spacing: []extractor.Spacing{
			{Name: "padding", Value: "8px"},
			{Name: "margin", Value: "0"},
			{Name: "padding", Value: "16px"},
		},
		Layouts: []extractor.Layout{
			{Type: "DARK", Description: "DARK color mode"},
			{Type: "Flexbox", Description: "Flexible box layout for one-dimensional alignment"},
		},
	}
}

func TestToCSSVariables(t *testing.T) {
	tests := []struct {
		name string
		dc   *extractor.DesignContext
		want string
	}{
		{
			name: "empty",
			dc:   extractor.NewDesignContext(),
			want: "",
		},
		{
			name: "layouts only",
			dc: &extractor.DesignContext{
				Layouts: []extractor.Layout{{Type: "Grid"}},
			},
			want: "",
		},
		{
			name: "all token kinds",
			dc:   sampleContext(),
			want: `:root {
  /* Colors */
  --color-primary: #135bec;
  --color-color-1: #fff;
  --color-primary-2: #000;
  /* Fonts */
  --font-primary: Inter, sans-serif;
  --font-space-grotesk: 'Space Grotesk';
  --font-inter: Inter;
  /* Spacing */
  --space-padding-1: 8px;
  --space-margin-1: 0;
  --space-padding-2: 16px;
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToCSSVariables(tt.dc); got != tt.want {
				t.Errorf("ToCSSVariables() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestToMarkdown(t *testing.T) {
	md := ToMarkdown(sampleContext(), "Login")

	wantContains := []string{
		"# Stitch Design Context - Login\n",
		"### Color Palette",
		"| primary | `#135bec` | Theme primary color |",
		"### Typography",
		"| Space Grotesk | 400 | 16px | Theme font |",
		"### Spacing",
		"- **margin**: `0`",
		"```css\n:root {\n",
		"## Layout Patterns",
		"- **DARK**: DARK color mode",
	}
	for _, want := range wantContains {
		if !strings.Contains(md, want) {
			t.Errorf("ToMarkdown() missing %q", want)
		}
	}
}

func TestToMarkdownEmpty(t *testing.T) {
	md := ToMarkdown(extractor.NewDesignContext(), "Empty")

	for _, section := range []string{"### Color Palette", "### Typography", "### Spacing", "### CSS Variables", "## Layout Patterns"} {
		if strings.Contains(md, section) {
			t.Errorf("ToMarkdown() of an empty context contains %q", section)
		}
	}
}

func TestToJSON(t *testing.T) {
	got, err := ToJSON(extractor.NewDesignContext())
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded map[string][]any
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("ToJSON() produced invalid JSON: %v", err)
	}
	for _, key := range []string{"colors", "fonts", "spacing", "layouts"} {
		v, ok := decoded[key]
		if !ok || v == nil {
			t.Errorf("ToJSON() %s = %v, want []", key, v)
		}
	}
}

func TestQuoteFamily(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Inter", "Inter"},
		{"Space Grotesk", "'Space Grotesk'"},
		{"Noto Sans, sans-serif", "'Noto Sans', sans-serif"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := quoteFamily(tt.input); got != tt.want {
				t.Errorf("quoteFamily(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
