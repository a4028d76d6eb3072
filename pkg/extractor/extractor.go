package extractor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kataras/stitch-extractor/pkg/stitch"
)

// DesignContext represents the design system recovered from a generated Stitch screen.
// It is the JSON payload handed to rendering layers, so field names and nesting are fixed.
type DesignContext struct {
	Colors  []Color   `json:"colors"`
	Fonts   []Font    `json:"fonts"`
	Spacing []Spacing `json:"spacing"`
	Layouts []Layout  `json:"layouts"`
}

// Color is a single color token. Hex holds the value exactly as found in the source,
// either a hex literal or a raw rgb()/rgba()/hsl()/hsla() function string.
type Color struct {
	Name  string `json:"name"`
	Hex   string `json:"hex"`
	Usage string `json:"usage"`
}

// Font describes a font family with the weight and size it is used at.
type Font struct {
	Family string `json:"family"`
	Weight string `json:"weight"`
	Size   string `json:"size"`
	Usage  string `json:"usage"`
}

// Spacing is a margin, padding or gap declaration value.
type Spacing struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Layout is a detected layout pattern (Flexbox, Grid, Absolute) or the theme color mode.
type Layout struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

const (
	defaultFontWeight = "400"
	defaultFontSize   = "16px"
)

// NewDesignContext returns an empty DesignContext whose sequences encode as [] rather than null.
func NewDesignContext() *DesignContext {
	return &DesignContext{
		Colors:  []Color{},
		Fonts:   []Font{},
		Spacing: []Spacing{},
		Layouts: []Layout{},
	}
}

// Extract runs the full token pipeline over the downloaded CSS and HTML of a screen.
//
// The CSS file and the inline <style> blocks of the HTML are combined and scanned for
// colors, fonts and spacing. When HTML is present, the embedded Tailwind config and
// Google Fonts links contribute more colors and fonts, and layout patterns are detected.
// Finally, if theme is non-nil, its fields are merged in as fallbacks.
//
// Extract never fails: input that matches nothing produces empty sequences.
func Extract(css, html string, theme *stitch.Theme) *DesignContext {
	dc := NewDesignContext()

	combined := joinNonEmpty(css, HarvestInlineStyles(html))

	dc.Colors = append(dc.Colors, ExtractCSSColors(combined)...)
	dc.Fonts = append(dc.Fonts, ExtractCSSFonts(combined)...)
	dc.Spacing = append(dc.Spacing, ExtractSpacing(combined)...)

	if html != "" {
		config := HarvestTailwindConfig(html)

		// Tailwind config fonts and Google Fonts share a dedup set; Tailwind wins.
		seen := make(map[string]bool)
		if config != "" {
			dc.Colors = append(dc.Colors, ExtractTailwindColors(config)...)
			dc.Fonts = append(dc.Fonts, ExtractTailwindFonts(config, seen)...)
		}
		dc.Fonts = append(dc.Fonts, ExtractGoogleFonts(html, seen)...)

		dc.Layouts = append(dc.Layouts, DetectLayouts(html)...)
	}

	if theme != nil {
		ApplyTheme(dc, theme)
	}

	return dc
}

// ApplyTheme merges the structured theme returned by the Stitch API into dc.
// Fields are applied in a fixed order (custom color, font, color mode) and each
// derived entry is prepended to its sequence. Existing entries are never overwritten.
func ApplyTheme(dc *DesignContext, theme *stitch.Theme) {
	if dc == nil || theme == nil {
		return
	}

	if theme.CustomColor != "" && !hasColor(dc.Colors, theme.CustomColor) {
		dc.Colors = append([]Color{{
			Name:  "primary",
			Hex:   theme.CustomColor,
			Usage: "Theme primary color",
		}}, dc.Colors...)
	}

	if theme.Font != "" {
		family := ThemeFontFamily(theme.Font)
		if family != "" && !hasFontContaining(dc.Fonts, family) {
			dc.Fonts = append([]Font{{
				Family: family,
				Weight: defaultFontWeight,
				Size:   defaultFontSize,
				Usage:  "Theme font",
			}}, dc.Fonts...)
		}
	}

	// The color mode entry is not checked against existing layouts.
	if theme.ColorMode != "" {
		dc.Layouts = append([]Layout{{
			Type:        theme.ColorMode,
			Description: theme.ColorMode + " color mode",
		}}, dc.Layouts...)
	}
}

// ThemeFontFamily converts a Stitch font enum such as "SPACE_GROTESK" into a
// family name such as "Space Grotesk".
func ThemeFontFamily(font string) string {
	words := strings.Fields(strings.ReplaceAll(font, "_", " "))
	for i, w := range words {
		w = strings.ToLower(w)
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func hasColor(colors []Color, hex string) bool {
	for _, c := range colors {
		if strings.EqualFold(c.Hex, hex) {
			return true
		}
	}
	return false
}

func hasFontContaining(fonts []Font, family string) bool {
	needle := strings.ToLower(family)
	for _, f := range fonts {
		if strings.Contains(strings.ToLower(f.Family), needle) {
			return true
		}
	}
	return false
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}
