package extractor

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Hex literals of 3 to 8 digits, or non-nested rgb/rgba/hsl/hsla calls.
	cssColorRe = regexp.MustCompile(`#[0-9a-fA-F]{3,8}\b|rgba?\([^)]+\)|hsla?\([^)]+\)`)

	// key: '#hex' entries inside a Tailwind colors object, including DEFAULT keys.
	tailwindColorRe = regexp.MustCompile(`['"]?([\w-]+)['"]?\s*:\s*['"](#[0-9a-fA-F]{3,8})['"]`)
)

// ExtractCSSColors scans plain CSS for color values and names them color-1, color-2, ...
// in order of first appearance. Duplicates are detected on the exact matched string,
// so "#FFF" and "#fff" are two different colors here.
func ExtractCSSColors(css string) []Color {
	colors := []Color{}
	seen := make(map[string]bool)

	for _, value := range cssColorRe.FindAllString(css, -1) {
		if seen[value] {
			continue
		}
		seen[value] = true

		colors = append(colors, Color{
			Name:  fmt.Sprintf("color-%d", len(colors)+1),
			Hex:   value,
			Usage: "Extracted from CSS",
		})
	}

	return colors
}

// ExtractTailwindColors scans a Tailwind config for key: '#hex' pairs. The key becomes
// the color name. Colors are deduplicated by lowercased hex and the first key wins.
func ExtractTailwindColors(config string) []Color {
	colors := []Color{}
	seen := make(map[string]bool)

	for _, m := range tailwindColorRe.FindAllStringSubmatch(config, -1) {
		name, hex := m[1], m[2]

		key := strings.ToLower(hex)
		if seen[key] {
			continue
		}
		seen[key] = true

		colors = append(colors, Color{
			Name:  name,
			Hex:   hex,
			Usage: "Tailwind theme",
		})
	}

	return colors
}
