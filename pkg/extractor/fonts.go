package extractor

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	fontFamilyRe = regexp.MustCompile(`(?i)font-family:\s*([^;]+)`)
	fontWeightRe = regexp.MustCompile(`(?i)font-weight:\s*([^;]+)`)
	fontSizeRe   = regexp.MustCompile(`(?i)font-size:\s*([^;]+)`)

	tailwindFontBlockRe = regexp.MustCompile(`(?s)fontFamily\s*:\s*\{(.*?)\}`)
	// First quoted family of each entry, e.g. display: ['Inter', 'sans-serif'].
	tailwindFontRe = regexp.MustCompile(`\[\s*['"]([^'"]+)['"]\s*[,\]]`)

	googleFontsRe = regexp.MustCompile(`fonts\.googleapis\.com/css2\?family=([^"'&\s>]+)`)
)

// ExtractCSSFonts collects the distinct font-family declarations of css, with quotes
// stripped, in order of first appearance.
//
// Every family is paired with the first font-weight and the first font-size declared
// anywhere in css, falling back to 400 and 16px. Declarations are not matched to the
// rule they appear in.
func ExtractCSSFonts(css string) []Font {
	fonts := []Font{}

	weight := firstDeclaration(fontWeightRe, css, defaultFontWeight)
	size := firstDeclaration(fontSizeRe, css, defaultFontSize)

	seen := make(map[string]bool)
	for _, m := range fontFamilyRe.FindAllStringSubmatch(css, -1) {
		family := stripQuotes(strings.TrimSpace(m[1]))
		if family == "" {
			continue
		}

		key := strings.ToLower(family)
		if seen[key] {
			continue
		}
		seen[key] = true

		fonts = append(fonts, Font{
			Family: family,
			Weight: weight,
			Size:   size,
			Usage:  "Extracted from CSS",
		})
	}

	return fonts
}

// ExtractTailwindFonts returns the first family of every entry in the fontFamily blocks
// of a Tailwind config. Families already present in seen (lowercased) are skipped and
// new ones are added to it.
func ExtractTailwindFonts(config string, seen map[string]bool) []Font {
	fonts := []Font{}

	for _, block := range tailwindFontBlockRe.FindAllStringSubmatch(config, -1) {
		for _, m := range tailwindFontRe.FindAllStringSubmatch(block[1], -1) {
			fonts = appendFont(fonts, seen, strings.TrimSpace(m[1]), "Tailwind theme")
		}
	}

	return fonts
}

// ExtractGoogleFonts returns the families requested by Google Fonts css2 links in html.
// The weight specifier after ":" is dropped and the name is URL-decoded with "+" read
// as a space. Families already present in seen (lowercased) are skipped.
func ExtractGoogleFonts(html string, seen map[string]bool) []Font {
	fonts := []Font{}

	for _, m := range googleFontsRe.FindAllStringSubmatch(html, -1) {
		family, _, _ := strings.Cut(m[1], ":")
		if decoded, err := url.PathUnescape(family); err == nil {
			family = decoded
		}
		family = strings.TrimSpace(strings.ReplaceAll(family, "+", " "))

		fonts = appendFont(fonts, seen, family, "Google Fonts")
	}

	return fonts
}

func appendFont(fonts []Font, seen map[string]bool, family, usage string) []Font {
	if family == "" {
		return fonts
	}

	key := strings.ToLower(family)
	if seen[key] {
		return fonts
	}
	seen[key] = true

	return append(fonts, Font{
		Family: family,
		Weight: defaultFontWeight,
		Size:   defaultFontSize,
		Usage:  usage,
	})
}

func firstDeclaration(re *regexp.Regexp, css, fallback string) string {
	m := re.FindStringSubmatch(css)
	if m == nil {
		return fallback
	}
	if v := strings.TrimSpace(m[1]); v != "" {
		return v
	}
	return fallback
}

func stripQuotes(s string) string {
	return strings.NewReplacer(`"`, "", `'`, "").Replace(s)
}
