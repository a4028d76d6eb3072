package extractor

import (
	"regexp"
	"strings"
)

var (
	styleBlockRe     = regexp.MustCompile(`(?is)<style[^>]*>(.*?)</style>`)
	tailwindConfigRe = regexp.MustCompile(`(?s)tailwind\.config\s*=\s*(\{.*?\})\s*;?\s*</script>`)
)

// HarvestInlineStyles returns the bodies of every <style> element in html, in document
// order, joined by newlines. Tag matching is case-insensitive. It returns "" when the
// document has no style elements.
func HarvestInlineStyles(html string) string {
	matches := styleBlockRe.FindAllStringSubmatch(html, -1)
	if len(matches) == 0 {
		return ""
	}

	bodies := make([]string, 0, len(matches))
	for _, m := range matches {
		bodies = append(bodies, m[1])
	}

	return strings.Join(bodies, "\n")
}

// HarvestTailwindConfig returns the object literal assigned to tailwind.config inside
// a <script> element, braces included. Only the first assignment is used.
//
// The capture is non-greedy and does not balance braces: it ends at the first "}" that
// is followed by an optional ";" and "</script>". Nested objects are therefore only
// captured as far as that point.
func HarvestTailwindConfig(html string) string {
	m := tailwindConfigRe.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	return m[1]
}
