package extractor

import (
	"regexp"
	"strings"
)

// One alternated pattern keeps margin, padding and gap matches in document order.
var spacingRe = regexp.MustCompile(`(margin|padding|gap):\s*([^;]+)`)

// ExtractSpacing collects margin, padding and gap declarations from css. The property
// keyword becomes the name and the trimmed value up to ";" the value. Repeated
// property/value pairs are reported once.
func ExtractSpacing(css string) []Spacing {
	spacing := []Spacing{}
	seen := make(map[string]bool)

	for _, m := range spacingRe.FindAllStringSubmatch(css, -1) {
		name, value := m[1], strings.TrimSpace(m[2])

		key := name + "-" + value
		if seen[key] {
			continue
		}
		seen[key] = true

		spacing = append(spacing, Spacing{Name: name, Value: value})
	}

	return spacing
}
