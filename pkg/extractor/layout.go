package extractor

import (
	"regexp"
	"strings"
)

type layoutRule struct {
	typ         string
	keyword     string
	description string
	word        *regexp.Regexp
}

// The standalone-word fallback catches utility classes such as class="flex" but also
// any other occurrence of the word in the markup.
var layoutRules = []layoutRule{
	{typ: "Flexbox", keyword: "flex", description: "Flexible box layout for one-dimensional alignment", word: regexp.MustCompile(`\bflex\b`)},
	{typ: "Grid", keyword: "grid", description: "CSS grid layout for two-dimensional placement", word: regexp.MustCompile(`\bgrid\b`)},
	{typ: "Absolute", keyword: "absolute", description: "Absolute positioning of overlaid elements", word: regexp.MustCompile(`\babsolute\b`)},
}

// DetectLayouts reports which layout patterns html uses. Each of Flexbox, Grid and
// Absolute is reported at most once, when the markup contains "display: <kw>",
// "display:<kw>" or the keyword as a standalone word.
func DetectLayouts(html string) []Layout {
	layouts := []Layout{}

	for _, rule := range layoutRules {
		if strings.Contains(html, "display: "+rule.keyword) ||
			strings.Contains(html, "display:"+rule.keyword) ||
			rule.word.MatchString(html) {
			layouts = append(layouts, Layout{Type: rule.typ, Description: rule.description})
		}
	}

	return layouts
}
