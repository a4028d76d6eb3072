package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kataras/stitch-extractor/pkg/extractor"
)

// ToMarkdown transforms an extracted design context into a markdown document.
// The output includes CSS variable definitions for colors, fonts and spacing and a
// list of the detected layout patterns, ready to be pasted into a design system.
func ToMarkdown(dc *extractor.DesignContext, title string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Stitch Design Context - %s\n\n", title))
	sb.WriteString("This document contains the design tokens extracted from the generated screen.\n\n")

	sb.WriteString("## Design System\n\n")

	if len(dc.Colors) > 0 {
		sb.WriteString("### Color Palette\n\n")
		sb.WriteString("| Name | Value | Source |\n")
		sb.WriteString("|------|-------|--------|\n")
		for _, c := range dc.Colors {
			sb.WriteString(fmt.Sprintf("| %s | `%s` | %s |\n", c.Name, c.Hex, c.Usage))
		}
		sb.WriteString("\n")
	}

	if len(dc.Fonts) > 0 {
		sb.WriteString("### Typography\n\n")
		sb.WriteString("| Family | Weight | Size | Source |\n")
		sb.WriteString("|--------|--------|------|--------|\n")
		for _, f := range dc.Fonts {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", f.Family, f.Weight, f.Size, f.Usage))
		}
		sb.WriteString("\n")
	}

	if len(dc.Spacing) > 0 {
		sb.WriteString("### Spacing\n\n")
		for _, s := range dc.Spacing {
			sb.WriteString(fmt.Sprintf("- **%s**: `%s`\n", s.Name, s.Value))
		}
		sb.WriteString("\n")
	}

	if vars := ToCSSVariables(dc); vars != "" {
		sb.WriteString("### CSS Variables\n\n")
		sb.WriteString("```css\n")
		sb.WriteString(vars)
		sb.WriteString("```\n\n")
	}

	if len(dc.Layouts) > 0 {
		sb.WriteString("## Layout Patterns\n\n")
		for _, l := range dc.Layouts {
			sb.WriteString(fmt.Sprintf("- **%s**: %s\n", l.Type, l.Description))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ToCSSVariables renders the colors, fonts and spacing of dc as custom properties in a
// :root block. It returns "" when there is nothing to render.
func ToCSSVariables(dc *extractor.DesignContext) string {
	if len(dc.Colors) == 0 && len(dc.Fonts) == 0 && len(dc.Spacing) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(":root {\n")

	if len(dc.Colors) > 0 {
		sb.WriteString("  /* Colors */\n")
		used := make(map[string]int)
		for _, c := range dc.Colors {
			name := uniqueName(used, toKebabCase(c.Name))
			sb.WriteString(fmt.Sprintf("  --color-%s: %s;\n", name, c.Hex))
		}
	}

	if len(dc.Fonts) > 0 {
		sb.WriteString("  /* Fonts */\n")
		used := make(map[string]int)
		for i, f := range dc.Fonts {
			name := "primary"
			if i > 0 {
				name = uniqueName(used, toKebabCase(firstFamily(f.Family)))
			} else {
				used[name] = 1
			}
			sb.WriteString(fmt.Sprintf("  --font-%s: %s;\n", name, quoteFamily(f.Family)))
		}
	}

	if len(dc.Spacing) > 0 {
		sb.WriteString("  /* Spacing */\n")
		counts := make(map[string]int)
		for _, s := range dc.Spacing {
			counts[s.Name]++
			sb.WriteString(fmt.Sprintf("  --space-%s-%d: %s;\n", s.Name, counts[s.Name], s.Value))
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

// ToJSON returns dc as indented JSON, the form consumed by rendering layers.
func ToJSON(dc *extractor.DesignContext) (string, error) {
	data, err := json.MarshalIndent(dc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal design context: %w", err)
	}
	return string(data), nil
}

// uniqueName returns name, or name-2, name-3... if it was already used.
func uniqueName(used map[string]int, name string) string {
	if name == "" {
		name = "token"
	}
	used[name]++
	if n := used[name]; n > 1 {
		return fmt.Sprintf("%s-%d", name, n)
	}
	return name
}

func firstFamily(family string) string {
	first, _, _ := strings.Cut(family, ",")
	return strings.TrimSpace(first)
}

// quoteFamily quotes the first family of a font stack when it contains spaces.
func quoteFamily(family string) string {
	first, rest, hasRest := strings.Cut(family, ",")
	first = strings.TrimSpace(first)
	if strings.Contains(first, " ") {
		first = "'" + first + "'"
	}
	if hasRest {
		return first + "," + rest
	}
	return first
}

// toKebabCase converts a string to kebab-case format (lowercase with hyphens).
// This is used for generating CSS variable names from token names.
// Special characters are removed, and spaces/underscores are replaced with hyphens.
func toKebabCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}

	return result.String()
}
