// Package preview renders a site intent document as human-readable
// Markdown, for quick inspection of a generation run without loading the
// JSON into an editor.
package preview

import (
	"fmt"
	"sort"
	"strings"

	"siteforge/internal/sitespec"
)

var axisNames = [sitespec.VectorLen]string{
	"density", "tone", "warmth", "weight", "era", "energy",
}

// axisName labels an axis index. Documents straight from disk may carry a
// vector longer than the canonical six; overflow axes get a generic label
// instead of crashing the render.
func axisName(i int) string {
	if i < len(axisNames) {
		return axisNames[i]
	}
	return fmt.Sprintf("axis%d", i)
}

// Markdown renders the document, plus any warnings and fixes from the same
// run, into one Markdown report.
func Markdown(doc *sitespec.SiteIntentDocument, warnings []sitespec.ValidationWarning, fixes []sitespec.AutoFix) string {
	if doc == nil {
		return "# (no document)\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", doc.BusinessName)
	if doc.Tagline != "" {
		fmt.Fprintf(&b, "> %s\n\n", doc.Tagline)
	}
	fmt.Fprintf(&b, "- **Session:** `%s`\n", doc.SessionID)
	fmt.Fprintf(&b, "- **Type / goal:** %s / %s\n", doc.SiteType, doc.ConversionGoal)
	fmt.Fprintf(&b, "- **Method:** %s\n", doc.Metadata.Method)
	if !doc.Metadata.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "- **Generated:** %s\n", doc.Metadata.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	}
	b.WriteString("- **Personality:** ")
	for i, v := range doc.Personality {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%.2f", axisName(i), v)
	}
	b.WriteString("\n")

	for _, page := range doc.Pages {
		fmt.Fprintf(&b, "\n## Page: %s (`/%s`)\n\n", page.Title, page.Slug)
		b.WriteString("| # | Component | Variant | Content |\n")
		b.WriteString("|---|-----------|---------|--------|\n")
		for _, c := range page.Components {
			fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", c.Order, c.ComponentID, c.Variant, contentSummary(c.Content))
		}
	}

	if len(warnings) > 0 {
		b.WriteString("\n## Validation\n\n")
		for _, w := range warnings {
			loc := w.ComponentRef
			if w.Field != "" {
				loc += "." + w.Field
			}
			if loc == "" {
				loc = "document"
			}
			fmt.Fprintf(&b, "- **%s** `%s`: %s", w.Severity, loc, w.Message)
			if w.Suggestion != "" {
				fmt.Fprintf(&b, " (%s)", w.Suggestion)
			}
			b.WriteString("\n")
		}
	}

	if len(fixes) > 0 {
		b.WriteString("\n## Applied fixes\n\n")
		for _, f := range fixes {
			fmt.Fprintf(&b, "- `%s` %s.%s: %q -> %q\n", f.Rule, f.ComponentRef, f.Field, f.Original, f.Replacement)
		}
	}
	return b.String()
}

// contentSummary compresses a content map into a short, stable one-line
// description: scalar fields by name, list fields by length.
func contentSummary(content map[string]any) string {
	if len(content) == 0 {
		return ""
	}
	keys := make([]string, 0, len(content))
	for k := range content {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		switch v := content[k].(type) {
		case string:
			parts = append(parts, fmt.Sprintf("%s=%q", k, truncate(v, 40)))
		case []any:
			parts = append(parts, fmt.Sprintf("%s[%d]", k, len(v)))
		case float64, int, int64, bool:
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		default:
			parts = append(parts, k)
		}
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
