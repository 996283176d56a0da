// Package validate inspects finished site intent documents against
// sub-type vocabulary, placeholder, presence, and type rules. Every rule is
// advisory: the engine accumulates warnings and never fails.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"siteforge/internal/intake"
	"siteforge/internal/sitespec"
)

// Context is the original intake context a document is checked against.
type Context struct {
	Description string
	SiteType    string
}

// Result bundles the warnings with the sub-type they were evaluated under.
type Result struct {
	Warnings []sitespec.ValidationWarning
	SubType  string
}

// Check runs every rule against the document. Rules are independent and all
// of them run; none short-circuits another.
func Check(doc *sitespec.SiteIntentDocument, ctx Context) Result {
	subType := intake.InferSubType(ctx.SiteType, ctx.Description)
	res := Result{SubType: subType, Warnings: []sitespec.ValidationWarning{}}
	if doc == nil {
		res.Warnings = append(res.Warnings, sitespec.ValidationWarning{
			Severity: "error",
			Message:  "document is missing",
		})
		return res
	}

	fields := collectStringFields(doc)

	res.Warnings = append(res.Warnings, checkGenericPhrases(fields, subType)...)
	res.Warnings = append(res.Warnings, checkBusinessName(doc)...)
	res.Warnings = append(res.Warnings, checkForbiddenTerms(fields, subType)...)
	res.Warnings = append(res.Warnings, checkExpectedTerms(fields, subType)...)
	res.Warnings = append(res.Warnings, checkStatTypes(doc)...)
	return res
}

// stringField is one collected content string with its location.
type stringField struct {
	ref   string
	field string
	value string
}

func collectStringFields(doc *sitespec.SiteIntentDocument) []stringField {
	out := make([]stringField, 0, 64)
	for _, p := range doc.Placements() {
		walkStrings(p.Content, "", func(field, value string) {
			out = append(out, stringField{ref: p.Ref(), field: field, value: value})
		})
	}
	return out
}

// walkStrings visits every string leaf of a content map, reporting dotted
// field paths like "items[2].quote".
func walkStrings(v any, path string, visit func(field, value string)) {
	switch t := v.(type) {
	case string:
		visit(path, t)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := k
			if path != "" {
				child = path + "." + k
			}
			walkStrings(t[k], child, visit)
		}
	case []any:
		for i, e := range t {
			walkStrings(e, fmt.Sprintf("%s[%d]", path, i), visit)
		}
	}
}

func checkGenericPhrases(fields []stringField, subType string) []sitespec.ValidationWarning {
	exempt := genericExemptions[subType]
	var out []sitespec.ValidationWarning
	for _, phrase := range genericPhrases {
		if exempt[phrase] {
			continue
		}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f.value), phrase) {
				out = append(out, sitespec.ValidationWarning{
					Severity:     "warning",
					ComponentRef: f.ref,
					Field:        f.field,
					Message:      fmt.Sprintf("generic placeholder phrase %q found in content", phrase),
					Suggestion:   "replace with copy specific to the business",
				})
				break // one report per phrase
			}
		}
	}
	return out
}

func checkBusinessName(doc *sitespec.SiteIntentDocument) []sitespec.ValidationWarning {
	name := strings.TrimSpace(doc.BusinessName)
	if name == "" {
		return nil
	}
	lower := strings.ToLower(name)
	for _, p := range doc.Placements() {
		if p.ComponentID != sitespec.CompNavigation && p.ComponentID != sitespec.CompFooter {
			continue
		}
		if logo, ok := p.Content["logoText"].(string); ok {
			if strings.Contains(strings.ToLower(logo), lower) {
				return nil
			}
		}
	}
	return []sitespec.ValidationWarning{{
		Severity:   "error",
		Field:      "logoText",
		Message:    fmt.Sprintf("business name %q does not appear in any navigation or footer block", name),
		Suggestion: "set the nav/footer logoText to the business name",
	}}
}

func checkForbiddenTerms(fields []stringField, subType string) []sitespec.ValidationWarning {
	vocab, ok := subTypeVocab[subType]
	if !ok {
		return nil
	}
	var out []sitespec.ValidationWarning
	for _, term := range vocab.Forbidden {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f.value), term.Term) {
				out = append(out, sitespec.ValidationWarning{
					Severity:     term.Severity,
					ComponentRef: f.ref,
					Field:        f.field,
					Message:      fmt.Sprintf("term %q does not fit a %s site", term.Term, subType),
					Suggestion:   fmt.Sprintf("use %q instead", term.Suggestion),
				})
				break // report the first containing placement only
			}
		}
	}
	return out
}

func checkExpectedTerms(fields []stringField, subType string) []sitespec.ValidationWarning {
	vocab, ok := subTypeVocab[subType]
	if !ok || len(vocab.Expected) == 0 {
		return nil
	}
	for _, f := range fields {
		lower := strings.ToLower(f.value)
		for _, term := range vocab.Expected {
			if strings.Contains(lower, term) {
				return nil
			}
		}
	}
	return []sitespec.ValidationWarning{{
		Severity:   "warning",
		Message:    fmt.Sprintf("content contains none of the expected %s vocabulary (e.g. %s)", subType, strings.Join(vocab.Expected[:min(3, len(vocab.Expected))], ", ")),
		Suggestion: "work industry-specific language into headlines and body copy",
	}}
}

func checkStatTypes(doc *sitespec.SiteIntentDocument) []sitespec.ValidationWarning {
	var out []sitespec.ValidationWarning
	for _, p := range doc.Placements() {
		if p.ComponentID != sitespec.CompStats {
			continue
		}
		items, ok := p.Content["items"].([]any)
		if !ok {
			continue
		}
		for i, raw := range items {
			item, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			switch item["value"].(type) {
			case float64, int, int64, nil:
				// numeric or absent: fine
			default:
				out = append(out, sitespec.ValidationWarning{
					Severity:     "error",
					ComponentRef: p.Ref(),
					Field:        fmt.Sprintf("items[%d].value", i),
					Message:      "stat value must be a number, not a string",
					Suggestion:   "run auto-fix to coerce numeric strings",
				})
			}
		}
	}
	return out
}
