// Package autofix repairs a site intent document against its inferred
// sub-type: canonical business naming, generic-headline swaps, team-role
// swaps, vocabulary substitution, and numeric coercion of stat values. The
// input document is never mutated; fixes apply to a deep copy and every
// effective change is recorded in a ledger. Re-running the transformer on
// its own output yields no new fixes.
package autofix

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"siteforge/internal/intake"
	"siteforge/internal/sitespec"
)

// Context is the original intake context the fixes are derived from.
type Context struct {
	Description string
	SiteType    string
}

// Result carries the corrected document, the fix ledger, and the sub-type
// the rules were keyed by.
type Result struct {
	Spec    *sitespec.SiteIntentDocument
	Fixes   []sitespec.AutoFix
	SubType string
}

// Apply runs the fix families in a fixed order so later families see
// earlier corrections: (a) nav/footer naming, (b) headline swaps, (c) team
// roles, (d) general vocabulary, (e) stat coercion.
func Apply(doc *sitespec.SiteIntentDocument, ctx Context) Result {
	subType := intake.InferSubType(ctx.SiteType, ctx.Description)
	res := Result{SubType: subType, Fixes: []sitespec.AutoFix{}}
	if doc == nil {
		return res
	}

	spec := doc.Clone()
	res.Spec = spec

	for pi := range spec.Pages {
		page := &spec.Pages[pi]
		for ci := range page.Components {
			c := &page.Components[ci]
			fixLogoText(c, spec.BusinessName, &res.Fixes)
			fixHeadlines(c, subType, &res.Fixes)
			fixTeamRoles(c, subType, &res.Fixes)
			fixVocabulary(c, subType, &res.Fixes)
			fixStatValues(c, &res.Fixes)
		}
	}
	return res
}

// Family (a): force nav/footer name fields to the canonical business name
// when the name is missing from them.
func fixLogoText(c *sitespec.ComponentPlacement, businessName string, fixes *[]sitespec.AutoFix) {
	if c.ComponentID != sitespec.CompNavigation && c.ComponentID != sitespec.CompFooter {
		return
	}
	name := strings.TrimSpace(businessName)
	if name == "" {
		return
	}
	current, _ := c.Content["logoText"].(string)
	if strings.Contains(strings.ToLower(current), strings.ToLower(name)) {
		return
	}
	if c.Content == nil {
		c.Content = map[string]any{}
	}
	c.Content["logoText"] = name
	*fixes = append(*fixes, sitespec.AutoFix{
		ComponentRef: c.Ref(),
		Field:        "logoText",
		Original:     current,
		Replacement:  name,
		Rule:         "logo-business-name",
	})
}

// Family (b): sub-type-specific swaps for generic hero headlines.
func fixHeadlines(c *sitespec.ComponentPlacement, subType string, fixes *[]sitespec.AutoFix) {
	if c.ComponentID != sitespec.CompHeroCentered && c.ComponentID != sitespec.CompHeroSplit {
		return
	}
	rules, ok := headlineRules[subType]
	if !ok {
		return
	}
	for _, field := range []string{"headline", "subheadline"} {
		if s, ok := c.Content[field].(string); ok {
			if rewritten, fix := applyTextRules(s, rules, c.Ref(), field); fix != nil {
				c.Content[field] = rewritten
				*fixes = append(*fixes, fix...)
			}
		}
	}
}

// Family (c): sub-type-appropriate team role titles.
func fixTeamRoles(c *sitespec.ComponentPlacement, subType string, fixes *[]sitespec.AutoFix) {
	if c.ComponentID != sitespec.CompTeam {
		return
	}
	rules, ok := roleRules[subType]
	if !ok {
		return
	}
	members, ok := c.Content["members"].([]any)
	if !ok {
		return
	}
	for i, raw := range members {
		member, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		role, ok := member["role"].(string)
		if !ok {
			continue
		}
		field := fmt.Sprintf("members[%d].role", i)
		if rewritten, fix := applyTextRules(role, rules, c.Ref(), field); fix != nil {
			member["role"] = rewritten
			*fixes = append(*fixes, fix...)
		}
	}
}

// Family (d): general vocabulary substitution across every content string.
func fixVocabulary(c *sitespec.ComponentPlacement, subType string, fixes *[]sitespec.AutoFix) {
	rules, ok := vocabRules[subType]
	if !ok {
		return
	}
	rewriteStrings(c.Content, "", func(field, value string) (string, bool) {
		rewritten, fix := applyTextRules(value, rules, c.Ref(), field)
		if fix == nil {
			return value, false
		}
		*fixes = append(*fixes, fix...)
		return rewritten, true
	})
}

// Family (e): coerce numeric-stat string values to numbers. Values that do
// not parse are left untouched.
func fixStatValues(c *sitespec.ComponentPlacement, fixes *[]sitespec.AutoFix) {
	if c.ComponentID != sitespec.CompStats {
		return
	}
	items, ok := c.Content["items"].([]any)
	if !ok {
		return
	}
	for i, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		s, ok := item["value"].(string)
		if !ok {
			continue
		}
		parsed, err := parseNumber(s)
		if err != nil {
			continue
		}
		item["value"] = parsed
		*fixes = append(*fixes, sitespec.AutoFix{
			ComponentRef: c.Ref(),
			Field:        fmt.Sprintf("items[%d].value", i),
			Original:     s,
			Replacement:  strconv.FormatFloat(parsed, 'f', -1, 64),
			Rule:         "stat-value-number",
		})
	}
}

// parseNumber parses a human-formatted number: surrounding whitespace,
// thousands separators, and a trailing + or % are tolerated.
func parseNumber(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimSuffix(cleaned, "%")
	cleaned = strings.TrimSuffix(cleaned, "+")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, fmt.Errorf("empty numeric string")
	}
	return strconv.ParseFloat(cleaned, 64)
}

// applyTextRules runs every rule over a string. It returns the rewritten
// string plus one AutoFix per rule that changed the text; a rule that
// matches but produces no net change logs nothing.
func applyTextRules(value string, rules []textRule, ref, field string) (string, []sitespec.AutoFix) {
	var fixes []sitespec.AutoFix
	current := value
	for _, r := range rules {
		next := r.re.ReplaceAllString(current, r.replacement)
		if next == current {
			continue
		}
		fixes = append(fixes, sitespec.AutoFix{
			ComponentRef: ref,
			Field:        field,
			Original:     current,
			Replacement:  next,
			Rule:         r.name,
		})
		current = next
	}
	return current, fixes
}

// rewriteStrings walks every string leaf of a content map in place,
// handling scalar fields, arrays of scalars, and arrays of objects with the
// same traversal.
func rewriteStrings(v any, path string, rewrite func(field, value string) (string, bool)) {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := t[k]
			childPath := k
			if path != "" {
				childPath = path + "." + k
			}
			if s, ok := child.(string); ok {
				if next, changed := rewrite(childPath, s); changed {
					t[k] = next
				}
				continue
			}
			rewriteStrings(child, childPath, rewrite)
		}
	case []any:
		for i, child := range t {
			childPath := fmt.Sprintf("%s[%d]", path, i)
			if s, ok := child.(string); ok {
				if next, changed := rewrite(childPath, s); changed {
					t[i] = next
				}
				continue
			}
			rewriteStrings(child, childPath, rewrite)
		}
	}
}
