package autofix

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteforge/internal/composer"
	"siteforge/internal/sitespec"
)

var restaurantCtx = Context{
	SiteType:    "business",
	Description: "We are a cozy Italian trattoria downtown",
}

func buildDoc(t *testing.T, siteType, goal, name string) *sitespec.SiteIntentDocument {
	t.Helper()
	return composer.New(nil).Build(sitespec.IntakeRecord{
		SessionID:    "s-fix",
		SiteType:     siteType,
		Goal:         goal,
		BusinessName: name,
		Personality:  sitespec.PersonalityVector{0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
	})
}

func snapshot(t *testing.T, doc *sitespec.SiteIntentDocument) []byte {
	t.Helper()
	b, err := json.Marshal(doc)
	require.NoError(t, err)
	return b
}

func TestApply_NeverMutatesInput(t *testing.T) {
	doc := buildDoc(t, "business", "contact", "Trattoria Roma")
	before := snapshot(t, doc)

	res := Apply(doc, restaurantCtx)
	require.NotNil(t, res.Spec)
	require.NotEmpty(t, res.Fixes, "restaurant context should trigger vocabulary fixes")

	assert.JSONEq(t, string(before), string(snapshot(t, doc)))
}

func TestApply_Idempotent(t *testing.T) {
	doc := buildDoc(t, "business", "contact", "Trattoria Roma")

	first := Apply(doc, restaurantCtx)
	require.NotEmpty(t, first.Fixes)

	second := Apply(first.Spec, restaurantCtx)
	assert.Empty(t, second.Fixes, "re-running on fixed output must change nothing")
}

func TestApply_VocabularySwap(t *testing.T) {
	doc := buildDoc(t, "business", "contact", "Trattoria Roma")
	res := Apply(doc, restaurantCtx)

	var swapped bool
	for _, f := range res.Fixes {
		if f.Rule == "vocab-restaurant-guests" {
			swapped = true
			assert.Contains(t, f.Original, "Clients")
			assert.Contains(t, f.Replacement, "guests")
		}
	}
	assert.True(t, swapped, "expected the clients->guests swap; got %v", res.Fixes)
}

func TestApply_TeamRoleSwap(t *testing.T) {
	doc := buildDoc(t, "business", "contact", "Trattoria Roma")
	res := Apply(doc, restaurantCtx)

	var roleFix bool
	for _, f := range res.Fixes {
		if f.Rule == "role-restaurant-chef" {
			roleFix = true
			assert.Equal(t, "Head Chef", f.Replacement)
		}
	}
	assert.True(t, roleFix, "expected a chef role swap; got %v", res.Fixes)
}

func TestApply_LogoTextForcedToBusinessName(t *testing.T) {
	doc := buildDoc(t, "business", "contact", "Trattoria Roma")
	for pi := range doc.Pages {
		for ci := range doc.Pages[pi].Components {
			c := &doc.Pages[pi].Components[ci]
			if c.ComponentID == sitespec.CompNavigation {
				c.Content["logoText"] = "Your Business Name"
			}
		}
	}

	res := Apply(doc, restaurantCtx)

	var fixed bool
	for _, f := range res.Fixes {
		if f.Rule == "logo-business-name" {
			fixed = true
			assert.Equal(t, "Your Business Name", f.Original)
			assert.Equal(t, "Trattoria Roma", f.Replacement)
		}
	}
	assert.True(t, fixed)

	for _, p := range res.Spec.Placements() {
		if p.ComponentID == sitespec.CompNavigation {
			assert.Equal(t, "Trattoria Roma", p.Content["logoText"])
		}
	}
}

func TestApply_StatCoercion(t *testing.T) {
	doc := buildDoc(t, "business", "contact", "Acme")
	for pi := range doc.Pages {
		for ci := range doc.Pages[pi].Components {
			c := &doc.Pages[pi].Components[ci]
			if c.ComponentID == sitespec.CompStats {
				items := c.Content["items"].([]any)
				items[0].(map[string]any)["value"] = " 1,200+ "
				items[1].(map[string]any)["value"] = "not a number"
			}
		}
	}

	res := Apply(doc, Context{SiteType: "business"})

	var coerced, untouched bool
	for _, p := range res.Spec.Placements() {
		if p.ComponentID != sitespec.CompStats {
			continue
		}
		items := p.Content["items"].([]any)
		if v, ok := items[0].(map[string]any)["value"].(float64); ok {
			coerced = true
			assert.Equal(t, 1200.0, v)
		}
		if _, ok := items[1].(map[string]any)["value"].(string); ok {
			untouched = true
		}
	}
	assert.True(t, coerced, "parseable stat string must become a number")
	assert.True(t, untouched, "unparseable stat string must be left alone")

	var ledger int
	for _, f := range res.Fixes {
		if f.Rule == "stat-value-number" {
			ledger++
			assert.Equal(t, " 1,200+ ", f.Original)
			assert.Equal(t, "1200", f.Replacement)
		}
	}
	assert.Equal(t, 1, ledger, "exactly one coercion should be logged")
}

func TestApply_NoFixesForMatchingSubType(t *testing.T) {
	// A generic business on a business template needs no vocabulary repair.
	doc := buildDoc(t, "business", "contact", "Acme Consulting")
	res := Apply(doc, Context{SiteType: "business", Description: "a consulting firm"})

	assert.Equal(t, "business", res.SubType)
	assert.Empty(t, res.Fixes)
}

func TestApply_NilDocument(t *testing.T) {
	res := Apply(nil, Context{SiteType: "business"})
	assert.Nil(t, res.Spec)
	assert.Empty(t, res.Fixes)
}

func TestApply_HeadlineSwap(t *testing.T) {
	doc := buildDoc(t, "business", "contact", "Trattoria Roma")
	for pi := range doc.Pages {
		for ci := range doc.Pages[pi].Components {
			c := &doc.Pages[pi].Components[ci]
			if c.ComponentID == sitespec.CompHeroCentered {
				c.Content["headline"] = "Welcome to our website"
			}
		}
	}

	res := Apply(doc, restaurantCtx)

	var swapped bool
	for _, f := range res.Fixes {
		if f.Rule == "headline-generic-welcome" {
			swapped = true
			assert.Equal(t, "A table is waiting for you", f.Replacement)
		}
	}
	assert.True(t, swapped)
}
