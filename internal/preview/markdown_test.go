package preview

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"siteforge/internal/composer"
	"siteforge/internal/sitespec"
)

func TestMarkdown_RendersDocument(t *testing.T) {
	doc := composer.New(nil).Build(sitespec.IntakeRecord{
		SessionID:    "s-prev",
		SiteType:     "booking",
		Goal:         "book",
		BusinessName: "Luxe Cuts",
		Personality:  sitespec.PersonalityVector{0.5, 0.5, 0.5, 0.8, 0.5, 0.5},
	})

	out := Markdown(doc, nil, nil)

	assert.True(t, strings.HasPrefix(out, "# Luxe Cuts\n"))
	assert.Contains(t, out, "## Page: ")
	assert.Contains(t, out, "| 0 | navigation |")
	assert.Contains(t, out, "weight=0.80")
	assert.NotContains(t, out, "## Validation")
}

func TestMarkdown_IncludesWarningsAndFixes(t *testing.T) {
	doc := &sitespec.SiteIntentDocument{
		SessionID:    "s-1",
		BusinessName: "Acme",
	}
	warnings := []sitespec.ValidationWarning{
		{Severity: "error", ComponentRef: "content-stats[4]", Field: "items[0].value", Message: "stat value must be numeric"},
		{Severity: "warning", Message: "no industry vocabulary found"},
	}
	fixes := []sitespec.AutoFix{
		{Rule: "vocab-restaurant-guests", ComponentRef: "content-stats[4]", Field: "items[1].label", Original: "Clients served", Replacement: "guests served"},
	}

	out := Markdown(doc, warnings, fixes)

	assert.Contains(t, out, "**error** `content-stats[4].items[0].value`")
	assert.Contains(t, out, "**warning** `document`")
	assert.Contains(t, out, "`vocab-restaurant-guests`")
}

func TestMarkdown_NilDocument(t *testing.T) {
	assert.Equal(t, "# (no document)\n", Markdown(nil, nil, nil))
}

func TestMarkdown_OverlongVectorRendersWithoutPanic(t *testing.T) {
	// Documents loaded straight from disk skip normalization, so the
	// vector can carry more than six axes.
	doc := &sitespec.SiteIntentDocument{
		SessionID:    "s-long",
		BusinessName: "Acme",
		Personality:  sitespec.PersonalityVector{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7},
	}

	out := Markdown(doc, nil, nil)

	assert.Contains(t, out, "energy=0.60")
	assert.Contains(t, out, "axis6=0.70")
}

func TestContentSummary_TruncatesOnRuneBoundaries(t *testing.T) {
	long := "Moments, made permanent — наша фотостудия рассказывает истории"
	doc := &sitespec.SiteIntentDocument{
		SessionID:    "s-utf8",
		BusinessName: "Acme",
		Pages: []sitespec.PageSpec{{
			Slug: "home", Title: "Acme",
			Components: []sitespec.ComponentPlacement{{
				ComponentID: sitespec.CompAbout,
				Variant:     "standard",
				Content:     map[string]any{"body": long},
			}},
		}},
	}

	out := Markdown(doc, nil, nil)

	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "…")
	// A byte-level cut through a multibyte rune would surface as a \x
	// escape under %q formatting.
	assert.NotContains(t, out, `\x`)
}
