package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_FallbackEntryIsComplete(t *testing.T) {
	cat := Default()

	ind, ok := cat.Industries[fallbackKey]
	require.True(t, ok, "fallback industry must exist")
	assert.NotEmpty(t, ind.DefaultTagline)
	assert.NotEmpty(t, ind.Features)
	assert.NotEmpty(t, ind.Testimonials)
	require.NotNil(t, ind.Headline)
	require.NotNil(t, ind.AboutBody)
	assert.Contains(t, ind.Headline("Acme"), "Acme")
	assert.Contains(t, ind.AboutBody("Acme", ""), "Acme")
}

func TestLookups_UnknownSiteTypeFallsBack(t *testing.T) {
	cat := Default()

	assert.Equal(t, cat.Industries[fallbackKey].DefaultTagline, cat.Industry("submarine-tours").DefaultTagline)
	assert.NotEmpty(t, cat.StatsFor("submarine-tours"))
	assert.NotEmpty(t, cat.ServicesFor("submarine-tours"))
	assert.NotEmpty(t, cat.TeamFor("submarine-tours"))
	assert.NotEmpty(t, cat.TrustLogosFor("submarine-tours"))
	assert.NotEmpty(t, cat.FAQFor("submarine-tours"))
}

func TestTagline_GoalSpecificWithDefault(t *testing.T) {
	cat := Default()

	book := cat.Tagline("booking", "book")
	assert.Equal(t, "Book your appointment in seconds", book)

	// An unmapped goal falls back to the industry default, never empty.
	other := cat.Tagline("booking", "mystery-goal")
	assert.NotEmpty(t, other)
	assert.NotEqual(t, book, other)
}

func TestDefault_EveryIndustryIsRenderable(t *testing.T) {
	cat := Default()
	for siteType, ind := range cat.Industries {
		assert.NotEmpty(t, ind.DefaultTagline, "siteType=%s", siteType)
		assert.NotEmpty(t, ind.Features, "siteType=%s", siteType)
		assert.NotEmpty(t, ind.Testimonials, "siteType=%s", siteType)
		require.NotNil(t, ind.Headline, "siteType=%s", siteType)
		require.NotNil(t, ind.AboutBody, "siteType=%s", siteType)
		assert.NotEmpty(t, ind.Headline("Acme"), "siteType=%s", siteType)
	}
}

func TestDefault_TestimonialRatingsInRange(t *testing.T) {
	cat := Default()
	for siteType, ind := range cat.Industries {
		for _, tm := range ind.Testimonials {
			assert.GreaterOrEqual(t, tm.Rating, 4, "siteType=%s", siteType)
			assert.LessOrEqual(t, tm.Rating, 5, "siteType=%s", siteType)
		}
	}
}
