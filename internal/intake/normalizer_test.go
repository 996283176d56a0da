package intake

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"siteforge/internal/sitespec"
)

func TestExtractBusinessName_CalledPattern(t *testing.T) {
	name := ExtractBusinessName("We run a small bakery called Flour & Stone in the old town.")
	assert.Equal(t, "Flour & Stone", name)
}

func TestExtractBusinessName_NamedPattern(t *testing.T) {
	name := ExtractBusinessName("A studio named Northlight Creative doing brand work.")
	assert.Equal(t, "Northlight Creative", name)
}

func TestExtractBusinessName_PossessivePattern(t *testing.T) {
	name := ExtractBusinessName("my company Brightline helps teams ship faster")
	assert.Equal(t, "Brightline", name)
}

func TestExtractBusinessName_CapitalizedSentenceStart(t *testing.T) {
	name := ExtractBusinessName("Luxe Cuts is a barbershop in the city center. We love our customers.")
	assert.Equal(t, "Luxe Cuts", name)
}

func TestExtractBusinessName_SkipsSentenceStarters(t *testing.T) {
	name := ExtractBusinessName("We are a family business. The best in town.")
	assert.Equal(t, FallbackBusinessName, name)
}

func TestExtractBusinessName_EmptyInput(t *testing.T) {
	assert.Equal(t, FallbackBusinessName, ExtractBusinessName(""))
	assert.Equal(t, FallbackBusinessName, ExtractBusinessName("   "))
}

func TestInferSubType_KeywordMatch(t *testing.T) {
	sub := InferSubType("business", "We are a cozy Italian trattoria downtown")
	assert.Equal(t, "restaurant", sub)
}

func TestInferSubType_FirstMatchWins(t *testing.T) {
	// "cafe" (restaurant) appears before any salon keyword in the rule order.
	sub := InferSubType("business", "A cafe with a small hair salon next door")
	assert.Equal(t, "restaurant", sub)
}

func TestInferSubType_NoMatchReturnsSiteType(t *testing.T) {
	sub := InferSubType("portfolio", "I make things and put them online")
	assert.Equal(t, "portfolio", sub)
}

func TestNormalize_FillsMissingFields(t *testing.T) {
	rec, notes := Normalize(sitespec.IntakeRecord{
		Description: "A barbershop called Luxe Cuts",
		SiteType:    "booking",
		Goal:        "book",
	})

	assert.NotEmpty(t, rec.SessionID)
	assert.Equal(t, "Luxe Cuts", rec.BusinessName)
	assert.Len(t, rec.Personality, sitespec.VectorLen)
	assert.NotEmpty(t, notes)
}

func TestNormalize_ClampsAndPadsVector(t *testing.T) {
	rec, notes := Normalize(sitespec.IntakeRecord{
		SessionID:    "s1",
		SiteType:     "business",
		Goal:         "contact",
		BusinessName: "Acme",
		Personality:  sitespec.PersonalityVector{1.7, -0.2, math.NaN()},
	})

	assert.Equal(t, sitespec.PersonalityVector{1, 0, 0.5, 0.5, 0.5, 0.5}, rec.Personality)
	assert.Contains(t, notes, "personality vector clamped/padded to 6 axes in [0,1]")
}

func TestNormalize_KeepsValidInputUntouched(t *testing.T) {
	in := sitespec.IntakeRecord{
		SessionID:    "s1",
		SiteType:     "business",
		Goal:         "contact",
		BusinessName: "Acme",
		Personality:  sitespec.PersonalityVector{0.1, 0.2, 0.3, 0.4, 0.5, 0.6},
	}
	out, notes := Normalize(in)

	assert.Equal(t, in.SessionID, out.SessionID)
	assert.Equal(t, in.BusinessName, out.BusinessName)
	assert.Equal(t, in.Personality, out.Personality)
	assert.Empty(t, notes)
}
