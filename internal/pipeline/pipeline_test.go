package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteforge/internal/sitespec"
)

type stubGenerator struct {
	doc   *sitespec.SiteIntentDocument
	err   error
	calls int
}

func (s *stubGenerator) GenerateSiteIntent(_ context.Context, rec sitespec.IntakeRecord) (*sitespec.SiteIntentDocument, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

func intakeFixture() sitespec.IntakeRecord {
	return sitespec.IntakeRecord{
		SessionID:    "s-pipe",
		SiteType:     "booking",
		Goal:         "book",
		BusinessName: "Luxe Cuts",
		Description:  "A modern hair salon downtown",
		Personality:  sitespec.PersonalityVector{0.5, 0.5, 0.5, 0.8, 0.5, 0.5},
	}
}

func TestRun_DeterministicWithoutGenerator(t *testing.T) {
	p := New(nil, nil, nil)
	out := p.Run(context.Background(), intakeFixture(), Options{})

	require.NotNil(t, out.Document)
	assert.Equal(t, sitespec.MethodDeterministic, out.Document.Metadata.Method)
	assert.Equal(t, "Luxe Cuts", out.Document.BusinessName)
	assert.Equal(t, "salon", out.SubType)
}

func TestRun_FallsBackWhenGeneratorFails(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model unavailable")}
	p := New(nil, gen, nil)

	out := p.Run(context.Background(), intakeFixture(), Options{})

	assert.Equal(t, 1, gen.calls)
	require.NotNil(t, out.Document)
	assert.Equal(t, sitespec.MethodDeterministic, out.Document.Metadata.Method)
}

func TestRun_UsesGeneratorDocument(t *testing.T) {
	aiDoc := &sitespec.SiteIntentDocument{
		SessionID:      "s-pipe",
		SiteType:       "booking",
		ConversionGoal: "book",
		Personality:    sitespec.PersonalityVector{0.5, 0.5, 0.5, 0.8, 0.5, 0.5},
		BusinessName:   "Luxe Cuts",
		Tagline:        "Walk in polished, walk out radiant",
		Pages: []sitespec.PageSpec{{
			Slug: "home", Title: "Luxe Cuts",
			Components: []sitespec.ComponentPlacement{{
				ComponentID: sitespec.CompNavigation,
				Variant:     "standard",
				Order:       0,
				Content:     map[string]any{"logoText": "Luxe Cuts"},
			}},
		}},
		Metadata: sitespec.Metadata{GeneratedAt: time.Now().UTC(), Method: sitespec.MethodAI},
	}
	gen := &stubGenerator{doc: aiDoc}
	p := New(nil, gen, nil)

	out := p.Run(context.Background(), intakeFixture(), Options{})

	require.NotNil(t, out.Document)
	assert.Equal(t, sitespec.MethodAI, out.Document.Metadata.Method)
	assert.Equal(t, "Walk in polished, walk out radiant", out.Document.Tagline)
}

func TestRun_AutoFixProducesLedger(t *testing.T) {
	rec := sitespec.IntakeRecord{
		SessionID:    "s-fix",
		SiteType:     "business",
		Goal:         "contact",
		BusinessName: "Trattoria Roma",
		Description:  "We are a cozy Italian trattoria downtown",
		Personality:  sitespec.PersonalityVector{0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
	}
	p := New(nil, nil, nil)

	unfixed := p.Run(context.Background(), rec, Options{})
	fixed := p.Run(context.Background(), rec, Options{AutoFix: true})

	assert.Empty(t, unfixed.Fixes)
	assert.NotEmpty(t, fixed.Fixes)
	assert.Equal(t, "restaurant", fixed.SubType)
	// Fixes resolve the vocabulary warnings the unfixed run reports.
	assert.Less(t, len(fixed.Warnings), len(unfixed.Warnings))
}

func TestRun_NormalizationNotesSurface(t *testing.T) {
	rec := sitespec.IntakeRecord{
		Description: `A bakery called "Flour & Stone" in the old town`,
		Personality: sitespec.PersonalityVector{1.7, -0.2},
	}
	p := New(nil, nil, nil)

	out := p.Run(context.Background(), rec, Options{})

	require.NotNil(t, out.Document)
	assert.NotEmpty(t, out.Document.SessionID)
	assert.Equal(t, "Flour & Stone", out.Document.BusinessName)
	assert.NotEmpty(t, out.Notes)
}
