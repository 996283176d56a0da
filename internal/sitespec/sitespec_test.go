package sitespec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() *SiteIntentDocument {
	return &SiteIntentDocument{
		SessionID:      "s-1",
		SiteType:       SiteBooking,
		ConversionGoal: GoalBook,
		Personality:    PersonalityVector{0.5, 0.5, 0.5, 0.8, 0.5, 0.5},
		BusinessName:   "Luxe Cuts",
		Tagline:        "Book your appointment in seconds",
		Pages: []PageSpec{{
			Slug:  "home",
			Title: "Luxe Cuts",
			Components: []ComponentPlacement{
				{
					ComponentID: CompNavigation,
					Variant:     "standard",
					Order:       0,
					Content: map[string]any{
						"logoText": "Luxe Cuts",
						"links":    []any{map[string]any{"label": "About", "target": "#about"}},
					},
				},
				{
					ComponentID: CompStats,
					Variant:     "cards",
					Order:       1,
					Content: map[string]any{
						"items": []any{map[string]any{"label": "Visits", "value": 12.0}},
					},
				},
			},
		}},
		Metadata: Metadata{GeneratedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Method: MethodDeterministic},
	}
}

func TestClone_IsStructurallyIndependent(t *testing.T) {
	orig := sampleDoc()
	clone := orig.Clone()
	require.Equal(t, orig, clone)

	clone.Pages[0].Components[0].Content["logoText"] = "Changed"
	links := clone.Pages[0].Components[0].Content["links"].([]any)
	links[0].(map[string]any)["label"] = "Changed"
	clone.Personality[0] = 0.9

	assert.Equal(t, "Luxe Cuts", orig.Pages[0].Components[0].Content["logoText"])
	origLinks := orig.Pages[0].Components[0].Content["links"].([]any)
	assert.Equal(t, "About", origLinks[0].(map[string]any)["label"])
	assert.Equal(t, 0.5, orig.Personality[0])
}

func TestPlacementRef(t *testing.T) {
	p := ComponentPlacement{ComponentID: CompStats, Order: 4}
	assert.Equal(t, "content-stats[4]", p.Ref())
}

func TestValidateSchema_AcceptsWellFormedDocument(t *testing.T) {
	assert.NoError(t, ValidateSchema(sampleDoc()))
}

func TestValidateSchema_RejectsBadVectorLength(t *testing.T) {
	doc := sampleDoc()
	doc.Personality = PersonalityVector{0.5, 0.5}
	assert.Error(t, ValidateSchema(doc))
}

func TestValidateSchema_RejectsMissingSession(t *testing.T) {
	doc := sampleDoc()
	doc.SessionID = ""
	assert.Error(t, ValidateSchema(doc))
}

func TestPersonalityNormalized(t *testing.T) {
	v, adjusted := PersonalityVector{1.5, -1, 0.25}.Normalized()
	assert.True(t, adjusted)
	assert.Equal(t, PersonalityVector{1, 0, 0.25, 0.5, 0.5, 0.5}, v)

	v, adjusted = PersonalityVector{0, 0.2, 0.4, 0.6, 0.8, 1}.Normalized()
	assert.False(t, adjusted)
	assert.Equal(t, PersonalityVector{0, 0.2, 0.4, 0.6, 0.8, 1}, v)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := t.TempDir() + "/doc.json"
	orig := sampleDoc()
	require.NoError(t, Save(path, orig))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, orig.SessionID, loaded.SessionID)
	assert.Equal(t, orig.Pages[0].Components[1].Content["items"], loaded.Pages[0].Components[1].Content["items"])
}
