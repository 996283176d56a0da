package voice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"siteforge/internal/sitespec"
)

func TestCTAText_TonesDiffer(t *testing.T) {
	polished := CTAText("book", sitespec.TonePolished, nil)
	warm := CTAText("book", sitespec.ToneWarm, nil)

	assert.NotEmpty(t, polished)
	assert.NotEmpty(t, warm)
	assert.NotEqual(t, polished, warm)
	assert.LessOrEqual(t, len(polished), 40)
	assert.LessOrEqual(t, len(warm), 40)
}

func TestCTAText_AllTonesAndGoalsNonEmpty(t *testing.T) {
	tones := []string{sitespec.ToneWarm, sitespec.TonePolished, sitespec.ToneDirect}
	goals := []string{"contact", "book", "buy", "signup", "donate", "hire", "convert", "learn", "unknown-goal"}
	for _, tone := range tones {
		for _, goal := range goals {
			text := CTAText(goal, tone, nil)
			assert.NotEmpty(t, text, "tone=%s goal=%s", tone, goal)
			assert.LessOrEqual(t, len(text), 40, "tone=%s goal=%s", tone, goal)
		}
	}
}

func TestCTAText_AntiReferenceSuppression(t *testing.T) {
	plain := CTAText("buy", sitespec.ToneDirect, nil)
	softened := CTAText("buy", sitespec.ToneDirect, []string{"salesy"})

	assert.NotEqual(t, plain, softened)
	assert.NotEmpty(t, softened)
}

func TestCTAText_UnrelatedAntiReferenceIgnored(t *testing.T) {
	plain := CTAText("buy", sitespec.ToneWarm, nil)
	same := CTAText("buy", sitespec.ToneWarm, []string{"corporate", "minimalist"})
	assert.Equal(t, plain, same)
}

func TestHeadline_ToneRegisters(t *testing.T) {
	warm := Headline("Acme", "business", sitespec.ToneWarm)
	polished := Headline("Acme", "business", sitespec.TonePolished)
	direct := Headline("Acme", "business", sitespec.ToneDirect)

	assert.Contains(t, warm, "'") // warm register uses contractions
	assert.NotContains(t, polished, "'")
	assert.NotEqual(t, warm, polished)
	assert.NotEqual(t, polished, direct)
}

func TestHeadline_UnknownSiteTypeFallsBack(t *testing.T) {
	got := Headline("Acme", "zeppelin-rides", sitespec.TonePolished)
	assert.NotEmpty(t, got)
	assert.Contains(t, got, "Acme")
}

func TestNormalizeTone(t *testing.T) {
	assert.Equal(t, sitespec.TonePolished, NormalizeTone("Professional"))
	assert.Equal(t, sitespec.ToneDirect, NormalizeTone("punchy"))
	assert.Equal(t, sitespec.ToneWarm, NormalizeTone(""))
	assert.Equal(t, sitespec.ToneWarm, NormalizeTone("whimsical"))
}

func TestCTAText_PolishedUsesTitleCase(t *testing.T) {
	text := CTAText("book", sitespec.TonePolished, nil)
	for _, word := range strings.Fields(text) {
		assert.Equal(t, strings.ToUpper(word[:1]), word[:1])
	}
}
