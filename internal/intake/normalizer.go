// Package intake normalizes raw intake records: it recovers a business name
// from free text, infers an industry sub-type from the description, and
// brings the personality vector into canonical shape.
package intake

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"siteforge/internal/sitespec"
)

// FallbackBusinessName is returned when no extraction heuristic matches.
const FallbackBusinessName = "My Business"

var (
	calledNamedRe = regexp.MustCompile(`\b(?:[Cc]alled|[Nn]amed)\s+"?([A-Z][A-Za-z0-9'.-]*(?:\s+(?:[A-Z][A-Za-z0-9'.-]*|&)){0,3})"?`)
	possessiveRe  = regexp.MustCompile(`\b(?:[Mm]y|[Oo]ur)\s+(?:company|business|studio|shop|store|agency|firm|practice|brand|salon|restaurant|clinic)\s*,?\s+"?([A-Z][A-Za-z0-9'.-]*(?:\s+(?:[A-Z][A-Za-z0-9'.-]*|&)){0,3})"?`)
	capPhraseRe   = regexp.MustCompile(`^([A-Z][A-Za-z0-9&'-]+(?:\s+[A-Z][A-Za-z0-9&'-]+)?)`)
)

// Words that start sentences without naming anything.
var sentenceStarters = map[string]bool{
	"We": true, "I": true, "My": true, "Our": true, "The": true,
	"A": true, "An": true, "This": true, "It": true, "Hello": true,
	"Hi": true, "Welcome": true, "As": true, "For": true, "At": true,
}

// ExtractBusinessName recovers a business name from free-form intake text.
// It tries, in order: an explicit "called X" / "named X" pattern, a
// "my company X" possessive pattern, and finally the first capitalized
// phrase opening a sentence. It never fails; when nothing matches it
// returns FallbackBusinessName.
func ExtractBusinessName(description string) string {
	text := strings.TrimSpace(description)
	if text == "" {
		return FallbackBusinessName
	}

	if m := calledNamedRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := possessiveRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	for _, sentence := range splitSentences(text) {
		m := capPhraseRe.FindStringSubmatch(sentence)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		first := strings.Fields(candidate)[0]
		if sentenceStarters[first] {
			continue
		}
		return candidate
	}
	return FallbackBusinessName
}

func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

type subTypeRule struct {
	subType  string
	keywords []string
}

// Ordered most-specific first; the first rule with a keyword hit wins.
var subTypeRules = []subTypeRule{
	{"restaurant", []string{"restaurant", "trattoria", "bistro", "cafe", "coffee", "bakery", "pizzeria", "pizza", "menu", "cuisine", "catering", "diner", "eatery", "food truck"}},
	{"salon", []string{"salon", "barber", "barbershop", "hairdress", "hair styl", "stylist", "nails", "spa", "beauty", "grooming"}},
	{"fitness", []string{"gym", "fitness", "yoga", "pilates", "crossfit", "personal train", "workout", "martial arts"}},
	{"medical", []string{"clinic", "dental", "dentist", "doctor", "medical", "physiotherap", "chiropract", "pediatric", "veterinar"}},
	{"legal", []string{"law firm", "attorney", "lawyer", "legal", "paralegal", "litigation", "notary"}},
	{"realestate", []string{"real estate", "realtor", "realty", "property", "properties", "brokerage", "homes for sale"}},
	{"construction", []string{"construction", "contractor", "roofing", "plumbing", "electrician", "renovation", "remodel", "landscaping", "hvac"}},
	{"photography", []string{"photograph", "photo studio", "portrait", "wedding photo", "videograph"}},
	{"tech", []string{"software", "saas", "startup", "app development", "platform", "developer"}},
}

// InferSubType scans the description for industry keywords and returns the
// first matching sub-type. When nothing matches it returns siteType
// unchanged, so callers can always key lookups off the result.
func InferSubType(siteType, description string) string {
	lower := strings.ToLower(description)
	for _, rule := range subTypeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.subType
			}
		}
	}
	return siteType
}

// Normalize fills the gaps an intake record is allowed to arrive with: a
// missing session ID, a missing business name, and a personality vector of
// the wrong shape. It returns the normalized record plus advisory notes
// describing every adjustment made.
func Normalize(rec sitespec.IntakeRecord) (sitespec.IntakeRecord, []string) {
	notes := make([]string, 0, 3)

	if strings.TrimSpace(rec.SessionID) == "" {
		rec.SessionID = uuid.NewString()
		notes = append(notes, "assigned new session id")
	}
	if strings.TrimSpace(rec.SiteType) == "" {
		rec.SiteType = sitespec.SiteBusiness
		notes = append(notes, "empty siteType defaulted to business")
	}
	if strings.TrimSpace(rec.Goal) == "" {
		rec.Goal = sitespec.GoalContact
		notes = append(notes, "empty goal defaulted to contact")
	}
	if strings.TrimSpace(rec.BusinessName) == "" {
		rec.BusinessName = ExtractBusinessName(rec.Description)
		notes = append(notes, fmt.Sprintf("business name recovered from description: %q", rec.BusinessName))
	}

	normalized, adjusted := rec.Personality.Normalized()
	rec.Personality = normalized
	if adjusted {
		notes = append(notes, "personality vector clamped/padded to 6 axes in [0,1]")
	}
	return rec, notes
}
