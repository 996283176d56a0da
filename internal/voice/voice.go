// Package voice produces headline and call-to-action copy keyed by a voice
// tone. Three registers exist: warm (conversational, contractions), polished
// (formal title case), and direct (short imperative).
package voice

import (
	"fmt"
	"strings"

	"siteforge/internal/sitespec"
)

const defaultKey = "default"

var headlineTables = map[string]map[string]func(name string) string{
	sitespec.ToneWarm: {
		sitespec.SiteBusiness:    func(n string) string { return fmt.Sprintf("We're %s, and we'd love to help", n) },
		sitespec.SiteBooking:     func(n string) string { return fmt.Sprintf("You're going to love your visit to %s", n) },
		sitespec.SiteEcommerce:   func(n string) string { return fmt.Sprintf("Welcome to %s — come on in", n) },
		sitespec.SitePhotography: func(n string) string { return fmt.Sprintf("Let's make something beautiful at %s", n) },
		sitespec.SiteNonprofit:   func(n string) string { return fmt.Sprintf("You belong here at %s", n) },
		defaultKey:               func(n string) string { return fmt.Sprintf("Welcome — we're %s", n) },
	},
	sitespec.TonePolished: {
		sitespec.SiteBusiness:    func(n string) string { return fmt.Sprintf("%s: Excellence in Every Engagement", n) },
		sitespec.SiteBooking:     func(n string) string { return fmt.Sprintf("An Exceptional Experience Awaits at %s", n) },
		sitespec.SiteEcommerce:   func(n string) string { return fmt.Sprintf("The %s Collection", n) },
		sitespec.SitePhotography: func(n string) string { return fmt.Sprintf("%s: Photography of Distinction", n) },
		sitespec.SiteNonprofit:   func(n string) string { return fmt.Sprintf("%s: A Commitment to Lasting Change", n) },
		defaultKey:               func(n string) string { return fmt.Sprintf("Introducing %s", n) },
	},
	sitespec.ToneDirect: {
		sitespec.SiteBusiness:    func(n string) string { return fmt.Sprintf("%s. Get it done.", n) },
		sitespec.SiteBooking:     func(n string) string { return fmt.Sprintf("%s. Book now.", n) },
		sitespec.SiteEcommerce:   func(n string) string { return fmt.Sprintf("%s. Shop today.", n) },
		sitespec.SitePhotography: func(n string) string { return fmt.Sprintf("%s. Pictures that work.", n) },
		sitespec.SiteNonprofit:   func(n string) string { return fmt.Sprintf("%s. Join the cause.", n) },
		defaultKey:               func(n string) string { return fmt.Sprintf("%s. Start here.", n) },
	},
}

var ctaTables = map[string]map[string]string{
	sitespec.ToneWarm: {
		sitespec.GoalContact: "Let's chat — we don't bite",
		sitespec.GoalBook:    "Grab a time that works for you",
		sitespec.GoalBuy:     "Find something you'll love",
		sitespec.GoalSignup:  "Come join us, it's free",
		sitespec.GoalDonate:  "Give what you can — it all helps",
		sitespec.GoalHire:    "Let's work together",
		sitespec.GoalConvert: "Ready when you are",
		sitespec.GoalLearn:   "Dive in and explore",
		defaultKey:           "Let's get started",
	},
	sitespec.TonePolished: {
		sitespec.GoalContact: "Request a Consultation",
		sitespec.GoalBook:    "Schedule Your Appointment",
		sitespec.GoalBuy:     "Browse the Collection",
		sitespec.GoalSignup:  "Become a Member",
		sitespec.GoalDonate:  "Make a Contribution",
		sitespec.GoalHire:    "Discuss Your Project",
		sitespec.GoalConvert: "Begin Your Journey",
		sitespec.GoalLearn:   "Explore Our Programs",
		defaultKey:           "Learn More",
	},
	sitespec.ToneDirect: {
		sitespec.GoalContact: "Contact us",
		sitespec.GoalBook:    "Book now",
		sitespec.GoalBuy:     "Buy now",
		sitespec.GoalSignup:  "Sign up",
		sitespec.GoalDonate:  "Donate",
		sitespec.GoalHire:    "Hire us",
		sitespec.GoalConvert: "Get started",
		sitespec.GoalLearn:   "Start learning",
		defaultKey:           "Go",
	},
}

// Anti-reference tags that conflict with sales-forward CTA copy for a goal.
// When one is present the alternate phrasing is used instead.
var ctaConflicts = map[string][]string{
	sitespec.GoalBuy:     {"salesy", "pushy", "aggressive", "hard-sell"},
	sitespec.GoalConvert: {"salesy", "pushy", "aggressive", "hard-sell"},
	sitespec.GoalSignup:  {"salesy", "spammy", "pushy"},
	sitespec.GoalDonate:  {"guilt-trip", "pushy", "desperate"},
}

var ctaAlternates = map[string]map[string]string{
	sitespec.ToneWarm: {
		sitespec.GoalBuy:     "Take a look around",
		sitespec.GoalConvert: "See if we're a fit",
		sitespec.GoalSignup:  "Stay in the loop",
		sitespec.GoalDonate:  "Learn where help is needed",
	},
	sitespec.TonePolished: {
		sitespec.GoalBuy:     "View the Collection",
		sitespec.GoalConvert: "Discover Our Approach",
		sitespec.GoalSignup:  "Receive Occasional Updates",
		sitespec.GoalDonate:  "Explore Ways to Help",
	},
	sitespec.ToneDirect: {
		sitespec.GoalBuy:     "See products",
		sitespec.GoalConvert: "See how it works",
		sitespec.GoalSignup:  "Get updates",
		sitespec.GoalDonate:  "See the impact",
	},
}

// NormalizeTone maps an arbitrary voice-profile string onto one of the three
// supported tones, defaulting to warm.
func NormalizeTone(tone string) string {
	switch strings.ToLower(strings.TrimSpace(tone)) {
	case sitespec.TonePolished, "formal", "professional":
		return sitespec.TonePolished
	case sitespec.ToneDirect, "bold", "punchy":
		return sitespec.ToneDirect
	default:
		return sitespec.ToneWarm
	}
}

// Headline returns the tone-keyed hero headline for a site type. Unknown
// site types use the tone's default entry; the result is never empty.
func Headline(businessName, siteType, tone string) string {
	table, ok := headlineTables[NormalizeTone(tone)]
	if !ok {
		table = headlineTables[sitespec.ToneWarm]
	}
	fn, ok := table[siteType]
	if !ok {
		fn = table[defaultKey]
	}
	return fn(businessName)
}

// CTAText returns the tone-keyed call-to-action label for a goal. When
// antiReferences contains a tag that conflicts with the goal's sales
// register, the alternate phrasing is used; the result differs from the
// unflagged case and is never empty.
func CTAText(goal, tone string, antiReferences []string) string {
	t := NormalizeTone(tone)
	if hasConflict(goal, antiReferences) {
		if alt, ok := ctaAlternates[t][goal]; ok {
			return alt
		}
	}
	table := ctaTables[t]
	if text, ok := table[goal]; ok {
		return text
	}
	return table[defaultKey]
}

func hasConflict(goal string, antiReferences []string) bool {
	flags, ok := ctaConflicts[goal]
	if !ok {
		return false
	}
	for _, ref := range antiReferences {
		ref = strings.ToLower(strings.TrimSpace(ref))
		for _, f := range flags {
			if ref == f {
				return true
			}
		}
	}
	return false
}
