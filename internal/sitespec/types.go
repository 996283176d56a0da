package sitespec

import (
	"fmt"
	"time"
)

// Personality axis indices. Each axis is a value in [0,1] where 0 means the
// left pole and 1 the right pole.
const (
	AxisDensity = 0 // minimal <-> rich
	AxisTone    = 1 // playful <-> serious
	AxisWarmth  = 2 // warm <-> cool
	AxisWeight  = 3 // light <-> bold
	AxisEra     = 4 // classic <-> modern
	AxisEnergy  = 5 // calm <-> dynamic

	VectorLen = 6
)

// Site categories understood by the composer and content catalog.
const (
	SiteBusiness    = "business"
	SiteBooking     = "booking"
	SiteEcommerce   = "ecommerce"
	SiteEducational = "educational"
	SiteNonprofit   = "nonprofit"
	SitePersonal    = "personal"
	SiteLanding     = "landing"
	SiteEvent       = "event"
	SitePhotography = "photography"
	SitePortfolio   = "portfolio"
	SiteBlog        = "blog"
)

// Conversion goals.
const (
	GoalContact = "contact"
	GoalBook    = "book"
	GoalBuy     = "buy"
	GoalSignup  = "signup"
	GoalDonate  = "donate"
	GoalHire    = "hire"
	GoalConvert = "convert"
	GoalLearn   = "learn"
)

// Voice tones.
const (
	ToneWarm     = "warm"
	TonePolished = "polished"
	ToneDirect   = "direct"
)

// Component catalog identifiers.
const (
	CompNavigation   = "navigation"
	CompHeroCentered = "hero-centered"
	CompHeroSplit    = "hero-split"
	CompAbout        = "content-about"
	CompFeatures     = "features-grid"
	CompStats        = "content-stats"
	CompServices     = "commerce-services"
	CompTeam         = "content-team"
	CompTrustLogos   = "trust-logos"
	CompTestimonials = "content-testimonials"
	CompFAQ          = "content-accordion"
	CompCTABanner    = "cta-banner"
	CompContactForm  = "contact-form"
	CompFooter       = "footer"
)

// Provenance markers for Metadata.Method.
const (
	MethodAI            = "ai"
	MethodDeterministic = "deterministic"
)

// PersonalityVector is a 6-axis encoding of brand tone. See the Axis*
// constants for the fixed axis semantics.
type PersonalityVector []float64

// Axis returns the value for axis i, or 0.5 when the vector is short.
func (v PersonalityVector) Axis(i int) float64 {
	if i < 0 || i >= len(v) {
		return 0.5
	}
	return v[i]
}

// Normalized clamps every axis to [0,1], replaces NaN with 0.5, and pads or
// truncates to exactly 6 axes. The second return reports whether any
// adjustment was made.
func (v PersonalityVector) Normalized() (PersonalityVector, bool) {
	out := make(PersonalityVector, VectorLen)
	adjusted := len(v) != VectorLen
	for i := 0; i < VectorLen; i++ {
		if i >= len(v) {
			out[i] = 0.5
			continue
		}
		val := v[i]
		switch {
		case val != val: // NaN
			out[i] = 0.5
			adjusted = true
		case val < 0:
			out[i] = 0
			adjusted = true
		case val > 1:
			out[i] = 1
			adjusted = true
		default:
			out[i] = val
		}
	}
	return out, adjusted
}

// IntakeRecord is the normalized intake handed to the pipeline by the
// (external) collection flow.
type IntakeRecord struct {
	SessionID    string            `json:"sessionId" yaml:"sessionId"`
	SiteType     string            `json:"siteType" yaml:"siteType"`
	Goal         string            `json:"goal" yaml:"goal"`
	BusinessName string            `json:"businessName" yaml:"businessName"`
	Description  string            `json:"description" yaml:"description"`
	Personality  PersonalityVector `json:"personality" yaml:"personality"`
	Brand        BrandCharacter    `json:"brand" yaml:"brand"`
}

// BrandCharacter carries the optional brand-character signals. All fields
// pass through to the document unchanged.
type BrandCharacter struct {
	EmotionalGoals   []string `json:"emotionalGoals,omitempty" yaml:"emotionalGoals"`
	VoiceProfile     string   `json:"voiceProfile,omitempty" yaml:"voiceProfile"`
	BrandArchetype   string   `json:"brandArchetype,omitempty" yaml:"brandArchetype"`
	AntiReferences   []string `json:"antiReferences,omitempty" yaml:"antiReferences"`
	NarrativePrompts []string `json:"narrativePrompts,omitempty" yaml:"narrativePrompts"`
}

// ComponentPlacement is one structural block instance on a page. Order is
// the single source of render sequence; downstream consumers must not rely
// on slice position.
type ComponentPlacement struct {
	ComponentID  string         `json:"componentId"`
	Variant      string         `json:"variant"`
	Order        int            `json:"order"`
	Content      map[string]any `json:"content"`
	VisualConfig map[string]any `json:"visualConfig,omitempty"`
}

// Ref returns the stable reference used by validation warnings and fix
// ledger entries, e.g. "content-stats[4]".
func (p ComponentPlacement) Ref() string {
	return fmt.Sprintf("%s[%d]", p.ComponentID, p.Order)
}

// PageSpec is one page of the site.
type PageSpec struct {
	Slug       string               `json:"slug"`
	Title      string               `json:"title"`
	Purpose    string               `json:"purpose"`
	Components []ComponentPlacement `json:"components"`
}

// Metadata records when and by which path a document was produced.
type Metadata struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Method      string    `json:"method"`
}

// SiteIntentDocument is the root artifact: a fully specified, render-ready
// description of a site.
type SiteIntentDocument struct {
	SessionID      string            `json:"sessionId"`
	SiteType       string            `json:"siteType"`
	ConversionGoal string            `json:"conversionGoal"`
	Personality    PersonalityVector `json:"personalityVector"`
	BusinessName   string            `json:"businessName"`
	Tagline        string            `json:"tagline"`
	Pages          []PageSpec        `json:"pages"`
	Metadata       Metadata          `json:"metadata"`
	Brand          BrandCharacter    `json:"brand"`
}

// Placements iterates every placement across all pages, in page order.
func (d *SiteIntentDocument) Placements() []ComponentPlacement {
	out := make([]ComponentPlacement, 0, 16)
	for _, p := range d.Pages {
		out = append(out, p.Components...)
	}
	return out
}

// ValidationWarning is one advisory finding from the rule engine. Severity
// "error" means definitely wrong, "warning" means probably generic. Neither
// blocks assembly.
type ValidationWarning struct {
	Severity     string `json:"severity"`
	ComponentRef string `json:"componentRef,omitempty"`
	Field        string `json:"field,omitempty"`
	Message      string `json:"message"`
	Suggestion   string `json:"suggestion,omitempty"`
}

// AutoFix is one ledger entry recording a substitution the fixer made.
type AutoFix struct {
	ComponentRef string `json:"componentRef"`
	Field        string `json:"field"`
	Original     string `json:"original"`
	Replacement  string `json:"replacement"`
	Rule         string `json:"rule"`
}
