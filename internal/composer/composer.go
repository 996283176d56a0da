// Package composer holds the decision core: it turns a normalized intake
// record into a fully specified site intent document. The build sequence is
// fixed; each step has a gating predicate on site type, goal, or a
// personality axis, and a variant selector thresholding one or more axes.
//
// Threshold ties resolve to the first (low) branch: a step takes its second
// branch only when the axis value is strictly greater than the threshold.
package composer

import (
	"log"
	"time"

	"siteforge/internal/catalog"
	"siteforge/internal/sitespec"
	"siteforge/internal/voice"
)

// Composer assembles deterministic site intent documents from a content
// catalog. The zero value is not usable; call New.
type Composer struct {
	catalog *catalog.Catalog
	logger  *log.Logger
	now     func() time.Time
}

// Option configures a Composer.
type Option func(*Composer)

// WithLogger directs advisory warnings (e.g. personality vector clamping)
// to the given logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Composer) { c.logger = l }
}

// WithClock overrides the timestamp source, for byte-stable test output.
func WithClock(now func() time.Time) Option {
	return func(c *Composer) { c.now = now }
}

// New builds a Composer over the given catalog. A nil catalog uses the
// default production tables.
func New(cat *catalog.Catalog, opts ...Option) *Composer {
	if cat == nil {
		cat = catalog.Default()
	}
	c := &Composer{catalog: cat, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Build produces the landing-page site intent document for an intake
// record. It never fails: unknown site types and goals resolve through the
// catalog's fallback entries, and a malformed personality vector is clamped
// and padded with a logged warning.
func (c *Composer) Build(rec sitespec.IntakeRecord) *sitespec.SiteIntentDocument {
	vec, adjusted := rec.Personality.Normalized()
	if adjusted && c.logger != nil {
		c.logger.Printf("session %s: personality vector adjusted to canonical shape", rec.SessionID)
	}

	name := rec.BusinessName
	tone := voice.NormalizeTone(rec.Brand.VoiceProfile)
	ind := c.catalog.Industry(rec.SiteType)
	tagline := c.catalog.Tagline(rec.SiteType, rec.Goal)
	ctaText := voice.CTAText(rec.Goal, tone, rec.Brand.AntiReferences)

	b := &pageBuilder{page: sitespec.PageSpec{
		Slug:    "home",
		Title:   name,
		Purpose: "landing",
	}}

	b.add(sitespec.CompNavigation, "standard", map[string]any{
		"logoText": name,
		"links": []any{
			navLink("About", "#about"),
			navLink("Features", "#features"),
			navLink("Contact", "#contact"),
		},
	}, nil)

	c.addHero(b, rec, vec, name, tagline, ctaText, tone)

	b.add(sitespec.CompAbout, "standard", map[string]any{
		"title": "About " + name,
		"body":  ind.AboutBody(name, rec.Description),
	}, nil)

	b.add(sitespec.CompFeatures, "three-column", map[string]any{
		"title": "What sets us apart",
		"items": featureItems(ind.Features),
	}, nil)

	if gateStats[rec.SiteType] {
		b.add(sitespec.CompStats, pick(vec.Axis(sitespec.AxisWeight), 0.6, "cards", "animated-counter"), map[string]any{
			"items": statItems(c.catalog.StatsFor(rec.SiteType)),
		}, nil)
	}

	if gateServices[rec.SiteType] {
		b.add(sitespec.CompServices, pick(vec.Axis(sitespec.AxisWeight), 0.5, "list", "card-grid"), map[string]any{
			"title": "Services & Pricing",
			"items": serviceItems(c.catalog.ServicesFor(rec.SiteType)),
		}, nil)
	}

	if gateTeam[rec.SiteType] {
		b.add(sitespec.CompTeam, pick(vec.Axis(sitespec.AxisDensity), 0.5, "grid", "cards"), map[string]any{
			"title":   "Meet the team",
			"members": teamItems(c.catalog.TeamFor(rec.SiteType)),
		}, nil)
	}

	if gateTrustLogos[rec.SiteType] {
		b.add(sitespec.CompTrustLogos, pick(vec.Axis(sitespec.AxisEra), 0.5, "static-row", "scrolling-marquee"), map[string]any{
			"logos": stringItems(c.catalog.TrustLogosFor(rec.SiteType)),
		}, nil)
	}

	b.add(sitespec.CompTestimonials, "carousel", map[string]any{
		"title": "What people say",
		"items": testimonialItems(ind.Testimonials),
	}, nil)

	if gateFAQ[rec.SiteType] {
		b.add(sitespec.CompFAQ, "faq", map[string]any{
			"title": "Frequently asked questions",
			"items": faqItems(c.catalog.FAQFor(rec.SiteType)),
		}, nil)
	}

	b.add(sitespec.CompCTABanner, pick(vec.Axis(sitespec.AxisWeight), 0.5, "soft", "bold"), map[string]any{
		"headline": tagline,
		"ctaText":  ctaText,
		"ctaLink":  "#contact",
	}, nil)

	if gateContactForm[rec.Goal] {
		b.add(sitespec.CompContactForm, "simple", map[string]any{
			"title":       "Get in touch",
			"submitLabel": ctaText,
			"fields":      stringItems([]string{"name", "email", "message"}),
		}, nil)
	}

	b.add(sitespec.CompFooter, "standard", map[string]any{
		"logoText": name,
		"tagline":  tagline,
		"links": []any{
			navLink("About", "#about"),
			navLink("Contact", "#contact"),
			navLink("Privacy", "/privacy"),
		},
	}, nil)

	return &sitespec.SiteIntentDocument{
		SessionID:      rec.SessionID,
		SiteType:       rec.SiteType,
		ConversionGoal: rec.Goal,
		Personality:    vec,
		BusinessName:   name,
		Tagline:        tagline,
		Pages:          []sitespec.PageSpec{b.page},
		Metadata: sitespec.Metadata{
			GeneratedAt: c.now().UTC(),
			Method:      sitespec.MethodDeterministic,
		},
		Brand: rec.Brand,
	}
}

// addHero picks the hero sub-type from the warmth axis, the background
// treatment from the density axis, and (for the split layout) the image
// position from the era axis.
func (c *Composer) addHero(b *pageBuilder, rec sitespec.IntakeRecord, vec sitespec.PersonalityVector, name, tagline, ctaText, tone string) {
	content := map[string]any{
		"headline":    voice.Headline(name, rec.SiteType, tone),
		"subheadline": tagline,
		"ctaText":     ctaText,
		"ctaLink":     "#contact",
	}
	background := pick(vec.Axis(sitespec.AxisDensity), 0.5, "minimal", "gradient")

	if vec.Axis(sitespec.AxisWarmth) > 0.5 {
		b.add(sitespec.CompHeroSplit,
			pick(vec.Axis(sitespec.AxisEra), 0.5, "image-right", "image-left"),
			content,
			map[string]any{"background": background})
		return
	}
	b.add(sitespec.CompHeroCentered, background, content, nil)
}

// Gating tables. A site type or goal absent from a table means the block is
// omitted.
var (
	gateStats = map[string]bool{
		sitespec.SiteBusiness:    true,
		sitespec.SiteBooking:     true,
		sitespec.SiteEcommerce:   true,
		sitespec.SiteEducational: true,
		sitespec.SiteNonprofit:   true,
	}
	gateServices = map[string]bool{
		sitespec.SiteBooking:   true,
		sitespec.SiteEcommerce: true,
	}
	gateTeam = map[string]bool{
		sitespec.SiteBusiness: true,
		sitespec.SiteBooking:  true,
		sitespec.SitePersonal: true,
	}
	gateTrustLogos = map[string]bool{
		sitespec.SiteBusiness:    true,
		sitespec.SiteEcommerce:   true,
		sitespec.SiteEducational: true,
		sitespec.SiteLanding:     true,
	}
	gateFAQ = map[string]bool{
		sitespec.SiteBooking:     true,
		sitespec.SiteEcommerce:   true,
		sitespec.SiteEducational: true,
		sitespec.SiteEvent:       true,
		sitespec.SiteNonprofit:   true,
	}
	gateContactForm = map[string]bool{
		sitespec.GoalContact: true,
		sitespec.GoalBook:    true,
		sitespec.GoalConvert: true,
		sitespec.GoalHire:    true,
	}
)

// pick thresholds a personality axis: values at or below the threshold take
// the low branch.
func pick(v, threshold float64, low, high string) string {
	if v > threshold {
		return high
	}
	return low
}

// pageBuilder appends placements with a strictly increasing order counter,
// the single source of render sequence.
type pageBuilder struct {
	page sitespec.PageSpec
	next int
}

func (b *pageBuilder) add(componentID, variant string, content, visual map[string]any) {
	b.page.Components = append(b.page.Components, sitespec.ComponentPlacement{
		ComponentID:  componentID,
		Variant:      variant,
		Order:        b.next,
		Content:      content,
		VisualConfig: visual,
	})
	b.next++
}

func navLink(label, target string) map[string]any {
	return map[string]any{"label": label, "target": target}
}

func featureItems(in []catalog.Feature) []any {
	out := make([]any, 0, len(in))
	for _, f := range in {
		out = append(out, map[string]any{
			"title":       f.Title,
			"description": f.Description,
			"icon":        f.Icon,
		})
	}
	return out
}

func testimonialItems(in []catalog.Testimonial) []any {
	out := make([]any, 0, len(in))
	for _, t := range in {
		out = append(out, map[string]any{
			"quote":  t.Quote,
			"author": t.Author,
			"role":   t.Role,
			"rating": t.Rating,
		})
	}
	return out
}

func statItems(in []catalog.Stat) []any {
	out := make([]any, 0, len(in))
	for _, s := range in {
		out = append(out, map[string]any{
			"label":  s.Label,
			"value":  s.Value,
			"suffix": s.Suffix,
		})
	}
	return out
}

func serviceItems(in []catalog.Service) []any {
	out := make([]any, 0, len(in))
	for _, s := range in {
		item := map[string]any{
			"name":        s.Name,
			"description": s.Description,
			"price":       s.Price,
		}
		if s.Duration != "" {
			item["duration"] = s.Duration
		}
		out = append(out, item)
	}
	return out
}

func teamItems(in []catalog.TeamMember) []any {
	out := make([]any, 0, len(in))
	for _, m := range in {
		out = append(out, map[string]any{
			"name": m.Name,
			"role": m.Role,
			"bio":  m.Bio,
		})
	}
	return out
}

func faqItems(in []catalog.FAQItem) []any {
	out := make([]any, 0, len(in))
	for _, f := range in {
		out = append(out, map[string]any{
			"question": f.Question,
			"answer":   f.Answer,
		})
	}
	return out
}

func stringItems(in []string) []any {
	out := make([]any, 0, len(in))
	for _, s := range in {
		out = append(out, s)
	}
	return out
}
