// Package catalog holds the canned industry content the deterministic
// composer assembles pages from. The catalog is a plain value so tests can
// substitute a reduced one; Default returns the full production tables.
package catalog

// Catalog maps site categories to structural content. The per-block tables
// (Stats, Services, Teams, TrustLogos, FAQs) are deliberately independent of
// the main Industries table: not every block applies to every category.
type Catalog struct {
	Industries map[string]Industry
	Stats      map[string][]Stat
	Services   map[string][]Service
	Teams      map[string][]TeamMember
	TrustLogos map[string][]string
	FAQs       map[string][]FAQItem
}

// Industry is the per-category core content bundle.
type Industry struct {
	Taglines       map[string]string // goal -> tagline
	DefaultTagline string
	Headline       func(name string) string
	Features       []Feature
	Testimonials   []Testimonial
	AboutBody      func(name, description string) string
}

type Feature struct {
	Title       string
	Description string
	Icon        string
}

type Testimonial struct {
	Quote  string
	Author string
	Role   string
	Rating int
}

type Stat struct {
	Label  string
	Value  float64
	Suffix string
}

type Service struct {
	Name        string
	Description string
	Price       string
	Duration    string
}

type TeamMember struct {
	Name string
	Role string
	Bio  string
}

type FAQItem struct {
	Question string
	Answer   string
}

// fallbackKey is the entry every lookup falls back to for unknown site
// types. It must exist in every table of a well-formed catalog.
const fallbackKey = "business"

// Industry resolves the core content bundle for a site type, falling back
// to the business entry. Callers never receive a zero Industry from a
// catalog built by Default.
func (c *Catalog) Industry(siteType string) Industry {
	if ind, ok := c.Industries[siteType]; ok {
		return ind
	}
	return c.Industries[fallbackKey]
}

// Tagline resolves the goal-specific tagline for a site type, falling back
// first to the industry's default tagline.
func (c *Catalog) Tagline(siteType, goal string) string {
	ind := c.Industry(siteType)
	if t, ok := ind.Taglines[goal]; ok {
		return t
	}
	return ind.DefaultTagline
}

// StatsFor resolves the stats block content for a site type.
func (c *Catalog) StatsFor(siteType string) []Stat {
	if s, ok := c.Stats[siteType]; ok {
		return s
	}
	return c.Stats[fallbackKey]
}

// ServicesFor resolves the commerce/services block content.
func (c *Catalog) ServicesFor(siteType string) []Service {
	if s, ok := c.Services[siteType]; ok {
		return s
	}
	return c.Services[fallbackKey]
}

// TeamFor resolves the team roster for a site type.
func (c *Catalog) TeamFor(siteType string) []TeamMember {
	if t, ok := c.Teams[siteType]; ok {
		return t
	}
	return c.Teams[fallbackKey]
}

// TrustLogosFor resolves the trust-logo strip entries.
func (c *Catalog) TrustLogosFor(siteType string) []string {
	if l, ok := c.TrustLogos[siteType]; ok {
		return l
	}
	return c.TrustLogos[fallbackKey]
}

// FAQFor resolves the FAQ set for a site type.
func (c *Catalog) FAQFor(siteType string) []FAQItem {
	if f, ok := c.FAQs[siteType]; ok {
		return f
	}
	return c.FAQs[fallbackKey]
}
