package catalog

import (
	"fmt"
	"strings"

	"siteforge/internal/sitespec"
)

// Default returns the full production content tables. The returned value is
// freshly built on every call so callers may tweak it without affecting
// other sessions.
func Default() *Catalog {
	return &Catalog{
		Industries: defaultIndustries(),
		Stats:      defaultStats(),
		Services:   defaultServices(),
		Teams:      defaultTeams(),
		TrustLogos: defaultTrustLogos(),
		FAQs:       defaultFAQs(),
	}
}

func aboutWithDescription(fallback string) func(name, description string) string {
	return func(name, description string) string {
		desc := strings.TrimSpace(description)
		if desc == "" {
			return fmt.Sprintf("%s %s", name, fallback)
		}
		return fmt.Sprintf("%s. At %s, every detail matters to us.", strings.TrimRight(desc, "."), name)
	}
}

func defaultIndustries() map[string]Industry {
	return map[string]Industry{
		sitespec.SiteBusiness: {
			Taglines: map[string]string{
				sitespec.GoalContact: "Let's build something great together",
				sitespec.GoalBook:    "Schedule a consultation today",
				sitespec.GoalHire:    "Expertise you can count on",
				sitespec.GoalConvert: "Results that speak for themselves",
			},
			DefaultTagline: "Professional service, personal attention",
			Headline: func(name string) string {
				return fmt.Sprintf("%s — trusted by businesses like yours", name)
			},
			Features: []Feature{
				{Title: "Proven Expertise", Description: "Over a decade of hands-on experience across industries.", Icon: "award"},
				{Title: "Tailored Approach", Description: "Every engagement starts with understanding your goals.", Icon: "target"},
				{Title: "Responsive Support", Description: "A real person answers, usually within the hour.", Icon: "headset"},
			},
			Testimonials: []Testimonial{
				{Quote: "They understood our needs from day one and delivered ahead of schedule.", Author: "Dana Whitfield", Role: "Operations Director", Rating: 5},
				{Quote: "Straightforward, honest, and exceptionally good at what they do.", Author: "Marcus Lee", Role: "Founder, Brightline Co.", Rating: 5},
			},
			AboutBody: aboutWithDescription("was founded on a simple idea: do excellent work and treat people well."),
		},
		sitespec.SiteBooking: {
			Taglines: map[string]string{
				sitespec.GoalBook:    "Book your appointment in seconds",
				sitespec.GoalContact: "Questions? We're easy to reach",
				sitespec.GoalConvert: "Your next visit starts here",
			},
			DefaultTagline: "Easy online booking, exceptional service",
			Headline: func(name string) string {
				return fmt.Sprintf("Reserve your spot at %s", name)
			},
			Features: []Feature{
				{Title: "Instant Confirmation", Description: "Pick a time and you're booked — no phone tag.", Icon: "calendar-check"},
				{Title: "Flexible Rescheduling", Description: "Plans change. Move your appointment with one tap.", Icon: "refresh"},
				{Title: "Reminders Included", Description: "We'll nudge you before your visit so you never miss it.", Icon: "bell"},
			},
			Testimonials: []Testimonial{
				{Quote: "Booking took thirty seconds and the visit was even better.", Author: "Priya Nair", Role: "Regular client", Rating: 5},
				{Quote: "The easiest appointment system I've ever used.", Author: "Tom Okafor", Role: "First-time visitor", Rating: 5},
			},
			AboutBody: aboutWithDescription("makes booking effortless so you can focus on enjoying the service."),
		},
		sitespec.SiteEcommerce: {
			Taglines: map[string]string{
				sitespec.GoalBuy:     "Shop the collection",
				sitespec.GoalSignup:  "Join for early access and offers",
				sitespec.GoalConvert: "Quality worth coming back for",
			},
			DefaultTagline: "Carefully made, fairly priced",
			Headline: func(name string) string {
				return fmt.Sprintf("Discover what's new at %s", name)
			},
			Features: []Feature{
				{Title: "Free Shipping", Description: "On every order over $50, no code needed.", Icon: "truck"},
				{Title: "Easy Returns", Description: "30 days, no questions, prepaid label included.", Icon: "rotate-left"},
				{Title: "Secure Checkout", Description: "Your payment details never touch our servers.", Icon: "lock"},
			},
			Testimonials: []Testimonial{
				{Quote: "The quality exceeded the photos. I've already ordered twice more.", Author: "Elena Rossi", Role: "Verified buyer", Rating: 5},
				{Quote: "Fast shipping and the packaging was a delight.", Author: "James Park", Role: "Verified buyer", Rating: 4},
			},
			AboutBody: aboutWithDescription("started with a small batch and a big standard for quality."),
		},
		sitespec.SiteEducational: {
			Taglines: map[string]string{
				sitespec.GoalSignup:  "Enroll today, learn for life",
				sitespec.GoalLearn:   "Knowledge that moves you forward",
				sitespec.GoalContact: "Talk to an advisor",
			},
			DefaultTagline: "Learning designed around you",
			Headline: func(name string) string {
				return fmt.Sprintf("Start learning with %s", name)
			},
			Features: []Feature{
				{Title: "Expert Instructors", Description: "Learn from practitioners, not just lecturers.", Icon: "graduation-cap"},
				{Title: "Flexible Schedule", Description: "Evening, weekend, and self-paced options.", Icon: "clock"},
				{Title: "Real Outcomes", Description: "Career support built into every program.", Icon: "chart-line"},
			},
			Testimonials: []Testimonial{
				{Quote: "I switched careers within six months of finishing the program.", Author: "Aisha Brown", Role: "Graduate", Rating: 5},
				{Quote: "The instructors actually care whether you understand.", Author: "Leo Martins", Role: "Current student", Rating: 5},
			},
			AboutBody: aboutWithDescription("believes great teaching changes lives."),
		},
		sitespec.SiteNonprofit: {
			Taglines: map[string]string{
				sitespec.GoalDonate:  "Your support changes lives",
				sitespec.GoalSignup:  "Join the movement",
				sitespec.GoalContact: "Partner with us",
			},
			DefaultTagline: "Together we can do more",
			Headline: func(name string) string {
				return fmt.Sprintf("%s — making impact visible", name)
			},
			Features: []Feature{
				{Title: "Transparent Impact", Description: "See exactly where every dollar goes.", Icon: "eye"},
				{Title: "Local Roots", Description: "Programs designed with the communities they serve.", Icon: "map-pin"},
				{Title: "Volunteer Friendly", Description: "Give time, skills, or funds — every bit counts.", Icon: "hand-heart"},
			},
			Testimonials: []Testimonial{
				{Quote: "Volunteering here is the best decision I've made this year.", Author: "Sofia Delgado", Role: "Volunteer", Rating: 5},
				{Quote: "They report back on every campaign. That transparency earned my trust.", Author: "Robert Chen", Role: "Monthly donor", Rating: 5},
			},
			AboutBody: aboutWithDescription("exists to turn generosity into measurable change."),
		},
		sitespec.SitePersonal: {
			Taglines: map[string]string{
				sitespec.GoalHire:    "Available for select projects",
				sitespec.GoalContact: "Let's talk",
			},
			DefaultTagline: "Work worth sharing",
			Headline: func(name string) string {
				return fmt.Sprintf("Hi, I'm %s", name)
			},
			Features: []Feature{
				{Title: "Selected Work", Description: "A few projects I'm proud of, with the stories behind them.", Icon: "folder"},
				{Title: "How I Work", Description: "Small scope, fast feedback, honest timelines.", Icon: "workflow"},
				{Title: "Beyond the Desk", Description: "Talks, writing, and side projects.", Icon: "mic"},
			},
			Testimonials: []Testimonial{
				{Quote: "Rare combination of craft and communication.", Author: "Hannah Vogel", Role: "Product Lead", Rating: 5},
				{Quote: "Delivered exactly what we needed, then made it better.", Author: "Dev Patel", Role: "Startup founder", Rating: 5},
			},
			AboutBody: aboutWithDescription("does focused work for people who care about the details."),
		},
		sitespec.SiteLanding: {
			Taglines: map[string]string{
				sitespec.GoalSignup:  "Be first in line",
				sitespec.GoalConvert: "One page. One decision.",
			},
			DefaultTagline: "Something new is coming",
			Headline: func(name string) string {
				return fmt.Sprintf("%s is almost here", name)
			},
			Features: []Feature{
				{Title: "Built for Speed", Description: "No bloat, no waiting, just the essentials.", Icon: "zap"},
				{Title: "Early Access", Description: "Founding members get lifetime perks.", Icon: "star"},
				{Title: "No Spam, Ever", Description: "One announcement email. That's it.", Icon: "shield"},
			},
			Testimonials: []Testimonial{
				{Quote: "Signed up in beta and never looked back.", Author: "Maya Lindqvist", Role: "Early adopter", Rating: 5},
			},
			AboutBody: aboutWithDescription("is launching soon — and it will be worth the wait."),
		},
		sitespec.SiteEvent: {
			Taglines: map[string]string{
				sitespec.GoalSignup:  "Save your seat",
				sitespec.GoalBook:    "Reserve your tickets",
				sitespec.GoalContact: "Sponsorship and press inquiries",
			},
			DefaultTagline: "An experience you'll remember",
			Headline: func(name string) string {
				return fmt.Sprintf("Join us at %s", name)
			},
			Features: []Feature{
				{Title: "World-Class Speakers", Description: "Voices you won't hear anywhere else.", Icon: "mic"},
				{Title: "Hands-On Sessions", Description: "Workshops built for doing, not just watching.", Icon: "wrench"},
				{Title: "After Hours", Description: "The conversations continue over dinner and music.", Icon: "music"},
			},
			Testimonials: []Testimonial{
				{Quote: "The best-organized event I've attended in years.", Author: "Nina Petrova", Role: "2024 attendee", Rating: 5},
				{Quote: "I left with three new collaborators and a notebook full of ideas.", Author: "Owen Gallagher", Role: "Speaker", Rating: 5},
			},
			AboutBody: aboutWithDescription("brings the right people into the same room."),
		},
		sitespec.SitePhotography: {
			Taglines: map[string]string{
				sitespec.GoalBook:    "Book your session",
				sitespec.GoalContact: "Tell me about your day",
				sitespec.GoalHire:    "Available for commissions",
			},
			DefaultTagline: "Moments, made permanent",
			Headline: func(name string) string {
				return fmt.Sprintf("%s — photography with intention", name)
			},
			Features: []Feature{
				{Title: "Editorial Eye", Description: "Images that look like they belong in print.", Icon: "camera"},
				{Title: "Relaxed Sessions", Description: "No stiff posing — just you, at your best.", Icon: "smile"},
				{Title: "Fast Turnaround", Description: "Full gallery delivered within two weeks.", Icon: "clock"},
			},
			Testimonials: []Testimonial{
				{Quote: "The photos made us cry. In the good way.", Author: "Claire & Sam", Role: "Wedding clients", Rating: 5},
				{Quote: "Somehow made a corporate headshot feel human.", Author: "Victor Huang", Role: "Portrait client", Rating: 5},
			},
			AboutBody: aboutWithDescription("tells stories one frame at a time."),
		},
		sitespec.SitePortfolio: {
			Taglines: map[string]string{
				sitespec.GoalHire:    "Open to new engagements",
				sitespec.GoalContact: "Start a conversation",
			},
			DefaultTagline: "Selected work, honest process",
			Headline: func(name string) string {
				return fmt.Sprintf("%s — design and direction", name)
			},
			Features: []Feature{
				{Title: "Case Studies", Description: "The thinking behind the work, not just the gloss.", Icon: "book-open"},
				{Title: "Process First", Description: "Discovery, iteration, delivery — documented.", Icon: "git-branch"},
				{Title: "Collaboration", Description: "I work best embedded with your team.", Icon: "users"},
			},
			Testimonials: []Testimonial{
				{Quote: "Elevated everything it touched.", Author: "Grace Kim", Role: "Creative Director", Rating: 5},
			},
			AboutBody: aboutWithDescription("builds work that holds up under scrutiny."),
		},
		sitespec.SiteBlog: {
			Taglines: map[string]string{
				sitespec.GoalSignup: "Get new posts in your inbox",
				sitespec.GoalLearn:  "Read, think, repeat",
			},
			DefaultTagline: "Writing worth your time",
			Headline: func(name string) string {
				return fmt.Sprintf("%s — essays and notes", name)
			},
			Features: []Feature{
				{Title: "Long-Form Essays", Description: "Deep dives published monthly.", Icon: "file-text"},
				{Title: "Short Notes", Description: "Quick observations between the big pieces.", Icon: "pencil"},
				{Title: "Curated Links", Description: "The best of what I've been reading.", Icon: "link"},
			},
			Testimonials: []Testimonial{
				{Quote: "One of the few newsletters I actually open.", Author: "Ben Artley", Role: "Subscriber", Rating: 5},
			},
			AboutBody: aboutWithDescription("is where the thinking happens in public."),
		},
	}
}

func defaultStats() map[string][]Stat {
	return map[string][]Stat{
		sitespec.SiteBusiness: {
			{Label: "Years in business", Value: 12, Suffix: "+"},
			{Label: "Clients served", Value: 480, Suffix: "+"},
			{Label: "Projects delivered", Value: 1200, Suffix: "+"},
			{Label: "Client retention", Value: 94, Suffix: "%"},
		},
		sitespec.SiteBooking: {
			{Label: "Appointments booked", Value: 15000, Suffix: "+"},
			{Label: "Average rating", Value: 4.9, Suffix: "/5"},
			{Label: "Returning clients", Value: 87, Suffix: "%"},
			{Label: "Years open", Value: 8, Suffix: ""},
		},
		sitespec.SiteEcommerce: {
			{Label: "Orders shipped", Value: 52000, Suffix: "+"},
			{Label: "Countries served", Value: 34, Suffix: ""},
			{Label: "Five-star reviews", Value: 9400, Suffix: "+"},
			{Label: "Repeat purchase rate", Value: 41, Suffix: "%"},
		},
		sitespec.SiteEducational: {
			{Label: "Graduates", Value: 3200, Suffix: "+"},
			{Label: "Completion rate", Value: 91, Suffix: "%"},
			{Label: "Expert instructors", Value: 45, Suffix: ""},
			{Label: "Career placements", Value: 78, Suffix: "%"},
		},
		sitespec.SiteNonprofit: {
			{Label: "People reached", Value: 68000, Suffix: "+"},
			{Label: "Volunteers", Value: 1100, Suffix: "+"},
			{Label: "Funds to programs", Value: 88, Suffix: "%"},
			{Label: "Years of service", Value: 15, Suffix: ""},
		},
	}
}

func defaultServices() map[string][]Service {
	return map[string][]Service{
		sitespec.SiteBooking: {
			{Name: "Signature Session", Description: "Our most popular full-length appointment.", Price: "$85", Duration: "60 min"},
			{Name: "Express Visit", Description: "In and out without cutting corners.", Price: "$45", Duration: "30 min"},
			{Name: "Deluxe Package", Description: "The full treatment, start to finish.", Price: "$140", Duration: "90 min"},
			{Name: "First-Timer Special", Description: "New here? Start with a guided visit.", Price: "$60", Duration: "45 min"},
		},
		sitespec.SiteEcommerce: {
			{Name: "Essentials Set", Description: "The pieces everyone starts with.", Price: "$39", Duration: ""},
			{Name: "Signature Collection", Description: "Our bestsellers, bundled.", Price: "$89", Duration: ""},
			{Name: "Limited Edition", Description: "Small batch, numbered, gone when it's gone.", Price: "$129", Duration: ""},
		},
		fallbackKey: {
			{Name: "Consultation", Description: "A focused session to map out what you need.", Price: "$120", Duration: "60 min"},
			{Name: "Ongoing Support", Description: "Monthly retainer for continuous help.", Price: "$450/mo", Duration: ""},
		},
	}
}

func defaultTeams() map[string][]TeamMember {
	return map[string][]TeamMember{
		sitespec.SiteBusiness: {
			{Name: "Jordan Avery", Role: "Founder & Principal", Bio: "Started the firm after a decade leading teams in industry."},
			{Name: "Sam Whitaker", Role: "Client Director", Bio: "Keeps every engagement on track and every client informed."},
			{Name: "Riley Chen", Role: "Senior Consultant", Bio: "The person you want in the room when things get complicated."},
		},
		sitespec.SiteBooking: {
			{Name: "Alex Moreno", Role: "Owner & Lead Specialist", Bio: "Twelve years of craft and still learning every day."},
			{Name: "Jamie Laurent", Role: "Senior Specialist", Bio: "Known for precision work and easy conversation."},
			{Name: "Casey Bloom", Role: "Front of House", Bio: "The friendly voice that gets you scheduled."},
		},
		sitespec.SitePersonal: {
			{Name: "The Author", Role: "Everything", Bio: "It's just me — which means nothing gets lost in handoff."},
		},
	}
}

func defaultTrustLogos() map[string][]string {
	return map[string][]string{
		sitespec.SiteBusiness:    {"Chamber of Commerce", "Better Business Bureau", "Industry Excellence Awards", "Local Business Alliance"},
		sitespec.SiteEcommerce:   {"Secure Checkout", "Verified Reviews", "Free Returns", "Carbon-Neutral Shipping"},
		sitespec.SiteEducational: {"Accredited Programs", "Education Standards Board", "Alumni Network", "Career Services Partner"},
		sitespec.SiteLanding:     {"As seen in TechDaily", "ProductHunt Featured", "Backed by Founders Fund", "SOC 2 Compliant"},
	}
}

func defaultFAQs() map[string][]FAQItem {
	return map[string][]FAQItem{
		sitespec.SiteBooking: {
			{Question: "How do I reschedule?", Answer: "Use the link in your confirmation email or call us — no fees up to 24 hours before."},
			{Question: "What if I'm running late?", Answer: "We hold your slot for 15 minutes. After that we may need to shorten or rebook."},
			{Question: "Do you take walk-ins?", Answer: "When the schedule allows, yes — but booking ahead guarantees your time."},
		},
		sitespec.SiteEcommerce: {
			{Question: "How long does shipping take?", Answer: "2–5 business days domestic, 7–14 international. Tracking on every order."},
			{Question: "What's your return policy?", Answer: "30 days from delivery, any reason, prepaid label included."},
			{Question: "Do you restock sold-out items?", Answer: "Core items yes, limited editions no. Join the list to hear first."},
		},
		sitespec.SiteEducational: {
			{Question: "Are classes live or self-paced?", Answer: "Both. Every program offers live cohorts and a self-paced track."},
			{Question: "Is financial aid available?", Answer: "Yes — scholarships and installment plans cover most situations."},
			{Question: "What do I need to start?", Answer: "A laptop and a few hours a week. No prior experience required for intro tracks."},
		},
		sitespec.SiteEvent: {
			{Question: "Are tickets refundable?", Answer: "Full refund up to 30 days out, 50% up to 7 days out."},
			{Question: "Is there a virtual option?", Answer: "Keynotes are streamed live; workshops are in-person only."},
			{Question: "Where should I stay?", Answer: "Partner hotels within walking distance offer attendee rates."},
		},
		sitespec.SiteNonprofit: {
			{Question: "Is my donation tax-deductible?", Answer: "Yes — we're a registered charity and send receipts immediately."},
			{Question: "How is my donation used?", Answer: "88% goes directly to programs. Our annual report breaks down every dollar."},
			{Question: "Can I volunteer remotely?", Answer: "Absolutely. Several programs run entirely online."},
		},
		fallbackKey: {
			{Question: "How do I get in touch?", Answer: "The contact form below reaches a real person, usually within a day."},
			{Question: "Where are you located?", Answer: "Details are in the footer — and yes, visitors are welcome."},
		},
	}
}
