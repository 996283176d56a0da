package autofix

import "regexp"

// textRule is one (pattern, replacement, name) record. Replacements must
// not re-match their own pattern so repeated application converges.
type textRule struct {
	name        string
	re          *regexp.Regexp
	replacement string
}

func rule(name, pattern, replacement string) textRule {
	return textRule{name: name, re: regexp.MustCompile(pattern), replacement: replacement}
}

// Headline-level swaps, applied only to hero headline fields.
var headlineRules = map[string][]textRule{
	"restaurant": {
		rule("headline-generic-welcome", `(?i)\bwelcome to our (?:web)?site\b`, "A table is waiting for you"),
		rule("headline-generic-services", `(?i)\bquality services\b`, "food worth coming back for"),
	},
	"salon": {
		rule("headline-generic-welcome", `(?i)\bwelcome to our (?:web)?site\b`, "Look your best, feel even better"),
		rule("headline-generic-services", `(?i)\bquality services\b`, "treatments tailored to you"),
	},
	"fitness": {
		rule("headline-generic-welcome", `(?i)\bwelcome to our (?:web)?site\b`, "Stronger starts here"),
	},
	"medical": {
		rule("headline-generic-welcome", `(?i)\bwelcome to our (?:web)?site\b`, "Care you can count on"),
	},
	"legal": {
		rule("headline-generic-welcome", `(?i)\bwelcome to our (?:web)?site\b`, "Counsel in your corner"),
	},
	"photography": {
		rule("headline-generic-welcome", `(?i)\bwelcome to our (?:web)?site\b`, "Moments, made permanent"),
	},
}

// Team-role swaps, applied only to team member role fields.
var roleRules = map[string][]textRule{
	"restaurant": {
		rule("role-restaurant-chef", `(?i)^(?:CEO|Founder & Principal|Owner & Lead Specialist)$`, "Head Chef"),
		rule("role-restaurant-manager", `(?i)^(?:Client Director|Front of House Manager)$`, "Restaurant Manager"),
		rule("role-restaurant-sous", `(?i)^Senior (?:Consultant|Specialist)$`, "Sous Chef"),
	},
	"salon": {
		rule("role-salon-lead", `(?i)^(?:CEO|Founder & Principal|Owner & Lead Specialist)$`, "Owner & Lead Stylist"),
		rule("role-salon-senior", `(?i)^Senior (?:Consultant|Specialist)$`, "Senior Stylist"),
	},
	"fitness": {
		rule("role-fitness-head", `(?i)^(?:CEO|Founder & Principal|Owner & Lead Specialist)$`, "Head Coach"),
		rule("role-fitness-trainer", `(?i)^Senior (?:Consultant|Specialist)$`, "Senior Trainer"),
	},
	"medical": {
		rule("role-medical-lead", `(?i)^(?:CEO|Founder & Principal)$`, "Lead Physician"),
	},
	"legal": {
		rule("role-legal-partner", `(?i)^(?:CEO|Founder & Principal)$`, "Managing Partner"),
		rule("role-legal-associate", `(?i)^Senior Consultant$`, "Senior Associate"),
	},
}

// General vocabulary swaps, applied to every content string. Kept aligned
// with the validate package's forbidden-term tables.
var vocabRules = map[string][]textRule{
	"restaurant": {
		rule("vocab-restaurant-reservations", `(?i)\bappointments\b`, "reservations"),
		rule("vocab-restaurant-reservation", `(?i)\bappointment\b`, "reservation"),
		rule("vocab-restaurant-guests", `(?i)\bclients\b`, "guests"),
		rule("vocab-restaurant-guest", `(?i)\bclient\b`, "guest"),
		rule("vocab-restaurant-menu", `(?i)\bportfolio\b`, "menu"),
	},
	"salon": {
		rule("vocab-salon-appointments", `(?i)\breservations\b`, "appointments"),
		rule("vocab-salon-appointment", `(?i)\breservation\b`, "appointment"),
		rule("vocab-salon-services", `(?i)\bdeliverables\b`, "treatments"),
	},
	"fitness": {
		rule("vocab-fitness-bookings", `(?i)\breservations\b`, "bookings"),
		rule("vocab-fitness-booking", `(?i)\breservation\b`, "booking"),
		rule("vocab-fitness-members", `(?i)\bguests\b`, "members"),
	},
	"medical": {
		rule("vocab-medical-patients", `(?i)\b(?:customers|guests)\b`, "patients"),
		rule("vocab-medical-patient", `(?i)\b(?:customer|guest)\b`, "patient"),
	},
	"legal": {
		rule("vocab-legal-clients", `(?i)\bcustomers\b`, "clients"),
		rule("vocab-legal-matters", `(?i)\bdeals\b`, "matters"),
	},
	"realestate": {
		rule("vocab-realestate-clients", `(?i)\bpatients\b`, "clients"),
		rule("vocab-realestate-listings", `(?i)\bmenu\b`, "listings"),
	},
	"construction": {
		rule("vocab-construction-estimates", `(?i)\breservations\b`, "estimates"),
		rule("vocab-construction-estimate", `(?i)\breservation\b`, "estimate"),
		rule("vocab-construction-clients", `(?i)\bpatients\b`, "clients"),
	},
	"photography": {
		rule("vocab-photography-galleries", `(?i)\bdeliverables\b`, "galleries"),
	},
}
