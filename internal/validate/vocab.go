package validate

// ForbiddenTerm is a wrong-industry term for a sub-type, with the preferred
// replacement offered as a suggestion.
type ForbiddenTerm struct {
	Term       string
	Severity   string // "error" or "warning"
	Suggestion string
}

// Vocab captures what copy for a sub-type should and should not contain.
// Expected terms signal industry-specific copy; a document containing none
// of them reads as generic. Forbidden terms are jargon from the wrong
// industry.
type Vocab struct {
	Expected  []string
	Forbidden []ForbiddenTerm
}

// subTypeVocab is keyed by the inferred sub-type. Sub-types without an
// entry skip the vocabulary rules.
var subTypeVocab = map[string]Vocab{
	"restaurant": {
		Expected: []string{"menu", "dine", "dining", "table", "chef", "reservation", "cuisine", "dish", "taste"},
		Forbidden: []ForbiddenTerm{
			{Term: "appointment", Severity: "error", Suggestion: "reservation"},
			{Term: "portfolio", Severity: "error", Suggestion: "menu"},
			{Term: "clients", Severity: "warning", Suggestion: "guests"},
			{Term: "consultation", Severity: "warning", Suggestion: "tasting"},
		},
	},
	"salon": {
		Expected: []string{"appointment", "stylist", "hair", "beauty", "treatment", "salon", "pamper"},
		Forbidden: []ForbiddenTerm{
			{Term: "reservation", Severity: "warning", Suggestion: "appointment"},
			{Term: "menu", Severity: "warning", Suggestion: "service list"},
			{Term: "deliverables", Severity: "error", Suggestion: "treatments"},
		},
	},
	"fitness": {
		Expected: []string{"training", "workout", "class", "coach", "fitness", "session", "membership"},
		Forbidden: []ForbiddenTerm{
			{Term: "reservation", Severity: "warning", Suggestion: "booking"},
			{Term: "guests", Severity: "warning", Suggestion: "members"},
		},
	},
	"medical": {
		Expected: []string{"patient", "care", "appointment", "clinic", "health", "treatment"},
		Forbidden: []ForbiddenTerm{
			{Term: "customers", Severity: "error", Suggestion: "patients"},
			{Term: "guests", Severity: "error", Suggestion: "patients"},
			{Term: "deals", Severity: "warning", Suggestion: "care plans"},
		},
	},
	"legal": {
		Expected: []string{"counsel", "attorney", "case", "legal", "consultation", "representation"},
		Forbidden: []ForbiddenTerm{
			{Term: "customers", Severity: "warning", Suggestion: "clients"},
			{Term: "deals", Severity: "warning", Suggestion: "matters"},
		},
	},
	"realestate": {
		Expected: []string{"property", "home", "listing", "market", "buyer", "seller", "tour"},
		Forbidden: []ForbiddenTerm{
			{Term: "patients", Severity: "error", Suggestion: "clients"},
			{Term: "menu", Severity: "warning", Suggestion: "listings"},
		},
	},
	"construction": {
		Expected: []string{"project", "build", "estimate", "contractor", "renovation", "quote"},
		Forbidden: []ForbiddenTerm{
			{Term: "reservation", Severity: "warning", Suggestion: "estimate"},
			{Term: "patients", Severity: "error", Suggestion: "clients"},
		},
	},
	"photography": {
		Expected: []string{"session", "gallery", "shoot", "portrait", "photo", "album"},
		Forbidden: []ForbiddenTerm{
			{Term: "deliverables", Severity: "warning", Suggestion: "galleries"},
			{Term: "inventory", Severity: "warning", Suggestion: "portfolio"},
		},
	},
	"tech": {
		Expected: []string{"platform", "product", "integration", "workflow", "build", "launch"},
		Forbidden: []ForbiddenTerm{
			{Term: "reservation", Severity: "warning", Suggestion: "demo"},
			{Term: "menu", Severity: "warning", Suggestion: "feature list"},
		},
	},
}

// genericPhrases are boilerplate strings that should never survive into a
// finished document.
var genericPhrases = []string{
	"lorem ipsum",
	"your business name",
	"insert text here",
	"welcome to our website",
	"click here",
	"we provide quality services",
	"best in class solutions",
	"placeholder text",
}

// genericExemptions lists phrases that are acceptable for particular
// sub-types despite appearing in the generic list.
var genericExemptions = map[string]map[string]bool{
	"construction": {"we provide quality services": true},
	"tech":         {"best in class solutions": true},
}
