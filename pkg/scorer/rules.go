package scorer

// Rule represents a scoring rule.
type Rule struct {
	Name        string
	Category    string // content, discoverability, community
	Severity    string // critical, major, minor
	Description string
	Weight      int // Points deducted for violation
}

// Rule categories.
const (
	CategoryContent         = "content"
	CategoryDiscoverability = "discoverability"
	CategoryCommunity       = "community"
)

//nolint:gochecknoglobals // Scoring configuration constants
var ScoringRules = map[string]Rule{
	// Content Rules
	"MISSING_TITLE": {
		Name:        "MISSING_TITLE",
		Category:    CategoryContent,
		Severity:    "critical",
		Description: "No project name or profile title, so the README opens with a placeholder",
		Weight:      40,
	},
	"MISSING_DESCRIPTION": {
		Name:        "MISSING_DESCRIPTION",
		Category:    CategoryContent,
		Severity:    "critical",
		Description: "No description or bio saying what this is",
		Weight:      30,
	},
	"NO_INSTALLATION": {
		Name:        "NO_INSTALLATION",
		Category:    CategoryContent,
		Severity:    "major",
		Description: "Installation section disabled or without a package or commands",
		Weight:      15,
	},
	"NO_USAGE": {
		Name:        "NO_USAGE",
		Category:    CategoryContent,
		Severity:    "major",
		Description: "Usage section disabled or without a quick start or examples",
		Weight:      15,
	},
	"NO_FEATURES": {
		Name:        "NO_FEATURES",
		Category:    CategoryContent,
		Severity:    "minor",
		Description: "No feature bullets",
		Weight:      10,
	},
	"EMPTY_ABOUT": {
		Name:        "EMPTY_ABOUT",
		Category:    CategoryContent,
		Severity:    "minor",
		Description: "None of the about prompts are filled in",
		Weight:      10,
	},

	// Discoverability Rules
	"NO_TAGLINE": {
		Name:        "NO_TAGLINE",
		Category:    CategoryDiscoverability,
		Severity:    "minor",
		Description: "No one-line tagline or subtitle under the title",
		Weight:      15,
	},
	"NO_BADGES": {
		Name:        "NO_BADGES",
		Category:    CategoryDiscoverability,
		Severity:    "minor",
		Description: "No badges or tech stack icons",
		Weight:      15,
	},
	"NO_VISUALS": {
		Name:        "NO_VISUALS",
		Category:    CategoryDiscoverability,
		Severity:    "minor",
		Description: "No logo, banner or screenshots",
		Weight:      10,
	},
	"NO_SKILLS": {
		Name:        "NO_SKILLS",
		Category:    CategoryDiscoverability,
		Severity:    "major",
		Description: "No languages, frameworks or tools listed",
		Weight:      25,
	},
	"NO_GITHUB_USERNAME": {
		Name:        "NO_GITHUB_USERNAME",
		Category:    CategoryDiscoverability,
		Severity:    "major",
		Description: "Stats cards need a GitHub username",
		Weight:      25,
	},

	// Community Rules
	"NO_LICENSE": {
		Name:        "NO_LICENSE",
		Category:    CategoryCommunity,
		Severity:    "major",
		Description: "License section disabled or missing a holder",
		Weight:      40,
	},
	"NO_CONTRIBUTING": {
		Name:        "NO_CONTRIBUTING",
		Category:    CategoryCommunity,
		Severity:    "minor",
		Description: "Contributing section disabled or empty",
		Weight:      25,
	},
	"NO_SOCIALS": {
		Name:        "NO_SOCIALS",
		Category:    CategoryCommunity,
		Severity:    "minor",
		Description: "No way to reach the profile owner",
		Weight:      40,
	},
}

//nolint:gochecknoglobals // Scoring configuration constants
var CategoryWeights = map[string]float64{
	CategoryContent:         0.50, // 50%
	CategoryDiscoverability: 0.25, // 25%
	CategoryCommunity:       0.25, // 25%
}
