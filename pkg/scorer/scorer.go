// Package scorer rates how complete a README document is. Each missing piece
// is a rule violation that deducts points from its category.
package scorer

import (
	"sort"
	"strings"

	"github.com/nikogura/readme-forge/pkg/profile"
	"github.com/nikogura/readme-forge/pkg/repo"
)

// Violation is one broken rule.
type Violation struct {
	Rule        string `json:"rule"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// Scores holds per-category scores and their weighted total, each 0..100.
type Scores struct {
	Categories map[string]int `json:"categories"`
	Overall    int            `json:"overall"`
	Violations []Violation    `json:"violations"`
}

// ScoreRepo rates a project document.
func ScoreRepo(d repo.Data) (scores Scores) {
	var broken []string

	if blank(d.ProjectInfo.Name) {
		broken = append(broken, "MISSING_TITLE")
	}
	if blank(d.ProjectInfo.Description) {
		broken = append(broken, "MISSING_DESCRIPTION")
	}
	if !d.Installation.Enabled || (blank(d.Installation.PackageName) && blank(d.Installation.InstallCommands)) {
		broken = append(broken, "NO_INSTALLATION")
	}
	if !d.Usage.Enabled || (blank(d.Usage.QuickStart) && len(d.Usage.Examples) == 0) {
		broken = append(broken, "NO_USAGE")
	}
	if !d.Features.Enabled || len(d.Features.Items) == 0 {
		broken = append(broken, "NO_FEATURES")
	}
	if blank(d.ProjectInfo.Tagline) {
		broken = append(broken, "NO_TAGLINE")
	}
	if len(d.ProjectInfo.Badges) == 0 && len(d.TechStack) == 0 {
		broken = append(broken, "NO_BADGES")
	}
	if blank(d.ProjectInfo.LogoURL) && blank(d.ProjectInfo.BannerURL) && (!d.Screenshots.Enabled || len(d.Screenshots.Items) == 0) {
		broken = append(broken, "NO_VISUALS")
	}
	if !d.License.Enabled || blank(d.License.Holder) {
		broken = append(broken, "NO_LICENSE")
	}
	if !d.Contributing.Enabled || blank(d.Contributing.Guidelines) {
		broken = append(broken, "NO_CONTRIBUTING")
	}

	scores = calculate(broken)
	return scores
}

// ScoreProfile rates a personal profile document.
func ScoreProfile(d profile.Data) (scores Scores) {
	var broken []string

	if blank(d.Header.Title) {
		broken = append(broken, "MISSING_TITLE")
	}
	if blank(d.About.Bio) {
		broken = append(broken, "MISSING_DESCRIPTION")
	}
	a := d.About
	if allBlank(a.WorkingOn, a.Learning, a.AskMeAbout, a.Collaboration, a.FunFact, a.Contact, a.Hobbies, a.PortfolioLink) {
		broken = append(broken, "EMPTY_ABOUT")
	}
	if blank(d.Header.Subtitle) {
		broken = append(broken, "NO_TAGLINE")
	}
	if len(d.Skills.Languages)+len(d.Skills.Frameworks)+len(d.Skills.Tools) == 0 {
		broken = append(broken, "NO_SKILLS")
	}
	if blank(d.User.GithubUsername) {
		broken = append(broken, "NO_GITHUB_USERNAME")
	}
	s := d.Socials
	if allBlank(s.Github, s.Twitter, s.Linkedin, s.Website, s.Discord, s.Dev, s.Medium, s.Stackoverflow, s.Youtube, s.Instagram, s.Telegram) {
		broken = append(broken, "NO_SOCIALS")
	}

	scores = calculate(broken)
	return scores
}

func calculate(broken []string) (scores Scores) {
	scores.Categories = make(map[string]int, len(CategoryWeights))
	for category := range CategoryWeights {
		scores.Categories[category] = 100
	}

	for _, name := range broken {
		rule, exists := ScoringRules[name]
		if !exists {
			continue
		}

		scores.Categories[rule.Category] -= rule.Weight
		scores.Violations = append(scores.Violations, Violation{
			Rule:        rule.Name,
			Severity:    rule.Severity,
			Description: rule.Description,
		})
	}

	var overall float64
	for category, weight := range CategoryWeights {
		if scores.Categories[category] < 0 {
			scores.Categories[category] = 0
		}
		overall += float64(scores.Categories[category]) * weight
	}
	scores.Overall = int(overall + 0.5)

	sort.SliceStable(scores.Violations, func(i, j int) bool {
		return severityRank(scores.Violations[i].Severity) < severityRank(scores.Violations[j].Severity)
	})

	return scores
}

func severityRank(severity string) (rank int) {
	switch severity {
	case "critical":
		rank = 0
	case "major":
		rank = 1
	default:
		rank = 2
	}
	return rank
}

func blank(s string) (empty bool) {
	empty = strings.TrimSpace(s) == ""
	return empty
}

func allBlank(values ...string) (empty bool) {
	for _, v := range values {
		if !blank(v) {
			return empty
		}
	}
	empty = true
	return empty
}
