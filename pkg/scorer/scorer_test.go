package scorer

import (
	"testing"

	"github.com/nikogura/readme-forge/pkg/profile"
	"github.com/nikogura/readme-forge/pkg/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rules(scores Scores) (names []string) {
	for _, v := range scores.Violations {
		names = append(names, v.Rule)
	}
	return names
}

func TestScoreRepoDefaults(t *testing.T) {
	scores := ScoreRepo(repo.DefaultDataForYear(2026))

	assert.Equal(t, 0, scores.Categories[CategoryContent])
	assert.Equal(t, 60, scores.Categories[CategoryDiscoverability])
	assert.Equal(t, 60, scores.Categories[CategoryCommunity])
	assert.Equal(t, 30, scores.Overall)

	names := rules(scores)
	assert.Contains(t, names, "MISSING_TITLE")
	assert.Contains(t, names, "NO_LICENSE")
	assert.NotContains(t, names, "NO_CONTRIBUTING")
}

func TestScoreRepoComplete(t *testing.T) {
	d := repo.DefaultDataForYear(2026)
	d.ProjectInfo.Name = "forge"
	d.ProjectInfo.Tagline = "READMEs without the busywork"
	d.ProjectInfo.Description = "Renders READMEs from data files."
	d.ProjectInfo.LogoURL = "https://example.com/logo.png"
	d.TechStack = []string{"go"}
	d.Installation.InstallCommands = "go install ./..."
	d.Usage.QuickStart = "readme-forge repo project.yaml"
	d.Features.Items = []repo.Feature{repo.NewFeature()}
	d.License.Holder = "Octo Cat"

	scores := ScoreRepo(d)

	assert.Empty(t, scores.Violations)
	assert.Equal(t, 100, scores.Overall)
}

func TestScoreRepoDisabledSection(t *testing.T) {
	d := repo.DefaultDataForYear(2026)
	d.Installation.InstallCommands = "make install"
	d.Installation.Enabled = false

	assert.Contains(t, rules(ScoreRepo(d)), "NO_INSTALLATION")
}

func TestScoreProfile(t *testing.T) {
	d := profile.DefaultData()

	names := rules(ScoreProfile(d))
	assert.Contains(t, names, "MISSING_TITLE")
	assert.Contains(t, names, "NO_SKILLS")
	assert.Contains(t, names, "NO_SOCIALS")
	assert.NotContains(t, names, "MISSING_DESCRIPTION")

	d.Header.Title = "Hi, I'm Octo"
	d.Header.Subtitle = "Builder"
	d.About.WorkingOn = "readme-forge"
	d.Skills.Languages = []string{"Go"}
	d.User.GithubUsername = "octocat"
	d.Socials.Github = "octocat"

	scores := ScoreProfile(d)
	assert.Empty(t, scores.Violations)
	assert.Equal(t, 100, scores.Overall)
}

func TestViolationsOrderedBySeverity(t *testing.T) {
	scores := ScoreRepo(repo.DefaultDataForYear(2026))
	require.NotEmpty(t, scores.Violations)

	last := 0
	for _, v := range scores.Violations {
		rank := severityRank(v.Severity)
		assert.GreaterOrEqual(t, rank, last)
		last = rank
	}
}

func TestEveryRuleHasKnownCategory(t *testing.T) {
	for name, rule := range ScoringRules {
		assert.Equal(t, name, rule.Name)
		_, ok := CategoryWeights[rule.Category]
		assert.True(t, ok, "rule %s has unknown category %s", name, rule.Category)
	}
}
