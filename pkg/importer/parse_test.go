package importer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nikogura/readme-forge/pkg/llm"
	"github.com/nikogura/readme-forge/pkg/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDescription(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		tagline     string
		description string
	}{
		{
			name:        "both markers",
			content:     "Tagline: Ship fast\nDescription: A tool for X.",
			tagline:     "Ship fast",
			description: "A tool for X.",
		},
		{
			name:        "no markers",
			content:     "Just a paragraph about the project.\n",
			description: "Just a paragraph about the project.\n",
		},
		{
			name:    "tagline only",
			content: "Tagline: Ship fast",
			tagline: "Ship fast",
		},
		{
			name:        "multi line description",
			content:     "tagline: lower case\n\ndescription: first line\nsecond line",
			tagline:     "lower case",
			description: "first line\nsecond line",
		},
		{
			name:        "marker words inside a sentence",
			content:     "A generator with a project description: fast and typed.",
			description: "A generator with a project description: fast and typed.",
		},
		{
			name:        "indented markers",
			content:     "  Tagline: Ship fast\n  Description: A tool.",
			tagline:     "Ship fast",
			description: "A tool.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tagline, description := ParseDescription(tt.content)
			assert.Equal(t, tt.tagline, tagline)
			assert.Equal(t, tt.description, description)
		})
	}
}

func TestParseFeatures(t *testing.T) {
	content := strings.Join([]string{
		"Here are the key features:",
		"",
		"- 🚀 **Fast** - very fast",
		"1. **Typed**: strict types",
		"* Plain title - plain description",
		"- ⚡️ **Zap** — with a long dash",
		"- **Solo**",
		"- short",
		"- nothing to split here",
	}, "\n")

	features := ParseFeatures(content)
	require.Len(t, features, 5)

	assert.Equal(t, "🚀", features[0].Emoji)
	assert.Equal(t, "Fast", features[0].Title)
	assert.Equal(t, "very fast", features[0].Description)

	assert.Equal(t, repo.DefaultFeatureEmoji, features[1].Emoji)
	assert.Equal(t, "Typed", features[1].Title)
	assert.Equal(t, "strict types", features[1].Description)

	assert.Equal(t, "Plain title", features[2].Title)
	assert.Equal(t, "plain description", features[2].Description)

	assert.Equal(t, "⚡️", features[3].Emoji)
	assert.Equal(t, "Zap", features[3].Title)

	assert.Equal(t, "Solo", features[4].Title)
	assert.Empty(t, features[4].Description)

	for _, f := range features {
		assert.NotEmpty(t, f.ID)
	}
}

func TestParseFeaturesLimit(t *testing.T) {
	lines := make([]string, 0, 12)
	for i := range 12 {
		lines = append(lines, fmt.Sprintf("- **Feature %d** - does thing %d", i, i))
	}

	features := ParseFeatures(strings.Join(lines, "\n"))
	require.Len(t, features, MaxFeatures)
	assert.Equal(t, "Feature 7", features[MaxFeatures-1].Title)
}

func TestParseFeaturesEmpty(t *testing.T) {
	features := ParseFeatures("No bullets at all.")
	assert.NotNil(t, features)
	assert.Empty(t, features)
}

func TestApplySection(t *testing.T) {
	d := repo.DefaultDataForYear(2025)
	d.Installation.Enabled = false
	d.APIDocs.Enabled = false

	assert.True(t, ApplySection(&d, llm.SectionDescription, "Tagline: Ship fast\nDescription: A tool for X."))
	assert.Equal(t, "Ship fast", d.ProjectInfo.Tagline)
	assert.Equal(t, "A tool for X.", d.ProjectInfo.Description)

	// A tagline-only answer keeps the existing description.
	assert.True(t, ApplySection(&d, llm.SectionDescription, "Tagline: Ship faster"))
	assert.Equal(t, "Ship faster", d.ProjectInfo.Tagline)
	assert.Equal(t, "A tool for X.", d.ProjectInfo.Description)

	assert.True(t, ApplySection(&d, llm.SectionFeatures, "- **Fast** - very fast"))
	require.Len(t, d.Features.Items, 1)
	assert.True(t, d.Features.Enabled)

	assert.True(t, ApplySection(&d, llm.SectionInstallation, "run make"))
	assert.Equal(t, "run make", d.Installation.AdditionalSteps)
	assert.True(t, d.Installation.Enabled)

	assert.True(t, ApplySection(&d, llm.SectionUsage, "call it"))
	assert.Equal(t, "call it", d.Usage.QuickStart)

	assert.True(t, ApplySection(&d, llm.SectionAPI, "GET /things"))
	assert.Equal(t, "GET /things", d.APIDocs.Description)
	assert.True(t, d.APIDocs.Enabled)

	assert.True(t, ApplySection(&d, llm.SectionContributing, "send PRs"))
	assert.Equal(t, "send PRs", d.Contributing.Guidelines)

	before := d.Clone()
	assert.False(t, ApplySection(&d, llm.SectionFull, "# Whole README"))
	assert.False(t, ApplySection(&d, llm.SectionRefine, "refined"))
	assert.Equal(t, before, d)
}

func TestExistingContent(t *testing.T) {
	d := repo.DefaultDataForYear(2025)
	d.ProjectInfo.Description = "A tool."
	assert.Equal(t, "A tool.", ExistingContent(d, llm.SectionDescription))

	d.ProjectInfo.Tagline = "Ship fast"
	assert.Equal(t, "Tagline: Ship fast\nDescription: A tool.", ExistingContent(d, llm.SectionDescription))

	d.Features.Items = []repo.Feature{{ID: "1", Emoji: "🚀", Title: "Fast", Description: "very fast"}}
	assert.Equal(t, "- 🚀 **Fast** - very fast", ExistingContent(d, llm.SectionFeatures))

	// Existing content round-trips through the parsers.
	tagline, description := ParseDescription(ExistingContent(d, llm.SectionDescription))
	assert.Equal(t, "Ship fast", tagline)
	assert.Equal(t, "A tool.", description)

	features := ParseFeatures(ExistingContent(d, llm.SectionFeatures))
	require.Len(t, features, 1)
	assert.Equal(t, "Fast", features[0].Title)

	assert.Empty(t, ExistingContent(d, llm.SectionFull))
}
