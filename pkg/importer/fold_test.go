package importer

import (
	"testing"

	"github.com/nikogura/readme-forge/pkg/github"
	"github.com/nikogura/readme-forge/pkg/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechStack(t *testing.T) {
	tests := []struct {
		name     string
		analysis github.Analysis
		want     []string
	}{
		{
			name: "unmapped language dropped",
			analysis: github.Analysis{
				PrimaryLanguage: "TypeScript",
				Languages: []github.Language{
					{Name: "TypeScript", Percentage: 80},
					{Name: "COBOL", Percentage: 20},
				},
			},
			want: []string{"typescript"},
		},
		{
			name: "primary language first",
			analysis: github.Analysis{
				PrimaryLanguage: "Go",
				Languages: []github.Language{
					{Name: "HTML", Percentage: 60},
					{Name: "Go", Percentage: 40},
				},
			},
			want: []string{"go", "html"},
		},
		{
			name: "only six languages considered",
			analysis: github.Analysis{
				Languages: []github.Language{
					{Name: "COBOL"}, {Name: "Fortran"}, {Name: "Ada"},
					{Name: "Lisp"}, {Name: "Prolog"}, {Name: "Elm"},
					{Name: "Python"},
				},
			},
			want: []string{},
		},
		{
			name: "languages ranked by share",
			analysis: github.Analysis{
				Languages: []github.Language{
					{Name: "HTML", Percentage: 1}, {Name: "CSS", Percentage: 1},
					{Name: "COBOL", Percentage: 1}, {Name: "Fortran", Percentage: 1},
					{Name: "Ada", Percentage: 1}, {Name: "Lisp", Percentage: 1},
					{Name: "Go", Percentage: 95},
				},
			},
			want: []string{"go", "html", "css"},
		},
		{
			name: "dependencies matched by substring",
			analysis: github.Analysis{
				PrimaryLanguage: "TypeScript",
				PackageInfo: &github.PackageInfo{
					Dependencies: []string{"@nestjs/core", "react-dom", "lodash"},
				},
			},
			want: []string{"typescript", "nestjs", "react"},
		},
		{
			name: "duplicates collapse",
			analysis: github.Analysis{
				PackageInfo: &github.PackageInfo{
					Dependencies: []string{"react", "react-dom", "next"},
				},
			},
			want: []string{"react", "nextjs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TechStack(tt.analysis))
		})
	}
}

func TestLicenseBadgeText(t *testing.T) {
	tests := []struct {
		id   string
		name string
		want string
	}{
		{id: "MIT", name: "MIT License", want: "MIT"},
		{id: "NOASSERTION", name: "Custom Terms", want: "Custom Terms"},
		{id: "Other", name: "Mozilla Public License 2.0", want: "Mozilla Public 2.0"},
		{id: "NOASSERTION", name: "Other", want: ""},
		{id: "", name: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.id+"/"+tt.name, func(t *testing.T) {
			got := LicenseBadgeText(github.Analysis{License: tt.id, LicenseName: tt.name})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBadges(t *testing.T) {
	badges := Badges(github.Analysis{License: "MIT", Stars: 1200})
	require.Len(t, badges, 2)

	assert.Equal(t, "License", badges[0].Label)
	assert.Equal(t, "MIT", badges[0].Message)
	assert.Equal(t, "0080ff", badges[0].Color)
	assert.Equal(t, repo.BadgeForTheBadge, badges[0].Style)

	assert.Equal(t, "Stars", badges[1].Label)
	assert.Equal(t, "1200", badges[1].Message)
	assert.Equal(t, "github", badges[1].LogoName)
	assert.NotEqual(t, badges[0].ID, badges[1].ID)

	noLicense := Badges(github.Analysis{License: "NOASSERTION", LicenseName: "Other"})
	require.Len(t, noLicense, 1)
	assert.Equal(t, "Stars", noLicense[0].Label)
}

func TestFold(t *testing.T) {
	d := repo.DefaultDataForYear(2025)

	Fold(&d, github.Analysis{
		Name:            "forge",
		Description:     "Builds READMEs",
		Homepage:        "https://forge.dev",
		HTMLURL:         "https://github.com/jane/forge",
		License:         "Apache-2.0",
		PrimaryLanguage: "TypeScript",
		Owner:           github.Owner{Login: "jane"},
		PackageInfo: &github.PackageInfo{
			Name:    "@jane/forge",
			Scripts: []string{"build", "dev"},
		},
	})

	assert.Equal(t, "forge", d.ProjectInfo.Name)
	assert.Equal(t, "Builds READMEs", d.ProjectInfo.Description)
	assert.Equal(t, "https://forge.dev", d.ProjectInfo.WebsiteURL)
	assert.Len(t, d.ProjectInfo.Badges, 2)
	assert.Equal(t, []string{"typescript"}, d.TechStack)

	assert.True(t, d.License.Enabled)
	assert.Equal(t, repo.LicenseApache2, d.License.Type)
	assert.Equal(t, "jane", d.License.Holder)
	assert.Equal(t, "2025", d.License.Year)

	assert.Equal(t, "jane", d.Author.Name)
	assert.Equal(t, "jane", d.Author.Github)

	assert.True(t, d.Installation.Enabled)
	assert.Equal(t, "@jane/forge", d.Installation.PackageName)
	assert.Contains(t, d.Installation.InstallCommands, "git clone https://github.com/jane/forge.git")
	assert.Contains(t, d.Installation.InstallCommands, "cd forge")
	assert.Contains(t, d.Installation.InstallCommands, "npm run dev")
}

func TestFoldWithoutLicenseOrPackage(t *testing.T) {
	d := repo.DefaultDataForYear(2025)
	d.License.Holder = "kept"

	Fold(&d, github.Analysis{Name: "bare", License: "", LicenseName: ""})

	assert.Equal(t, "kept", d.License.Holder)
	assert.Equal(t, repo.LicenseMIT, d.License.Type)
	assert.Empty(t, d.Installation.PackageName)
	assert.Empty(t, d.Installation.InstallCommands)
}

func TestFoldUnknownLicenseBecomesMIT(t *testing.T) {
	d := repo.DefaultDataForYear(2025)
	Fold(&d, github.Analysis{License: "MPL-2.0"})
	assert.Equal(t, repo.LicenseMIT, d.License.Type)
}

func TestCommonContext(t *testing.T) {
	deps := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	a := github.Analysis{
		Name:            "forge",
		Private:         true,
		PrimaryLanguage: "Go",
		Topics:          []string{"cli", "docs"},
		Owner:           github.Owner{Login: "jane"},
		PackageInfo:     &github.PackageInfo{Dependencies: deps},
	}

	got := CommonContext(a, "focus on the CLI")

	assert.Contains(t, got, "Project Name: forge")
	assert.Contains(t, got, "Repository URL: https://github.com/jane/forge")
	assert.Contains(t, got, "Clone Command: git clone https://github.com/jane/forge.git")
	assert.Contains(t, got, "This is a private repository.")
	assert.Contains(t, got, "Main language: Go")
	assert.Contains(t, got, "Topics: cli, docs")
	assert.Contains(t, got, "Dependencies: a, b, c, d, e, f, g, h, i, j")
	assert.NotContains(t, got, "j, k")
	assert.Contains(t, got, "**USER INSTRUCTIONS (PRIORITIZE THIS)**: focus on the CLI")

	plain := CommonContext(github.Analysis{Name: "x"}, "")
	assert.Contains(t, plain, "This is a public repository.")
	assert.NotContains(t, plain, "Dependencies:")
	assert.NotContains(t, plain, "USER INSTRUCTIONS")
}
