// Package importer folds a repository analysis and AI-written sections into a
// project README store.
package importer

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/nikogura/readme-forge/pkg/github"
	"github.com/nikogura/readme-forge/pkg/repo"
)

// MaxStackLanguages is how many languages, after the primary one, are
// considered for the tech stack.
const MaxStackLanguages = 6

// maxContextDependencies is how many dependencies are named in AI context.
const maxContextDependencies = 10

type slugMapping struct {
	name string
	slug string
}

// languageSlugs maps GitHub language names to skill-icons slugs.
//
//nolint:gochecknoglobals // static lookup table
var languageSlugs = []slugMapping{
	{"TypeScript", "typescript"},
	{"JavaScript", "javascript"},
	{"Python", "python"},
	{"Java", "java"},
	{"Go", "go"},
	{"Rust", "rust"},
	{"C++", "cpp"},
	{"C", "c"},
	{"HTML", "html"},
	{"CSS", "css"},
	{"SCSS", "sass"},
	{"PHP", "php"},
	{"Ruby", "ruby"},
	{"Swift", "swift"},
	{"Kotlin", "kotlin"},
}

// dependencySlugs is matched by substring so scoped packages such as
// @nestjs/core still hit.
//
//nolint:gochecknoglobals // static lookup table
var dependencySlugs = []slugMapping{
	{"react", "react"},
	{"next", "nextjs"},
	{"vue", "vue"},
	{"angular", "angular"},
	{"express", "express"},
	{"nestjs", "nestjs"},
	{"tailwindcss", "tailwind"},
	{"mongodb", "mongodb"},
	{"postgres", "postgres"},
	{"prisma", "prisma"},
	{"docker", "docker"},
	{"vite", "vite"},
}

//nolint:gochecknoglobals // compiled once
var licenseSuffix = regexp.MustCompile(`(?i) License`)

// LanguageSlug maps a GitHub language name to its tech stack slug.
func LanguageSlug(name string) (slug string, ok bool) {
	for _, m := range languageSlugs {
		if m.name == name {
			slug = m.slug
			ok = true
			return slug, ok
		}
	}
	return slug, ok
}

// TechStack derives tech stack slugs from the primary language, the top
// languages and the package dependencies. Unmapped names are dropped.
func TechStack(a github.Analysis) (stack []string) {
	stack = []string{}

	add := func(slug string) {
		if !slices.Contains(stack, slug) {
			stack = append(stack, slug)
		}
	}

	if slug, ok := LanguageSlug(a.PrimaryLanguage); ok {
		add(slug)
	}

	// Highest share first; equal shares keep their order.
	languages := slices.Clone(a.Languages)
	slices.SortStableFunc(languages, func(x, y github.Language) int {
		return y.Percentage - x.Percentage
	})

	for i, lang := range languages {
		if i == MaxStackLanguages {
			break
		}
		if slug, ok := LanguageSlug(lang.Name); ok {
			add(slug)
		}
	}

	if a.PackageInfo != nil {
		for _, dep := range a.PackageInfo.Dependencies {
			for _, m := range dependencySlugs {
				if strings.Contains(dep, m.name) {
					add(m.slug)
				}
			}
		}
	}

	return stack
}

// LicenseBadgeText picks the license id unless it is a placeholder, then the
// license name unless that is one too. Empty means no badge.
func LicenseBadgeText(a github.Analysis) (text string) {
	switch {
	case a.License != "" && a.License != "NOASSERTION" && a.License != "Other":
		text = a.License
	case a.LicenseName != "Other":
		text = a.LicenseName
	}

	text = strings.TrimSpace(licenseSuffix.ReplaceAllString(text, ""))
	return text
}

// Badges builds the license and stars badges for an analysis.
func Badges(a github.Analysis) (badges []repo.Badge) {
	badges = []repo.Badge{}

	if text := LicenseBadgeText(a); text != "" {
		badges = append(badges, repo.Badge{
			ID:        uuid.NewString(),
			Label:     "License",
			Message:   text,
			Color:     "0080ff",
			Style:     repo.BadgeForTheBadge,
			LogoColor: "white",
		})
	}

	badges = append(badges, repo.Badge{
		ID:        uuid.NewString(),
		Label:     "Stars",
		Message:   strconv.FormatInt(a.Stars, 10),
		Color:     "yellow",
		Style:     repo.BadgeForTheBadge,
		LogoName:  "github",
		LogoColor: "white",
	})

	return badges
}

// licenseType maps an SPDX id onto the supported license types. Anything
// else becomes MIT.
func licenseType(spdx string) (t repo.LicenseType) {
	switch repo.LicenseType(spdx) {
	case repo.LicenseMIT, repo.LicenseApache2, repo.LicenseGPL3, repo.LicenseBSD3Clause, repo.LicenseISC:
		t = repo.LicenseType(spdx)
	default:
		t = repo.LicenseMIT
	}
	return t
}

// Fold writes the metadata of an analysis into d. AI sections are applied
// separately with ApplySection.
func Fold(d *repo.Data, a github.Analysis) {
	d.ProjectInfo.Name = a.Name
	d.ProjectInfo.Description = a.Description
	d.ProjectInfo.WebsiteURL = a.Homepage
	d.ProjectInfo.Badges = Badges(a)

	for _, slug := range TechStack(a) {
		if !slices.Contains(d.TechStack, slug) {
			d.TechStack = append(d.TechStack, slug)
		}
	}

	if a.License != "" {
		d.License.Enabled = true
		d.License.Type = licenseType(a.License)
		d.License.Holder = a.Owner.Login
	}

	d.Author.Name = a.Owner.Login
	d.Author.Github = a.Owner.Login

	if a.PackageInfo != nil {
		d.Installation.Enabled = true
		d.Installation.PackageName = a.PackageInfo.Name

		if slices.Contains(a.PackageInfo.Scripts, "dev") {
			d.Installation.InstallCommands = fmt.Sprintf(`# Clone the repository
git clone %s.git
cd %s

# Install dependencies
npm install

# Start development server
npm run dev`, a.HTMLURL, a.Name)
		}
	}
}

// CommonContext is the shared AI context for every section of an import.
// prompt, when set, is marked as taking priority.
func CommonContext(a github.Analysis, prompt string) (context string) {
	visibility := "public"
	if a.Private {
		visibility = "private"
	}

	deps := ""
	if a.PackageInfo != nil {
		named := a.PackageInfo.Dependencies
		if len(named) > maxContextDependencies {
			named = named[:maxContextDependencies]
		}
		deps = "Dependencies: " + strings.Join(named, ", ")
	}

	instructions := ""
	if prompt != "" {
		instructions = "\n**USER INSTRUCTIONS (PRIORITIZE THIS)**: " + prompt
	}

	lines := []string{
		"Project Name: " + a.Name,
		fmt.Sprintf("Repository URL: https://github.com/%s/%s", a.Owner.Login, a.Name),
		fmt.Sprintf("Clone Command: git clone https://github.com/%s/%s.git", a.Owner.Login, a.Name),
		"This is a " + visibility + " repository.",
		"Main language: " + a.PrimaryLanguage,
		"Topics: " + strings.Join(a.Topics, ", "),
		deps,
		instructions,
	}

	context = strings.Join(slices.DeleteFunc(lines, func(l string) bool { return l == "" }), "\n")
	return context
}
