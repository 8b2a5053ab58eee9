package repo

import (
	"strings"
	"testing"

	"github.com/nikogura/readme-forge/pkg/markdown"
)

func TestRenderFeatureAndLicense(t *testing.T) {
	d := DefaultDataForYear(2024)
	d.ProjectInfo.Name = "Foo"
	d.Features.Items = []Feature{{ID: "f1", Emoji: "✨", Title: "Fast", Description: "very fast"}}
	d.License.Type = LicenseMIT
	d.License.Holder = "Jane"
	d.License.Year = "2025"

	md := Render(d)

	if !strings.Contains(md, "## Features\n\n- ✨ **Fast** - very fast") {
		t.Errorf("Expected feature line, got:\n%s", md)
	}

	licenseAt := strings.Index(md, "## License")
	if licenseAt < 0 {
		t.Fatalf("Expected license section, got:\n%s", md)
	}

	license := md[licenseAt:]
	if !strings.Contains(license, "MIT License") {
		t.Error("Expected MIT License name")
	}
	if !strings.Contains(license, "Copyright © 2025 Jane") {
		t.Errorf("Expected copyright line, got:\n%s", license)
	}
}

func TestRenderDeterministic(t *testing.T) {
	d := sampleData()

	if Render(d) != Render(d) {
		t.Error("Expected identical output for identical data")
	}
}

func TestRenderDisabledSectionsOmitted(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Data)
		heading string
	}{
		{name: "features disabled", mutate: func(d *Data) { d.Features.Enabled = false }, heading: "## Features"},
		{name: "features empty", mutate: func(d *Data) { d.Features.Items = nil }, heading: "## Features"},
		{name: "usage disabled", mutate: func(d *Data) { d.Usage.Enabled = false }, heading: "## Usage"},
		{name: "usage empty", mutate: func(d *Data) { d.Usage = Usage{Enabled: true} }, heading: "## Usage"},
		{name: "api disabled", mutate: func(d *Data) { d.APIDocs.Enabled = false }, heading: "## API Reference"},
		{name: "api enabled without endpoints", mutate: func(d *Data) { d.APIDocs.Endpoints = nil }, heading: "## API Reference"},
		{name: "screenshots disabled", mutate: func(d *Data) { d.Screenshots.Enabled = false }, heading: "## Screenshots"},
		{name: "installation disabled", mutate: func(d *Data) { d.Installation.Enabled = false }, heading: "## Installation"},
		{name: "configuration disabled", mutate: func(d *Data) { d.Configuration.Enabled = false }, heading: "## Configuration"},
		{name: "contributing disabled", mutate: func(d *Data) { d.Contributing.Enabled = false }, heading: "## Contributing"},
		{name: "license disabled", mutate: func(d *Data) { d.License.Enabled = false }, heading: "## License"},
		{name: "no roadmap", mutate: func(d *Data) { d.Extras.Roadmap = nil }, heading: "## Roadmap"},
		{name: "no faq", mutate: func(d *Data) { d.Extras.FAQ = nil }, heading: "## FAQ"},
		{name: "no author", mutate: func(d *Data) { d.Author = Author{} }, heading: "## Author"},
		{name: "no tech stack", mutate: func(d *Data) { d.TechStack = nil }, heading: "## Tech Stack"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := sampleData()
			tt.mutate(&d)

			md := Render(d)
			if strings.Contains(md, tt.heading+"\n") {
				t.Errorf("Expected %q to be omitted, got:\n%s", tt.heading, md)
			}

			title := strings.TrimPrefix(tt.heading, "## ")
			if strings.Contains(md, "- ["+title+"](") {
				t.Errorf("Expected no TOC entry for %q", title)
			}
		})
	}
}

func TestRenderTOCConsistency(t *testing.T) {
	md := Render(sampleData())

	tocStart := strings.Index(md, markdown.TOCHeading)
	if tocStart < 0 {
		t.Fatalf("Expected table of contents, got:\n%s", md)
	}

	tocBlock := md[tocStart+len(markdown.TOCHeading):]
	tocBlock = tocBlock[:strings.Index(tocBlock, "\n\n## ")+1]

	var entries []string
	for _, line := range strings.Split(strings.TrimSpace(tocBlock), "\n") {
		title := line[strings.Index(line, "[")+1 : strings.Index(line, "]")]
		entries = append(entries, title)
	}

	var headings []string
	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "## ") && line != markdown.TOCHeading {
			headings = append(headings, strings.TrimPrefix(line, "## "))
		}
	}

	if len(entries) != len(headings) {
		t.Fatalf("Expected %d TOC entries, got %d: %v vs %v", len(headings), len(entries), entries, headings)
	}

	for i := range entries {
		if entries[i] != headings[i] {
			t.Errorf("Entry %d: expected '%s', got '%s'", i, headings[i], entries[i])
		}
	}
}

func TestRenderTOCDisabled(t *testing.T) {
	d := sampleData()
	d.Extras.ShowTableOfContents = false

	md := Render(d)
	if strings.Contains(md, markdown.TOCHeading) || strings.Contains(md, markdown.TOCPlaceholder) {
		t.Errorf("Expected no table of contents, got:\n%s", md)
	}
	if strings.Contains(md, "\n\n\n") {
		t.Error("Expected no stray blank lines")
	}
}

func TestRenderTOCWithoutEntries(t *testing.T) {
	d := DefaultDataForYear(2025)
	d.Installation.Enabled = false
	d.Contributing.Enabled = false
	d.License.Enabled = false

	md := Render(d)
	if strings.Contains(md, markdown.TOCHeading) || strings.Contains(md, markdown.TOCPlaceholder) {
		t.Errorf("Expected placeholder to vanish, got:\n%s", md)
	}
}

func TestRenderHeaderPlaceholder(t *testing.T) {
	md := RenderHeader(ProjectInfo{})
	if !strings.Contains(md, "<h1 align=\"center\">My Project</h1>") {
		t.Errorf("Expected placeholder title, got:\n%s", md)
	}
}

func TestRenderHeaderBadges(t *testing.T) {
	md := RenderHeader(ProjectInfo{
		Name: "Foo",
		Badges: []Badge{
			{ID: "1", Label: "License", Message: "MIT", Color: "0080ff", Style: BadgeForTheBadge, LogoColor: "white"},
			{ID: "2", Label: "CI", CustomURL: "https://ci.example/badge.svg"},
		},
		WebsiteURL: "https://foo.dev",
		DemoURL:    "https://demo.foo.dev",
	})

	if !strings.Contains(md, "![License](https://img.shields.io/badge/License-MIT-0080ff?style=for-the-badge)") {
		t.Errorf("Expected license badge, got:\n%s", md)
	}
	if !strings.Contains(md, "![CI](https://ci.example/badge.svg)") {
		t.Error("Expected custom badge URL")
	}
	if !strings.Contains(md, "[Website](https://foo.dev) • [Demo](https://demo.foo.dev)") {
		t.Error("Expected website and demo links")
	}
}

func TestRenderInstallation(t *testing.T) {
	tests := []struct {
		name     string
		in       Installation
		project  string
		contains []string
		empty    bool
	}{
		{
			name:     "slug from project name",
			in:       Installation{Enabled: true, PackageManager: PNPM},
			project:  "My Cool Lib",
			contains: []string{"### Quick Start", "pnpm add my-cool-lib"},
		},
		{
			name:     "explicit package and commands",
			in:       Installation{Enabled: true, PackageManager: Yarn, PackageName: "foo", Prerequisites: []string{"Node 18"}, InstallCommands: "make build\n"},
			contains: []string{"### Prerequisites\n\n- Node 18", "yarn add foo", "```bash\nmake build\n```"},
		},
		{
			name:     "additional steps only",
			in:       Installation{Enabled: true, AdditionalSteps: "Run `go install`."},
			contains: []string{"## Installation\n\nRun `go install`."},
		},
		{
			name:  "nothing to show",
			in:    Installation{Enabled: true},
			empty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := RenderInstallation(tt.in, tt.project)
			if tt.empty {
				if md != "" {
					t.Errorf("Expected empty section, got:\n%s", md)
				}
				return
			}
			for _, want := range tt.contains {
				if !strings.Contains(md, want) {
					t.Errorf("Expected %q in:\n%s", want, md)
				}
			}
		})
	}
}

func TestRenderLicenseVariants(t *testing.T) {
	md := RenderLicense(License{Enabled: true, Type: LicenseCustom, CustomText: "Do whatever."})
	if !strings.Contains(md, "Custom License.") || !strings.Contains(md, "Do whatever.") {
		t.Errorf("Expected custom license text, got:\n%s", md)
	}
	if strings.Contains(md, "LICENSE") {
		t.Error("Expected no LICENSE link for custom license")
	}

	md = RenderLicense(License{Enabled: true, Type: LicenseApache2, CustomText: "ignored"})
	if strings.Contains(md, "ignored") {
		t.Error("Expected custom text to be ignored for non-custom license")
	}
	if strings.Contains(md, "Copyright") {
		t.Error("Expected no copyright line without holder")
	}
	if !strings.Contains(md, "Apache License 2.0") {
		t.Errorf("Expected Apache name, got:\n%s", md)
	}
}

func TestRenderConfigurationTables(t *testing.T) {
	md := RenderConfiguration(Configuration{
		Enabled:      true,
		EnvVariables: []ConfigOption{{ID: "1", Name: "PORT", Type: "number", Required: true, Description: "Listen port"}},
		Options:      []ConfigOption{{ID: "2", Name: "debug", Type: "bool", DefaultValue: "false"}},
	})

	if !strings.Contains(md, "| `PORT` | number | - | Yes | Listen port |") {
		t.Errorf("Expected env row, got:\n%s", md)
	}
	if !strings.Contains(md, "| `debug` | bool | false |  |") {
		t.Errorf("Expected option row, got:\n%s", md)
	}
}

func TestRenderTechStackRows(t *testing.T) {
	stack := make([]string, 0, 14)
	for i := 0; i < 14; i++ {
		stack = append(stack, "go")
	}

	md := RenderTechStack(stack)
	if strings.Count(md, "<img") != 2 {
		t.Errorf("Expected two sprite rows, got:\n%s", md)
	}
}

func TestNormalizeSetsAndIDs(t *testing.T) {
	d := Data{
		TechStack: []string{"go", "docker", "go"},
		Features:  Features{Items: []Feature{{Title: "a"}, {ID: "dup"}, {ID: "dup"}}},
	}

	d.Normalize()

	if len(d.TechStack) != 2 || d.TechStack[0] != "go" {
		t.Errorf("Expected [go docker], got %v", d.TechStack)
	}

	ids := map[string]bool{}
	for _, f := range d.Features.Items {
		if f.ID == "" || ids[f.ID] {
			t.Errorf("Expected unique non-empty ids, got %v", d.Features.Items)
		}
		ids[f.ID] = true
	}
}

func sampleData() (d Data) {
	d = DefaultDataForYear(2025)
	d.ProjectInfo.Name = "Forge"
	d.ProjectInfo.Description = "Builds READMEs."
	d.Features.Items = []Feature{{ID: "f1", Emoji: "⚡", Title: "Fast"}}
	d.TechStack = []string{"go", "docker"}
	d.Installation.Prerequisites = []string{"Go 1.25"}
	d.Usage.QuickStart = "Run it."
	d.APIDocs.Enabled = true
	d.APIDocs.Endpoints = []APIEndpoint{{ID: "e1", Method: MethodGet, Path: "/health"}}
	d.Configuration.Enabled = true
	d.Configuration.Options = []ConfigOption{{ID: "o1", Name: "debug", Type: "bool"}}
	d.Screenshots.Enabled = true
	d.Screenshots.Items = []Screenshot{{ID: "s1", URL: "https://img/1.png", Caption: "Main", Type: ScreenshotImage}}
	d.Extras.Roadmap = []RoadmapItem{{ID: "r1", Title: "v1", Completed: true}}
	d.Extras.FAQ = []FAQItem{{ID: "q1", Question: "Why?", Answer: "Because."}}
	d.Extras.Acknowledgments = "Thanks."
	d.Author = Author{Name: "Jane", Github: "jane"}
	d.License.Holder = "Jane"
	return d
}

func TestRenderAuthor(t *testing.T) {
	tests := []struct {
		name   string
		author Author
		want   string
	}{
		{"empty", Author{}, ""},
		{"twitter only", Author{Twitter: "jane"}, "https://twitter.com/jane"},
		{"website only", Author{Website: "https://jane.dev"}, "(https://jane.dev)"},
		{"name", Author{Name: "Jane"}, "**Jane**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := RenderAuthor(tt.author)
			if tt.want == "" {
				if md != "" {
					t.Errorf("Expected empty output, got '%s'", md)
				}
				return
			}
			if !strings.HasPrefix(md, "## Author") {
				t.Errorf("Expected '## Author' heading, got '%s'", md)
			}
			if !strings.Contains(md, tt.want) {
				t.Errorf("Expected output to contain '%s', got '%s'", tt.want, md)
			}
		})
	}
}
