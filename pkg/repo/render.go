package repo

import (
	"fmt"
	"strings"

	"github.com/nikogura/readme-forge/pkg/badges"
	"github.com/nikogura/readme-forge/pkg/markdown"
)

// Render produces the project README. Section order is fixed.
func Render(d Data) (document string) {
	fragments := []markdown.Fragment{
		markdown.Plain(RenderHeader(d.ProjectInfo)),
		markdown.Section("About", RenderAbout(d.ProjectInfo)),
	}

	if d.Extras.ShowTableOfContents {
		fragments = append(fragments, markdown.TOCSlot())
	}

	fragments = append(fragments,
		markdown.Section("Screenshots", RenderScreenshots(d.Screenshots)),
		markdown.Section("Features", RenderFeatures(d.Features)),
		markdown.Section("Tech Stack", RenderTechStack(d.TechStack)),
		markdown.Section("Installation", RenderInstallation(d.Installation, d.ProjectInfo.Name)),
		markdown.Section("Usage", RenderUsage(d.Usage)),
		markdown.Section("API Reference", RenderAPIDocs(d.APIDocs)),
		markdown.Section("Configuration", RenderConfiguration(d.Configuration)),
		markdown.Section("Roadmap", RenderRoadmap(d.Extras.Roadmap)),
		markdown.Section("FAQ", RenderFAQ(d.Extras.FAQ)),
		markdown.Section("Contributing", RenderContributing(d.Contributing)),
		markdown.Section("License", RenderLicense(d.License)),
		markdown.Section("Acknowledgments", RenderAcknowledgments(d.Extras.Acknowledgments)),
		markdown.Section("Changelog", RenderChangelog(d.Extras.Changelog)),
		markdown.Section("Author", RenderAuthor(d.Author)),
		markdown.Plain(RenderFooter()),
	)

	document = markdown.Assemble(fragments)
	return document
}

// RenderHeader renders the banner or logo, title, tagline, badges and links.
// A missing name is replaced by a placeholder.
func RenderHeader(p ProjectInfo) (md string) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = PlaceholderName
	}

	var blocks []string

	switch {
	case p.BannerURL != "":
		blocks = append(blocks, fmt.Sprintf("<p align=\"center\">\n  <img src=\"%s\" alt=\"%s banner\" width=\"100%%\">\n</p>", p.BannerURL, name))
	case p.LogoURL != "":
		blocks = append(blocks, fmt.Sprintf("<p align=\"center\">\n  <img src=\"%s\" alt=\"%s logo\" width=\"120\">\n</p>", p.LogoURL, name))
	}

	blocks = append(blocks, fmt.Sprintf("<h1 align=\"center\">%s</h1>", name))

	if p.Tagline != "" {
		blocks = append(blocks, fmt.Sprintf("<p align=\"center\">\n  <strong>%s</strong>\n</p>", p.Tagline))
	}

	if len(p.Badges) > 0 {
		images := make([]string, 0, len(p.Badges))
		for _, b := range p.Badges {
			images = append(images, fmt.Sprintf("![%s](%s)", b.Label, BadgeURL(b)))
		}
		blocks = append(blocks, "<p align=\"center\">\n  "+strings.Join(images, " ")+"\n</p>")
	}

	var links []string
	if p.WebsiteURL != "" {
		links = append(links, fmt.Sprintf("[Website](%s)", p.WebsiteURL))
	}
	if p.DemoURL != "" {
		links = append(links, fmt.Sprintf("[Demo](%s)", p.DemoURL))
	}
	if len(links) > 0 {
		blocks = append(blocks, "<p align=\"center\">\n  "+strings.Join(links, " • ")+"\n</p>")
	}

	md = strings.Join(blocks, "\n\n")
	return md
}

// BadgeURL returns the image URL of a badge.
func BadgeURL(b Badge) (url string) {
	if b.CustomURL != "" {
		url = b.CustomURL
		return url
	}
	url = badges.ShieldURL(b.Label, b.Message, b.Color, badges.ShieldOptions{
		Style:     string(b.Style),
		Logo:      b.LogoName,
		LogoColor: b.LogoColor,
	})
	return url
}

// RenderAbout renders the description.
func RenderAbout(p ProjectInfo) (md string) {
	if strings.TrimSpace(p.Description) == "" {
		return md
	}
	md = "## About\n\n" + p.Description
	return md
}

// RenderScreenshots renders the media gallery. Videos link to their source.
func RenderScreenshots(s Screenshots) (md string) {
	if !s.Enabled || len(s.Items) == 0 {
		return md
	}

	var b strings.Builder
	b.WriteString("## Screenshots\n\n<p align=\"center\">\n")
	for _, item := range s.Items {
		if item.Type == ScreenshotVideo {
			fmt.Fprintf(&b, "  <a href=\"%s\">\n    <img src=\"%s\" alt=\"%s\" width=\"80%%\">\n  </a>\n", item.URL, item.URL, item.Caption)
		} else {
			fmt.Fprintf(&b, "  <img src=\"%s\" alt=\"%s\" width=\"80%%\">\n", item.URL, item.Caption)
		}
		if item.Caption != "" {
			fmt.Fprintf(&b, "  <br><em>%s</em><br><br>\n", item.Caption)
		}
	}
	b.WriteString("</p>")

	md = b.String()
	return md
}

// RenderFeatures renders one bullet per feature.
func RenderFeatures(f Features) (md string) {
	if !f.Enabled || len(f.Items) == 0 {
		return md
	}

	lines := make([]string, 0, len(f.Items))
	for _, item := range f.Items {
		line := fmt.Sprintf("- %s **%s**", item.Emoji, item.Title)
		if item.Emoji == "" {
			line = fmt.Sprintf("- **%s**", item.Title)
		}
		if item.Description != "" {
			line += " - " + item.Description
		}
		lines = append(lines, line)
	}

	md = "## Features\n\n" + strings.Join(lines, "\n")
	return md
}

// RenderTechStack renders the tech stack slugs as icon sprite rows.
func RenderTechStack(stack []string) (md string) {
	if len(stack) == 0 {
		return md
	}

	rows := badges.SkillIconsRows(stack, "", badges.MaxIconsPerRow, "Tech Stack")
	md = "## Tech Stack\n\n<p align=\"left\">\n  " + strings.Join(rows, "<br />\n  ") + "\n</p>"
	return md
}

// installLine returns the package manager command that adds pkg.
func installLine(pm PackageManager, pkg string) (line string) {
	switch pm {
	case Yarn:
		line = "yarn add " + pkg
	case PNPM:
		line = "pnpm add " + pkg
	case Bun:
		line = "bun add " + pkg
	default:
		line = "npm install " + pkg
	}
	return line
}

// RenderInstallation renders prerequisites, install commands and extra
// steps. The package name defaults to a slug of the project name.
func RenderInstallation(in Installation, projectName string) (md string) {
	if !in.Enabled {
		return md
	}

	pkg := in.PackageName
	if pkg == "" {
		pkg = PackageSlug(projectName)
	}

	if len(in.Prerequisites) == 0 && pkg == "" && in.InstallCommands == "" && in.AdditionalSteps == "" {
		return md
	}

	var blocks []string

	if len(in.Prerequisites) > 0 {
		items := make([]string, 0, len(in.Prerequisites))
		for _, p := range in.Prerequisites {
			items = append(items, "- "+p)
		}
		blocks = append(blocks, "### Prerequisites\n\n"+strings.Join(items, "\n"))
	}

	if pkg != "" || in.InstallCommands != "" {
		quick := []string{"### Quick Start"}
		if pkg != "" {
			quick = append(quick, "```bash\n"+installLine(in.PackageManager, pkg)+"\n```")
		}
		if in.InstallCommands != "" {
			quick = append(quick, "```bash\n"+strings.TrimRight(in.InstallCommands, "\n")+"\n```")
		}
		blocks = append(blocks, strings.Join(quick, "\n\n"))
	}

	if in.AdditionalSteps != "" {
		blocks = append(blocks, strings.TrimSpace(in.AdditionalSteps))
	}

	md = "## Installation\n\n" + strings.Join(blocks, "\n\n")
	return md
}

// RenderUsage renders the quick start text and code examples.
func RenderUsage(u Usage) (md string) {
	if !u.Enabled || (strings.TrimSpace(u.QuickStart) == "" && len(u.Examples) == 0) {
		return md
	}

	var blocks []string
	if strings.TrimSpace(u.QuickStart) != "" {
		blocks = append(blocks, strings.TrimSpace(u.QuickStart))
	}

	if len(u.Examples) > 0 {
		blocks = append(blocks, "### Examples")
		for _, ex := range u.Examples {
			if ex.Title != "" {
				blocks = append(blocks, "#### "+ex.Title)
			}
			blocks = append(blocks, fmt.Sprintf("```%s\n%s\n```", ex.Language, ex.Code))
			if ex.Output != "" {
				blocks = append(blocks, fmt.Sprintf("**Output:**\n```\n%s\n```", ex.Output))
			}
		}
	}

	md = "## Usage\n\n" + strings.Join(blocks, "\n\n")
	return md
}

// RenderAPIDocs renders the endpoint reference.
func RenderAPIDocs(a APIDocs) (md string) {
	if !a.Enabled || len(a.Endpoints) == 0 {
		return md
	}

	blocks := []string{"## API Reference"}
	if a.Description != "" {
		blocks = append(blocks, a.Description)
	}

	for _, ep := range a.Endpoints {
		blocks = append(blocks, fmt.Sprintf("### `%s` %s", ep.Method, ep.Path))
		if ep.Description != "" {
			blocks = append(blocks, ep.Description)
		}
		if ep.Parameters != "" {
			blocks = append(blocks, "**Parameters:**", ep.Parameters)
		}
		if ep.ResponseExample != "" {
			blocks = append(blocks, "**Response:**", "```json\n"+ep.ResponseExample+"\n```")
		}
	}

	md = strings.Join(blocks, "\n\n")
	return md
}

// RenderConfiguration renders the environment variable and option tables.
func RenderConfiguration(c Configuration) (md string) {
	if !c.Enabled || (c.Description == "" && len(c.EnvVariables) == 0 && len(c.Options) == 0) {
		return md
	}

	blocks := []string{"## Configuration"}
	if c.Description != "" {
		blocks = append(blocks, c.Description)
	}

	if len(c.EnvVariables) > 0 {
		rows := []string{
			"| Variable | Type | Default | Required | Description |",
			"|----------|------|---------|----------|-------------|",
		}
		for _, opt := range c.EnvVariables {
			required := "No"
			if opt.Required {
				required = "Yes"
			}
			rows = append(rows, fmt.Sprintf("| `%s` | %s | %s | %s | %s |", opt.Name, opt.Type, orDash(opt.DefaultValue), required, opt.Description))
		}
		blocks = append(blocks, "### Environment Variables", strings.Join(rows, "\n"))
	}

	if len(c.Options) > 0 {
		rows := []string{
			"| Option | Type | Default | Description |",
			"|--------|------|---------|-------------|",
		}
		for _, opt := range c.Options {
			rows = append(rows, fmt.Sprintf("| `%s` | %s | %s | %s |", opt.Name, opt.Type, orDash(opt.DefaultValue), opt.Description))
		}
		blocks = append(blocks, "### Options", strings.Join(rows, "\n"))
	}

	md = strings.Join(blocks, "\n\n")
	return md
}

// RenderRoadmap renders a task list.
func RenderRoadmap(items []RoadmapItem) (md string) {
	if len(items) == 0 {
		return md
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		mark := " "
		if item.Completed {
			mark = "x"
		}
		lines = append(lines, fmt.Sprintf("- [%s] %s", mark, item.Title))
	}

	md = "## Roadmap\n\n" + strings.Join(lines, "\n")
	return md
}

// RenderFAQ renders each question as a collapsible block.
func RenderFAQ(items []FAQItem) (md string) {
	if len(items) == 0 {
		return md
	}

	blocks := make([]string, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, fmt.Sprintf("<details>\n<summary><strong>%s</strong></summary>\n\n%s\n\n</details>", item.Question, item.Answer))
	}

	md = "## FAQ\n\n" + strings.Join(blocks, "\n\n")
	return md
}

// RenderContributing renders the guidelines and code of conduct link.
func RenderContributing(c Contributing) (md string) {
	if !c.Enabled || (strings.TrimSpace(c.Guidelines) == "" && c.CodeOfConductURL == "") {
		return md
	}

	blocks := []string{"## Contributing"}
	if strings.TrimSpace(c.Guidelines) != "" {
		blocks = append(blocks, strings.TrimSpace(c.Guidelines))
	}
	if c.CodeOfConductURL != "" {
		blocks = append(blocks, fmt.Sprintf("Please read our [Code of Conduct](%s) before contributing.", c.CodeOfConductURL))
	}

	md = strings.Join(blocks, "\n\n")
	return md
}

// RenderLicense renders the license name, copyright line and either a link
// to the LICENSE file or the custom license text.
func RenderLicense(l License) (md string) {
	if !l.Enabled {
		return md
	}

	licenseType := l.Type
	if licenseType == "" {
		licenseType = LicenseMIT
	}

	line := "This project is licensed under the " + LicenseName(licenseType)
	if l.Holder != "" {
		line += " - Copyright ©"
		if l.Year != "" {
			line += " " + l.Year
		}
		line += " " + l.Holder
	}
	line += "."

	blocks := []string{"## License", line}
	switch {
	case licenseType != LicenseCustom:
		blocks = append(blocks, "See the [LICENSE](LICENSE) file for details.")
	case l.CustomText != "":
		blocks = append(blocks, l.CustomText)
	}

	md = strings.Join(blocks, "\n\n")
	return md
}

// RenderAcknowledgments renders the acknowledgments text.
func RenderAcknowledgments(text string) (md string) {
	if strings.TrimSpace(text) == "" {
		return md
	}
	md = "## Acknowledgments\n\n" + text
	return md
}

// RenderChangelog renders the changelog text.
func RenderChangelog(text string) (md string) {
	if strings.TrimSpace(text) == "" {
		return md
	}
	md = "## Changelog\n\n" + text
	return md
}

// RenderAuthor renders the author name and profile badges.
func RenderAuthor(a Author) (md string) {
	if a == (Author{}) {
		return md
	}

	blocks := []string{"## Author"}
	if a.Name != "" {
		blocks = append(blocks, "**"+a.Name+"**")
	}

	var links []string
	if a.Github != "" {
		links = append(links, "[![GitHub](https://img.shields.io/badge/GitHub-100000?style=for-the-badge&logo=github&logoColor=white)](https://github.com/"+a.Github+")")
	}
	if a.Twitter != "" {
		links = append(links, "[![Twitter](https://img.shields.io/badge/Twitter-1DA1F2?style=for-the-badge&logo=twitter&logoColor=white)](https://twitter.com/"+a.Twitter+")")
	}
	if a.Website != "" {
		links = append(links, "[![Website](https://img.shields.io/badge/Website-4285F4?style=for-the-badge&logo=google-chrome&logoColor=white)]("+a.Website+")")
	}
	if len(links) > 0 {
		blocks = append(blocks, strings.Join(links, " "))
	}

	md = strings.Join(blocks, "\n\n")
	return md
}

// RenderFooter renders the star reminder.
func RenderFooter() (md string) {
	md = "---\n\n<p align=\"center\">\n  If you found this project useful, please consider giving it a ⭐!\n</p>"
	return md
}

func orDash(s string) (result string) {
	result = s
	if result == "" {
		result = "-"
	}
	return result
}
