package profile

import (
	"fmt"
	"strings"

	"github.com/nikogura/readme-forge/pkg/badges"
	"github.com/nikogura/readme-forge/pkg/markdown"
)

const (
	statsAPI  = "https://github-readme-stats-sigma-five.vercel.app/api"
	streakAPI = "https://github-readme-streak-stats-salesp07.vercel.app/"
	typingSVG = "https://readme-typing-svg.herokuapp.com?font=Fira+Code&weight=600&size=28&pause=1000&color=58A6FF&center=true&vCenter=true&width=600&lines="
	visitIcon = "https://img.shields.io/badge/Visit-2ea44f?style=for-the-badge&logo=googlechrome&logoColor=white"
)

// Context carries values shared between section renderers.
type Context struct {
	Username     string
	ProjectTheme string
	QuoteTheme   string
}

// NewContext derives the render context from the document.
func NewContext(d Data) (ctx Context) {
	ctx.Username = strings.TrimSpace(d.User.GithubUsername)
	if ctx.Username == "" {
		ctx.Username = FallbackUsername
	}

	ctx.ProjectTheme = firstNonEmpty(d.Extras.ProjectTheme, d.Stats.Github.Theme, DefaultTheme)
	ctx.QuoteTheme = firstNonEmpty(d.Extras.QuoteTheme, DefaultTheme)
	return ctx
}

// Render produces the profile README.
func Render(d Data) (document string) {
	ctx := NewContext(d)

	fragments := []markdown.Fragment{
		markdown.Plain(RenderHeader(d.Header, d.Socials, ctx)),
		markdown.Plain(RenderAbout(d.About)),
		markdown.Plain(RenderSkills(d.Skills)),
		markdown.Plain(RenderStats(d.Stats, ctx)),
		markdown.Plain(RenderTrophies(d.Extras, ctx)),
		markdown.Plain(RenderActivity(d.Extras, ctx)),
		markdown.Plain(RenderSnake(d.Extras)),
		markdown.Plain(RenderProjects(d.Projects, ctx)),
		markdown.Plain(RenderQuote(d.Extras, ctx)),
		markdown.Plain(RenderSupport(d.Support)),
		markdown.Plain(RenderFooter()),
	}

	document = markdown.Assemble(fragments)
	return document
}

// RenderHeader renders the typing title, subtitle, counters and social links.
// It always renders, using the fallback username when none is set.
func RenderHeader(h Header, s Socials, ctx Context) (md string) {
	var b strings.Builder

	b.WriteString("<div align=\"center\">\n\n")

	if h.Banner != "" {
		fmt.Fprintf(&b, "<img src=\"%s\" alt=\"banner\" width=\"100%%\" />\n\n", h.Banner)
	}

	title := h.Title
	if title == "" {
		title = fmt.Sprintf("Hey 👋 I'm %s", ctx.Username)
	}
	fmt.Fprintf(&b, "<a href=\"https://git.io/typing-svg\"><img src=\"%s%s\" alt=\"Typing SVG\" /></a>\n\n", typingSVG, badges.EncodeURIComponent(title))

	if h.Subtitle != "" {
		fmt.Fprintf(&b, "### %s\n\n", h.Subtitle)
	}

	if h.ShowViews {
		fmt.Fprintf(&b, "![Profile Views](https://komarev.com/ghpvc/?username=%s&color=blueviolet&style=flat-square) ", ctx.Username)
		fmt.Fprintf(&b, "![Followers](https://img.shields.io/github/followers/%s?style=flat-square&color=blue)\n\n", ctx.Username)
	}

	if links := SocialLinks(s); len(links) > 0 {
		b.WriteString(strings.Join(links, " "))
		b.WriteString("\n\n")
	}

	b.WriteString("</div>\n\n---")

	md = b.String()
	return md
}

type socialNetwork struct {
	label  string
	color  string
	logo   string
	prefix string
	value  func(s Socials) string
}

// socialNetworks is the fixed render order of social badges.
func socialNetworks() (networks []socialNetwork) {
	networks = []socialNetwork{
		{"GitHub", "100000", "github", "https://github.com/", func(s Socials) string { return s.Github }},
		{"LinkedIn", "0077B5", "linkedin", "https://linkedin.com/in/", func(s Socials) string { return s.Linkedin }},
		{"Twitter", "1DA1F2", "twitter", "https://twitter.com/", func(s Socials) string { return s.Twitter }},
		{"Instagram", "E4405F", "instagram", "https://instagram.com/", func(s Socials) string { return s.Instagram }},
		{"Telegram", "2CA5E0", "telegram", "https://t.me/", func(s Socials) string { return s.Telegram }},
		{"YouTube", "FF0000", "youtube", "https://youtube.com/@", func(s Socials) string { return s.Youtube }},
		{"Dev.to", "0A0A0A", "devdotto", "https://dev.to/", func(s Socials) string { return s.Dev }},
		{"Medium", "12100E", "medium", "https://medium.com/@", func(s Socials) string { return s.Medium }},
		{"Stack Overflow", "FE7A16", "stackoverflow", "https://stackoverflow.com/users/", func(s Socials) string { return s.Stackoverflow }},
		{"Discord", "5865F2", "discord", "https://discord.com/users/", func(s Socials) string { return s.Discord }},
		{"Website", "4285F4", "google-chrome", "", func(s Socials) string { return s.Website }},
	}
	return networks
}

// SocialLinks returns one linked badge per configured network.
func SocialLinks(s Socials) (links []string) {
	for _, n := range socialNetworks() {
		handle := strings.TrimSpace(n.value(s))
		if handle == "" {
			continue
		}
		badge := badges.ShieldURL(n.label, "", n.color, badges.ShieldOptions{Style: "for-the-badge", Logo: n.logo, LogoColor: "white"})
		links = append(links, fmt.Sprintf("[![%s](%s)](%s%s)", n.label, badge, n.prefix, handle))
	}
	return links
}

// RenderAbout renders the biography and the fixed-order bullet list.
func RenderAbout(a About) (md string) {
	bullets := []struct {
		value  string
		format string
	}{
		{a.WorkingOn, "- 🔭 I'm currently working on **%s**"},
		{a.Learning, "- 🌱 I'm currently learning **%s**"},
		{a.AskMeAbout, "- 💬 Ask me about **%s**"},
		{a.Collaboration, "- 👯 I'm looking to collaborate on **%s**"},
		{a.FunFact, "- ⚡ Fun fact: **%s**"},
		{a.Hobbies, "- 🎮 Hobbies: **%s**"},
		{a.Contact, "- 📫 How to reach me: **%s**"},
	}

	var lines []string
	for _, bullet := range bullets {
		if bullet.value != "" {
			lines = append(lines, fmt.Sprintf(bullet.format, bullet.value))
		}
	}
	if a.PortfolioLink != "" {
		lines = append(lines, fmt.Sprintf("- 🔗 Portfolio: **[%s](%s)**", a.PortfolioLink, a.PortfolioLink))
	}

	if a.Bio == "" && len(lines) == 0 {
		return md
	}

	var b strings.Builder
	b.WriteString("## 🧐 About Me\n\n")
	if a.Bio != "" {
		b.WriteString(a.Bio)
		b.WriteString("\n\n")
	}
	b.WriteString(strings.Join(lines, "\n"))

	md = b.String()
	return md
}

// RenderSkills renders the three skill groups in the configured icon style.
func RenderSkills(s Skills) (md string) {
	groups := []struct {
		heading string
		names   []string
	}{
		{"### 👨‍💻 Languages", s.Languages},
		{"### ⚛️ Frameworks & Libraries", s.Frameworks},
		{"### 🛠 Tools & Platforms", s.Tools},
	}

	style := badges.Style(s.IconStyle)

	var blocks []string
	for _, g := range groups {
		icons := badges.RenderSkills(g.names, style)
		if icons == "" {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("%s\n\n<p align=\"left\">\n%s\n</p>", g.heading, icons))
	}

	if len(blocks) == 0 {
		return md
	}

	md = "## 🛠️ Tech Stack\n\n" + strings.Join(blocks, "\n\n")
	return md
}

// RenderStats renders the stats cards. Two or more cards share a table with
// top languages on a full-width row underneath; a single card is centered.
func RenderStats(s Stats, ctx Context) (md string) {
	enabled := 0
	for _, show := range []bool{s.Github.Show, s.Streak.Show, s.TopLang.Show} {
		if show {
			enabled++
		}
	}
	if enabled == 0 {
		return md
	}

	statsURL := fmt.Sprintf("%s?username=%s&show_icons=%t&theme=%s&hide_border=%t", statsAPI, ctx.Username, s.Github.ShowIcons, s.Github.Theme, s.Github.HideBorder)
	streakURL := fmt.Sprintf("%s?user=%s&theme=%s&hide_border=%t", streakAPI, ctx.Username, s.Streak.Theme, s.Streak.HideBorder)
	langsURL := fmt.Sprintf("%s/top-langs/?username=%s&layout=%s&theme=%s&hide_border=%t&langs_count=8", statsAPI, ctx.Username, firstNonEmpty(s.TopLang.Layout, "compact"), s.TopLang.Theme, s.TopLang.HideBorder)

	var b strings.Builder
	b.WriteString("## 📊 GitHub Stats\n\n")

	if enabled >= 2 {
		b.WriteString("<div align=\"center\">\n  <table>\n    <tr>\n")
		if s.Github.Show {
			fmt.Fprintf(&b, "      <td><img width=\"100%%\" src=\"%s\" alt=\"GitHub Stats\" loading=\"eager\" fetchpriority=\"high\" /></td>\n", statsURL)
		}
		if s.Streak.Show {
			fmt.Fprintf(&b, "      <td><img width=\"100%%\" src=\"%s\" alt=\"GitHub Streak\" loading=\"eager\" fetchpriority=\"high\" /></td>\n", streakURL)
		}
		b.WriteString("    </tr>\n")
		if s.TopLang.Show {
			colspan := 1
			if s.Github.Show && s.Streak.Show {
				colspan = 2
			}
			fmt.Fprintf(&b, "    <tr>\n      <td colspan=\"%d\" align=\"center\"><img src=\"%s\" alt=\"Top Languages\" /></td>\n    </tr>\n", colspan, langsURL)
		}
		b.WriteString("  </table>\n</div>")
		md = b.String()
		return md
	}

	var src, alt string
	switch {
	case s.Github.Show:
		src, alt = statsURL, "GitHub Stats"
	case s.Streak.Show:
		src, alt = streakURL, "GitHub Streak"
	default:
		src, alt = langsURL, "Top Languages"
	}
	fmt.Fprintf(&b, "<div align=\"center\">\n  <img src=\"%s\" alt=\"%s\" loading=\"eager\" fetchpriority=\"high\" />\n</div>", src, alt)

	md = b.String()
	return md
}

// RenderTrophies renders the trophy row.
func RenderTrophies(e Extras, ctx Context) (md string) {
	if !e.ShowTrophies {
		return md
	}
	md = fmt.Sprintf("## 🏆 GitHub Trophies\n\n<p align=\"center\">\n  <img src=\"https://github-profile-trophy.vercel.app/?username=%s&theme=tokyonight&no-frame=true&no-bg=true&row=1&column=7\" />\n</p>", ctx.Username)
	return md
}

// RenderActivity renders the contribution activity graph.
func RenderActivity(e Extras, ctx Context) (md string) {
	if !e.ShowActivity {
		return md
	}
	md = fmt.Sprintf("## 📈 Activity Graph\n\n<p align=\"center\">\n  <img src=\"https://github-readme-activity-graph.vercel.app/graph?username=%s&theme=tokyo-night&hide_border=true\" />\n</p>", ctx.Username)
	return md
}

// RenderSnake renders the contribution snake animation.
func RenderSnake(e Extras) (md string) {
	if !e.ShowSnake {
		return md
	}
	md = `## 🐍 Contribution Snake

<p align="center">
  <picture>
    <source media="(prefers-color-scheme: dark)" srcset="https://raw.githubusercontent.com/platane/platane/output/github-contribution-grid-snake-dark.svg" />
    <source media="(prefers-color-scheme: light)" srcset="https://raw.githubusercontent.com/platane/platane/output/github-contribution-grid-snake.svg" />
    <img alt="Snake animation" src="https://raw.githubusercontent.com/platane/platane/output/github-contribution-grid-snake.svg" />
  </picture>
</p>`
	return md
}

// RenderProjects renders GitHub-hosted projects as pinned repo cards and
// everything else as a two-column table of manual cards.
func RenderProjects(projects []Project, ctx Context) (md string) {
	var cards []string
	var others []Project

	for _, p := range projects {
		if strings.Contains(p.Link, "github.com") {
			owner, repo := splitRepoLink(p.Link)
			if owner == "" || repo == "" {
				continue
			}
			cards = append(cards, fmt.Sprintf("  <a href=\"%s\"><img width=\"48%%\" src=\"%s/pin/?username=%s&repo=%s&theme=%s&hide_border=true&show_description=true\" /></a>", p.Link, statsAPI, owner, repo, ctx.ProjectTheme))
			continue
		}
		if p.Name != "" && p.Link != "" {
			others = append(others, p)
		}
	}

	if len(cards) == 0 && len(others) == 0 {
		return md
	}

	var blocks []string
	if len(cards) > 0 {
		blocks = append(blocks, "<p align=\"center\">\n"+strings.Join(cards, "\n")+"\n</p>")
	}
	if len(others) > 0 {
		blocks = append(blocks, renderProjectTable(others))
	}

	md = "## 💼 Featured Projects\n\n" + strings.Join(blocks, "\n\n")
	return md
}

func renderProjectTable(projects []Project) (md string) {
	var b strings.Builder
	b.WriteString("<p align=\"center\">\n<table>\n")

	for i := 0; i < len(projects); i += 2 {
		b.WriteString("  <tr>\n")
		b.WriteString(projectCell(projects[i]))
		if i+1 < len(projects) {
			b.WriteString(projectCell(projects[i+1]))
		} else {
			b.WriteString("    <td width=\"48%\">&nbsp;</td>\n")
		}
		b.WriteString("  </tr>\n")
	}

	b.WriteString("</table>\n</p>")
	md = b.String()
	return md
}

func projectCell(p Project) (cell string) {
	description := firstNonEmpty(p.Description, "No description")
	cell = fmt.Sprintf(`    <td width="48%%" align="center">
      <strong><a href="%s">%s</a></strong><br/>
      <sub>%s</sub><br/><br/>
      <a href="%s"><img src="%s" /></a>
    </td>
`, p.Link, p.Name, description, p.Link, visitIcon)
	return cell
}

// splitRepoLink extracts owner and repository from a github.com URL.
func splitRepoLink(link string) (owner, repo string) {
	path := link
	if idx := strings.Index(path, "github.com/"); idx >= 0 {
		path = path[idx+len("github.com/"):]
	}

	var parts []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) < 2 {
		return owner, repo
	}

	owner = strings.TrimSpace(parts[0])
	repo = parts[1]
	if idx := strings.IndexAny(repo, "?#"); idx >= 0 {
		repo = repo[:idx]
	}
	repo = strings.TrimSpace(repo)
	return owner, repo
}

// RenderQuote renders the custom quote or the random quote card.
func RenderQuote(e Extras, ctx Context) (md string) {
	if !e.ShowQuotes {
		return md
	}
	if e.CustomQuote != "" {
		md = fmt.Sprintf("## 💭 Dev Quote\n\n<p align=\"center\"><em>\"%s\"</em></p>", e.CustomQuote)
		return md
	}
	md = fmt.Sprintf("## 💭 Dev Quote\n\n<p align=\"center\">\n  <img src=\"https://quotes-github-readme.vercel.app/api?type=horizontal&theme=%s\" />\n</p>", ctx.QuoteTheme)
	return md
}

// RenderSupport renders donation buttons.
func RenderSupport(s Support) (md string) {
	if s.BuyMeACoffee == "" && s.Kofi == "" {
		return md
	}

	var b strings.Builder
	b.WriteString("## ☕ Support\n\n<p align=\"center\">\n")
	if s.BuyMeACoffee != "" {
		fmt.Fprintf(&b, "  <a href=\"https://buymeacoffee.com/%s\"><img src=\"https://img.shields.io/badge/Buy%%20Me%%20A%%20Coffee-FFDD00?style=for-the-badge&logo=buy-me-a-coffee&logoColor=black\" /></a>\n", s.BuyMeACoffee)
	}
	if s.Kofi != "" {
		fmt.Fprintf(&b, "  <a href=\"https://ko-fi.com/%s\"><img src=\"https://img.shields.io/badge/Ko--fi-F16061?style=for-the-badge&logo=ko-fi&logoColor=white\" /></a>\n", s.Kofi)
	}
	b.WriteString("</p>")

	md = b.String()
	return md
}

// RenderFooter renders the closing line.
func RenderFooter() (md string) {
	md = "---\n\n<p align=\"center\">\n  <strong>Thanks for visiting!</strong> ⭐ Star my repos if you like them!\n</p>"
	return md
}

func firstNonEmpty(values ...string) (result string) {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			result = v
			return result
		}
	}
	return result
}
