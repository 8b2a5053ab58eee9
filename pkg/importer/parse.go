package importer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/nikogura/readme-forge/pkg/llm"
	"github.com/nikogura/readme-forge/pkg/repo"
)

// MaxFeatures is how many candidate feature lines are read from one answer.
const MaxFeatures = 8

//nolint:gochecknoglobals // compiled once
var (
	taglinePattern     = regexp.MustCompile(`(?im)^[ \t]*Tagline:[ \t]*(.+)`)
	descriptionPattern = regexp.MustCompile(`(?ims)^[ \t]*Description:\s*(.+)`)
	bulletPattern      = regexp.MustCompile(`^(?:[-*•]|\d+\.)`)
	bulletPrefix       = regexp.MustCompile(`^(?:[-*•]|\d+\.)\s*`)
	boldPattern        = regexp.MustCompile(`^\*\*(.+?)\*\*\s*(.*)$`)
	separatorPrefix    = regexp.MustCompile(`^[-–:]\s*`)
	plainPattern       = regexp.MustCompile(`^(.+?)(?:\s+[-–]\s+|:\s+)(.+)$`)
)

// ParseDescription splits an AI description answer written as
// "Tagline: ..." / "Description: ...". Markers count only at the start of a
// line. Without either marker the whole answer is the description.
func ParseDescription(content string) (tagline, description string) {
	taglineMatch := taglinePattern.FindStringSubmatch(content)
	descriptionMatch := descriptionPattern.FindStringSubmatch(content)

	if taglineMatch != nil {
		tagline = strings.TrimSpace(taglineMatch[1])
	}

	switch {
	case descriptionMatch != nil:
		description = strings.TrimSpace(descriptionMatch[1])
	case taglineMatch == nil:
		description = content
	}

	return tagline, description
}

// ParseFeatures reads feature bullets from an AI answer. Candidate lines are
// bulleted, numbered or contain bold markers; at most MaxFeatures candidates
// are read and lines that do not split into a title are skipped.
func ParseFeatures(content string) (features []repo.Feature) {
	features = []repo.Feature{}

	candidates := 0
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if len([]rune(line)) <= 5 {
			continue
		}
		if !bulletPattern.MatchString(line) && !strings.Contains(line, "**") {
			continue
		}

		candidates++
		if candidates > MaxFeatures {
			break
		}

		f, ok := parseFeatureLine(line)
		if ok {
			features = append(features, f)
		}
	}

	return features
}

func parseFeatureLine(line string) (f repo.Feature, ok bool) {
	line = bulletPrefix.ReplaceAllString(line, "")
	emoji, line := splitEmoji(line)

	var title, description string
	if m := boldPattern.FindStringSubmatch(line); m != nil {
		title = m[1]
		description = separatorPrefix.ReplaceAllString(m[2], "")
	} else if m := plainPattern.FindStringSubmatch(line); m != nil {
		title = m[1]
		description = m[2]
	} else {
		return f, ok
	}

	title = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(title), ":-–"))
	if title == "" {
		return f, ok
	}

	if emoji == "" {
		emoji = repo.DefaultFeatureEmoji
	}

	f = repo.NewFeature()
	f.Emoji = emoji
	f.Title = title
	f.Description = strings.TrimSpace(description)
	ok = true
	return f, ok
}

// splitEmoji separates a leading emoji cluster from the rest of the line.
func splitEmoji(line string) (emoji, rest string) {
	end := 0
	for i, r := range line {
		if !isEmojiRune(r) {
			end = i
			break
		}
		end = i + len(string(r))
	}

	emoji = line[:end]
	rest = strings.TrimSpace(line[end:])
	return emoji, rest
}

func isEmojiRune(r rune) (emoji bool) {
	emoji = unicode.Is(unicode.So, r) ||
		(unicode.Is(unicode.Sk, r) && r > unicode.MaxASCII) ||
		r == '\u200d' || r == '\ufe0f'
	return emoji
}

// ApplySection stores one AI answer in the field that section owns and
// enables that section. It reports whether the section has a home in the
// document; full and refine answers do not.
func ApplySection(d *repo.Data, section llm.Section, content string) (applied bool) {
	switch section {
	case llm.SectionDescription:
		tagline, description := ParseDescription(content)
		if tagline != "" {
			d.ProjectInfo.Tagline = tagline
		}
		if description != "" {
			d.ProjectInfo.Description = description
		}
	case llm.SectionFeatures:
		d.Features.Items = ParseFeatures(content)
		d.Features.Enabled = true
	case llm.SectionInstallation:
		d.Installation.AdditionalSteps = content
		d.Installation.Enabled = true
	case llm.SectionUsage:
		d.Usage.QuickStart = content
		d.Usage.Enabled = true
	case llm.SectionAPI:
		d.APIDocs.Description = content
		d.APIDocs.Enabled = true
	case llm.SectionContributing:
		d.Contributing.Guidelines = content
		d.Contributing.Enabled = true
	default:
		return applied
	}

	applied = true
	return applied
}

// ExistingContent returns the current text of the field a section owns, used
// as the input of a refine request.
func ExistingContent(d repo.Data, section llm.Section) (content string) {
	switch section {
	case llm.SectionDescription:
		content = d.ProjectInfo.Description
		if d.ProjectInfo.Tagline != "" {
			content = "Tagline: " + d.ProjectInfo.Tagline + "\nDescription: " + d.ProjectInfo.Description
		}
	case llm.SectionFeatures:
		lines := make([]string, 0, len(d.Features.Items))
		for _, f := range d.Features.Items {
			lines = append(lines, "- "+f.Emoji+" **"+f.Title+"** - "+f.Description)
		}
		content = strings.Join(lines, "\n")
	case llm.SectionInstallation:
		content = d.Installation.AdditionalSteps
	case llm.SectionUsage:
		content = d.Usage.QuickStart
	case llm.SectionAPI:
		content = d.APIDocs.Description
	case llm.SectionContributing:
		content = d.Contributing.Guidelines
	}
	return content
}
