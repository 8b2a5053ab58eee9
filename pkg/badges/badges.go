// Package badges builds badge and icon image URLs for shields.io and
// skillicons.dev. Nothing here performs network I/O.
package badges

import (
	"fmt"
	"strings"
)

// Style selects how a list of skills is turned into images.
type Style string

// Supported skill styles.
const (
	StyleSkillIcons         Style = "skillicons"
	StyleSkillIconsLight    Style = "skillicons-light"
	StyleSkillIconsAnimated Style = "skillicons-animated"
	StyleShieldsBadge       Style = "shields-badge"
	StyleShieldsFlat        Style = "shields-flat"
	StyleShieldsPlastic     Style = "shields-plastic"
	StyleSimpleColored      Style = "simple-colored"
	StyleSimpleWhite        Style = "simple-white"
	StyleLogos              Style = "logos"
	StyleMinimal            Style = "minimal"
)

const (
	// ShieldsBaseURL is the static badge endpoint of img.shields.io.
	ShieldsBaseURL = "https://img.shields.io/badge/"
	// SkillIconsBaseURL is the batched icon sprite endpoint.
	SkillIconsBaseURL = "https://skillicons.dev/icons"
	// MaxIconsPerRow caps a single icon sprite row.
	MaxIconsPerRow = 12
	// NeutralColor is used for technologies without shield metadata.
	NeutralColor = "333333"
)

// Styles lists every style token in a stable order.
func Styles() (styles []Style) {
	styles = []Style{
		StyleSkillIcons,
		StyleSkillIconsLight,
		StyleSkillIconsAnimated,
		StyleShieldsBadge,
		StyleShieldsFlat,
		StyleShieldsPlastic,
		StyleSimpleColored,
		StyleSimpleWhite,
		StyleLogos,
		StyleMinimal,
	}
	return styles
}

// ShieldOptions carries the query parameters of a shield badge.
type ShieldOptions struct {
	Style     string
	Logo      string
	LogoColor string
}

// layout describes how one style renders.
type layout struct {
	shieldStyle string // non-empty for shield styles
	theme       string
	perLine     int
	perLineArg  bool // add &perline= to the sprite URL
}

// layoutFor is the style dispatch. Unknown styles render as skillicons.
func layoutFor(style Style) (l layout) {
	switch style {
	case StyleSkillIconsLight:
		l = layout{theme: "light", perLine: MaxIconsPerRow}
	case StyleSkillIconsAnimated:
		l = layout{theme: "dark", perLine: 8, perLineArg: true}
	case StyleShieldsBadge:
		l = layout{shieldStyle: "for-the-badge"}
	case StyleShieldsFlat:
		l = layout{shieldStyle: "flat"}
	case StyleShieldsPlastic:
		l = layout{shieldStyle: "plastic"}
	case StyleSimpleColored:
		l = layout{theme: "dark", perLine: 10}
	case StyleSimpleWhite:
		l = layout{theme: "light", perLine: 10}
	case StyleLogos:
		l = layout{theme: "dark", perLine: 15}
	case StyleMinimal:
		l = layout{theme: "light", perLine: 6}
	default:
		l = layout{theme: "dark", perLine: MaxIconsPerRow}
	}
	return l
}

// IconURL returns the image URL for a single technology rendered in style.
// Names without a known icon fall back to a neutral gray shield.
func IconURL(name string, style Style) (url string) {
	l := layoutFor(style)

	if l.shieldStyle != "" {
		url = skillShieldURL(name, l.shieldStyle)
		return url
	}

	slug, ok := LookupSlug(name)
	if !ok {
		url = neutralShieldURL(name, "flat")
		return url
	}

	perLine := 0
	if l.perLineArg {
		perLine = l.perLine
	}
	url = SkillIconsURL([]string{slug}, l.theme, perLine)
	return url
}

// RenderSkills renders skill names as inline HTML images. Icon styles emit
// sprite rows of at most the style's per-row limit joined by <br />, with any
// unrecognized names appended as neutral shields. Shield styles emit one badge
// per name.
func RenderSkills(names []string, style Style) (html string) {
	if len(names) == 0 {
		return html
	}

	l := layoutFor(style)

	if l.shieldStyle != "" {
		imgs := make([]string, 0, len(names))
		for _, name := range names {
			imgs = append(imgs, imgTag(skillShieldURL(name, l.shieldStyle), name))
		}
		html = strings.Join(imgs, " ")
		return html
	}

	known := make([]string, 0, len(names))
	var unknown []string
	for _, name := range names {
		if slug, ok := LookupSlug(name); ok {
			known = append(known, slug)
			continue
		}
		unknown = append(unknown, imgTag(neutralShieldURL(name, "flat"), name))
	}

	perLine := 0
	if l.perLineArg {
		perLine = l.perLine
	}

	var blocks []string
	for _, row := range Chunk(known, l.perLine) {
		blocks = append(blocks, imgTag(SkillIconsURL(row, l.theme, perLine), "skills"))
	}
	if len(unknown) > 0 {
		blocks = append(blocks, strings.Join(unknown, " "))
	}

	html = strings.Join(blocks, "<br />")
	return html
}

// SkillIconsURL builds a sprite URL for the given slugs. Empty theme and a
// zero perLine omit the respective parameters.
func SkillIconsURL(iconSlugs []string, theme string, perLine int) (url string) {
	url = SkillIconsBaseURL + "?i=" + strings.Join(iconSlugs, ",")
	if theme != "" {
		url += "&theme=" + theme
	}
	if perLine > 0 {
		url += fmt.Sprintf("&perline=%d", perLine)
	}
	return url
}

// SkillIconsRows renders slugs as sprite <img> rows of at most perLine icons.
func SkillIconsRows(iconSlugs []string, theme string, perLine int, alt string) (rows []string) {
	for _, chunk := range Chunk(iconSlugs, perLine) {
		rows = append(rows, imgTag(SkillIconsURL(chunk, theme, 0), alt))
	}
	return rows
}

// ShieldURL builds a static shields.io badge. An empty message yields a
// label-only badge.
func ShieldURL(label, message, color string, opts ShieldOptions) (url string) {
	url = ShieldsBaseURL + ShieldsEscape(EncodeURIComponent(label))
	if message != "" {
		url += "-" + ShieldsEscape(EncodeURIComponent(message))
	}
	url += "-" + color

	var params []string
	if opts.Style != "" {
		params = append(params, "style="+opts.Style)
	}
	if opts.Logo != "" {
		params = append(params, "logo="+opts.Logo)
		if opts.LogoColor != "" {
			params = append(params, "logoColor="+opts.LogoColor)
		}
	}
	if len(params) > 0 {
		url += "?" + strings.Join(params, "&")
	}
	return url
}

// Chunk splits items into consecutive groups of at most size elements.
func Chunk(items []string, size int) (chunks [][]string) {
	if size <= 0 {
		size = MaxIconsPerRow
	}
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// ShieldsEscape doubles the dashes and underscores that shields.io treats
// as separators.
func ShieldsEscape(s string) (escaped string) {
	escaped = strings.ReplaceAll(s, "-", "--")
	escaped = strings.ReplaceAll(escaped, "_", "__")
	return escaped
}

// EncodeURIComponent percent-encodes s leaving only the characters
// A-Z a-z 0-9 - _ . ! ~ * ' ( ) unescaped.
func EncodeURIComponent(s string) (encoded string) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	encoded = b.String()
	return encoded
}

func isUnreserved(c byte) (ok bool) {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		ok = true
	case strings.IndexByte("-_.!~*'()", c) >= 0:
		ok = true
	}
	return ok
}

func skillShieldURL(name, style string) (url string) {
	shield, ok := LookupShield(name)
	if !ok {
		url = neutralShieldURL(name, style)
		return url
	}
	url = ShieldURL(name, "", shield.Color, ShieldOptions{Style: style, Logo: shield.Logo, LogoColor: "white"})
	return url
}

func neutralShieldURL(name, style string) (url string) {
	url = ShieldURL(name, "", NeutralColor, ShieldOptions{Style: style})
	return url
}

func imgTag(src, alt string) (tag string) {
	tag = fmt.Sprintf(`<img src="%s" alt="%s" />`, src, alt)
	return tag
}
