// Package markdown joins rendered section fragments into a single document
// and resolves the table of contents slot.
package markdown

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const (
	// TOCPlaceholder marks the position of the table of contents.
	TOCPlaceholder = "<!-- TOC_PLACEHOLDER -->"
	// TOCHeading is the heading of the generated table of contents.
	TOCHeading = "## Table of Contents"
)

// Fragment is the output of one section renderer. TOC is the title listed in
// the table of contents, empty when the section is not listed.
type Fragment struct {
	Body string
	TOC  string
}

// TOCSlot returns the reserved fragment replaced by the table of contents.
func TOCSlot() (f Fragment) {
	f = Fragment{Body: TOCPlaceholder}
	return f
}

// Section returns a fragment listed in the table of contents under title.
// An empty body yields an empty fragment.
func Section(title, body string) (f Fragment) {
	if strings.TrimSpace(body) == "" {
		return f
	}
	f = Fragment{Body: body, TOC: title}
	return f
}

// Plain returns a fragment that is not listed in the table of contents.
func Plain(body string) (f Fragment) {
	f = Fragment{Body: body}
	return f
}

// Empty reports whether the fragment renders nothing.
func (f Fragment) Empty() (empty bool) {
	empty = strings.TrimSpace(f.Body) == ""
	return empty
}

// Assemble joins non-empty fragments with one blank line in the given order.
// The TOC slot becomes a table of contents listing every included fragment
// that carries a TOC title, or disappears entirely when there are none.
func Assemble(fragments []Fragment) (document string) {
	var entries []string
	for _, f := range fragments {
		if f.Empty() || f.TOC == "" || f.Body == TOCPlaceholder {
			continue
		}
		entries = append(entries, TOCLine(f.TOC))
	}

	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f.Empty() {
			continue
		}
		if f.Body == TOCPlaceholder {
			if len(entries) == 0 {
				continue
			}
			parts = append(parts, TOCHeading+"\n\n"+strings.Join(entries, "\n"))
			continue
		}
		parts = append(parts, strings.Trim(f.Body, "\n"))
	}

	if len(parts) == 0 {
		return document
	}

	document = strings.Join(parts, "\n\n") + "\n"
	return document
}

// TOCLine renders one table of contents entry.
func TOCLine(title string) (line string) {
	line = "- [" + title + "](#" + Anchor(title) + ")"
	return line
}

// Anchor converts a heading title to the anchor GitHub generates for it:
// lower case, punctuation dropped, spaces turned into dashes. Composed and
// decomposed accents give the same anchor.
func Anchor(title string) (anchor string) {
	folded := cases.Lower(language.Und).String(norm.NFC.String(strings.TrimSpace(title)))

	var b strings.Builder
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	anchor = b.String()
	return anchor
}
