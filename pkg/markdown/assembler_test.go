package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembleJoinsWithBlankLines(t *testing.T) {
	doc := Assemble([]Fragment{
		Plain("# Title\n"),
		Plain(""),
		Section("About", "## About\n\nText\n"),
		Plain("   \n"),
		Plain("footer"),
	})

	assert.Equal(t, "# Title\n\n## About\n\nText\n\nfooter\n", doc)
}

func TestAssembleTOCSubstitution(t *testing.T) {
	doc := Assemble([]Fragment{
		Plain("# Title"),
		Section("About", "## About\n\nx"),
		TOCSlot(),
		Section("Features", "## Features\n\n- a"),
		Section("Skipped", ""),
		Section("API Reference", "## API Reference\n\ny"),
	})

	expectedTOC := "## Table of Contents\n\n" +
		"- [About](#about)\n" +
		"- [Features](#features)\n" +
		"- [API Reference](#api-reference)"
	assert.Contains(t, doc, expectedTOC)
	assert.NotContains(t, doc, TOCPlaceholder)
	assert.NotContains(t, doc, "Skipped")

	tocAt := strings.Index(doc, TOCHeading)
	featuresAt := strings.Index(doc, "## Features")
	assert.Less(t, tocAt, featuresAt, "TOC must sit at the slot position")
}

func TestAssembleTOCRemovedWithoutResidue(t *testing.T) {
	doc := Assemble([]Fragment{
		Plain("# Title"),
		TOCSlot(),
		Plain("footer"),
	})

	assert.Equal(t, "# Title\n\nfooter\n", doc)
	assert.NotContains(t, doc, "\n\n\n")
}

func TestAssembleTOCMatchesRenderedSections(t *testing.T) {
	fragments := []Fragment{
		TOCSlot(),
		Section("One", "## One"),
		Section("Two", ""),
		Section("Three", "## Three"),
	}

	doc := Assemble(fragments)
	assert.Equal(t, 2, strings.Count(doc, "\n- ["))
	assert.Less(t, strings.Index(doc, "(#one)"), strings.Index(doc, "(#three)"))
}

func TestAssembleEmpty(t *testing.T) {
	assert.Empty(t, Assemble(nil))
	assert.Empty(t, Assemble([]Fragment{TOCSlot()}))
}

func TestAnchor(t *testing.T) {
	tests := map[string]string{
		"Tech Stack":         "tech-stack",
		"API Reference":      "api-reference",
		"FAQ":                "faq",
		"Q&A: Things":        "qa-things",
		"  Getting Started ": "getting-started",
		"Café Setup":         "café-setup",
		"Cafe\u0301 Setup":   "café-setup",
		"ΣΟΦΊΑ":              "σοφία",
	}

	for title, expected := range tests {
		assert.Equal(t, expected, Anchor(title), title)
	}
}

func TestAssembleDeterministic(t *testing.T) {
	fragments := []Fragment{Plain("# A"), TOCSlot(), Section("B", "## B")}
	assert.Equal(t, Assemble(fragments), Assemble(fragments))
}
