// Package renderer writes generated READMEs and renders them to HTML for
// preview.
package renderer

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nikogura/readme-forge/pkg/markdown"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// DefaultFileName is the name README output is written under.
const DefaultFileName = "README.md"

// WriteMarkdown writes markdown content to a file, creating its directory.
func WriteMarkdown(fs afero.Fs, content, outputPath string) (err error) {
	outputDir := filepath.Dir(outputPath)
	err = fs.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = afero.WriteFile(fs, outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write markdown file: %s", outputPath)
		return err
	}

	return err
}

// HTML converts GitHub flavored markdown to an HTML fragment. Inline HTML is
// passed through, since generated READMEs center their header with it.
func HTML(source string) (fragment string, err error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)

	var buf bytes.Buffer
	err = md.Convert([]byte(source), &buf)
	if err != nil {
		err = errors.Wrap(err, "failed to convert markdown")
		return fragment, err
	}

	fragment = buf.String()
	return fragment, err
}

// Page renders markdown as a standalone HTML page.
func Page(title, source string) (page string, err error) {
	var body string
	body, err = HTML(source)
	if err != nil {
		return page, err
	}

	page = fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>body{max-width:980px;margin:2rem auto;padding:0 1rem;font-family:-apple-system,Segoe UI,Helvetica,Arial,sans-serif;line-height:1.5}img{max-width:100%%}pre{background:#f6f8fa;padding:1rem;overflow:auto}</style>
</head>
<body>
%s</body>
</html>
`, html.EscapeString(title), body)
	return page, err
}

// Heading is one heading of a rendered page.
type Heading struct {
	Level  int
	Text   string
	Anchor string
}

// Image is one image of a rendered page.
type Image struct {
	Src string
	Alt string
}

// Outline summarizes a rendered page.
type Outline struct {
	Headings      []Heading
	Images        []Image
	Links         []string
	BrokenAnchors []string
}

// Inspect lists the headings, images and links of an HTML page and reports
// in-page links whose anchor matches no heading.
func Inspect(page string) (outline Outline, err error) {
	var doc *goquery.Document
	doc, err = goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		err = errors.Wrap(err, "failed to parse HTML")
		return outline, err
	}

	anchors := make(map[string]bool)
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		h := Heading{
			Level:  int(goquery.NodeName(s)[1] - '0'),
			Text:   text,
			Anchor: markdown.Anchor(text),
		}
		anchors[h.Anchor] = true
		outline.Headings = append(outline.Headings, h)
	})

	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		alt, _ := s.Attr("alt")
		outline.Images = append(outline.Images, Image{Src: src, Alt: alt})
	})

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		outline.Links = append(outline.Links, href)

		if anchor, ok := strings.CutPrefix(href, "#"); ok && !anchors[anchor] {
			outline.BrokenAnchors = append(outline.BrokenAnchors, href)
		}
	})

	return outline, err
}
