package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nikogura/readme-forge/pkg/renderer"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var previewOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var previewStrict bool

//nolint:gochecknoglobals // Cobra boilerplate
var previewCmd = &cobra.Command{
	Use:   "preview <markdown-file>",
	Short: "Render a README to a standalone HTML page",
	Long: `Convert README markdown to HTML the way GitHub would show it, and
report the page outline. Table-of-contents links that point at no heading
are listed, and fail the command with --strict.

Example:
  readme-forge preview README.md
  readme-forge preview README.md --output /tmp/readme.html --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "HTML output path (default: markdown path with .html)")
	previewCmd.Flags().BoolVar(&previewStrict, "strict", false, "Fail when in-page links point at missing headings")
}

func runPreview(cmd *cobra.Command, args []string) (err error) {
	input := args[0]

	var source []byte
	source, err = afero.ReadFile(appFs, input)
	if err != nil {
		err = errors.Wrapf(err, "failed to read %s", input)
		return err
	}

	outPath := previewOutput
	if outPath == "" {
		outPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".html"
	}

	title := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

	var page string
	page, err = renderer.Page(title, string(source))
	if err != nil {
		return err
	}

	var outline renderer.Outline
	outline, err = renderer.Inspect(page)
	if err != nil {
		return err
	}

	err = afero.WriteFile(appFs, outPath, []byte(page), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write %s", outPath)
		return err
	}

	fmt.Printf("✓ HTML written to %s\n", outPath)
	fmt.Printf("  %d headings, %d images, %d links\n", len(outline.Headings), len(outline.Images), len(outline.Links))
	for _, h := range outline.Headings {
		fmt.Printf("  %s %s\n", strings.Repeat("#", h.Level), h.Text)
	}

	if len(outline.BrokenAnchors) > 0 {
		for _, anchor := range outline.BrokenAnchors {
			fmt.Printf("  %s no heading for %s\n", styleError.Render("✗"), anchor)
		}
		if previewStrict {
			err = errors.Errorf("%d broken in-page links", len(outline.BrokenAnchors))
			return err
		}
	}

	return err
}
