package cmd

import (
	"context"
	"time"

	"github.com/nikogura/readme-forge/pkg/badges"
	"github.com/nikogura/readme-forge/pkg/profile"
	"github.com/nikogura/readme-forge/pkg/repo"
	"github.com/nikogura/readme-forge/pkg/source"
	"github.com/nikogura/readme-forge/pkg/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var renderOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var renderStdout bool

//nolint:gochecknoglobals // Cobra boilerplate
var renderIconStyle string

//nolint:gochecknoglobals // Cobra boilerplate
var profileCmd = &cobra.Command{
	Use:   "profile <data-file-or-url>",
	Short: "Render a GitHub profile README",
	Long: `Render a GitHub profile README from a YAML or JSON data file.

Fields missing from the file keep their defaults. Run 'readme-forge schema
profile' for the full list of fields.

Example:
  readme-forge profile profile.yaml
  readme-forge profile profile.yaml --icon-style shields-badge --stdout
  readme-forge profile https://example.com/profile.json --output-dir ./octocat`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

//nolint:gochecknoglobals // Cobra boilerplate
var repoCmd = &cobra.Command{
	Use:   "repo <data-file-or-url>",
	Short: "Render a project README",
	Long: `Render a project README from a YAML or JSON data file.

Fields missing from the file keep their defaults. Run 'readme-forge schema
repo' for the full list of fields.

Example:
  readme-forge repo project.yaml
  readme-forge repo project.yaml --stdout > README.md`,
	Args: cobra.ExactArgs(1),
	RunE: runRepo,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(repoCmd)

	for _, c := range []*cobra.Command{profileCmd, repoCmd} {
		c.Flags().StringVar(&renderOutputDir, "output-dir", "", "Output directory (default from config)")
		c.Flags().BoolVar(&renderStdout, "stdout", false, "Print markdown instead of writing README.md")
	}
	profileCmd.Flags().StringVar(&renderIconStyle, "icon-style", "", "Skill icon style (default from data file, then config)")
}

func runProfile(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var d profile.Data
	d, err = source.LoadProfile(ctx, appFs, args[0])
	if err != nil {
		return err
	}

	style := renderIconStyle
	if style == "" && d.Skills.IconStyle == "" {
		style = cfg.Defaults.IconStyle
	}
	if style != "" {
		err = validateIconStyle(style)
		if err != nil {
			return err
		}
		d.Skills.IconStyle = style
	}

	s := store.NewProfileStoreWith(d, store.WithLogger(newLogger()))
	defer s.Close()

	err = emitMarkdown(s.Markdown(), getOutputDir(renderOutputDir, cfg.Defaults.OutputDir), renderStdout)
	return err
}

func runRepo(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var d repo.Data
	d, err = source.LoadRepo(ctx, appFs, args[0])
	if err != nil {
		return err
	}

	s := store.NewRepoStoreWith(d, store.WithLogger(newLogger()))
	defer s.Close()

	err = emitMarkdown(s.Markdown(), getOutputDir(renderOutputDir, cfg.Defaults.OutputDir), renderStdout)
	return err
}

func validateIconStyle(style string) (err error) {
	for _, known := range badges.Styles() {
		if string(known) == style {
			return err
		}
	}
	err = errors.Errorf("unknown icon style %q", style)
	return err
}
