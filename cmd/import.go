package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nikogura/readme-forge/pkg/config"
	"github.com/nikogura/readme-forge/pkg/github"
	"github.com/nikogura/readme-forge/pkg/importer"
	"github.com/nikogura/readme-forge/pkg/llm"
	"github.com/nikogura/readme-forge/pkg/source"
	"github.com/nikogura/readme-forge/pkg/store"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var importNoAI bool

//nolint:gochecknoglobals // Cobra boilerplate
var importPrompt string

//nolint:gochecknoglobals // Cobra boilerplate
var importAnalysisFile string

//nolint:gochecknoglobals // Cobra boilerplate
var importSaveData string

//nolint:gochecknoglobals // Cobra boilerplate
var importOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var importStdout bool

//nolint:gochecknoglobals // Cobra boilerplate
var importCmd = &cobra.Command{
	Use:   "import [owner/repo]",
	Short: "Build a project README from a GitHub repository",
	Long: `Fetch a repository from GitHub and build its README.

Repository metadata fills the name, description, badges, tech stack, license
and installation. Unless --no-ai is given, Claude then writes the tagline,
description, features, usage and contributing sections from the repository
files. Sections that fail are left at their defaults.

Example:
  readme-forge import octocat/hello-world
  readme-forge import https://github.com/octocat/hello-world --prompt "Focus on the CLI"
  readme-forge import octocat/hello-world --no-ai --save-data project.yaml
  readme-forge import --analysis analysis.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVar(&importNoAI, "no-ai", false, "Import metadata only, without AI sections")
	importCmd.Flags().StringVar(&importPrompt, "prompt", "", "Extra instructions for the AI, given priority over everything else")
	importCmd.Flags().StringVar(&importAnalysisFile, "analysis", "", "Read a saved analysis JSON instead of calling GitHub")
	importCmd.Flags().StringVar(&importSaveData, "save-data", "", "Also write the imported project data as YAML to this path")
	importCmd.Flags().StringVar(&importOutputDir, "output-dir", "", "Output directory (default from config)")
	importCmd.Flags().BoolVar(&importStdout, "stdout", false, "Print markdown instead of writing README.md")
}

func runImport(cmd *cobra.Command, args []string) (err error) {
	if len(args) == 0 && importAnalysisFile == "" {
		err = errors.New("give a repository (owner/repo) or --analysis")
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger()

	var gen importer.Generator
	if !importNoAI {
		gen, err = newGenerator(cfg, logger)
		if err != nil {
			return err
		}
	}

	s := store.NewRepoStore(store.WithDelay(cfg.Debounce()), store.WithLogger(logger))
	defer s.Close()

	gh := github.NewClient(cfg.GitHubToken, cfg.GitHub.APIURL, logger)
	imp := importer.New(s, gh, gen, logger)

	message := "Importing repository from GitHub..."
	if gen != nil {
		message = "Importing repository and generating sections with Claude API..."
	}

	var report importer.Report
	var importErr error
	progress := startSpinner(message)
	if importAnalysisFile != "" {
		var analysis github.Analysis
		analysis, err = source.LoadAnalysis(ctx, appFs, importAnalysisFile)
		if err != nil {
			progress.stopSpinner()
			return err
		}
		report, importErr = imp.ImportAnalysis(ctx, analysis, importPrompt)
	} else {
		var owner, name string
		owner, name, err = github.ParseFullName(args[0])
		if err != nil {
			progress.stopSpinner()
			return err
		}
		report, importErr = imp.Import(ctx, owner, name, importPrompt)
	}
	progress.stopSpinner()

	// Metadata is kept when every AI section failed, so the README is still
	// worth writing.
	if importErr != nil && !errors.Is(importErr, importer.ErrAllSectionsFailed) {
		return importErr
	}

	printImportReport(report)

	if importSaveData != "" {
		err = source.SaveYAML(appFs, importSaveData, s.Data())
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ Project data written to %s\n", importSaveData)
	}

	err = emitMarkdown(s.Flush(), getOutputDir(importOutputDir, cfg.Defaults.OutputDir), importStdout)
	if err != nil {
		return err
	}

	err = importErr
	return err
}

// newGenerator builds the Claude client, failing early when no key is set.
func newGenerator(cfg config.Config, logger *logrus.Logger) (gen importer.Generator, err error) {
	err = cfg.RequireAI()
	if err != nil {
		return gen, err
	}

	var client *llm.Client
	client, err = llm.NewClient(cfg.AnthropicAPIKey, cfg.GetGenerationModel(), llm.WithLogger(logger))
	if err != nil {
		err = errors.Wrap(err, "failed to create Claude client")
		return gen, err
	}

	gen = client
	return gen, err
}

func printImportReport(report importer.Report) {
	if report.Repository != "" {
		fmt.Fprintf(os.Stderr, "%s Imported %s\n", styleSuccess.Render("✓"), styleTitle.Render(report.Repository))
	}
	for _, section := range report.Succeeded() {
		fmt.Fprintf(os.Stderr, "  %s %s\n", styleSuccess.Render("✓"), section)
	}
	for _, result := range report.Sections {
		if result.Err != nil {
			fmt.Fprintf(os.Stderr, "  %s %s: %s\n", styleError.Render("✗"), result.Section, styleSubtle.Render(result.Err.Error()))
		}
	}
}
