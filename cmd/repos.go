package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/nikogura/readme-forge/pkg/config"
	"github.com/nikogura/readme-forge/pkg/github"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var reposLanguage string

//nolint:gochecknoglobals // Cobra boilerplate
var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List repositories available for import",
	Long: `List the repositories of the authenticated GitHub user, most recently
updated first. Needs a GitHub token in the config or GITHUB_TOKEN.

Example:
  readme-forge repos
  readme-forge repos --language Go`,
	Args: cobra.NoArgs,
	RunE: runRepos,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(reposCmd)
	reposCmd.Flags().StringVar(&reposLanguage, "language", "", "Only show repositories with this primary language")
}

func runRepos(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	if cfg.GitHubToken == "" {
		err = errors.New("listing repositories needs a GitHub token; set GITHUB_TOKEN or github_token in the config")
		return err
	}

	gh := github.NewClient(cfg.GitHubToken, cfg.GitHub.APIURL, newLogger())

	progress := startSpinner("Fetching repositories from GitHub...")
	var repos []github.RepoSummary
	repos, err = gh.ListRepos(ctx)
	progress.stopSpinner()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "REPOSITORY\tLANGUAGE\tSTARS\tVISIBILITY\tDESCRIPTION")
	for _, r := range repos {
		if reposLanguage != "" && !strings.EqualFold(r.Language, reposLanguage) {
			continue
		}
		visibility := "public"
		if r.Private {
			visibility = "private"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", r.FullName, r.Language, r.Stars, visibility, truncate(r.Description, 60))
	}

	err = w.Flush()
	return err
}

func truncate(s string, limit int) (result string) {
	runes := []rune(s)
	if len(runes) <= limit {
		result = s
		return result
	}
	result = string(runes[:limit-1]) + "…"
	return result
}
