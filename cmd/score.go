package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/nikogura/readme-forge/pkg/profile"
	"github.com/nikogura/readme-forge/pkg/repo"
	"github.com/nikogura/readme-forge/pkg/scorer"
	"github.com/nikogura/readme-forge/pkg/source"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var scoreKind string

//nolint:gochecknoglobals // Cobra boilerplate
var scoreMin int

//nolint:gochecknoglobals // Cobra boilerplate
var scoreCmd = &cobra.Command{
	Use:   "score <data-file-or-url>",
	Short: "Rate how complete a README data file is",
	Long: `Check a data file for missing pieces a good README needs: a title,
description, installation, usage, badges, license and so on. Prints a score
out of 100 per category and overall, with what to fix.

Example:
  readme-forge score project.yaml
  readme-forge score profile.yaml --kind profile --min 80`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVar(&scoreKind, "kind", "repo", "Document kind: profile or repo")
	scoreCmd.Flags().IntVar(&scoreMin, "min", 0, "Fail when the overall score is below this")
}

func runScore(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var scores scorer.Scores
	switch scoreKind {
	case "profile":
		var d profile.Data
		d, err = source.LoadProfile(ctx, appFs, args[0])
		if err != nil {
			return err
		}
		scores = scorer.ScoreProfile(d)

	case "repo":
		var d repo.Data
		d, err = source.LoadRepo(ctx, appFs, args[0])
		if err != nil {
			return err
		}
		scores = scorer.ScoreRepo(d)

	default:
		err = errors.Errorf("unknown kind %q, want profile or repo", scoreKind)
		return err
	}

	fmt.Printf("%s %s\n", styleTitle.Render("Overall:"), scoreStyle(scores.Overall).Render(fmt.Sprintf("%d/100", scores.Overall)))
	for _, category := range []string{scorer.CategoryContent, scorer.CategoryDiscoverability, scorer.CategoryCommunity} {
		score := scores.Categories[category]
		fmt.Printf("  %-16s %s\n", category, scoreStyle(score).Render(fmt.Sprintf("%3d", score)))
	}
	for _, v := range scores.Violations {
		fmt.Printf("  %s %s %s\n", styleError.Render("✗"), styleSubtle.Render("["+v.Severity+"]"), v.Description)
	}

	if scores.Overall < scoreMin {
		err = errors.Errorf("score %d is below minimum %d", scores.Overall, scoreMin)
		return err
	}

	return err
}
