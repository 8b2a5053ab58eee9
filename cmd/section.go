package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nikogura/readme-forge/pkg/config"
	"github.com/nikogura/readme-forge/pkg/importer"
	"github.com/nikogura/readme-forge/pkg/llm"
	"github.com/nikogura/readme-forge/pkg/repo"
	"github.com/nikogura/readme-forge/pkg/source"
	"github.com/nikogura/readme-forge/pkg/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var sectionTarget string

//nolint:gochecknoglobals // Cobra boilerplate
var sectionInstruction string

//nolint:gochecknoglobals // Cobra boilerplate
var sectionWrite bool

//nolint:gochecknoglobals // Cobra boilerplate
var sectionCmd = &cobra.Command{
	Use:   "section <data-file> <section>",
	Short: "Generate or refine one project README section with AI",
	Long: `Ask Claude for one section of a project README and apply the answer to
the project data.

Sections: description, features, installation, usage, api, contributing,
full and refine. A full README is printed but not applied. Refine rewrites
the section named by --target following --instruction.

Example:
  readme-forge section project.yaml features
  readme-forge section project.yaml usage --write
  readme-forge section project.yaml refine --target description --instruction "Make it shorter"`,
	Args: cobra.ExactArgs(2),
	RunE: runSection,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(sectionCmd)
	sectionCmd.Flags().StringVar(&sectionTarget, "target", "", "Section to rewrite when refining")
	sectionCmd.Flags().StringVar(&sectionInstruction, "instruction", "", "How to refine, or extra context for other sections")
	sectionCmd.Flags().BoolVar(&sectionWrite, "write", false, "Save the updated project data back to the data file")
}

func runSection(cmd *cobra.Command, args []string) (err error) {
	dataFile := args[0]

	var section, target llm.Section
	section, err = llm.ParseSection(args[1])
	if err != nil {
		return err
	}

	if section == llm.SectionRefine {
		target, err = parseRefineTarget(sectionTarget, sectionInstruction)
		if err != nil {
			return err
		}
	}

	if sectionWrite && section == llm.SectionFull {
		err = errors.New("a full README has no place in the data file; drop --write")
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger()

	var gen importer.Generator
	gen, err = newGenerator(cfg, logger)
	if err != nil {
		return err
	}

	var d repo.Data
	d, err = source.LoadRepo(ctx, appFs, dataFile)
	if err != nil {
		return err
	}

	s := store.NewRepoStoreWith(d, store.WithLogger(logger))
	defer s.Close()

	imp := importer.New(s, nil, gen, logger)

	progress := startSpinner(fmt.Sprintf("Generating %s with Claude API...", section))
	var content string
	content, err = imp.GenerateSection(ctx, section, target, sectionInstruction)
	progress.stopSpinner()
	if err != nil {
		err = errors.Wrapf(err, "failed to generate %s", section)
		return err
	}

	fmt.Println(content)

	if sectionWrite {
		err = source.SaveYAML(appFs, dataFile, s.Data())
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ Updated %s\n", dataFile)
	}

	return err
}

// parseRefineTarget checks that a refine request names a section that holds
// text and says what to change.
func parseRefineTarget(target, instruction string) (section llm.Section, err error) {
	if strings.TrimSpace(instruction) == "" {
		err = errors.New("refine needs --instruction")
		return section, err
	}

	section, err = llm.ParseSection(target)
	if err != nil {
		err = errors.Wrap(err, "refine needs --target")
		return section, err
	}

	if section == llm.SectionFull || section == llm.SectionRefine {
		err = errors.Errorf("cannot refine %q", section)
		return section, err
	}

	return section, err
}
