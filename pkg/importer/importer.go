package importer

import (
	"context"

	"github.com/nikogura/readme-forge/pkg/github"
	"github.com/nikogura/readme-forge/pkg/llm"
	"github.com/nikogura/readme-forge/pkg/repo"
	"github.com/nikogura/readme-forge/pkg/store"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrAllSectionsFailed is returned when AI generation was attempted and
	// no section succeeded.
	ErrAllSectionsFailed = errors.New("every AI section failed")
	// ErrSuperseded is returned when a newer import started before this one
	// finished applying.
	ErrSuperseded = errors.New("import superseded by a newer import")
)

// Analyzer fetches repository metadata.
type Analyzer interface {
	Analyze(ctx context.Context, owner, repo string) (github.Analysis, error)
}

// Generator produces AI text for one section.
type Generator interface {
	Generate(ctx context.Context, req llm.GenerateRequest) (llm.GenerateResponse, error)
}

// SectionResult is the outcome of one AI section.
type SectionResult struct {
	Section llm.Section
	Err     error
}

// Report describes what an import did.
type Report struct {
	Repository string
	Sections   []SectionResult
}

// Succeeded lists the sections that were applied.
func (r Report) Succeeded() (sections []llm.Section) {
	for _, s := range r.Sections {
		if s.Err == nil {
			sections = append(sections, s.Section)
		}
	}
	return sections
}

// Failed lists the sections whose generation failed.
func (r Report) Failed() (sections []llm.Section) {
	for _, s := range r.Sections {
		if s.Err != nil {
			sections = append(sections, s.Section)
		}
	}
	return sections
}

// Importer fills a RepoStore from a repository analysis.
type Importer struct {
	store     *store.RepoStore
	analyzer  Analyzer
	generator Generator
	logger    *logrus.Logger
}

// New creates an importer. A nil generator imports metadata only.
func New(s *store.RepoStore, analyzer Analyzer, generator Generator, logger *logrus.Logger) (i *Importer) {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}

	i = &Importer{
		store:     s,
		analyzer:  analyzer,
		generator: generator,
		logger:    logger,
	}
	return i
}

// Import fetches owner/repo and folds it into the store. The import is
// registered before the fetch starts, so a newer import begun while the
// fetch is outstanding supersedes this one.
func (i *Importer) Import(ctx context.Context, owner, repoName, prompt string) (report Report, err error) {
	if i.analyzer == nil {
		err = errors.New("no repository analyzer configured")
		return report, err
	}

	token := i.store.BeginImport()

	var analysis github.Analysis
	analysis, err = i.analyzer.Analyze(ctx, owner, repoName)
	if err != nil {
		err = errors.Wrap(err, "failed to analyze repository")
		return report, err
	}

	report, err = i.importWithToken(ctx, token, analysis, prompt)
	return report, err
}

// ImportAnalysis resets the store, folds the analysis metadata in, then
// generates the AI sections concurrently and applies each one that
// succeeded. Results are dropped if another import begins meanwhile.
func (i *Importer) ImportAnalysis(ctx context.Context, analysis github.Analysis, prompt string) (report Report, err error) {
	token := i.store.BeginImport()
	report, err = i.importWithToken(ctx, token, analysis, prompt)
	return report, err
}

func (i *Importer) importWithToken(ctx context.Context, token store.ImportToken, analysis github.Analysis, prompt string) (report Report, err error) {
	report.Repository = analysis.FullName

	if !i.store.ApplyIfCurrent(token, func(d *repo.Data) { Fold(d, analysis) }) {
		err = ErrSuperseded
		return report, err
	}

	if i.generator == nil {
		i.store.RegenerateNow()
		return report, err
	}

	i.store.SetGeneratingAI(true)
	defer i.store.SetGeneratingAI(false)

	requests := SectionRequests(analysis, prompt)
	responses := make([]llm.GenerateResponse, len(requests))
	report.Sections = make([]SectionResult, len(requests))

	// Settle-all: a failed section never cancels its siblings.
	var g errgroup.Group
	for idx, req := range requests {
		g.Go(func() error {
			resp, genErr := i.generator.Generate(ctx, req)
			responses[idx] = resp
			report.Sections[idx] = SectionResult{Section: req.Section, Err: genErr}
			return nil
		})
	}
	_ = g.Wait()

	for idx, result := range report.Sections {
		if result.Err != nil {
			i.logger.WithError(result.Err).WithField("section", result.Section).Warn("AI section failed")
			continue
		}

		content := responses[idx].Content
		if !i.store.ApplyIfCurrent(token, func(d *repo.Data) { ApplySection(d, result.Section, content) }) {
			err = ErrSuperseded
			return report, err
		}
	}

	if len(report.Sections) > 0 && len(report.Succeeded()) == 0 {
		err = errors.Wrapf(ErrAllSectionsFailed, "first error: %v", report.Sections[0].Err)
		i.store.RegenerateNow()
		return report, err
	}

	i.store.RegenerateNow()

	i.logger.WithFields(logrus.Fields{
		"repo":      report.Repository,
		"succeeded": len(report.Succeeded()),
		"failed":    len(report.Failed()),
	}).Info("import complete")

	return report, err
}

// GenerateSection asks for one section of the current document and stores
// the answer. For a refine request target names the section being rewritten
// and instruction says how.
func (i *Importer) GenerateSection(ctx context.Context, section llm.Section, target llm.Section, instruction string) (content string, err error) {
	if i.generator == nil {
		err = llm.ErrMissingAPIKey
		return content, err
	}

	apply := section
	if section == llm.SectionRefine {
		apply = target
	}

	d := i.store.Data()
	req := llm.GenerateRequest{
		ProjectName:        d.ProjectInfo.Name,
		ProjectDescription: d.ProjectInfo.Description,
		TechStack:          d.TechStack,
		Section:            section,
	}
	if section == llm.SectionRefine {
		req.ExistingContent = ExistingContent(d, target)
		req.Instruction = instruction
	} else if instruction != "" {
		req.AdditionalContext = instruction
	}

	i.store.SetGeneratingAI(true)
	defer i.store.SetGeneratingAI(false)

	var resp llm.GenerateResponse
	resp, err = i.generator.Generate(ctx, req)
	if err != nil {
		return content, err
	}

	content = resp.Content
	i.store.Mutate(func(d *repo.Data) bool {
		return ApplySection(d, apply, content)
	})
	i.store.RegenerateNow()

	return content, err
}

// SectionRequests builds the AI requests for an import. Installation is only
// requested when there is no package.json to derive it from.
func SectionRequests(a github.Analysis, prompt string) (requests []llm.GenerateRequest) {
	shared := CommonContext(a, prompt)

	stack := make([]string, 0, len(a.Languages))
	for _, l := range a.Languages {
		stack = append(stack, l.Name)
	}

	sections := []llm.Section{llm.SectionDescription, llm.SectionFeatures}
	if a.PackageInfo == nil {
		sections = append(sections, llm.SectionInstallation)
	}
	sections = append(sections, llm.SectionUsage, llm.SectionContributing)

	for _, section := range sections {
		description := a.Description
		if section == llm.SectionDescription && description == "" {
			description = "A " + a.PrimaryLanguage + " project"
		}

		requests = append(requests, llm.GenerateRequest{
			ProjectName:        a.Name,
			ProjectDescription: description,
			TechStack:          stack,
			Section:            section,
			AdditionalContext:  shared,
			FileContents:       a.FileContents,
		})
	}

	return requests
}
