package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nikogura/readme-forge/pkg/config"
	"github.com/nikogura/readme-forge/pkg/profile"
	"github.com/nikogura/readme-forge/pkg/renderer"
	"github.com/nikogura/readme-forge/pkg/repo"
	"github.com/nikogura/readme-forge/pkg/source"
	"github.com/nikogura/readme-forge/pkg/store"
	"github.com/nikogura/readme-forge/pkg/watcher"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var watchKind string

//nolint:gochecknoglobals // Cobra boilerplate
var watchOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var watchCmd = &cobra.Command{
	Use:   "watch <data-file>",
	Short: "Rewrite README.md every time a data file changes",
	Long: `Render a data file once, then keep README.md in step with it until
interrupted. Rapid saves are coalesced and an invalid file leaves the last
good README in place.

Example:
  readme-forge watch project.yaml
  readme-forge watch profile.yaml --kind profile --output-dir ./octocat`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchKind, "kind", "repo", "Document kind: profile or repo")
	watchCmd.Flags().StringVar(&watchOutputDir, "output-dir", "", "Output directory (default from config)")
}

func runWatch(cmd *cobra.Command, args []string) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger()
	dataFile := args[0]
	outPath := filepath.Join(getOutputDir(watchOutputDir, cfg.Defaults.OutputDir), renderer.DefaultFileName)
	opts := []store.Option{store.WithDelay(cfg.Debounce()), store.WithLogger(logger)}

	switch watchKind {
	case "profile":
		var d profile.Data
		d, err = source.LoadProfile(ctx, appFs, dataFile)
		if err != nil {
			return err
		}
		s := store.NewProfileStoreWith(d, opts...)
		defer s.Close()

		err = watchDocument(ctx, s.Store, dataFile, outPath, logger, func() (profile.Data, error) {
			return source.LoadProfile(ctx, appFs, dataFile)
		})

	case "repo":
		var d repo.Data
		d, err = source.LoadRepo(ctx, appFs, dataFile)
		if err != nil {
			return err
		}
		s := store.NewRepoStoreWith(d, opts...)
		defer s.Close()

		err = watchDocument(ctx, s.Store, dataFile, outPath, logger, func() (repo.Data, error) {
			return source.LoadRepo(ctx, appFs, dataFile)
		})

	default:
		err = errors.Errorf("unknown kind %q, want profile or repo", watchKind)
	}

	return err
}

// watchDocument writes the current README, then reloads the data file into
// the store on every change. The store's debounced regeneration drives the
// writes.
func watchDocument[T store.Document[T]](ctx context.Context, s *store.Store[T], dataFile, outPath string, logger *logrus.Logger, load func() (T, error)) (err error) {
	write := func(md string) {
		writeErr := renderer.WriteMarkdown(appFs, md, outPath)
		if writeErr != nil {
			logger.WithError(writeErr).Error("failed to write README")
			return
		}
		logger.WithField("path", outPath).Info("README updated")
	}

	unsubscribe := s.Subscribe(write)
	defer unsubscribe()

	err = renderer.WriteMarkdown(appFs, s.Markdown(), outPath)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{"data": dataFile, "readme": outPath}).Info("watching for changes, Ctrl-C to stop")

	err = watcher.Watch(ctx, dataFile, 0, logger, func() (reloadErr error) {
		var d T
		d, reloadErr = load()
		if reloadErr != nil {
			return reloadErr
		}
		s.Replace(d)
		return reloadErr
	})
	if err != nil {
		return err
	}

	s.Flush()
	return err
}
