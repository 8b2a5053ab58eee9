// Package watcher reruns a callback whenever a data file changes on disk.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce coalesces the burst of events one editor save produces.
const DefaultDebounce = 100 * time.Millisecond

// Watch calls onChange after path is written, created or renamed into place,
// once per burst of events. The parent directory is watched so editors that
// save by replacing the file are seen. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, debounce time.Duration, logger *logrus.Logger, onChange func() error) (err error) {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	var target string
	target, err = filepath.Abs(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to resolve %s", path)
		return err
	}

	var w *fsnotify.Watcher
	w, err = fsnotify.NewWatcher()
	if err != nil {
		err = errors.Wrap(err, "failed to create file watcher")
		return err
	}
	defer w.Close()

	err = w.Add(filepath.Dir(target))
	if err != nil {
		err = errors.Wrapf(err, "failed to watch %s", filepath.Dir(target))
		return err
	}

	var mu sync.Mutex
	var timer *time.Timer
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	fire := func() {
		if ctx.Err() != nil {
			return
		}
		changeErr := onChange()
		if changeErr != nil {
			logger.WithError(changeErr).WithField("file", target).Error("reload failed")
		}
	}

	for {
		select {
		case <-ctx.Done():
			return err

		case event, ok := <-w.Events:
			if !ok {
				return err
			}

			if filepath.Clean(event.Name) != target {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			logger.WithFields(logrus.Fields{"file": event.Name, "op": event.Op.String()}).Debug("change detected")

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, fire)
			mu.Unlock()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return err
			}
			logger.WithError(watchErr).Warn("watcher error")
		}
	}
}
