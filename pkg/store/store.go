// Package store holds a document in memory, regenerates its markdown on a
// debounce timer and notifies subscribers of every regeneration.
package store

import (
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultDelay is the quiet period before a scheduled regeneration fires.
const DefaultDelay = 50 * time.Millisecond

// Document is a value the store can hand out copies of.
type Document[T any] interface {
	Clone() T
}

// RenderFunc turns a document into markdown. It must not do I/O.
type RenderFunc[T any] func(d T) string

// Option configures a store.
type Option func(*settings)

type settings struct {
	delay  time.Duration
	logger *logrus.Logger
}

// WithDelay overrides the debounce window.
func WithDelay(d time.Duration) (opt Option) {
	opt = func(s *settings) {
		s.delay = d
	}
	return opt
}

// WithLogger sets the logger used for regeneration debug output.
func WithLogger(logger *logrus.Logger) (opt Option) {
	opt = func(s *settings) {
		s.logger = logger
	}
	return opt
}

type subscriber struct {
	id int
	fn func(markdown string)
}

// Store owns one document and the markdown derived from it.
type Store[T Document[T]] struct {
	mu          sync.Mutex
	data        T
	markdown    string
	render      RenderFunc[T]
	defaults    func() T
	delay       time.Duration
	logger      *logrus.Logger
	timer       *time.Timer
	seq         uint64
	subscribers []subscriber
	nextSub     int
	closed      bool
}

// New creates a store holding initial and renders it immediately.
func New[T Document[T]](initial T, render RenderFunc[T], defaults func() T, opts ...Option) (s *Store[T]) {
	cfg := settings{delay: DefaultDelay}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.logger == nil {
		cfg.logger = logrus.New()
		cfg.logger.SetLevel(logrus.WarnLevel)
	}

	s = &Store[T]{
		data:     initial,
		render:   render,
		defaults: defaults,
		delay:    cfg.delay,
		logger:   cfg.logger,
	}
	s.markdown = render(initial.Clone())

	return s
}

// Data returns a copy of the current document.
func (s *Store[T]) Data() (d T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d = s.data.Clone()
	return d
}

// Markdown returns the most recently generated markdown. It may lag the data
// by up to one debounce window.
func (s *Store[T]) Markdown() (markdown string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	markdown = s.markdown
	return markdown
}

// Pending reports whether a regeneration is scheduled.
func (s *Store[T]) Pending() (pending bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending = s.timer != nil
	return pending
}

// Update applies fn to the document and schedules regeneration.
func (s *Store[T]) Update(fn func(d *T)) {
	s.Mutate(func(d *T) (changed bool) {
		fn(d)
		changed = true
		return changed
	})
}

// Mutate applies fn to the document and schedules regeneration when fn
// reports a change.
func (s *Store[T]) Mutate(fn func(d *T) (changed bool)) (changed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed = fn(&s.data)
	if changed {
		s.scheduleLocked()
	}
	return changed
}

// Replace swaps in a whole new document and schedules regeneration.
func (s *Store[T]) Replace(d T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = d
	s.scheduleLocked()
}

// Reset restores the default document and regenerates at once.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	s.data = s.defaults()
	markdown, subs := s.regenerateLocked()
	s.mu.Unlock()

	notify(subs, markdown)
}

// RegenerateNow cancels any pending regeneration and renders immediately.
func (s *Store[T]) RegenerateNow() (markdown string) {
	s.mu.Lock()
	markdown, subs := s.regenerateLocked()
	s.mu.Unlock()

	notify(subs, markdown)
	return markdown
}

// Flush renders now if a regeneration is pending and returns the markdown.
func (s *Store[T]) Flush() (markdown string) {
	if s.Pending() {
		markdown = s.RegenerateNow()
		return markdown
	}

	markdown = s.Markdown()
	return markdown
}

// Subscribe registers fn to receive every regenerated markdown string. The
// returned func removes the subscription.
func (s *Store[T]) Subscribe(fn func(markdown string)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	id := s.nextSub
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	unsubscribe = func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.subscribers = slices.DeleteFunc(s.subscribers, func(sub subscriber) bool {
			return sub.id == id
		})
	}
	return unsubscribe
}

// Close cancels any pending regeneration. Later mutations still update the
// data but no longer schedule regeneration.
func (s *Store[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Store[T]) scheduleLocked() {
	s.seq++
	seq := s.seq

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if s.closed {
		return
	}

	s.timer = time.AfterFunc(s.delay, func() {
		s.fire(seq)
	})
}

// fire runs on the timer goroutine. A stale seq means a later mutation
// rescheduled, so the callback does nothing.
func (s *Store[T]) fire(seq uint64) {
	s.mu.Lock()
	if seq != s.seq || s.closed {
		s.mu.Unlock()
		return
	}

	markdown, subs := s.regenerateLocked()
	s.mu.Unlock()

	notify(subs, markdown)
}

func (s *Store[T]) regenerateLocked() (markdown string, subs []subscriber) {
	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	start := time.Now()
	s.markdown = s.render(s.data.Clone())
	markdown = s.markdown

	s.logger.WithFields(logrus.Fields{
		"bytes":    len(markdown),
		"duration": time.Since(start),
	}).Debug("regenerated markdown")

	subs = slices.Clone(s.subscribers)
	return markdown, subs
}

func notify(subs []subscriber, markdown string) {
	for _, sub := range subs {
		sub.fn(markdown)
	}
}
