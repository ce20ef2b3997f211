// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/knadh/koanf/providers/file"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/estimo/internal/metrics"
	"github.com/tomtom215/estimo/internal/snapshot"
)

// Reloader rebuilds and publishes the serving snapshot.
type Reloader interface {
	Reload(ctx context.Context) (*snapshot.Snapshot, error)
}

// FileWatcher reports changes to a single file. *file.File satisfies it.
type FileWatcher interface {
	Watch(cb func(event interface{}, err error)) error
	Unwatch() error
}

// WatcherFactory creates a watcher for path.
type WatcherFactory func(path string) FileWatcher

func fileWatcher(path string) FileWatcher { return file.Provider(path) }

// ReloadService watches the data files and reloads the snapshot when one of
// them changes. Bursts of change events collapse into one reload, and
// reloads are spaced at least minInterval apart.
type ReloadService struct {
	reloader   Reloader
	paths      []string
	limiter    *rate.Limiter
	newWatcher WatcherFactory
	logger     zerolog.Logger
	name       string
}

// NewReloadService creates a reload service watching paths. Empty paths are
// ignored.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewReloadService(reloader Reloader, paths []string, minInterval time.Duration, logger zerolog.Logger) *ReloadService {
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}

	watched := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			watched = append(watched, p)
		}
	}

	return &ReloadService{
		reloader:   reloader,
		paths:      watched,
		limiter:    rate.NewLimiter(limit, 1),
		newWatcher: fileWatcher,
		logger:     logger.With().Str("component", "reload-watcher").Logger(),
		name:       "reload-watcher",
	}
}

// WithWatcherFactory replaces the file watcher constructor.
func (s *ReloadService) WithWatcherFactory(f WatcherFactory) *ReloadService {
	s.newWatcher = f
	return s
}

// Serve implements suture.Service. A watcher that cannot be started, or
// that stops after reporting an error, is returned as an error so the
// supervisor restarts the service and re-arms every watcher.
func (s *ReloadService) Serve(ctx context.Context) error {
	changed := make(chan string, 1)
	failed := make(chan error, 1)

	watchers := make([]FileWatcher, 0, len(s.paths))
	defer func() {
		for _, w := range watchers {
			_ = w.Unwatch()
		}
	}()

	for _, path := range s.paths {
		w := s.newWatcher(path)
		err := w.Watch(func(_ interface{}, err error) {
			if err != nil {
				// The watcher is finished after any error.
				select {
				case failed <- fmt.Errorf("watch %s: %w", path, err):
				default:
				}
				return
			}
			select {
			case changed <- path:
			default:
			}
		})
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		watchers = append(watchers, w)
	}

	s.logger.Info().Strs("paths", s.paths).Msg("Watching data files")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-failed:
			s.logger.Warn().Err(err).Msg("File watch stopped, restarting watchers")
			return err
		case path := <-changed:
			if err := s.throttle(ctx); err != nil {
				return err
			}
			s.logger.Info().Str("path", path).Msg("Data file changed, reloading")
			// Failures are logged and counted by the reloader.
			_, _ = s.reloader.Reload(ctx)
		}
	}
}

// throttle waits until the limiter allows another reload.
func (s *ReloadService) throttle(ctx context.Context) error {
	r := s.limiter.Reserve()
	delay := r.Delay()
	if delay <= 0 {
		return nil
	}

	metrics.RecordReload(metrics.ReloadThrottled)
	s.logger.Debug().Dur("delay", delay).Msg("Reload throttled")

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *ReloadService) String() string {
	return s.name
}
