package layout

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/five82/strata/internal/complog"
)

const watchDebounce = 150 * time.Millisecond

// Watch reloads the layout at path whenever it changes on disk and passes
// the result to onChange. Parse failures are delivered as errors so the
// caller can keep its previous layout. Watch blocks until ctx is done.
//
// The parent directory is watched rather than the file, so editors that
// save by renaming a temporary file are still picked up.
func Watch(ctx context.Context, path string, onChange func(complog.CompositeLogConfig, error)) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve layout path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onChange(complog.CompositeLogConfig{}, fmt.Errorf("watch layout: %w", err))
		case <-fire:
			fire = nil
			cfg, err := Load(target)
			onChange(cfg, err)
		}
	}
}
