package ingest

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ocastel/tooldex/internal/checksum"
)

// ReloadFunc re-ingests the source and swaps the active snapshot. It
// must either complete the full rebuild or leave the previous snapshot
// untouched.
type ReloadFunc func() (Report, error)

// RefreshCallback is called after a watcher-driven reload.
type RefreshCallback func(rep Report)

// Watch observes the catalog source file and calls reload whenever its
// content changes, until ctx is cancelled. The watch is placed on the
// containing directory because editors commonly replace the file via
// rename, which would orphan a watch on the file itself.
//
// Reloads are debounced and checksum-gated: bursts of write events
// collapse into one reload, and a reload whose bytes equal the last
// ingested content is skipped. A failed reload logs and keeps the
// previous snapshot.
func Watch(ctx context.Context, source string, reload ReloadFunc, logger *slog.Logger, cb RefreshCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dir := filepath.Dir(source)
	if err := w.Add(dir); err != nil {
		return err
	}

	lastSum, _ := checksum.File(source)
	logger.Info("watcher: started", slog.String("source", source))

	var reloadTimer *time.Timer
	var reloadCh <-chan time.Time

	scheduleReload := func() {
		if reloadTimer == nil {
			reloadTimer = time.NewTimer(200 * time.Millisecond)
			reloadCh = reloadTimer.C
		} else {
			reloadTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-reloadCh:
			sum, sumErr := checksum.File(source)
			if sumErr != nil {
				logger.Warn("watcher: source unreadable", slog.String("error", sumErr.Error()))
				continue
			}
			if sum == lastSum {
				logger.Debug("watcher: source unchanged, skipping reload")
				continue
			}

			rep, reloadErr := reload()
			if reloadErr != nil {
				logger.Warn("watcher: reload failed, keeping previous snapshot",
					slog.String("error", reloadErr.Error()))
				continue
			}
			lastSum = sum
			logger.Info("watcher: catalog reloaded",
				slog.Int("imported", rep.Imported),
				slog.Int("skipped", rep.Skipped),
				slog.Int("conflicts", rep.Conflicts))
			if cb != nil {
				cb(rep)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(source) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				scheduleReload()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
