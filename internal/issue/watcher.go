package issue

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay coalesces the burst of events editors produce on save.
const settleDelay = 100 * time.Millisecond

// Reload is the result of re-reading a watched issue.
type Reload struct {
	Issue *Issue
	Err   error
}

// Watch monitors the issue at path for external changes and sends the
// re-parsed issue on changes until ctx is done. The parent directory is
// watched so that editors replacing the file by rename are seen.
func Watch(ctx context.Context, path string, changes chan<- Reload) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve issue path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("watcher close error", slog.String("err", err.Error()))
		}
	}(watcher)

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	slog.Debug("watching issue", slog.String("path", abs))

	settle := time.NewTimer(settleDelay)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			settle.Reset(settleDelay)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("issue watcher error", slog.String("error", err.Error()))
		case <-settle.C:
			iss, err := Load(path)
			if err != nil {
				slog.Error("Failed to reload issue", slog.String("error", err.Error()))
			}
			select {
			case changes <- Reload{Issue: iss, Err: err}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
