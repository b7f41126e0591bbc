package watcher

import (
	"context"
	"log/slog"
	"time"

	"github.com/philipparndt/gointubate/pkg/store"
)

// WatchSnapshot calls fn with the decoded snapshot every time the file at
// path is written, until ctx is cancelled. Decode failures are passed to fn
// so the caller can keep showing the last good state.
func WatchSnapshot(ctx context.Context, path string, debounce time.Duration, log *slog.Logger, fn func(store.Snapshot, error)) error {
	fw, err := NewFileWatcher(debounce, log)
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch([]string{path}, func(changed string) {
		fn(store.ReadFile(changed))
	})
	if err != nil {
		return err
	}
	fw.Start()

	<-ctx.Done()
	return nil
}
