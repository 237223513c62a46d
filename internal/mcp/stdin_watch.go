package mcp

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// ParentPollInterval is how often WatchParent checks the parent pid.
var ParentPollInterval = 2 * time.Second

// WatchParent calls cancel once the parent process goes away, so an MCP
// server whose client died does not linger. It never reads stdin: the stdio
// transport owns it.
//
// The goroutine exits when ctx is canceled or parent death is detected.
func WatchParent(ctx context.Context, cancel context.CancelFunc, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	ppid := os.Getppid()
	go func() {
		t := time.NewTicker(ParentPollInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if os.Getppid() != ppid {
					logger.Warn("parent process died, shutting down", "ppid", ppid)
					cancel()
					return
				}
			}
		}
	}()
}
