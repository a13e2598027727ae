package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/NoriFarm_Go/internal/event"
	"github.com/osse101/NoriFarm_Go/internal/server"
	"github.com/osse101/NoriFarm_Go/internal/sse"
)

// ShutdownComponents holds everything that needs an orderly stop
type ShutdownComponents struct {
	Server             *server.Server
	Feed               *sse.Hub
	ResilientPublisher *event.ResilientPublisher
	Storage            *CropStorage
}

// GracefulShutdown stops intake first, then drains events, then closes storage.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// open feed streams would otherwise hold Server.Stop until ctx expires
	if c.Feed != nil {
		c.Feed.Stop()
	}
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Storage != nil {
		c.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
