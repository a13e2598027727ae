package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/NoriFarm_Go/internal/config"
	"github.com/osse101/NoriFarm_Go/internal/event"
	"github.com/osse101/NoriFarm_Go/internal/metrics"
	"github.com/osse101/NoriFarm_Go/internal/sse"
)

// InitializeEventSystem creates the in-memory bus and the resilient publisher
// that services publish through. Subscribers attach to the returned bus.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	bus := event.NewMemoryBus()

	maxRetries := cfg.EventMaxRetries
	if maxRetries <= 0 {
		maxRetries = config.DefaultEventMaxRetries
	}
	retryDelay := cfg.EventRetryDelay
	if retryDelay <= 0 {
		retryDelay = config.DefaultEventRetryDelay
	}
	deadLetterPath := cfg.EventDeadLetterLog
	if deadLetterPath == "" {
		deadLetterPath = config.DefaultEventDeadLetterLog
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	publisher, err := event.NewResilientPublisher(bus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)

	return bus, publisher, nil
}

// RegisterEventHandlers attaches the metrics collector and, when feed is
// non-nil, the crop activity feed to bus.
func RegisterEventHandlers(bus event.Bus, feed *sse.Hub) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if feed != nil {
		sse.NewSubscriber(feed, bus).Subscribe()
		slog.Info(LogMsgCropFeedRegistered)
	}
}
