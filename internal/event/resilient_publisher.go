package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/NoriFarm_Go/internal/logger"
)

type retryItem struct {
	event   Event
	attempt int
	lastErr error
}

// ResilientPublisher wraps a Bus. A failed publish is queued and retried in
// the background with exponential backoff; events that exhaust their retries
// are appended to a dead-letter file. Publish never fails the caller.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	queue    chan retryItem
	stop     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewResilientPublisher starts the retry worker
func NewResilientPublisher(inner Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dlw,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		stop:       make(chan struct{}),
	}
	p.wg.Add(1)
	go p.worker()
	return p, nil
}

// Publish delivers the event or queues it for retry
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// PublishWithRetry delivers the event once and queues it on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	p.enqueue(retryItem{event: event, attempt: 1, lastErr: err})
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) enqueue(item retryItem) {
	select {
	case <-p.stop:
		p.writeDeadLetter(item)
		return
	default:
	}

	select {
	case p.queue <- item:
	default:
		logger.Error(LogMsgRetryQueueFull, "event_type", item.event.Type)
		p.writeDeadLetter(item)
	}
}

func (p *ResilientPublisher) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.stop:
			return
		case item := <-p.queue:
			p.retry(item)
		}
	}
}

func (p *ResilientPublisher) retry(item retryItem) {
	for item.attempt <= p.maxRetries {
		timer := time.NewTimer(CalculateRetryDelay(p.retryDelay, item.attempt))
		select {
		case <-p.stop:
			timer.Stop()
			p.writeDeadLetter(item)
			return
		case <-timer.C:
		}

		err := p.inner.Publish(context.Background(), item.event)
		if err == nil {
			logger.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempt)
			return
		}
		item.lastErr = err
		item.attempt++
	}

	logger.Error(LogMsgEventRetryExhausted, "event_type", item.event.Type, "attempts", p.maxRetries)
	p.writeDeadLetter(item)
}

func (p *ResilientPublisher) writeDeadLetter(item retryItem) {
	if err := p.deadLetter.Write(item.event, item.attempt, item.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterFailed, "event_type", item.event.Type, "error", err)
	}
}

// Shutdown stops the worker, dead-letters anything still queued and closes the file
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() { close(p.stop) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	drained := 0
	for {
		select {
		case item := <-p.queue:
			p.writeDeadLetter(item)
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return p.deadLetter.Close()
		}
	}
}
