package discord

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// SSEEvent is one parsed event from the API's crop feed
type SSEEvent struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// SSEEventHandler handles a specific event type
type SSEEventHandler func(event SSEEvent) error

var errStreamClosed = errors.New("stream closed unexpectedly")

// SSEClient follows /api/v1/events and reconnects with backoff
type SSEClient struct {
	baseURL    string
	apiKey     string
	eventTypes []string
	httpClient *http.Client

	mu        sync.RWMutex
	handlers  map[string][]SSEEventHandler
	connected bool

	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewSSEClient creates a feed client for eventTypes, or every type when empty
func NewSSEClient(baseURL, apiKey string, eventTypes []string) *SSEClient {
	return &SSEClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		eventTypes: eventTypes,
		handlers:   make(map[string][]SSEEventHandler),
		// streams are long-lived, so no overall timeout
		httpClient: &http.Client{},
	}
}

// OnEvent registers a handler for a specific event type
func (c *SSEClient) OnEvent(eventType string, handler SSEEventHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[eventType] = append(c.handlers[eventType], handler)
}

// Start connects in the background until ctx ends or Stop is called
func (c *SSEClient) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)
	c.wg.Add(1)
	go c.connectLoop(ctx)
}

// Stop ends the connection loop and waits for it
func (c *SSEClient) Stop() {
	c.stopOnce.Do(func() {
		if c.cancel != nil {
			c.cancel()
		}
		c.wg.Wait()
	})
}

// IsConnected reports whether a stream is currently open
func (c *SSEClient) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

func (c *SSEClient) setConnected(v bool) {
	c.mu.Lock()
	c.connected = v
	c.mu.Unlock()
}

func (c *SSEClient) connectLoop(ctx context.Context) {
	defer c.wg.Done()
	defer slog.Info(sseLogMsgClientStopped)

	backoff := sseInitialBackoff
	failures := 0

	for ctx.Err() == nil {
		err := c.connect(ctx)
		c.setConnected(false)
		if ctx.Err() != nil {
			return
		}

		if errors.Is(err, errStreamClosed) {
			// a clean server-side close after a healthy stream
			backoff = sseInitialBackoff
			failures = 0
		} else {
			failures++
		}
		slog.Warn(sseLogMsgConnectionFailed, "error", err, "backoff", backoff, "consecutive_failures", failures)

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return
		}
		backoff = min(backoff*sseBackoffMultiplier, sseMaxBackoff)
	}
}

func (c *SSEClient) streamURL() string {
	u := c.baseURL + "/api/v1/events"
	if len(c.eventTypes) > 0 {
		u += "?types=" + url.QueryEscape(strings.Join(c.eventTypes, ","))
	}
	return u
}

func (c *SSEClient) connect(ctx context.Context) error {
	target := c.streamURL()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	c.setConnected(true)
	slog.Info(sseLogMsgClientConnected, "url", target)

	return c.readEvents(resp.Body)
}

// readEvents parses text/event-stream framing until the body ends
func (c *SSEClient) readEvents(body io.Reader) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, sseBufferSize), sseBufferSize)

	var eventID, eventType, data string
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if data != "" {
				c.dispatchEvent(eventID, eventType, data)
			}
			eventID, eventType, data = "", "", ""
		case strings.HasPrefix(line, "id: "):
			eventID = strings.TrimPrefix(line, "id: ")
		case strings.HasPrefix(line, "event: "):
			eventType = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading stream: %w", err)
	}
	return errStreamClosed
}

func (c *SSEClient) dispatchEvent(id, eventType, data string) {
	if eventType == sseEventTypeConnected || eventType == sseEventTypeKeepalive {
		return
	}

	var event SSEEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		slog.Warn(sseLogMsgParseError, "error", err)
		return
	}
	if eventType != "" {
		event.Type = eventType
	}
	if id != "" {
		event.ID = id
	}

	c.mu.RLock()
	handlers := c.handlers[event.Type]
	c.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(event); err != nil {
			slog.Error(sseLogMsgHandlerError, "event_type", event.Type, "error", err)
		}
	}
}
