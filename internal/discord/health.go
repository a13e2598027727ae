package discord

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// HealthStatus is the bot's liveness report
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool      `json:"api_reachable"`
}

// CommandStats counts handled slash commands
type CommandStats struct {
	mu        sync.Mutex
	started   time.Time
	count     int64
	lastCmdAt time.Time
}

func NewCommandStats() *CommandStats {
	return &CommandStats{started: time.Now()}
}

// Record notes one handled command
func (c *CommandStats) Record() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	c.lastCmdAt = time.Now()
}

func (c *CommandStats) snapshot() (uptime time.Duration, count int64, last time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Since(c.started), c.count, c.lastCmdAt
}

// HandleHealth reports 503 unless the gateway is connected and the API answers
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.bot.Connected()
	apiReachable := h.bot.Client != nil && h.bot.Client.Healthy(r.Context())
	uptime, count, last := h.bot.Stats.snapshot()

	health := HealthStatus{
		Status:           "healthy",
		Uptime:           uptime.Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: count,
		LastCommandTime:  last,
		APIReachable:     apiReachable,
	}

	w.Header().Set("Content-Type", "application/json")
	if !connected || !apiReachable {
		health.Status = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(health); err != nil {
		slog.Debug("Failed to write health response", "error", err)
	}
}
