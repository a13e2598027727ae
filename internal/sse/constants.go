package sse

import "time"

// Buffer sizes
const (
	BroadcastBufferSize = 100
	ClientEventBuffer   = 50
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	KeepaliveInterval = 30 * time.Second
)

// Feed event types. Crop activity reuses the bus event names.
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// QueryParamTypes selects event types, comma separated
const QueryParamTypes = "types"

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscribed         = "SSE feed subscribed to crop events"
	LogMsgBadPayload         = "Ignoring SSE event with unexpected payload"
)

// ErrMsgStreamingUnsupported is returned when the response writer cannot flush
const ErrMsgStreamingUnsupported = "Streaming not supported"
