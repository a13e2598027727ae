package discord

import "time"

// Feed reconnect tuning
const (
	sseInitialBackoff    = 1 * time.Second
	sseMaxBackoff        = 30 * time.Second
	sseBackoffMultiplier = 2
	sseBufferSize        = 64 * 1024
)

// Feed event types the bot announces
const (
	SSEEventTypeCropPlanted   = "crop.planted"
	SSEEventTypeCropHarvested = "crop.harvested"

	sseEventTypeConnected = "connected"
	sseEventTypeKeepalive = "keepalive"
)

const (
	sseLogMsgClientConnected   = "Crop feed connected"
	sseLogMsgClientStopped     = "Crop feed stopped"
	sseLogMsgConnectionFailed  = "Crop feed connection failed"
	sseLogMsgParseError        = "Failed to parse crop feed event"
	sseLogMsgHandlerError      = "Crop feed handler error"
	sseLogMsgNotificationError = "Failed to send Discord notification"
)
