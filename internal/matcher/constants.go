package matcher

// Tiers reported in match.performed events
const (
	tierNone     = 0
	tierRelated  = 1
	tierFallback = 2
)

// Field messages
const (
	MsgQueryRequired = "Query parameter is required"
)

// Log messages
const (
	LogMsgMatchPerformed = "Crop matched to product"
	LogMsgMatchMissed    = "Crop match failed"
	LogMsgPublishFailed  = "Failed to publish match event"
)
