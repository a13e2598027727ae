package discord

// Friendly message constants for Discord responses
const (
	MsgNotReady       = "🌱 **Not Ready Yet**\nThat crop is still growing."
	MsgCropNotFound   = "❓ **Crop Not Found**\nMaybe check the spelling?"
	MsgNoProductMatch = "🛒 **No Product Found**\nNothing in the shop fits that crop yet."
	MsgNoCrops        = "The field is empty."
	MsgAPIUnavailable = "🔌 Error connecting to the farm."
	MsgGenericError   = "❌ Something went wrong."
)

// Embed colors
const (
	ColorInfo    = 0x3498db
	ColorSuccess = 0x2ecc71
	ColorRare    = 0x9b59b6
)

// FooterNoriFarm is the standard embed footer
const FooterNoriFarm = "NoriFarm"
