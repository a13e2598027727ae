package crop

// Log messages
const (
	LogMsgCropPlanted    = "Crop planted"
	LogMsgCropHarvested  = "Crop harvested"
	LogMsgCropEdited     = "Crop edited"
	LogMsgCropRemoved    = "Crop removed"
	LogMsgPublishFailed  = "Failed to publish crop event"
	LogMsgPersistFailed  = "Failed to persist crop"
	LogMsgHarvestTooSoon = "Harvest rejected, crop not ready"
)
