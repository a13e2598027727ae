package storage

// Flat-file names inside the data directory
const (
	BaselineFile  = "baseline_crops.json"
	OverridesFile = "crop_overrides.json"
	UserCropsFile = "user_crops.json"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)
