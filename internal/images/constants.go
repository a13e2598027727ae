package images

const (
	// collision retries bump the timestamp by one millisecond each
	maxNameAttempts = 10

	defaultOriginalName = "image"
	dirPerm             = 0o755
	filePerm            = 0o644
)

// Log messages
const (
	LogMsgImageStored   = "Image stored"
	LogMsgImageRejected = "Image rejected"
)
