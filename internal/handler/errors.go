package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgMissingPathParam  = "Missing %s path parameter"
	ErrMsgInvalidStatus     = "Invalid status '%s'. Valid options: ready, growing"

	// Upload error messages
	ErrMsgNoFileReceived = "No file received"
)

// Success messages for API responses
const (
	MsgCropRemovedSuccess = "Crop removed successfully"
)

// Form and query field names
const (
	QueryParamStatus   = "status"
	QueryParamQuery    = "q"
	QueryParamCategory = "category"
	QueryParamType     = "type"
	QueryParamUserID   = "user_id"

	PathParamCropID    = "cropID"
	PathParamProductID = "productID"

	FormFieldImage = "image"
)
