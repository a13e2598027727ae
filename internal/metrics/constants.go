package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameCropsPlanted   = "crops_planted_total"
	MetricNameCropsHarvested = "crops_harvested_total"
	MetricNameCropsEdited    = "crops_edited_total"
	MetricNameCropsRemoved   = "crops_removed_total"
	MetricNameHarvestYield   = "harvest_yield"
	MetricNameHarvestQuality = "harvest_quality_score"
	MetricNameMatchesTotal   = "crop_matches_total"
	MetricNameCartItemsAdded = "cart_items_added_total"
	MetricNameImagesUploaded = "images_uploaded_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextCropsPlanted   = "Total number of crops planted"
	HelpTextCropsHarvested = "Total number of crops harvested"
	HelpTextCropsEdited    = "Total number of crop edits"
	HelpTextCropsRemoved   = "Total number of crops removed"
	HelpTextHarvestYield   = "Yield per harvest"
	HelpTextHarvestQuality = "Quality score per harvest"
	HelpTextMatchesTotal   = "Crop-to-product match queries by outcome"
	HelpTextCartItemsAdded = "Total quantity of products added to carts"
	HelpTextImagesUploaded = "Image uploads by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelCropType = "crop_type"
	LabelRarity   = "rarity"
	LabelOutcome  = "outcome"
	LabelResult   = "result"
)

// Upload results
const (
	UploadResultStored   = "stored"
	UploadResultRejected = "rejected"
	UploadResultFailed   = "failed"
)

// unmatchedRoute labels requests that no route matched
const unmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// YieldBuckets covers the 1-100 expected yield range
var YieldBuckets = []float64{1, 2, 5, 10, 20, 35, 50, 75, 100}

// QualityBuckets covers the [80, 100) quality score range
var QualityBuckets = []float64{80, 84, 88, 92, 96, 100}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
