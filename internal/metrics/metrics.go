package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Crop Metrics
var (
	CropsPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsPlanted,
			Help: HelpTextCropsPlanted,
		},
		[]string{LabelCropType, LabelRarity},
	)

	CropsHarvested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsHarvested,
			Help: HelpTextCropsHarvested,
		},
		[]string{LabelCropType},
	)

	CropsEdited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsEdited,
			Help: HelpTextCropsEdited,
		},
		[]string{LabelCropType},
	)

	CropsRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsRemoved,
			Help: HelpTextCropsRemoved,
		},
		[]string{LabelCropType},
	)

	HarvestYield = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameHarvestYield,
			Help:    HelpTextHarvestYield,
			Buckets: YieldBuckets,
		},
	)

	HarvestQuality = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameHarvestQuality,
			Help:    HelpTextHarvestQuality,
			Buckets: QualityBuckets,
		},
	)
)

// Shopping Metrics
var (
	MatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMatchesTotal,
			Help: HelpTextMatchesTotal,
		},
		[]string{LabelOutcome},
	)

	CartItemsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCartItemsAdded,
			Help: HelpTextCartItemsAdded,
		},
	)

	ImagesUploaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameImagesUploaded,
			Help: HelpTextImagesUploaded,
		},
		[]string{LabelResult},
	)
)
