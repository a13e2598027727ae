package domain

import "time"

// HarvestEvent records a single harvest. It is returned to the caller and
// never mutated or stored.
type HarvestEvent struct {
	ID           string    `json:"id"`
	CropID       string    `json:"cropId"`
	HarvestedAt  time.Time `json:"harvestedAt"`
	Yield        float64   `json:"yield"`
	QualityScore float64   `json:"qualityScore"`
	UserID       string    `json:"userId"`
}
