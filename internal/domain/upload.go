package domain

// StoredImage describes an uploaded image after it has been persisted
type StoredImage struct {
	ImageURL     string `json:"imageUrl"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int    `json:"size"`
	Type         string `json:"type"`
}
