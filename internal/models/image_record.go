package models

// ImageRecord is the legacy document-store shape of a generated image.
type ImageRecord struct {
	ID        string `json:"id,omitempty"` // Document id
	UserID    string `json:"userId"`       // Identity-provider uid of the author
	Prompt    string `json:"prompt"`       // Prompt the image was generated from
	ImageData string `json:"imageData"`    // Data URI or bare base64 payload
	CreatedAt int64  `json:"createdAt"`    // Unix milliseconds
}
