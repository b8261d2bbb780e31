package models

// Supported generation sizes
const (
	Size256  = "256x256"
	Size512  = "512x512"
	Size1024 = "1024x1024"
)

// GenerationRequest is a prompt sent to the generative image API.
type GenerationRequest struct {
	Prompt string  `json:"prompt"`
	Seed   *int64  `json:"seed,omitempty"`
	Size   *string `json:"size,omitempty"`
}

// GeneratedImage is the persisted outcome of a generation.
type GeneratedImage struct {
	Media string `json:"media"` // Data URI returned by the API
	Image *Image `json:"image"` // Row created for it
}

// SimilarityQuery asks for images visually similar to a description or an image.
type SimilarityQuery struct {
	TextDescription string `json:"textDescription,omitempty"`
	ImageURI        string `json:"imageUri,omitempty"`
}

// SimilarImage is one similarity search hit.
type SimilarImage struct {
	ImageURI        string  `json:"imageUri"`
	SimilarityScore float64 `json:"similarityScore"`
}
