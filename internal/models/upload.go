package models

// Upload describes a blob stored in object storage, ready to be registered as an image.
type Upload struct {
	FilePath string `json:"file_path"`
	FileSize int64  `json:"file_size"`
	MimeType string `json:"mime_type"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}
