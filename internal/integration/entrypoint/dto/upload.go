package dto

// UploadResponse represents the response for a receipt upload.
type UploadResponse struct {
	URL string `json:"url"`
}
