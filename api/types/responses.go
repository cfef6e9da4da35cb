package types

import "github.com/adaptlearn/access-api/internal/services/intake"

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrorResponse is the generic error payload
type ErrorResponse struct {
	Error string `json:"error" example:"Processing failed"`
}

// UploadResponse is returned by the plain local upload endpoint
type UploadResponse struct {
	Message  string `json:"message" example:"File uploaded successfully"`
	FilePath string `json:"filePath" example:"/uploads/file-1700000000000.mp4"`
}

// StoredFileResponse is returned by the full intake endpoint
type StoredFileResponse struct {
	Message  string            `json:"message" example:"File uploaded successfully"`
	FileInfo intake.StoredFile `json:"fileInfo"`
}
