package models

import (
	"path/filepath"
	"strings"
)

// FileCategory classifies an uploaded file by its extension
type FileCategory string

const (
	CategoryText         FileCategory = "TEXT"
	CategoryPDF          FileCategory = "PDF"
	CategoryDocument     FileCategory = "DOCUMENT"
	CategoryPresentation FileCategory = "PRESENTATION"
	CategoryAudio        FileCategory = "AUDIO"
	CategoryVideo        FileCategory = "VIDEO"
	CategoryUnknown      FileCategory = "UNKNOWN"
)

// fileCategories maps each category to its recognized extensions.
// First matching category wins; order follows the upload allow-list.
var fileCategories = []struct {
	Category   FileCategory
	Extensions []string
}{
	{CategoryText, []string{"txt", "rtf"}},
	{CategoryPDF, []string{"pdf"}},
	{CategoryDocument, []string{"doc", "docx"}},
	{CategoryPresentation, []string{"ppt", "pptx"}},
	{CategoryAudio, []string{"mp3", "wav", "ogg", "m4a"}},
	{CategoryVideo, []string{"mp4", "mov", "avi", "mkv"}},
}

// DetectFileCategory returns the category for a filename based on its
// extension, or CategoryUnknown when the extension is not recognized.
func DetectFileCategory(filename string) FileCategory {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, fc := range fileCategories {
		for _, e := range fc.Extensions {
			if e == ext {
				return fc.Category
			}
		}
	}
	return CategoryUnknown
}

// UploadedAsset describes an inbound file accepted by upload intake.
// The local temporary copy is deleted after the asset is persisted to
// object storage (or the attempt fails).
type UploadedAsset struct {
	OriginalName string       `json:"original_name"`
	StoredPath   string       `json:"stored_path"`
	MimeType     string       `json:"mime_type"`
	SizeBytes    int64        `json:"size_bytes"`
	Category     FileCategory `json:"category"`
}
