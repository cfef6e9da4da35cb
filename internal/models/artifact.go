package models

import "time"

// ArtifactKind identifies what a generated artifact's Content field holds.
type ArtifactKind string

const (
	ArtifactAudioFile ArtifactKind = "audio_file"
	ArtifactVideoURL  ArtifactKind = "video_url"
	ArtifactImageURL  ArtifactKind = "image_url"
)

// GeneratedArtifact is one output unit returned to the caller: the URL of a
// synthesized audio file or of a rendered video or image. Artifacts are
// produced fully or not at all; there is no partial or streaming variant.
type GeneratedArtifact struct {
	Kind       ArtifactKind `json:"kind"`
	Content    string       `json:"content"`
	SourceText string       `json:"source_text,omitempty"`
	Timestamp  time.Time    `json:"timestamp"`
}

// NewAudioArtifact builds an audio-file artifact for the given path.
func NewAudioArtifact(path, sourceText string) GeneratedArtifact {
	return GeneratedArtifact{Kind: ArtifactAudioFile, Content: path, SourceText: sourceText, Timestamp: time.Now().UTC()}
}

// NewVideoArtifact builds a video-URL artifact.
func NewVideoArtifact(url, sourceText string) GeneratedArtifact {
	return GeneratedArtifact{Kind: ArtifactVideoURL, Content: url, SourceText: sourceText, Timestamp: time.Now().UTC()}
}

// NewImageArtifact builds an image-URL artifact.
func NewImageArtifact(url, sourceText string) GeneratedArtifact {
	return GeneratedArtifact{Kind: ArtifactImageURL, Content: url, SourceText: sourceText, Timestamp: time.Now().UTC()}
}
