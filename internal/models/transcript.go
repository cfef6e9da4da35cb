package models

import "strings"

// WordTiming holds a single recognized word with its time offsets in seconds.
// StartTime is always <= EndTime.
type WordTiming struct {
	Word      string  `json:"word"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
}

// TranscriptSegment is one recognized utterance. Words is empty unless
// word-level offsets were requested from the recognizer. Segments are
// immutable once produced.
type TranscriptSegment struct {
	Text  string       `json:"text"`
	Words []WordTiming `json:"words,omitempty"`
}

// PlainTranscript joins segment texts with newlines, matching the shape
// returned to callers that only want the spoken text.
func PlainTranscript(segments []TranscriptSegment) string {
	texts := make([]string, 0, len(segments))
	for _, s := range segments {
		texts = append(texts, s.Text)
	}
	return strings.Join(texts, "\n")
}

// CaptionTrack is the subtitle-format rendering of a transcript. SRTContent
// is the full SRT document; PlainTranscript is the undecorated text.
type CaptionTrack struct {
	SRTContent      string `json:"srt_content"`
	PlainTranscript string `json:"plain_transcript"`
}
