// Package captions renders transcript segments as an SRT subtitle track.
// Everything in here is a pure transformation: same segments in, same track
// out, no side effects.
package captions

import (
	"fmt"
	"strings"

	"github.com/adaptlearn/access-api/internal/models"
)

// segmentCueDuration is the cue length assumed for segments that carry no
// word-level timing.
const segmentCueDuration = 3.0

// ToSubtitleTrack converts transcript segments to a caption track. When word
// timing is present each word becomes its own cue; otherwise one cue per
// segment is emitted on a fixed cadence. Cue numbering starts at 1 and
// increments per emitted cue.
func ToSubtitleTrack(segments []models.TranscriptSegment) models.CaptionTrack {
	var srt strings.Builder
	cueNumber := 1
	segmentStart := 0.0

	for _, segment := range segments {
		if len(segment.Words) > 0 {
			for _, word := range segment.Words {
				writeCue(&srt, cueNumber, word.StartTime, word.EndTime, word.Word)
				cueNumber++
			}
			if n := len(segment.Words); n > 0 {
				segmentStart = segment.Words[n-1].EndTime
			}
			continue
		}

		end := segmentStart + segmentCueDuration
		writeCue(&srt, cueNumber, segmentStart, end, segment.Text)
		cueNumber++
		segmentStart = end
	}

	return models.CaptionTrack{
		SRTContent:      srt.String(),
		PlainTranscript: models.PlainTranscript(segments),
	}
}

// writeCue emits one SRT cue block: index line, timing line, text, blank line.
func writeCue(b *strings.Builder, number int, start, end float64, text string) {
	fmt.Fprintf(b, "%d\n", number)
	fmt.Fprintf(b, "%s --> %s\n", FormatSRTTime(start), FormatSRTTime(end))
	fmt.Fprintf(b, "%s\n\n", text)
}

// FormatSRTTime renders an offset in seconds as the SRT timestamp format
// HH:MM:SS,mmm.
func FormatSRTTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	totalMillis := int64(seconds*1000 + 0.5)
	hours := totalMillis / 3600000
	minutes := (totalMillis % 3600000) / 60000
	secs := (totalMillis % 60000) / 1000
	millis := totalMillis % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
