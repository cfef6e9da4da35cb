package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/adaptlearn/access-api/pkg/tempfile"
)

// FFmpeg wraps ffmpeg and ffprobe invocation for media extraction. Outputs
// are always written into a caller-owned tempfile.Scope so they disappear
// with the scope regardless of how the pipeline exits.
type FFmpeg struct {
	ffmpegPath  string
	ffprobePath string
	timeout     time.Duration
}

// New creates a new FFmpeg instance
func New(ffmpegPath, ffprobePath string, timeout time.Duration) *FFmpeg {
	return &FFmpeg{
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		timeout:     timeout,
	}
}

// ValidateBinaries checks if ffmpeg and ffprobe are available
func (f *FFmpeg) ValidateBinaries() error {
	if _, err := exec.LookPath(f.ffmpegPath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFmpegNotFound, f.ffmpegPath)
	}

	if _, err := exec.LookPath(f.ffprobePath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFprobeNotFound, f.ffprobePath)
	}

	return nil
}

// ExtractAudio extracts the audio track of a video as mono 16-bit PCM at
// 16kHz and returns the path of the WAV file inside the scope. A non-zero
// ffmpeg exit is fatal; nothing is retried.
func (f *FFmpeg) ExtractAudio(ctx context.Context, videoPath string, scope *tempfile.Scope) (string, error) {
	outputPath := scope.Path(fmt.Sprintf("audio_%d.wav", time.Now().UnixMilli()))

	args := []string{
		"-i", videoPath,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", "16000",
		"-ac", "1",
		"-y",
		outputPath,
	}

	if err := f.runFFmpeg(ctx, "audio_extraction", videoPath, args); err != nil {
		return "", err
	}

	return outputPath, nil
}

// ExtractFrames samples one JPEG frame every intervalSeconds into a frames
// directory inside the scope and returns the frame paths in order.
func (f *FFmpeg) ExtractFrames(ctx context.Context, videoPath string, intervalSeconds int, scope *tempfile.Scope) ([]string, error) {
	if intervalSeconds <= 0 {
		intervalSeconds = 5
	}

	framesDir, err := scope.Subdir("frames")
	if err != nil {
		return nil, NewProcessingError("frame_extraction", videoPath, err, "")
	}

	args := []string{
		"-i", videoPath,
		"-vf", fmt.Sprintf("fps=1/%d", intervalSeconds),
		"-q:v", "2",
		filepath.Join(framesDir, "frame_%d.jpg"),
	}

	if err := f.runFFmpeg(ctx, "frame_extraction", videoPath, args); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(framesDir)
	if err != nil {
		return nil, NewProcessingError("frame_extraction", videoPath, err, "")
	}
	if len(entries) == 0 {
		return nil, NewProcessingError("frame_extraction", videoPath, ErrNoFramesExtracted, "")
	}

	frames := make([]string, 0, len(entries))
	for _, e := range entries {
		frames = append(frames, filepath.Join(framesDir, e.Name()))
	}
	sort.Slice(frames, func(i, j int) bool {
		return frameIndex(frames[i]) < frameIndex(frames[j])
	})

	return frames, nil
}

// runFFmpeg runs one ffmpeg invocation under the configured timeout,
// capturing stderr for the error report.
func (f *FFmpeg) runFFmpeg(ctx context.Context, operation, inputFile string, args []string) error {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, f.ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return NewProcessingError(operation, inputFile, ErrProcessingTimeout, stderr.String())
		}
		return NewProcessingError(operation, inputFile, err, stderr.String())
	}

	return nil
}

// frameIndex parses the numeric index out of a frame_<n>.jpg path; malformed
// names sort last.
func frameIndex(path string) int {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	idx := strings.LastIndex(name, "_")
	if idx < 0 {
		return int(^uint(0) >> 1)
	}
	n, err := strconv.Atoi(name[idx+1:])
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}
