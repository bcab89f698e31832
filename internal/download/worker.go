package download

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/spotify-dl/internal/model"
	"github.com/ytget/spotify-dl/internal/platform"
	"github.com/ytget/spotify-dl/internal/search"
)

// Audio extraction settings
const (
	// MaxCandidates is how many search results are attempted per track
	MaxCandidates = 3

	// AudioFormat is the target codec for extracted audio
	AudioFormat = "mp3"

	// AudioQuality is the target bitrate for the ffmpeg post-processor
	AudioQuality = "192K"

	// SearchSuffix is appended to the "<title> <artist>" search query to
	// bias results toward official uploads
	SearchSuffix = "official"
)

// URL template for candidate videos
const (
	VideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// transcodeFunc downloads one video and extracts its audio to the output
// template. Indirection so tests can run without yt-dlp installed.
type transcodeFunc func(ctx context.Context, videoURL, outputTemplate string) error

// Fetcher obtains the audio file for a single track: search the video
// platform for candidates, then download-and-transcode the first one that
// works. Its only externally visible outcomes are true and false; every
// external failure is logged and swallowed.
type Fetcher struct {
	provider  search.Provider
	transcode transcodeFunc
}

// NewFetcher creates a track fetcher backed by the given search provider
// and the yt-dlp transcode pipeline.
func NewFetcher(provider search.Provider) *Fetcher {
	return &Fetcher{
		provider:  provider,
		transcode: ytdlpTranscode,
	}
}

// FetchTrack attempts to obtain the audio file for track inside destDir.
// Returns true when the target file exists and is usable: either it was
// already present (which makes repeated runs a resume mechanism at track
// granularity) or one of the candidates downloaded successfully.
func (f *Fetcher) FetchTrack(ctx context.Context, track model.Track, destDir string) bool {
	if !track.Playable {
		return false
	}

	sanitized := platform.SanitizeFilename(track.DisplayName())
	target := filepath.Join(destDir, sanitized+"."+AudioFormat)

	if _, err := os.Stat(target); err == nil {
		slog.Info("skipping existing file", "file", sanitized)
		return true
	}

	query := fmt.Sprintf("%s %s %s", track.Title, track.Artist, SearchSuffix)
	candidates, err := f.provider.Search(ctx, query)
	if err != nil {
		slog.Warn("search failed", "track", sanitized, "error", err)
		return false
	}

	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}

	outputTemplate := filepath.Join(destDir, sanitized+".%(ext)s")
	for _, videoID := range candidates {
		videoURL := fmt.Sprintf(VideoURLTemplate, videoID)
		if err := f.transcode(ctx, videoURL, outputTemplate); err != nil {
			slog.Warn("candidate download failed", "track", sanitized, "video_id", videoID, "error", err)
			continue
		}

		slog.Info("downloaded track", "file", sanitized)
		return true
	}

	return false
}

// ytdlpTranscode downloads the best available audio of one video and
// extracts it to the target format via the ffmpeg post-processor.
func ytdlpTranscode(ctx context.Context, videoURL, outputTemplate string) error {
	dl := ytdlp.New().
		Format("bestaudio/best").
		ExtractAudio().
		AudioFormat(AudioFormat).
		AudioQuality(AudioQuality).
		Output(outputTemplate).
		NoPlaylist().
		Quiet().
		NoWarnings()

	_, err := dl.Run(ctx, videoURL)
	return err
}
