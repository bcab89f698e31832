package download

import (
	"context"

	"github.com/ytget/spotify-dl/internal/model"
)

// Catalog is the slice of the music catalog the orchestrator needs.
type Catalog interface {
	PlaylistInfo(ctx context.Context, id string) (*model.PlaylistInfo, error)
	PlaylistTracks(ctx context.Context, id string) ([]model.Track, error)
}

// TrackFetcher obtains the audio file for one track. Implementations are
// best-effort: false means the track could not be obtained, never an
// abort of the run.
type TrackFetcher interface {
	FetchTrack(ctx context.Context, track model.Track, destDir string) bool
}

// Downloader defines the interface for the download orchestrator.
type Downloader interface {
	Start(playlistURL, rootDir string) error
	Stop()
	Progress() model.Progress
}
