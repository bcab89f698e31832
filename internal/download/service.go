package download

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/ytget/spotify-dl/internal/errs"
	"github.com/ytget/spotify-dl/internal/model"
	"github.com/ytget/spotify-dl/internal/platform"
	"github.com/ytget/spotify-dl/internal/spotify"
)

// Service orchestrates one playlist download run at a time: it resolves
// the playlist, fetches the track list, and feeds tracks sequentially to
// the Fetcher while maintaining a progress snapshot for the UI poller.
//
// Progress is a single shared record guarded by a mutex; the background
// goroutine is its only writer and Progress() hands out copies, so a
// reader never observes partially updated fields.
type Service struct {
	catalog Catalog
	fetcher TrackFetcher

	mu            sync.Mutex
	progress      model.Progress
	running       bool
	stopRequested bool
}

// NewService creates a download orchestrator.
func NewService(catalog Catalog, fetcher TrackFetcher) *Service {
	return &Service{
		catalog:  catalog,
		fetcher:  fetcher,
		progress: model.Progress{Status: model.StatusIdle},
	}
}

// Start launches a background run for the given playlist URL, writing
// files under rootDir. It fails fast with ErrAlreadyRunning while a run
// is active, leaving the active run's progress untouched.
func (s *Service) Start(playlistURL, rootDir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errs.ErrAlreadyRunning
	}

	s.running = true
	s.stopRequested = false
	s.progress = model.Progress{Status: model.StatusStarting}

	go s.run(playlistURL, rootDir)
	return nil
}

// Stop requests cooperative cancellation. It takes effect at the next
// per-track boundary; an in-flight single-track download is not
// interrupted. Calling Stop with no active run is a no-op.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.stopRequested = true
	}
}

// Progress returns a copy of the current progress snapshot. It never
// blocks on network activity.
func (s *Service) Progress() model.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// run is the single background unit of work for one playlist run.
func (s *Service) run(playlistURL, rootDir string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("download run panicked", "panic", r)
			s.update(func(p *model.Progress) {
				p.Status = model.StatusError
				p.Err = fmt.Sprintf("%v", r)
			})
		}

		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	ctx := context.Background()

	playlistID, ok := spotify.ExtractPlaylistID(playlistURL)
	if !ok {
		s.fail(errs.ErrInvalidPlaylistURL.Error())
		return
	}

	info, err := s.catalog.PlaylistInfo(ctx, playlistID)
	if err != nil {
		slog.Error("failed to fetch playlist info", "playlist_id", playlistID, "error", err)
		s.fail(err.Error())
		return
	}

	destDir := filepath.Join(rootDir, platform.SanitizeFilename(info.Name))
	if err := platform.CreateDirectoryIfNotExists(destDir); err != nil {
		slog.Error("failed to create destination directory", "dir", destDir, "error", err)
		s.fail(err.Error())
		return
	}

	tracks, err := s.catalog.PlaylistTracks(ctx, playlistID)
	if err != nil {
		slog.Error("failed to fetch playlist tracks", "playlist_id", playlistID, "error", err)
		s.fail(err.Error())
		return
	}

	s.update(func(p *model.Progress) {
		p.Total = len(tracks)
		p.Status = model.StatusDownloading
	})
	slog.Info("download run started", "playlist", info.Name, "tracks", len(tracks))

	successful := 0
	for i, track := range tracks {
		if s.stopped() {
			// Already-downloaded files stay in place; nothing is rolled back.
			s.update(func(p *model.Progress) {
				p.Status = model.StatusCancelled
			})
			slog.Info("download run cancelled", "playlist", info.Name, "after", i)
			return
		}

		s.update(func(p *model.Progress) {
			p.Current = i + 1
			p.CurrentTrack = track.DisplayName()
		})

		if s.fetcher.FetchTrack(ctx, track, destDir) {
			successful++
			s.update(func(p *model.Progress) {
				p.Successful = successful
			})
		}
	}

	s.update(func(p *model.Progress) {
		p.Status = model.StatusCompleted
		p.Successful = successful
	})
	slog.Info("download run completed", "playlist", info.Name, "successful", successful, "total", len(tracks))
}

// fail transitions the run to its error terminal state.
func (s *Service) fail(msg string) {
	s.update(func(p *model.Progress) {
		p.Status = model.StatusError
		p.Err = msg
	})
}

// update mutates the shared progress record under lock. A transition to
// a terminal status releases the run slot in the same critical section,
// so a caller that observes a terminal snapshot can immediately start a
// new run.
func (s *Service) update(fn func(*model.Progress)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.progress)
	if s.progress.Status.IsTerminal() {
		s.running = false
		s.stopRequested = false
	}
}

// stopped reports whether a stop request is pending.
func (s *Service) stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopRequested
}
