package service

import (
	"context"
	"fmt"

	"github.com/ytget/spotify-dl/internal/download"
	"github.com/ytget/spotify-dl/internal/errs"
	"github.com/ytget/spotify-dl/internal/model"
	"github.com/ytget/spotify-dl/internal/platform"
	"github.com/ytget/spotify-dl/internal/spotify"
)

// Catalog is the slice of the Spotify adapter the facade needs.
type Catalog interface {
	AuthURL() string
	Authenticate(ctx context.Context, code string) error
	IsAuthenticated() bool
	PlaylistInfo(ctx context.Context, id string) (*model.PlaylistInfo, error)
}

// SettingsStore persists user preferences between runs.
type SettingsStore interface {
	GetDownloadDirectory() string
	SetDownloadDirectory(dir string)
}

// App is the presentation-facing facade: every operation the UI invokes
// is a synchronous request/response method here. Errors carry free-text
// messages only.
type App struct {
	catalog    Catalog
	downloader download.Downloader
	settings   SettingsStore

	openFolder func(string) error // test seam over platform.OpenFolder
}

// NewApp wires the facade over the catalog adapter, the download
// orchestrator, and the settings store.
func NewApp(catalog Catalog, downloader download.Downloader, settings SettingsStore) *App {
	return &App{
		catalog:    catalog,
		downloader: downloader,
		settings:   settings,
		openFolder: platform.OpenFolder,
	}
}

// GetAuthURL returns the Spotify authorization URL the user must visit.
func (a *App) GetAuthURL() string {
	return a.catalog.AuthURL()
}

// Authenticate exchanges the user-supplied authorization code for a
// session.
func (a *App) Authenticate(ctx context.Context, code string) error {
	if code == "" {
		return fmt.Errorf("authorization code is empty")
	}
	return a.catalog.Authenticate(ctx, code)
}

// IsAuthenticated reports whether a Spotify session exists.
func (a *App) IsAuthenticated() bool {
	return a.catalog.IsAuthenticated()
}

// GetPlaylistInfo resolves a playlist URL and fetches its metadata.
func (a *App) GetPlaylistInfo(ctx context.Context, playlistURL string) (*model.PlaylistInfo, error) {
	if !a.catalog.IsAuthenticated() {
		return nil, errs.ErrNotAuthenticated
	}

	id, ok := spotify.ExtractPlaylistID(playlistURL)
	if !ok {
		return nil, errs.ErrInvalidPlaylistURL
	}

	return a.catalog.PlaylistInfo(ctx, id)
}

// GetDownloadPath returns the configured download root directory.
func (a *App) GetDownloadPath() string {
	return a.settings.GetDownloadDirectory()
}

// SetDownloadPath updates the download root directory, creating it on
// demand.
func (a *App) SetDownloadPath(path string) error {
	if err := platform.CreateDirectoryIfNotExists(path); err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	a.settings.SetDownloadDirectory(path)
	return nil
}

// StartDownload launches a run for the playlist URL under the configured
// download root.
func (a *App) StartDownload(playlistURL string) error {
	if !a.catalog.IsAuthenticated() {
		return errs.ErrNotAuthenticated
	}

	root := a.settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(root); err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}

	return a.downloader.Start(playlistURL, root)
}

// StopDownload requests cooperative cancellation of the active run.
func (a *App) StopDownload() {
	a.downloader.Stop()
}

// GetProgress returns a snapshot of the active (or last) run.
func (a *App) GetProgress() model.Progress {
	return a.downloader.Progress()
}

// OpenDownloadFolder reveals the download root in the system file
// browser, creating it on demand.
func (a *App) OpenDownloadFolder() error {
	root := a.settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(root); err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}
	return a.openFolder(root)
}
