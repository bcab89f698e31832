package config

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/spotify-dl/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir = "download_directory"
)

// Default values
const (
	// DefaultDownloadSubdir is created under the user's Downloads folder
	// when no directory has been configured.
	DefaultDownloadSubdir = "Spotify_Downloads"
)

// Settings manages user-facing application configuration backed by Fyne
// preferences.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download root directory,
// falling back to ~/Downloads/Spotify_Downloads.
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		downloadsDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			downloadsDir = "/tmp"
		}
		dir = filepath.Join(downloadsDir, DefaultDownloadSubdir)
		s.SetDownloadDirectory(dir)
	}
	return dir
}

// SetDownloadDirectory sets the download root directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}
