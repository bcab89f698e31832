package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/spotify-dl/internal/errs"
	"github.com/ytget/spotify-dl/internal/model"
)

type mockCatalog struct {
	authenticated bool
	authErr       error
	lastCode      string
	info          *model.PlaylistInfo
	infoErr       error
	lastInfoID    string
}

func (m *mockCatalog) AuthURL() string { return "https://accounts.spotify.com/authorize?state=x" }

func (m *mockCatalog) Authenticate(ctx context.Context, code string) error {
	m.lastCode = code
	if m.authErr == nil {
		m.authenticated = true
	}
	return m.authErr
}

func (m *mockCatalog) IsAuthenticated() bool { return m.authenticated }

func (m *mockCatalog) PlaylistInfo(ctx context.Context, id string) (*model.PlaylistInfo, error) {
	m.lastInfoID = id
	return m.info, m.infoErr
}

type mockDownloader struct {
	startErr error
	started  []string
	stopped  int
	progress model.Progress
}

func (m *mockDownloader) Start(playlistURL, rootDir string) error {
	if m.startErr != nil {
		return m.startErr
	}
	m.started = append(m.started, rootDir)
	return nil
}

func (m *mockDownloader) Stop()                    { m.stopped++ }
func (m *mockDownloader) Progress() model.Progress { return m.progress }

type mockSettings struct {
	dir string
}

func (m *mockSettings) GetDownloadDirectory() string    { return m.dir }
func (m *mockSettings) SetDownloadDirectory(dir string) { m.dir = dir }

const playlistURL = "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M"

func newTestApp(t *testing.T, catalog *mockCatalog, dl *mockDownloader) (*App, *mockSettings) {
	t.Helper()
	settings := &mockSettings{dir: filepath.Join(t.TempDir(), "downloads")}
	return NewApp(catalog, dl, settings), settings
}

func TestAuthenticate(t *testing.T) {
	catalog := &mockCatalog{}
	app, _ := newTestApp(t, catalog, &mockDownloader{})

	require.NoError(t, app.Authenticate(context.Background(), "auth-code"))
	assert.Equal(t, "auth-code", catalog.lastCode)
	assert.True(t, app.IsAuthenticated())
}

func TestAuthenticateEmptyCode(t *testing.T) {
	app, _ := newTestApp(t, &mockCatalog{}, &mockDownloader{})

	assert.Error(t, app.Authenticate(context.Background(), ""))
}

func TestGetPlaylistInfo(t *testing.T) {
	catalog := &mockCatalog{
		authenticated: true,
		info:          &model.PlaylistInfo{Name: "Mix", TrackCount: 10},
	}
	app, _ := newTestApp(t, catalog, &mockDownloader{})

	info, err := app.GetPlaylistInfo(context.Background(), playlistURL)
	require.NoError(t, err)
	assert.Equal(t, "Mix", info.Name)
	assert.Equal(t, "37i9dQZF1DXcBWIGoYBM5M", catalog.lastInfoID)
}

func TestGetPlaylistInfoRequiresAuth(t *testing.T) {
	app, _ := newTestApp(t, &mockCatalog{}, &mockDownloader{})

	_, err := app.GetPlaylistInfo(context.Background(), playlistURL)
	assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
}

func TestGetPlaylistInfoInvalidURL(t *testing.T) {
	app, _ := newTestApp(t, &mockCatalog{authenticated: true}, &mockDownloader{})

	_, err := app.GetPlaylistInfo(context.Background(), "not a url")
	assert.ErrorIs(t, err, errs.ErrInvalidPlaylistURL)
}

func TestSetDownloadPathCreatesDirectory(t *testing.T) {
	app, settings := newTestApp(t, &mockCatalog{}, &mockDownloader{})

	newPath := filepath.Join(t.TempDir(), "deep", "nested", "dir")
	require.NoError(t, app.SetDownloadPath(newPath))

	assert.Equal(t, newPath, settings.dir)
	assert.DirExists(t, newPath)
}

func TestStartDownload(t *testing.T) {
	dl := &mockDownloader{}
	app, settings := newTestApp(t, &mockCatalog{authenticated: true}, dl)

	require.NoError(t, app.StartDownload(playlistURL))

	require.Len(t, dl.started, 1)
	assert.Equal(t, settings.dir, dl.started[0])
	assert.DirExists(t, settings.dir, "download root is created on demand")
}

func TestStartDownloadRequiresAuth(t *testing.T) {
	dl := &mockDownloader{}
	app, _ := newTestApp(t, &mockCatalog{}, dl)

	assert.ErrorIs(t, app.StartDownload(playlistURL), errs.ErrNotAuthenticated)
	assert.Empty(t, dl.started)
}

func TestStartDownloadAlreadyRunning(t *testing.T) {
	dl := &mockDownloader{startErr: errs.ErrAlreadyRunning}
	app, _ := newTestApp(t, &mockCatalog{authenticated: true}, dl)

	assert.ErrorIs(t, app.StartDownload(playlistURL), errs.ErrAlreadyRunning)
}

func TestStopAndProgressPassThrough(t *testing.T) {
	dl := &mockDownloader{progress: model.Progress{Status: model.StatusDownloading, Current: 3, Total: 9}}
	app, _ := newTestApp(t, &mockCatalog{}, dl)

	app.StopDownload()
	assert.Equal(t, 1, dl.stopped)

	p := app.GetProgress()
	assert.Equal(t, model.StatusDownloading, p.Status)
	assert.Equal(t, 3, p.Current)
}

func TestOpenDownloadFolder(t *testing.T) {
	app, settings := newTestApp(t, &mockCatalog{}, &mockDownloader{})

	var opened string
	app.openFolder = func(path string) error {
		opened = path
		return nil
	}

	require.NoError(t, app.OpenDownloadFolder())
	assert.Equal(t, settings.dir, opened)
	assert.DirExists(t, settings.dir)
}
