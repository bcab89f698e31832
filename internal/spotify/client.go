package spotify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"

	"github.com/ytget/spotify-dl/internal/errs"
	"github.com/ytget/spotify-dl/internal/model"
)

// Pagination constants
const (
	// TracksPageSize is the fixed page size used for playlist track listing
	TracksPageSize = 100
)

// DefaultTokenCachePath is where the OAuth session is persisted between runs.
const DefaultTokenCachePath = ".spotify_cache"

// catalogAPI is the subset of the Spotify Web API client used by this
// adapter. *spotify.Client satisfies it; tests provide fakes.
type catalogAPI interface {
	GetPlaylist(ctx context.Context, id spotify.ID, opts ...spotify.RequestOption) (*spotify.FullPlaylist, error)
	GetPlaylistItems(ctx context.Context, id spotify.ID, opts ...spotify.RequestOption) (*spotify.PlaylistItemPage, error)
}

// Credentials identify the consuming application to the catalog API.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Client bridges to the Spotify Web API: OAuth session management with a
// local token cache, playlist metadata fetch, and paginated track listing.
type Client struct {
	auth      *spotifyauth.Authenticator
	state     string
	cachePath string

	mu  sync.Mutex
	api catalogAPI
}

// NewClient creates a catalog client for the given application
// credentials. A token cached from a previous run is picked up so the
// user does not have to re-authenticate every start.
func NewClient(creds Credentials, cachePath string) *Client {
	auth := spotifyauth.New(
		spotifyauth.WithClientID(creds.ClientID),
		spotifyauth.WithClientSecret(creds.ClientSecret),
		spotifyauth.WithRedirectURL(creds.RedirectURL),
		spotifyauth.WithScopes(
			spotifyauth.ScopeUserLibraryRead,
			spotifyauth.ScopePlaylistReadPrivate,
			spotifyauth.ScopePlaylistReadCollaborative,
		),
	)

	c := &Client{
		auth:      auth,
		state:     uuid.NewString(),
		cachePath: cachePath,
	}

	if token := loadCachedToken(cachePath); token != nil {
		c.api = spotify.New(auth.Client(context.Background(), token))
		slog.Info("restored Spotify session from token cache", "path", cachePath)
	}

	return c
}

// AuthURL returns the authorization URL the user must visit to grant
// access.
func (c *Client) AuthURL() string {
	return c.auth.AuthURL(c.state)
}

// Authenticate exchanges a user-supplied authorization code for a session
// token and persists it to the token cache.
func (c *Client) Authenticate(ctx context.Context, code string) error {
	token, err := c.auth.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("authorization code exchange failed: %w", err)
	}

	if err := saveCachedToken(c.cachePath, token); err != nil {
		slog.Warn("failed to persist token cache", "path", c.cachePath, "error", err)
	}

	c.mu.Lock()
	c.api = spotify.New(c.auth.Client(ctx, token))
	c.mu.Unlock()

	slog.Info("Spotify authentication successful")
	return nil
}

// IsAuthenticated reports whether a session exists. The session may still
// be rejected by the catalog if the token was revoked remotely.
func (c *Client) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.api != nil
}

func (c *Client) catalog() (catalogAPI, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.api == nil {
		return nil, errs.ErrNotAuthenticated
	}
	return c.api, nil
}

// PlaylistInfo fetches playlist metadata by ID.
func (c *Client) PlaylistInfo(ctx context.Context, id string) (*model.PlaylistInfo, error) {
	api, err := c.catalog()
	if err != nil {
		return nil, err
	}

	playlist, err := api.GetPlaylist(ctx, spotify.ID(id))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch playlist %s: %w", id, err)
	}

	info := &model.PlaylistInfo{
		ID:          id,
		Name:        playlist.Name,
		Description: playlist.Description,
		TrackCount:  int(playlist.Tracks.Total),
		Owner:       playlist.Owner.DisplayName,
	}
	if len(playlist.Images) > 0 {
		info.CoverURL = playlist.Images[0].URL
	}

	return info, nil
}

// PlaylistTracks fetches the full ordered track list of a playlist in
// fixed-size pages, stopping after the first short page. Any page failure
// aborts the listing; partial results are discarded.
func (c *Client) PlaylistTracks(ctx context.Context, id string) ([]model.Track, error) {
	api, err := c.catalog()
	if err != nil {
		return nil, err
	}

	var tracks []model.Track
	for offset := 0; ; offset += TracksPageSize {
		page, err := api.GetPlaylistItems(ctx, spotify.ID(id),
			spotify.Limit(TracksPageSize), spotify.Offset(offset))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch playlist page at offset %d: %w", offset, err)
		}

		for _, item := range page.Items {
			tracks = append(tracks, trackFromItem(item))
		}

		if len(page.Items) < TracksPageSize {
			break
		}
	}

	return tracks, nil
}

// trackFromItem maps one playlist entry to a Track. Entries that do not
// reference an actual track (episodes, removed or local items) come back
// non-playable and are skipped by the download worker.
func trackFromItem(item spotify.PlaylistItem) model.Track {
	full := item.Track.Track
	if full == nil || item.IsLocal {
		return model.Track{Playable: false}
	}

	track := model.Track{
		ID:       string(full.ID),
		Title:    full.Name,
		Playable: true,
	}
	if len(full.Artists) > 0 {
		track.Artist = full.Artists[0].Name
	}
	return track
}
