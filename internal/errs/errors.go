package errs

import "errors"

var (
	// ErrNotAuthenticated is returned when a catalog operation is attempted
	// without a valid Spotify session.
	ErrNotAuthenticated = errors.New("not authenticated with Spotify")

	// ErrInvalidPlaylistURL is returned when no playlist ID can be
	// extracted from a user-supplied URL.
	ErrInvalidPlaylistURL = errors.New("invalid playlist URL")

	// ErrAlreadyRunning is returned by Start when a download run is active.
	ErrAlreadyRunning = errors.New("download already in progress")

	// ErrNoCandidates is returned by the search provider when the results
	// page yields no video IDs.
	ErrNoCandidates = errors.New("no search results")
)
