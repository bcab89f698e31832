package model

import "fmt"

// Track is a read-only view over a single playlist entry as returned by
// the catalog. Playable is false for entries that do not reference an
// actual track (episodes, removed items, local files).
type Track struct {
	ID       string
	Artist   string
	Title    string
	Playable bool
}

// DisplayName returns the "Artist - Title" label used for file names and
// progress reporting.
func (t Track) DisplayName() string {
	return fmt.Sprintf("%s - %s", t.Artist, t.Title)
}

// PlaylistInfo describes a playlist without its track list.
type PlaylistInfo struct {
	ID          string
	Name        string
	Description string
	TrackCount  int
	Owner       string
	CoverURL    string
}
