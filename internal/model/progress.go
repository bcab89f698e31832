package model

// Progress is a snapshot of the state of the active (or last) download
// run. Values are copied out of the orchestrator under lock, so a
// Progress never exposes partially updated fields.
type Progress struct {
	Current      int    // 1-based index of the track being processed
	Total        int    // number of tracks in the playlist
	Status       Status // run status
	CurrentTrack string // "Artist - Title" of the track being processed
	Err          string // free-text message when Status is StatusError
	Successful   int    // tracks fetched so far (final count on completion)
}
