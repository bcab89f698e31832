package download

// Package download implements the playlist download pipeline: a per-track
// search-and-fetch worker built on top of yt-dlp (via
// github.com/lrstanley/go-ytdlp) and a single-run orchestrator that walks
// the track list sequentially, maintains the polled progress snapshot,
// and honors cooperative cancellation at track boundaries.
