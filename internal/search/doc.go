package search

// Package search provides the best-effort external video search used to
// locate audio candidates for a track. The default implementation scrapes
// the YouTube results page; any provider returning ranked video IDs can
// be substituted behind the same interface.
