package spotify

// Package spotify adapts the Spotify Web API (via zmb3/spotify) for the
// app: authorization-code OAuth with a local token cache, playlist URL
// parsing, metadata fetch, and paginated track listing.
