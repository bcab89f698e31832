package spotify

import "regexp"

// Accepted playlist URL shapes, tried in order. First match wins; the ID
// is not validated against the catalog here.
var playlistIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`playlist/([a-zA-Z0-9]+)`),
	regexp.MustCompile(`playlist:([a-zA-Z0-9]+)`),
}

// ExtractPlaylistID extracts a playlist identifier from a user-supplied
// URL or URI. Returns false when neither accepted shape matches.
func ExtractPlaylistID(url string) (string, bool) {
	for _, pattern := range playlistIDPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}
