package spotify

import "testing"

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		ok       bool
	}{
		{
			name:     "open.spotify.com URL",
			url:      "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M",
			expected: "37i9dQZF1DXcBWIGoYBM5M",
			ok:       true,
		},
		{
			name:     "URL with query parameters",
			url:      "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M?si=abcdef",
			expected: "37i9dQZF1DXcBWIGoYBM5M",
			ok:       true,
		},
		{
			name:     "spotify URI form",
			url:      "spotify:playlist:37i9dQZF1DXcBWIGoYBM5M",
			expected: "37i9dQZF1DXcBWIGoYBM5M",
			ok:       true,
		},
		{
			name: "not a url",
			url:  "not a url",
			ok:   false,
		},
		{
			name: "track URL",
			url:  "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC",
			ok:   false,
		},
		{
			name: "empty string",
			url:  "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractPlaylistID(tt.url)
			if ok != tt.ok {
				t.Fatalf("ExtractPlaylistID(%q) ok = %v, want %v", tt.url, ok, tt.ok)
			}
			if ok && id != tt.expected {
				t.Errorf("ExtractPlaylistID(%q) = %q, want %q", tt.url, id, tt.expected)
			}
		})
	}
}

func TestExtractPlaylistIDFirstMatchWins(t *testing.T) {
	// The slash form is tried first when both shapes appear.
	url := "playlist/firstID playlist:secondID"

	id, ok := ExtractPlaylistID(url)
	if !ok {
		t.Fatal("Expected a match")
	}
	if id != "firstID" {
		t.Errorf("Expected first pattern to win, got %q", id)
	}
}
