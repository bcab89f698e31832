package spotify

import (
	"encoding/json"
	"os"

	"golang.org/x/oauth2"
)

// File permissions for the token cache
const (
	tokenCachePermissions = 0600
)

// loadCachedToken reads a previously persisted OAuth token. A missing or
// unreadable cache is not an error; it simply means the user has to
// authenticate again.
func loadCachedToken(path string) *oauth2.Token {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil
	}

	if token.AccessToken == "" && token.RefreshToken == "" {
		return nil
	}
	return &token
}

// saveCachedToken persists the OAuth token so the session survives
// restarts until it expires or is revoked.
func saveCachedToken(path string, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, tokenCachePermissions)
}
