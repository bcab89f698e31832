package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ytget/spotify-dl/internal/spotify"
)

// Environment variables carrying the Spotify application credentials
const (
	EnvClientID     = "CLIENT_ID"
	EnvClientSecret = "CLIENT_SECRET"
	EnvRedirectURL  = "REDIRECT_URL"
)

// DefaultRedirectURL is used when REDIRECT_URL is not set. It must be
// registered on the Spotify developer dashboard for the application.
const DefaultRedirectURL = "http://localhost:8888/callback"

// LoadCredentials reads the Spotify application credentials from the
// environment, with .env file support. A missing .env file is fine as
// long as the variables are set some other way.
func LoadCredentials() (spotify.Credentials, error) {
	_ = godotenv.Load()

	creds := spotify.Credentials{
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
		RedirectURL:  os.Getenv(EnvRedirectURL),
	}
	if creds.RedirectURL == "" {
		creds.RedirectURL = DefaultRedirectURL
	}

	if creds.ClientID == "" || creds.ClientSecret == "" {
		return spotify.Credentials{}, fmt.Errorf("Spotify credentials not found: set %s and %s in the environment or a .env file", EnvClientID, EnvClientSecret)
	}

	return creds, nil
}
