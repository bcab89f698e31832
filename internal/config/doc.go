package config

// Package config holds application configuration: Spotify application
// credentials loaded from the environment, user preferences backed by the
// Fyne preferences store, and process logging setup.
