package service

// Package service exposes the presentation-facing operations of the app
// as one synchronous facade: authentication, playlist analysis, download
// path management, and run control/progress.
