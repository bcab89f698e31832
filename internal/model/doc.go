package model

// Package model defines domain data structures used across the app:
// playlist and track descriptors, run status enum, and the progress
// snapshot polled by the UI.
