package platform

// Package platform contains OS/platform integration and filesystem glue:
// filename sanitizing, directory helpers, and opening folders in the
// system file browser.
