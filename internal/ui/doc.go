package ui

// Package ui implements the Fyne desktop shell: authentication flow,
// playlist analysis form, run controls, and the progress panel that
// polls the orchestrator snapshot on a fixed interval.
