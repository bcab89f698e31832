package model

// Status represents the status of a playlist download run
type Status string

const (
	// StatusIdle means no run is in progress
	StatusIdle Status = "idle"

	// StatusStarting means the run is resolving the playlist and track list
	StatusStarting Status = "starting"

	// StatusDownloading means tracks are being fetched
	StatusDownloading Status = "downloading"

	// StatusCompleted means the run finished over the full track list
	StatusCompleted Status = "completed"

	// StatusCancelled means the run was stopped by the user
	StatusCancelled Status = "cancelled"

	// StatusError means the run aborted with an error
	StatusError Status = "error"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsActive returns true if a run is currently in progress
func (s Status) IsActive() bool {
	return s == StatusStarting || s == StatusDownloading
}

// IsTerminal returns true if the run reached a final state
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusError
}
