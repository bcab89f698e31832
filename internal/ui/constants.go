package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconFolder   = "📁"
	IconSettings = "⚙"
	IconMusic    = "🎵"
)

// Text fragments
const (
	DashPlaceholder = "—"
)

// Polling and layout
const (
	// ProgressPollInterval is how often the progress snapshot is read
	// while a run is active.
	ProgressPollInterval = time.Second

	DialogWidth  float32 = 500
	DialogHeight float32 = 260
)
