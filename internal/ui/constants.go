package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconStarFilled = "★"
	IconStarEmpty  = "☆"
	IconCompleted  = "✓"
	IconPending    = "○"
	IconSettings   = "⚙"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	ProgressLabelFormat = "%d%%"
	MinutesFormat       = "%d min"
)

// Layout sizing
const (
	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44

	FormDialogWidth  float32 = 360
	FormDialogHeight float32 = 420
)

// Grid columns for item cards by device shape
const (
	ColumnsPhonePortrait  = 1
	ColumnsPhoneLandscape = 2
	ColumnsDesktop        = 3
)
