// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconDisplay = "" // desktop/monitor
	IconPlug    = "" // hdmi/cable
	IconGauge   = "" // bandwidth/tachometer
	IconClock   = "" // clock
	IconSignal  = "" // signal bars
	IconChart   = "" // bar chart

	// Status
	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info

	// History / storage
	IconDatabase = "" // database
	IconTrash    = "" // trash
	IconFolder   = "" // folder
	IconConfig   = "" // config
	IconFile     = "" // file-text

	// Version / build
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGo        = "" // go gopher
	IconGithub    = "" // github
	IconHeart     = "" // heart

	// UI
	IconArrow  = "" // arrow right
	IconCursor = "" // chevron-right
)
