package browser

import "github.com/charmbracelet/lipgloss"

// Colors used in the task browser.
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#9CA3AF")
)

// Styles holds the styles for the task browser.
type Styles struct {
	Title      lipgloss.Style
	Project    lipgloss.Style
	Selected   lipgloss.Style
	Normal     lipgloss.Style
	Done       lipgloss.Style
	InProgress lipgloss.Style
	ID         lipgloss.Style
	Help       lipgloss.Style
	Error      lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1),
		Project: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary),
		Normal: lipgloss.NewStyle(),
		Done: lipgloss.NewStyle().
			Foreground(colorSuccess).
			Strikethrough(true),
		InProgress: lipgloss.NewStyle().
			Foreground(colorWarning),
		ID: lipgloss.NewStyle().
			Foreground(colorMuted),
		Help: lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(colorError),
	}
}
