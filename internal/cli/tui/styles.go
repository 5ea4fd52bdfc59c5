package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all lipgloss styles for the TUI
type Styles struct {
	// Header styling
	Title       lipgloss.Style
	Timer       lipgloss.Style
	Concurrency lipgloss.Style

	// Reviewer rows
	ReviewerPending lipgloss.Style
	ReviewerActive  lipgloss.Style
	ReviewerDone    lipgloss.Style
	ReviewerFailed  lipgloss.Style
	ReviewerName    lipgloss.Style
	ModelName       lipgloss.Style

	// Synthesis line
	Synthesis lipgloss.Style

	// Footer styling
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Status counts
	StatusComplete lipgloss.Style
	StatusFailed   lipgloss.Style
	StatusActive   lipgloss.Style
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Timer:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Concurrency: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		ReviewerPending: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ReviewerActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		ReviewerDone:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		ReviewerFailed:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		ReviewerName:    lipgloss.NewStyle().Bold(true),
		ModelName:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true),

		Synthesis: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),

		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1),
		FooterKey: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),

		StatusComplete: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		StatusFailed:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		StatusActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// Icons used in the TUI
const (
	IconPending  = "○"
	IconActive   = "●"
	IconComplete = "✓"
	IconFailed   = "✗"
	IconFallback = "↪"
)
