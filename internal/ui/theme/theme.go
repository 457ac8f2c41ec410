// Package theme holds the terminal styles shared by the CLI output.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Gold      = lipgloss.Color("#FACC15") // Trophy
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Streak and goal
var (
	Streak = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	GoalMet = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	Invalid = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Achievements
var (
	Unlocked = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true)

	Locked = lipgloss.NewStyle().
		Foreground(TextDim)

	// Toast frames a freshly unlocked achievement.
	Toast = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Gold).
		Padding(0, 2)

	ToastTitle = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true)
)
