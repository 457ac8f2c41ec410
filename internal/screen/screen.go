// Package screen defines what the dashboard router stacks.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocabstreak/internal/progress"
	"github.com/abhisek/vocabstreak/internal/ui/layout"
)

// Screen defines the interface for all dashboard screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ActivityMsg is emitted after a screen applied an engine operation so the
// app can check the achievement mailbox right away.
type ActivityMsg struct {
	Op         string
	Transition progress.Transition
}

// Activity wraps a finished operation as a command.
func Activity(op string, t progress.Transition) tea.Cmd {
	return func() tea.Msg { return ActivityMsg{Op: op, Transition: t} }
}

// RefreshMsg asks the active screen to reload its snapshot, e.g. after a
// day rollover.
type RefreshMsg struct{}
