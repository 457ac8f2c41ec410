// Package history shows the per-day activity buckets.
package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabstreak/internal/progress"
	"github.com/abhisek/vocabstreak/internal/router"
	"github.com/abhisek/vocabstreak/internal/screen"
	"github.com/abhisek/vocabstreak/internal/ui/layout"
	"github.com/abhisek/vocabstreak/internal/ui/theme"
)

// HistoryScreen lists days newest first.
type HistoryScreen struct {
	engine   *progress.Engine
	buckets  []progress.DailyBucket
	goal     int
	selected int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(engine *progress.Engine) *HistoryScreen {
	return &HistoryScreen{engine: engine}
}

func (s *HistoryScreen) Init() tea.Cmd {
	s.load()
	return nil
}

func (s *HistoryScreen) load() {
	all := s.engine.DailyBuckets()
	s.buckets = make([]progress.DailyBucket, len(all))
	for i, b := range all {
		s.buckets[len(all)-1-i] = b
	}
	s.goal = s.engine.DailyGoal()
	if s.selected >= len(s.buckets) {
		s.selected = max(len(s.buckets)-1, 0)
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.RefreshMsg:
		s.load()
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, router.Pop()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.buckets)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.buckets) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No activity yet. Learn a word!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Heading.Render(fmt.Sprintf("  %-10s  %7s  %8s  %9s  %7s  %7s",
		"Date", "Learned", "Reviewed", "Exercises", "Correct", "Minutes")))
	b.WriteString("\n  " + theme.Locked.Render(strings.Repeat("─", 60)) + "\n")

	visible := max(height-4, 1)
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	end := min(start+visible, len(s.buckets))

	for i := start; i < end; i++ {
		d := s.buckets[i]
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%-10s  %7d  %8d  %9d  %7d  %7d",
			prefix, d.Date, d.WordsLearned, d.WordsReviewed, d.ExercisesCompleted, d.CorrectAnswers, d.TimeSpentMinutes)

		style := theme.Body
		switch {
		case i == s.selected:
			style = theme.Title
		case s.goal > 0 && d.WordsLearned >= s.goal:
			style = theme.GoalMet
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}
