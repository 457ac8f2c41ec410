// Package home is the dashboard's landing screen: streak, today's goal and
// hotkeys for recording activity.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabstreak/internal/progress"
	"github.com/abhisek/vocabstreak/internal/router"
	"github.com/abhisek/vocabstreak/internal/screen"
	achievementsscreen "github.com/abhisek/vocabstreak/internal/screens/achievements"
	"github.com/abhisek/vocabstreak/internal/screens/goal"
	"github.com/abhisek/vocabstreak/internal/screens/history"
	"github.com/abhisek/vocabstreak/internal/ui/components"
	"github.com/abhisek/vocabstreak/internal/ui/layout"
	"github.com/abhisek/vocabstreak/internal/ui/theme"
)

// recentDays is how many days the activity strip shows.
const recentDays = 7

// HomeScreen is the dashboard.
type HomeScreen struct {
	engine *progress.Engine
	menu   components.Menu
	snap   *progress.State
	today  progress.Day
	status string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the dashboard for engine.
func New(engine *progress.Engine) *HomeScreen {
	h := &HomeScreen{engine: engine}
	e := engine
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "Learned a word", Key: "l", Action: h.record("learn", func() progress.Transition { return e.RecordWordsLearned(1) })},
		{Label: "Reviewed a word", Key: "r", Action: h.record("review", func() progress.Transition { return e.RecordWordsReviewed(1) })},
		{Label: "Finished an exercise", Key: "e", Action: h.record("exercise", e.RecordExerciseCompleted)},
		{Label: "Correct answer", Key: "c", Action: h.record("correct", e.RecordCorrectAnswer)},
		{Label: "Incorrect answer", Key: "x", Action: h.record("incorrect", e.RecordIncorrectAnswer)},
		{Label: "Studied 5 minutes", Key: "t", Action: h.record("time", func() progress.Transition { return e.AddTimeSpent(5) })},
		{Label: "Played a game", Key: "g", Action: h.record("game", e.RecordGamePlayed)},
		{Label: "Perfect game", Key: "p", Action: h.record("perfect", func() progress.Transition {
			t := e.RecordGamePlayed()
			p := e.RecordPerfectGame()
			t.Unlocked = append(t.Unlocked, p.Unlocked...)
			return t
		})},
		{Label: "Achievements", Key: "a", Action: func() tea.Cmd { return router.Push(achievementsscreen.New(e)) }},
		{Label: "History", Key: "h", Action: func() tea.Cmd { return router.Push(history.New(e)) }},
		{Label: "Set daily goal", Key: "s", Action: func() tea.Cmd { return router.Push(goal.New(e)) }},
	})
	h.refresh()
	return h
}

func (h *HomeScreen) record(op string, apply func() progress.Transition) func() tea.Cmd {
	return func() tea.Cmd {
		t := apply()
		h.status = describe(op, t)
		h.refresh()
		return screen.Activity(op, t)
	}
}

func describe(op string, t progress.Transition) string {
	msg := fmt.Sprintf("Recorded %s.", op)
	switch t.Streak {
	case progress.StreakStarted:
		msg += " Streak started!"
	case progress.StreakContinued:
		msg += " Streak extended!"
	case progress.StreakReset:
		msg += " New streak started."
	case progress.StreakClockSkew:
		msg += " Clock is behind your last study day; streak unchanged."
	}
	return msg
}

func (h *HomeScreen) refresh() {
	h.snap = h.engine.Snapshot()
	h.today = h.engine.Today()
}

func (h *HomeScreen) Title() string {
	return "Dashboard"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd
	case screen.RefreshMsg:
		h.refresh()
	}
	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	s := h.snap
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Streak.Render(fmt.Sprintf("  🔥 %d day streak", s.CurrentStreak)))
	b.WriteString(theme.Hint.Render(fmt.Sprintf("   longest %d", s.LongestStreak)))
	b.WriteString("\n\n  ")
	b.WriteString(components.GoalBar(s.TodayWords(h.today), s.DailyGoal, min(width-4, 60)).View())
	b.WriteString("\n\n  ")
	b.WriteString(h.recentStrip())
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("  %d words · %d exercises · %d min · %d games",
		s.TotalWordsLearned, s.TotalExercisesCompleted, s.TotalTimeSpent(), s.GamesPlayed)))
	b.WriteString("\n\n")

	menu := h.menu.View()
	if width >= 100 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, splitMenu(menu)...))
	} else {
		b.WriteString(menu)
	}

	if h.status != "" {
		b.WriteString("\n" + theme.Hint.Render("  "+h.status))
	}
	return b.String()
}

// recentStrip renders words learned on each of the last days, oldest first.
func (h *HomeScreen) recentStrip() string {
	parts := make([]string, 0, recentDays)
	for i := recentDays - 1; i >= 0; i-- {
		day := h.today.AddDays(-i)
		n := 0
		if b, ok := h.snap.Bucket(day); ok {
			n = b.WordsLearned
		}
		style := theme.Locked
		if n > 0 {
			style = theme.GoalMet
		}
		label := day.String()
		if len(label) >= 10 {
			label = label[5:]
		}
		parts = append(parts, style.Render(fmt.Sprintf("%s:%d", label, n)))
	}
	return strings.Join(parts, "  ")
}

// splitMenu lays the menu out in two columns.
func splitMenu(menu string) []string {
	lines := strings.Split(strings.TrimRight(menu, "\n"), "\n")
	half := (len(lines) + 1) / 2
	left := strings.Join(lines[:half], "\n")
	right := strings.Join(lines[half:], "\n")
	return []string{lipgloss.NewStyle().Width(40).Render(left), right}
}
