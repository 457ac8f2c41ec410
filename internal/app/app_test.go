package app

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabstreak/internal/progress"
	"github.com/abhisek/vocabstreak/internal/router"
)

var start = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, now *time.Time) AppModel {
	t.Helper()
	clock := func() time.Time { return *now }
	e := progress.NewEngine(progress.NewState(), progress.WithClock(clock), progress.WithLocation(time.UTC))
	m := New(e, nil)
	m.now = clock
	return m
}

// drain runs cmd and feeds resulting messages back into the model,
// skipping ticks so the loop ends.
func drain(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		if _, ok := msg.(tickMsg); ok {
			continue
		}
		next, more := m.Update(msg)
		m = next.(AppModel)
		queue = append(queue, more)
	}
	return m
}

func press(t *testing.T, m AppModel, r rune) AppModel {
	t.Helper()
	next, cmd := m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	return drain(t, next.(AppModel), cmd)
}

func TestLearnHotkeyShowsToast(t *testing.T) {
	now := start
	m := newTestModel(t, &now)

	m = press(t, m, 'l')

	assert.Equal(t, 1, m.engine.TotalWordsLearned())
	require.True(t, m.toast.visible(now))
	assert.Equal(t, "words_1", m.toast.display.ID)
	_, pending := m.engine.PeekUnlocked()
	assert.False(t, pending, "mailbox cleared after presenting")

	now = now.Add(toastTTL + time.Second)
	assert.False(t, m.toast.visible(now))
}

func TestEscDismissesToastBeforeNavigating(t *testing.T) {
	now := start
	m := newTestModel(t, &now)
	m = press(t, m, 'l')
	m = press(t, m, 'a')
	require.Equal(t, 2, m.router.Depth())

	next, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = next.(AppModel)
	assert.False(t, m.toast.visible(now))
	assert.Equal(t, 2, m.router.Depth(), "first esc only closes the toast")

	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = drain(t, next.(AppModel), cmd)
	assert.Equal(t, 1, m.router.Depth())
}

func TestTickRollsOverOnNewDay(t *testing.T) {
	now := start
	m := newTestModel(t, &now)
	m = press(t, m, 'l')
	require.Equal(t, 1, m.engine.TodayWordsLearned())

	now = now.AddDate(0, 0, 1)
	next, _ := m.Update(tickMsg(now))
	m = next.(AppModel)

	assert.Equal(t, progress.DayOf(now), m.today)
	assert.Zero(t, m.engine.TodayWordsLearned())
}

func TestQuitOnlyFromDashboard(t *testing.T) {
	now := start
	m := newTestModel(t, &now)

	m = press(t, m, 'h')
	require.Equal(t, 2, m.router.Depth())

	next, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	m = next.(AppModel)
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd(), "q inside a screen goes back")

	m = drain(t, m, cmd)
	_, cmd = m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewRendersFrame(t *testing.T) {
	now := start
	m := newTestModel(t, &now)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(AppModel)
	m = press(t, m, 'l')

	assert.True(t, m.View().AltScreen)
	assert.Contains(t, m.router.View(100, 30), "1 day streak")
}
