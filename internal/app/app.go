// Package app is the root Bubble Tea model of the dashboard.
package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vocabstreak/internal/achievements"
	"github.com/abhisek/vocabstreak/internal/notify"
	"github.com/abhisek/vocabstreak/internal/progress"
	"github.com/abhisek/vocabstreak/internal/router"
	"github.com/abhisek/vocabstreak/internal/screen"
	"github.com/abhisek/vocabstreak/internal/screens/home"
	"github.com/abhisek/vocabstreak/internal/ui/components"
	"github.com/abhisek/vocabstreak/internal/ui/layout"
)

const (
	pollInterval = time.Second
	toastTTL     = 4 * time.Second
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// toast holds the achievement currently on screen. It is shared by pointer
// because the watcher's presenter writes into it.
type toast struct {
	display achievements.Display
	until   time.Time
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	engine  *progress.Engine
	watcher *notify.Watcher
	router  *router.Router
	toast   *toast
	log     *zap.Logger
	now     func() time.Time
	today   progress.Day
	width   int
	height  int
}

// New builds the model around engine. Unlocked achievements are shown as
// toasts; nothing else reads the mailbox while the dashboard runs.
func New(engine *progress.Engine, log *zap.Logger) AppModel {
	if log == nil {
		log = zap.NewNop()
	}
	m := AppModel{
		engine: engine,
		router: router.New(home.New(engine)),
		toast:  &toast{},
		log:    log,
		now:    time.Now,
		today:  engine.Today(),
	}
	t := m.toast
	m.watcher = notify.NewWatcher(engine, engine.Catalog(), nil, notify.PresenterFunc(func(d achievements.Display) error {
		t.display = d
		return nil
	}), log)
	return m
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.poll(), tick())
}

// poll delivers a pending unlock, e.g. one left over from the last run.
func (m AppModel) poll() tea.Cmd {
	shown, err := m.watcher.Poll()
	if err != nil {
		m.log.Warn("achievement notification failed", zap.Error(err))
	}
	if shown {
		m.toast.until = m.now().Add(toastTTL)
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tick(), m.poll()}
		// Days change under a long-running dashboard.
		if today := m.engine.Today(); today != m.today {
			m.today = today
			m.engine.Rollover()
			cmds = append(cmds, m.router.Update(screen.RefreshMsg{}))
		}
		return m, tea.Batch(cmds...)

	case screen.ActivityMsg:
		m.log.Debug("dashboard activity", zap.String("op", msg.Op), zap.Int("unlocked", len(msg.Transition.Unlocked)))
		return m, m.poll()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.router.Depth() == 1 {
				return m, tea.Quit
			}
		case "esc":
			if m.toast.visible(m.now()) {
				m.toast.until = time.Time{}
				return m, nil
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (t *toast) visible(now time.Time) bool {
	return now.Before(t.until)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, layout.HeaderStats{
		Streak:     m.engine.CurrentStreak(),
		TodayWords: m.engine.TodayWordsLearned(),
		DailyGoal:  m.engine.DailyGoal(),
	}, m.width)

	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(p.KeyHints(), footerHints...)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	overlay := ""
	if m.toast.visible(m.now()) {
		overlay = components.Toast(m.toast.display)
	}

	v.SetContent(layout.RenderFrame(header, content, overlay, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(engine *progress.Engine, log *zap.Logger) error {
	p := tea.NewProgram(New(engine, log))
	_, err := p.Run()
	return err
}
