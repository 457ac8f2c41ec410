// Package achievements lists the catalog grouped by category.
package achievements

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocabstreak/internal/achievements"
	"github.com/abhisek/vocabstreak/internal/progress"
	"github.com/abhisek/vocabstreak/internal/router"
	"github.com/abhisek/vocabstreak/internal/screen"
	"github.com/abhisek/vocabstreak/internal/ui/components"
	"github.com/abhisek/vocabstreak/internal/ui/layout"
	"github.com/abhisek/vocabstreak/internal/ui/theme"
)

// Screen shows every achievement with its unlock state.
type Screen struct {
	engine    *progress.Engine
	localizer achievements.Localizer
	lines     []string
	unlocked  int
	offset    int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the achievements screen.
func New(engine *progress.Engine) *Screen {
	return &Screen{engine: engine, localizer: achievements.English}
}

func (s *Screen) Init() tea.Cmd {
	s.build()
	return nil
}

func (s *Screen) build() {
	snap := s.engine.Snapshot()
	c := s.engine.Catalog()

	s.lines = s.lines[:0]
	for _, cat := range achievements.AllCategories() {
		defs := c.ForCategory(cat)
		if len(defs) == 0 {
			continue
		}
		s.lines = append(s.lines, theme.Heading.Render(cat.DisplayName()))
		value := snap.Metric(cat)
		for _, d := range defs {
			disp, _ := achievements.Resolve(c, s.localizer, d.ID)
			s.lines = append(s.lines, "  "+components.AchievementRow(disp, snap.IsUnlocked(d.ID), value))
		}
		s.lines = append(s.lines, "")
	}
	s.unlocked = len(snap.UnlockedAchievementIDs)
}

func (s *Screen) Title() string {
	return "Achievements"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.RefreshMsg:
		s.build()
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, router.Pop()
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.lines)-1 {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("  %d of %d unlocked", s.unlocked, s.engine.Catalog().Len())))
	b.WriteString("\n\n")

	visible := height - 3
	if visible < 1 {
		visible = 1
	}
	end := min(s.offset+visible, len(s.lines))
	for _, line := range s.lines[min(s.offset, end):end] {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}
