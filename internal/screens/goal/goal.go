// Package goal edits the daily words goal.
package goal

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocabstreak/internal/progress"
	"github.com/abhisek/vocabstreak/internal/router"
	"github.com/abhisek/vocabstreak/internal/screen"
	"github.com/abhisek/vocabstreak/internal/ui/components"
	"github.com/abhisek/vocabstreak/internal/ui/layout"
	"github.com/abhisek/vocabstreak/internal/ui/theme"
)

// maxDigits bounds the goal input.
const maxDigits = 4

// GoalScreen asks for a new daily goal.
type GoalScreen struct {
	engine *progress.Engine
	input  components.NumberInput
}

var _ screen.Screen = (*GoalScreen)(nil)
var _ screen.KeyHintProvider = (*GoalScreen)(nil)

// New creates the goal editor.
func New(engine *progress.Engine) *GoalScreen {
	return &GoalScreen{
		engine: engine,
		input:  components.NewNumberInput(fmt.Sprintf("%d", engine.DailyGoal()), maxDigits),
	}
}

func (s *GoalScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *GoalScreen) Title() string {
	return "Daily Goal"
}

func (s *GoalScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *GoalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, router.Pop()
		case "enter":
			n, err := s.input.Value()
			if err != nil {
				s.input.Submit(false)
				return s, nil
			}
			s.input.Submit(true)
			t := s.engine.SetDailyGoal(n)
			return s, tea.Batch(screen.Activity("goal", t), router.Pop())
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *GoalScreen) View(width, height int) string {
	return "\n" +
		theme.Heading.Render("  Words per day") + "\n\n" +
		"  " + s.input.View() + "\n\n" +
		theme.Hint.Render(fmt.Sprintf("  Currently %d. Days reaching the goal show green in history.", s.engine.DailyGoal()))
}
