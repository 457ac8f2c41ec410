package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocabstreak/internal/ui/theme"
)

// NumberInput wraps bubbles/textinput and accepts digits only.
type NumberInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewNumberInput creates a focused input limited to maxDigits digits.
func NewNumberInput(placeholder string, maxDigits int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if maxDigits > 0 {
		ti.CharLimit = maxDigits
	}
	ti.Focus()
	return NumberInput{Model: ti}
}

// Init returns the initial command.
func (t NumberInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Non-digit printable keys are swallowed.
func (t NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return t, nil
		}
		t.submitted = false
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input with a validation mark after a submit.
func (t NumberInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + theme.GoalMet.Render("✓")
		} else {
			view += " " + theme.Invalid.Render("✗")
		}
	}
	return view
}

// Value returns the parsed number.
func (t NumberInput) Value() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// Submit marks the input as submitted with a validation result.
func (t *NumberInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
