package achievements

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/vocabstreak/internal/progress"
	"github.com/abhisek/vocabstreak/internal/screen"
)

func TestListsCatalogWithUnlockState(t *testing.T) {
	e := progress.NewEngine(progress.NewState())
	s := New(e)
	s.Init()

	view := s.View(100, 200)
	assert.Contains(t, view, "0 of ")
	assert.Contains(t, view, "to go")

	e.RecordWordsLearned(1)
	s.Update(screen.RefreshMsg{})
	assert.Contains(t, s.View(100, 200), "1 of ")
}

func TestScrollStaysInBounds(t *testing.T) {
	s := New(progress.NewEngine(progress.NewState()))
	s.Init()

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Zero(t, s.offset)
	for range len(s.lines) + 5 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, len(s.lines)-1, s.offset)
}
