package notify

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/vocabstreak/internal/achievements"
	"github.com/abhisek/vocabstreak/internal/progress"
)

// stuckMailbox never forgets its entry.
type stuckMailbox struct{ id string }

func (m stuckMailbox) PeekUnlocked() (string, bool) { return m.id, m.id != "" }
func (m stuckMailbox) ClearUnlockedIf(string) (bool, string) { return false, m.id }

type collector struct{ got []achievements.Display }

func (c *collector) Present(d achievements.Display) error {
	c.got = append(c.got, d)
	return nil
}

func newEngine() *progress.Engine {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	return progress.NewEngine(nil,
		progress.WithClock(func() time.Time { return now }),
		progress.WithLocation(time.UTC))
}

func TestPollDeliversAndClears(t *testing.T) {
	e := newEngine()
	c := &collector{}
	w := NewWatcher(e, e.Catalog(), nil, c, nil)

	ok, err := w.Poll()
	require.NoError(t, err)
	assert.False(t, ok, "empty mailbox")

	e.RecordWordsLearned(10)
	ok, err = w.Poll()
	require.NoError(t, err)
	assert.True(t, ok)

	require.Len(t, c.got, 1)
	assert.Equal(t, "words_10", c.got[0].ID, "only the last unlock reaches the mailbox")
	assert.Equal(t, "Word Collector", c.got[0].Title)
	_, pending := e.PeekUnlocked()
	assert.False(t, pending)
	assert.Equal(t, "words_10", w.LastDelivered())
}

func TestPollSkipsAlreadyDelivered(t *testing.T) {
	c := &collector{}
	w := NewWatcher(stuckMailbox{id: "games_1"}, achievements.Default(), nil, c, nil)

	ok, err := w.Poll()
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = w.Poll()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, c.got, 1)
}

func TestPollDropsUnknownID(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := &collector{}
	w := NewWatcher(stuckMailbox{id: "legacy_badge"}, achievements.Default(), nil, c, zap.New(core))

	ok, err := w.Poll()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, c.got)
	assert.Equal(t, 1, logs.Len())
}

func TestPollKeepsEntryWhenPresenterFails(t *testing.T) {
	e := newEngine()
	e.RecordGamePlayed()
	w := NewWatcher(e, e.Catalog(), nil, PresenterFunc(func(achievements.Display) error {
		return errors.New("terminal closed")
	}), nil)

	_, err := w.Poll()
	assert.ErrorContains(t, err, "terminal closed")
	id, ok := e.PeekUnlocked()
	require.True(t, ok)
	assert.Equal(t, "games_1", id)
}

type shouting struct{}

func (shouting) Title(id string) string       { return "TITLE " + id }
func (shouting) Description(id string) string { return "DESC " + id }

func TestWatcherUsesLocalizer(t *testing.T) {
	c := &collector{}
	w := NewWatcher(stuckMailbox{id: "perfect_1"}, achievements.Default(), shouting{}, c, nil)

	_, err := w.Poll()
	require.NoError(t, err)
	require.Len(t, c.got, 1)
	assert.Equal(t, "TITLE perfect_1", c.got[0].Title)
}

func TestConsolePresenter(t *testing.T) {
	var buf bytes.Buffer
	d, ok := achievements.Resolve(achievements.Default(), achievements.English, "streak_3")
	require.True(t, ok)

	require.NoError(t, ConsolePresenter{W: &buf}.Present(d))
	assert.Contains(t, buf.String(), "Achievement unlocked!")
	assert.Contains(t, buf.String(), d.Title)
}

func TestPollKeepsUnlockArrivingDuringPresent(t *testing.T) {
	e := newEngine()
	e.RecordWordsLearned(1)

	var shown []string
	w := NewWatcher(e, e.Catalog(), nil, PresenterFunc(func(d achievements.Display) error {
		shown = append(shown, d.ID)
		if d.ID == "words_1" {
			e.RecordGamePlayed()
		}
		return nil
	}), nil)

	ok, err := w.Poll()
	require.NoError(t, err)
	require.True(t, ok)

	id, pending := e.PeekUnlocked()
	require.True(t, pending, "the newer unlock must survive the clear")
	assert.Equal(t, "games_1", id)

	ok, err = w.Poll()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"words_1", "games_1"}, shown)
}
