// Package notify delivers the "just unlocked" achievement to the learner.
//
// The engine keeps a single-slot mailbox. A Watcher reads it, resolves the
// display text, hands it to a Presenter and clears the slot once the
// presenter accepted it.
package notify

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/vocabstreak/internal/achievements"
)

// Mailbox is the engine side of the handoff.
type Mailbox interface {
	PeekUnlocked() (string, bool)
	// ClearUnlockedIf clears only while the mailbox still holds id.
	ClearUnlockedIf(id string) (bool, string)
}

// Presenter shows an unlocked achievement to the learner.
type Presenter interface {
	Present(d achievements.Display) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(d achievements.Display) error

func (f PresenterFunc) Present(d achievements.Display) error { return f(d) }

// Watcher moves mailbox entries to a Presenter.
type Watcher struct {
	mailbox   Mailbox
	catalog   *achievements.Catalog
	localizer achievements.Localizer
	presenter Presenter
	log       *zap.Logger

	mu            sync.Mutex
	lastDelivered string
}

// NewWatcher builds a watcher. A nil localizer means English.
func NewWatcher(m Mailbox, c *achievements.Catalog, l achievements.Localizer, p Presenter, log *zap.Logger) *Watcher {
	if l == nil {
		l = achievements.English
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{mailbox: m, catalog: c, localizer: l, presenter: p, log: log}
}

// Poll delivers the mailbox entry, if any. It reports whether something was
// presented. A presenter error leaves the mailbox untouched for the next poll.
func (w *Watcher) Poll() (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id, ok := w.mailbox.PeekUnlocked()
	if !ok {
		return false, nil
	}

	if id == w.lastDelivered {
		// Already shown; the clear did not stick.
		w.mailbox.ClearUnlockedIf(id)
		return false, nil
	}

	d, ok := achievements.Resolve(w.catalog, w.localizer, id)
	if !ok {
		w.log.Warn("mailbox holds an unknown achievement, dropping it", zap.String("achievement", id))
		w.mailbox.ClearUnlockedIf(id)
		return false, nil
	}

	if err := w.presenter.Present(d); err != nil {
		return false, fmt.Errorf("present achievement %q: %w", id, err)
	}
	w.lastDelivered = id
	w.mailbox.ClearUnlockedIf(id)
	w.log.Debug("achievement notification delivered", zap.String("achievement", id))
	return true, nil
}

// LastDelivered returns the id of the last presented achievement.
func (w *Watcher) LastDelivered() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastDelivered
}
