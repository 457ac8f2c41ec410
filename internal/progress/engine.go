package progress

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/vocabstreak/internal/achievements"
)

// Observer is notified after every transition that changed the state.
// It receives a private deep copy and is called with the engine locked, so
// snapshots arrive in transition order; implementations must not block.
type Observer interface {
	StateChanged(snapshot *State)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(snapshot *State)

func (f ObserverFunc) StateChanged(snapshot *State) { f(snapshot) }

// Engine is the caller-facing facade over a State. Each operation runs as
// one synchronous transition and then notifies the observers.
type Engine struct {
	mu        sync.Mutex
	state     *State
	catalog   *achievements.Catalog
	now       func() time.Time
	loc       *time.Location
	observers []Observer
	log       *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithCatalog replaces the compiled-in achievement catalog.
func WithCatalog(c *achievements.Catalog) Option {
	return func(e *Engine) { e.catalog = c }
}

// WithClock sets the time source used to derive "today".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLocation sets the time zone calendar days are computed in.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) { e.loc = loc }
}

// WithObserver registers an observer for state changes.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observers = append(e.observers, o) }
}

// WithLogger sets the engine logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine wraps state (a fresh state if nil). The engine owns state from
// now on; callers must not mutate it directly.
func NewEngine(state *State, opts ...Option) *Engine {
	if state == nil {
		state = NewState()
	}
	e := &Engine{
		state:   state,
		catalog: achievements.Default(),
		now:     time.Now,
		loc:     time.Local,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine scans.
func (e *Engine) Catalog() *achievements.Catalog {
	return e.catalog
}

// Today returns the current calendar day in the engine's location.
func (e *Engine) Today() Day {
	return DayOf(e.now().In(e.loc))
}

// apply runs one transition under the lock and publishes the result.
func (e *Engine) apply(op string, fn func(today Day) Transition) Transition {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := e.Today()
	t := fn(today)
	e.report(op, today, t)
	e.publish()
	return t
}

func (e *Engine) publish() {
	for _, o := range e.observers {
		o.StateChanged(e.state.Clone())
	}
}

func (e *Engine) report(op string, today Day, t Transition) {
	log := e.log.With(zap.String("op", op), zap.Stringer("day", today))

	if t.Clamped {
		log.Warn("negative amount treated as zero")
	}
	switch t.Streak {
	case StreakClockSkew:
		log.Warn("clock is behind last active day, streak left unchanged",
			zap.Stringer("last_active", e.state.LastActiveDate))
	case StreakNotEvaluated, StreakUnchanged:
	default:
		log.Debug("streak advanced",
			zap.Stringer("outcome", t.Streak),
			zap.Int("current", e.state.CurrentStreak),
			zap.Int("longest", e.state.LongestStreak))
	}
	for _, d := range t.Unlocked {
		log.Info("achievement unlocked",
			zap.String("achievement", d.ID),
			zap.String("category", string(d.Category)),
			zap.Int("requirement", d.Requirement))
	}
}

// RecordWordsLearned records count newly learned words and advances the streak.
func (e *Engine) RecordWordsLearned(count int) Transition {
	return e.apply("words_learned", func(today Day) Transition {
		return e.state.RecordWordsLearned(e.catalog, today, count)
	})
}

// RecordWordsReviewed records count reviewed words in today's history.
func (e *Engine) RecordWordsReviewed(count int) Transition {
	return e.apply("words_reviewed", func(today Day) Transition {
		return e.state.RecordWordsReviewed(today, count)
	})
}

// RecordExerciseCompleted records one completed exercise.
func (e *Engine) RecordExerciseCompleted() Transition {
	return e.apply("exercise_completed", func(today Day) Transition {
		return e.state.RecordExerciseCompleted(e.catalog, today)
	})
}

// RecordCorrectAnswer records a correct answer.
func (e *Engine) RecordCorrectAnswer() Transition {
	return e.apply("correct_answer", func(today Day) Transition {
		return e.state.RecordCorrectAnswer(e.catalog, today)
	})
}

// RecordIncorrectAnswer records an incorrect answer.
func (e *Engine) RecordIncorrectAnswer() Transition {
	return e.apply("incorrect_answer", func(Day) Transition {
		return e.state.RecordIncorrectAnswer()
	})
}

// AddTimeSpent records minutes of study time.
func (e *Engine) AddTimeSpent(minutes int) Transition {
	return e.apply("time_spent", func(today Day) Transition {
		return e.state.AddTimeSpent(e.catalog, today, minutes)
	})
}

// RecordGamePlayed records a finished game.
func (e *Engine) RecordGamePlayed() Transition {
	return e.apply("game_played", func(Day) Transition {
		return e.state.RecordGamePlayed(e.catalog)
	})
}

// RecordPerfectGame records a game finished without mistakes.
func (e *Engine) RecordPerfectGame() Transition {
	return e.apply("perfect_game", func(Day) Transition {
		return e.state.RecordPerfectGame(e.catalog)
	})
}

// UpdateStreak advances the streak for today's activity.
func (e *Engine) UpdateStreak() Transition {
	return e.apply("update_streak", func(today Day) Transition {
		return e.state.UpdateStreak(e.catalog, today)
	})
}

// SetDailyGoal sets the daily words goal.
func (e *Engine) SetDailyGoal(goal int) Transition {
	return e.apply("set_daily_goal", func(Day) Transition {
		return e.state.SetDailyGoal(goal)
	})
}

// SetLastWordIndex stores the last viewed word position for context.
func (e *Engine) SetLastWordIndex(context string, index int) Transition {
	return e.apply("set_word_index", func(Day) Transition {
		return e.state.SetLastWordIndex(context, index)
	})
}

// Rollover zeroes the stale today counter. Observers are only notified
// when something changed.
func (e *Engine) Rollover() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := e.Today()
	if !e.state.Rollover(today) {
		return false
	}
	e.log.Debug("today counter rolled over", zap.Stringer("day", today))
	e.publish()
	return true
}

// PeekUnlocked returns the achievement id waiting in the mailbox.
func (e *Engine) PeekUnlocked() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.LastUnlocked()
}

// ClearUnlocked empties the mailbox. Clearing is a persisted mutation.
func (e *Engine) ClearUnlocked() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.ClearLastUnlocked() {
		return false
	}
	e.publish()
	return true
}

// ClearUnlockedIf empties the mailbox only if it still holds id, so a
// reader that peeked earlier cannot drop a newer unlock. The returned
// string is the id held after the call ("" when empty).
func (e *Engine) ClearUnlockedIf(id string) (bool, string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.ClearLastUnlockedIf(id) {
		current, _ := e.state.LastUnlocked()
		return false, current
	}
	e.publish()
	return true, ""
}

// CurrentStreak returns the current day streak.
func (e *Engine) CurrentStreak() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.CurrentStreak
}

// LongestStreak returns the longest day streak ever reached.
func (e *Engine) LongestStreak() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.LongestStreak
}

// TotalWordsLearned returns the cumulative learned words.
func (e *Engine) TotalWordsLearned() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.TotalWordsLearned
}

// TodayWordsLearned returns the words learned today.
func (e *Engine) TodayWordsLearned() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.TodayWords(e.Today())
}

// DailyGoal returns the daily words goal.
func (e *Engine) DailyGoal() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.DailyGoal
}

// UnlockedAchievementIDs returns the unlocked ids in unlock order.
func (e *Engine) UnlockedAchievementIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.state.UnlockedAchievementIDs...)
}

// DailyBuckets returns the full per-day history, oldest first.
func (e *Engine) DailyBuckets() []DailyBucket {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]DailyBucket(nil), e.state.DailyBuckets...)
}

// LastWordIndex returns the stored word position for context.
func (e *Engine) LastWordIndex(context string) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	i, ok := e.state.LastWordIndex[context]
	return i, ok
}

// Snapshot returns a deep copy of the whole state.
func (e *Engine) Snapshot() *State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}
