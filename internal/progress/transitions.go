package progress

import "github.com/abhisek/vocabstreak/internal/achievements"

// Transition summarizes one facade operation.
type Transition struct {
	// Streak is StreakNotEvaluated for operations that do not touch the streak.
	Streak StreakOutcome
	// Unlocked lists every achievement unlocked by the operation, ascending
	// within each category. The mailbox only holds the last one.
	Unlocked []achievements.Definition
	// Clamped is set when a negative amount was treated as zero.
	Clamped bool
}

func (t *Transition) unlock(defs []achievements.Definition) {
	t.Unlocked = append(t.Unlocked, defs...)
}

// amount clamps n at zero and remembers that it did.
func (t *Transition) amount(n int) int {
	if n < 0 {
		t.Clamped = true
		return 0
	}
	return n
}

// rollToday points the today counter at today, zeroing it on a new day.
// The counter only moves forward: a day before TodayDate leaves it alone.
func (s *State) rollToday(today Day) bool {
	if s.TodayDate == today || s.before(today) {
		return false
	}
	s.TodayDate = today
	s.TodayWordsLearned = 0
	return true
}

// before reports whether day is earlier than the day the today counter
// refers to.
func (s *State) before(day Day) bool {
	gap, ok := DaysBetween(s.TodayDate, day)
	return ok && gap < 0
}

// RecordWordsLearned adds count words to the totals and today's bucket and
// always advances the streak.
func (s *State) RecordWordsLearned(c *achievements.Catalog, today Day, count int) Transition {
	var t Transition
	count = t.amount(count)

	b := s.BucketFor(today)
	b.WordsLearned += count
	s.TotalWordsLearned += count
	s.rollToday(today)
	if s.TodayDate == today {
		s.TodayWordsLearned += count
	}

	outcome, unlocked := s.AdvanceStreak(c, today)
	t.Streak = outcome
	t.unlock(unlocked)
	t.unlock(s.CheckAchievements(c, achievements.CategoryWords, s.TotalWordsLearned))
	return t
}

// RecordWordsReviewed adds count reviewed words to today's bucket. Reviews
// feed the history only.
func (s *State) RecordWordsReviewed(today Day, count int) Transition {
	var t Transition
	count = t.amount(count)
	s.BucketFor(today).WordsReviewed += count
	return t
}

// RecordExerciseCompleted counts one finished exercise.
func (s *State) RecordExerciseCompleted(c *achievements.Catalog, today Day) Transition {
	var t Transition
	s.BucketFor(today).ExercisesCompleted++
	s.TotalExercisesCompleted++
	t.unlock(s.CheckAchievements(c, achievements.CategoryExercises, s.TotalExercisesCompleted))
	return t
}

// RecordCorrectAnswer extends the run of consecutive correct answers.
func (s *State) RecordCorrectAnswer(c *achievements.Catalog, today Day) Transition {
	var t Transition
	s.BucketFor(today).CorrectAnswers++
	s.ConsecutiveCorrectAnswers++
	t.unlock(s.CheckAchievements(c, achievements.CategoryAccuracy, s.ConsecutiveCorrectAnswers))
	return t
}

// RecordIncorrectAnswer breaks the run of consecutive correct answers.
// A reset cannot cross a threshold, so nothing is scanned.
func (s *State) RecordIncorrectAnswer() Transition {
	s.ConsecutiveCorrectAnswers = 0
	return Transition{}
}

// AddTimeSpent adds minutes to today's bucket and scans the time category
// against the total over all days.
func (s *State) AddTimeSpent(c *achievements.Catalog, today Day, minutes int) Transition {
	var t Transition
	minutes = t.amount(minutes)
	s.BucketFor(today).TimeSpentMinutes += minutes
	t.unlock(s.CheckAchievements(c, achievements.CategoryTime, s.TotalTimeSpent()))
	return t
}

// RecordGamePlayed counts one finished game.
func (s *State) RecordGamePlayed(c *achievements.Catalog) Transition {
	var t Transition
	s.GamesPlayed++
	t.unlock(s.CheckAchievements(c, achievements.CategoryGames, s.GamesPlayed))
	return t
}

// RecordPerfectGame counts one game finished without mistakes.
func (s *State) RecordPerfectGame(c *achievements.Catalog) Transition {
	var t Transition
	s.PerfectGames++
	t.unlock(s.CheckAchievements(c, achievements.CategoryPerfect, s.PerfectGames))
	return t
}

// UpdateStreak advances the streak without recording any other activity.
func (s *State) UpdateStreak(c *achievements.Catalog, today Day) Transition {
	var t Transition
	outcome, unlocked := s.AdvanceStreak(c, today)
	t.Streak = outcome
	t.unlock(unlocked)
	return t
}

// SetDailyGoal replaces the daily words goal.
func (s *State) SetDailyGoal(goal int) Transition {
	var t Transition
	s.DailyGoal = t.amount(goal)
	return t
}

// SetLastWordIndex remembers the last viewed word position for a context.
func (s *State) SetLastWordIndex(context string, index int) Transition {
	var t Transition
	if s.LastWordIndex == nil {
		s.LastWordIndex = map[string]int{}
	}
	s.LastWordIndex[context] = t.amount(index)
	return t
}

// Rollover zeroes the today counter once the day has changed. It reports
// whether anything changed.
func (s *State) Rollover(today Day) bool {
	if s.TodayDate == today || (s.TodayDate.IsZero() && s.TodayWordsLearned == 0) {
		return false
	}
	return s.rollToday(today)
}
