package progress

import "github.com/abhisek/vocabstreak/internal/achievements"

// StreakOutcome describes what AdvanceStreak did.
type StreakOutcome int

const (
	// StreakNotEvaluated means the transition does not touch the streak.
	StreakNotEvaluated StreakOutcome = iota
	// StreakUnchanged means the streak was already counted today.
	StreakUnchanged
	// StreakStarted means the first active day, or a zero streak resumed on the same day.
	StreakStarted
	// StreakContinued means activity on the day after the last active day.
	StreakContinued
	// StreakReset means a gap of more than one day restarted the streak at 1.
	StreakReset
	// StreakClockSkew means today is before the last active day; nothing changed.
	StreakClockSkew
)

func (o StreakOutcome) String() string {
	switch o {
	case StreakNotEvaluated:
		return "not_evaluated"
	case StreakUnchanged:
		return "unchanged"
	case StreakStarted:
		return "started"
	case StreakContinued:
		return "continued"
	case StreakReset:
		return "reset"
	case StreakClockSkew:
		return "clock_skew"
	default:
		return "unknown"
	}
}

// Changed reports whether the outcome modified the streak.
func (o StreakOutcome) Changed() bool {
	return o == StreakStarted || o == StreakContinued || o == StreakReset
}

// AdvanceStreak applies today's activity to the day streak. It is the only
// place streak rules live; every streak-relevant transition calls it.
//
// When the streak changes, LongestStreak and LastActiveDate are updated and
// the streak achievements are scanned; the newly unlocked ones are returned.
func (s *State) AdvanceStreak(c *achievements.Catalog, today Day) (StreakOutcome, []achievements.Definition) {
	if s.LastActiveDate == today && s.CurrentStreak > 0 {
		return StreakUnchanged, nil
	}

	var outcome StreakOutcome
	diff, ok := DaysBetween(s.LastActiveDate, today)
	switch {
	case !ok:
		// Never active (or an unreadable date): today starts a new streak.
		s.CurrentStreak = 1
		outcome = StreakStarted
	case diff < 0:
		return StreakClockSkew, nil
	case diff == 0:
		// Only reachable with CurrentStreak == 0.
		s.CurrentStreak = 1
		outcome = StreakStarted
	case diff == 1:
		s.CurrentStreak++
		outcome = StreakContinued
	default:
		s.CurrentStreak = 1
		outcome = StreakReset
	}

	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	s.LastActiveDate = today
	return outcome, s.CheckAchievements(c, achievements.CategoryStreak, s.CurrentStreak)
}
