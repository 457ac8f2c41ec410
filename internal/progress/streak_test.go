package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabstreak/internal/achievements"
)

func TestAdvanceStreak(t *testing.T) {
	today := Day("2026-06-10")

	tests := []struct {
		name        string
		lastActive  Day
		current     int
		longest     int
		wantOutcome StreakOutcome
		wantCurrent int
		wantLongest int
		wantLast    Day
	}{
		{"first use", "", 0, 0, StreakStarted, 1, 1, today},
		{"same day already counted", today, 3, 5, StreakUnchanged, 3, 5, today},
		{"same day resumed from zero", today, 0, 4, StreakStarted, 1, 4, today},
		{"next day continues", today.AddDays(-1), 4, 4, StreakContinued, 5, 5, today},
		{"next day below longest", today.AddDays(-1), 2, 9, StreakContinued, 3, 9, today},
		{"gap resets to one", today.AddDays(-3), 10, 10, StreakReset, 1, 10, today},
		{"clock moved back", today.AddDays(2), 6, 6, StreakClockSkew, 6, 6, today.AddDays(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.LastActiveDate = tt.lastActive
			s.CurrentStreak = tt.current
			s.LongestStreak = tt.longest

			outcome, _ := s.AdvanceStreak(achievements.Default(), today)

			assert.Equal(t, tt.wantOutcome, outcome)
			assert.Equal(t, tt.wantCurrent, s.CurrentStreak)
			assert.Equal(t, tt.wantLongest, s.LongestStreak)
			assert.Equal(t, tt.wantLast, s.LastActiveDate)
			assert.LessOrEqual(t, s.CurrentStreak, s.LongestStreak)
		})
	}
}

func TestAdvanceStreakUnlocksOnlyWhenChanged(t *testing.T) {
	c := achievements.Default()
	s := NewState()
	today := Day("2026-06-10")

	_, unlocked := s.AdvanceStreak(c, today)
	require.Len(t, unlocked, 1)
	assert.Equal(t, "streak_1", unlocked[0].ID)

	outcome, unlocked := s.AdvanceStreak(c, today)
	assert.Equal(t, StreakUnchanged, outcome)
	assert.Empty(t, unlocked)
}

func TestStreakOverConsecutiveDays(t *testing.T) {
	c := achievements.Default()
	s := NewState()
	day := Day("2026-01-01")

	for i := 0; i < 7; i++ {
		s.AdvanceStreak(c, day.AddDays(i))
		// Several events on one day count once.
		s.AdvanceStreak(c, day.AddDays(i))
	}

	assert.Equal(t, 7, s.CurrentStreak)
	assert.Equal(t, 7, s.LongestStreak)
	for _, id := range []string{"streak_1", "streak_3", "streak_7"} {
		assert.True(t, s.IsUnlocked(id), id)
	}
	assert.False(t, s.IsUnlocked("streak_14"))
}

func TestStreakOutcomeString(t *testing.T) {
	assert.Equal(t, "continued", StreakContinued.String())
	assert.Equal(t, "clock_skew", StreakClockSkew.String())
	assert.True(t, StreakReset.Changed())
	assert.False(t, StreakUnchanged.Changed())
	assert.False(t, StreakClockSkew.Changed())
}
