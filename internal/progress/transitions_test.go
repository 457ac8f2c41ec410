package progress

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabstreak/internal/achievements"
)

var catalog = achievements.Default()

func defIDs(defs []achievements.Definition) []string {
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.ID)
	}
	return out
}

func mailbox(s *State) string {
	id, _ := s.LastUnlocked()
	return id
}

// Scenario: fresh state, one word learned on day D.
func TestFirstWordLearned(t *testing.T) {
	s := NewState()
	d := Day("2026-04-01")

	tr := s.RecordWordsLearned(catalog, d, 1)

	assert.Equal(t, 1, s.TotalWordsLearned)
	assert.Equal(t, 1, s.TodayWords(d))
	require.Len(t, s.DailyBuckets, 1)
	assert.Equal(t, DailyBucket{Date: d, WordsLearned: 1}, s.DailyBuckets[0])
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, StreakStarted, tr.Streak)
	assert.Contains(t, s.UnlockedAchievementIDs, "streak_1")
	assert.Contains(t, s.UnlockedAchievementIDs, "words_1")
	assert.Equal(t, []string{"streak_1", "words_1"}, defIDs(tr.Unlocked))
}

// Scenario: active yesterday with a streak of 4.
func TestStreakContinuesNextDay(t *testing.T) {
	s := NewState()
	d := Day("2026-04-10")
	s.LastActiveDate = d.AddDays(-1)
	s.CurrentStreak = 4
	s.LongestStreak = 4

	tr := s.RecordWordsLearned(catalog, d, 2)

	assert.Equal(t, StreakContinued, tr.Streak)
	assert.Equal(t, 5, s.CurrentStreak)
	assert.Equal(t, 5, s.LongestStreak)
}

// Scenario: three-day gap after a streak of 10.
func TestStreakResetsAfterGap(t *testing.T) {
	s := NewState()
	d := Day("2026-04-10")
	s.LastActiveDate = d.AddDays(-3)
	s.CurrentStreak = 10
	s.LongestStreak = 10

	tr := s.UpdateStreak(catalog, d)

	assert.Equal(t, StreakReset, tr.Streak)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 10, s.LongestStreak)
	assert.Equal(t, d, s.LastActiveDate)
}

// Scenario: the 5-in-a-row milestone unlocks exactly on the fifth answer.
func TestAccuracyUnlocksAtThreshold(t *testing.T) {
	s := NewState()
	d := Day("2026-04-10")

	for i := 1; i <= 7; i++ {
		tr := s.RecordCorrectAnswer(catalog, d)
		switch {
		case i < 5:
			assert.False(t, s.IsUnlocked("accuracy_5"), "unlocked early at answer %d", i)
			assert.Empty(t, tr.Unlocked)
		case i == 5:
			assert.Equal(t, []string{"accuracy_5"}, defIDs(tr.Unlocked))
			assert.Equal(t, "accuracy_5", mailbox(s))
		default:
			assert.Empty(t, tr.Unlocked, "answer %d re-unlocked", i)
		}
	}
	assert.Equal(t, 7, s.ConsecutiveCorrectAnswers)
	b, _ := s.Bucket(d)
	assert.Equal(t, 7, b.CorrectAnswers)
}

// Scenario: an incorrect answer breaks the run before it reaches five.
func TestIncorrectAnswerBreaksRun(t *testing.T) {
	s := NewState()
	d := Day("2026-04-10")

	for i := 0; i < 4; i++ {
		s.RecordCorrectAnswer(catalog, d)
	}
	s.RecordIncorrectAnswer()
	for i := 0; i < 3; i++ {
		s.RecordCorrectAnswer(catalog, d)
	}

	assert.Equal(t, 3, s.ConsecutiveCorrectAnswers)
	assert.False(t, s.IsUnlocked("accuracy_5"))
	b, _ := s.Bucket(d)
	assert.Equal(t, 7, b.CorrectAnswers)
}

func TestMultiThresholdLeavesHighestInMailbox(t *testing.T) {
	s := NewState()
	d := Day("2026-04-10")

	tr := s.RecordWordsLearned(catalog, d, 100)

	assert.Equal(t, []string{"streak_1", "words_1", "words_10", "words_50", "words_100"}, defIDs(tr.Unlocked))
	assert.Equal(t, "words_100", mailbox(s))
}

func TestChunkInvariance(t *testing.T) {
	d := Day("2026-04-10")

	single := NewState()
	single.RecordWordsLearned(catalog, d, 100)

	chunked := NewState()
	for i := 0; i < 100; i++ {
		chunked.RecordWordsLearned(catalog, d, 1)
	}

	assert.Equal(t, single.TotalWordsLearned, chunked.TotalWordsLearned)
	assert.Equal(t, 100, chunked.TotalWordsLearned)
	assert.ElementsMatch(t, single.UnlockedAchievementIDs, chunked.UnlockedAchievementIDs)
}

func TestTimeSpentScansTotalAcrossDays(t *testing.T) {
	s := NewState()
	d := Day("2026-04-10")

	s.AddTimeSpent(catalog, d, 6)
	assert.False(t, s.IsUnlocked("time_10"))

	tr := s.AddTimeSpent(catalog, d.AddDays(1), 5)
	assert.Equal(t, []string{"time_10"}, defIDs(tr.Unlocked))
	assert.Len(t, s.DailyBuckets, 2)
	assert.Equal(t, 11, s.TotalTimeSpent())
}

func TestGamesAndPerfectGames(t *testing.T) {
	s := NewState()

	tr := s.RecordGamePlayed(catalog)
	assert.Equal(t, []string{"games_1"}, defIDs(tr.Unlocked))
	tr = s.RecordPerfectGame(catalog)
	assert.Equal(t, []string{"perfect_1"}, defIDs(tr.Unlocked))

	assert.Equal(t, 1, s.GamesPlayed)
	assert.Equal(t, 1, s.PerfectGames)
	assert.Empty(t, s.DailyBuckets, "game counters are not bucketed")
}

func TestExerciseCompleted(t *testing.T) {
	s := NewState()
	d := Day("2026-04-10")

	for i := 0; i < 10; i++ {
		s.RecordExerciseCompleted(catalog, d)
	}
	assert.Equal(t, 10, s.TotalExercisesCompleted)
	assert.True(t, s.IsUnlocked("exercises_10"))
	b, _ := s.Bucket(d)
	assert.Equal(t, 10, b.ExercisesCompleted)
	assert.Equal(t, StreakNotEvaluated, s.RecordExerciseCompleted(catalog, d).Streak)
	assert.Equal(t, 0, s.CurrentStreak, "exercises do not advance the streak")
}

func TestWordsReviewedOnlyTouchesBucket(t *testing.T) {
	s := NewState()
	d := Day("2026-04-10")

	tr := s.RecordWordsReviewed(d, 4)

	assert.Empty(t, tr.Unlocked)
	assert.Equal(t, 0, s.TotalWordsLearned)
	b, _ := s.Bucket(d)
	assert.Equal(t, 4, b.WordsReviewed)
}

func TestNegativeAmountsAreClamped(t *testing.T) {
	s := NewState()
	d := Day("2026-04-10")

	tr := s.RecordWordsLearned(catalog, d, -5)
	assert.True(t, tr.Clamped)
	assert.Equal(t, 0, s.TotalWordsLearned)
	assert.Equal(t, 1, s.CurrentStreak, "the activity still counts for the streak")

	tr = s.AddTimeSpent(catalog, d, -30)
	assert.True(t, tr.Clamped)
	assert.Equal(t, 0, s.TotalTimeSpent())

	tr = s.SetDailyGoal(-1)
	assert.True(t, tr.Clamped)
	assert.Equal(t, 0, s.DailyGoal)
}

func TestSetDailyGoalHasNoSideEffects(t *testing.T) {
	s := NewState()
	before := s.Clone()

	s.SetDailyGoal(25)

	before.DailyGoal = 25
	assert.Equal(t, before, s)
}

func TestTodayWordsRollsOverOnNewDay(t *testing.T) {
	s := NewState()
	d := Day("2026-04-10")

	s.RecordWordsLearned(catalog, d, 8)
	assert.Equal(t, 8, s.TodayWords(d))
	assert.Equal(t, 0, s.TodayWords(d.AddDays(1)), "stale counter reads as zero")

	s.RecordWordsLearned(catalog, d.AddDays(1), 3)
	assert.Equal(t, 3, s.TodayWords(d.AddDays(1)))
	assert.Equal(t, 11, s.TotalWordsLearned)
}

func TestClockSkewKeepsTodayCounter(t *testing.T) {
	s := NewState()
	d := Day("2026-04-10")

	s.RecordWordsLearned(catalog, d, 5)
	tr := s.RecordWordsLearned(catalog, d.AddDays(-1), 1)
	assert.Equal(t, StreakClockSkew, tr.Streak)

	assert.Equal(t, d, s.TodayDate, "today counter never moves backward")
	assert.Equal(t, 5, s.TodayWords(d), "clock corrected: today's words are intact")
	assert.Equal(t, 6, s.TotalWordsLearned)

	require.Len(t, s.DailyBuckets, 2)
	assert.Equal(t, Day("2026-04-09"), s.DailyBuckets[0].Date, "skewed day is inserted in date order")
	assert.Equal(t, 1, s.DailyBuckets[0].WordsLearned)
	assert.Equal(t, d, s.DailyBuckets[1].Date)
	assert.Equal(t, 5, s.DailyBuckets[1].WordsLearned)

	assert.False(t, s.Rollover(d.AddDays(-1)), "rollover ignores an earlier day")
	assert.Equal(t, 5, s.TodayWordsLearned)
}

func TestRollover(t *testing.T) {
	s := NewState()
	d := Day("2026-04-10")

	assert.False(t, s.Rollover(d), "fresh state has nothing to roll")

	s.RecordWordsLearned(catalog, d, 12)
	assert.True(t, s.GoalReached(d))
	assert.False(t, s.Rollover(d))

	assert.True(t, s.Rollover(d.AddDays(1)))
	assert.Equal(t, 0, s.TodayWordsLearned)
	assert.Equal(t, d.AddDays(1), s.TodayDate)
	assert.False(t, s.GoalReached(d.AddDays(1)))
}

func TestSetLastWordIndex(t *testing.T) {
	s := &State{}
	s.SetLastWordIndex("pack:spanish-basics", 42)
	assert.Equal(t, 42, s.LastWordIndex["pack:spanish-basics"])
}

func TestMailboxClear(t *testing.T) {
	s := NewState()
	assert.False(t, s.ClearLastUnlocked())

	s.RecordGamePlayed(catalog)
	id, ok := s.LastUnlocked()
	require.True(t, ok)
	assert.Equal(t, "games_1", id)

	assert.True(t, s.ClearLastUnlocked())
	_, ok = s.LastUnlocked()
	assert.False(t, ok)
	assert.True(t, s.IsUnlocked("games_1"), "clearing the mailbox keeps the unlock")
}

// Random operation sequences must keep counters and unlocks monotonic and
// the current streak within the longest.
func TestInvariantsUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewState()
	day := Day("2026-01-01")

	for step := 0; step < 2000; step++ {
		prev := s.Clone()

		// Mostly stay on the same day, sometimes skip ahead.
		switch r := rng.Intn(20); {
		case r == 0:
			day = day.AddDays(1 + rng.Intn(4))
		case r < 3:
			day = day.AddDays(1)
		}

		switch rng.Intn(9) {
		case 0:
			s.RecordWordsLearned(catalog, day, rng.Intn(15))
		case 1:
			s.RecordExerciseCompleted(catalog, day)
		case 2, 3:
			s.RecordCorrectAnswer(catalog, day)
		case 4:
			s.RecordIncorrectAnswer()
		case 5:
			s.AddTimeSpent(catalog, day, rng.Intn(20))
		case 6:
			s.RecordGamePlayed(catalog)
		case 7:
			s.RecordPerfectGame(catalog)
		case 8:
			s.UpdateStreak(catalog, day)
		}

		require.LessOrEqual(t, s.CurrentStreak, s.LongestStreak, "step %d", step)
		require.GreaterOrEqual(t, s.TotalWordsLearned, prev.TotalWordsLearned)
		require.GreaterOrEqual(t, s.TotalExercisesCompleted, prev.TotalExercisesCompleted)
		require.GreaterOrEqual(t, s.GamesPlayed, prev.GamesPlayed)
		require.GreaterOrEqual(t, s.PerfectGames, prev.PerfectGames)
		require.GreaterOrEqual(t, s.LongestStreak, prev.LongestStreak)
		require.Equal(t, prev.UnlockedAchievementIDs, s.UnlockedAchievementIDs[:len(prev.UnlockedAchievementIDs)],
			"unlocks are append-only")

		seen := map[Day]bool{}
		for _, b := range s.DailyBuckets {
			require.False(t, seen[b.Date], "duplicate bucket for %s", b.Date)
			seen[b.Date] = true
		}
	}
}
