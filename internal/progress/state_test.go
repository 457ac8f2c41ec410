package progress

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/vocabstreak/internal/achievements"
)

func TestNewState(t *testing.T) {
	s := NewState()
	assert.Equal(t, DefaultDailyGoal, s.DailyGoal)
	assert.NotNil(t, s.DailyBuckets)
	assert.NotNil(t, s.UnlockedAchievementIDs)
	assert.NotNil(t, s.LastWordIndex)
	_, ok := s.LastUnlocked()
	assert.False(t, ok)
}

func TestCloneIsDeep(t *testing.T) {
	s := NewState()
	d := Day("2026-05-02")
	s.RecordWordsLearned(catalog, d, 3)
	s.SetLastWordIndex("default", 7)

	c := s.Clone()
	if diff := cmp.Diff(s, c); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	c.DailyBuckets[0].WordsLearned = 99
	c.UnlockedAchievementIDs[0] = "changed"
	*c.LastUnlockedAchievementID = "changed"
	c.LastWordIndex["default"] = 0

	assert.Equal(t, 3, s.DailyBuckets[0].WordsLearned)
	assert.Equal(t, "streak_1", s.UnlockedAchievementIDs[0])
	assert.Equal(t, "words_1", mailbox(s))
	assert.Equal(t, 7, s.LastWordIndex["default"])
}

func TestCloneFillsNilCollections(t *testing.T) {
	c := (&State{}).Clone()
	assert.NotNil(t, c.DailyBuckets)
	assert.NotNil(t, c.UnlockedAchievementIDs)
	assert.NotNil(t, c.LastWordIndex)
}

func TestNormalize(t *testing.T) {
	s := &State{
		CurrentStreak:          6,
		LongestStreak:          2,
		UnlockedAchievementIDs: []string{"words_1", "streak_1", "words_1"},
	}

	s.Normalize()

	assert.Equal(t, 6, s.LongestStreak)
	assert.Equal(t, []string{"words_1", "streak_1"}, s.UnlockedAchievementIDs)
	assert.NotNil(t, s.DailyBuckets)
	assert.NotNil(t, s.LastWordIndex)
}

func TestGoalReached(t *testing.T) {
	d := Day("2026-05-02")
	s := NewState()
	s.TodayDate = d
	s.TodayWordsLearned = 9
	assert.False(t, s.GoalReached(d))

	s.TodayWordsLearned = 10
	assert.True(t, s.GoalReached(d))
	assert.False(t, s.GoalReached(d.AddDays(1)))

	s.DailyGoal = 0
	assert.False(t, s.GoalReached(d), "a zero goal is never reached")
}

func TestMetric(t *testing.T) {
	s := NewState()
	d := Day("2026-05-02")
	s.RecordWordsLearned(catalog, d, 4)
	s.RecordExerciseCompleted(catalog, d)
	s.RecordCorrectAnswer(catalog, d)
	s.AddTimeSpent(catalog, d, 9)
	s.RecordGamePlayed(catalog)
	s.RecordPerfectGame(catalog)

	want := map[achievements.Category]int{
		achievements.CategoryStreak:    1,
		achievements.CategoryWords:     4,
		achievements.CategoryExercises: 1,
		achievements.CategoryAccuracy:  1,
		achievements.CategoryTime:      9,
		achievements.CategoryGames:     1,
		achievements.CategoryPerfect:   1,
	}
	for _, c := range achievements.AllCategories() {
		assert.Equal(t, want[c], s.Metric(c), c)
	}
}
