package progress

import "github.com/abhisek/vocabstreak/internal/achievements"

// CheckAchievements unlocks every achievement of category whose requirement
// is at most value and that is not unlocked yet, scanning in ascending
// requirement order. Each unlock overwrites the mailbox, so when one call
// crosses several thresholds all of them are unlocked but only the highest
// is left in LastUnlockedAchievementID.
func (s *State) CheckAchievements(c *achievements.Catalog, category achievements.Category, value int) []achievements.Definition {
	crossed := achievements.Scan(c.ForCategory(category), s.IsUnlocked, value)
	for _, d := range crossed {
		s.UnlockedAchievementIDs = append(s.UnlockedAchievementIDs, d.ID)
		id := d.ID
		s.LastUnlockedAchievementID = &id
	}
	return crossed
}

// Metric returns the value the category's requirements are compared with.
func (s *State) Metric(category achievements.Category) int {
	switch category {
	case achievements.CategoryStreak:
		return s.CurrentStreak
	case achievements.CategoryWords:
		return s.TotalWordsLearned
	case achievements.CategoryExercises:
		return s.TotalExercisesCompleted
	case achievements.CategoryAccuracy:
		return s.ConsecutiveCorrectAnswers
	case achievements.CategoryTime:
		return s.TotalTimeSpent()
	case achievements.CategoryGames:
		return s.GamesPlayed
	case achievements.CategoryPerfect:
		return s.PerfectGames
	default:
		return 0
	}
}
