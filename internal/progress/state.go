// Package progress owns the learner's progress state: day streaks, per-day
// activity buckets, cumulative counters and unlocked achievements.
//
// State transitions are plain methods on *State that take the calendar day
// explicitly and never touch storage. Engine wraps a State with a clock, a
// mutex and observers; persistence is one such observer.
package progress

// DefaultDailyGoal is the words-per-day goal of a fresh state.
const DefaultDailyGoal = 10

// State is the persisted aggregate root. The JSON field names are the
// document format and must stay stable.
type State struct {
	CurrentStreak           int `json:"currentStreak"`
	LongestStreak           int `json:"longestStreak"`
	TotalWordsLearned       int `json:"totalWordsLearned"`
	TotalExercisesCompleted int `json:"totalExercisesCompleted"`
	GamesPlayed             int `json:"gamesPlayed"`
	PerfectGames            int `json:"perfectGames"`

	DailyBuckets           []DailyBucket `json:"dailyBuckets"`
	UnlockedAchievementIDs []string      `json:"unlockedAchievementIds"`

	// LastActiveDate is the day the streak was last advanced.
	LastActiveDate Day `json:"lastActiveDate"`

	DailyGoal         int `json:"dailyGoal"`
	TodayWordsLearned int `json:"todayWordsLearned"`
	// TodayDate is the day TodayWordsLearned refers to.
	TodayDate Day `json:"todayDate"`

	ConsecutiveCorrectAnswers int `json:"consecutiveCorrectAnswers"`

	// LastUnlockedAchievementID is the single-slot "just unlocked" mailbox.
	LastUnlockedAchievementID *string `json:"lastUnlockedAchievementId"`

	// LastWordIndex maps a learning context (e.g. a word pack) to the last
	// viewed word position.
	LastWordIndex map[string]int `json:"lastWordIndex"`
}

// NewState returns the first-run state.
func NewState() *State {
	return &State{
		DailyGoal:              DefaultDailyGoal,
		DailyBuckets:           []DailyBucket{},
		UnlockedAchievementIDs: []string{},
		LastWordIndex:          map[string]int{},
	}
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := *s
	c.DailyBuckets = append([]DailyBucket(nil), s.DailyBuckets...)
	c.UnlockedAchievementIDs = append([]string(nil), s.UnlockedAchievementIDs...)
	if c.DailyBuckets == nil {
		c.DailyBuckets = []DailyBucket{}
	}
	if c.UnlockedAchievementIDs == nil {
		c.UnlockedAchievementIDs = []string{}
	}
	if s.LastUnlockedAchievementID != nil {
		id := *s.LastUnlockedAchievementID
		c.LastUnlockedAchievementID = &id
	}
	c.LastWordIndex = make(map[string]int, len(s.LastWordIndex))
	for k, v := range s.LastWordIndex {
		c.LastWordIndex[k] = v
	}
	return &c
}

// Normalize repairs what a decoded document may lack: nil collections,
// duplicate unlock ids and a longest streak below the current one.
func (s *State) Normalize() {
	if s.DailyBuckets == nil {
		s.DailyBuckets = []DailyBucket{}
	}
	if s.LastWordIndex == nil {
		s.LastWordIndex = map[string]int{}
	}

	seen := make(map[string]bool, len(s.UnlockedAchievementIDs))
	ids := make([]string, 0, len(s.UnlockedAchievementIDs))
	for _, id := range s.UnlockedAchievementIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	s.UnlockedAchievementIDs = ids

	if s.LongestStreak < s.CurrentStreak {
		s.LongestStreak = s.CurrentStreak
	}
}

// IsUnlocked reports whether the achievement id has been unlocked.
func (s *State) IsUnlocked(id string) bool {
	for _, u := range s.UnlockedAchievementIDs {
		if u == id {
			return true
		}
	}
	return false
}

// TodayWords returns the words learned on today, or 0 if the stored counter
// belongs to an earlier day.
func (s *State) TodayWords(today Day) int {
	if s.TodayDate != today {
		return 0
	}
	return s.TodayWordsLearned
}

// GoalReached reports whether today's words meet the daily goal.
func (s *State) GoalReached(today Day) bool {
	return s.DailyGoal > 0 && s.TodayWords(today) >= s.DailyGoal
}
