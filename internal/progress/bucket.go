package progress

import "slices"

// DailyBucket aggregates one calendar day of activity. Counters only grow.
type DailyBucket struct {
	Date               Day `json:"date"`
	WordsLearned       int `json:"wordsLearned"`
	WordsReviewed      int `json:"wordsReviewed"`
	ExercisesCompleted int `json:"exercisesCompleted"`
	CorrectAnswers     int `json:"correctAnswers"`
	TimeSpentMinutes   int `json:"timeSpentMinutes"`
}

// BucketFor returns the bucket for today, creating an empty one if there is
// none yet. Buckets stay sorted oldest first: a day earlier than the newest
// bucket (clock moved backward) is inserted at its date position. The
// pointer stays valid until the next insert, so a transition must fetch it
// once and apply all of its deltas through it.
func (s *State) BucketFor(today Day) *DailyBucket {
	// Today's bucket is almost always the last one.
	i := len(s.DailyBuckets)
	for i > 0 && s.DailyBuckets[i-1].Date >= today {
		if s.DailyBuckets[i-1].Date == today {
			return &s.DailyBuckets[i-1]
		}
		i--
	}
	s.DailyBuckets = slices.Insert(s.DailyBuckets, i, DailyBucket{Date: today})
	return &s.DailyBuckets[i]
}

// Bucket returns a copy of the bucket for day, if one exists.
func (s *State) Bucket(day Day) (DailyBucket, bool) {
	for i := len(s.DailyBuckets) - 1; i >= 0; i-- {
		if s.DailyBuckets[i].Date == day {
			return s.DailyBuckets[i], true
		}
	}
	return DailyBucket{}, false
}

// TotalTimeSpent sums TimeSpentMinutes over every bucket.
func (s *State) TotalTimeSpent() int {
	total := 0
	for _, b := range s.DailyBuckets {
		total += b.TimeSpentMinutes
	}
	return total
}
