package achievements

// Category identifies which learner metric an achievement is measured against.
type Category string

const (
	CategoryStreak    Category = "streak"
	CategoryWords     Category = "words"
	CategoryExercises Category = "exercises"
	CategoryAccuracy  Category = "accuracy"
	CategoryTime      Category = "time"
	CategoryGames     Category = "games"
	CategoryPerfect   Category = "perfect"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryStreak,
		CategoryWords,
		CategoryExercises,
		CategoryAccuracy,
		CategoryTime,
		CategoryGames,
		CategoryPerfect,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryStreak:
		return "Streak"
	case CategoryWords:
		return "Words"
	case CategoryExercises:
		return "Exercises"
	case CategoryAccuracy:
		return "Accuracy"
	case CategoryTime:
		return "Time"
	case CategoryGames:
		return "Games"
	case CategoryPerfect:
		return "Perfect Games"
	default:
		return string(c)
	}
}

// Unit returns the unit the category's requirement is counted in.
func (c Category) Unit() string {
	switch c {
	case CategoryStreak:
		return "days"
	case CategoryWords:
		return "words"
	case CategoryExercises:
		return "exercises"
	case CategoryAccuracy:
		return "in a row"
	case CategoryTime:
		return "minutes"
	case CategoryGames:
		return "games"
	case CategoryPerfect:
		return "perfect games"
	default:
		return ""
	}
}
