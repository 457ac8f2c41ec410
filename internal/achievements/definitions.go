package achievements

// definitions is the compiled-in catalog. IDs are persisted in learners'
// unlock sets and used as keys for localized text: never rename or reuse one.
var definitions = []Definition{
	// Streak (consecutive active days)
	{ID: "streak_1", Icon: "🔥", Requirement: 1, Category: CategoryStreak},
	{ID: "streak_3", Icon: "🔥", Requirement: 3, Category: CategoryStreak},
	{ID: "streak_7", Icon: "📅", Requirement: 7, Category: CategoryStreak},
	{ID: "streak_14", Icon: "📅", Requirement: 14, Category: CategoryStreak},
	{ID: "streak_30", Icon: "🗓️", Requirement: 30, Category: CategoryStreak},
	{ID: "streak_60", Icon: "⚡", Requirement: 60, Category: CategoryStreak},
	{ID: "streak_100", Icon: "💯", Requirement: 100, Category: CategoryStreak},
	{ID: "streak_365", Icon: "👑", Requirement: 365, Category: CategoryStreak},

	// Words learned (cumulative)
	{ID: "words_1", Icon: "🌱", Requirement: 1, Category: CategoryWords},
	{ID: "words_10", Icon: "📖", Requirement: 10, Category: CategoryWords},
	{ID: "words_50", Icon: "📚", Requirement: 50, Category: CategoryWords},
	{ID: "words_100", Icon: "🎓", Requirement: 100, Category: CategoryWords},
	{ID: "words_250", Icon: "🧠", Requirement: 250, Category: CategoryWords},
	{ID: "words_500", Icon: "🏛️", Requirement: 500, Category: CategoryWords},
	{ID: "words_1000", Icon: "🌟", Requirement: 1000, Category: CategoryWords},
	{ID: "words_2500", Icon: "🚀", Requirement: 2500, Category: CategoryWords},
	{ID: "words_5000", Icon: "🏆", Requirement: 5000, Category: CategoryWords},

	// Exercises completed (cumulative)
	{ID: "exercises_1", Icon: "✏️", Requirement: 1, Category: CategoryExercises},
	{ID: "exercises_10", Icon: "📝", Requirement: 10, Category: CategoryExercises},
	{ID: "exercises_50", Icon: "🏋️", Requirement: 50, Category: CategoryExercises},
	{ID: "exercises_100", Icon: "💪", Requirement: 100, Category: CategoryExercises},
	{ID: "exercises_500", Icon: "🥇", Requirement: 500, Category: CategoryExercises},
	{ID: "exercises_1000", Icon: "🏅", Requirement: 1000, Category: CategoryExercises},

	// Accuracy (consecutive correct answers)
	{ID: "accuracy_5", Icon: "🎯", Requirement: 5, Category: CategoryAccuracy},
	{ID: "accuracy_10", Icon: "🎯", Requirement: 10, Category: CategoryAccuracy},
	{ID: "accuracy_25", Icon: "🏹", Requirement: 25, Category: CategoryAccuracy},
	{ID: "accuracy_50", Icon: "🔬", Requirement: 50, Category: CategoryAccuracy},
	{ID: "accuracy_100", Icon: "💎", Requirement: 100, Category: CategoryAccuracy},

	// Time spent (minutes, all days)
	{ID: "time_10", Icon: "⏱️", Requirement: 10, Category: CategoryTime},
	{ID: "time_30", Icon: "⏱️", Requirement: 30, Category: CategoryTime},
	{ID: "time_60", Icon: "⏰", Requirement: 60, Category: CategoryTime},
	{ID: "time_300", Icon: "⏳", Requirement: 300, Category: CategoryTime},
	{ID: "time_600", Icon: "⌛", Requirement: 600, Category: CategoryTime},
	{ID: "time_1200", Icon: "🕰️", Requirement: 1200, Category: CategoryTime},
	{ID: "time_3000", Icon: "🌌", Requirement: 3000, Category: CategoryTime},

	// Games played (cumulative)
	{ID: "games_1", Icon: "🎮", Requirement: 1, Category: CategoryGames},
	{ID: "games_10", Icon: "🕹️", Requirement: 10, Category: CategoryGames},
	{ID: "games_50", Icon: "🎲", Requirement: 50, Category: CategoryGames},
	{ID: "games_100", Icon: "🃏", Requirement: 100, Category: CategoryGames},

	// Perfect games (cumulative)
	{ID: "perfect_1", Icon: "✨", Requirement: 1, Category: CategoryPerfect},
	{ID: "perfect_5", Icon: "⭐", Requirement: 5, Category: CategoryPerfect},
	{ID: "perfect_10", Icon: "🌠", Requirement: 10, Category: CategoryPerfect},
	{ID: "perfect_25", Icon: "🏵️", Requirement: 25, Category: CategoryPerfect},
	{ID: "perfect_50", Icon: "🏆", Requirement: 50, Category: CategoryPerfect},
}
