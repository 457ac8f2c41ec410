package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vocabstreak/internal/ui/components"
	"github.com/abhisek/vocabstreak/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		e := s.engine
		st := e.Snapshot()
		today := e.Today()

		fmt.Println(theme.Title.Render("Progress"))
		fmt.Println(theme.Streak.Render(fmt.Sprintf("🔥 Streak: %d day(s)", st.CurrentStreak)) +
			theme.Hint.Render(fmt.Sprintf("  (longest %d)", st.LongestStreak)))
		fmt.Println(components.GoalBar(st.TodayWords(today), st.DailyGoal, 50).View())
		if st.GoalReached(today) {
			fmt.Println(theme.GoalMet.Render("Daily goal reached!"))
		}
		fmt.Println()

		fmt.Printf("%-22s %d\n", "Words learned", st.TotalWordsLearned)
		fmt.Printf("%-22s %d\n", "Exercises completed", st.TotalExercisesCompleted)
		fmt.Printf("%-22s %d\n", "Correct in a row", st.ConsecutiveCorrectAnswers)
		fmt.Printf("%-22s %d min\n", "Time spent", st.TotalTimeSpent())
		fmt.Printf("%-22s %d (%d perfect)\n", "Games played", st.GamesPlayed, st.PerfectGames)
		fmt.Printf("%-22s %d/%d\n", "Achievements", len(st.UnlockedAchievementIDs), e.Catalog().Len())
		return nil
	},
}
