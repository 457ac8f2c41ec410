package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vocabstreak/internal/progress"
	"github.com/abhisek/vocabstreak/internal/ui/theme"
)

// runEvent applies one engine operation, prints a summary, shows any
// unlocked achievement and flushes the save.
func runEvent(cmd *cobra.Command, op func(e *progress.Engine) progress.Transition) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	t := op(s.engine)
	printTransition(s.engine, t)

	if _, err := s.watcher.Poll(); err != nil {
		logger.Sugar().Warnf("could not show achievement: %v", err)
	}
	return nil
}

func printTransition(e *progress.Engine, t progress.Transition) {
	if t.Clamped {
		fmt.Println(theme.Hint.Render("negative amount ignored"))
	}
	switch t.Streak {
	case progress.StreakStarted, progress.StreakContinued, progress.StreakReset:
		fmt.Println(theme.Streak.Render(fmt.Sprintf("🔥 %d day streak", e.CurrentStreak())))
	case progress.StreakClockSkew:
		fmt.Println(theme.Hint.Render("system clock is behind your last study day; streak unchanged"))
	}
	if len(t.Unlocked) > 1 {
		ids := make([]string, 0, len(t.Unlocked))
		for _, d := range t.Unlocked {
			ids = append(ids, d.Icon+" "+d.ID)
		}
		fmt.Println(theme.Hint.Render("unlocked: " + strings.Join(ids, ", ")))
	}
}

// countArg parses an optional non-negative count argument, defaulting to 1.
func countArg(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", args[0], err)
	}
	if n < 0 {
		return 0, fmt.Errorf("count must not be negative, got %d", n)
	}
	return n, nil
}

var learnCmd = &cobra.Command{
	Use:   "learn [count]",
	Short: "Record newly learned words (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := countArg(args)
		if err != nil {
			return err
		}
		return runEvent(cmd, func(e *progress.Engine) progress.Transition {
			t := e.RecordWordsLearned(n)
			fmt.Printf("Learned %d word(s). Today: %d/%d\n", n, e.TodayWordsLearned(), e.DailyGoal())
			return t
		})
	},
}

var reviewCmd = &cobra.Command{
	Use:   "review [count]",
	Short: "Record reviewed words (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := countArg(args)
		if err != nil {
			return err
		}
		return runEvent(cmd, func(e *progress.Engine) progress.Transition {
			fmt.Printf("Reviewed %d word(s).\n", n)
			return e.RecordWordsReviewed(n)
		})
	},
}

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Record a completed exercise",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEvent(cmd, func(e *progress.Engine) progress.Transition {
			fmt.Println("Exercise completed.")
			return e.RecordExerciseCompleted()
		})
	},
}

var answerCmd = &cobra.Command{
	Use:       "answer correct|incorrect",
	Short:     "Record an answer",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"correct", "incorrect"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEvent(cmd, func(e *progress.Engine) progress.Transition {
			if args[0] == "correct" {
				return e.RecordCorrectAnswer()
			}
			return e.RecordIncorrectAnswer()
		})
	},
}

var timeCmd = &cobra.Command{
	Use:   "time <minutes>",
	Short: "Record study time in minutes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := countArg(args)
		if err != nil {
			return err
		}
		return runEvent(cmd, func(e *progress.Engine) progress.Transition {
			fmt.Printf("Added %d minute(s).\n", n)
			return e.AddTimeSpent(n)
		})
	},
}

var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Record a finished game",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		perfect, _ := cmd.Flags().GetBool("perfect")
		return runEvent(cmd, func(e *progress.Engine) progress.Transition {
			t := e.RecordGamePlayed()
			if perfect {
				p := e.RecordPerfectGame()
				t.Unlocked = append(t.Unlocked, p.Unlocked...)
			}
			fmt.Println("Game recorded.")
			return t
		})
	},
}

var goalCmd = &cobra.Command{
	Use:   "goal <words>",
	Short: "Set the daily words goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := countArg(args)
		if err != nil {
			return err
		}
		return runEvent(cmd, func(e *progress.Engine) progress.Transition {
			t := e.SetDailyGoal(n)
			fmt.Printf("Daily goal set to %d words.\n", n)
			return t
		})
	},
}

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Count today towards the streak without other activity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEvent(cmd, func(e *progress.Engine) progress.Transition {
			t := e.UpdateStreak()
			if t.Streak == progress.StreakUnchanged {
				fmt.Printf("Already counted today. Streak: %d\n", e.CurrentStreak())
			}
			return t
		})
	},
}

var wordIndexCmd = &cobra.Command{
	Use:   "word-index <context> [index]",
	Short: "Show or set the last viewed word position for a context",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()
			i, ok := s.engine.LastWordIndex(args[0])
			if !ok {
				fmt.Printf("No position stored for %q.\n", args[0])
				return nil
			}
			fmt.Println(i)
			return nil
		}

		n, err := countArg(args[1:])
		if err != nil {
			return err
		}
		return runEvent(cmd, func(e *progress.Engine) progress.Transition {
			fmt.Printf("%s: %d\n", args[0], n)
			return e.SetLastWordIndex(args[0], n)
		})
	},
}

func init() {
	gameCmd.Flags().Bool("perfect", false, "The game was finished without mistakes")
}
