package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vocabstreak/internal/achievements"
	"github.com/abhisek/vocabstreak/internal/ui/components"
	"github.com/abhisek/vocabstreak/internal/ui/theme"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List all achievements, grouped by category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		onlyUnlocked, _ := cmd.Flags().GetBool("unlocked")

		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		st := s.engine.Snapshot()
		c := s.engine.Catalog()
		for _, cat := range achievements.AllCategories() {
			defs := c.ForCategory(cat)
			if len(defs) == 0 {
				continue
			}
			fmt.Println(theme.Heading.Render(cat.DisplayName()))
			value := st.Metric(cat)
			for _, d := range defs {
				unlocked := st.IsUnlocked(d.ID)
				if onlyUnlocked && !unlocked {
					continue
				}
				disp, _ := achievements.Resolve(c, achievements.English, d.ID)
				fmt.Println("  " + components.AchievementRow(disp, unlocked, value))
			}
			fmt.Println()
		}

		fmt.Printf("%d of %d unlocked\n", len(st.UnlockedAchievementIDs), c.Len())
		return nil
	},
}

func init() {
	achievementsCmd.Flags().Bool("unlocked", false, "Only show unlocked achievements")
}
