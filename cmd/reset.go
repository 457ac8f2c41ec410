package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vocabstreak/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all progress for the configured learner",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Printf("This deletes all progress stored under %q. Continue? [y/N] ", cfg.Storage.Key)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			answer := strings.ToLower(strings.TrimSpace(line))
			if answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		sc, err := storeConfig()
		if err != nil {
			return err
		}
		repo, err := store.Open(cmd.Context(), sc)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer repo.Close()

		if err := repo.Delete(cmd.Context(), cfg.Storage.Key); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
