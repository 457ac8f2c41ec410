package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vocabstreak/internal/config"
	"github.com/abhisek/vocabstreak/internal/logging"
	"github.com/abhisek/vocabstreak/internal/store"
)

var (
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "vocabstreak",
	Short: "Track vocabulary streaks and achievements",
	Long: `vocabstreak records vocabulary study activity, keeps the day streak,
aggregates per-day history and unlocks achievements.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if p, _ := cmd.Flags().GetString("db"); p != "" {
			c.Storage.SQLitePath = p
		}
		cfg = c

		verbose, _ := cmd.Flags().GetBool("verbose")
		l, err := logging.New(logging.Options{Level: c.Log.Level, Format: c.Log.Format, Verbose: verbose})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ./config.yaml or the user config dir)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VOCABSTREAK_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(exerciseCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(timeCmd)
	rootCmd.AddCommand(gameCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(wordIndexCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(versionCmd)
}

// storeConfig returns the repository settings. An explicit SQLite path
// (--db or config) gets its directory created; otherwise store.Open falls
// back to VOCABSTREAK_DB and then the XDG data dir.
func storeConfig() (store.Config, error) {
	sc := cfg.StoreConfig()
	if sc.Driver == store.DriverSQLite && sc.SQLitePath != "" {
		if err := store.EnsureDir(sc.SQLitePath); err != nil {
			return sc, fmt.Errorf("create database dir: %w", err)
		}
	}
	return sc, nil
}
