package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vocabstreak/internal/export"
	"github.com/abhisek/vocabstreak/internal/progress"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show per-day activity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		buckets := s.engine.DailyBuckets()
		if len(buckets) == 0 {
			fmt.Println("No activity recorded yet.")
			return nil
		}
		if days > 0 && len(buckets) > days {
			buckets = buckets[len(buckets)-days:]
		}

		// Header.
		fmt.Printf("%-10s  %7s  %8s  %9s  %7s  %7s\n",
			"Date", "Learned", "Reviewed", "Exercises", "Correct", "Minutes")
		fmt.Println(strings.Repeat("─", 60))

		for _, b := range buckets {
			fmt.Printf("%-10s  %7d  %8d  %9d  %7d  %7d\n",
				b.Date, b.WordsLearned, b.WordsReviewed, b.ExercisesCompleted, b.CorrectAnswers, b.TimeSpentMinutes)
		}

		fmt.Printf("\n%d day(s)\n", len(buckets))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export per-day activity as CSV or XLSX",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		formatFlag, _ := cmd.Flags().GetString("format")

		format := export.FormatForPath(out)
		if formatFlag != "" {
			f, err := export.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			format = f
		}

		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		return writeExport(out, format, s.engine.DailyBuckets())
	},
}

func writeExport(path string, format export.Format, buckets []progress.DailyBucket) error {
	if path == "" || path == "-" {
		return export.Write(os.Stdout, format, buckets)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.Write(f, format, buckets); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d day(s) to %s\n", len(buckets), path)
	return nil
}

func init() {
	historyCmd.Flags().Int("days", 0, "Only show the last N days (0 = all)")

	exportCmd.Flags().String("out", "", "Output file (default stdout)")
	exportCmd.Flags().String("format", "", "csv or xlsx (default from --out extension, else csv)")
}
