package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/vocabstreak/internal/app"
)

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Open the interactive progress dashboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// stderr shares the terminal with the alt screen.
		logger = logger.WithOptions(zap.IncreaseLevel(zapcore.ErrorLevel))

		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		return app.Run(s.engine, logger)
	},
}
