package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vocabstreak/internal/rollover"
	"github.com/abhisek/vocabstreak/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the progress API over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		loc, err := cfg.Location()
		if err != nil {
			return err
		}
		sched := rollover.New(s.engine, loc, logger)
		if err := sched.Start(); err != nil {
			return fmt.Errorf("start rollover: %w", err)
		}
		defer sched.Stop()

		srv := server.New(s.engine, server.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			Logger:         logger,
		})
		logger.Info("serving progress api",
			zap.String("addr", cfg.Server.Addr),
			zap.String("driver", cfg.Storage.Driver),
			zap.Time("next_rollover", sched.NextRun()))

		return srv.ListenAndServe(ctx, cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
}
