package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"talent-align/internal/config"
	"talent-align/internal/logger"
)

type globals struct {
	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:          "talentctl",
		Short:        "Operational tools for the talent alignment service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			zl, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
			if err != nil {
				return err
			}
			g.cfg = cfg
			g.log = zl
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if g.log != nil {
				_ = g.log.Sync()
			}
		},
	}

	cmd.AddCommand(newMigrateCmd(g))
	cmd.AddCommand(newSeedCmd(g))
	cmd.AddCommand(newEvaluateCmd(g))
	return cmd
}
