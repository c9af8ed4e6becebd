package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbpostgres "talent-align/internal/database/postgres"
	"talent-align/internal/database/seeder"
	"talent-align/internal/fixtures"
	"talent-align/internal/infrastructure/cache"
	"talent-align/internal/usecase"
)

func newSeedCmd(g *globals) *cobra.Command {
	var skipCache bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the bundled reference data and job-fit snapshots into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := fixtures.LoadCatalog()
			if err != nil {
				return err
			}
			jobFit, err := fixtures.LoadJobFit()
			if err != nil {
				return err
			}

			db, err := dbpostgres.Connect(cmd.Context(), g.cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			r := seeder.Runner{Seeders: seeder.Defaults(catalog, jobFit, time.Now()), Log: g.log}
			if err := r.Run(cmd.Context(), db); err != nil {
				return err
			}

			if skipCache {
				return nil
			}
			rc := cache.NewRedis(g.cfg.Redis, g.log)
			defer rc.Close()
			if !rc.Enabled() {
				return nil
			}
			if err := rc.DeleteByPattern(cmd.Context(), usecase.JobFitPayloadCachePattern()); err != nil {
				g.log.Warn("payload cache invalidation failed", zap.Error(err))
				return nil
			}
			g.log.Info("payload cache invalidated")
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipCache, "skip-cache", false, "Do not invalidate cached job-fit payloads")
	return cmd
}
