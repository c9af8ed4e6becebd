package main

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"talent-align/internal/database/migration"
	dbpostgres "talent-align/internal/database/postgres"
	"talent-align/migrations"
)

type sqlDBProvider interface {
	SQLDB() *sql.DB
}

func newMigrateCmd(g *globals) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations to Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := dbpostgres.Connect(cmd.Context(), g.cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			p, ok := db.(sqlDBProvider)
			if !ok || p.SQLDB() == nil {
				return fmt.Errorf("database handle does not expose database/sql")
			}

			start := time.Now()
			r := migration.Runner{Dir: dir, Fallback: migrations.FS, Log: g.log}
			n, err := r.Run(cmd.Context(), p.SQLDB())
			if err != nil {
				return err
			}
			g.log.Info("migrations complete", zap.Int("applied", n), zap.Duration("took", time.Since(start)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Migrations directory (defaults to MIGRATIONS_DIR, then the embedded set)")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		if dir == "" {
			dir = g.cfg.Store.MigrationsDir
		}
	}
	return cmd
}
