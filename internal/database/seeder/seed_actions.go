package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"talent-align/internal/database"
	"talent-align/internal/fixtures"
)

type ActionsSeeder struct {
	Catalog fixtures.Catalog
	Now     time.Time
}

func (ActionsSeeder) Name() string { return "actions" }

func (s ActionsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "actions", "seq", "id", "target_object_type", "target_object_id", "action_type", "status", "title", "expected_impact", "effort", "execution_method", "assignee", "due_date", "progress"); err != nil {
		return err
	}

	now := s.Now
	if now.IsZero() {
		now = time.Now()
	}
	acts := s.Catalog.SeededActions(now)

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		// The catalog lists newest first; insert oldest first so seq ordering agrees.
		for i := len(acts) - 1; i >= 0; i-- {
			a := acts[i]
			_, err := tx.Exec(
				ctx,
				`INSERT INTO actions (id, target_object_type, target_object_id, action_type, status, title, expected_impact, effort, execution_method, assignee, due_date, progress)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::date, $12) ON CONFLICT (id) DO NOTHING`,
				a.ID,
				string(a.TargetObjectType),
				a.TargetObjectID,
				string(a.ActionType),
				string(a.Status),
				a.Title,
				a.ExpectedImpact,
				a.Effort,
				a.ExecutionMethod,
				a.Assignee,
				a.DueDate,
				a.Progress,
			)
			if err != nil {
				return fmt.Errorf("insert action %s: %w", a.ID, err)
			}
		}
		return nil
	})
}

type SnapshotsSeeder struct {
	JobFit fixtures.JobFit
}

func (SnapshotsSeeder) Name() string { return "job_fit_snapshots" }

func (s SnapshotsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "job_fit_snapshots", "organization_id", "payload"); err != nil {
		return err
	}

	base, err := json.Marshal(s.JobFit.Base)
	if err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx, insertSnapshotSQL, "", string(base)); err != nil {
			return fmt.Errorf("insert base snapshot: %w", err)
		}
		for orgID, snap := range s.JobFit.ByOrganization {
			b, err := json.Marshal(snap)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, insertSnapshotSQL, orgID, string(b)); err != nil {
				return fmt.Errorf("insert snapshot %s: %w", orgID, err)
			}
		}
		return nil
	})
}

const insertSnapshotSQL = `INSERT INTO job_fit_snapshots (organization_id, payload) VALUES ($1, $2::json) ON CONFLICT (organization_id) DO NOTHING`
