package repository

import (
	"context"
	"encoding/json"

	"talent-align/internal/database"
	"talent-align/internal/domain/jobfit"
	"talent-align/internal/fixtures"

	pkgerrors "github.com/pkg/errors"
)

// SnapshotRepository serves the base job-fit snapshot and the per-organization
// overrides layered on top of it.
type SnapshotRepository interface {
	Base(ctx context.Context) (jobfit.Snapshot, error)
	// ForOrganization reports ok=false when orgID has no override.
	ForOrganization(ctx context.Context, orgID string) (jobfit.Snapshot, bool, error)
}

type FixtureSnapshotRepository struct {
	data fixtures.JobFit
}

func NewFixtureSnapshotRepository(j fixtures.JobFit) *FixtureSnapshotRepository {
	return &FixtureSnapshotRepository{data: j}
}

func (r *FixtureSnapshotRepository) Base(context.Context) (jobfit.Snapshot, error) {
	return r.data.Base, nil
}

func (r *FixtureSnapshotRepository) ForOrganization(_ context.Context, orgID string) (jobfit.Snapshot, bool, error) {
	s, ok := r.data.ByOrganization[orgID]
	return s, ok, nil
}

type PostgresSnapshotRepository struct {
	db database.DB
}

func NewPostgresSnapshotRepository(db database.DB) *PostgresSnapshotRepository {
	return &PostgresSnapshotRepository{db: db}
}

func (r *PostgresSnapshotRepository) Base(ctx context.Context) (jobfit.Snapshot, error) {
	s, ok, err := r.load(ctx, "")
	if err != nil {
		return jobfit.Snapshot{}, err
	}
	if !ok {
		return jobfit.Snapshot{}, nil
	}
	return s, nil
}

func (r *PostgresSnapshotRepository) ForOrganization(ctx context.Context, orgID string) (jobfit.Snapshot, bool, error) {
	if orgID == "" {
		return jobfit.Snapshot{}, false, nil
	}
	return r.load(ctx, orgID)
}

func (r *PostgresSnapshotRepository) load(ctx context.Context, orgID string) (jobfit.Snapshot, bool, error) {
	var payload string
	err := r.db.QueryRow(ctx, `SELECT payload::text FROM job_fit_snapshots WHERE organization_id = $1`, orgID).Scan(&payload)
	if err != nil {
		if isNoRows(err) {
			return jobfit.Snapshot{}, false, nil
		}
		return jobfit.Snapshot{}, false, pkgerrors.Wrapf(err, "load snapshot %q", orgID)
	}

	var s jobfit.Snapshot
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return jobfit.Snapshot{}, false, pkgerrors.Wrapf(err, "decode snapshot %q", orgID)
	}
	return s, true, nil
}
