package repository

import (
	"context"

	"talent-align/internal/database"
	"talent-align/internal/domain/directory"
	"talent-align/internal/domain/organization"
	"talent-align/internal/fixtures"

	pkgerrors "github.com/pkg/errors"
)

// CatalogRepository loads the reference data the hierarchy and directory are
// built from. It is read once at bootstrap.
type CatalogRepository interface {
	Organizations(ctx context.Context) ([]organization.Organization, error)
	Positions(ctx context.Context) ([]directory.Position, error)
	Employees(ctx context.Context) ([]directory.Employee, error)
}

type FixtureCatalogRepository struct {
	catalog fixtures.Catalog
}

func NewFixtureCatalogRepository(c fixtures.Catalog) *FixtureCatalogRepository {
	return &FixtureCatalogRepository{catalog: c}
}

func (r *FixtureCatalogRepository) Organizations(context.Context) ([]organization.Organization, error) {
	return append([]organization.Organization(nil), r.catalog.Organizations...), nil
}

func (r *FixtureCatalogRepository) Positions(context.Context) ([]directory.Position, error) {
	return append([]directory.Position(nil), r.catalog.Positions...), nil
}

func (r *FixtureCatalogRepository) Employees(context.Context) ([]directory.Employee, error) {
	return append([]directory.Employee(nil), r.catalog.Employees...), nil
}

type PostgresCatalogRepository struct {
	db database.DB
}

func NewPostgresCatalogRepository(db database.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) Organizations(ctx context.Context) ([]organization.Organization, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, parent_id, level, roi, health_score, job_fit
		 FROM organizations
		 ORDER BY load_order ASC, id ASC`,
	)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list organizations")
	}
	defer rows.Close()

	out := make([]organization.Organization, 0)
	for rows.Next() {
		var (
			o     organization.Organization
			level string
		)
		if err := rows.Scan(&o.ID, &o.Name, &o.ParentID, &level, &o.Metrics.ROI, &o.Metrics.HealthScore, &o.Metrics.JobFit); err != nil {
			return nil, pkgerrors.Wrap(err, "scan organization")
		}
		o.Level = organization.Level(level)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "list organizations")
	}
	return out, nil
}

func (r *PostgresCatalogRepository) Positions(ctx context.Context) ([]directory.Position, error) {
	rows, err := r.db.Query(ctx, `SELECT id, organization_id, required_skills FROM positions ORDER BY id ASC`)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list positions")
	}
	defer rows.Close()

	out := make([]directory.Position, 0)
	for rows.Next() {
		var p directory.Position
		if err := rows.Scan(&p.ID, &p.OrganizationID, &p.RequiredSkills); err != nil {
			return nil, pkgerrors.Wrap(err, "scan position")
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "list positions")
	}
	return out, nil
}

func (r *PostgresCatalogRepository) Employees(ctx context.Context) ([]directory.Employee, error) {
	rows, err := r.db.Query(ctx, `SELECT id, organization_id, position_id, risk_level FROM employees ORDER BY id ASC`)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list employees")
	}
	defer rows.Close()

	out := make([]directory.Employee, 0)
	for rows.Next() {
		var (
			e    directory.Employee
			risk string
		)
		if err := rows.Scan(&e.ID, &e.OrganizationID, &e.PositionID, &risk); err != nil {
			return nil, pkgerrors.Wrap(err, "scan employee")
		}
		e.RiskLevel = directory.RiskLevel(risk)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "list employees")
	}
	return out, nil
}
