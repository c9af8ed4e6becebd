package seeder

import (
	"context"
	"fmt"

	"talent-align/internal/database"
	"talent-align/internal/domain/organization"
	"talent-align/internal/fixtures"
)

type OrganizationsSeeder struct {
	Catalog fixtures.Catalog
}

func (OrganizationsSeeder) Name() string { return "organizations" }

func (s OrganizationsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "organizations", "id", "name", "parent_id", "level", "roi", "health_score", "job_fit", "load_order"); err != nil {
		return err
	}

	h, err := organization.NewHierarchy(s.Catalog.Organizations)
	if err != nil {
		return err
	}
	order := map[string]int{}
	for i, o := range s.Catalog.Organizations {
		order[o.ID] = i
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, o := range parentsFirst(h) {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO organizations (id, name, parent_id, level, roi, health_score, job_fit, load_order)
				 VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8) ON CONFLICT (id) DO NOTHING`,
				o.ID,
				o.Name,
				deref(o.ParentID),
				string(o.Level),
				o.Metrics.ROI,
				o.Metrics.HealthScore,
				o.Metrics.JobFit,
				order[o.ID],
			)
			if err != nil {
				return fmt.Errorf("insert organization %s: %w", o.ID, err)
			}
		}
		return nil
	})
}

// parentsFirst walks the forest breadth-first so parent rows exist before
// their children reference them.
func parentsFirst(h *organization.Hierarchy) []organization.Organization {
	queue := h.Roots()
	out := make([]organization.Organization, 0, len(h.All()))
	for len(queue) > 0 {
		o := queue[0]
		queue = queue[1:]
		out = append(out, o)
		queue = append(queue, h.Children(o.ID)...)
	}
	return out
}

type PositionsSeeder struct {
	Catalog fixtures.Catalog
}

func (PositionsSeeder) Name() string { return "positions" }

func (s PositionsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "positions", "id", "organization_id", "required_skills"); err != nil {
		return err
	}
	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, p := range s.Catalog.Positions {
			skills := p.RequiredSkills
			if skills == nil {
				skills = []string{}
			}
			_, err := tx.Exec(
				ctx,
				`INSERT INTO positions (id, organization_id, required_skills) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`,
				p.ID,
				p.OrganizationID,
				skills,
			)
			if err != nil {
				return fmt.Errorf("insert position %s: %w", p.ID, err)
			}
		}
		return nil
	})
}

type EmployeesSeeder struct {
	Catalog fixtures.Catalog
}

func (EmployeesSeeder) Name() string { return "employees" }

func (s EmployeesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "employees", "id", "organization_id", "position_id", "risk_level"); err != nil {
		return err
	}
	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, e := range s.Catalog.Employees {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO employees (id, organization_id, position_id, risk_level) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`,
				e.ID,
				e.OrganizationID,
				e.PositionID,
				string(e.RiskLevel),
			)
			if err != nil {
				return fmt.Errorf("insert employee %s: %w", e.ID, err)
			}
		}
		return nil
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
