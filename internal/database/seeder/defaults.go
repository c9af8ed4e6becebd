package seeder

import (
	"time"

	"talent-align/internal/fixtures"
)

// Defaults returns the fixture seeders in foreign-key order.
func Defaults(catalog fixtures.Catalog, jobFit fixtures.JobFit, now time.Time) []Seeder {
	return []Seeder{
		OrganizationsSeeder{Catalog: catalog},
		PositionsSeeder{Catalog: catalog},
		EmployeesSeeder{Catalog: catalog},
		ActionsSeeder{Catalog: catalog, Now: now},
		SnapshotsSeeder{JobFit: jobFit},
	}
}
