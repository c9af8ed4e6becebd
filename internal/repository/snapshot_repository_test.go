package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent-align/internal/domain/jobfit"
	"talent-align/internal/fixtures"
)

func TestFixtureRepositories(t *testing.T) {
	ctx := context.Background()

	j, err := fixtures.LoadJobFit()
	require.NoError(t, err)
	snaps := NewFixtureSnapshotRepository(j)

	base, err := snaps.Base(ctx)
	require.NoError(t, err)
	assert.NotNil(t, base.Distribution)

	_, ok, err := snaps.ForOrganization(ctx, "org_bu_sales")
	require.NoError(t, err)
	assert.True(t, ok)
	_, ok, err = snaps.ForOrganization(ctx, "org_unknown")
	require.NoError(t, err)
	assert.False(t, ok)

	c, err := fixtures.LoadCatalog()
	require.NoError(t, err)
	cat := NewFixtureCatalogRepository(c)
	orgs, err := cat.Organizations(ctx)
	require.NoError(t, err)
	assert.Len(t, orgs, len(c.Organizations))
	orgs[0].Name = "changed"
	again, _ := cat.Organizations(ctx)
	assert.NotEqual(t, "changed", again[0].Name)
}

type payloadRow struct{ payload string }

func (r payloadRow) Scan(dest ...any) error {
	*dest[0].(*string) = r.payload
	return nil
}

func TestPostgresSnapshotRepository_DecodesInDocumentOrder(t *testing.T) {
	payload := `{"singleMatchByEmployee":{"emp_b":{"employee":"B"},"emp_a":{"employee":"A"}}}`
	repo := NewPostgresSnapshotRepository(&fakeDB{tx: &fakeTx{row: payloadRow{payload: payload}}})

	s, ok, err := repo.ForOrganization(context.Background(), "org_bu_sales")
	require.NoError(t, err)
	require.True(t, ok)
	entries := s.SingleMatchByEmployee.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, []jobfit.EmployeeMatch{
		{EmployeeID: "emp_b", Detail: jobfit.MatchDetail{Employee: "B"}},
		{EmployeeID: "emp_a", Detail: jobfit.MatchDetail{Employee: "A"}},
	}, entries)

	_, ok, err = repo.ForOrganization(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
}
