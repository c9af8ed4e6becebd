package fixtures

import (
	"testing"
	"time"

	"talent-align/internal/domain/action"
	"talent-align/internal/domain/organization"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	require.Len(t, c.Organizations, 5)
	assert.Nil(t, c.Organizations[0].ParentID)
	require.NotNil(t, c.Organizations[3].ParentID)
	assert.Equal(t, "org_bu_sales", *c.Organizations[3].ParentID)
	assert.Equal(t, organization.LevelDepartment, c.Organizations[3].Level)

	_, err = organization.NewHierarchy(c.Organizations)
	require.NoError(t, err)

	assert.Len(t, c.Positions, 5)
	assert.Len(t, c.Employees, 6)
	assert.Equal(t, []string{"客户关系", "谈判", "数据分析"}, c.Positions[0].RequiredSkills)
}

func TestCatalog_SeededActions(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	acts := c.SeededActions(now)
	require.Len(t, acts, 2)

	assert.Equal(t, "action_org_active_1", acts[0].ID)
	assert.Equal(t, action.StatusActive, acts[0].Status)
	assert.Equal(t, "2026-01-31", acts[0].DueDate)
	assert.Equal(t, 25, acts[0].Progress)
	require.NotNil(t, acts[0].Effort)
	assert.Equal(t, "3周", *acts[0].Effort)

	assert.Equal(t, action.TargetEmployee, acts[1].TargetObjectType)
	assert.Equal(t, "2026-01-24", acts[1].DueDate)
}

func TestLoadJobFit(t *testing.T) {
	j, err := LoadJobFit()
	require.NoError(t, err)

	require.NotNil(t, j.Base.Distribution)
	assert.Equal(t, 2, j.Base.Distribution.HardMismatch)
	assert.Len(t, j.Base.TrendSeries, 6)
	assert.Len(t, j.Base.Matrix, 4)
	assert.Len(t, j.Base.CapabilityGaps, 6)
	assert.Equal(t, "数据建模", j.Base.CapabilityGaps[0].Capability)
	assert.Equal(t, 3, j.Base.SingleMatchByEmployee.Len())
	assert.Len(t, j.Base.RoleProfilesByID["pos_data_analyst"].Model, 3)

	sales, ok := j.ByOrganization["org_bu_sales"]
	require.True(t, ok)
	assert.Nil(t, sales.CapabilityGaps)
	assert.Nil(t, sales.SingleMatchByEmployee)
	assert.Len(t, sales.Matrix, 3)

	product, ok := j.ByOrganization["org_bu_product"]
	require.True(t, ok)
	assert.Nil(t, product.Matrix)
	assert.Equal(t, 1, product.Distribution.HardMismatch)
}
