package jobfit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOverlay_OverrideReplacesPresentKeysOnly(t *testing.T) {
	base := Snapshot{
		Distribution:   &Distribution{High: 22, Medium: 35, Low: 9, HardMismatch: 2},
		TrendSeries:    []TrendPoint{{Period: "1月", Score: 79}},
		CapabilityGaps: []CapabilityGap{{Capability: "数据建模", Gap: 16}},
		KeyFactors:     []string{"数据建模"},
	}
	override := Snapshot{
		Distribution: &Distribution{High: 10, Medium: 18, Low: 8, HardMismatch: 3},
		KeyFactors:   []string{},
	}

	out := Overlay(base, override)

	require.NotNil(t, out.Distribution)
	assert.Equal(t, 3, out.Distribution.HardMismatch)
	assert.Equal(t, base.TrendSeries, out.TrendSeries)
	assert.Equal(t, base.CapabilityGaps, out.CapabilityGaps)
	assert.NotNil(t, out.KeyFactors)
	assert.Empty(t, out.KeyFactors)

	// base must be untouched
	assert.Equal(t, 2, base.Distribution.HardMismatch)
}

func TestOverlay_NestedValuesAreNotMerged(t *testing.T) {
	base := Snapshot{Summary: &Summary{AvgMatch: 78, Level: "中匹配", Risk: "中", KeyFinding: "base"}}
	override := Snapshot{Summary: &Summary{AvgMatch: 81}}

	out := Overlay(base, override)
	assert.Equal(t, float64(81), out.Summary.AvgMatch)
	assert.Empty(t, out.Summary.KeyFinding)
}

func TestEmployeeMatches_JSONKeepsDocumentOrder(t *testing.T) {
	raw := `{"emp_003":{"employee":"陈佳","match":70},"emp_001":{"employee":"王敏","match":74},"emp_009":{"employee":"陈佳","match":60}}`

	var m EmployeeMatches
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	require.Equal(t, 3, m.Len())

	id, ok := m.IDByEmployeeName("陈佳")
	require.True(t, ok)
	assert.Equal(t, "emp_003", id)

	_, ok = m.IDByEmployeeName("赵航")
	assert.False(t, ok)

	out, err := json.Marshal(m)
	require.NoError(t, err)

	var back EmployeeMatches
	require.NoError(t, json.Unmarshal(out, &back))
	entries := back.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "emp_003", entries[0].EmployeeID)
	assert.Equal(t, "emp_001", entries[1].EmployeeID)
	assert.Equal(t, "emp_009", entries[2].EmployeeID)
}

func TestEmployeeMatches_YAMLKeepsDocumentOrder(t *testing.T) {
	src := `
singleMatchByEmployee:
  emp_002:
    employee: 李昊
    match: 84
  emp_001:
    employee: 王敏
    match: 74
`
	var s Snapshot
	require.NoError(t, yaml.Unmarshal([]byte(src), &s))
	require.NotNil(t, s.SingleMatchByEmployee)

	entries := s.SingleMatchByEmployee.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "emp_002", entries[0].EmployeeID)
	assert.Equal(t, float64(74), entries[1].Detail.Match)

	d, ok := s.SingleMatchByEmployee.Get("emp_001")
	require.True(t, ok)
	assert.Equal(t, "王敏", d.Employee)
}

func TestEmployeeMatches_NilSafe(t *testing.T) {
	var m *EmployeeMatches
	_, ok := m.IDByEmployeeName("王敏")
	assert.False(t, ok)
	assert.Zero(t, m.Len())
}

func TestSimulate(t *testing.T) {
	// "emp_101" has 7 runes, "pos_sales_manager" has 17.
	s := Simulate("emp_101", "pos_sales_manager")
	assert.Equal(t, 72+7%6+17%8, s.Match)
	assert.Equal(t, 74, s.Match)
	assert.Equal(t, 4, s.Performance)
	assert.Equal(t, 26, s.Risk)
	assert.Equal(t, "emp_101 与 pos_sales_manager 的技能匹配度更高。", s.Reason)
}

func TestSimulate_CountsRunesNotBytes(t *testing.T) {
	// 2 runes and 4 runes: 72+2+4.
	s := Simulate("王敏", "产品经理")
	assert.Equal(t, 78, s.Match)
	assert.Equal(t, 8, s.Performance)
	assert.Equal(t, 22, s.Risk)

	s = Simulate("abcde", "abcdefg")
	assert.Equal(t, 84, s.Match)
	assert.Equal(t, 14, s.Performance)
	assert.Equal(t, 16, s.Risk)
}
