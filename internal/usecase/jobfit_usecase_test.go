package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent-align/internal/domain/action"
	"talent-align/internal/domain/jobfit"
	"talent-align/internal/domain/recommendation"
	"talent-align/internal/repository"
)

func newJobFit(t *testing.T, cache PayloadCache) *JobFit {
	t.Helper()
	w := loadWorld(t)
	return NewJobFitUsecase(w.hierarchy, repository.NewFixtureSnapshotRepository(w.jobFit), cache, time.Minute, nil)
}

func TestJobFit_GetResource_UnknownResource(t *testing.T) {
	uc := newJobFit(t, nil)
	_, err := uc.GetResource(context.Background(), "talent_review", "")
	assert.ErrorIs(t, err, ErrMockNotFound)
}

func TestJobFit_GetResource_UnknownOrganization(t *testing.T) {
	uc := newJobFit(t, nil)
	_, err := uc.GetResource(context.Background(), ResourceJobFit, "org_missing")
	assert.ErrorIs(t, err, ErrOrganizationNotFound)
}

func TestJobFit_GetPayload_DefaultsToRootOrganization(t *testing.T) {
	uc := newJobFit(t, nil)

	p, err := uc.GetPayload(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, p.ActionSuggestions, 4)
	titles := make([]string, 0, 4)
	for _, s := range p.ActionSuggestions {
		titles = append(titles, s.Title)
		if s.TargetType == action.TargetOrganization {
			assert.Equal(t, "org_group", s.TargetID)
		}
	}
	assert.Equal(t, []string{
		"清理硬性不匹配岗位",
		"启动低匹配岗位专项提升",
		"个人匹配提升计划：赵航",
		"关键能力提升：数据建模",
	}, titles)

	weakest := p.ActionSuggestions[2]
	assert.Equal(t, recommendation.PriorityP0, weakest.Priority)
	assert.Equal(t, "赵航", weakest.TargetID)
}

func TestJobFit_GetPayload_OverlaysOrganization(t *testing.T) {
	uc := newJobFit(t, nil)

	p, err := uc.GetPayload(context.Background(), "org_bu_sales")
	require.NoError(t, err)

	require.NotNil(t, p.Distribution)
	assert.Equal(t, 3, p.Distribution.HardMismatch)
	require.NotEmpty(t, p.CapabilityGaps, "absent override keys fall back to base")
	assert.Equal(t, "数据建模", p.CapabilityGaps[0].Capability)
	assert.Equal(t, 3, p.SingleMatchByEmployee.Len())

	require.Len(t, p.ActionSuggestions, 4)
	assert.Equal(t, "硬性不匹配岗位 3 个", p.ActionSuggestions[0].Rationale)
	assert.Equal(t, "低匹配岗位数量 8 个", p.ActionSuggestions[1].Rationale)
	assert.Equal(t, "刘思", p.ActionSuggestions[2].TargetID)
	assert.Equal(t, "org_bu_sales", p.ActionSuggestions[3].TargetID)
}

func TestJobFit_GetPayload_SecondRequestServedFromCache(t *testing.T) {
	cache := newMemoryCache()
	uc := newJobFit(t, cache)
	ctx := context.Background()

	first, err := uc.GetPayload(ctx, "org_bu_product")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	// Swap the source so a cache miss would be visible.
	uc.snapshots = repository.NewFixtureSnapshotRepository(fixturesWithoutData())

	second, err := uc.GetPayload(ctx, "org_bu_product")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
	require.Len(t, second.ActionSuggestions, len(first.ActionSuggestions))
	for i := range first.ActionSuggestions {
		assert.Equal(t, first.ActionSuggestions[i].Title, second.ActionSuggestions[i].Title)
		assert.Equal(t, first.ActionSuggestions[i].TargetID, second.ActionSuggestions[i].TargetID)
	}
	assert.Equal(t, first.SingleMatchByEmployee.Entries(), second.SingleMatchByEmployee.Entries())

	require.NoError(t, uc.InvalidateCache(ctx))
	third, err := uc.GetPayload(ctx, "org_bu_product")
	require.NoError(t, err)
	assert.Empty(t, third.ActionSuggestions)
}

func TestJobFit_GetPayload_ConcurrentRequests(t *testing.T) {
	uc := newJobFit(t, newMemoryCache())

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := uc.GetPayload(context.Background(), "org_group")
			if err == nil && len(p.ActionSuggestions) != 4 {
				err = errors.New("unexpected suggestion count")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestJobFit_Evaluate_ReportsUnresolvedNames(t *testing.T) {
	uc := newJobFit(t, nil)

	res, err := uc.Evaluate(context.Background(), "org_group")
	require.NoError(t, err)
	assert.Equal(t, []string{"赵航"}, res.Unresolved)
	assert.Equal(t, recommendation.RuleWeakestMatch, res.Suggestions[2].Rule)
}

type brokenSnapshots struct{}

func (brokenSnapshots) Base(context.Context) (jobfit.Snapshot, error) {
	return jobfit.Snapshot{}, errors.New("db down")
}
func (brokenSnapshots) ForOrganization(context.Context, string) (jobfit.Snapshot, bool, error) {
	return jobfit.Snapshot{}, false, nil
}

func TestJobFit_RepositoryFailureIsInternal(t *testing.T) {
	w := loadWorld(t)
	uc := NewJobFitUsecase(w.hierarchy, brokenSnapshots{}, nil, 0, nil)

	_, err := uc.GetPayload(context.Background(), "org_group")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestJobFitPayloadCacheKey(t *testing.T) {
	assert.Equal(t, "jobfit:payload:org_group", JobFitPayloadCacheKey(" org_group "))
	assert.Equal(t, "jobfit:payload:*", JobFitPayloadCachePattern())
}
