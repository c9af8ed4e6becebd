package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"talent-align/internal/domain/jobfit"
	"talent-align/internal/domain/organization"
	"talent-align/internal/domain/recommendation"
	"talent-align/internal/logger"
	"talent-align/internal/metrics"
	"talent-align/internal/repository"
)

const ResourceJobFit = "job_fit"

// JobFitPayload is the overlaid snapshot plus the suggestions computed from it.
type JobFitPayload struct {
	jobfit.Snapshot
	ActionSuggestions []recommendation.Suggestion `json:"actionSuggestions"`
}

type JobFitUsecase interface {
	// GetResource serves /mock/:resource. Only job_fit exists.
	GetResource(ctx context.Context, resource, orgID string) (JobFitPayload, error)
	GetPayload(ctx context.Context, orgID string) (JobFitPayload, error)
	Evaluate(ctx context.Context, orgID string) (recommendation.Result, error)
	InvalidateCache(ctx context.Context) error
}

type JobFit struct {
	hierarchy *organization.Hierarchy
	snapshots repository.SnapshotRepository
	cache     PayloadCache
	ttl       time.Duration
	log       *zap.Logger

	fill singleflight.Group
}

func NewJobFitUsecase(h *organization.Hierarchy, snapshots repository.SnapshotRepository, cache PayloadCache, ttl time.Duration, log *zap.Logger) *JobFit {
	return &JobFit{
		hierarchy: h,
		snapshots: snapshots,
		cache:     cache,
		ttl:       ttl,
		log:       logger.OrNop(log).Named("jobfit"),
	}
}

func (u *JobFit) GetResource(ctx context.Context, resource, orgID string) (JobFitPayload, error) {
	if strings.TrimSpace(resource) != ResourceJobFit {
		return JobFitPayload{}, ErrMockNotFound
	}
	return u.GetPayload(ctx, orgID)
}

func (u *JobFit) GetPayload(ctx context.Context, orgID string) (JobFitPayload, error) {
	orgID, err := u.resolveOrg(orgID)
	if err != nil {
		return JobFitPayload{}, err
	}

	key := JobFitPayloadCacheKey(orgID)
	if u.cache != nil {
		var cached JobFitPayload
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			u.log.Warn("payload cache read failed", zap.String("key", key), zap.Error(err))
		}
		if hit {
			metrics.PayloadCache("hit")
			return cached, nil
		}
		metrics.PayloadCache("miss")
	} else {
		metrics.PayloadCache("bypass")
	}

	v, err, _ := u.fill.Do(key, func() (any, error) {
		p, err := u.build(ctx, orgID)
		if err != nil {
			return JobFitPayload{}, err
		}
		if u.cache != nil {
			if err := u.cache.SetJSON(ctx, key, p, u.ttl); err != nil {
				u.log.Warn("payload cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return p, nil
	})
	if err != nil {
		return JobFitPayload{}, err
	}
	return v.(JobFitPayload), nil
}

func (u *JobFit) Evaluate(ctx context.Context, orgID string) (recommendation.Result, error) {
	orgID, err := u.resolveOrg(orgID)
	if err != nil {
		return recommendation.Result{}, err
	}
	snap, err := u.snapshot(ctx, orgID)
	if err != nil {
		return recommendation.Result{}, err
	}
	return u.evaluate(orgID, snap), nil
}

func (u *JobFit) InvalidateCache(ctx context.Context) error {
	if u.cache == nil {
		return nil
	}
	return u.cache.DeleteByPattern(ctx, JobFitPayloadCachePattern())
}

// resolveOrg maps an empty id to the first root organization and rejects
// ids the hierarchy does not know.
func (u *JobFit) resolveOrg(orgID string) (string, error) {
	orgID = strings.TrimSpace(orgID)
	if orgID == "" {
		roots := u.hierarchy.Roots()
		if len(roots) == 0 {
			return "", ErrOrganizationNotFound
		}
		return roots[0].ID, nil
	}
	if !u.hierarchy.Exists(orgID) {
		return "", ErrOrganizationNotFound
	}
	return orgID, nil
}

func (u *JobFit) build(ctx context.Context, orgID string) (JobFitPayload, error) {
	snap, err := u.snapshot(ctx, orgID)
	if err != nil {
		return JobFitPayload{}, err
	}
	res := u.evaluate(orgID, snap)
	return JobFitPayload{Snapshot: snap, ActionSuggestions: res.Suggestions}, nil
}

func (u *JobFit) snapshot(ctx context.Context, orgID string) (jobfit.Snapshot, error) {
	base, err := u.snapshots.Base(ctx)
	if err != nil {
		u.log.Error("load base snapshot failed", zap.Error(err))
		return jobfit.Snapshot{}, ErrInternal
	}
	override, ok, err := u.snapshots.ForOrganization(ctx, orgID)
	if err != nil {
		u.log.Error("load organization snapshot failed", zap.String("org_id", orgID), zap.Error(err))
		return jobfit.Snapshot{}, ErrInternal
	}
	if !ok {
		return base, nil
	}
	return jobfit.Overlay(base, override), nil
}

func (u *JobFit) evaluate(orgID string, snap jobfit.Snapshot) recommendation.Result {
	res := recommendation.Evaluate(orgID, snap)
	for _, s := range res.Suggestions {
		metrics.RuleFired(string(s.Rule))
	}
	for _, name := range res.Unresolved {
		metrics.UnresolvedTarget()
		u.log.Warn("employee name has no id mapping, using name as target id",
			zap.String("org_id", orgID),
			zap.String("employee", name),
		)
	}
	return res
}
