package usecase

import (
	"context"
	"strings"
	"time"
)

// PayloadCache is the slice of the Redis cache the job-fit use case needs.
type PayloadCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const jobFitPayloadPrefix = "jobfit:payload:"

func JobFitPayloadCacheKey(orgID string) string {
	return jobFitPayloadPrefix + strings.TrimSpace(orgID)
}

func JobFitPayloadCachePattern() string {
	return jobFitPayloadPrefix + "*"
}
