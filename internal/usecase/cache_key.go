package usecase

import (
	"context"
	"log"
	"time"
)

const (
	projectHealthCachePrefix = "allocation:health:"
	orgMetricsCachePrefix    = "allocation:metrics:"

	allocationCacheTTL = 2 * time.Minute
)

func projectHealthCacheKey(projectID string, date time.Time) string {
	return projectHealthCachePrefix + projectID + ":" + date.Format("2006-01-02")
}

func orgMetricsCacheKey(date time.Time) string {
	return orgMetricsCachePrefix + date.Format("2006-01-02")
}

// invalidateAllocationCaches drops every cached health and metrics result.
// Any write that can shift a health score goes through here: assignments,
// project skill requirements, employee skills, auto-assign runs. Failures
// are logged and ignored; the entries expire on their own.
func invalidateAllocationCaches(ctx context.Context, cache ResultCache, logger *log.Logger) {
	if cache == nil {
		return
	}
	if err := cache.DeleteByPrefix(ctx, projectHealthCachePrefix); err != nil && logger != nil {
		logger.Printf("cache invalidation failed: %v", err)
	}
	if err := cache.DeleteByPrefix(ctx, orgMetricsCachePrefix); err != nil && logger != nil {
		logger.Printf("cache invalidation failed: %v", err)
	}
}
