package usecase

import (
	"context"
	"log"
	"time"
)

type ResourceUtilizationResult struct {
	AverageUtilization float64 `json:"average_utilization"`
	TotalEmployees     int     `json:"total_employees"`
	OverAllocatedCount int     `json:"over_allocated_count"`
	UnderUtilizedCount int     `json:"under_utilized_count"`
	FullyUtilizedCount int     `json:"fully_utilized_count"`
}

type AssignmentMetricsResult struct {
	Date                    string                    `json:"date"`
	OrganizationHealthScore *float64                  `json:"organization_health_score"`
	TotalActiveProjects     int                       `json:"total_active_projects"`
	ResourceUtilization     ResourceUtilizationResult `json:"resource_utilization"`
}

type AssignmentMetricsUsecase interface {
	CalculateAssignmentMetrics(ctx context.Context, date time.Time) (AssignmentMetricsResult, error)
}

type AssignmentMetrics struct {
	snapshot *SnapshotLoader
	cache    ResultCache
	logger   *log.Logger
}

func NewAssignmentMetricsUsecase(snapshot *SnapshotLoader, cache ResultCache, logger *log.Logger) *AssignmentMetrics {
	return &AssignmentMetrics{snapshot: snapshot, cache: cache, logger: logger}
}

func (u *AssignmentMetrics) CalculateAssignmentMetrics(ctx context.Context, date time.Time) (AssignmentMetricsResult, error) {
	key := orgMetricsCacheKey(date)
	if u.cache != nil {
		var cached AssignmentMetricsResult
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	snap, err := u.snapshot.Load(ctx)
	if err != nil {
		return AssignmentMetricsResult{}, ErrInternal
	}

	m := snap.OrganizationMetrics(date)
	result := AssignmentMetricsResult{
		Date:                    date.Format("2006-01-02"),
		OrganizationHealthScore: m.OrganizationHealthScore,
		TotalActiveProjects:     m.TotalActiveProjects,
		ResourceUtilization: ResourceUtilizationResult{
			AverageUtilization: m.ResourceUtilization.AverageUtilization,
			TotalEmployees:     m.ResourceUtilization.TotalEmployees,
			OverAllocatedCount: m.ResourceUtilization.OverAllocatedCount,
			UnderUtilizedCount: m.ResourceUtilization.UnderUtilizedCount,
			FullyUtilizedCount: m.ResourceUtilization.FullyUtilizedCount,
		},
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, result, allocationCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("metrics cache write failed: %v", err)
		}
	}

	return result, nil
}
