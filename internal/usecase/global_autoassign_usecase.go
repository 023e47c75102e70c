package usecase

import (
	"context"
	"log"
	"time"

	"skillmap/internal/pkg/metrics"
	"skillmap/internal/repository"
)

type GlobalAutoAssignUsecase interface {
	AutoAssignAll(ctx context.Context, date time.Time) (AutoAssignResult, error)
}

type GlobalAutoAssign struct {
	assignments repository.AssignmentRepository
	snapshot    *SnapshotLoader
	cache       ResultCache
	logger      *log.Logger
}

func NewGlobalAutoAssignUsecase(
	assignments repository.AssignmentRepository,
	snapshot *SnapshotLoader,
	cache ResultCache,
	logger *log.Logger,
) *GlobalAutoAssign {
	return &GlobalAutoAssign{assignments: assignments, snapshot: snapshot, cache: cache, logger: logger}
}

// AutoAssignAll runs the global planner across every open project.
// Conflicting rows are skipped rather than aborting the run, so a
// concurrent manual assignment costs one proposal, not the whole batch.
func (u *GlobalAutoAssign) AutoAssignAll(ctx context.Context, date time.Time) (AutoAssignResult, error) {
	snap, err := u.snapshot.Load(ctx)
	if err != nil {
		return AutoAssignResult{}, ErrInternal
	}

	planned := snap.PlanGlobalAssignments(date)
	metrics.AutoAssignRuns.WithLabelValues("global").Inc()

	created, err := persistPlanned(ctx, u.assignments, planned, true)
	if err != nil {
		return AutoAssignResult{}, err
	}
	metrics.AutoAssignCreated.WithLabelValues("global").Add(float64(len(created)))

	invalidateAllocationCaches(ctx, u.cache, u.logger)
	return AutoAssignResult{
		Date:     date.Format("2006-01-02"),
		Created:  len(created),
		Assigned: created,
	}, nil
}
