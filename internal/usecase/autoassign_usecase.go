package usecase

import (
	"context"
	"log"
	"time"

	"skillmap/internal/domain/allocation"
	"skillmap/internal/pkg/metrics"
	"skillmap/internal/repository"

	"github.com/google/uuid"
)

type PlannedAssignmentResult struct {
	AssignmentID         uuid.UUID `json:"assignment_id"`
	ProjectID            uuid.UUID `json:"project_id"`
	EmployeeID           uuid.UUID `json:"employee_id"`
	SkillID              uuid.UUID `json:"skill_id"`
	SkillName            string    `json:"skill_name"`
	AllocationPercentage int       `json:"allocation_percentage"`
	Role                 string    `json:"role"`
	CompatibilityScore   float64   `json:"compatibility_score,omitempty"`
}

type AutoAssignResult struct {
	Date     string                    `json:"date"`
	Created  int                       `json:"created"`
	Assigned []PlannedAssignmentResult `json:"assigned"`
}

type AutoAssignUsecase interface {
	AutoAssignProject(ctx context.Context, projectID uuid.UUID, date time.Time) (AutoAssignResult, error)
}

type ProjectAutoAssign struct {
	projects    repository.ProjectRepository
	assignments repository.AssignmentRepository
	snapshot    *SnapshotLoader
	cache       ResultCache
	logger      *log.Logger
}

func NewProjectAutoAssignUsecase(
	projects repository.ProjectRepository,
	assignments repository.AssignmentRepository,
	snapshot *SnapshotLoader,
	cache ResultCache,
	logger *log.Logger,
) *ProjectAutoAssign {
	return &ProjectAutoAssign{
		projects:    projects,
		assignments: assignments,
		snapshot:    snapshot,
		cache:       cache,
		logger:      logger,
	}
}

// AutoAssignProject plans assignments for one project and persists them.
// The plan is computed over a snapshot taken before the first write, so a
// run's proposals never react to its own inserts.
func (u *ProjectAutoAssign) AutoAssignProject(ctx context.Context, projectID uuid.UUID, date time.Time) (AutoAssignResult, error) {
	if projectID == uuid.Nil {
		return AutoAssignResult{}, ErrInvalidInput
	}

	exists, err := u.projects.ExistsByID(ctx, projectID)
	if err != nil {
		return AutoAssignResult{}, ErrInternal
	}
	if !exists {
		return AutoAssignResult{}, ErrProjectNotFound
	}

	snap, err := u.snapshot.Load(ctx)
	if err != nil {
		return AutoAssignResult{}, ErrInternal
	}

	planned := snap.PlanProjectAssignments(projectID, date)
	metrics.AutoAssignRuns.WithLabelValues("project").Inc()

	created, err := persistPlanned(ctx, u.assignments, planned, false)
	if err != nil {
		return AutoAssignResult{}, err
	}
	metrics.AutoAssignCreated.WithLabelValues("project").Add(float64(len(created)))

	invalidateAllocationCaches(ctx, u.cache, u.logger)
	return AutoAssignResult{
		Date:     date.Format("2006-01-02"),
		Created:  len(created),
		Assigned: created,
	}, nil
}

// persistPlanned writes planner proposals one at a time. Auto-created
// rows carry no start or end date, so they are active for every query
// date, not just dates after the run. When skipConflicts is set, rows
// that collide with an existing (project, employee) pair are dropped
// instead of failing the run.
func persistPlanned(
	ctx context.Context,
	repo repository.AssignmentRepository,
	planned []allocation.PlannedAssignment,
	skipConflicts bool,
) ([]PlannedAssignmentResult, error) {
	out := make([]PlannedAssignmentResult, 0, len(planned))
	for _, p := range planned {
		role := p.Role
		notes := p.Notes
		a, err := repo.Create(ctx, repository.Assignment{
			ID:                    uuid.New(),
			ProjectID:             p.ProjectID,
			EmployeeID:            p.EmployeeID,
			Role:                  &role,
			AllocationPercentage:  p.AllocationPercentage,
			Notes:                 &notes,
			AutomaticallyAssigned: true,
		})
		if err != nil {
			if skipConflicts && isUniqueViolation(err) {
				continue
			}
			return nil, ErrInternal
		}
		out = append(out, PlannedAssignmentResult{
			AssignmentID:         a.ID,
			ProjectID:            p.ProjectID,
			EmployeeID:           p.EmployeeID,
			SkillID:              p.SkillID,
			SkillName:            p.SkillName,
			AllocationPercentage: p.AllocationPercentage,
			Role:                 p.Role,
			CompatibilityScore:   p.CompatibilityScore,
		})
	}
	return out, nil
}
