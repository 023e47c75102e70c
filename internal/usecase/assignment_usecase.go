package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"skillmap/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrAssignmentNotFound      = errors.New("assignment not found")
	ErrAssignmentAlreadyExists = errors.New("employee already assigned to project")
)

type AssignmentInput struct {
	ProjectID            uuid.UUID
	EmployeeID           uuid.UUID
	Role                 *string
	AllocationPercentage int
	StartDate            *time.Time
	EndDate              *time.Time
	Notes                *string
}

type AssignmentItem struct {
	ID                    uuid.UUID
	ProjectID             uuid.UUID
	EmployeeID            uuid.UUID
	Role                  *string
	AllocationPercentage  int
	StartDate             *time.Time
	EndDate               *time.Time
	Notes                 *string
	AutomaticallyAssigned bool
}

type AssignmentUsecase interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]AssignmentItem, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]AssignmentItem, error)
	GetAssignment(ctx context.Context, id uuid.UUID) (AssignmentItem, error)
	ListActiveOn(ctx context.Context, date time.Time) ([]AssignmentItem, error)
	ListAutomaticallyAssigned(ctx context.Context) ([]AssignmentItem, error)
	CreateAssignment(ctx context.Context, in AssignmentInput) (AssignmentItem, error)
	UpdateAssignment(ctx context.Context, id uuid.UUID, in AssignmentInput) (AssignmentItem, error)
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
}

type Assignments struct {
	repo      repository.AssignmentRepository
	projects  repository.ProjectRepository
	employees repository.EmployeeRepository
	cache     ResultCache
	logger    *log.Logger
}

func NewAssignmentUsecase(
	repo repository.AssignmentRepository,
	projects repository.ProjectRepository,
	employees repository.EmployeeRepository,
	cache ResultCache,
	logger *log.Logger,
) *Assignments {
	return &Assignments{repo: repo, projects: projects, employees: employees, cache: cache, logger: logger}
}

func (u *Assignments) ListByProject(ctx context.Context, projectID uuid.UUID) ([]AssignmentItem, error) {
	exists, err := u.projects.ExistsByID(ctx, projectID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrProjectNotFound
	}

	items, err := u.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, ErrInternal
	}
	return assignmentItems(items), nil
}

func (u *Assignments) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]AssignmentItem, error) {
	exists, err := u.employees.ExistsByID(ctx, employeeID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	items, err := u.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, ErrInternal
	}
	return assignmentItems(items), nil
}

func (u *Assignments) GetAssignment(ctx context.Context, id uuid.UUID) (AssignmentItem, error) {
	a, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return AssignmentItem{}, ErrAssignmentNotFound
		}
		return AssignmentItem{}, ErrInternal
	}
	return assignmentItem(a), nil
}

func (u *Assignments) ListActiveOn(ctx context.Context, date time.Time) ([]AssignmentItem, error) {
	items, err := u.repo.ListActiveOn(ctx, date)
	if err != nil {
		return nil, ErrInternal
	}
	return assignmentItems(items), nil
}

func (u *Assignments) ListAutomaticallyAssigned(ctx context.Context) ([]AssignmentItem, error) {
	items, err := u.repo.ListAutomaticallyAssigned(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return assignmentItems(items), nil
}

func (u *Assignments) CreateAssignment(ctx context.Context, in AssignmentInput) (AssignmentItem, error) {
	if err := validateAssignmentInput(in); err != nil {
		return AssignmentItem{}, err
	}

	exists, err := u.projects.ExistsByID(ctx, in.ProjectID)
	if err != nil {
		return AssignmentItem{}, ErrInternal
	}
	if !exists {
		return AssignmentItem{}, ErrProjectNotFound
	}
	exists, err = u.employees.ExistsByID(ctx, in.EmployeeID)
	if err != nil {
		return AssignmentItem{}, ErrInternal
	}
	if !exists {
		return AssignmentItem{}, ErrEmployeeNotFound
	}

	created, err := u.repo.Create(ctx, repository.Assignment{
		ID:                   uuid.New(),
		ProjectID:            in.ProjectID,
		EmployeeID:           in.EmployeeID,
		Role:                 in.Role,
		AllocationPercentage: in.AllocationPercentage,
		StartDate:            in.StartDate,
		EndDate:              in.EndDate,
		Notes:                in.Notes,
	})
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return AssignmentItem{}, ErrAssignmentAlreadyExists
		case isForeignKeyViolation(err):
			return AssignmentItem{}, ErrProjectNotFound
		default:
			return AssignmentItem{}, ErrInternal
		}
	}

	invalidateAllocationCaches(ctx, u.cache, u.logger)
	return assignmentItem(created), nil
}

func (u *Assignments) UpdateAssignment(ctx context.Context, id uuid.UUID, in AssignmentInput) (AssignmentItem, error) {
	if id == uuid.Nil {
		return AssignmentItem{}, ErrInvalidInput
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return AssignmentItem{}, ErrInvalidInput
	}

	updated, err := u.repo.Update(ctx, repository.Assignment{
		ID:                   id,
		Role:                 in.Role,
		AllocationPercentage: in.AllocationPercentage,
		StartDate:            in.StartDate,
		EndDate:              in.EndDate,
		Notes:                in.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return AssignmentItem{}, ErrAssignmentNotFound
		}
		return AssignmentItem{}, ErrInternal
	}

	invalidateAllocationCaches(ctx, u.cache, u.logger)
	return assignmentItem(updated), nil
}

func (u *Assignments) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return ErrAssignmentNotFound
		}
		return ErrInternal
	}

	invalidateAllocationCaches(ctx, u.cache, u.logger)
	return nil
}

func validateAssignmentInput(in AssignmentInput) error {
	if in.ProjectID == uuid.Nil || in.EmployeeID == uuid.Nil {
		return ErrInvalidInput
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return ErrInvalidInput
	}
	return nil
}

func assignmentItem(a repository.Assignment) AssignmentItem {
	return AssignmentItem{
		ID:                    a.ID,
		ProjectID:             a.ProjectID,
		EmployeeID:            a.EmployeeID,
		Role:                  a.Role,
		AllocationPercentage:  a.AllocationPercentage,
		StartDate:             a.StartDate,
		EndDate:               a.EndDate,
		Notes:                 a.Notes,
		AutomaticallyAssigned: a.AutomaticallyAssigned,
	}
}

func assignmentItems(items []repository.Assignment) []AssignmentItem {
	out := make([]AssignmentItem, 0, len(items))
	for _, a := range items {
		out = append(out, assignmentItem(a))
	}
	return out
}
