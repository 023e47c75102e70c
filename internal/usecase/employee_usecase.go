package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skillmap/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeEmailTaken = errors.New("employee email already in use")
)

type EmployeeInput struct {
	FirstName           string
	LastName            string
	Email               string
	Position            *string
	Department          *string
	WorkingHoursPerWeek int
}

type EmployeeItem struct {
	ID                  uuid.UUID
	FirstName           string
	LastName            string
	Email               string
	Position            *string
	Department          *string
	WorkingHoursPerWeek int
}

type EmployeeCapacity struct {
	EmployeeID        uuid.UUID
	Date              time.Time
	TotalAllocation   int
	AvailableCapacity int
	ActiveAssignments int
}

type EmployeeUsecase interface {
	ListEmployees(ctx context.Context) ([]EmployeeItem, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (EmployeeItem, error)
	SearchEmployees(ctx context.Context, query string) ([]EmployeeItem, error)
	GetEmployeeCapacity(ctx context.Context, id uuid.UUID, date time.Time) (EmployeeCapacity, error)
	CreateEmployee(ctx context.Context, in EmployeeInput) (EmployeeItem, error)
	UpdateEmployee(ctx context.Context, id uuid.UUID, in EmployeeInput) (EmployeeItem, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
}

type Employee struct {
	repo     repository.EmployeeRepository
	snapshot *SnapshotLoader
}

func NewEmployeeUsecase(repo repository.EmployeeRepository, snapshot *SnapshotLoader) *Employee {
	return &Employee{repo: repo, snapshot: snapshot}
}

func (u *Employee) ListEmployees(ctx context.Context) ([]EmployeeItem, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return employeeItems(items), nil
}

func (u *Employee) GetEmployee(ctx context.Context, id uuid.UUID) (EmployeeItem, error) {
	e, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return EmployeeItem{}, ErrEmployeeNotFound
		}
		return EmployeeItem{}, ErrInternal
	}
	return employeeItem(e), nil
}

func (u *Employee) SearchEmployees(ctx context.Context, query string) ([]EmployeeItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidInput
	}
	items, err := u.repo.SearchByName(ctx, query)
	if err != nil {
		return nil, ErrInternal
	}
	return employeeItems(items), nil
}

func (u *Employee) GetEmployeeCapacity(ctx context.Context, id uuid.UUID, date time.Time) (EmployeeCapacity, error) {
	exists, err := u.repo.ExistsByID(ctx, id)
	if err != nil {
		return EmployeeCapacity{}, ErrInternal
	}
	if !exists {
		return EmployeeCapacity{}, ErrEmployeeNotFound
	}

	snap, err := u.snapshot.Load(ctx)
	if err != nil {
		return EmployeeCapacity{}, ErrInternal
	}

	total := snap.TotalAllocation(id, date)
	return EmployeeCapacity{
		EmployeeID:        id,
		Date:              date,
		TotalAllocation:   total,
		AvailableCapacity: 100 - total,
		ActiveAssignments: len(snap.ActiveAssignments(id, date)),
	}, nil
}

func (u *Employee) CreateEmployee(ctx context.Context, in EmployeeInput) (EmployeeItem, error) {
	if err := validateEmployeeInput(in); err != nil {
		return EmployeeItem{}, err
	}

	created, err := u.repo.Create(ctx, repository.Employee{
		ID:                  uuid.New(),
		FirstName:           strings.TrimSpace(in.FirstName),
		LastName:            strings.TrimSpace(in.LastName),
		Email:               strings.TrimSpace(in.Email),
		Position:            in.Position,
		Department:          in.Department,
		WorkingHoursPerWeek: in.WorkingHoursPerWeek,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return EmployeeItem{}, ErrEmployeeEmailTaken
		}
		return EmployeeItem{}, ErrInternal
	}
	return employeeItem(created), nil
}

func (u *Employee) UpdateEmployee(ctx context.Context, id uuid.UUID, in EmployeeInput) (EmployeeItem, error) {
	if id == uuid.Nil {
		return EmployeeItem{}, ErrInvalidInput
	}
	if err := validateEmployeeInput(in); err != nil {
		return EmployeeItem{}, err
	}

	updated, err := u.repo.Update(ctx, repository.Employee{
		ID:                  id,
		FirstName:           strings.TrimSpace(in.FirstName),
		LastName:            strings.TrimSpace(in.LastName),
		Email:               strings.TrimSpace(in.Email),
		Position:            in.Position,
		Department:          in.Department,
		WorkingHoursPerWeek: in.WorkingHoursPerWeek,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmployeeNotFound):
			return EmployeeItem{}, ErrEmployeeNotFound
		case isUniqueViolation(err):
			return EmployeeItem{}, ErrEmployeeEmailTaken
		default:
			return EmployeeItem{}, ErrInternal
		}
	}
	return employeeItem(updated), nil
}

func (u *Employee) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return ErrEmployeeNotFound
		}
		return ErrInternal
	}
	return nil
}

func validateEmployeeInput(in EmployeeInput) error {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.Email) == "" || !strings.Contains(in.Email, "@") {
		return ErrInvalidInput
	}
	if in.WorkingHoursPerWeek <= 0 {
		return ErrInvalidInput
	}
	return nil
}

func employeeItem(e repository.Employee) EmployeeItem {
	return EmployeeItem{
		ID:                  e.ID,
		FirstName:           e.FirstName,
		LastName:            e.LastName,
		Email:               e.Email,
		Position:            e.Position,
		Department:          e.Department,
		WorkingHoursPerWeek: e.WorkingHoursPerWeek,
	}
}

func employeeItems(items []repository.Employee) []EmployeeItem {
	out := make([]EmployeeItem, 0, len(items))
	for _, e := range items {
		out = append(out, employeeItem(e))
	}
	return out
}
