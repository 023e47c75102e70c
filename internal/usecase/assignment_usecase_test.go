package usecase

import (
	"context"
	"errors"
	"testing"

	"skillmap/internal/repository"

	"github.com/google/uuid"
)

func TestCreateAssignment_Duplicate(t *testing.T) {
	projectID := uuid.New()
	employeeID := uuid.New()

	projects := &memProjectRepo{items: []repository.Project{{ID: projectID, Status: "PLANNED"}}}
	employees := &memEmployeeRepo{items: []repository.Employee{{ID: employeeID, WorkingHoursPerWeek: 40}}}
	repo := &memAssignmentRepo{}
	uc := NewAssignmentUsecase(repo, projects, employees, nil, nil)

	in := AssignmentInput{ProjectID: projectID, EmployeeID: employeeID, AllocationPercentage: 50}
	if _, err := uc.CreateAssignment(context.Background(), in); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := uc.CreateAssignment(context.Background(), in)
	if !errors.Is(err, ErrAssignmentAlreadyExists) {
		t.Fatalf("expected ErrAssignmentAlreadyExists, got %v", err)
	}
}

func TestCreateAssignment_EndBeforeStart(t *testing.T) {
	uc := NewAssignmentUsecase(&memAssignmentRepo{}, &memProjectRepo{}, &memEmployeeRepo{}, nil, nil)

	start := testDate()
	end := start.AddDate(0, 0, -1)
	_, err := uc.CreateAssignment(context.Background(), AssignmentInput{
		ProjectID:  uuid.New(),
		EmployeeID: uuid.New(),
		StartDate:  &start,
		EndDate:    &end,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateAssignment_ProjectNotFound(t *testing.T) {
	uc := NewAssignmentUsecase(&memAssignmentRepo{}, &memProjectRepo{}, &memEmployeeRepo{}, nil, nil)

	_, err := uc.CreateAssignment(context.Background(), AssignmentInput{
		ProjectID:  uuid.New(),
		EmployeeID: uuid.New(),
	})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestCreateAssignment_InvalidatesCaches(t *testing.T) {
	projectID := uuid.New()
	employeeID := uuid.New()

	projects := &memProjectRepo{items: []repository.Project{{ID: projectID, Status: "PLANNED"}}}
	employees := &memEmployeeRepo{items: []repository.Employee{{ID: employeeID, WorkingHoursPerWeek: 40}}}
	cache := newFakeCache()
	cache.store[projectHealthCacheKey(projectID.String(), testDate())] = []byte(`{}`)
	cache.store[orgMetricsCacheKey(testDate())] = []byte(`{}`)

	uc := NewAssignmentUsecase(&memAssignmentRepo{}, projects, employees, cache, nil)
	_, err := uc.CreateAssignment(context.Background(), AssignmentInput{
		ProjectID:            projectID,
		EmployeeID:           employeeID,
		AllocationPercentage: 100,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(cache.store) != 0 {
		t.Fatalf("expected caches invalidated, %d entries remain", len(cache.store))
	}
}

func TestUpdateAssignment_NotFound(t *testing.T) {
	uc := NewAssignmentUsecase(&memAssignmentRepo{}, &memProjectRepo{}, &memEmployeeRepo{}, nil, nil)

	_, err := uc.UpdateAssignment(context.Background(), uuid.New(), AssignmentInput{AllocationPercentage: 50})
	if !errors.Is(err, ErrAssignmentNotFound) {
		t.Fatalf("expected ErrAssignmentNotFound, got %v", err)
	}
}
