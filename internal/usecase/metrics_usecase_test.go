package usecase

import (
	"context"
	"testing"

	"skillmap/internal/repository"

	"github.com/google/uuid"
)

func TestCalculateAssignmentMetrics_NoActiveProjects(t *testing.T) {
	employees := &memEmployeeRepo{items: []repository.Employee{
		{ID: uuid.New(), WorkingHoursPerWeek: 40},
		{ID: uuid.New(), WorkingHoursPerWeek: 40},
	}}
	loader := newLoader(employees, &memEmployeeSkillRepo{}, &memProjectRepo{}, &memProjectSkillRepo{}, &memAssignmentRepo{})
	uc := NewAssignmentMetricsUsecase(loader, nil, nil)

	result, err := uc.CalculateAssignmentMetrics(context.Background(), testDate())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.OrganizationHealthScore != nil {
		t.Fatalf("expected absent health score, got %v", *result.OrganizationHealthScore)
	}
	if result.TotalActiveProjects != 0 {
		t.Fatalf("expected 0 active projects, got %d", result.TotalActiveProjects)
	}
	if result.ResourceUtilization.TotalEmployees != 2 {
		t.Fatalf("expected 2 employees, got %d", result.ResourceUtilization.TotalEmployees)
	}
	if result.ResourceUtilization.UnderUtilizedCount != 2 {
		t.Fatalf("expected both employees under-utilized, got %d", result.ResourceUtilization.UnderUtilizedCount)
	}
}

func TestCalculateAssignmentMetrics_UtilizationBuckets(t *testing.T) {
	overID := uuid.New()
	fullID := uuid.New()
	idleID := uuid.New()
	projectID := uuid.New()

	employees := &memEmployeeRepo{items: []repository.Employee{
		{ID: overID, WorkingHoursPerWeek: 40},
		{ID: fullID, WorkingHoursPerWeek: 40},
		{ID: idleID, WorkingHoursPerWeek: 40},
	}}
	projects := &memProjectRepo{items: []repository.Project{{ID: projectID, Status: "IN_PROGRESS"}}}
	assignments := &memAssignmentRepo{items: []repository.Assignment{
		{ID: uuid.New(), ProjectID: projectID, EmployeeID: overID, AllocationPercentage: 150},
		{ID: uuid.New(), ProjectID: projectID, EmployeeID: fullID, AllocationPercentage: 90},
	}}

	loader := newLoader(employees, &memEmployeeSkillRepo{}, projects, &memProjectSkillRepo{}, assignments)
	uc := NewAssignmentMetricsUsecase(loader, nil, nil)

	result, err := uc.CalculateAssignmentMetrics(context.Background(), testDate())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.TotalActiveProjects != 1 {
		t.Fatalf("expected 1 active project, got %d", result.TotalActiveProjects)
	}
	if result.OrganizationHealthScore == nil {
		t.Fatalf("expected health score present")
	}
	u := result.ResourceUtilization
	if u.OverAllocatedCount != 1 || u.FullyUtilizedCount != 1 || u.UnderUtilizedCount != 1 {
		t.Fatalf("unexpected buckets: over=%d full=%d under=%d",
			u.OverAllocatedCount, u.FullyUtilizedCount, u.UnderUtilizedCount)
	}
	if u.AverageUtilization != 80.0 {
		t.Fatalf("expected average 80, got %f", u.AverageUtilization)
	}
}
