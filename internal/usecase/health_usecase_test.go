package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"skillmap/internal/repository"

	"github.com/google/uuid"
)

type fakeCache struct {
	store map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := f.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = b
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func (f *fakeCache) DeleteByPrefix(_ context.Context, prefix string) error {
	for k := range f.store {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(f.store, k)
		}
	}
	return nil
}

func TestCalculateProjectHealth_NotFound(t *testing.T) {
	projects := &memProjectRepo{}
	loader := newLoader(&memEmployeeRepo{}, &memEmployeeSkillRepo{}, projects, &memProjectSkillRepo{}, &memAssignmentRepo{})
	uc := NewProjectHealthUsecase(projects, loader, nil, nil)

	_, err := uc.CalculateProjectHealth(context.Background(), uuid.New(), testDate())
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestCalculateProjectHealth_FullyCovered(t *testing.T) {
	projectID := uuid.New()
	employeeID := uuid.New()
	skillID := uuid.New()
	start := testDate().AddDate(0, -1, 0)

	employees := &memEmployeeRepo{items: []repository.Employee{
		{ID: employeeID, WorkingHoursPerWeek: 40},
	}}
	employeeSkills := &memEmployeeSkillRepo{items: []repository.EmployeeSkill{
		{ID: uuid.New(), EmployeeID: employeeID, SkillID: skillID, SkillName: "Go", ProficiencyLevel: 4},
	}}
	projects := &memProjectRepo{items: []repository.Project{{ID: projectID, Status: "IN_PROGRESS"}}}
	projectSkills := &memProjectSkillRepo{items: []repository.ProjectSkill{
		{ID: uuid.New(), ProjectID: projectID, SkillID: skillID, SkillName: "Go", Importance: 5,
			MinimumProficiency: intPtr(3), MinimumFTE: 0.5, FTEThreshold: 0.4},
	}}
	assignments := &memAssignmentRepo{items: []repository.Assignment{
		{ID: uuid.New(), ProjectID: projectID, EmployeeID: employeeID, AllocationPercentage: 50, StartDate: &start},
	}}

	loader := newLoader(employees, employeeSkills, projects, projectSkills, assignments)
	uc := NewProjectHealthUsecase(projects, loader, nil, nil)

	result, err := uc.CalculateProjectHealth(context.Background(), projectID, testDate())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.OverallHealthScore != 100.0 {
		t.Fatalf("expected health 100, got %f", result.OverallHealthScore)
	}
	if len(result.SkillCoverages) != 1 {
		t.Fatalf("expected 1 skill coverage, got %d", len(result.SkillCoverages))
	}
	cov := result.SkillCoverages[0]
	if cov.FTECoveragePercentage != 100.0 {
		t.Fatalf("expected fte coverage 100, got %f", cov.FTECoveragePercentage)
	}
	if cov.BestTeamProficiency == nil || *cov.BestTeamProficiency != 4 {
		t.Fatalf("unexpected best proficiency: %v", cov.BestTeamProficiency)
	}
}

func TestCalculateProjectHealth_CacheHit(t *testing.T) {
	projectID := uuid.New()

	projects := &memProjectRepo{items: []repository.Project{{ID: projectID, Status: "PLANNED"}}}
	projectSkills := &memProjectSkillRepo{}
	loader := newLoader(&memEmployeeRepo{}, &memEmployeeSkillRepo{}, projects, projectSkills, &memAssignmentRepo{})
	cache := newFakeCache()
	uc := NewProjectHealthUsecase(projects, loader, cache, nil)

	first, err := uc.CalculateProjectHealth(context.Background(), projectID, testDate())
	if err != nil {
		t.Fatalf("first call: %v", err)
	}

	// A requirement added after the cached read must not show up until the
	// entry is invalidated or expires.
	projectSkills.items = append(projectSkills.items, repository.ProjectSkill{
		ID: uuid.New(), ProjectID: projectID, SkillID: uuid.New(), SkillName: "Go",
		Importance: 5, MinimumFTE: 1.0, FTEThreshold: 0.4,
	})

	second, err := uc.CalculateProjectHealth(context.Background(), projectID, testDate())
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if second.OverallHealthScore != first.OverallHealthScore {
		t.Fatalf("expected cached result, got %f vs %f", second.OverallHealthScore, first.OverallHealthScore)
	}

	if err := cache.DeleteByPrefix(context.Background(), projectHealthCachePrefix); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	third, err := uc.CalculateProjectHealth(context.Background(), projectID, testDate())
	if err != nil {
		t.Fatalf("third call: %v", err)
	}
	if third.OverallHealthScore == first.OverallHealthScore {
		t.Fatalf("expected recomputed result after invalidation")
	}
}
