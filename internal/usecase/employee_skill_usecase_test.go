package usecase

import (
	"context"
	"errors"
	"testing"

	"skillmap/internal/repository"

	"github.com/google/uuid"
)

func TestAddEmployeeSkill_InvalidProficiency(t *testing.T) {
	uc := NewEmployeeSkillUsecase(&memEmployeeSkillRepo{}, &memEmployeeRepo{}, &memSkillRepo{}, nil, nil)

	_, err := uc.AddEmployeeSkill(context.Background(), uuid.New(), EmployeeSkillInput{
		SkillID:          uuid.New(),
		ProficiencyLevel: 6,
	})
	if !errors.Is(err, ErrInvalidProficiencyLevel) {
		t.Fatalf("expected ErrInvalidProficiencyLevel, got %v", err)
	}
}

func TestAddEmployeeSkill_EmployeeNotFound(t *testing.T) {
	skillID := uuid.New()
	skills := &memSkillRepo{items: []repository.Skill{{ID: skillID, Name: "Go"}}}
	uc := NewEmployeeSkillUsecase(&memEmployeeSkillRepo{}, &memEmployeeRepo{}, skills, nil, nil)

	_, err := uc.AddEmployeeSkill(context.Background(), uuid.New(), EmployeeSkillInput{
		SkillID:          skillID,
		ProficiencyLevel: 3,
	})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestAddEmployeeSkill_Duplicate(t *testing.T) {
	employeeID := uuid.New()
	skillID := uuid.New()

	employees := &memEmployeeRepo{items: []repository.Employee{{ID: employeeID, WorkingHoursPerWeek: 40}}}
	skills := &memSkillRepo{items: []repository.Skill{{ID: skillID, Name: "Go"}}}
	repo := &memEmployeeSkillRepo{}
	uc := NewEmployeeSkillUsecase(repo, employees, skills, nil, nil)

	in := EmployeeSkillInput{SkillID: skillID, ProficiencyLevel: 3}
	if _, err := uc.AddEmployeeSkill(context.Background(), employeeID, in); err != nil {
		t.Fatalf("first add: %v", err)
	}
	_, err := uc.AddEmployeeSkill(context.Background(), employeeID, in)
	if !errors.Is(err, ErrEmployeeSkillAlreadyExists) {
		t.Fatalf("expected ErrEmployeeSkillAlreadyExists, got %v", err)
	}
}

func TestAddEmployeeSkill_InvalidatesCaches(t *testing.T) {
	employeeID := uuid.New()
	skillID := uuid.New()

	employees := &memEmployeeRepo{items: []repository.Employee{{ID: employeeID, WorkingHoursPerWeek: 40}}}
	skills := &memSkillRepo{items: []repository.Skill{{ID: skillID, Name: "Go"}}}
	cache := newFakeCache()
	cache.store[projectHealthCacheKey(uuid.NewString(), testDate())] = []byte(`{}`)
	cache.store[orgMetricsCacheKey(testDate())] = []byte(`{}`)

	uc := NewEmployeeSkillUsecase(&memEmployeeSkillRepo{}, employees, skills, cache, nil)
	_, err := uc.AddEmployeeSkill(context.Background(), employeeID, EmployeeSkillInput{
		SkillID:          skillID,
		ProficiencyLevel: 3,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(cache.store) != 0 {
		t.Fatalf("expected caches invalidated, %d entries remain", len(cache.store))
	}
}

func TestUpdateEmployeeSkill_NotFound(t *testing.T) {
	uc := NewEmployeeSkillUsecase(&memEmployeeSkillRepo{}, &memEmployeeRepo{}, &memSkillRepo{}, nil, nil)

	_, err := uc.UpdateEmployeeSkill(context.Background(), uuid.New(), uuid.New(), EmployeeSkillInput{
		ProficiencyLevel: 3,
	})
	if !errors.Is(err, ErrEmployeeSkillNotFound) {
		t.Fatalf("expected ErrEmployeeSkillNotFound, got %v", err)
	}
}
