package usecase

import (
	"context"
	"errors"
	"log"

	"skillmap/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrEmployeeSkillNotFound      = errors.New("employee skill not found")
	ErrEmployeeSkillAlreadyExists = errors.New("employee already has this skill")
	ErrInvalidProficiencyLevel    = errors.New("invalid proficiency level")
)

type EmployeeSkillInput struct {
	SkillID          uuid.UUID
	ProficiencyLevel int
	Notes            *string
}

type EmployeeSkillItem struct {
	ID               uuid.UUID
	EmployeeID       uuid.UUID
	SkillID          uuid.UUID
	SkillName        string
	ProficiencyLevel int
	Notes            *string
}

type EmployeeSkillUsecase interface {
	ListEmployeeSkills(ctx context.Context, employeeID uuid.UUID) ([]EmployeeSkillItem, error)
	AddEmployeeSkill(ctx context.Context, employeeID uuid.UUID, in EmployeeSkillInput) (EmployeeSkillItem, error)
	UpdateEmployeeSkill(ctx context.Context, employeeID, skillID uuid.UUID, in EmployeeSkillInput) (EmployeeSkillItem, error)
	RemoveEmployeeSkill(ctx context.Context, employeeID, skillID uuid.UUID) error
}

type EmployeeSkills struct {
	repo      repository.EmployeeSkillRepository
	employees repository.EmployeeRepository
	skills    repository.SkillRepository
	cache     ResultCache
	logger    *log.Logger
}

func NewEmployeeSkillUsecase(
	repo repository.EmployeeSkillRepository,
	employees repository.EmployeeRepository,
	skills repository.SkillRepository,
	cache ResultCache,
	logger *log.Logger,
) *EmployeeSkills {
	return &EmployeeSkills{repo: repo, employees: employees, skills: skills, cache: cache, logger: logger}
}

func (u *EmployeeSkills) ListEmployeeSkills(ctx context.Context, employeeID uuid.UUID) ([]EmployeeSkillItem, error) {
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
	out := make([]EmployeeSkillItem, 0, len(items))
	for _, es := range items {
		out = append(out, employeeSkillItem(es))
	}
	return out, nil
}

func (u *EmployeeSkills) AddEmployeeSkill(ctx context.Context, employeeID uuid.UUID, in EmployeeSkillInput) (EmployeeSkillItem, error) {
	if employeeID == uuid.Nil || in.SkillID == uuid.Nil {
		return EmployeeSkillItem{}, ErrInvalidInput
	}
	if !validProficiency(in.ProficiencyLevel) {
		return EmployeeSkillItem{}, ErrInvalidProficiencyLevel
	}

	exists, err := u.employees.ExistsByID(ctx, employeeID)
	if err != nil {
		return EmployeeSkillItem{}, ErrInternal
	}
	if !exists {
		return EmployeeSkillItem{}, ErrEmployeeNotFound
	}
	exists, err = u.skills.ExistsByID(ctx, in.SkillID)
	if err != nil {
		return EmployeeSkillItem{}, ErrInternal
	}
	if !exists {
		return EmployeeSkillItem{}, ErrSkillNotFound
	}

	created, err := u.repo.Create(ctx, repository.EmployeeSkill{
		ID:               uuid.New(),
		EmployeeID:       employeeID,
		SkillID:          in.SkillID,
		ProficiencyLevel: in.ProficiencyLevel,
		Notes:            in.Notes,
	})
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return EmployeeSkillItem{}, ErrEmployeeSkillAlreadyExists
		case isForeignKeyViolation(err):
			return EmployeeSkillItem{}, ErrSkillNotFound
		default:
			return EmployeeSkillItem{}, ErrInternal
		}
	}

	invalidateAllocationCaches(ctx, u.cache, u.logger)
	return employeeSkillItem(created), nil
}

func (u *EmployeeSkills) UpdateEmployeeSkill(ctx context.Context, employeeID, skillID uuid.UUID, in EmployeeSkillInput) (EmployeeSkillItem, error) {
	if employeeID == uuid.Nil || skillID == uuid.Nil {
		return EmployeeSkillItem{}, ErrInvalidInput
	}
	if !validProficiency(in.ProficiencyLevel) {
		return EmployeeSkillItem{}, ErrInvalidProficiencyLevel
	}

	updated, err := u.repo.Update(ctx, repository.EmployeeSkill{
		EmployeeID:       employeeID,
		SkillID:          skillID,
		ProficiencyLevel: in.ProficiencyLevel,
		Notes:            in.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeSkillNotFound) {
			return EmployeeSkillItem{}, ErrEmployeeSkillNotFound
		}
		return EmployeeSkillItem{}, ErrInternal
	}

	invalidateAllocationCaches(ctx, u.cache, u.logger)
	return employeeSkillItem(updated), nil
}

func (u *EmployeeSkills) RemoveEmployeeSkill(ctx context.Context, employeeID, skillID uuid.UUID) error {
	if employeeID == uuid.Nil || skillID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.repo.Delete(ctx, employeeID, skillID); err != nil {
		if errors.Is(err, repository.ErrEmployeeSkillNotFound) {
			return ErrEmployeeSkillNotFound
		}
		return ErrInternal
	}

	invalidateAllocationCaches(ctx, u.cache, u.logger)
	return nil
}

func validProficiency(v int) bool {
	return v >= 1 && v <= 5
}

func employeeSkillItem(es repository.EmployeeSkill) EmployeeSkillItem {
	return EmployeeSkillItem{
		ID:               es.ID,
		EmployeeID:       es.EmployeeID,
		SkillID:          es.SkillID,
		SkillName:        es.SkillName,
		ProficiencyLevel: es.ProficiencyLevel,
		Notes:            es.Notes,
	}
}
