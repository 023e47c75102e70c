package usecase

import (
	"context"
	"errors"
	"strings"

	"skillmap/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrSkillNotFound      = errors.New("skill not found")
	ErrSkillAlreadyExists = errors.New("skill already exists")
)

type SkillInput struct {
	Name        string
	Category    *string
	Description *string
}

type SkillItem struct {
	ID          uuid.UUID
	Name        string
	Category    *string
	Description *string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
	GetSkill(ctx context.Context, id uuid.UUID) (SkillItem, error)
	ListEmployeesWithSkill(ctx context.Context, skillID uuid.UUID, minimumLevel int) ([]EmployeeItem, error)
	CreateSkill(ctx context.Context, in SkillInput) (SkillItem, error)
	UpdateSkill(ctx context.Context, id uuid.UUID, in SkillInput) (SkillItem, error)
	DeleteSkill(ctx context.Context, id uuid.UUID) error
}

type SkillCatalog struct {
	repo      repository.SkillRepository
	employees repository.EmployeeRepository
}

func NewSkillUsecase(repo repository.SkillRepository, employees repository.EmployeeRepository) *SkillCatalog {
	return &SkillCatalog{repo: repo, employees: employees}
}

func (u *SkillCatalog) ListSkills(ctx context.Context) ([]SkillItem, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]SkillItem, 0, len(items))
	for _, s := range items {
		out = append(out, skillItem(s))
	}
	return out, nil
}

func (u *SkillCatalog) GetSkill(ctx context.Context, id uuid.UUID) (SkillItem, error) {
	s, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return SkillItem{}, ErrSkillNotFound
		}
		return SkillItem{}, ErrInternal
	}
	return skillItem(s), nil
}

func (u *SkillCatalog) ListEmployeesWithSkill(ctx context.Context, skillID uuid.UUID, minimumLevel int) ([]EmployeeItem, error) {
	if minimumLevel < 1 || minimumLevel > 5 {
		return nil, ErrInvalidProficiencyLevel
	}
	exists, err := u.repo.ExistsByID(ctx, skillID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrSkillNotFound
	}

	items, err := u.employees.ListBySkillWithMinimumLevel(ctx, skillID, minimumLevel)
	if err != nil {
		return nil, ErrInternal
	}
	return employeeItems(items), nil
}

func (u *SkillCatalog) CreateSkill(ctx context.Context, in SkillInput) (SkillItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return SkillItem{}, ErrInvalidInput
	}

	created, err := u.repo.Create(ctx, repository.Skill{
		ID:          uuid.New(),
		Name:        name,
		Category:    in.Category,
		Description: in.Description,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return SkillItem{}, ErrSkillAlreadyExists
		}
		return SkillItem{}, ErrInternal
	}
	return skillItem(created), nil
}

func (u *SkillCatalog) UpdateSkill(ctx context.Context, id uuid.UUID, in SkillInput) (SkillItem, error) {
	if id == uuid.Nil {
		return SkillItem{}, ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return SkillItem{}, ErrInvalidInput
	}

	updated, err := u.repo.Update(ctx, repository.Skill{
		ID:          id,
		Name:        name,
		Category:    in.Category,
		Description: in.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSkillNotFound):
			return SkillItem{}, ErrSkillNotFound
		case isUniqueViolation(err):
			return SkillItem{}, ErrSkillAlreadyExists
		default:
			return SkillItem{}, ErrInternal
		}
	}
	return skillItem(updated), nil
}

func (u *SkillCatalog) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}
	return nil
}

func skillItem(s repository.Skill) SkillItem {
	return SkillItem{ID: s.ID, Name: s.Name, Category: s.Category, Description: s.Description}
}
