package usecase

import (
	"context"
	"errors"
	"log"

	"skillmap/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrProjectSkillNotFound      = errors.New("project skill not found")
	ErrProjectSkillAlreadyExists = errors.New("project already requires this skill")
	ErrInvalidImportance         = errors.New("invalid importance")
	ErrInvalidFTE                = errors.New("invalid fte value")
)

type ProjectSkillInput struct {
	SkillID            uuid.UUID
	Importance         int
	MinimumProficiency *int
	MinimumFTE         float64
	FTEThreshold       float64
}

type ProjectSkillItem struct {
	ID                 uuid.UUID
	ProjectID          uuid.UUID
	SkillID            uuid.UUID
	SkillName          string
	Importance         int
	MinimumProficiency *int
	MinimumFTE         float64
	FTEThreshold       float64
}

type ProjectSkillUsecase interface {
	ListProjectSkills(ctx context.Context, projectID uuid.UUID) ([]ProjectSkillItem, error)
	AddProjectSkill(ctx context.Context, projectID uuid.UUID, in ProjectSkillInput) (ProjectSkillItem, error)
	UpdateProjectSkill(ctx context.Context, projectID, skillID uuid.UUID, in ProjectSkillInput) (ProjectSkillItem, error)
	RemoveProjectSkill(ctx context.Context, projectID, skillID uuid.UUID) error
}

type ProjectSkills struct {
	repo     repository.ProjectSkillRepository
	projects repository.ProjectRepository
	skills   repository.SkillRepository
	cache    ResultCache
	logger   *log.Logger
}

func NewProjectSkillUsecase(
	repo repository.ProjectSkillRepository,
	projects repository.ProjectRepository,
	skills repository.SkillRepository,
	cache ResultCache,
	logger *log.Logger,
) *ProjectSkills {
	return &ProjectSkills{repo: repo, projects: projects, skills: skills, cache: cache, logger: logger}
}

func (u *ProjectSkills) ListProjectSkills(ctx context.Context, projectID uuid.UUID) ([]ProjectSkillItem, error) {
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
	out := make([]ProjectSkillItem, 0, len(items))
	for _, ps := range items {
		out = append(out, projectSkillItem(ps))
	}
	return out, nil
}

func (u *ProjectSkills) AddProjectSkill(ctx context.Context, projectID uuid.UUID, in ProjectSkillInput) (ProjectSkillItem, error) {
	if projectID == uuid.Nil || in.SkillID == uuid.Nil {
		return ProjectSkillItem{}, ErrInvalidInput
	}
	if err := validateProjectSkillInput(in); err != nil {
		return ProjectSkillItem{}, err
	}

	exists, err := u.projects.ExistsByID(ctx, projectID)
	if err != nil {
		return ProjectSkillItem{}, ErrInternal
	}
	if !exists {
		return ProjectSkillItem{}, ErrProjectNotFound
	}
	exists, err = u.skills.ExistsByID(ctx, in.SkillID)
	if err != nil {
		return ProjectSkillItem{}, ErrInternal
	}
	if !exists {
		return ProjectSkillItem{}, ErrSkillNotFound
	}

	created, err := u.repo.Create(ctx, repository.ProjectSkill{
		ID:                 uuid.New(),
		ProjectID:          projectID,
		SkillID:            in.SkillID,
		Importance:         in.Importance,
		MinimumProficiency: in.MinimumProficiency,
		MinimumFTE:         in.MinimumFTE,
		FTEThreshold:       in.FTEThreshold,
	})
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return ProjectSkillItem{}, ErrProjectSkillAlreadyExists
		case isForeignKeyViolation(err):
			return ProjectSkillItem{}, ErrSkillNotFound
		default:
			return ProjectSkillItem{}, ErrInternal
		}
	}

	invalidateAllocationCaches(ctx, u.cache, u.logger)
	return projectSkillItem(created), nil
}

func (u *ProjectSkills) UpdateProjectSkill(ctx context.Context, projectID, skillID uuid.UUID, in ProjectSkillInput) (ProjectSkillItem, error) {
	if projectID == uuid.Nil || skillID == uuid.Nil {
		return ProjectSkillItem{}, ErrInvalidInput
	}
	if err := validateProjectSkillInput(in); err != nil {
		return ProjectSkillItem{}, err
	}

	updated, err := u.repo.Update(ctx, repository.ProjectSkill{
		ProjectID:          projectID,
		SkillID:            skillID,
		Importance:         in.Importance,
		MinimumProficiency: in.MinimumProficiency,
		MinimumFTE:         in.MinimumFTE,
		FTEThreshold:       in.FTEThreshold,
	})
	if err != nil {
		if errors.Is(err, repository.ErrProjectSkillNotFound) {
			return ProjectSkillItem{}, ErrProjectSkillNotFound
		}
		return ProjectSkillItem{}, ErrInternal
	}

	invalidateAllocationCaches(ctx, u.cache, u.logger)
	return projectSkillItem(updated), nil
}

func (u *ProjectSkills) RemoveProjectSkill(ctx context.Context, projectID, skillID uuid.UUID) error {
	if projectID == uuid.Nil || skillID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.repo.Delete(ctx, projectID, skillID); err != nil {
		if errors.Is(err, repository.ErrProjectSkillNotFound) {
			return ErrProjectSkillNotFound
		}
		return ErrInternal
	}

	invalidateAllocationCaches(ctx, u.cache, u.logger)
	return nil
}

func validateProjectSkillInput(in ProjectSkillInput) error {
	if in.Importance < 1 || in.Importance > 5 {
		return ErrInvalidImportance
	}
	if in.MinimumProficiency != nil && !validProficiency(*in.MinimumProficiency) {
		return ErrInvalidProficiencyLevel
	}
	if in.MinimumFTE < 0 {
		return ErrInvalidFTE
	}
	if in.FTEThreshold < 0 || in.FTEThreshold > 1 {
		return ErrInvalidFTE
	}
	return nil
}

func projectSkillItem(ps repository.ProjectSkill) ProjectSkillItem {
	return ProjectSkillItem{
		ID:                 ps.ID,
		ProjectID:          ps.ProjectID,
		SkillID:            ps.SkillID,
		SkillName:          ps.SkillName,
		Importance:         ps.Importance,
		MinimumProficiency: ps.MinimumProficiency,
		MinimumFTE:         ps.MinimumFTE,
		FTEThreshold:       ps.FTEThreshold,
	}
}
