package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skillmap/internal/domain/allocation"
	"skillmap/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectStatus = errors.New("invalid project status")
)

type ProjectInput struct {
	Name        string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
	Status      string
}

type ProjectItem struct {
	ID          uuid.UUID
	Name        string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
	Status      string
}

type ProjectUsecase interface {
	ListProjects(ctx context.Context) ([]ProjectItem, error)
	ListProjectsByStatus(ctx context.Context, status string) ([]ProjectItem, error)
	GetProject(ctx context.Context, id uuid.UUID) (ProjectItem, error)
	CreateProject(ctx context.Context, in ProjectInput) (ProjectItem, error)
	UpdateProject(ctx context.Context, id uuid.UUID, in ProjectInput) (ProjectItem, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

type Projects struct {
	repo repository.ProjectRepository
}

func NewProjectUsecase(repo repository.ProjectRepository) *Projects {
	return &Projects{repo: repo}
}

func (u *Projects) ListProjects(ctx context.Context) ([]ProjectItem, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return projectItems(items), nil
}

func (u *Projects) ListProjectsByStatus(ctx context.Context, status string) ([]ProjectItem, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if !allocation.ValidStatus(status) {
		return nil, ErrInvalidProjectStatus
	}
	items, err := u.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, ErrInternal
	}
	return projectItems(items), nil
}

func (u *Projects) GetProject(ctx context.Context, id uuid.UUID) (ProjectItem, error) {
	p, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ProjectItem{}, ErrProjectNotFound
		}
		return ProjectItem{}, ErrInternal
	}
	return projectItem(p), nil
}

func (u *Projects) CreateProject(ctx context.Context, in ProjectInput) (ProjectItem, error) {
	p, err := projectFromInput(uuid.New(), in)
	if err != nil {
		return ProjectItem{}, err
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return ProjectItem{}, ErrInternal
	}
	return projectItem(created), nil
}

func (u *Projects) UpdateProject(ctx context.Context, id uuid.UUID, in ProjectInput) (ProjectItem, error) {
	if id == uuid.Nil {
		return ProjectItem{}, ErrInvalidInput
	}
	p, err := projectFromInput(id, in)
	if err != nil {
		return ProjectItem{}, err
	}

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ProjectItem{}, ErrProjectNotFound
		}
		return ProjectItem{}, ErrInternal
	}
	return projectItem(updated), nil
}

func (u *Projects) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ErrProjectNotFound
		}
		return ErrInternal
	}
	return nil
}

func projectFromInput(id uuid.UUID, in ProjectInput) (repository.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return repository.Project{}, ErrInvalidInput
	}

	status := strings.ToUpper(strings.TrimSpace(in.Status))
	if status == "" {
		status = string(allocation.StatusPlanned)
	}
	if !allocation.ValidStatus(status) {
		return repository.Project{}, ErrInvalidProjectStatus
	}

	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return repository.Project{}, ErrInvalidInput
	}

	return repository.Project{
		ID:          id,
		Name:        name,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Budget:      in.Budget,
		Status:      status,
	}, nil
}

func projectItem(p repository.Project) ProjectItem {
	return ProjectItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Budget:      p.Budget,
		Status:      p.Status,
	}
}

func projectItems(items []repository.Project) []ProjectItem {
	out := make([]ProjectItem, 0, len(items))
	for _, p := range items {
		out = append(out, projectItem(p))
	}
	return out
}
