package usecase

import (
	"context"
	"time"

	"skillmap/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type memEmployeeRepo struct {
	items []repository.Employee
	err   error
}

func (m *memEmployeeRepo) List(context.Context) ([]repository.Employee, error) {
	return m.items, m.err
}

func (m *memEmployeeRepo) FindByID(_ context.Context, id uuid.UUID) (repository.Employee, error) {
	if m.err != nil {
		return repository.Employee{}, m.err
	}
	for _, e := range m.items {
		if e.ID == id {
			return e, nil
		}
	}
	return repository.Employee{}, repository.ErrEmployeeNotFound
}

func (m *memEmployeeRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, e := range m.items {
		if e.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *memEmployeeRepo) SearchByName(context.Context, string) ([]repository.Employee, error) {
	return m.items, m.err
}

func (m *memEmployeeRepo) ListBySkillWithMinimumLevel(context.Context, uuid.UUID, int) ([]repository.Employee, error) {
	return nil, m.err
}

func (m *memEmployeeRepo) ListNotAssignedToProject(context.Context, uuid.UUID) ([]repository.Employee, error) {
	return nil, m.err
}

func (m *memEmployeeRepo) Create(_ context.Context, e repository.Employee) (repository.Employee, error) {
	if m.err != nil {
		return repository.Employee{}, m.err
	}
	m.items = append(m.items, e)
	return e, nil
}

func (m *memEmployeeRepo) Update(_ context.Context, e repository.Employee) (repository.Employee, error) {
	if m.err != nil {
		return repository.Employee{}, m.err
	}
	for i := range m.items {
		if m.items[i].ID == e.ID {
			m.items[i] = e
			return e, nil
		}
	}
	return repository.Employee{}, repository.ErrEmployeeNotFound
}

func (m *memEmployeeRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrEmployeeNotFound
}

type memSkillRepo struct {
	items []repository.Skill
	err   error
}

func (m *memSkillRepo) List(context.Context) ([]repository.Skill, error) { return m.items, m.err }

func (m *memSkillRepo) FindByID(_ context.Context, id uuid.UUID) (repository.Skill, error) {
	for _, s := range m.items {
		if s.ID == id {
			return s, nil
		}
	}
	return repository.Skill{}, repository.ErrSkillNotFound
}

func (m *memSkillRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, s := range m.items {
		if s.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *memSkillRepo) Create(_ context.Context, s repository.Skill) (repository.Skill, error) {
	if m.err != nil {
		return repository.Skill{}, m.err
	}
	m.items = append(m.items, s)
	return s, nil
}

func (m *memSkillRepo) Update(_ context.Context, s repository.Skill) (repository.Skill, error) {
	for i := range m.items {
		if m.items[i].ID == s.ID {
			m.items[i] = s
			return s, nil
		}
	}
	return repository.Skill{}, repository.ErrSkillNotFound
}

func (m *memSkillRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrSkillNotFound
}

type memEmployeeSkillRepo struct {
	items     []repository.EmployeeSkill
	err       error
	createErr error
}

func (m *memEmployeeSkillRepo) ListByEmployee(_ context.Context, employeeID uuid.UUID) ([]repository.EmployeeSkill, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.EmployeeSkill, 0)
	for _, es := range m.items {
		if es.EmployeeID == employeeID {
			out = append(out, es)
		}
	}
	return out, nil
}

func (m *memEmployeeSkillRepo) FindByEmployeeAndSkill(_ context.Context, employeeID, skillID uuid.UUID) (repository.EmployeeSkill, error) {
	for _, es := range m.items {
		if es.EmployeeID == employeeID && es.SkillID == skillID {
			return es, nil
		}
	}
	return repository.EmployeeSkill{}, repository.ErrEmployeeSkillNotFound
}

func (m *memEmployeeSkillRepo) ListAll(context.Context) ([]repository.EmployeeSkill, error) {
	return m.items, m.err
}

func (m *memEmployeeSkillRepo) Create(_ context.Context, es repository.EmployeeSkill) (repository.EmployeeSkill, error) {
	if m.createErr != nil {
		return repository.EmployeeSkill{}, m.createErr
	}
	for _, existing := range m.items {
		if existing.EmployeeID == es.EmployeeID && existing.SkillID == es.SkillID {
			return repository.EmployeeSkill{}, &pgconn.PgError{Code: "23505"}
		}
	}
	m.items = append(m.items, es)
	return es, nil
}

func (m *memEmployeeSkillRepo) Update(_ context.Context, es repository.EmployeeSkill) (repository.EmployeeSkill, error) {
	for i := range m.items {
		if m.items[i].EmployeeID == es.EmployeeID && m.items[i].SkillID == es.SkillID {
			m.items[i].ProficiencyLevel = es.ProficiencyLevel
			m.items[i].Notes = es.Notes
			return m.items[i], nil
		}
	}
	return repository.EmployeeSkill{}, repository.ErrEmployeeSkillNotFound
}

func (m *memEmployeeSkillRepo) Delete(_ context.Context, employeeID, skillID uuid.UUID) error {
	for i := range m.items {
		if m.items[i].EmployeeID == employeeID && m.items[i].SkillID == skillID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrEmployeeSkillNotFound
}

type memProjectRepo struct {
	items []repository.Project
	err   error
}

func (m *memProjectRepo) List(context.Context) ([]repository.Project, error) { return m.items, m.err }

func (m *memProjectRepo) ListByStatus(_ context.Context, status string) ([]repository.Project, error) {
	out := make([]repository.Project, 0)
	for _, p := range m.items {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, m.err
}

func (m *memProjectRepo) FindByID(_ context.Context, id uuid.UUID) (repository.Project, error) {
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return repository.Project{}, repository.ErrProjectNotFound
}

func (m *memProjectRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, p := range m.items {
		if p.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *memProjectRepo) Create(_ context.Context, p repository.Project) (repository.Project, error) {
	m.items = append(m.items, p)
	return p, nil
}

func (m *memProjectRepo) Update(_ context.Context, p repository.Project) (repository.Project, error) {
	for i := range m.items {
		if m.items[i].ID == p.ID {
			m.items[i] = p
			return p, nil
		}
	}
	return repository.Project{}, repository.ErrProjectNotFound
}

func (m *memProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrProjectNotFound
}

type memProjectSkillRepo struct {
	items []repository.ProjectSkill
	err   error
}

func (m *memProjectSkillRepo) ListByProject(_ context.Context, projectID uuid.UUID) ([]repository.ProjectSkill, error) {
	out := make([]repository.ProjectSkill, 0)
	for _, ps := range m.items {
		if ps.ProjectID == projectID {
			out = append(out, ps)
		}
	}
	return out, m.err
}

func (m *memProjectSkillRepo) FindByProjectAndSkill(_ context.Context, projectID, skillID uuid.UUID) (repository.ProjectSkill, error) {
	for _, ps := range m.items {
		if ps.ProjectID == projectID && ps.SkillID == skillID {
			return ps, nil
		}
	}
	return repository.ProjectSkill{}, repository.ErrProjectSkillNotFound
}

func (m *memProjectSkillRepo) ListAll(context.Context) ([]repository.ProjectSkill, error) {
	return m.items, m.err
}

func (m *memProjectSkillRepo) Create(_ context.Context, ps repository.ProjectSkill) (repository.ProjectSkill, error) {
	for _, existing := range m.items {
		if existing.ProjectID == ps.ProjectID && existing.SkillID == ps.SkillID {
			return repository.ProjectSkill{}, &pgconn.PgError{Code: "23505"}
		}
	}
	m.items = append(m.items, ps)
	return ps, nil
}

func (m *memProjectSkillRepo) Update(_ context.Context, ps repository.ProjectSkill) (repository.ProjectSkill, error) {
	for i := range m.items {
		if m.items[i].ProjectID == ps.ProjectID && m.items[i].SkillID == ps.SkillID {
			m.items[i].Importance = ps.Importance
			m.items[i].MinimumProficiency = ps.MinimumProficiency
			m.items[i].MinimumFTE = ps.MinimumFTE
			m.items[i].FTEThreshold = ps.FTEThreshold
			return m.items[i], nil
		}
	}
	return repository.ProjectSkill{}, repository.ErrProjectSkillNotFound
}

func (m *memProjectSkillRepo) Delete(_ context.Context, projectID, skillID uuid.UUID) error {
	for i := range m.items {
		if m.items[i].ProjectID == projectID && m.items[i].SkillID == skillID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrProjectSkillNotFound
}

type memAssignmentRepo struct {
	items     []repository.Assignment
	err       error
	createErr error
}

func (m *memAssignmentRepo) ListByProject(_ context.Context, projectID uuid.UUID) ([]repository.Assignment, error) {
	out := make([]repository.Assignment, 0)
	for _, a := range m.items {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	return out, m.err
}

func (m *memAssignmentRepo) ListByEmployee(_ context.Context, employeeID uuid.UUID) ([]repository.Assignment, error) {
	out := make([]repository.Assignment, 0)
	for _, a := range m.items {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, m.err
}

func (m *memAssignmentRepo) FindByID(_ context.Context, id uuid.UUID) (repository.Assignment, error) {
	for _, a := range m.items {
		if a.ID == id {
			return a, nil
		}
	}
	return repository.Assignment{}, repository.ErrAssignmentNotFound
}

func (m *memAssignmentRepo) FindByProjectAndEmployee(_ context.Context, projectID, employeeID uuid.UUID) (repository.Assignment, error) {
	for _, a := range m.items {
		if a.ProjectID == projectID && a.EmployeeID == employeeID {
			return a, nil
		}
	}
	return repository.Assignment{}, repository.ErrAssignmentNotFound
}

func (m *memAssignmentRepo) ListAll(context.Context) ([]repository.Assignment, error) {
	return m.items, m.err
}

func (m *memAssignmentRepo) ListActiveOn(context.Context, time.Time) ([]repository.Assignment, error) {
	return m.items, m.err
}

func (m *memAssignmentRepo) ListAutomaticallyAssigned(context.Context) ([]repository.Assignment, error) {
	out := make([]repository.Assignment, 0)
	for _, a := range m.items {
		if a.AutomaticallyAssigned {
			out = append(out, a)
		}
	}
	return out, m.err
}

func (m *memAssignmentRepo) Create(_ context.Context, a repository.Assignment) (repository.Assignment, error) {
	if m.createErr != nil {
		return repository.Assignment{}, m.createErr
	}
	for _, existing := range m.items {
		if existing.ProjectID == a.ProjectID && existing.EmployeeID == a.EmployeeID {
			return repository.Assignment{}, &pgconn.PgError{Code: "23505"}
		}
	}
	m.items = append(m.items, a)
	return a, nil
}

func (m *memAssignmentRepo) Update(_ context.Context, a repository.Assignment) (repository.Assignment, error) {
	for i := range m.items {
		if m.items[i].ID == a.ID {
			m.items[i].Role = a.Role
			m.items[i].AllocationPercentage = a.AllocationPercentage
			m.items[i].StartDate = a.StartDate
			m.items[i].EndDate = a.EndDate
			m.items[i].Notes = a.Notes
			return m.items[i], nil
		}
	}
	return repository.Assignment{}, repository.ErrAssignmentNotFound
}

func (m *memAssignmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrAssignmentNotFound
}

func newLoader(
	employees *memEmployeeRepo,
	employeeSkills *memEmployeeSkillRepo,
	projects *memProjectRepo,
	projectSkills *memProjectSkillRepo,
	assignments *memAssignmentRepo,
) *SnapshotLoader {
	return NewSnapshotLoader(employees, employeeSkills, projects, projectSkills, assignments)
}
