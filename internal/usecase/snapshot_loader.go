package usecase

import (
	"context"

	"skillmap/internal/domain/allocation"
	"skillmap/internal/repository"

	"github.com/google/uuid"
)

// SnapshotLoader assembles the immutable organization view the allocation
// engine computes over. Five reads up front, no storage access afterwards.
type SnapshotLoader struct {
	employees     repository.EmployeeRepository
	employeeSkill repository.EmployeeSkillRepository
	projects      repository.ProjectRepository
	projectSkills repository.ProjectSkillRepository
	assignments   repository.AssignmentRepository
}

func NewSnapshotLoader(
	employees repository.EmployeeRepository,
	employeeSkill repository.EmployeeSkillRepository,
	projects repository.ProjectRepository,
	projectSkills repository.ProjectSkillRepository,
	assignments repository.AssignmentRepository,
) *SnapshotLoader {
	return &SnapshotLoader{
		employees:     employees,
		employeeSkill: employeeSkill,
		projects:      projects,
		projectSkills: projectSkills,
		assignments:   assignments,
	}
}

func (l *SnapshotLoader) Load(ctx context.Context) (*allocation.Snapshot, error) {
	employees, err := l.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	employeeSkills, err := l.employeeSkill.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := l.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	projectSkills, err := l.projectSkills.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := l.assignments.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	skillsByEmployee := make(map[uuid.UUID][]allocation.EmployeeSkill, len(employees))
	for _, es := range employeeSkills {
		skillsByEmployee[es.EmployeeID] = append(skillsByEmployee[es.EmployeeID], allocation.EmployeeSkill{
			SkillID:          es.SkillID,
			ProficiencyLevel: es.ProficiencyLevel,
		})
	}

	snapEmployees := make([]allocation.Employee, 0, len(employees))
	for _, e := range employees {
		snapEmployees = append(snapEmployees, allocation.Employee{
			ID:                  e.ID,
			WorkingHoursPerWeek: e.WorkingHoursPerWeek,
			Skills:              skillsByEmployee[e.ID],
		})
	}

	snapProjects := make([]allocation.Project, 0, len(projects))
	for _, p := range projects {
		snapProjects = append(snapProjects, allocation.Project{
			ID:     p.ID,
			Status: allocation.Status(p.Status),
		})
	}

	snapSkills := make([]allocation.ProjectSkill, 0, len(projectSkills))
	for _, ps := range projectSkills {
		snapSkills = append(snapSkills, allocation.ProjectSkill{
			ID:                 ps.ID,
			ProjectID:          ps.ProjectID,
			SkillID:            ps.SkillID,
			SkillName:          ps.SkillName,
			Importance:         ps.Importance,
			MinimumProficiency: ps.MinimumProficiency,
			MinimumFTE:         ps.MinimumFTE,
			FTEThreshold:       ps.FTEThreshold,
		})
	}

	snapAssignments := make([]allocation.Assignment, 0, len(assignments))
	for _, a := range assignments {
		snapAssignments = append(snapAssignments, allocation.Assignment{
			ID:                      a.ID,
			ProjectID:               a.ProjectID,
			EmployeeID:              a.EmployeeID,
			AllocationPercentage:    a.AllocationPercentage,
			StartDate:               a.StartDate,
			EndDate:                 a.EndDate,
			IsAutomaticallyAssigned: a.AutomaticallyAssigned,
		})
	}

	return allocation.NewSnapshot(snapEmployees, snapProjects, snapSkills, snapAssignments), nil
}
