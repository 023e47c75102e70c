package allocation

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

type coverageFixture struct {
	snapshot  *Snapshot
	project   Project
	skill     ProjectSkill
	employees []Employee
}

func newCoverageFixture(t *testing.T, skill ProjectSkill, employees []Employee, allocations []int) coverageFixture {
	t.Helper()
	if len(employees) != len(allocations) {
		t.Fatalf("fixture: employees/allocations mismatch")
	}

	project := Project{ID: skill.ProjectID, Status: StatusInProgress}
	assignments := make([]Assignment, 0, len(employees))
	for i, e := range employees {
		assignments = append(assignments, Assignment{
			ID:                   uuid.New(),
			ProjectID:            project.ID,
			EmployeeID:           e.ID,
			AllocationPercentage: allocations[i],
		})
	}

	return coverageFixture{
		snapshot:  NewSnapshot(employees, []Project{project}, []ProjectSkill{skill}, assignments),
		project:   project,
		skill:     skill,
		employees: employees,
	}
}

func employeeWithSkill(skillID uuid.UUID, level int) Employee {
	return Employee{
		ID:                  uuid.New(),
		WorkingHoursPerWeek: 40,
		Skills:              []EmployeeSkill{{SkillID: skillID, ProficiencyLevel: level}},
	}
}

func TestSkillCoverage_TwoHalfFTEsCoverFully(t *testing.T) {
	skillID := uuid.New()
	skill := ProjectSkill{
		ID: uuid.New(), ProjectID: uuid.New(), SkillID: skillID, SkillName: "Go",
		Importance: 5, MinimumProficiency: intPtr(3), MinimumFTE: 1.0, FTEThreshold: 0.4,
	}
	fx := newCoverageFixture(t, skill,
		[]Employee{employeeWithSkill(skillID, 4), employeeWithSkill(skillID, 3)},
		[]int{50, 50},
	)

	d := date(2026, time.March, 1)
	got := fx.snapshot.SkillCoverage(skill, fx.snapshot.ProjectActiveAssignments(fx.project.ID, d))

	if got.ActualFTE != 1.0 {
		t.Fatalf("expected actual FTE 1.0, got %v", got.ActualFTE)
	}
	if got.FTECoveragePercentage != 100.0 {
		t.Fatalf("expected coverage 100, got %v", got.FTECoveragePercentage)
	}
	if got.ProficiencyMatchPercentage != 100.0 {
		t.Fatalf("expected proficiency match 100, got %v", got.ProficiencyMatchPercentage)
	}
	if got.CombinedScore != 100.0 {
		t.Fatalf("expected combined 100, got %v", got.CombinedScore)
	}
	if got.BestTeamProficiency == nil || *got.BestTeamProficiency != 4 {
		t.Fatalf("expected best proficiency 4, got %v", got.BestTeamProficiency)
	}
	if got.EffectiveAssignments != 2 || got.TotalAssignments != 2 {
		t.Fatalf("unexpected counts: %d/%d", got.EffectiveAssignments, got.TotalAssignments)
	}
}

func TestSkillCoverage_BelowThresholdExcluded(t *testing.T) {
	skillID := uuid.New()
	skill := ProjectSkill{
		ID: uuid.New(), ProjectID: uuid.New(), SkillID: skillID, SkillName: "Go",
		Importance: 3, MinimumFTE: 1.0, FTEThreshold: 0.4,
	}
	fx := newCoverageFixture(t, skill,
		[]Employee{employeeWithSkill(skillID, 5)},
		[]int{30},
	)

	d := date(2026, time.March, 1)
	got := fx.snapshot.SkillCoverage(skill, fx.snapshot.ProjectActiveAssignments(fx.project.ID, d))

	if got.ActualFTE != 0 {
		t.Fatalf("expected actual FTE 0, got %v", got.ActualFTE)
	}
	if got.FTECoveragePercentage != 0 {
		t.Fatalf("expected coverage 0, got %v", got.FTECoveragePercentage)
	}
	if got.EffectiveAssignments != 0 {
		t.Fatalf("expected 0 effective, got %d", got.EffectiveAssignments)
	}
	if got.TotalAssignments != 1 {
		t.Fatalf("expected 1 relevant, got %d", got.TotalAssignments)
	}
}

func TestSkillCoverage_ProficiencyGate(t *testing.T) {
	skillID := uuid.New()
	skill := ProjectSkill{
		ID: uuid.New(), ProjectID: uuid.New(), SkillID: skillID, SkillName: "Kubernetes",
		Importance: 4, MinimumProficiency: intPtr(4), MinimumFTE: 1.0, FTEThreshold: 0.4,
	}
	fx := newCoverageFixture(t, skill,
		[]Employee{employeeWithSkill(skillID, 5), employeeWithSkill(skillID, 2)},
		[]int{50, 50},
	)

	d := date(2026, time.March, 1)
	got := fx.snapshot.SkillCoverage(skill, fx.snapshot.ProjectActiveAssignments(fx.project.ID, d))

	// only the level-5 employee is effective
	if got.ActualFTE != 0.5 {
		t.Fatalf("expected actual FTE 0.5, got %v", got.ActualFTE)
	}
	if got.FTECoveragePercentage != 50.0 {
		t.Fatalf("expected coverage 50, got %v", got.FTECoveragePercentage)
	}
	if got.ProficiencyMatchPercentage != 50.0 {
		t.Fatalf("expected proficiency match 50, got %v", got.ProficiencyMatchPercentage)
	}
	if got.BestTeamProficiency == nil || *got.BestTeamProficiency != 5 {
		t.Fatalf("expected best proficiency 5, got %v", got.BestTeamProficiency)
	}
}

func TestSkillCoverage_NoProficiencyRequirement(t *testing.T) {
	skillID := uuid.New()
	skill := ProjectSkill{
		ID: uuid.New(), ProjectID: uuid.New(), SkillID: skillID, SkillName: "Docs",
		Importance: 1, MinimumFTE: 0.5, FTEThreshold: 0.4,
	}
	fx := newCoverageFixture(t, skill,
		[]Employee{employeeWithSkill(skillID, 1)},
		[]int{40},
	)

	d := date(2026, time.March, 1)
	got := fx.snapshot.SkillCoverage(skill, fx.snapshot.ProjectActiveAssignments(fx.project.ID, d))

	if got.ProficiencyMatchPercentage != 100.0 {
		t.Fatalf("expected proficiency match 100, got %v", got.ProficiencyMatchPercentage)
	}
	// 0.4 FTE against 0.5 required
	if got.FTECoveragePercentage != 80.0 {
		t.Fatalf("expected coverage 80, got %v", got.FTECoveragePercentage)
	}
}

func TestSkillCoverage_ZeroMinimumFTE(t *testing.T) {
	skillID := uuid.New()
	skill := ProjectSkill{
		ID: uuid.New(), ProjectID: uuid.New(), SkillID: skillID, SkillName: "Go",
		Importance: 1, MinimumFTE: 0, FTEThreshold: 0.4,
	}
	fx := newCoverageFixture(t, skill, []Employee{employeeWithSkill(skillID, 3)}, []int{0})

	d := date(2026, time.March, 1)
	got := fx.snapshot.SkillCoverage(skill, fx.snapshot.ProjectActiveAssignments(fx.project.ID, d))

	if got.FTECoveragePercentage != 100.0 {
		t.Fatalf("expected coverage 100 with no FTE requirement, got %v", got.FTECoveragePercentage)
	}
}

func TestSkillCoverage_CoverageCappedAt100(t *testing.T) {
	skillID := uuid.New()
	skill := ProjectSkill{
		ID: uuid.New(), ProjectID: uuid.New(), SkillID: skillID, SkillName: "Go",
		Importance: 2, MinimumFTE: 0.5, FTEThreshold: 0.4,
	}
	fx := newCoverageFixture(t, skill,
		[]Employee{employeeWithSkill(skillID, 3), employeeWithSkill(skillID, 3)},
		[]int{100, 100},
	)

	d := date(2026, time.March, 1)
	got := fx.snapshot.SkillCoverage(skill, fx.snapshot.ProjectActiveAssignments(fx.project.ID, d))

	if got.FTECoveragePercentage != 100.0 {
		t.Fatalf("expected coverage capped at 100, got %v", got.FTECoveragePercentage)
	}
	if got.ActualFTE != 2.0 {
		t.Fatalf("expected actual FTE 2.0, got %v", got.ActualFTE)
	}
}
