package allocation

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestPlanProjectAssignments_BasicScenario(t *testing.T) {
	// E has skill S at proficiency 4, full-time, free; P requires S with
	// minimumFTE 0.5, threshold 0.4, minimum proficiency 3. Exactly one
	// assignment at 50% must come out.
	skillID := uuid.New()
	emp := employeeWithSkill(skillID, 4)
	p := Project{ID: uuid.New(), Status: StatusPlanned}
	ps := ProjectSkill{
		ID: uuid.New(), ProjectID: p.ID, SkillID: skillID, SkillName: "Go",
		Importance: 5, MinimumProficiency: intPtr(3), MinimumFTE: 0.5, FTEThreshold: 0.4,
	}

	s := NewSnapshot([]Employee{emp}, []Project{p}, []ProjectSkill{ps}, nil)
	got := s.PlanProjectAssignments(p.ID, date(2026, time.March, 1))

	if len(got) != 1 {
		t.Fatalf("expected 1 planned assignment, got %d", len(got))
	}
	if got[0].EmployeeID != emp.ID {
		t.Fatalf("unexpected employee")
	}
	if got[0].AllocationPercentage != 50 {
		t.Fatalf("expected allocation 50, got %d", got[0].AllocationPercentage)
	}
	if got[0].Role != "Auto-assigned for Go" {
		t.Fatalf("unexpected role: %q", got[0].Role)
	}
	if !strings.Contains(got[0].Notes, "proficiency: 4") {
		t.Fatalf("expected notes to cite proficiency, got %q", got[0].Notes)
	}
}

func TestPlanProjectAssignments_EmployeeUsedOnce(t *testing.T) {
	goID := uuid.New()
	pgID := uuid.New()
	emp := Employee{
		ID:                  uuid.New(),
		WorkingHoursPerWeek: 40,
		Skills: []EmployeeSkill{
			{SkillID: goID, ProficiencyLevel: 5},
			{SkillID: pgID, ProficiencyLevel: 5},
		},
	}
	p := Project{ID: uuid.New(), Status: StatusPlanned}
	skills := []ProjectSkill{
		{ID: uuid.New(), ProjectID: p.ID, SkillID: goID, SkillName: "Go", Importance: 5, MinimumFTE: 0.5, FTEThreshold: 0.4},
		{ID: uuid.New(), ProjectID: p.ID, SkillID: pgID, SkillName: "PostgreSQL", Importance: 4, MinimumFTE: 0.4, FTEThreshold: 0.4},
	}

	s := NewSnapshot([]Employee{emp}, []Project{p}, skills, nil)
	got := s.PlanProjectAssignments(p.ID, date(2026, time.March, 1))

	if len(got) != 1 {
		t.Fatalf("expected 1 planned assignment (employee used once), got %d", len(got))
	}
	// largest minimumFTE first
	if got[0].SkillName != "Go" {
		t.Fatalf("expected Go filled first, got %s", got[0].SkillName)
	}
}

func TestPlanProjectAssignments_SkipsBelowThreshold(t *testing.T) {
	skillID := uuid.New()
	emp := employeeWithSkill(skillID, 5)
	p := Project{ID: uuid.New(), Status: StatusPlanned}
	// minimumFTE below the threshold: an allocation this small would never
	// count as effective, so nothing may be proposed
	ps := ProjectSkill{
		ID: uuid.New(), ProjectID: p.ID, SkillID: skillID, SkillName: "Go",
		Importance: 2, MinimumFTE: 0.2, FTEThreshold: 0.4,
	}

	s := NewSnapshot([]Employee{emp}, []Project{p}, []ProjectSkill{ps}, nil)
	if got := s.PlanProjectAssignments(p.ID, date(2026, time.March, 1)); len(got) != 0 {
		t.Fatalf("expected no assignments, got %d", len(got))
	}
}

func TestPlanProjectAssignments_RespectsCapacityAndProficiency(t *testing.T) {
	skillID := uuid.New()
	busy := employeeWithSkill(skillID, 5)
	junior := employeeWithSkill(skillID, 2)

	other := Project{ID: uuid.New(), Status: StatusInProgress}
	p := Project{ID: uuid.New(), Status: StatusPlanned}
	ps := ProjectSkill{
		ID: uuid.New(), ProjectID: p.ID, SkillID: skillID, SkillName: "Go",
		Importance: 5, MinimumProficiency: intPtr(3), MinimumFTE: 0.5, FTEThreshold: 0.4,
	}
	// busy employee has only 30% free
	assignments := []Assignment{
		{ID: uuid.New(), ProjectID: other.ID, EmployeeID: busy.ID, AllocationPercentage: 70},
	}

	s := NewSnapshot([]Employee{busy, junior}, []Project{p, other}, []ProjectSkill{ps}, assignments)
	if got := s.PlanProjectAssignments(p.ID, date(2026, time.March, 1)); len(got) != 0 {
		t.Fatalf("expected no assignments, got %d", len(got))
	}
}

func TestPlanProjectAssignments_PicksHighestScore(t *testing.T) {
	skillID := uuid.New()
	expert := employeeWithSkill(skillID, 5)
	novice := employeeWithSkill(skillID, 3)
	p := Project{ID: uuid.New(), Status: StatusPlanned}
	ps := ProjectSkill{
		ID: uuid.New(), ProjectID: p.ID, SkillID: skillID, SkillName: "Go",
		Importance: 5, MinimumFTE: 1.0, FTEThreshold: 0.4,
	}

	s := NewSnapshot([]Employee{novice, expert}, []Project{p}, []ProjectSkill{ps}, nil)
	got := s.PlanProjectAssignments(p.ID, date(2026, time.March, 1))

	if len(got) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(got))
	}
	if got[0].EmployeeID != expert.ID {
		t.Fatalf("expected the higher-proficiency employee to win")
	}
}

func TestPlanProjectAssignments_PartTimeCappedByMaxFTE(t *testing.T) {
	skillID := uuid.New()
	partTime := Employee{
		ID:                  uuid.New(),
		WorkingHoursPerWeek: 20,
		Skills:              []EmployeeSkill{{SkillID: skillID, ProficiencyLevel: 5}},
	}
	p := Project{ID: uuid.New(), Status: StatusPlanned}
	ps := ProjectSkill{
		ID: uuid.New(), ProjectID: p.ID, SkillID: skillID, SkillName: "Go",
		Importance: 5, MinimumFTE: 1.0, FTEThreshold: 0.4,
	}

	s := NewSnapshot([]Employee{partTime}, []Project{p}, []ProjectSkill{ps}, nil)
	got := s.PlanProjectAssignments(p.ID, date(2026, time.March, 1))

	if len(got) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(got))
	}
	if got[0].AllocationPercentage != 50 {
		t.Fatalf("expected allocation capped at 50, got %d", got[0].AllocationPercentage)
	}
}

func TestPlanGlobalAssignments_NeverExceeds100(t *testing.T) {
	skillID := uuid.New()
	emp := employeeWithSkill(skillID, 5)

	var projects []Project
	var skills []ProjectSkill
	for i := 0; i < 3; i++ {
		p := Project{ID: uuid.New(), Status: StatusPlanned}
		projects = append(projects, p)
		skills = append(skills, ProjectSkill{
			ID: uuid.New(), ProjectID: p.ID, SkillID: skillID, SkillName: "Go",
			Importance: 5, MinimumFTE: 0.4, FTEThreshold: 0.4,
		})
	}

	s := NewSnapshot([]Employee{emp}, projects, skills, nil)
	got := s.PlanGlobalAssignments(date(2026, time.March, 1))

	// 0.4 FTE each: two fit inside 100%, the third must be rejected
	if len(got) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(got))
	}
	total := 0
	for _, pa := range got {
		total += pa.AllocationPercentage
	}
	if total > 100 {
		t.Fatalf("expected total allocation <= 100, got %d", total)
	}
}

func TestPlanGlobalAssignments_SkipsClosedProjects(t *testing.T) {
	skillID := uuid.New()
	emp := employeeWithSkill(skillID, 5)
	done := Project{ID: uuid.New(), Status: StatusCompleted}
	hold := Project{ID: uuid.New(), Status: StatusOnHold}
	skills := []ProjectSkill{
		{ID: uuid.New(), ProjectID: done.ID, SkillID: skillID, SkillName: "Go", Importance: 5, MinimumFTE: 0.5, FTEThreshold: 0.4},
		{ID: uuid.New(), ProjectID: hold.ID, SkillID: skillID, SkillName: "Go", Importance: 5, MinimumFTE: 0.5, FTEThreshold: 0.4},
	}

	s := NewSnapshot([]Employee{emp}, []Project{done, hold}, skills, nil)
	if got := s.PlanGlobalAssignments(date(2026, time.March, 1)); len(got) != 0 {
		t.Fatalf("expected no assignments for closed/on-hold projects, got %d", len(got))
	}
}

func TestPlanGlobalAssignments_SkipsExistingPairs(t *testing.T) {
	skillID := uuid.New()
	emp := employeeWithSkill(skillID, 5)
	p := Project{ID: uuid.New(), Status: StatusInProgress}
	skills := []ProjectSkill{
		{ID: uuid.New(), ProjectID: p.ID, SkillID: skillID, SkillName: "Go", Importance: 5, MinimumFTE: 0.5, FTEThreshold: 0.4},
	}
	existing := []Assignment{
		{ID: uuid.New(), ProjectID: p.ID, EmployeeID: emp.ID, AllocationPercentage: 20},
	}

	s := NewSnapshot([]Employee{emp}, []Project{p}, skills, existing)
	if got := s.PlanGlobalAssignments(date(2026, time.March, 1)); len(got) != 0 {
		t.Fatalf("expected no assignments for already-assigned pair, got %d", len(got))
	}
}

func TestPlanGlobalAssignments_PrefersBestPair(t *testing.T) {
	skillID := uuid.New()
	expert := employeeWithSkill(skillID, 5)
	novice := employeeWithSkill(skillID, 1)
	p := Project{ID: uuid.New(), Status: StatusPlanned}
	skills := []ProjectSkill{
		{ID: uuid.New(), ProjectID: p.ID, SkillID: skillID, SkillName: "Go", Importance: 5, MinimumFTE: 1.0, FTEThreshold: 0.4},
	}

	s := NewSnapshot([]Employee{novice, expert}, []Project{p}, skills, nil)
	got := s.PlanGlobalAssignments(date(2026, time.March, 1))

	if len(got) == 0 {
		t.Fatalf("expected at least one assignment")
	}
	if got[0].EmployeeID != expert.ID {
		t.Fatalf("expected the expert ranked first")
	}
	if got[0].AllocationPercentage != 100 {
		t.Fatalf("expected allocation 100, got %d", got[0].AllocationPercentage)
	}
	if !strings.Contains(got[0].Notes, "compatibility score") {
		t.Fatalf("expected notes to cite compatibility, got %q", got[0].Notes)
	}
}

func TestCompatibility_Components(t *testing.T) {
	goID := uuid.New()
	pgID := uuid.New()
	jsID := uuid.New()
	emp := Employee{
		ID:                  uuid.New(),
		WorkingHoursPerWeek: 40,
		Skills: []EmployeeSkill{
			{SkillID: goID, ProficiencyLevel: 5},
			{SkillID: jsID, ProficiencyLevel: 2},
		},
	}
	p := Project{ID: uuid.New(), Status: StatusPlanned}
	skills := []ProjectSkill{
		{ID: uuid.New(), ProjectID: p.ID, SkillID: goID, SkillName: "Go", Importance: 5, MinimumFTE: 1.0, FTEThreshold: 0.4},
		{ID: uuid.New(), ProjectID: p.ID, SkillID: pgID, SkillName: "PostgreSQL", Importance: 4, MinimumFTE: 1.0, FTEThreshold: 0.4},
	}

	s := NewSnapshot([]Employee{emp}, []Project{p}, skills, nil)
	got := s.Compatibility(emp, skills, date(2026, time.March, 1))

	if got.Coverage != 0.5 {
		t.Fatalf("expected coverage 0.5, got %v", got.Coverage)
	}
	if got.Quality != 1.0 {
		t.Fatalf("expected quality 1.0, got %v", got.Quality)
	}
	if got.Utilization != 0.5 {
		t.Fatalf("expected utilization 0.5, got %v", got.Utilization)
	}
	if got.Availability != 1.0 {
		t.Fatalf("expected availability 1.0, got %v", got.Availability)
	}
	want := 0.4*0.5 + 0.4*1.0 + 0.1*0.5 + 0.1*1.0
	if got.Total() != want {
		t.Fatalf("expected total %v, got %v", want, got.Total())
	}
}

func TestCompatibility_NoProjectSkills(t *testing.T) {
	emp := employeeWithSkill(uuid.New(), 5)
	s := NewSnapshot([]Employee{emp}, nil, nil, nil)

	got := s.Compatibility(emp, nil, date(2026, time.March, 1))
	if got.Total() != 0 {
		t.Fatalf("expected zero score, got %v", got.Total())
	}
}

func TestCompatibility_BelowMinimumProficiencyScoresZeroQuality(t *testing.T) {
	skillID := uuid.New()
	emp := employeeWithSkill(skillID, 2)
	p := Project{ID: uuid.New(), Status: StatusPlanned}
	skills := []ProjectSkill{
		{ID: uuid.New(), ProjectID: p.ID, SkillID: skillID, SkillName: "Go", Importance: 5, MinimumProficiency: intPtr(4), MinimumFTE: 1.0, FTEThreshold: 0.4},
	}

	s := NewSnapshot([]Employee{emp}, []Project{p}, skills, nil)
	got := s.Compatibility(emp, skills, date(2026, time.March, 1))

	if got.Quality != 0 {
		t.Fatalf("expected quality 0 below the proficiency gate, got %v", got.Quality)
	}
	if got.Coverage != 1.0 {
		t.Fatalf("expected coverage 1.0, got %v", got.Coverage)
	}
}
