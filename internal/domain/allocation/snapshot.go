package allocation

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPlanned    Status = "PLANNED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusOnHold     Status = "ON_HOLD"
	StatusCancelled  Status = "CANCELLED"
)

// Closed projects never contribute active assignments.
func (s Status) Closed() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// OpenForAssignment marks the statuses the global planner considers.
func (s Status) OpenForAssignment() bool {
	return s == StatusPlanned || s == StatusInProgress
}

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusOnHold, StatusCancelled:
		return true
	}
	return false
}

type Employee struct {
	ID                  uuid.UUID
	WorkingHoursPerWeek int
	Skills              []EmployeeSkill
}

// MaxFTE is derived from working hours against a standard 40-hour week.
func (e Employee) MaxFTE() float64 {
	return float64(e.WorkingHoursPerWeek) / 40.0
}

type EmployeeSkill struct {
	SkillID          uuid.UUID
	ProficiencyLevel int
}

type Project struct {
	ID     uuid.UUID
	Status Status
}

type ProjectSkill struct {
	ID                 uuid.UUID
	ProjectID          uuid.UUID
	SkillID            uuid.UUID
	SkillName          string
	Importance         int
	MinimumProficiency *int
	MinimumFTE         float64
	FTEThreshold       float64
}

type Assignment struct {
	ID                      uuid.UUID
	ProjectID               uuid.UUID
	EmployeeID              uuid.UUID
	AllocationPercentage    int
	StartDate               *time.Time
	EndDate                 *time.Time
	IsAutomaticallyAssigned bool
}

// activeInWindow applies the date predicate only; project status is layered
// on by Snapshot.ActiveOn. A nil start with a non-nil end is never active.
func (a Assignment) activeInWindow(date time.Time) bool {
	if a.StartDate == nil && a.EndDate == nil {
		return true
	}
	if a.StartDate == nil || a.StartDate.After(date) {
		return false
	}
	return a.EndDate == nil || !a.EndDate.Before(date)
}

type skillKey struct {
	employeeID uuid.UUID
	skillID    uuid.UUID
}

// Snapshot is an immutable view of the organization loaded up front. All
// engine computations read from it and never reach back to storage, so a
// run is reproducible for a fixed snapshot.
type Snapshot struct {
	employees     []Employee
	projects      map[uuid.UUID]Project
	projectSkills map[uuid.UUID][]ProjectSkill
	assignments   []Assignment
	proficiency   map[skillKey]int
}

func NewSnapshot(employees []Employee, projects []Project, skills []ProjectSkill, assignments []Assignment) *Snapshot {
	s := &Snapshot{
		employees:     make([]Employee, len(employees)),
		projects:      make(map[uuid.UUID]Project, len(projects)),
		projectSkills: make(map[uuid.UUID][]ProjectSkill),
		assignments:   make([]Assignment, len(assignments)),
		proficiency:   make(map[skillKey]int),
	}

	copy(s.employees, employees)
	sort.Slice(s.employees, func(i, j int) bool {
		return s.employees[i].ID.String() < s.employees[j].ID.String()
	})

	for _, p := range projects {
		s.projects[p.ID] = p
	}

	for _, ps := range skills {
		s.projectSkills[ps.ProjectID] = append(s.projectSkills[ps.ProjectID], ps)
	}
	for pid := range s.projectSkills {
		list := s.projectSkills[pid]
		sort.Slice(list, func(i, j int) bool {
			return list[i].SkillID.String() < list[j].SkillID.String()
		})
	}

	copy(s.assignments, assignments)

	for _, e := range s.employees {
		for _, es := range e.Skills {
			s.proficiency[skillKey{employeeID: e.ID, skillID: es.SkillID}] = es.ProficiencyLevel
		}
	}

	return s
}

// Employees returns all employees sorted by id; iteration order is the
// deterministic tie-break everywhere a best candidate is selected.
func (s *Snapshot) Employees() []Employee {
	return s.employees
}

func (s *Snapshot) Project(id uuid.UUID) (Project, bool) {
	p, ok := s.projects[id]
	return p, ok
}

func (s *Snapshot) ProjectSkills(projectID uuid.UUID) []ProjectSkill {
	return s.projectSkills[projectID]
}

func (s *Snapshot) Proficiency(employeeID, skillID uuid.UUID) (int, bool) {
	lvl, ok := s.proficiency[skillKey{employeeID: employeeID, skillID: skillID}]
	return lvl, ok
}

// ActiveOn reports whether the assignment counts on the given date: the
// date window matches and the owning project is not COMPLETED/CANCELLED.
func (s *Snapshot) ActiveOn(a Assignment, date time.Time) bool {
	if !a.activeInWindow(date) {
		return false
	}
	p, ok := s.projects[a.ProjectID]
	if !ok {
		return false
	}
	return !p.Status.Closed()
}

func (s *Snapshot) ActiveAssignments(employeeID uuid.UUID, date time.Time) []Assignment {
	out := make([]Assignment, 0)
	for _, a := range s.assignments {
		if a.EmployeeID == employeeID && s.ActiveOn(a, date) {
			out = append(out, a)
		}
	}
	return out
}

func (s *Snapshot) ProjectActiveAssignments(projectID uuid.UUID, date time.Time) []Assignment {
	out := make([]Assignment, 0)
	for _, a := range s.assignments {
		if a.ProjectID == projectID && s.ActiveOn(a, date) {
			out = append(out, a)
		}
	}
	return out
}

// TotalAllocation sums allocation percentages over active assignments. It
// has no upper bound; values over 100 signal over-allocation.
func (s *Snapshot) TotalAllocation(employeeID uuid.UUID, date time.Time) int {
	total := 0
	for _, a := range s.assignments {
		if a.EmployeeID == employeeID && s.ActiveOn(a, date) {
			total += a.AllocationPercentage
		}
	}
	return total
}

// AvailableCapacity may be negative for over-allocated employees.
func (s *Snapshot) AvailableCapacity(employeeID uuid.UUID, date time.Time) int {
	return 100 - s.TotalAllocation(employeeID, date)
}

// assignedEmployees returns the employee ids holding any assignment row to
// the project, regardless of dates or status. Uniqueness of
// (project, employee) is judged on existence, not activity.
func (s *Snapshot) assignedEmployees(projectID uuid.UUID) map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{})
	for _, a := range s.assignments {
		if a.ProjectID == projectID {
			out[a.EmployeeID] = struct{}{}
		}
	}
	return out
}
