package allocation

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// PlannedAssignment is a proposal produced by a planner. Persistence is the
// caller's job; planners never mutate the snapshot.
type PlannedAssignment struct {
	ProjectID            uuid.UUID
	EmployeeID           uuid.UUID
	SkillID              uuid.UUID
	SkillName            string
	AllocationPercentage int
	Role                 string
	Notes                string
	CompatibilityScore   float64
}

// requiredCapacity is the allocation percentage a skill demands of an
// employee, capped at the employee's own maximum. Truncation toward zero is
// deliberate and load-bearing for reproducibility.
func requiredCapacity(e Employee, minimumFTE float64) int {
	required := int(minimumFTE * 100)
	maxPct := int(e.MaxFTE() * 100)
	if maxPct < required {
		return maxPct
	}
	return required
}

// PlanProjectAssignments greedily fills a project's skill requirements from
// employees not yet assigned to it, largest requirement first. Each
// employee is proposed for at most one skill per run. Ties on candidate
// score fall to the employee with the lowest id.
func (s *Snapshot) PlanProjectAssignments(projectID uuid.UUID, today time.Time) []PlannedAssignment {
	skills := make([]ProjectSkill, len(s.ProjectSkills(projectID)))
	copy(skills, s.ProjectSkills(projectID))
	sort.SliceStable(skills, func(i, j int) bool {
		if skills[i].MinimumFTE != skills[j].MinimumFTE {
			return skills[i].MinimumFTE > skills[j].MinimumFTE
		}
		return skills[i].SkillID.String() < skills[j].SkillID.String()
	})

	assigned := s.assignedEmployees(projectID)
	pool := make([]Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if _, ok := assigned[e.ID]; !ok {
			pool = append(pool, e)
		}
	}

	planned := make([]PlannedAssignment, 0)

	for _, ps := range skills {
		bestIdx := -1
		bestScore := 0.0

		for i, e := range pool {
			lvl, ok := s.Proficiency(e.ID, ps.SkillID)
			if !ok {
				continue
			}
			if ps.MinimumProficiency != nil && lvl < *ps.MinimumProficiency {
				continue
			}

			required := requiredCapacity(e, ps.MinimumFTE)
			available := s.AvailableCapacity(e.ID, today)
			if available < required {
				continue
			}
			if required < int(ps.FTEThreshold*100) {
				continue
			}

			score := (float64(lvl) / 5.0) * (float64(available) / 100.0)
			if bestIdx < 0 || score > bestScore {
				bestIdx = i
				bestScore = score
			}
		}

		if bestIdx < 0 {
			continue
		}

		best := pool[bestIdx]
		required := requiredCapacity(best, ps.MinimumFTE)
		if required <= 0 {
			continue
		}

		lvl, _ := s.Proficiency(best.ID, ps.SkillID)
		planned = append(planned, PlannedAssignment{
			ProjectID:            projectID,
			EmployeeID:           best.ID,
			SkillID:              ps.SkillID,
			SkillName:            ps.SkillName,
			AllocationPercentage: required,
			Role:                 "Auto-assigned for " + ps.SkillName,
			Notes:                fmt.Sprintf("Automatically assigned based on skill: %s (proficiency: %d)", ps.SkillName, lvl),
		})

		pool = append(pool[:bestIdx], pool[bestIdx+1:]...)
	}

	return planned
}

type candidatePair struct {
	projectID  uuid.UUID
	employeeID uuid.UUID
	score      CompatibilityScore
}

// PlanGlobalAssignments scores every (open project, employee) pair without
// an existing assignment, then walks the pairs best-first, tracking a
// running allocation per employee seeded from today's real totals so no
// employee is pushed past 100 within the run.
func (s *Snapshot) PlanGlobalAssignments(today time.Time) []PlannedAssignment {
	projects := make([]Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.Status.OpenForAssignment() {
			projects = append(projects, p)
		}
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].ID.String() < projects[j].ID.String()
	})

	pairs := make([]candidatePair, 0)
	for _, p := range projects {
		skills := s.ProjectSkills(p.ID)
		assigned := s.assignedEmployees(p.ID)
		for _, e := range s.employees {
			if _, ok := assigned[e.ID]; ok {
				continue
			}
			score := s.Compatibility(e, skills, today)
			if score.Total() > 0.1 {
				pairs = append(pairs, candidatePair{projectID: p.ID, employeeID: e.ID, score: score})
			}
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		ti, tj := pairs[i].score.Total(), pairs[j].score.Total()
		if ti != tj {
			return ti > tj
		}
		if pairs[i].projectID != pairs[j].projectID {
			return pairs[i].projectID.String() < pairs[j].projectID.String()
		}
		return pairs[i].employeeID.String() < pairs[j].employeeID.String()
	})

	running := make(map[uuid.UUID]int, len(s.employees))
	for _, e := range s.employees {
		running[e.ID] = s.TotalAllocation(e.ID, today)
	}

	type pairKey struct{ p, e uuid.UUID }
	plannedPairs := make(map[pairKey]struct{})
	planned := make([]PlannedAssignment, 0)

	for _, pair := range pairs {
		if _, ok := plannedPairs[pairKey{pair.projectID, pair.employeeID}]; ok {
			continue
		}

		// Best matching skill: highest proficiency among the project skills
		// the employee has; ties fall to the lowest skill id.
		skills := s.ProjectSkills(pair.projectID)
		var best *ProjectSkill
		bestLevel := 0
		for i, ps := range skills {
			lvl, ok := s.Proficiency(pair.employeeID, ps.SkillID)
			if !ok {
				continue
			}
			if best == nil || lvl > bestLevel {
				best = &skills[i]
				bestLevel = lvl
			}
		}
		if best == nil {
			continue
		}

		required := int(math.Round(best.MinimumFTE * 100))
		if running[pair.employeeID]+required > 100 {
			continue
		}
		if required < int(best.FTEThreshold*100) {
			continue
		}

		total := pair.score.Total()
		planned = append(planned, PlannedAssignment{
			ProjectID:            pair.projectID,
			EmployeeID:           pair.employeeID,
			SkillID:              best.SkillID,
			SkillName:            best.SkillName,
			AllocationPercentage: required,
			Role:                 "Auto-assigned for " + best.SkillName,
			Notes:                fmt.Sprintf("Globally auto-assigned based on compatibility score: %.2f (%s)", total, best.SkillName),
			CompatibilityScore:   total,
		})
		running[pair.employeeID] += required
		plannedPairs[pairKey{pair.projectID, pair.employeeID}] = struct{}{}
	}

	return planned
}
