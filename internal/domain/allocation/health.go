package allocation

import (
	"time"

	"github.com/google/uuid"
)

type ProjectHealth struct {
	ProjectID                  uuid.UUID
	FTECoveragePercentage      float64
	ProficiencyMatchPercentage float64
	OverallHealthScore         float64
	SkillCoverages             []SkillCoverage
}

// ProjectHealth aggregates skill coverage across all of a project's
// required skills. A project with no required skills is vacuously healthy.
func (s *Snapshot) ProjectHealth(projectID uuid.UUID, date time.Time) ProjectHealth {
	skills := s.ProjectSkills(projectID)
	assignments := s.ProjectActiveAssignments(projectID, date)

	coverages := make([]SkillCoverage, 0, len(skills))
	for _, ps := range skills {
		coverages = append(coverages, s.SkillCoverage(ps, assignments))
	}

	overallFTE := 100.0
	overallProficiency := 100.0
	if len(coverages) > 0 {
		fteSum := 0.0
		profSum := 0.0
		for _, c := range coverages {
			fteSum += c.FTECoveragePercentage
			profSum += c.ProficiencyMatchPercentage
		}
		overallFTE = fteSum / float64(len(coverages))
		overallProficiency = profSum / float64(len(coverages))
	}

	return ProjectHealth{
		ProjectID:                  projectID,
		FTECoveragePercentage:      overallFTE,
		ProficiencyMatchPercentage: overallProficiency,
		OverallHealthScore:         0.6*overallFTE + 0.4*overallProficiency,
		SkillCoverages:             coverages,
	}
}

type ResourceUtilization struct {
	AverageUtilization float64
	TotalEmployees     int
	OverAllocatedCount int
	UnderUtilizedCount int
	FullyUtilizedCount int
}

type OrganizationMetrics struct {
	OrganizationHealthScore *float64
	TotalActiveProjects     int
	ResourceUtilization     ResourceUtilization
}

// OrganizationMetrics combines per-project health and per-employee
// utilization for the whole snapshot. The health score is absent, not zero,
// when no project has an active assignment on the date.
func (s *Snapshot) OrganizationMetrics(date time.Time) OrganizationMetrics {
	active := make(map[uuid.UUID]struct{})
	for _, a := range s.assignments {
		if s.ActiveOn(a, date) {
			active[a.ProjectID] = struct{}{}
		}
	}

	var healthScore *float64
	if len(active) > 0 {
		sum := 0.0
		for pid := range active {
			sum += s.ProjectHealth(pid, date).OverallHealthScore
		}
		v := sum / float64(len(active))
		healthScore = &v
	}

	return OrganizationMetrics{
		OrganizationHealthScore: healthScore,
		TotalActiveProjects:     len(active),
		ResourceUtilization:     s.resourceUtilization(date),
	}
}

// resourceUtilization buckets every employee, including those with no
// assignments at all.
func (s *Snapshot) resourceUtilization(date time.Time) ResourceUtilization {
	u := ResourceUtilization{TotalEmployees: len(s.employees)}
	if len(s.employees) == 0 {
		return u
	}

	sum := 0
	for _, e := range s.employees {
		total := s.TotalAllocation(e.ID, date)
		sum += total
		switch {
		case total > 100:
			u.OverAllocatedCount++
		case total < 40:
			u.UnderUtilizedCount++
		}
		if total >= 80 && total <= 100 {
			u.FullyUtilizedCount++
		}
	}

	u.AverageUtilization = float64(sum) / float64(len(s.employees))
	return u
}
