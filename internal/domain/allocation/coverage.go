package allocation

import (
	"math"

	"github.com/google/uuid"
)

type SkillCoverage struct {
	SkillID                    uuid.UUID
	SkillName                  string
	FTECoveragePercentage      float64
	ProficiencyMatchPercentage float64
	CombinedScore              float64
	RequiredFTE                float64
	ActualFTE                  float64
	FTEThreshold               float64
	RequiredProficiency        *int
	BestTeamProficiency        *int
	EffectiveAssignments       int
	TotalAssignments           int
}

// SkillCoverage scores one project skill requirement against the project's
// assignments active on the evaluation date.
//
// relevant:    assignments whose employee has the skill at any proficiency
// fteEligible: relevant assignments at or above the per-assignment FTE threshold
// effective:   fteEligible assignments meeting the proficiency gate, if one is set
func (s *Snapshot) SkillCoverage(ps ProjectSkill, assignments []Assignment) SkillCoverage {
	relevant := make([]Assignment, 0, len(assignments))
	for _, a := range assignments {
		if _, ok := s.Proficiency(a.EmployeeID, ps.SkillID); ok {
			relevant = append(relevant, a)
		}
	}

	fteEligible := make([]Assignment, 0, len(relevant))
	for _, a := range relevant {
		if float64(a.AllocationPercentage)/100.0 >= ps.FTEThreshold {
			fteEligible = append(fteEligible, a)
		}
	}

	effective := fteEligible
	if ps.MinimumProficiency != nil {
		effective = make([]Assignment, 0, len(fteEligible))
		for _, a := range fteEligible {
			lvl, _ := s.Proficiency(a.EmployeeID, ps.SkillID)
			if lvl >= *ps.MinimumProficiency {
				effective = append(effective, a)
			}
		}
	}

	actualFTE := 0.0
	for _, a := range effective {
		actualFTE += float64(a.AllocationPercentage) / 100.0
	}

	fteCoverage := 100.0
	if ps.MinimumFTE > 0 {
		fteCoverage = math.Min(100.0, actualFTE/ps.MinimumFTE*100.0)
	}

	var proficiencyMatch float64
	switch {
	case ps.MinimumProficiency == nil:
		proficiencyMatch = 100.0
	case len(fteEligible) == 0:
		proficiencyMatch = 0.0
	default:
		proficiencyMatch = float64(len(effective)) / float64(len(fteEligible)) * 100.0
	}

	var bestProficiency *int
	for _, a := range effective {
		lvl, _ := s.Proficiency(a.EmployeeID, ps.SkillID)
		if bestProficiency == nil || lvl > *bestProficiency {
			v := lvl
			bestProficiency = &v
		}
	}

	return SkillCoverage{
		SkillID:                    ps.SkillID,
		SkillName:                  ps.SkillName,
		FTECoveragePercentage:      fteCoverage,
		ProficiencyMatchPercentage: proficiencyMatch,
		CombinedScore:              0.6*fteCoverage + 0.4*proficiencyMatch,
		RequiredFTE:                ps.MinimumFTE,
		ActualFTE:                  actualFTE,
		FTEThreshold:               ps.FTEThreshold,
		RequiredProficiency:        ps.MinimumProficiency,
		BestTeamProficiency:        bestProficiency,
		EffectiveAssignments:       len(effective),
		TotalAssignments:           len(relevant),
	}
}
