package allocation

import "time"

// CompatibilityScore ranks an (employee, project) pair for global
// auto-assignment. All components are 0.0-1.0 except Availability, which
// goes negative for over-allocated employees.
type CompatibilityScore struct {
	Coverage     float64
	Quality      float64
	Utilization  float64
	Availability float64
}

func (c CompatibilityScore) Total() float64 {
	return 0.4*c.Coverage + 0.4*c.Quality + 0.1*c.Utilization + 0.1*c.Availability
}

// Compatibility scores one employee against one project's skill
// requirements. A project with no required skills scores zero everywhere.
func (s *Snapshot) Compatibility(e Employee, projectSkills []ProjectSkill, date time.Time) CompatibilityScore {
	if len(projectSkills) == 0 {
		return CompatibilityScore{}
	}

	matched := make([]ProjectSkill, 0, len(projectSkills))
	for _, ps := range projectSkills {
		if _, ok := s.Proficiency(e.ID, ps.SkillID); ok {
			matched = append(matched, ps)
		}
	}

	coverage := float64(len(matched)) / float64(len(projectSkills))

	quality := 0.0
	if len(matched) > 0 {
		sum := 0.0
		for _, ps := range matched {
			lvl, _ := s.Proficiency(e.ID, ps.SkillID)
			if ps.MinimumProficiency == nil || lvl >= *ps.MinimumProficiency {
				sum += float64(lvl) / 5.0
			}
		}
		quality = sum / float64(len(matched))
	}

	utilization := 0.0
	if len(e.Skills) > 0 {
		utilization = float64(len(matched)) / float64(len(e.Skills))
	}

	availability := float64(s.AvailableCapacity(e.ID, date)) / 100.0

	return CompatibilityScore{
		Coverage:     coverage,
		Quality:      quality,
		Utilization:  utilization,
		Availability: availability,
	}
}
