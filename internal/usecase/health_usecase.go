package usecase

import (
	"context"
	"log"
	"time"

	"skillmap/internal/repository"

	"github.com/google/uuid"
)

type SkillCoverageResult struct {
	SkillID                    uuid.UUID `json:"skill_id"`
	SkillName                  string    `json:"skill_name"`
	FTECoveragePercentage      float64   `json:"fte_coverage_percentage"`
	ProficiencyMatchPercentage float64   `json:"proficiency_match_percentage"`
	CombinedScore              float64   `json:"combined_score"`
	RequiredFTE                float64   `json:"required_fte"`
	ActualFTE                  float64   `json:"actual_fte"`
	FTEThreshold               float64   `json:"fte_threshold"`
	RequiredProficiency        *int      `json:"required_proficiency"`
	BestTeamProficiency        *int      `json:"best_team_proficiency"`
	EffectiveAssignments       int       `json:"effective_assignments"`
	TotalAssignments           int       `json:"total_assignments"`
}

type ProjectHealthResult struct {
	ProjectID                  uuid.UUID             `json:"project_id"`
	Date                       string                `json:"date"`
	FTECoveragePercentage      float64               `json:"fte_coverage_percentage"`
	ProficiencyMatchPercentage float64               `json:"proficiency_match_percentage"`
	OverallHealthScore         float64               `json:"overall_health_score"`
	SkillCoverages             []SkillCoverageResult `json:"skill_coverages"`
}

type ProjectHealthUsecase interface {
	CalculateProjectHealth(ctx context.Context, projectID uuid.UUID, date time.Time) (ProjectHealthResult, error)
}

type ProjectHealthCalc struct {
	projects repository.ProjectRepository
	snapshot *SnapshotLoader
	cache    ResultCache
	logger   *log.Logger
}

func NewProjectHealthUsecase(
	projects repository.ProjectRepository,
	snapshot *SnapshotLoader,
	cache ResultCache,
	logger *log.Logger,
) *ProjectHealthCalc {
	return &ProjectHealthCalc{projects: projects, snapshot: snapshot, cache: cache, logger: logger}
}

func (u *ProjectHealthCalc) CalculateProjectHealth(ctx context.Context, projectID uuid.UUID, date time.Time) (ProjectHealthResult, error) {
	if projectID == uuid.Nil {
		return ProjectHealthResult{}, ErrInvalidInput
	}

	exists, err := u.projects.ExistsByID(ctx, projectID)
	if err != nil {
		return ProjectHealthResult{}, ErrInternal
	}
	if !exists {
		return ProjectHealthResult{}, ErrProjectNotFound
	}

	key := projectHealthCacheKey(projectID.String(), date)
	if u.cache != nil {
		var cached ProjectHealthResult
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	snap, err := u.snapshot.Load(ctx)
	if err != nil {
		return ProjectHealthResult{}, ErrInternal
	}

	health := snap.ProjectHealth(projectID, date)
	coverages := make([]SkillCoverageResult, 0, len(health.SkillCoverages))
	for _, c := range health.SkillCoverages {
		coverages = append(coverages, SkillCoverageResult{
			SkillID:                    c.SkillID,
			SkillName:                  c.SkillName,
			FTECoveragePercentage:      c.FTECoveragePercentage,
			ProficiencyMatchPercentage: c.ProficiencyMatchPercentage,
			CombinedScore:              c.CombinedScore,
			RequiredFTE:                c.RequiredFTE,
			ActualFTE:                  c.ActualFTE,
			FTEThreshold:               c.FTEThreshold,
			RequiredProficiency:        c.RequiredProficiency,
			BestTeamProficiency:        c.BestTeamProficiency,
			EffectiveAssignments:       c.EffectiveAssignments,
			TotalAssignments:           c.TotalAssignments,
		})
	}

	result := ProjectHealthResult{
		ProjectID:                  projectID,
		Date:                       date.Format("2006-01-02"),
		FTECoveragePercentage:      health.FTECoveragePercentage,
		ProficiencyMatchPercentage: health.ProficiencyMatchPercentage,
		OverallHealthScore:         health.OverallHealthScore,
		SkillCoverages:             coverages,
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, result, allocationCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("health cache write failed: %v", err)
		}
	}

	return result, nil
}
