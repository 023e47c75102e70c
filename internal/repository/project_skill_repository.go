package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillmap/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProjectSkillNotFound = errors.New("project skill not found")

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

type ProjectSkillRepository interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]ProjectSkill, error)
	FindByProjectAndSkill(ctx context.Context, projectID, skillID uuid.UUID) (ProjectSkill, error)
	ListAll(ctx context.Context) ([]ProjectSkill, error)
	Create(ctx context.Context, ps ProjectSkill) (ProjectSkill, error)
	Update(ctx context.Context, ps ProjectSkill) (ProjectSkill, error)
	Delete(ctx context.Context, projectID, skillID uuid.UUID) error
}

type PostgresProjectSkillRepository struct {
	db database.DB
}

func NewPostgresProjectSkillRepository(db database.DB) *PostgresProjectSkillRepository {
	return &PostgresProjectSkillRepository{db: db}
}

const projectSkillSelect = `
	SELECT ps.id, ps.project_id, ps.skill_id, s.name, ps.importance,
	       ps.minimum_proficiency_required, ps.minimum_fte, ps.fte_threshold
	FROM project_skills ps
	JOIN skills s ON s.id = ps.skill_id`

func (r *PostgresProjectSkillRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]ProjectSkill, error) {
	rows, err := r.db.Query(ctx,
		projectSkillSelect+` WHERE ps.project_id = $1 ORDER BY s.name ASC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjectSkills(rows)
}

func (r *PostgresProjectSkillRepository) FindByProjectAndSkill(ctx context.Context, projectID, skillID uuid.UUID) (ProjectSkill, error) {
	row := r.db.QueryRow(ctx,
		projectSkillSelect+` WHERE ps.project_id = $1 AND ps.skill_id = $2`,
		projectID, skillID,
	)

	var ps ProjectSkill
	if err := row.Scan(&ps.ID, &ps.ProjectID, &ps.SkillID, &ps.SkillName, &ps.Importance,
		&ps.MinimumProficiency, &ps.MinimumFTE, &ps.FTEThreshold); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return ProjectSkill{}, ErrProjectSkillNotFound
		}
		return ProjectSkill{}, err
	}
	return ps, nil
}

func (r *PostgresProjectSkillRepository) ListAll(ctx context.Context) ([]ProjectSkill, error) {
	rows, err := r.db.Query(ctx, projectSkillSelect+` ORDER BY ps.project_id ASC, s.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjectSkills(rows)
}

func (r *PostgresProjectSkillRepository) Create(ctx context.Context, ps ProjectSkill) (ProjectSkill, error) {
	if ps.ID == uuid.Nil {
		ps.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO project_skills (id, project_id, skill_id, importance, minimum_proficiency_required, minimum_fte, fte_threshold)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ps.ID, ps.ProjectID, ps.SkillID, ps.Importance, ps.MinimumProficiency, ps.MinimumFTE, ps.FTEThreshold,
	)
	if err != nil {
		return ProjectSkill{}, err
	}
	return r.FindByProjectAndSkill(ctx, ps.ProjectID, ps.SkillID)
}

func (r *PostgresProjectSkillRepository) Update(ctx context.Context, ps ProjectSkill) (ProjectSkill, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE project_skills
		 SET importance = $3, minimum_proficiency_required = $4, minimum_fte = $5, fte_threshold = $6, updated_at = now()
		 WHERE project_id = $1 AND skill_id = $2`,
		ps.ProjectID, ps.SkillID, ps.Importance, ps.MinimumProficiency, ps.MinimumFTE, ps.FTEThreshold,
	)
	if err != nil {
		return ProjectSkill{}, err
	}
	if affected == 0 {
		return ProjectSkill{}, ErrProjectSkillNotFound
	}
	return r.FindByProjectAndSkill(ctx, ps.ProjectID, ps.SkillID)
}

func (r *PostgresProjectSkillRepository) Delete(ctx context.Context, projectID, skillID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM project_skills WHERE project_id = $1 AND skill_id = $2`,
		projectID, skillID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProjectSkillNotFound
	}
	return nil
}

func collectProjectSkills(rows database.Rows) ([]ProjectSkill, error) {
	out := make([]ProjectSkill, 0)
	for rows.Next() {
		var ps ProjectSkill
		if err := rows.Scan(&ps.ID, &ps.ProjectID, &ps.SkillID, &ps.SkillName, &ps.Importance,
			&ps.MinimumProficiency, &ps.MinimumFTE, &ps.FTEThreshold); err != nil {
			return nil, err
		}
		out = append(out, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
