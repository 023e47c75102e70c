package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillmap/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrEmployeeSkillNotFound = errors.New("employee skill not found")

type EmployeeSkill struct {
	ID               uuid.UUID
	EmployeeID       uuid.UUID
	SkillID          uuid.UUID
	SkillName        string
	ProficiencyLevel int
	Notes            *string
}

type EmployeeSkillRepository interface {
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]EmployeeSkill, error)
	FindByEmployeeAndSkill(ctx context.Context, employeeID, skillID uuid.UUID) (EmployeeSkill, error)
	ListAll(ctx context.Context) ([]EmployeeSkill, error)
	Create(ctx context.Context, es EmployeeSkill) (EmployeeSkill, error)
	Update(ctx context.Context, es EmployeeSkill) (EmployeeSkill, error)
	Delete(ctx context.Context, employeeID, skillID uuid.UUID) error
}

type PostgresEmployeeSkillRepository struct {
	db database.DB
}

func NewPostgresEmployeeSkillRepository(db database.DB) *PostgresEmployeeSkillRepository {
	return &PostgresEmployeeSkillRepository{db: db}
}

const employeeSkillSelect = `
	SELECT es.id, es.employee_id, es.skill_id, s.name, es.proficiency_level, es.notes
	FROM employee_skills es
	JOIN skills s ON s.id = es.skill_id`

func (r *PostgresEmployeeSkillRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]EmployeeSkill, error) {
	rows, err := r.db.Query(ctx,
		employeeSkillSelect+` WHERE es.employee_id = $1 ORDER BY s.name ASC`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmployeeSkills(rows)
}

func (r *PostgresEmployeeSkillRepository) FindByEmployeeAndSkill(ctx context.Context, employeeID, skillID uuid.UUID) (EmployeeSkill, error) {
	row := r.db.QueryRow(ctx,
		employeeSkillSelect+` WHERE es.employee_id = $1 AND es.skill_id = $2`,
		employeeID, skillID,
	)

	var es EmployeeSkill
	if err := row.Scan(&es.ID, &es.EmployeeID, &es.SkillID, &es.SkillName, &es.ProficiencyLevel, &es.Notes); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return EmployeeSkill{}, ErrEmployeeSkillNotFound
		}
		return EmployeeSkill{}, err
	}
	return es, nil
}

func (r *PostgresEmployeeSkillRepository) ListAll(ctx context.Context) ([]EmployeeSkill, error) {
	rows, err := r.db.Query(ctx, employeeSkillSelect+` ORDER BY es.employee_id ASC, s.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmployeeSkills(rows)
}

func (r *PostgresEmployeeSkillRepository) Create(ctx context.Context, es EmployeeSkill) (EmployeeSkill, error) {
	if es.ID == uuid.Nil {
		es.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO employee_skills (id, employee_id, skill_id, proficiency_level, notes)
		 VALUES ($1, $2, $3, $4, $5)`,
		es.ID, es.EmployeeID, es.SkillID, es.ProficiencyLevel, es.Notes,
	)
	if err != nil {
		return EmployeeSkill{}, err
	}
	return r.FindByEmployeeAndSkill(ctx, es.EmployeeID, es.SkillID)
}

func (r *PostgresEmployeeSkillRepository) Update(ctx context.Context, es EmployeeSkill) (EmployeeSkill, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE employee_skills SET proficiency_level = $3, notes = $4, updated_at = now()
		 WHERE employee_id = $1 AND skill_id = $2`,
		es.EmployeeID, es.SkillID, es.ProficiencyLevel, es.Notes,
	)
	if err != nil {
		return EmployeeSkill{}, err
	}
	if affected == 0 {
		return EmployeeSkill{}, ErrEmployeeSkillNotFound
	}
	return r.FindByEmployeeAndSkill(ctx, es.EmployeeID, es.SkillID)
}

func (r *PostgresEmployeeSkillRepository) Delete(ctx context.Context, employeeID, skillID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM employee_skills WHERE employee_id = $1 AND skill_id = $2`,
		employeeID, skillID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEmployeeSkillNotFound
	}
	return nil
}

func collectEmployeeSkills(rows database.Rows) ([]EmployeeSkill, error) {
	out := make([]EmployeeSkill, 0)
	for rows.Next() {
		var es EmployeeSkill
		if err := rows.Scan(&es.ID, &es.EmployeeID, &es.SkillID, &es.SkillName, &es.ProficiencyLevel, &es.Notes); err != nil {
			return nil, err
		}
		out = append(out, es)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
