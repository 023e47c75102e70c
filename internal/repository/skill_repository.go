package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillmap/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSkillNotFound = errors.New("skill not found")

type Skill struct {
	ID          uuid.UUID
	Name        string
	Category    *string
	Description *string
}

type SkillRepository interface {
	List(ctx context.Context) ([]Skill, error)
	FindByID(ctx context.Context, id uuid.UUID) (Skill, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, s Skill) (Skill, error)
	Update(ctx context.Context, s Skill) (Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) List(ctx context.Context) ([]Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, category, description FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Description); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) FindByID(ctx context.Context, id uuid.UUID) (Skill, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, category, description FROM skills WHERE id = $1`, id)

	var s Skill
	if err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Description); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Skill{}, ErrSkillNotFound
		}
		return Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s Skill) (Skill, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO skills (id, name, category, description) VALUES ($1, $2, $3, $4)`,
		s.ID, s.Name, s.Category, s.Description,
	)
	if err != nil {
		return Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) Update(ctx context.Context, s Skill) (Skill, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE skills SET name = $2, category = $3, description = $4, updated_at = now() WHERE id = $1`,
		s.ID, s.Name, s.Category, s.Description,
	)
	if err != nil {
		return Skill{}, err
	}
	if affected == 0 {
		return Skill{}, ErrSkillNotFound
	}
	return s, nil
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSkillNotFound
	}
	return nil
}
