package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"skillmap/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProjectNotFound = errors.New("project not found")

type Project struct {
	ID          uuid.UUID
	Name        string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
	Status      string
}

type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	ListByStatus(ctx context.Context, status string) ([]Project, error)
	FindByID(ctx context.Context, id uuid.UUID) (Project, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, p Project) (Project, error)
	Update(ctx context.Context, p Project) (Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectColumns = `id, name, description, start_date, end_date, budget, status`

func (r *PostgresProjectRepository) List(ctx context.Context) ([]Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

func (r *PostgresProjectRepository) ListByStatus(ctx context.Context, status string) ([]Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE status = $1 ORDER BY name ASC`,
		status,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

func (r *PostgresProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (Project, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)

	var p Project
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate, &p.Budget, &p.Status); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Project{}, ErrProjectNotFound
		}
		return Project{}, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresProjectRepository) Create(ctx context.Context, p Project) (Project, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO projects (id, name, description, start_date, end_date, budget, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Name, p.Description, p.StartDate, p.EndDate, p.Budget, p.Status,
	)
	if err != nil {
		return Project{}, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) Update(ctx context.Context, p Project) (Project, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE projects
		 SET name = $2, description = $3, start_date = $4, end_date = $5, budget = $6, status = $7, updated_at = now()
		 WHERE id = $1`,
		p.ID, p.Name, p.Description, p.StartDate, p.EndDate, p.Budget, p.Status,
	)
	if err != nil {
		return Project{}, err
	}
	if affected == 0 {
		return Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (r *PostgresProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func collectProjects(rows database.Rows) ([]Project, error) {
	out := make([]Project, 0)
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate, &p.Budget, &p.Status); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
