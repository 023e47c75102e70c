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

var ErrAssignmentNotFound = errors.New("assignment not found")

type Assignment struct {
	ID                    uuid.UUID
	ProjectID             uuid.UUID
	EmployeeID            uuid.UUID
	Role                  *string
	AllocationPercentage  int
	StartDate             *time.Time
	EndDate               *time.Time
	Notes                 *string
	AutomaticallyAssigned bool
}

type AssignmentRepository interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]Assignment, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Assignment, error)
	FindByID(ctx context.Context, id uuid.UUID) (Assignment, error)
	FindByProjectAndEmployee(ctx context.Context, projectID, employeeID uuid.UUID) (Assignment, error)
	ListAll(ctx context.Context) ([]Assignment, error)
	ListActiveOn(ctx context.Context, date time.Time) ([]Assignment, error)
	ListAutomaticallyAssigned(ctx context.Context) ([]Assignment, error)
	Create(ctx context.Context, a Assignment) (Assignment, error)
	Update(ctx context.Context, a Assignment) (Assignment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresAssignmentRepository struct {
	db database.DB
}

func NewPostgresAssignmentRepository(db database.DB) *PostgresAssignmentRepository {
	return &PostgresAssignmentRepository{db: db}
}

const assignmentColumns = `id, project_id, employee_id, role, allocation_percentage, start_date, end_date, notes, is_automatically_assigned`

func (r *PostgresAssignmentRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]Assignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+assignmentColumns+` FROM project_assignments WHERE project_id = $1 ORDER BY employee_id ASC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAssignments(rows)
}

func (r *PostgresAssignmentRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Assignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+assignmentColumns+` FROM project_assignments WHERE employee_id = $1 ORDER BY project_id ASC`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAssignments(rows)
}

func (r *PostgresAssignmentRepository) FindByID(ctx context.Context, id uuid.UUID) (Assignment, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+assignmentColumns+` FROM project_assignments WHERE id = $1`, id)
	return scanAssignment(row)
}

func (r *PostgresAssignmentRepository) FindByProjectAndEmployee(ctx context.Context, projectID, employeeID uuid.UUID) (Assignment, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+assignmentColumns+` FROM project_assignments WHERE project_id = $1 AND employee_id = $2`,
		projectID, employeeID,
	)
	return scanAssignment(row)
}

func (r *PostgresAssignmentRepository) ListAll(ctx context.Context) ([]Assignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+assignmentColumns+` FROM project_assignments ORDER BY project_id ASC, employee_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAssignments(rows)
}

// ListActiveOn returns assignments whose date window contains the given
// date and whose project is still running. Assignments with both dates
// unset count as open-ended and always match.
func (r *PostgresAssignmentRepository) ListActiveOn(ctx context.Context, date time.Time) ([]Assignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT pa.id, pa.project_id, pa.employee_id, pa.role, pa.allocation_percentage,
		        pa.start_date, pa.end_date, pa.notes, pa.is_automatically_assigned
		 FROM project_assignments pa
		 JOIN projects p ON p.id = pa.project_id
		 WHERE p.status NOT IN ('COMPLETED', 'CANCELLED')
		   AND (
		     (pa.start_date IS NULL AND pa.end_date IS NULL)
		     OR (pa.start_date IS NOT NULL AND pa.start_date <= $1 AND (pa.end_date IS NULL OR pa.end_date >= $1))
		   )
		 ORDER BY pa.project_id ASC, pa.employee_id ASC`,
		date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAssignments(rows)
}

func (r *PostgresAssignmentRepository) ListAutomaticallyAssigned(ctx context.Context) ([]Assignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+assignmentColumns+` FROM project_assignments WHERE is_automatically_assigned = TRUE
		 ORDER BY project_id ASC, employee_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAssignments(rows)
}

func (r *PostgresAssignmentRepository) Create(ctx context.Context, a Assignment) (Assignment, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO project_assignments (id, project_id, employee_id, role, allocation_percentage, start_date, end_date, notes, is_automatically_assigned)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.ProjectID, a.EmployeeID, a.Role, a.AllocationPercentage, a.StartDate, a.EndDate, a.Notes, a.AutomaticallyAssigned,
	)
	if err != nil {
		return Assignment{}, err
	}
	return a, nil
}

func (r *PostgresAssignmentRepository) Update(ctx context.Context, a Assignment) (Assignment, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE project_assignments
		 SET role = $2, allocation_percentage = $3, start_date = $4, end_date = $5, notes = $6, updated_at = now()
		 WHERE id = $1`,
		a.ID, a.Role, a.AllocationPercentage, a.StartDate, a.EndDate, a.Notes,
	)
	if err != nil {
		return Assignment{}, err
	}
	if affected == 0 {
		return Assignment{}, ErrAssignmentNotFound
	}
	return r.FindByID(ctx, a.ID)
}

func (r *PostgresAssignmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM project_assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func scanAssignment(row database.Row) (Assignment, error) {
	var a Assignment
	if err := row.Scan(&a.ID, &a.ProjectID, &a.EmployeeID, &a.Role, &a.AllocationPercentage,
		&a.StartDate, &a.EndDate, &a.Notes, &a.AutomaticallyAssigned); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Assignment{}, ErrAssignmentNotFound
		}
		return Assignment{}, err
	}
	return a, nil
}

func collectAssignments(rows database.Rows) ([]Assignment, error) {
	out := make([]Assignment, 0)
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.EmployeeID, &a.Role, &a.AllocationPercentage,
			&a.StartDate, &a.EndDate, &a.Notes, &a.AutomaticallyAssigned); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
