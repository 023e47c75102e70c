package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillmap/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type Employee struct {
	ID                  uuid.UUID
	FirstName           string
	LastName            string
	Email               string
	Position            *string
	Department          *string
	WorkingHoursPerWeek int
}

type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id uuid.UUID) (Employee, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	SearchByName(ctx context.Context, query string) ([]Employee, error)
	ListBySkillWithMinimumLevel(ctx context.Context, skillID uuid.UUID, minimumLevel int) ([]Employee, error)
	ListNotAssignedToProject(ctx context.Context, projectID uuid.UUID) ([]Employee, error)
	Create(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresEmployeeRepository struct {
	db database.DB
}

func NewPostgresEmployeeRepository(db database.DB) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

const employeeColumns = `id, first_name, last_name, email, position, department, working_hours_per_week`

func scanEmployee(row database.Row) (Employee, error) {
	var e Employee
	err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Position, &e.Department, &e.WorkingHoursPerWeek)
	return e, err
}

func (r *PostgresEmployeeRepository) List(ctx context.Context) ([]Employee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+employeeColumns+` FROM employees ORDER BY last_name ASC, first_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmployees(rows)
}

func (r *PostgresEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Employee{}, ErrEmployeeNotFound
		}
		return Employee{}, err
	}
	return e, nil
}

func (r *PostgresEmployeeRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresEmployeeRepository) SearchByName(ctx context.Context, query string) ([]Employee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+employeeColumns+` FROM employees
		 WHERE first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%'
		 ORDER BY last_name ASC, first_name ASC`,
		query,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmployees(rows)
}

func (r *PostgresEmployeeRepository) ListBySkillWithMinimumLevel(ctx context.Context, skillID uuid.UUID, minimumLevel int) ([]Employee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+prefixedEmployeeColumns("e")+` FROM employees e
		 JOIN employee_skills es ON es.employee_id = e.id
		 WHERE es.skill_id = $1 AND es.proficiency_level >= $2
		 ORDER BY es.proficiency_level DESC, e.last_name ASC`,
		skillID, minimumLevel,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmployees(rows)
}

func (r *PostgresEmployeeRepository) ListNotAssignedToProject(ctx context.Context, projectID uuid.UUID) ([]Employee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+employeeColumns+` FROM employees
		 WHERE id NOT IN (SELECT employee_id FROM project_assignments WHERE project_id = $1)
		 ORDER BY last_name ASC, first_name ASC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmployees(rows)
}

func (r *PostgresEmployeeRepository) Create(ctx context.Context, e Employee) (Employee, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO employees (id, first_name, last_name, email, position, department, working_hours_per_week)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.FirstName, e.LastName, e.Email, e.Position, e.Department, e.WorkingHoursPerWeek,
	)
	if err != nil {
		return Employee{}, err
	}
	return e, nil
}

func (r *PostgresEmployeeRepository) Update(ctx context.Context, e Employee) (Employee, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE employees
		 SET first_name = $2, last_name = $3, email = $4, position = $5, department = $6,
		     working_hours_per_week = $7, updated_at = now()
		 WHERE id = $1`,
		e.ID, e.FirstName, e.LastName, e.Email, e.Position, e.Department, e.WorkingHoursPerWeek,
	)
	if err != nil {
		return Employee{}, err
	}
	if affected == 0 {
		return Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

func (r *PostgresEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func prefixedEmployeeColumns(alias string) string {
	return alias + `.id, ` + alias + `.first_name, ` + alias + `.last_name, ` + alias + `.email, ` +
		alias + `.position, ` + alias + `.department, ` + alias + `.working_hours_per_week`
}

func collectEmployees(rows database.Rows) ([]Employee, error) {
	out := make([]Employee, 0)
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Position, &e.Department, &e.WorkingHoursPerWeek); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
