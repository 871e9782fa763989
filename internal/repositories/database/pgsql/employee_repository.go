package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trf-online/trf-backend/internal/apperrors"
	"github.com/trf-online/trf-backend/internal/core/domain"
	portsrepo "github.com/trf-online/trf-backend/internal/core/ports/repositories"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(db *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `
	employee_id, user_id, employee_type, employee_name, job_title, department,
	section, email, phone, date_of_hire, point_of_hire,
	created_at, created_by, last_updated_at, last_updated_by`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.EmployeeID,
		&e.UserID,
		&e.EmployeeType,
		&e.EmployeeName,
		&e.JobTitle,
		&e.Department,
		&e.Section,
		&e.Email,
		&e.Phone,
		&e.DateOfHire,
		&e.PointOfHire,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	employee, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("employee %s not found", employeeID))
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}
	return employee, nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, employeeType *domain.EmployeeType) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	args := []interface{}{}
	if employeeType != nil {
		query += ` WHERE employee_type = $1`
		args = append(args, *employeeType)
	}
	query += ` ORDER BY employee_name ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, *employee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating employee rows: %w", err)
	}
	return employees, nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		INSERT INTO employees (employee_id, user_id, employee_type, employee_name, job_title, department,
			section, email, phone, date_of_hire, point_of_hire,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID, employee.UserID, employee.EmployeeType, employee.EmployeeName,
		employee.JobTitle, employee.Department, employee.Section, employee.Email, employee.Phone,
		employee.DateOfHire, employee.PointOfHire,
		employee.CreatedAt, employee.CreatedBy, employee.LastUpdatedAt, employee.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		UPDATE employees SET
			employee_name = $1,
			job_title = $2,
			department = $3,
			section = $4,
			email = $5,
			phone = $6,
			point_of_hire = $7,
			last_updated_at = $8,
			last_updated_by = $9
		WHERE employee_id = $10;
	`
	ct, err := r.Pool.Exec(ctx, query,
		employee.EmployeeName, employee.JobTitle, employee.Department, employee.Section,
		employee.Email, employee.Phone, employee.PointOfHire,
		employee.LastUpdatedAt, employee.LastUpdatedBy,
		employee.EmployeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", employee.EmployeeID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("employee %s not found", employee.EmployeeID))
	}
	return nil
}
