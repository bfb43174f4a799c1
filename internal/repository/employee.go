package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/checkin_system/internal/models"
	"github.com/shenikar/checkin_system/internal/service"
)

type EmployeeRepository struct {
	db *pgxpool.Pool
}

func NewEmployeeRepository(db *pgxpool.Pool) service.EmployeeRepository {
	return &EmployeeRepository{
		db: db,
	}
}

// CreateEmployee inserts a new employee row. The id and created_at come back
// from the database.
func (r *EmployeeRepository) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	query := `
		INSERT INTO employees (name, email, mobile, grade, password_hash)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		employee.Name,
		employee.Email,
		employee.Mobile,
		employee.Grade,
		employee.PasswordHash,
	).Scan(&employee.ID, &employee.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("employee with email %s already exists: %w", employee.Email, err)
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// GetEmployeeByEmail returns the employee with the given email, or
// service.ErrEmployeeNotFound.
func (r *EmployeeRepository) GetEmployeeByEmail(ctx context.Context, email string) (*models.Employee, error) {
	employee := &models.Employee{}
	query := `
		SELECT id, name, email, mobile, grade, password_hash, created_at
		FROM employees
		WHERE email = $1;
	`
	err := r.db.QueryRow(ctx, query, email).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Mobile,
		&employee.Grade,
		&employee.PasswordHash,
		&employee.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("employee with email %s: %w", email, service.ErrEmployeeNotFound)
		}
		return nil, fmt.Errorf("failed to get employee by email: %w", err)
	}
	return employee, nil
}
