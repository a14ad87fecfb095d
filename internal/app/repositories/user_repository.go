package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acadbase/acadbase/internal/app/models"
)

// UserRepository handles database operations for user accounts.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail retrieves a user by email, nil when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.get(ctx, `
		SELECT id, email, password_hash, full_name, role, department_id, faculty_id, created_at
		FROM users WHERE email = $1`, email)
}

// GetByID retrieves a user by id, nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.get(ctx, `
		SELECT id, email, password_hash, full_name, role, department_id, faculty_id, created_at
		FROM users WHERE id = $1`, id)
}

func (r *UserRepository) get(ctx context.Context, query string, arg any) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Role,
		&u.DepartmentID, &u.FacultyID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return &u, nil
}

// Create inserts a user account.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, full_name, role, department_id, faculty_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		user.Email, user.PasswordHash, user.FullName, user.Role,
		user.DepartmentID, user.FacultyID).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// CountByRole counts accounts holding a role. Used by seeding to decide
// whether a default admin is needed.
func (r *UserRepository) CountByRole(ctx context.Context, role models.RoleType) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting users by role: %w", err)
	}
	return count, nil
}
