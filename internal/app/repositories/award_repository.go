package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acadbase/acadbase/internal/app/models"
)

// AwardRepository handles database operations for faculty awards.
type AwardRepository struct {
	db *pgxpool.Pool
}

// NewAwardRepository creates a new award repository
func NewAwardRepository(db *pgxpool.Pool) *AwardRepository {
	return &AwardRepository{db: db}
}

// ListByFaculty retrieves awards for one faculty member, newest first.
func (r *AwardRepository) ListByFaculty(ctx context.Context, facultyID string) ([]*models.Award, error) {
	return r.list(ctx, `
		SELECT id, faculty_id, title, issued_by, awarded_on, certificate_path, COALESCE(prize_amount, 0)
		FROM faculty_awards WHERE faculty_id = $1 ORDER BY awarded_on DESC`, facultyID)
}

// ListAll retrieves every award, newest first.
func (r *AwardRepository) ListAll(ctx context.Context) ([]*models.Award, error) {
	return r.list(ctx, `
		SELECT id, faculty_id, title, issued_by, awarded_on, certificate_path, COALESCE(prize_amount, 0)
		FROM faculty_awards ORDER BY awarded_on DESC`)
}

func (r *AwardRepository) list(ctx context.Context, query string, args ...any) ([]*models.Award, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing awards: %w", err)
	}
	defer rows.Close()

	var awards []*models.Award
	for rows.Next() {
		var a models.Award
		if err := rows.Scan(&a.ID, &a.FacultyID, &a.Title, &a.IssuedBy, &a.AwardedOn, &a.CertificatePath, &a.PrizeAmount); err != nil {
			return nil, err
		}
		awards = append(awards, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return awards, nil
}

// GetByID retrieves one award, nil when absent.
func (r *AwardRepository) GetByID(ctx context.Context, id int64) (*models.Award, error) {
	var a models.Award
	err := r.db.QueryRow(ctx, `
		SELECT id, faculty_id, title, issued_by, awarded_on, certificate_path, COALESCE(prize_amount, 0)
		FROM faculty_awards WHERE id = $1`, id).Scan(
		&a.ID, &a.FacultyID, &a.Title, &a.IssuedBy, &a.AwardedOn, &a.CertificatePath, &a.PrizeAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving award: %w", err)
	}
	return &a, nil
}

// Create inserts an award row.
func (r *AwardRepository) Create(ctx context.Context, a *models.Award) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO faculty_awards (faculty_id, title, issued_by, awarded_on, certificate_path, prize_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		a.FacultyID, a.Title, a.IssuedBy, a.AwardedOn, a.CertificatePath, a.PrizeAmount).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("error creating award: %w", err)
	}
	return nil
}

// Update updates an award row, leaving the certificate path untouched.
func (r *AwardRepository) Update(ctx context.Context, a *models.Award) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE faculty_awards
		SET title = $1, issued_by = $2, awarded_on = $3, prize_amount = $4
		WHERE id = $5`,
		a.Title, a.IssuedBy, a.AwardedOn, a.PrizeAmount, a.ID)
	if err != nil {
		return fmt.Errorf("error updating award: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateCertificatePath swaps the stored certificate path.
func (r *AwardRepository) UpdateCertificatePath(ctx context.Context, id int64, path string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE faculty_awards SET certificate_path = $1 WHERE id = $2`, path, id)
	if err != nil {
		return fmt.Errorf("error updating certificate path: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete deletes an award row.
func (r *AwardRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM faculty_awards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting award: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
