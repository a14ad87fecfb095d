package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acadbase/acadbase/internal/app/models"
)

// PublicationRepository handles database operations for faculty publications.
type PublicationRepository struct {
	db *pgxpool.Pool
}

// NewPublicationRepository creates a new publication repository
func NewPublicationRepository(db *pgxpool.Pool) *PublicationRepository {
	return &PublicationRepository{db: db}
}

// ListByFaculty retrieves publications for one faculty member, newest first.
func (r *PublicationRepository) ListByFaculty(ctx context.Context, facultyID string) ([]*models.Publication, error) {
	return r.list(ctx, `
		SELECT id, faculty_id, title, journal, year, citation_count
		FROM faculty_publications WHERE faculty_id = $1 ORDER BY year DESC, id DESC`, facultyID)
}

// ListAll retrieves every publication, newest first.
func (r *PublicationRepository) ListAll(ctx context.Context) ([]*models.Publication, error) {
	return r.list(ctx, `
		SELECT id, faculty_id, title, journal, year, citation_count
		FROM faculty_publications ORDER BY year DESC, id DESC`)
}

func (r *PublicationRepository) list(ctx context.Context, query string, args ...any) ([]*models.Publication, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing publications: %w", err)
	}
	defer rows.Close()

	var publications []*models.Publication
	for rows.Next() {
		var p models.Publication
		if err := rows.Scan(&p.ID, &p.FacultyID, &p.Title, &p.Journal, &p.Year, &p.CitationCount); err != nil {
			return nil, err
		}
		publications = append(publications, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return publications, nil
}

// GetByID retrieves one publication, nil when absent.
func (r *PublicationRepository) GetByID(ctx context.Context, id int64) (*models.Publication, error) {
	var p models.Publication
	err := r.db.QueryRow(ctx, `
		SELECT id, faculty_id, title, journal, year, citation_count
		FROM faculty_publications WHERE id = $1`, id).Scan(
		&p.ID, &p.FacultyID, &p.Title, &p.Journal, &p.Year, &p.CitationCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving publication: %w", err)
	}
	return &p, nil
}

// Create inserts a publication row.
func (r *PublicationRepository) Create(ctx context.Context, p *models.Publication) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO faculty_publications (faculty_id, title, journal, year, citation_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		p.FacultyID, p.Title, p.Journal, p.Year, p.CitationCount).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("error creating publication: %w", err)
	}
	return nil
}

// Update updates a publication row.
func (r *PublicationRepository) Update(ctx context.Context, p *models.Publication) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE faculty_publications
		SET title = $1, journal = $2, year = $3, citation_count = $4
		WHERE id = $5`,
		p.Title, p.Journal, p.Year, p.CitationCount, p.ID)
	if err != nil {
		return fmt.Errorf("error updating publication: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete deletes a publication row.
func (r *PublicationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM faculty_publications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting publication: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
