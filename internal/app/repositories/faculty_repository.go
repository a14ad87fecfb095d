package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acadbase/acadbase/internal/app/models"
	"github.com/acadbase/acadbase/internal/db"
	"github.com/acadbase/acadbase/internal/pkg/helpers"
	"github.com/acadbase/acadbase/internal/pkg/logger"
	"github.com/acadbase/acadbase/internal/pkg/querybuilder"
	"github.com/acadbase/acadbase/internal/pkg/schema"
)

const facultyDetailsTable = "faculty_details"

const createFacultyDetailsTableSQL = `
	CREATE TABLE IF NOT EXISTS faculty_details (
		faculty_id VARCHAR(16) PRIMARY KEY REFERENCES faculty(id) ON DELETE CASCADE,
		designation VARCHAR(64),
		degree VARCHAR(64),
		experience_years INT
	)`

// FacultyRepository handles database operations for faculty and the
// optional faculty_details companion table.
type FacultyRepository struct {
	db     *pgxpool.Pool
	prober *schema.Prober
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *pgxpool.Pool, prober *schema.Prober) *FacultyRepository {
	return &FacultyRepository{
		db:     db,
		prober: prober,
	}
}

// probeColumns gathers what the assembler needs to know about the
// optional details schema.
func (r *FacultyRepository) probeColumns(ctx context.Context) querybuilder.FacultyColumns {
	cols := querybuilder.FacultyColumns{}
	cols.HasDetails = r.prober.TableExists(ctx, facultyDetailsTable)
	if cols.HasDetails {
		cols.HasExperience = r.prober.ColumnExists(ctx, facultyDetailsTable, "experience_years")
	}
	return cols
}

// List retrieves faculty summaries with schema-defensive column selection.
func (r *FacultyRepository) List(ctx context.Context, filters querybuilder.FacultyFilters) ([]*models.FacultySummary, error) {
	cols := r.probeColumns(ctx)
	query, args := querybuilder.FacultyListQuery(cols, filters)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing faculty: %w", err)
	}
	defer rows.Close()

	var members []*models.FacultySummary
	for rows.Next() {
		var f models.FacultySummary
		var email, designation, degree *string
		var experienceYears *int
		if err := rows.Scan(
			&f.ID, &f.Name, &f.DepartmentName, &email, &f.JoinDate,
			&designation, &degree, &experienceYears,
		); err != nil {
			return nil, err
		}
		f.Email = helpers.StringOrDefault(email, "")
		f.Designation = helpers.StringOrDefault(designation, "")
		f.Degree = helpers.StringOrDefault(degree, "")
		f.ExperienceYears = helpers.IntOrZero(experienceYears)
		members = append(members, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// GetByID retrieves one faculty member, merging the details row when the
// companion table exists. Returns nil when there is no such member.
func (r *FacultyRepository) GetByID(ctx context.Context, id string) (*models.Faculty, error) {
	var f models.Faculty
	var email *string
	err := r.db.QueryRow(ctx, `
		SELECT id, name, department_name, email, join_date, created_at
		FROM faculty WHERE id = $1`, id).Scan(
		&f.ID, &f.Name, &f.DepartmentName, &email, &f.JoinDate, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	f.Email = helpers.StringOrDefault(email, "")

	if r.prober.TableExists(ctx, facultyDetailsTable) {
		details, err := r.getDetails(ctx, id)
		if err != nil {
			logger.Warn().Err(err).Str("facultyId", id).Msg("Failed to load faculty details")
		} else {
			f.Details = details
		}
	}

	return &f, nil
}

func (r *FacultyRepository) getDetails(ctx context.Context, facultyID string) (*models.FacultyDetails, error) {
	var d models.FacultyDetails
	var designation, degree *string
	var experienceYears *int
	err := r.db.QueryRow(ctx, `
		SELECT faculty_id, designation, degree, experience_years
		FROM faculty_details WHERE faculty_id = $1`, facultyID).Scan(
		&d.FacultyID, &designation, &degree, &experienceYears)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	d.Designation = helpers.StringOrDefault(designation, "")
	d.Degree = helpers.StringOrDefault(degree, "")
	d.ExperienceYears = helpers.IntOrZero(experienceYears)
	return &d, nil
}

// MaxIDForPrefix returns the highest existing faculty id with the given
// department prefix, "" when none exist.
func (r *FacultyRepository) MaxIDForPrefix(ctx context.Context, prefix string) (string, error) {
	var maxID string
	err := r.db.QueryRow(ctx, querybuilder.MaxFacultyIDQuery(), prefix).Scan(&maxID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("error finding max faculty id: %w", err)
	}
	return maxID, nil
}

// Create inserts the faculty row and, when details are supplied, the
// companion row, creating the companion table lazily.
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO faculty (id, name, department_name, email, join_date)
			VALUES ($1, $2, $3, $4, $5)`,
			faculty.ID, faculty.Name, faculty.DepartmentName,
			helpers.GetContentNullString(faculty.Email), faculty.JoinDate)
		if err != nil {
			return err
		}

		if faculty.Details != nil {
			if _, err := tx.Exec(ctx, createFacultyDetailsTableSQL); err != nil {
				return fmt.Errorf("error creating faculty_details table: %w", err)
			}
			_, err = tx.Exec(ctx, `
				INSERT INTO faculty_details (faculty_id, designation, degree, experience_years)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (faculty_id) DO UPDATE SET
					designation = EXCLUDED.designation,
					degree = EXCLUDED.degree,
					experience_years = EXCLUDED.experience_years`,
				faculty.ID, faculty.Details.Designation, faculty.Details.Degree,
				faculty.Details.ExperienceYears)
			if err != nil {
				return fmt.Errorf("error upserting faculty details: %w", err)
			}
		}
		return nil
	})
}

// ReassignDepartment moves a faculty member to another department by name.
func (r *FacultyRepository) ReassignDepartment(ctx context.Context, facultyID, departmentName string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE faculty SET department_name = $1 WHERE id = $2`, departmentName, facultyID)
	if err != nil {
		return fmt.Errorf("error reassigning faculty: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ParseJoinDate parses the wire format for join dates, defaulting to
// today when the value is empty.
func ParseJoinDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", value)
}
