package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acadbase/acadbase/internal/app/models"
	"github.com/acadbase/acadbase/internal/db"
	"github.com/acadbase/acadbase/internal/pkg/dberrors"
	"github.com/acadbase/acadbase/internal/pkg/helpers"
	"github.com/acadbase/acadbase/internal/pkg/logger"
	"github.com/acadbase/acadbase/internal/pkg/querybuilder"
	"github.com/acadbase/acadbase/internal/pkg/schema"
)

const detailsTable = "department_details"

const createDetailsTableSQL = `
	CREATE TABLE IF NOT EXISTS department_details (
		department_id BIGINT PRIMARY KEY REFERENCES departments(id) ON DELETE CASCADE,
		establishment_year INT,
		code VARCHAR(16),
		contact_email VARCHAR(255),
		contact_phone VARCHAR(32),
		vision TEXT,
		mission TEXT,
		student_count INT,
		faculty_count INT,
		hod_faculty_id VARCHAR(16)
	)`

// DepartmentRepository handles database operations for departments and
// their optional details companion table.
type DepartmentRepository struct {
	db     *pgxpool.Pool
	prober *schema.Prober
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool, prober *schema.Prober) *DepartmentRepository {
	return &DepartmentRepository{
		db:     db,
		prober: prober,
	}
}

// List retrieves department summaries. The statement shape depends on
// whether the details companion exists; HOD names come from the same
// statement via LEFT JOIN.
func (r *DepartmentRepository) List(ctx context.Context, filters querybuilder.DepartmentFilters) ([]*models.DepartmentSummary, error) {
	hasDetails := r.prober.TableExists(ctx, detailsTable)
	query, args := querybuilder.DepartmentListQuery(hasDetails, filters)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	var departments []*models.DepartmentSummary
	for rows.Next() {
		var d models.DepartmentSummary
		var establishmentYear, studentCount, facultyCount *int
		var hodName *string
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Code, &d.CreatedAt,
			&establishmentYear, &studentCount, &facultyCount, &hodName,
		); err != nil {
			return nil, err
		}
		d.EstablishmentYear = helpers.IntOrZero(establishmentYear)
		d.StudentCount = helpers.IntOrZero(studentCount)
		d.FacultyCount = helpers.IntOrZero(facultyCount)
		d.HODName = helpers.StringOrDefault(hodName, "")
		departments = append(departments, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// GetByID retrieves a department and merges the details companion row
// when the table and row exist. Returns nil when there is no such
// department.
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	var department models.Department
	err := r.db.QueryRow(ctx, `
		SELECT id, name, code, created_at FROM departments WHERE id = $1`, id).Scan(
		&department.ID, &department.Name, &department.Code, &department.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	if r.prober.TableExists(ctx, detailsTable) {
		details, err := r.getDetails(ctx, id)
		if err != nil {
			// Best-effort enrichment: log and return the base row
			logger.Warn().Err(err).Int64("departmentId", id).Msg("Failed to load department details")
		} else {
			department.Details = details
		}
	}

	return &department, nil
}

func (r *DepartmentRepository) getDetails(ctx context.Context, departmentID int64) (*models.DepartmentDetails, error) {
	var d models.DepartmentDetails
	var code, contactEmail, contactPhone, vision, mission, hodFacultyID *string
	var establishmentYear, studentCount, facultyCount *int
	err := r.db.QueryRow(ctx, `
		SELECT department_id, establishment_year, code, contact_email, contact_phone,
		       vision, mission, student_count, faculty_count, hod_faculty_id
		FROM department_details WHERE department_id = $1`, departmentID).Scan(
		&d.DepartmentID, &establishmentYear, &code, &contactEmail, &contactPhone,
		&vision, &mission, &studentCount, &facultyCount, &hodFacultyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	d.EstablishmentYear = helpers.IntOrZero(establishmentYear)
	d.Code = helpers.StringOrDefault(code, "")
	d.ContactEmail = helpers.StringOrDefault(contactEmail, "")
	d.ContactPhone = helpers.StringOrDefault(contactPhone, "")
	d.Vision = helpers.StringOrDefault(vision, "")
	d.Mission = helpers.StringOrDefault(mission, "")
	d.StudentCount = helpers.IntOrZero(studentCount)
	d.FacultyCount = helpers.IntOrZero(facultyCount)
	d.HODFacultyID = helpers.StringOrDefault(hodFacultyID, "")
	return &d, nil
}

// GetByName retrieves a department by exact name, nil when absent.
func (r *DepartmentRepository) GetByName(ctx context.Context, name string) (*models.Department, error) {
	var department models.Department
	err := r.db.QueryRow(ctx, `
		SELECT id, name, code, created_at FROM departments WHERE name = $1`, name).Scan(
		&department.ID, &department.Name, &department.Code, &department.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return &department, nil
}

// Create inserts a department row. When the insert fails because the id
// column produces no value (table predates identity columns), the column
// is altered and the insert retried once.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	const insert = `
		INSERT INTO departments (name, code)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, insert, department.Name, department.Code).Scan(
		&department.ID, &department.CreatedAt)
	if err == nil {
		return nil
	}

	if dberrors.IsNullIDViolation(err) {
		logger.Warn().Str("department", department.Name).Msg("departments.id has no identity, altering column and retrying")
		if _, alterErr := r.db.Exec(ctx, `
			ALTER TABLE departments ALTER COLUMN id ADD GENERATED BY DEFAULT AS IDENTITY`); alterErr != nil {
			return fmt.Errorf("error recovering departments id column: %w", alterErr)
		}
		return r.db.QueryRow(ctx, insert, department.Name, department.Code).Scan(
			&department.ID, &department.CreatedAt)
	}

	return err
}

// NameOrCodeExists checks whether another department uses the name or code.
func (r *DepartmentRepository) NameOrCodeExists(ctx context.Context, name, code string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM departments WHERE (name = $1 OR code = $2) AND id != $3)`,
		name, code, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking department uniqueness: %w", err)
	}
	return exists, nil
}

// Update updates the department row and, when details are supplied,
// upserts the companion row in the same transaction. The companion table
// is created lazily on first use.
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE departments SET name = $1, code = $2 WHERE id = $3`,
			department.Name, department.Code, department.ID)
		if err != nil {
			return fmt.Errorf("error updating department: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}

		if department.Details != nil {
			if err := upsertDetails(ctx, tx, department.ID, department.Details); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpsertDetails writes the details companion row on its own, creating the
// table when it does not exist yet. Repeated calls with the same payload
// keep a single row per department.
func (r *DepartmentRepository) UpsertDetails(ctx context.Context, departmentID int64, details *models.DepartmentDetails) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		return upsertDetails(ctx, tx, departmentID, details)
	})
}

func upsertDetails(ctx context.Context, tx pgx.Tx, departmentID int64, details *models.DepartmentDetails) error {
	if _, err := tx.Exec(ctx, createDetailsTableSQL); err != nil {
		return fmt.Errorf("error creating department_details table: %w", err)
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO department_details (
			department_id, establishment_year, code, contact_email, contact_phone,
			vision, mission, student_count, faculty_count, hod_faculty_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (department_id) DO UPDATE SET
			establishment_year = EXCLUDED.establishment_year,
			code = EXCLUDED.code,
			contact_email = EXCLUDED.contact_email,
			contact_phone = EXCLUDED.contact_phone,
			vision = EXCLUDED.vision,
			mission = EXCLUDED.mission,
			student_count = EXCLUDED.student_count,
			faculty_count = EXCLUDED.faculty_count,
			hod_faculty_id = EXCLUDED.hod_faculty_id`,
		departmentID, details.EstablishmentYear, details.Code, details.ContactEmail,
		details.ContactPhone, details.Vision, details.Mission, details.StudentCount,
		details.FacultyCount, helpers.GetContentNullString(details.HODFacultyID))
	if err != nil {
		return fmt.Errorf("error upserting department details: %w", err)
	}
	return nil
}

// CountFacultyByDepartmentName counts faculty assigned to a department.
func (r *DepartmentRepository) CountFacultyByDepartmentName(ctx context.Context, departmentName string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM faculty WHERE department_name = $1`, departmentName).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting faculty for department: %w", err)
	}
	return count, nil
}

// Delete deletes a department row. The details companion row, when
// present, goes with it via ON DELETE CASCADE.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
