package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acadbase/acadbase/internal/app/models"
	"github.com/acadbase/acadbase/internal/pkg/dberrors"
	"github.com/acadbase/acadbase/internal/pkg/querybuilder"
	"github.com/acadbase/acadbase/internal/pkg/schema"
)

// Candidate tables are probed in order; the first that exists wins.
// Deployments name these tables inconsistently.
var (
	contributionCandidates = []string{"faculty_activities", "faculty_contributions"}
	membershipCandidates   = []string{"faculty_memberships", "professional_memberships"}
)

// ContributionRepository reads activity records from whichever candidate
// table the deployment carries.
type ContributionRepository struct {
	db     *pgxpool.Pool
	prober *schema.Prober
}

// NewContributionRepository creates a new contribution repository
func NewContributionRepository(db *pgxpool.Pool, prober *schema.Prober) *ContributionRepository {
	return &ContributionRepository{
		db:     db,
		prober: prober,
	}
}

// ListByFaculty retrieves contributions for one faculty member. When no
// candidate table exists the result is empty, not an error.
func (r *ContributionRepository) ListByFaculty(ctx context.Context, facultyID string) ([]*models.Contribution, error) {
	table := r.prober.FirstExistingTable(ctx, contributionCandidates...)
	if table == "" {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, querybuilder.ContributionQuery(table), facultyID)
	if err != nil {
		if dberrors.IsUndefinedTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error listing contributions: %w", err)
	}
	defer rows.Close()

	var contributions []*models.Contribution
	for rows.Next() {
		var c models.Contribution
		if err := rows.Scan(&c.ID, &c.FacultyID, &c.Kind, &c.Title, &c.Description, &c.OccurredOn); err != nil {
			return nil, err
		}
		contributions = append(contributions, &c)
	}

	if err := rows.Err(); err != nil {
		// The candidate can be dropped between the probe and the query.
		if dberrors.IsUndefinedTable(err) {
			return nil, nil
		}
		return nil, err
	}

	return contributions, nil
}

// ListMembershipsByFaculty retrieves professional-body memberships for one
// faculty member, with the same candidate-table fallback.
func (r *ContributionRepository) ListMembershipsByFaculty(ctx context.Context, facultyID string) ([]*models.Membership, error) {
	table := r.prober.FirstExistingTable(ctx, membershipCandidates...)
	if table == "" {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, querybuilder.MembershipQuery(table), facultyID)
	if err != nil {
		if dberrors.IsUndefinedTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error listing memberships: %w", err)
	}
	defer rows.Close()

	var memberships []*models.Membership
	for rows.Next() {
		var m models.Membership
		if err := rows.Scan(&m.ID, &m.FacultyID, &m.Organization, &m.Grade, &m.MemberSince); err != nil {
			return nil, err
		}
		memberships = append(memberships, &m)
	}

	if err := rows.Err(); err != nil {
		if dberrors.IsUndefinedTable(err) {
			return nil, nil
		}
		return nil, err
	}

	return memberships, nil
}
