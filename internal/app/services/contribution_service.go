package services

import (
	"context"

	"github.com/acadbase/acadbase/internal/app/models"
	"github.com/acadbase/acadbase/internal/app/repositories"
	"github.com/acadbase/acadbase/internal/pkg/apperrors"
)

// ContributionService exposes activity records read from whichever
// candidate table the deployment carries.
type ContributionService struct {
	contributionRepo *repositories.ContributionRepository
	facultyRepo      *repositories.FacultyRepository
}

// NewContributionService creates a new contribution service
func NewContributionService(
	contributionRepo *repositories.ContributionRepository,
	facultyRepo *repositories.FacultyRepository,
) *ContributionService {
	return &ContributionService{
		contributionRepo: contributionRepo,
		facultyRepo:      facultyRepo,
	}
}

// ListByFaculty retrieves one faculty member's contributions. An empty
// result is returned when the deployment has no contribution table at all.
func (s *ContributionService) ListByFaculty(ctx context.Context, facultyID string) ([]*models.Contribution, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	if faculty == nil {
		return nil, apperrors.ErrFacultyNotFound
	}
	return s.contributionRepo.ListByFaculty(ctx, facultyID)
}

// ListMembershipsByFaculty retrieves one faculty member's professional
// memberships, empty when no candidate table exists.
func (s *ContributionService) ListMembershipsByFaculty(ctx context.Context, facultyID string) ([]*models.Membership, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	if faculty == nil {
		return nil, apperrors.ErrFacultyNotFound
	}
	return s.contributionRepo.ListMembershipsByFaculty(ctx, facultyID)
}
