package services

import (
	"context"

	"github.com/acadbase/acadbase/internal/app/models"
	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/app/repositories"
	"github.com/acadbase/acadbase/internal/pkg/apperrors"
)

// PublicationService implements publication business logic. Faculty may
// only modify their own publications; ADMIN and HOD may modify any.
type PublicationService struct {
	publicationRepo *repositories.PublicationRepository
	facultyRepo     *repositories.FacultyRepository
}

// NewPublicationService creates a new publication service
func NewPublicationService(
	publicationRepo *repositories.PublicationRepository,
	facultyRepo *repositories.FacultyRepository,
) *PublicationService {
	return &PublicationService{
		publicationRepo: publicationRepo,
		facultyRepo:     facultyRepo,
	}
}

// ListByFaculty retrieves one faculty member's publications.
func (s *PublicationService) ListByFaculty(ctx context.Context, facultyID string) ([]*models.Publication, error) {
	if err := s.requireFaculty(ctx, facultyID); err != nil {
		return nil, err
	}
	return s.publicationRepo.ListByFaculty(ctx, facultyID)
}

// ListAll retrieves every publication.
func (s *PublicationService) ListAll(ctx context.Context) ([]*models.Publication, error) {
	return s.publicationRepo.ListAll(ctx)
}

// Create adds a publication for a faculty member.
func (s *PublicationService) Create(ctx context.Context, actor Actor, req dto.CreatePublicationRequest) (*models.Publication, error) {
	if err := s.requireFaculty(ctx, req.FacultyID); err != nil {
		return nil, err
	}
	if !actor.CanManageFacultyData(req.FacultyID) {
		return nil, apperrors.ErrPermissionDenied
	}

	publication := &models.Publication{
		FacultyID:     req.FacultyID,
		Title:         req.Title,
		Journal:       req.Journal,
		Year:          req.Year,
		CitationCount: req.CitationCount,
	}
	if err := s.publicationRepo.Create(ctx, publication); err != nil {
		return nil, err
	}
	return publication, nil
}

// Update updates a publication the actor is allowed to touch.
func (s *PublicationService) Update(ctx context.Context, actor Actor, id int64, req dto.UpdatePublicationRequest) (*models.Publication, error) {
	publication, err := s.getOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	publication.Title = req.Title
	publication.Journal = req.Journal
	publication.Year = req.Year
	publication.CitationCount = req.CitationCount

	if err := s.publicationRepo.Update(ctx, publication); err != nil {
		return nil, err
	}
	return publication, nil
}

// Delete deletes a publication the actor is allowed to touch.
func (s *PublicationService) Delete(ctx context.Context, actor Actor, id int64) error {
	if _, err := s.getOwned(ctx, actor, id); err != nil {
		return err
	}
	return s.publicationRepo.Delete(ctx, id)
}

func (s *PublicationService) getOwned(ctx context.Context, actor Actor, id int64) (*models.Publication, error) {
	publication, err := s.publicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if publication == nil {
		return nil, apperrors.ErrPublicationNotFound
	}
	if !actor.CanManageFacultyData(publication.FacultyID) {
		return nil, apperrors.ErrPermissionDenied
	}
	return publication, nil
}

func (s *PublicationService) requireFaculty(ctx context.Context, facultyID string) error {
	faculty, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		return err
	}
	if faculty == nil {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}
