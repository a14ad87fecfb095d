package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/acadbase/acadbase/internal/app/models"
	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/app/repositories"
	"github.com/acadbase/acadbase/internal/pkg/apperrors"
	"github.com/acadbase/acadbase/internal/pkg/filestorage"
	"github.com/acadbase/acadbase/internal/pkg/logger"
)

// Certificate upload limits.
const (
	maxCertificateSize   = 30 * 1024 * 1024
	certificateSubdir    = "awards"
	certificateMimeType  = "application/pdf"
	certificateExtension = ".pdf"
)

// AwardService implements award business logic. Every award carries a PDF
// certificate, validated by extension and by content sniffing.
type AwardService struct {
	awardRepo   *repositories.AwardRepository
	facultyRepo *repositories.FacultyRepository
	storage     filestorage.FileStorage
}

// NewAwardService creates a new award service
func NewAwardService(
	awardRepo *repositories.AwardRepository,
	facultyRepo *repositories.FacultyRepository,
	storage filestorage.FileStorage,
) *AwardService {
	return &AwardService{
		awardRepo:   awardRepo,
		facultyRepo: facultyRepo,
		storage:     storage,
	}
}

// ListByFaculty retrieves one faculty member's awards.
func (s *AwardService) ListByFaculty(ctx context.Context, facultyID string) ([]*models.Award, error) {
	if err := s.requireFaculty(ctx, facultyID); err != nil {
		return nil, err
	}
	return s.awardRepo.ListByFaculty(ctx, facultyID)
}

// ListAll retrieves every award.
func (s *AwardService) ListAll(ctx context.Context) ([]*models.Award, error) {
	return s.awardRepo.ListAll(ctx)
}

// GetByID retrieves one award.
func (s *AwardService) GetByID(ctx context.Context, id int64) (*models.Award, error) {
	award, err := s.awardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if award == nil {
		return nil, apperrors.ErrAwardNotFound
	}
	return award, nil
}

// Create adds an award with its certificate upload.
func (s *AwardService) Create(ctx context.Context, actor Actor, req dto.CreateAwardRequest, certificate *multipart.FileHeader) (*models.Award, error) {
	if err := s.requireFaculty(ctx, req.FacultyID); err != nil {
		return nil, err
	}
	if !actor.CanManageFacultyData(req.FacultyID) {
		return nil, apperrors.ErrPermissionDenied
	}

	awardedOn, err := time.Parse("2006-01-02", req.AwardedOn)
	if err != nil {
		return nil, apperrors.NewBadRequestError("awardedOn must be in YYYY-MM-DD format")
	}

	if err := ValidateCertificate(certificate); err != nil {
		return nil, err
	}

	certificatePath, err := s.storage.SaveFileWithPath(certificate, certificateSubdir)
	if err != nil {
		return nil, err
	}

	award := &models.Award{
		FacultyID:       req.FacultyID,
		Title:           req.Title,
		IssuedBy:        req.IssuedBy,
		AwardedOn:       awardedOn,
		CertificatePath: certificatePath,
		PrizeAmount:     req.PrizeAmount,
	}
	if err := s.awardRepo.Create(ctx, award); err != nil {
		if delErr := s.storage.DeleteFile(certificatePath); delErr != nil {
			logger.Warn().Err(delErr).Str("path", certificatePath).Msg("Failed to clean up orphaned certificate")
		}
		return nil, err
	}
	return award, nil
}

// Update updates an award's fields, leaving the certificate untouched.
func (s *AwardService) Update(ctx context.Context, actor Actor, id int64, req dto.UpdateAwardRequest) (*models.Award, error) {
	award, err := s.getOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	awardedOn, err := time.Parse("2006-01-02", req.AwardedOn)
	if err != nil {
		return nil, apperrors.NewBadRequestError("awardedOn must be in YYYY-MM-DD format")
	}

	award.Title = req.Title
	award.IssuedBy = req.IssuedBy
	award.AwardedOn = awardedOn
	award.PrizeAmount = req.PrizeAmount

	if err := s.awardRepo.Update(ctx, award); err != nil {
		return nil, err
	}
	return award, nil
}

// ReplaceCertificate swaps the certificate file for an award.
func (s *AwardService) ReplaceCertificate(ctx context.Context, actor Actor, id int64, certificate *multipart.FileHeader) (*models.Award, error) {
	award, err := s.getOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if err := ValidateCertificate(certificate); err != nil {
		return nil, err
	}

	newPath, err := s.storage.SaveFileWithPath(certificate, certificateSubdir)
	if err != nil {
		return nil, err
	}

	if err := s.awardRepo.UpdateCertificatePath(ctx, id, newPath); err != nil {
		if delErr := s.storage.DeleteFile(newPath); delErr != nil {
			logger.Warn().Err(delErr).Str("path", newPath).Msg("Failed to clean up orphaned certificate")
		}
		return nil, err
	}

	if award.CertificatePath != "" {
		if err := s.storage.DeleteFile(award.CertificatePath); err != nil {
			logger.Warn().Err(err).Str("path", award.CertificatePath).Msg("Failed to delete replaced certificate")
		}
	}

	award.CertificatePath = newPath
	return award, nil
}

// Delete removes an award and its certificate file.
func (s *AwardService) Delete(ctx context.Context, actor Actor, id int64) error {
	award, err := s.getOwned(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.awardRepo.Delete(ctx, id); err != nil {
		return err
	}

	if award.CertificatePath != "" {
		if err := s.storage.DeleteFile(award.CertificatePath); err != nil {
			logger.Warn().Err(err).Str("path", award.CertificatePath).Msg("Failed to delete certificate file")
		}
	}
	return nil
}

func (s *AwardService) getOwned(ctx context.Context, actor Actor, id int64) (*models.Award, error) {
	award, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManageFacultyData(award.FacultyID) {
		return nil, apperrors.ErrPermissionDenied
	}
	return award, nil
}

func (s *AwardService) requireFaculty(ctx context.Context, facultyID string) error {
	faculty, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		return err
	}
	if faculty == nil {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}

// ValidateCertificate checks a certificate upload: present, within the
// size limit, .pdf extension and PDF content. Content sniffing catches
// renamed files the extension check would let through.
func ValidateCertificate(certificate *multipart.FileHeader) error {
	if certificate == nil {
		return apperrors.ErrCertificateRequired
	}
	if certificate.Size > maxCertificateSize {
		return apperrors.ErrCertificateTooLarge
	}
	if !strings.EqualFold(filepath.Ext(certificate.Filename), certificateExtension) {
		return apperrors.ErrCertificateNotPDF
	}

	file, err := certificate.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return err
	}
	if !detected.Is(certificateMimeType) {
		return apperrors.ErrCertificateNotPDF
	}
	return nil
}
