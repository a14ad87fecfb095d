package services

import (
	"context"

	"github.com/acadbase/acadbase/internal/app/models"
	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/app/repositories"
	"github.com/acadbase/acadbase/internal/pkg/apperrors"
	"github.com/acadbase/acadbase/internal/pkg/dberrors"
	"github.com/acadbase/acadbase/internal/pkg/logger"
	"github.com/acadbase/acadbase/internal/pkg/querybuilder"
)

// FacultyService implements faculty business logic, including server-side
// identifier allocation.
type FacultyService struct {
	facultyRepo    *repositories.FacultyRepository
	departmentRepo *repositories.DepartmentRepository
}

// NewFacultyService creates a new faculty service
func NewFacultyService(
	facultyRepo *repositories.FacultyRepository,
	departmentRepo *repositories.DepartmentRepository,
) *FacultyService {
	return &FacultyService{
		facultyRepo:    facultyRepo,
		departmentRepo: departmentRepo,
	}
}

// List retrieves faculty summaries. FACULTY-role callers are restricted to
// their own department.
func (s *FacultyService) List(ctx context.Context, actor Actor, search, department string) ([]*models.FacultySummary, error) {
	filters := querybuilder.FacultyFilters{Search: search, Department: department}
	if actor.Role == models.RoleFaculty && actor.FacultyID != "" {
		own, err := s.facultyRepo.GetByID(ctx, actor.FacultyID)
		if err != nil {
			return nil, err
		}
		if own != nil {
			filters.Department = own.DepartmentName
		}
	}
	return s.facultyRepo.List(ctx, filters)
}

// GetByID retrieves one faculty member with details when present.
func (s *FacultyService) GetByID(ctx context.Context, id string) (*models.Faculty, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if faculty == nil {
		return nil, apperrors.ErrFacultyNotFound
	}
	return faculty, nil
}

// Create creates a faculty member, allocating the next identifier for the
// department prefix server-side.
func (s *FacultyService) Create(ctx context.Context, req dto.CreateFacultyRequest) (*models.Faculty, error) {
	department, err := s.departmentRepo.GetByName(ctx, req.DepartmentName)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, apperrors.ErrDepartmentNotFound
	}

	joinDate, err := repositories.ParseJoinDate(req.JoinDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("joinDate must be in YYYY-MM-DD format")
	}

	currentMax, err := s.facultyRepo.MaxIDForPrefix(ctx, req.DepartmentPrefix)
	if err != nil {
		return nil, err
	}

	faculty := &models.Faculty{
		ID:             querybuilder.NextFacultyID(req.DepartmentPrefix, currentMax),
		Name:           req.Name,
		DepartmentName: req.DepartmentName,
		Email:          req.Email,
		JoinDate:       joinDate,
	}
	if req.Designation != "" || req.Degree != "" || req.ExperienceYears > 0 {
		faculty.Details = &models.FacultyDetails{
			FacultyID:       faculty.ID,
			Designation:     req.Designation,
			Degree:          req.Degree,
			ExperienceYears: req.ExperienceYears,
		}
	}

	if err := s.facultyRepo.Create(ctx, faculty); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrFacultyAlreadyExists
		}
		return nil, err
	}

	logger.Info().Str("facultyId", faculty.ID).Str("department", faculty.DepartmentName).Msg("Faculty member created")
	return s.GetByID(ctx, faculty.ID)
}

// ReassignDepartment moves a faculty member to another department.
func (s *FacultyService) ReassignDepartment(ctx context.Context, facultyID, departmentName string) (*models.Faculty, error) {
	if _, err := s.GetByID(ctx, facultyID); err != nil {
		return nil, err
	}

	department, err := s.departmentRepo.GetByName(ctx, departmentName)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, apperrors.ErrDepartmentNotFound
	}

	if err := s.facultyRepo.ReassignDepartment(ctx, facultyID, departmentName); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, facultyID)
}
