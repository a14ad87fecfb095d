package services

import (
	"context"
	"fmt"

	"github.com/acadbase/acadbase/internal/app/models"
	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/app/repositories"
	"github.com/acadbase/acadbase/internal/pkg/apperrors"
	"github.com/acadbase/acadbase/internal/pkg/querybuilder"
)

// DepartmentService implements department business logic.
type DepartmentService struct {
	departmentRepo *repositories.DepartmentRepository
}

// NewDepartmentService creates a new department service
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo}
}

// List retrieves department summaries. DEPARTMENT-role callers see only
// their own department regardless of filters.
func (s *DepartmentService) List(ctx context.Context, actor Actor, search string) ([]*models.DepartmentSummary, error) {
	filters := querybuilder.DepartmentFilters{Search: search}
	if actor.Role == models.RoleDepartment {
		filters.Scope.DepartmentID = actor.DepartmentID
	}
	return s.departmentRepo.List(ctx, filters)
}

// GetByID retrieves one department with its details when present.
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return department, nil
}

// Create creates a department after checking name and code uniqueness.
func (s *DepartmentService) Create(ctx context.Context, req dto.CreateDepartmentRequest) (*models.Department, error) {
	exists, err := s.departmentRepo.NameOrCodeExists(ctx, req.Name, req.Code, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	department := &models.Department{Name: req.Name, Code: req.Code}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// Update updates a department and, when supplied, its details companion.
func (s *DepartmentService) Update(ctx context.Context, id int64, req dto.UpdateDepartmentRequest) (*models.Department, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.departmentRepo.NameOrCodeExists(ctx, req.Name, req.Code, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	existing.Name = req.Name
	existing.Code = req.Code
	if req.Details != nil {
		existing.Details = detailsFromRequest(id, req.Details)
	}

	if err := s.departmentRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// UpdateDetails upserts only the details companion row.
func (s *DepartmentService) UpdateDetails(ctx context.Context, id int64, req dto.DepartmentDetailsRequest) (*models.Department, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.departmentRepo.UpsertDetails(ctx, id, detailsFromRequest(id, &req)); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes a department. Departments with assigned faculty are
// protected; the error message carries the count.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	department, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.departmentRepo.CountFacultyByDepartmentName(ctx, department.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.NewCustomError(apperrors.ErrDepartmentHasFaculty,
			fmt.Sprintf("Cannot delete department: %d faculty member(s) are assigned to it", count))
	}

	return s.departmentRepo.Delete(ctx, id)
}

func detailsFromRequest(departmentID int64, req *dto.DepartmentDetailsRequest) *models.DepartmentDetails {
	return &models.DepartmentDetails{
		DepartmentID:      departmentID,
		EstablishmentYear: req.EstablishmentYear,
		Code:              req.Code,
		ContactEmail:      req.ContactEmail,
		ContactPhone:      req.ContactPhone,
		Vision:            req.Vision,
		Mission:           req.Mission,
		StudentCount:      req.StudentCount,
		FacultyCount:      req.FacultyCount,
		HODFacultyID:      req.HODFacultyID,
	}
}
