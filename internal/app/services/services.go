package services

import (
	"github.com/acadbase/acadbase/internal/app/models"
	"github.com/acadbase/acadbase/internal/app/repositories"
	"github.com/acadbase/acadbase/internal/config"
	"github.com/acadbase/acadbase/internal/pkg/auth"
	"github.com/acadbase/acadbase/internal/pkg/filestorage"
	"github.com/acadbase/acadbase/internal/pkg/report"
)

// Actor identifies the authenticated caller for authorization decisions.
// Built by controllers from validated token claims.
type Actor struct {
	UserID       int64
	Role         models.RoleType
	DepartmentID int64
	FacultyID    string
}

// CanManageFacultyData reports whether the actor may modify records
// belonging to the given faculty member. ADMIN and HOD may touch anyone;
// FACULTY only their own rows.
func (a Actor) CanManageFacultyData(facultyID string) bool {
	switch a.Role {
	case models.RoleAdmin, models.RoleHOD:
		return true
	case models.RoleFaculty:
		return a.FacultyID == facultyID
	}
	return false
}

// Services bundles every service for injection into controllers.
type Services struct {
	AuthService         *AuthService
	DepartmentService   *DepartmentService
	FacultyService      *FacultyService
	PublicationService  *PublicationService
	AwardService        *AwardService
	ContributionService *ContributionService
	ReportService       *ReportService
	AdminService        *AdminService
}

// NewServices creates the service set.
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	storage filestorage.FileStorage,
	composer *report.Composer,
	cfg *config.Config,
) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService),
		DepartmentService: NewDepartmentService(repos.DepartmentRepository),
		FacultyService:    NewFacultyService(repos.FacultyRepository, repos.DepartmentRepository),
		PublicationService: NewPublicationService(
			repos.PublicationRepository, repos.FacultyRepository),
		AwardService: NewAwardService(
			repos.AwardRepository, repos.FacultyRepository, storage),
		ContributionService: NewContributionService(
			repos.ContributionRepository, repos.FacultyRepository),
		ReportService: NewReportService(
			repos.FacultyRepository, repos.DepartmentRepository,
			repos.PublicationRepository, repos.AwardRepository,
			repos.ContributionRepository, composer, cfg.Report.CurrencyCode),
		AdminService: NewAdminService(repos.AdminRepository),
	}
}
