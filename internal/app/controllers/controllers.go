package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/acadbase/acadbase/internal/app/models"
	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/app/services"
	"github.com/acadbase/acadbase/internal/middleware"
	"github.com/acadbase/acadbase/internal/pkg/helpers"
)

// Controllers bundles every controller for route registration.
type Controllers struct {
	AuthController        *AuthController
	DepartmentController  *DepartmentController
	FacultyController     *FacultyController
	PublicationController *PublicationController
	AwardController       *AwardController
	ReportController      *ReportController
	AdminController       *AdminController
}

// NewControllers creates the controller set.
func NewControllers(svc *services.Services) *Controllers {
	return &Controllers{
		AuthController:        NewAuthController(svc.AuthService),
		DepartmentController:  NewDepartmentController(svc.DepartmentService),
		FacultyController:     NewFacultyController(svc.FacultyService, svc.ContributionService),
		PublicationController: NewPublicationController(svc.PublicationService),
		AwardController:       NewAwardController(svc.AwardService),
		ReportController:      NewReportController(svc.ReportService),
		AdminController:       NewAdminController(svc.AdminService),
	}
}

// paginate slices a full result set according to the request's page and
// size query parameters. The collection endpoints that can grow unbounded
// use this instead of returning the whole table.
func paginate[T any](c *gin.Context, items []T) dto.PaginatedResponse {
	page, size := helpers.ParsePaginationParams(c)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	start := int(offset)
	if start > len(items) {
		start = len(items)
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}

	return dto.PaginatedResponse{
		Items:      items[start:end],
		Pagination: helpers.NewPaginationInfo(int64(len(items)), page, size),
	}
}

// actorFromContext rebuilds the caller's identity from the values the auth
// middleware stored on the request context.
func actorFromContext(c *gin.Context) services.Actor {
	actor := services.Actor{}
	if v, ok := c.Get(middleware.CtxUserID); ok {
		if id, ok := v.(int64); ok {
			actor.UserID = id
		}
	}
	if v, ok := c.Get(middleware.CtxRole); ok {
		if role, ok := v.(string); ok {
			actor.Role = models.RoleType(role)
		}
	}
	if v, ok := c.Get(middleware.CtxDepartmentID); ok {
		if id, ok := v.(int64); ok {
			actor.DepartmentID = id
		}
	}
	if v, ok := c.Get(middleware.CtxFacultyID); ok {
		if id, ok := v.(string); ok {
			actor.FacultyID = id
		}
	}
	return actor
}
