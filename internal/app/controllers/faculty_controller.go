package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/app/services"
	"github.com/acadbase/acadbase/internal/middleware"
	"github.com/acadbase/acadbase/internal/pkg/apperrors"
)

// FacultyController handles faculty endpoints.
type FacultyController struct {
	facultyService      *services.FacultyService
	contributionService *services.ContributionService
}

// NewFacultyController creates a new faculty controller
func NewFacultyController(
	facultyService *services.FacultyService,
	contributionService *services.ContributionService,
) *FacultyController {
	return &FacultyController{
		facultyService:      facultyService,
		contributionService: contributionService,
	}
}

// List godoc
// @Summary List faculty
// @Description Lists faculty summaries with optional name search and department filter
// @Tags faculty
// @Produce json
// @Param search query string false "Filter by name"
// @Param department query string false "Filter by department name"
// @Success 200 {object} dto.APIResponse{data=[]models.FacultySummary}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /faculty [get]
func (fc *FacultyController) List(c *gin.Context) {
	members, err := fc.facultyService.List(c.Request.Context(), actorFromContext(c),
		c.Query("search"), c.Query("department"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(members))
}

// GetByID godoc
// @Summary Get a faculty member
// @Description Retrieves one faculty member with details when present
// @Tags faculty
// @Produce json
// @Param id path string true "Faculty ID" example(CSE01)
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /faculty/{id} [get]
func (fc *FacultyController) GetByID(c *gin.Context) {
	faculty, err := fc.facultyService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(faculty))
}

// Create godoc
// @Summary Create a faculty member
// @Description Creates a faculty member; the identifier is allocated from the department prefix
// @Tags faculty
// @Accept json
// @Produce json
// @Param request body dto.CreateFacultyRequest true "Faculty member"
// @Success 201 {object} dto.APIResponse{data=models.Faculty}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /faculty [post]
func (fc *FacultyController) Create(c *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	faculty, err := fc.facultyService.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(faculty))
}

// reassignRequest moves a faculty member between departments.
type reassignRequest struct {
	DepartmentName string `json:"departmentName" binding:"required"`
}

// ReassignDepartment godoc
// @Summary Reassign a faculty member
// @Description Moves a faculty member to another department
// @Tags faculty
// @Accept json
// @Produce json
// @Param id path string true "Faculty ID"
// @Param request body reassignRequest true "Target department"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /faculty/{id}/department [put]
func (fc *FacultyController) ReassignDepartment(c *gin.Context) {
	var req reassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	faculty, err := fc.facultyService.ReassignDepartment(c.Request.Context(), c.Param("id"), req.DepartmentName)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(faculty))
}

// ListContributions godoc
// @Summary List a faculty member's contributions
// @Description Lists activity records; empty when the deployment has no contribution table
// @Tags faculty
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Contribution}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /faculty/{id}/contributions [get]
func (fc *FacultyController) ListContributions(c *gin.Context) {
	contributions, err := fc.contributionService.ListByFaculty(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(contributions))
}

// ListMemberships godoc
// @Summary List a faculty member's professional memberships
// @Description Lists memberships; empty when the deployment has no membership table
// @Tags faculty
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Membership}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /faculty/{id}/memberships [get]
func (fc *FacultyController) ListMemberships(c *gin.Context) {
	memberships, err := fc.contributionService.ListMembershipsByFaculty(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(memberships))
}
