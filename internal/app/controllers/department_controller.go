package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/app/services"
	"github.com/acadbase/acadbase/internal/middleware"
	"github.com/acadbase/acadbase/internal/pkg/apperrors"
)

// DepartmentController handles department endpoints.
type DepartmentController struct {
	departmentService *services.DepartmentService
}

// NewDepartmentController creates a new department controller
func NewDepartmentController(departmentService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// List godoc
// @Summary List departments
// @Description Lists department summaries; DEPARTMENT-role callers see only their own
// @Tags departments
// @Produce json
// @Param search query string false "Filter by name"
// @Success 200 {object} dto.APIResponse{data=[]models.DepartmentSummary}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /departments [get]
func (dc *DepartmentController) List(c *gin.Context) {
	departments, err := dc.departmentService.List(c.Request.Context(), actorFromContext(c), c.Query("search"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(departments))
}

// GetByID godoc
// @Summary Get a department
// @Description Retrieves one department with details when present
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /departments/{id} [get]
func (dc *DepartmentController) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	department, err := dc.departmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// Create godoc
// @Summary Create a department
// @Description Creates a department row; name and code must be unique
// @Tags departments
// @Accept json
// @Produce json
// @Param request body dto.CreateDepartmentRequest true "Department"
// @Success 201 {object} dto.APIResponse{data=models.Department}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /departments [post]
func (dc *DepartmentController) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	department, err := dc.departmentService.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(department))
}

// Update godoc
// @Summary Update a department
// @Description Updates the base row and, when supplied, the details companion
// @Tags departments
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param request body dto.UpdateDepartmentRequest true "Department"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /departments/{id} [put]
func (dc *DepartmentController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	department, err := dc.departmentService.Update(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// UpdateDetails godoc
// @Summary Update department details
// @Description Upserts the extended attributes; the companion table is created on first use
// @Tags departments
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param request body dto.DepartmentDetailsRequest true "Details"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /departments/{id}/details [put]
func (dc *DepartmentController) UpdateDetails(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.DepartmentDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	department, err := dc.departmentService.UpdateDetails(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// Delete godoc
// @Summary Delete a department
// @Description Deletes a department; blocked while faculty are assigned to it
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /departments/{id} [delete]
func (dc *DepartmentController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := dc.departmentService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Department deleted successfully"))
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError("invalid " + name + " parameter")
	}
	return id, nil
}
