package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/app/services"
	"github.com/acadbase/acadbase/internal/middleware"
	"github.com/acadbase/acadbase/internal/pkg/apperrors"
)

// AdminController handles the admin read-only SQL console.
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new admin controller
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// RunQuery godoc
// @Summary Run an ad-hoc read query
// @Description Executes a read statement after keyword screening; mutating keywords are rejected with 403
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AdminQueryRequest true "SQL statement"
// @Success 200 {object} dto.APIResponse{data=dto.AdminQueryResult}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/query [post]
func (ac *AdminController) RunQuery(c *gin.Context) {
	var req dto.AdminQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	result, err := ac.adminService.RunQuery(c.Request.Context(), req.Query)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(result))
}
