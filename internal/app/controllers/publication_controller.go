package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/app/services"
	"github.com/acadbase/acadbase/internal/middleware"
	"github.com/acadbase/acadbase/internal/pkg/apperrors"
)

// PublicationController handles publication endpoints.
type PublicationController struct {
	publicationService *services.PublicationService
}

// NewPublicationController creates a new publication controller
func NewPublicationController(publicationService *services.PublicationService) *PublicationController {
	return &PublicationController{publicationService: publicationService}
}

// ListAll godoc
// @Summary List all publications
// @Tags publications
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /publications [get]
func (pc *PublicationController) ListAll(c *gin.Context) {
	publications, err := pc.publicationService.ListAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(paginate(c, publications)))
}

// ListByFaculty godoc
// @Summary List a faculty member's publications
// @Tags publications
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Publication}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /faculty/{id}/publications [get]
func (pc *PublicationController) ListByFaculty(c *gin.Context) {
	publications, err := pc.publicationService.ListByFaculty(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(publications))
}

// Create godoc
// @Summary Add a publication
// @Description Adds a publication; faculty may only add to their own record
// @Tags publications
// @Accept json
// @Produce json
// @Param request body dto.CreatePublicationRequest true "Publication"
// @Success 201 {object} dto.APIResponse{data=models.Publication}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /publications [post]
func (pc *PublicationController) Create(c *gin.Context) {
	var req dto.CreatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	publication, err := pc.publicationService.Create(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(publication))
}

// Update godoc
// @Summary Update a publication
// @Tags publications
// @Accept json
// @Produce json
// @Param id path int true "Publication ID"
// @Param request body dto.UpdatePublicationRequest true "Publication"
// @Success 200 {object} dto.APIResponse{data=models.Publication}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /publications/{id} [put]
func (pc *PublicationController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	publication, err := pc.publicationService.Update(c.Request.Context(), actorFromContext(c), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(publication))
}

// Delete godoc
// @Summary Delete a publication
// @Tags publications
// @Produce json
// @Param id path int true "Publication ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /publications/{id} [delete]
func (pc *PublicationController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := pc.publicationService.Delete(c.Request.Context(), actorFromContext(c), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Publication deleted successfully"))
}
