package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/app/services"
	"github.com/acadbase/acadbase/internal/middleware"
	"github.com/acadbase/acadbase/internal/pkg/apperrors"
)

// AwardController handles award endpoints. Creation and certificate
// replacement are multipart because a PDF certificate travels with them.
type AwardController struct {
	awardService *services.AwardService
}

// NewAwardController creates a new award controller
func NewAwardController(awardService *services.AwardService) *AwardController {
	return &AwardController{awardService: awardService}
}

// ListAll godoc
// @Summary List all awards
// @Tags awards
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /awards [get]
func (ac *AwardController) ListAll(c *gin.Context) {
	awards, err := ac.awardService.ListAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(paginate(c, awards)))
}

// ListByFaculty godoc
// @Summary List a faculty member's awards
// @Tags awards
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Award}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /faculty/{id}/awards [get]
func (ac *AwardController) ListByFaculty(c *gin.Context) {
	awards, err := ac.awardService.ListByFaculty(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(awards))
}

// Create godoc
// @Summary Add an award
// @Description Adds an award with its PDF certificate (multipart form)
// @Tags awards
// @Accept multipart/form-data
// @Produce json
// @Param facultyId formData string true "Faculty ID"
// @Param title formData string true "Award title"
// @Param issuedBy formData string true "Issuing body"
// @Param awardedOn formData string true "Award date (YYYY-MM-DD)"
// @Param prizeAmount formData number false "Prize amount"
// @Param certificate formData file true "Certificate PDF"
// @Success 201 {object} dto.APIResponse{data=models.Award}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /awards [post]
func (ac *AwardController) Create(c *gin.Context) {
	var req dto.CreateAwardRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	certificate, err := c.FormFile("certificate")
	if err != nil {
		certificate = nil // validated as missing by the service
	}

	award, err := ac.awardService.Create(c.Request.Context(), actorFromContext(c), req, certificate)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(award))
}

// Update godoc
// @Summary Update an award
// @Description Updates award fields; certificate replacement is a separate upload
// @Tags awards
// @Accept json
// @Produce json
// @Param id path int true "Award ID"
// @Param request body dto.UpdateAwardRequest true "Award"
// @Success 200 {object} dto.APIResponse{data=models.Award}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /awards/{id} [put]
func (ac *AwardController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateAwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	award, err := ac.awardService.Update(c.Request.Context(), actorFromContext(c), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(award))
}

// ReplaceCertificate godoc
// @Summary Replace an award certificate
// @Tags awards
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Award ID"
// @Param certificate formData file true "Certificate PDF"
// @Success 200 {object} dto.APIResponse{data=models.Award}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /awards/{id}/certificate [put]
func (ac *AwardController) ReplaceCertificate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	certificate, err := c.FormFile("certificate")
	if err != nil {
		certificate = nil
	}

	award, err := ac.awardService.ReplaceCertificate(c.Request.Context(), actorFromContext(c), id, certificate)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(award))
}

// Delete godoc
// @Summary Delete an award
// @Description Deletes an award together with its stored certificate
// @Tags awards
// @Produce json
// @Param id path int true "Award ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /awards/{id} [delete]
func (ac *AwardController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ac.awardService.Delete(c.Request.Context(), actorFromContext(c), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Award deleted successfully"))
}
