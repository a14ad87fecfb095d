package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/app/services"
	"github.com/acadbase/acadbase/internal/middleware"
	"github.com/acadbase/acadbase/internal/pkg/apperrors"
)

// ReportController handles PDF report endpoints. Reports are returned
// base64-encoded inside the JSON envelope; the download endpoint serves
// raw bytes for browsers.
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new report controller
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GenerateBiodata godoc
// @Summary Generate a faculty biodata PDF
// @Description Renders the biodata document for one faculty member; missing optional data degrades sections rather than failing
// @Tags reports
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=dto.ReportResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/biodata/{id} [get]
func (rc *ReportController) GenerateBiodata(c *gin.Context) {
	response, err := rc.reportService.GenerateBiodata(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(response))
}

// GenerateComprehensive godoc
// @Summary Generate a comprehensive faculty report PDF
// @Description Renders the full faculty report including department context
// @Tags reports
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=dto.ReportResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/comprehensive/{id} [get]
func (rc *ReportController) GenerateComprehensive(c *gin.Context) {
	response, err := rc.reportService.GenerateComprehensive(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(response))
}

// GenerateInstitutional godoc
// @Summary Generate an institutional report PDF
// @Description Renders one of the institutional report variants (faculty, student, research, full)
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.GenerateReportRequest true "Report type"
// @Success 200 {object} dto.APIResponse{data=dto.ReportResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/institutional [post]
func (rc *ReportController) GenerateInstitutional(c *gin.Context) {
	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	response, err := rc.reportService.GenerateInstitutional(c.Request.Context(), req.Type)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(response))
}

// DownloadInstitutional godoc
// @Summary Download an institutional report PDF
// @Description Serves the rendered PDF as raw bytes for direct browser download
// @Tags reports
// @Produce application/pdf
// @Param type path string true "Report type" Enums(faculty, student, research, full)
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/institutional/{type}/download [get]
func (rc *ReportController) DownloadInstitutional(c *gin.Context) {
	content, _, fileName, err := rc.reportService.InstitutionalPDF(c.Request.Context(), c.Param("type"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/pdf", content)
}
