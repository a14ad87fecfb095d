package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Every handler
// funnels its failures through here so status codes stay consistent.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := err.Error()
	if errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}

	switch {
	case apperrorsIs(err,
		apperrors.ErrResourceNotFound,
		apperrors.ErrDepartmentNotFound,
		apperrors.ErrFacultyNotFound,
		apperrors.ErrPublicationNotFound,
		apperrors.ErrAwardNotFound,
		apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)))

	case errors.Is(err, apperrors.ErrQueryForbidden):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeQueryForbidden, message)))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, message)))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))

	case apperrorsIs(err, apperrors.ErrTokenInvalid, apperrors.ErrTokenNotFound, apperrors.ErrTokenRevoked):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, message)))

	case errors.Is(err, apperrors.ErrDepartmentHasFaculty):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceBlocked, message)))

	case apperrorsIs(err,
		apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest,
		apperrors.ErrCertificateRequired,
		apperrors.ErrCertificateNotPDF,
		apperrors.ErrCertificateTooLarge,
		apperrors.ErrUnknownReportType):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)))

	case apperrorsIs(err,
		apperrors.ErrResourceAlreadyExists,
		apperrors.ErrConflict,
		apperrors.ErrDepartmentAlreadyExists,
		apperrors.ErrFacultyAlreadyExists,
		apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message)))

	default:
		// The underlying message is surfaced for diagnostics; this is an
		// internal admin tool, not exposed to untrusted clients.
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		errorDetail = errorDetail.WithDetails(err.Error())
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
	}
}

func apperrorsIs(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
