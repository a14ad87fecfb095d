package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/pkg/apperrors"
)

func performError(t *testing.T, err error) (int, *dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, &body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"department not found", apperrors.ErrDepartmentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"faculty not found", apperrors.ErrFacultyNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"forbidden query", apperrors.ErrQueryForbidden, http.StatusForbidden, dto.ErrorCodeQueryForbidden},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"revoked token", apperrors.ErrTokenRevoked, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"blocked delete", apperrors.ErrDepartmentHasFaculty, http.StatusBadRequest, dto.ErrorCodeResourceBlocked},
		{"certificate missing", apperrors.ErrCertificateRequired, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown report type", apperrors.ErrUnknownReportType, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"duplicate department", apperrors.ErrDepartmentAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"unclassified", fmt.Errorf("connection refused"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := performError(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleAPIErrorPrefersCustomMessage(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrDepartmentHasFaculty,
		"Cannot delete department: 3 faculty member(s) are assigned to it")

	status, body := performError(t, err)

	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, body.Error)
	assert.Equal(t, "Cannot delete department: 3 faculty member(s) are assigned to it", body.Error.Message)
}

func TestHandleAPIErrorWrappedErrorsStillMatch(t *testing.T) {
	err := fmt.Errorf("while deleting: %w", apperrors.ErrAwardNotFound)

	status, body := performError(t, err)

	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, body.Error.Code)
}
