package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadbase/acadbase/internal/app/models"
)

func testService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test-issuer",
	})
}

func testUser() *models.User {
	departmentID := int64(3)
	facultyID := "CSE01"
	return &models.User{
		ID:           7,
		Email:        "prof@institute.edu",
		Role:         models.RoleFaculty,
		DepartmentID: &departmentID,
		FacultyID:    &facultyID,
	}
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testService(time.Hour)

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, 3600, expiresIn)
	assert.Equal(t, 86400, refreshExpiresIn)

	claims, err := svc.ValidateAndExtractClaims(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "prof@institute.edu", claims.Email)
	assert.Equal(t, string(models.RoleFaculty), claims.Role)
	assert.Equal(t, int64(3), claims.DepartmentID)
	assert.Equal(t, "CSE01", claims.FacultyID)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testService(-time.Minute)
	accessToken, _, _, _, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(accessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	accessToken, _, _, _, err := testService(time.Hour).GenerateTokenPair(testUser())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
	})
	_, err = other.ValidateAndExtractClaims(accessToken)
	assert.Error(t, err)
}

func TestValidateEmptyToken(t *testing.T) {
	_, err := testService(time.Hour).ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// A raw token without the prefix is accepted as-is.
	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
