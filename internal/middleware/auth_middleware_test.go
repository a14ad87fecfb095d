package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadbase/acadbase/internal/app/models"
	"github.com/acadbase/acadbase/internal/pkg/auth"
)

func testMiddleware() (*AuthMiddleware, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test-issuer",
	})
	return NewAuthMiddleware(jwtService), jwtService
}

func performAuth(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}

	m.JWTAuth()(c)
	return recorder, c
}

func TestJWTAuthMissingHeader(t *testing.T) {
	m, _ := testMiddleware()

	recorder, c := performAuth(t, m, "")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.True(t, c.IsAborted())
}

func TestJWTAuthMalformedToken(t *testing.T) {
	m, _ := testMiddleware()

	recorder, c := performAuth(t, m, "Bearer not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.True(t, c.IsAborted())
}

func TestJWTAuthValidTokenSetsContext(t *testing.T) {
	m, jwtService := testMiddleware()

	departmentID := int64(2)
	facultyID := "CSE01"
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
		ID:           11,
		Email:        "prof@institute.edu",
		Role:         models.RoleFaculty,
		DepartmentID: &departmentID,
		FacultyID:    &facultyID,
	})
	require.NoError(t, err)

	_, c := performAuth(t, m, "Bearer "+accessToken)

	assert.False(t, c.IsAborted())
	userID, _ := c.Get(CtxUserID)
	assert.Equal(t, int64(11), userID)
	role, _ := c.Get(CtxRole)
	assert.Equal(t, string(models.RoleFaculty), role)
	gotFacultyID, _ := c.Get(CtxFacultyID)
	assert.Equal(t, "CSE01", gotFacultyID)
}

func TestRoleRequired(t *testing.T) {
	m, _ := testMiddleware()

	run := func(role string, allowed ...string) (*httptest.ResponseRecorder, *gin.Context) {
		gin.SetMode(gin.TestMode)
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if role != "" {
			c.Set(CtxRole, role)
		}
		m.RoleRequired(allowed...)(c)
		return recorder, c
	}

	recorder, c := run(string(models.RoleAdmin), string(models.RoleAdmin), string(models.RoleHOD))
	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder, c = run(string(models.RoleFaculty), string(models.RoleAdmin))
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder, c = run("", string(models.RoleAdmin))
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
