package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oneonone-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T) *AuthService {
	service, err := NewAuthService(&AuthConfig{
		JWTSecret: "test-signing-key",
		Issuer:    "oneonone-backend",
		TokenTTL:  time.Hour,
	})
	require.NoError(t, err)
	return service
}

func testUser(role models.UserRole) *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FirstName: "Noa",
		LastName:  "Baron",
		Email:     "noa.baron@test.com",
		Role:      role,
	}
}

func TestAuthService(t *testing.T) {
	t.Run("jwt round trip", func(t *testing.T) {
		service := testService(t)
		user := testUser(models.UserRoleLeader)

		token, err := service.GenerateJWT(user)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, string(models.UserRoleLeader), claims.Role)

		identity, err := IdentityFromClaims(claims)
		require.NoError(t, err)
		assert.Equal(t, user.ID, identity.UserID)
		assert.Equal(t, models.UserRoleLeader, identity.Role)
		assert.False(t, identity.IsAdmin())
	})

	t.Run("admin identity", func(t *testing.T) {
		service := testService(t)
		token, err := service.GenerateJWT(testUser(models.UserRoleAdmin))
		require.NoError(t, err)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)
		identity, err := IdentityFromClaims(claims)
		require.NoError(t, err)
		assert.True(t, identity.IsAdmin())
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		service := testService(t)
		token, err := service.GenerateJWT(testUser(models.UserRoleIC))
		require.NoError(t, err)

		other, err := NewAuthService(&AuthConfig{JWTSecret: "another-key", TokenTTL: time.Hour})
		require.NoError(t, err)

		_, err = other.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		service, err := NewAuthService(&AuthConfig{
			JWTSecret: "test-signing-key",
			TokenTTL:  -time.Minute,
		})
		require.NoError(t, err)

		token, err := service.GenerateJWT(testUser(models.UserRoleIC))
		require.NoError(t, err)

		_, err = testService(t).ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := testService(t).ValidateJWT("not-a-token")
		assert.Error(t, err)
	})

	t.Run("missing secret rejected", func(t *testing.T) {
		_, err := NewAuthService(&AuthConfig{TokenTTL: time.Hour})
		assert.Error(t, err)
	})

	t.Run("invalid role in claims", func(t *testing.T) {
		_, err := IdentityFromClaims(&AuthClaims{
			UserID: uuid.New().String(),
			Role:   "SUPERUSER",
		})
		assert.Error(t, err)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := testService(t)
	middleware := NewAuthMiddleware(service)

	newRouter := func() *gin.Engine {
		router := gin.New()
		router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
			identity, ok := GetIdentity(c)
			require.True(t, ok)
			c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID.String()})
		})
		return router
	}

	t.Run("missing header", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		newRouter().ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		newRouter().ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("valid token sets identity", func(t *testing.T) {
		user := testUser(models.UserRoleLeader)
		token, err := service.GenerateJWT(user)
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newRouter().ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, user.ID.String(), body["user_id"])
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := testService(t)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/admin",
		middleware.RequireAuth(),
		middleware.RequireRole(models.UserRoleAdmin),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	request := func(role models.UserRole) *httptest.ResponseRecorder {
		token, err := service.GenerateJWT(testUser(role))
		require.NoError(t, err)
		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(recorder, req)
		return recorder
	}

	assert.Equal(t, http.StatusOK, request(models.UserRoleAdmin).Code)
	assert.Equal(t, http.StatusForbidden, request(models.UserRoleLeader).Code)
}
