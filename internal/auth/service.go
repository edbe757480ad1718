package auth

import (
	"fmt"
	"time"

	"oneonone-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller the core authorizes against
type Identity struct {
	UserID uuid.UUID
	Role   models.UserRole
}

// IsAdmin reports whether the caller holds the admin role
func (i Identity) IsAdmin() bool {
	return i.Role == models.UserRoleAdmin
}

// AuthService issues and validates bearer tokens. Credential verification
// and login flows live outside this service; it only deals in signed JWTs.
type AuthService struct {
	config *AuthConfig
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if config == nil || config.JWTSecret == "" {
		return nil, fmt.Errorf("auth config with a JWT secret is required")
	}
	return &AuthService{config: config}, nil
}

// GenerateJWT creates a signed token for a user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// IdentityFromClaims converts validated claims into a caller identity
func IdentityFromClaims(claims *AuthClaims) (Identity, error) {
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid user id in token: %w", err)
	}
	role := models.UserRole(claims.Role)
	if !role.IsValid() {
		return Identity{}, fmt.Errorf("invalid role in token: %q", claims.Role)
	}
	return Identity{UserID: id, Role: role}, nil
}
