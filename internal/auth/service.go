package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents JWT token claims issued by the identity service
type AuthClaims struct {
	UserID               uint   `json:"userId" example:"12"`
	Email                string `json:"email" example:"caller@example.com"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService validates bearer tokens signed with the shared HS256 secret
type AuthService struct {
	secret []byte
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	return &AuthService{secret: []byte(secret)}, nil
}

// ValidateJWT parses a token and returns its claims when the signature and expiry are valid
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == 0 {
		return nil, fmt.Errorf("token has no userId claim")
	}
	return claims, nil
}

// GenerateJWT signs a token for userID in the format the identity service issues.
// Used by the seed script and tests; production tokens come from the identity service.
func (s *AuthService) GenerateJWT(userID uint, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.FormatUint(uint64(userID), 10),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
