package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"membership-http-service/internal/infrastructure/config"
)

// Token type claim values.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Role claim values. Staff accounts hold the admin role.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// InterfaceJWTService defines the JWT service interface
type InterfaceJWTService interface {
	GenerateToken(userID uint, username string, isStaff bool) (string, error)
	GenerateRefreshToken(userID uint, username string, isStaff bool) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
}

// JWTService issues and validates tokens
type JWTService struct {
	secretKey    string
	issuer       string
	accessHours  int
	refreshHours int
}

// JWTClaims is the claim structure carried by issued tokens
type JWTClaims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	return &JWTService{
		secretKey:    cfg.JWTSecretKey,
		issuer:       "membership-http-service",
		accessHours:  cfg.JWTAccessHours,
		refreshHours: cfg.JWTRefreshHours,
	}
}

// GenerateToken generates an access token
func (s *JWTService) GenerateToken(userID uint, username string, isStaff bool) (string, error) {
	return s.generate(userID, username, isStaff, TokenTypeAccess, time.Duration(s.accessHours)*time.Hour)
}

// GenerateRefreshToken generates a refresh token
func (s *JWTService) GenerateRefreshToken(userID uint, username string, isStaff bool) (string, error) {
	return s.generate(userID, username, isStaff, TokenTypeRefresh, time.Duration(s.refreshHours)*time.Hour)
}

func (s *JWTService) generate(userID uint, username string, isStaff bool, tokenType string, ttl time.Duration) (string, error) {
	role := RoleUser
	if isStaff {
		role = RoleAdmin
	}

	now := time.Now()
	claims := &JWTClaims{
		UserID:    userID,
		Username:  username,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken validates a token string
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Reject unexpected signing algorithms
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims parses and validates a token and returns its claims
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
