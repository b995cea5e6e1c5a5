package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token roles.
const (
	RoleParticipant = "participant"
	RoleAdmin       = "admin"
)

// JWTManager handles JWT access token generation and validation for
// participants and administrators.
type JWTManager struct {
	secret         []byte
	issuer         string
	participantTTL time.Duration
	adminTTL       time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret, issuer string, participantTTL, adminTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:         []byte(secret),
		issuer:         issuer,
		participantTTL: participantTTL,
		adminTTL:       adminTTL,
	}
}

// accessClaims extends standard JWT claims with the token role.
type accessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// TTL returns the token lifetime for role.
func (m *JWTManager) TTL(role string) time.Duration {
	if role == RoleAdmin {
		return m.adminTTL
	}
	return m.participantTTL
}

// GenerateAccessToken creates a signed HS256 JWT with subject as the sub
// claim and role as a custom claim.
func (m *JWTManager) GenerateAccessToken(subject uuid.UUID, role string) (string, error) {
	if !validRole(role) {
		return "", fmt.Errorf("unknown role %q", role)
	}

	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.TTL(role))),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token.
// Returns the subject and role if valid.
func (m *JWTManager) ValidateAccessToken(tokenString string) (uuid.UUID, string, error) {
	if tokenString == "" {
		return uuid.Nil, "", fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return uuid.Nil, "", fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return uuid.Nil, "", fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	if !validRole(claims.Role) {
		return uuid.Nil, "", fmt.Errorf("invalid role %q", claims.Role)
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid subject UUID: %w", err)
	}

	return subject, claims.Role, nil
}

// ValidateToken adapts ValidateAccessToken to the HTTP auth middleware.
func (m *JWTManager) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	return m.ValidateAccessToken(token)
}

func validRole(role string) bool {
	return role == RoleParticipant || role == RoleAdmin
}
