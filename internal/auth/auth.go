package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"campus-safety/internal/config"
)

// Claims are the JWT claims carried by actor tokens. Identity itself is
// managed by the institutional identity provider; tokens only carry the
// opaque actor ref, the roles granted to it and, for department members,
// the department code the provider has on record.
type Claims struct {
	ActorRef   string   `json:"actor_ref"`
	Roles      []string `json:"roles"`
	Department string   `json:"department,omitempty"`
	jwt.RegisteredClaims
}

// Service validates and issues actor tokens
type Service struct {
	cfg *config.JWTConfig
}

// NewService creates a new auth service
func NewService(cfg *config.JWTConfig) *Service {
	return &Service{cfg: cfg}
}

// GenerateToken issues a signed actor token. In production tokens come
// from the identity provider; this is used by tests and local tooling.
func (s *Service) GenerateToken(actorRef string, roles []string) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.cfg.Expiration)

	claims := &Claims{
		ActorRef: actorRef,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   actorRef,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// ValidateToken parses and validates an actor token
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.ActorRef == "" {
		return nil, errors.New("token missing actor ref")
	}

	return claims, nil
}

// HasRole reports whether the claims grant the given role
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}
