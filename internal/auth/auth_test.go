package auth

import (
	"testing"
	"time"

	"campus-safety/internal/config"
)

func TestGenerateToken(t *testing.T) {
	cfg := &config.JWTConfig{
		Secret:     "test-secret",
		Expiration: 24 * time.Hour,
	}
	svc := NewService(cfg)

	token, expiresAt, err := svc.GenerateToken("S1023", []string{"student"})
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	if token == "" {
		t.Error("Token should not be empty")
	}

	if !expiresAt.After(time.Now()) {
		t.Error("Expiry should be in the future")
	}
}

func TestValidateToken(t *testing.T) {
	cfg := &config.JWTConfig{
		Secret:     "test-secret",
		Expiration: 24 * time.Hour,
	}
	svc := NewService(cfg)

	token, _, err := svc.GenerateToken("F042", []string{"faculty", "reviewer"})
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if claims.ActorRef != "F042" {
		t.Errorf("Expected actor ref F042, got %s", claims.ActorRef)
	}

	if !claims.HasRole("reviewer") {
		t.Error("Expected reviewer role to be present")
	}

	if claims.HasRole("admin") {
		t.Error("Did not expect admin role")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	cfg := &config.JWTConfig{
		Secret:     "test-secret",
		Expiration: -1 * time.Hour, // Already expired
	}
	svc := NewService(cfg)

	token, _, err := svc.GenerateToken("S1023", []string{"student"})
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if err == nil {
		t.Error("Should reject expired token")
	}
}

func TestValidateWrongSecret(t *testing.T) {
	svc := NewService(&config.JWTConfig{Secret: "secret-a", Expiration: time.Hour})
	other := NewService(&config.JWTConfig{Secret: "secret-b", Expiration: time.Hour})

	token, _, err := svc.GenerateToken("S1023", []string{"student"})
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("Should reject token signed with a different secret")
	}
}

func TestValidateMissingActorRef(t *testing.T) {
	cfg := &config.JWTConfig{
		Secret:     "test-secret",
		Expiration: time.Hour,
	}
	svc := NewService(cfg)

	token, _, err := svc.GenerateToken("", []string{"student"})
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("Should reject token without an actor ref")
	}
}
