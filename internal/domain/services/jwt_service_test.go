package services

import (
	"testing"

	"pawsconnect-http-service/internal/infrastructure/config"
)

func newTestJWTService() InterfaceJWTService {
	return NewJWTService(&config.Config{JWTSecretKey: "test-secret"}, nil)
}

func TestJWTGenerateAndExtract(t *testing.T) {
	s := newTestJWTService()

	token, err := s.GenerateToken(42, "partner")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := s.ExtractClaims(token)
	if err != nil {
		t.Fatalf("ExtractClaims: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != "partner" {
		t.Errorf("Role = %q, want partner", claims.Role)
	}
	if claims.Issuer != "pawsconnect-http-service" {
		t.Errorf("Issuer = %q", claims.Issuer)
	}
}

func TestJWTValidateRejectsTampered(t *testing.T) {
	s := newTestJWTService()

	token, err := s.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := s.ValidateToken(token + "x"); err == nil {
		t.Error("tampered token must not validate")
	}

	other := NewJWTService(&config.Config{JWTSecretKey: "another-secret"}, nil)
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with a different secret must not validate")
	}
}
