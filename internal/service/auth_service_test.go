package service

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T, ttl time.Duration) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3creta"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return NewAuthService("test-secret", "Admin@Example.com", string(hash), ttl)
}

func TestLoginAndParse(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)

	token, err := svc.Login("admin@example.com", "s3creta")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := svc.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Fatalf("email = %q", claims.Email)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)
	if _, err := svc.Login("admin@example.com", "otra"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login("otro@example.com", "s3creta"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginDisabledWithoutConfig(t *testing.T) {
	svc := NewAuthService("", "", "", time.Hour)
	if svc.Enabled() {
		t.Fatalf("servicio sin credenciales no debería estar habilitado")
	}
	if _, err := svc.Login("a@b.com", "x"); !errors.Is(err, ErrAuthNotConfigured) {
		t.Fatalf("expected ErrAuthNotConfigured, got %v", err)
	}
}

func TestParseExpiredToken(t *testing.T) {
	svc := newTestAuthService(t, -time.Minute)
	token, err := svc.Login("admin@example.com", "s3creta")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := svc.ParseAccessToken(token); !errors.Is(err, ErrJWTExpired) {
		t.Fatalf("expected ErrJWTExpired, got %v", err)
	}
}

func TestParseGarbageToken(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)
	if _, err := svc.ParseAccessToken("no.es.jwt"); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid, got %v", err)
	}
}
