package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAuthNotConfigured  = errors.New("auth not configured")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrJWTInvalid         = errors.New("jwt invalid")
	ErrJWTExpired         = errors.New("jwt expired")
)

// Claims son los claims del token de acceso del panel de administración.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService autentica al administrador contra credenciales de entorno y
// emite tokens de acceso HS256. Sin secreto o sin admin configurado el
// servicio queda deshabilitado y cada operación lo reporta.
type AuthService struct {
	secret       []byte
	accessTTL    time.Duration
	issuer       string
	adminEmail   string
	passwordHash string
}

func NewAuthService(secret, adminEmail, passwordHash string, accessTTL time.Duration) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	return &AuthService{
		secret:       []byte(secret),
		accessTTL:    accessTTL,
		issuer:       "avinci",
		adminEmail:   strings.ToLower(strings.TrimSpace(adminEmail)),
		passwordHash: passwordHash,
	}
}

// Enabled indica si hay credenciales suficientes para operar.
func (s *AuthService) Enabled() bool {
	return s != nil && len(s.secret) > 0 && s.adminEmail != "" && s.passwordHash != ""
}

// Login valida email y contraseña y devuelve un token de acceso firmado.
func (s *AuthService) Login(email, password string) (string, error) {
	if !s.Enabled() {
		return "", ErrAuthNotConfigured
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || email != s.adminEmail {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseAccessToken valida firma, expiración e issuer.
func (s *AuthService) ParseAccessToken(tokenString string) (Claims, error) {
	if s == nil || len(s.secret) == 0 {
		return Claims{}, ErrAuthNotConfigured
	}
	if strings.TrimSpace(tokenString) == "" {
		return Claims{}, ErrJWTInvalid
	}
	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrJWTExpired
		}
		return Claims{}, ErrJWTInvalid
	}
	if strings.TrimSpace(claims.Email) == "" || claims.Issuer != s.issuer {
		return Claims{}, ErrJWTInvalid
	}
	return claims, nil
}
