package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues access tokens for the daemon's trigger API. The
// single admin identity comes from the environment: ADMIN_EMAIL plus a
// bcrypt ADMIN_PASSWORD_HASH.
type AuthService interface {
	Login(email, password string) (string, error)
}

type authService struct {
}

func NewAuthService() AuthService {
	return &authService{}
}

func (s *authService) Login(email, password string) (string, error) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	passwordHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminEmail == "" || passwordHash == "" {
		return "", errors.New("admin credentials are not configured")
	}
	if email != adminEmail {
		return "", errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
