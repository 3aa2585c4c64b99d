// Package admin implements the editor session: credential checks, the draft
// lifecycle with scratch-slot recovery, publishing, and upload handling.
package admin

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/smilesofhope/hopecms/internal/apperr"
)

// Authenticator verifies operator credentials and issues session tokens.
// Credentials come from configuration as a username and bcrypt hash.
type Authenticator struct {
	username     string
	passwordHash string
	secret       []byte
	ttl          time.Duration
}

// NewAuthenticator creates an authenticator. ttl bounds session lifetime.
func NewAuthenticator(username, passwordHash string, secret []byte, ttl time.Duration) *Authenticator {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Authenticator{
		username:     strings.ToLower(strings.TrimSpace(username)),
		passwordHash: passwordHash,
		secret:       secret,
		ttl:          ttl,
	}
}

// Login checks the credential pair and returns a signed session token.
// Username comparison is case-insensitive and whitespace-tolerant.
func (a *Authenticator) Login(username, password string) (string, error) {
	if strings.ToLower(strings.TrimSpace(username)) != a.username {
		return "", apperr.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(strings.TrimSpace(password))); err != nil {
		return "", apperr.ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   a.username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("admin: sign token: %w", err)
	}
	return token, nil
}

// Verify validates a session token and returns the operator username.
func (a *Authenticator) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", apperr.ErrInvalidCredentials
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return "", apperr.ErrInvalidCredentials
	}
	return claims.Subject, nil
}

// HashPassword produces a bcrypt hash suitable for the config file.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("admin: hash password: %w", err)
	}
	return string(hash), nil
}
