package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/daehantax/fund-match/internal/models"
)

var (
	sessionSecretOnce    sync.Once
	sessionSecretRuntime []byte
	sessionSecretErr     error
)

func sessionSecretFromEnv() ([]byte, error) {
	sessionSecretOnce.Do(func() {
		secret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
		if secret != "" {
			sessionSecretRuntime = []byte(secret)
			return
		}

		buf := make([]byte, 48)
		if _, err := rand.Read(buf); err != nil {
			sessionSecretErr = fmt.Errorf("failed to generate session fallback secret: %w", err)
			return
		}

		sessionSecretRuntime = []byte(base64.RawURLEncoding.EncodeToString(buf))
		log.Print("SESSION_SECRET is not set; using ephemeral in-memory fallback secret")
	})

	if sessionSecretErr != nil {
		return nil, sessionSecretErr
	}
	if len(sessionSecretRuntime) == 0 {
		return nil, errors.New("session secret unavailable")
	}

	return sessionSecretRuntime, nil
}

type sessionClaims struct {
	Industry    string `json:"industry,omitempty"`
	Region      string `json:"region,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	CEOName     string `json:"ceo_name,omitempty"`
	jwt.RegisteredClaims
}

// IssueToken signs a session token for a verified client. The frontend holds
// it in local storage and presents it as a Bearer token; the server itself
// stays stateless.
func IssueToken(session *models.UserSession) (string, error) {
	secret, err := sessionSecretFromEnv()
	if err != nil {
		return "", err
	}

	claims := sessionClaims{
		Industry:    session.Industry,
		Region:      session.Region,
		CompanyName: session.CompanyName,
		CEOName:     session.CEOName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.Identifier,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates a session token and reconstructs the session.
func ParseToken(tokenStr string) (*models.UserSession, error) {
	secret, err := sessionSecretFromEnv()
	if err != nil {
		return nil, err
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return &models.UserSession{
		Type:        models.SessionClient,
		Identifier:  claims.Subject,
		Industry:    claims.Industry,
		Region:      claims.Region,
		CompanyName: claims.CompanyName,
		CEOName:     claims.CEOName,
	}, nil
}
