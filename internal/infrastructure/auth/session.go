package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"itdesk/internal/shared/biztime"
)

// SessionClaims is the payload carried in the admin session cookie.
type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

const sessionRoleAdmin = "admin"

// SessionService issues and verifies the signed admin session token. There
// is a single admin identity, so the claims carry only the role and the
// standard expiry fields.
type SessionService struct {
	secret   []byte
	expHours int
}

func NewSessionService(secret string, expHours int) *SessionService {
	if expHours <= 0 {
		expHours = 24
	}
	return &SessionService{
		secret:   []byte(secret),
		expHours: expHours,
	}
}

// Issue signs a new admin session token and returns it with its expiry.
func (s *SessionService) Issue() (string, time.Time, error) {
	now := biztime.NowUTC()
	expiresAt := now.Add(time.Duration(s.expHours) * time.Hour)

	claims := &SessionClaims{
		Role: sessionRoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify parses a session token and checks its signature and expiry.
func (s *SessionService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	if claims.Role != sessionRoleAdmin {
		return nil, fmt.Errorf("unexpected session role: %s", claims.Role)
	}

	return claims, nil
}
