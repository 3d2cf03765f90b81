package token

import (
	"errors"
	"time"

	"find-fuel/pkg/apperrors"
	"find-fuel/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

type Type string

const (
	TypeAccess  Type = "access"
	TypeRefresh Type = "refresh"
)

// Claims is the signed token payload: subject handle in `sub`, role on
// access tokens only, and the declared token type.
type Claims struct {
	Role string `json:"role,omitempty"`
	Type Type   `json:"type"`
	jwt.RegisteredClaims
}

// Manager issues and validates HS256 tokens. Validation is pure
// computation: signature check plus clock comparison, no store access.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewManager(cfg utils.JWTConfig) *Manager {
	return &Manager{
		secret:     []byte(cfg.Secret),
		accessTTL:  time.Duration(cfg.AccessExpiryMinutes) * time.Minute,
		refreshTTL: time.Duration(cfg.RefreshExpiryDays) * 24 * time.Hour,
	}
}

// IssueAccess signs a short-lived access token carrying the user's role.
func (m *Manager) IssueAccess(handle, role string) (string, time.Time, error) {
	return m.sign(handle, role, TypeAccess, m.accessTTL)
}

// IssueRefresh signs a long-lived refresh token. It carries no role.
func (m *Manager) IssueRefresh(handle string) (string, time.Time, error) {
	return m.sign(handle, "", TypeRefresh, m.refreshTTL)
}

func (m *Manager) sign(handle, role string, typ Type, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := Claims{
		Role: role,
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   handle,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, apperrors.WrapInternal(err, "sign token")
	}

	return signed, expiresAt, nil
}

// Parse verifies signature and expiry, then checks the declared type against
// the expectation. Expired tokens fail with ErrExpiredToken, anything else
// malformed fails with ErrInvalidToken, and a valid token of the other kind
// fails with ErrWrongTokenType.
func (m *Manager) Parse(raw string, want Type) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrExpiredToken
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, apperrors.ErrInvalidToken
	}

	if claims.Type != want {
		return nil, apperrors.ErrWrongTokenType
	}

	return claims, nil
}
