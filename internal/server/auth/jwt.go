// Package auth implements session-token issuance/verification and password
// hashing for the server.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/taskvault/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims includes the registered JWT claims plus the owning user's id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// TokenManager issues and verifies signed session tokens. The signing secret
// and algorithm are fixed at construction; rotating the secret invalidates
// all outstanding tokens. The manager holds no mutable state and is safe for
// concurrent use.
type TokenManager struct {
	secret    []byte
	algorithm string
	ttl       time.Duration
}

// NewTokenManager constructs a TokenManager for the given HMAC secret,
// signing algorithm identifier (e.g. "HS256") and default token lifetime.
func NewTokenManager(secret []byte, algorithm string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: secret, algorithm: algorithm, ttl: ttl}
}

// TTL returns the default token lifetime.
func (m *TokenManager) TTL() time.Duration { return m.ttl }

// Issue mints a signed token carrying userID that expires after the
// manager's default TTL.
func (m *TokenManager) Issue(userID string) (string, error) {
	return m.IssueWithTTL(userID, m.ttl)
}

// IssueWithTTL mints a signed token carrying userID with an explicit
// lifetime.
func (m *TokenManager) IssueWithTTL(userID string, ttl time.Duration) (string, error) {
	method := jwt.GetSigningMethod(m.algorithm)
	if method == nil {
		return "", common.ErrorInternal
	}

	token := jwt.NewWithClaims(method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify validates tokenString and returns the user id it carries.
// Expired tokens yield common.ErrTokenExpired; anything else wrong with the
// token (malformed, bad signature, unexpected signing method) yields
// common.ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{m.algorithm}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
