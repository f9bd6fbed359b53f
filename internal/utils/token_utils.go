package utils

import (
	"errors"
	"slices"
	"time"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// TokenAudience is the audience every editor session token is issued for.
const TokenAudience = "entity-editor"

// ErrTokenSubjectMissing is returned for otherwise valid tokens that name no user.
var ErrTokenSubjectMissing = errors.New("token has no subject")

// SessionClaims identify the user behind an editor session. Permissions is the set the
// user held at login; authorization still asks the permission service.
type SessionClaims struct {
	Username    string   `json:"username,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// HasPermission reports whether the token was issued with permission.
func (c *SessionClaims) HasPermission(permission string) bool {
	return slices.Contains(c.Permissions, permission)
}

// GenerateJWT signs an HS256 session token for user.
func GenerateJWT(user domain.User, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Username:    user.Username,
		Permissions: slices.Clone(user.Permissions),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.UserID,
			Audience:  jwt.ClaimStrings{TokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseAndValidateJWT checks the signature, expiry and audience of tokenString and
// returns its claims. Only HS256 tokens with a subject are accepted.
func ParseAndValidateJWT(tokenString string, secretKey string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return []byte(secretKey), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(TokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, ErrTokenSubjectMissing
	}
	return claims, nil
}
