package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenService issues and verifies HS256-signed session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue embeds the caller-supplied payload as claims and signs it with a
// fixed expiry. The payload is not inspected: whoever holds this endpoint can
// mint a token for any identity, so the surrounding context must have proven
// identity ownership first (see the login path).
func (s *TokenService) Issue(claims map[string]any) (string, error) {
	now := time.Now()
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(s.ttl).Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token. Missing, malformed, expired and
// badly-signed tokens all map to ErrInvalidToken.
func (s *TokenService) Verify(token string) (map[string]any, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
