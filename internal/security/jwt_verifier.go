package security

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/elevatescholar/scholarship-api/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// JWTVerifier checks identity tokens signed either with a shared HS256 secret
// or with an RS256 key whose public half is configured as PEM.
type JWTVerifier struct {
	alg      string
	key      any
	issuer   string
	audience string
}

type VerifierConfig struct {
	Secret       string
	PublicKeyPEM string
	Issuer       string
	Audience     string
}

func NewJWTVerifier(cfg VerifierConfig) (*JWTVerifier, error) {
	v := &JWTVerifier{issuer: cfg.Issuer, audience: cfg.Audience}
	switch {
	case cfg.PublicKeyPEM != "":
		pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("parse JWT public key: %w", err)
		}
		v.alg, v.key = jwt.SigningMethodRS256.Alg(), pub
	case cfg.Secret != "":
		v.alg, v.key = jwt.SigningMethodHS256.Alg(), []byte(cfg.Secret)
	default:
		return nil, errors.New("jwt verifier: no secret or public key configured")
	}
	return v, nil
}

type identityClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (v *JWTVerifier) Verify(ctx context.Context, token string) (Principal, error) {
	if err := ctx.Err(); err != nil {
		return Principal{}, err
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{v.alg}), jwt.WithExpirationRequired()}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	parsed, err := jwt.ParseWithClaims(token, &identityClaims{}, func(t *jwt.Token) (any, error) {
		// prevent alg confusion
		if t.Method == nil || t.Method.Alg() != v.alg {
			return nil, ErrTokenInvalid
		}
		return v.key, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Principal{}, ErrTokenExpired
		}
		return Principal{}, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*identityClaims)
	if !ok || !parsed.Valid {
		return Principal{}, ErrTokenInvalid
	}

	email := domain.NormalizeEmail(claims.Email)
	if email == "" || !strings.Contains(email, "@") {
		return Principal{}, ErrTokenInvalid
	}
	return Principal{Email: email, Subject: claims.Subject}, nil
}
