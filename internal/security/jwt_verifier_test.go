package security_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/elevatescholar/scholarship-api/internal/security"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func baseClaims(exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"email": "Student@Example.com",
		"sub":   "uid-1",
		"iss":   "https://issuer.example",
		"aud":   "elevate-scholar",
		"iat":   time.Now().Unix(),
		"exp":   exp.Unix(),
	}
}

func TestJWTVerifier_HS256(t *testing.T) {
	secret := []byte("supersecret")
	v, err := security.NewJWTVerifier(security.VerifierConfig{
		Secret:   string(secret),
		Issuer:   "https://issuer.example",
		Audience: "elevate-scholar",
	})
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		p, err := v.Verify(ctx, sign(t, jwt.SigningMethodHS256, secret, baseClaims(time.Now().Add(time.Hour))))
		require.NoError(t, err)
		assert.Equal(t, "student@example.com", p.Email)
		assert.Equal(t, "uid-1", p.Subject)
	})

	t.Run("expired token", func(t *testing.T) {
		_, err := v.Verify(ctx, sign(t, jwt.SigningMethodHS256, secret, baseClaims(time.Now().Add(-time.Minute))))
		assert.ErrorIs(t, err, security.ErrTokenExpired)
	})

	t.Run("wrong signature", func(t *testing.T) {
		_, err := v.Verify(ctx, sign(t, jwt.SigningMethodHS256, []byte("other"), baseClaims(time.Now().Add(time.Hour))))
		assert.ErrorIs(t, err, security.ErrTokenInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		c := baseClaims(time.Now().Add(time.Hour))
		c["iss"] = "https://evil.example"
		_, err := v.Verify(ctx, sign(t, jwt.SigningMethodHS256, secret, c))
		assert.ErrorIs(t, err, security.ErrTokenInvalid)
	})

	t.Run("wrong audience", func(t *testing.T) {
		c := baseClaims(time.Now().Add(time.Hour))
		c["aud"] = "someone-else"
		_, err := v.Verify(ctx, sign(t, jwt.SigningMethodHS256, secret, c))
		assert.ErrorIs(t, err, security.ErrTokenInvalid)
	})

	t.Run("missing email", func(t *testing.T) {
		c := baseClaims(time.Now().Add(time.Hour))
		delete(c, "email")
		_, err := v.Verify(ctx, sign(t, jwt.SigningMethodHS256, secret, c))
		assert.ErrorIs(t, err, security.ErrTokenInvalid)
	})

	t.Run("missing exp", func(t *testing.T) {
		c := baseClaims(time.Now())
		delete(c, "exp")
		_, err := v.Verify(ctx, sign(t, jwt.SigningMethodHS256, secret, c))
		assert.ErrorIs(t, err, security.ErrTokenInvalid)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := v.Verify(ctx, "not.a.jwt")
		assert.ErrorIs(t, err, security.ErrTokenInvalid)
	})

	t.Run("alg none", func(t *testing.T) {
		tok := sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, baseClaims(time.Now().Add(time.Hour)))
		_, err := v.Verify(ctx, tok)
		assert.ErrorIs(t, err, security.ErrTokenInvalid)
	})
}

func TestJWTVerifier_RS256(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	v, err := security.NewJWTVerifier(security.VerifierConfig{PublicKeyPEM: string(pemKey)})
	require.NoError(t, err)

	p, err := v.Verify(context.Background(), sign(t, jwt.SigningMethodRS256, priv, baseClaims(time.Now().Add(time.Hour))))
	require.NoError(t, err)
	assert.Equal(t, "student@example.com", p.Email)

	// an HS256 token signed with the public key bytes must not pass
	forged := sign(t, jwt.SigningMethodHS256, pemKey, baseClaims(time.Now().Add(time.Hour)))
	_, err = v.Verify(context.Background(), forged)
	assert.ErrorIs(t, err, security.ErrTokenInvalid)
}

func TestNewJWTVerifier_RequiresKey(t *testing.T) {
	_, err := security.NewJWTVerifier(security.VerifierConfig{})
	assert.Error(t, err)

	_, err = security.NewJWTVerifier(security.VerifierConfig{PublicKeyPEM: "garbage"})
	assert.Error(t, err)
}
