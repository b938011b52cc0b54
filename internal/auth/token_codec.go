package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	// ErrMalformedToken is returned when a token cannot be parsed at all.
	ErrMalformedToken = errors.New("malformed token")
	// ErrBadSignature is returned when the token signature does not verify.
	ErrBadSignature = errors.New("invalid token signature")
	// ErrTokenExpired is returned when the token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the bag of claims carried inside a bearer token. The payload
// is exactly {sub, iat, exp}; nothing else is trusted or read.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenCodec issues and validates HS256 bearer tokens. It holds no mutable
// state beyond the read-only signing secret, so it is safe for concurrent use.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a codec with the given signing secret and fixed
// token lifetime.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the configured token lifetime.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue builds a signed token for the subject, valid from issuedAt for the
// configured TTL. There is no per-call TTL override.
func (c *TokenCodec) Issue(subject string, issuedAt time.Time) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Validate re-verifies the token signature and expiry and returns the
// claims. It does not compare the subject against anything; the caller
// holds the expected principal and does that comparison.
func (c *TokenCodec) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})

	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) {
			switch {
			case vErr.Errors&jwt.ValidationErrorMalformed != 0:
				return nil, ErrMalformedToken
			case vErr.Errors&jwt.ValidationErrorSignatureInvalid != 0,
				vErr.Errors&jwt.ValidationErrorUnverifiable != 0:
				return nil, ErrBadSignature
			case vErr.Errors&jwt.ValidationErrorExpired != 0:
				return nil, ErrTokenExpired
			}
		}
		return nil, ErrMalformedToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrBadSignature
	}

	return claims, nil
}

// ExtractSubject parses the token payload without verifying the signature
// and returns its subject. The authentication gate needs the username to
// load the principal before the token can be fully validated; the result
// must never be treated as authenticated until Validate succeeds.
func (c *TokenCodec) ExtractSubject(tokenString string) (string, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, &Claims{})
	if err != nil {
		return "", ErrMalformedToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return "", ErrMalformedToken
	}
	return claims.Subject, nil
}
