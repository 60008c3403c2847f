package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ayush7932singh/HealthEase/internal/models"
)

// TokenTTL is the fixed lifetime of every issued token. There is no refresh;
// clients log in again once it lapses.
const TokenTTL = 24 * time.Hour

var (
	// ErrTokenInvalid covers bad signatures, unexpected algorithms and
	// payloads that cannot be decoded.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned only for tokens whose signature checked out.
	ErrTokenExpired = errors.New("token has expired")
)

// Claims is the token payload.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 JWTs for authenticated users.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a manager with the provided secret and issuer.
func NewTokenManager(secret, issuer string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    TokenTTL,
		now:    time.Now,
	}
}

// WithClock returns a copy of the manager that reads the current time from now.
func (t *TokenManager) WithClock(now func() time.Time) *TokenManager {
	cp := *t
	cp.now = now
	return &cp
}

// Generate issues a signed JWT string for the provided user.
func (t *TokenManager) Generate(user models.User) (string, error) {
	now := t.now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks the signature, then the issuer and expiry, and returns the
// decoded claims. The signature is checked first, so a token signed with a
// different secret is reported as invalid even when it is also stale.
func (t *TokenManager) Verify(raw string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	claims := &Claims{}
	token, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	})
	switch {
	case err == nil && token.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	default:
		return nil, ErrTokenInvalid
	}
}
