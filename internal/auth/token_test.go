package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayush7932singh/HealthEase/internal/models"
)

var testUser = models.User{ID: 7, Name: "Asha", Email: "asha@example.com", Role: models.RolePatient}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestGenerateAndVerify(t *testing.T) {
	tm := NewTokenManager("secret", "healthease")

	raw, err := tm.Generate(testUser)
	require.NoError(t, err)

	claims, err := tm.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, models.RolePatient, claims.Role)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "healthease", claims.Issuer)
}

func TestPayloadCarriesOpenClaims(t *testing.T) {
	issued := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tm := NewTokenManager("secret", "healthease").WithClock(fixedClock(issued))

	raw, err := tm.Generate(testUser)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(raw, claims)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims["id"])
	assert.Equal(t, "asha@example.com", claims["email"])
	assert.Equal(t, "patient", claims["role"])
	assert.EqualValues(t, issued.Add(24*time.Hour).Unix(), claims["exp"])
}

func TestExpiryWindow(t *testing.T) {
	issued := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	issuer := NewTokenManager("secret", "healthease").WithClock(fixedClock(issued))
	raw, err := issuer.Generate(testUser)
	require.NoError(t, err)

	_, err = issuer.WithClock(fixedClock(issued.Add(23*time.Hour + 59*time.Minute))).Verify(raw)
	assert.NoError(t, err)

	_, err = issuer.WithClock(fixedClock(issued.Add(24*time.Hour + time.Minute))).Verify(raw)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestForeignSecretIsInvalidNotExpired(t *testing.T) {
	issued := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	foreign := NewTokenManager("someone-else", "healthease").WithClock(fixedClock(issued))
	raw, err := foreign.Generate(testUser)
	require.NoError(t, err)

	for _, at := range []time.Time{issued, issued.Add(48 * time.Hour)} {
		_, err := NewTokenManager("secret", "healthease").WithClock(fixedClock(at)).Verify(raw)
		assert.ErrorIs(t, err, ErrTokenInvalid)
		assert.NotErrorIs(t, err, ErrTokenExpired)
	}
}

func TestVerifyRejectsMalformedTokens(t *testing.T) {
	tm := NewTokenManager("secret", "healthease")
	for _, raw := range []string{"", "garbage", "a.b.c", strings.Repeat("x", 64)} {
		_, err := tm.Verify(raw)
		assert.ErrorIs(t, err, ErrTokenInvalid, raw)
	}
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "healthease",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = NewTokenManager("secret", "healthease").Verify(unsigned)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = NewTokenManager("secret", "healthease").Verify(hs512)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsOtherIssuer(t *testing.T) {
	raw, err := NewTokenManager("secret", "elsewhere").Generate(testUser)
	require.NoError(t, err)

	_, err = NewTokenManager("secret", "healthease").Verify(raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRequiresExpiry(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:           7,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "healthease"},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenManager("secret", "healthease").Verify(raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
