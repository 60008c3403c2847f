package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/ayush7932singh/HealthEase/internal/auth"
	"github.com/ayush7932singh/HealthEase/internal/http/respond"
	"github.com/ayush7932singh/HealthEase/internal/models"
	"github.com/ayush7932singh/HealthEase/internal/storage"
)

const (
	msgTokenMissing = "Token is missing!"
	msgTokenInvalid = "Token is invalid!"
	msgTokenExpired = "Token has expired!"
	msgUserInvalid  = "User invalid!"
)

// TokenVerifier decodes a raw bearer token into its claims.
type TokenVerifier interface {
	Verify(raw string) (*auth.Claims, error)
}

// UserFinder resolves the user a token refers to.
type UserFinder interface {
	FindByID(ctx context.Context, id int64) (models.User, error)
}

type userKey struct{}

// RequireAuth rejects requests without a usable bearer token and stores the
// resolved user in the request context. Rejections are checked in order:
// missing token, invalid token, expired token, unknown user.
func RequireAuth(tokens TokenVerifier, users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				respond.Error(w, http.StatusUnauthorized, msgTokenMissing)
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					respond.Error(w, http.StatusUnauthorized, msgTokenExpired)
					return
				}
				respond.Error(w, http.StatusUnauthorized, msgTokenInvalid)
				return
			}

			user, err := users.FindByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					respond.Error(w, http.StatusUnauthorized, msgUserInvalid)
					return
				}
				log.Printf("auth: resolve user %d: %v", claims.UserID, err)
				respond.Error(w, http.StatusInternalServerError, "failed to resolve user")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the user stored by RequireAuth.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey{}).(models.User)
	return user, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
