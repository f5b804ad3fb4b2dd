package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/Jinxhater/LUXE/pkg/errors"
	"github.com/Jinxhater/LUXE/pkg/httputil"
)

type contextKeyType string

const (
	identityKey  contextKeyType = "identity"
	sessionIDKey contextKeyType = "session_id"
)

// Identity is the authenticated caller resolved from a session cookie.
type Identity struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

// SessionResolver looks up the identity bound to a session ID. It returns an
// error wrapping apperrors.ErrNotFound when the session is unknown or expired.
type SessionResolver func(ctx context.Context, sessionID string) (*Identity, error)

// Authenticate reads the session cookie and, when it resolves, stores the
// caller's identity in the request context. Anonymous requests pass through
// untouched so routes may treat authentication as optional. Store failures
// other than a missing session are answered with 500.
func Authenticate(cookieName string, resolve SessionResolver, l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, cookie.Value)

			id, err := resolve(ctx, cookie.Value)
			switch {
			case err == nil && id != nil:
				ctx = context.WithValue(ctx, identityKey, id)
			case err != nil && !errors.Is(err, apperrors.ErrNotFound):
				httputil.WriteError(w, r, err, l)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IdentityFromContext(r.Context()) == nil {
			httputil.WriteError(w, r, apperrors.Unauthorized("Please login"), nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects anonymous requests with 401 and callers whose role is
// not listed with 403.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	roleSet := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := IdentityFromContext(r.Context())
			if id == nil {
				httputil.WriteError(w, r, apperrors.Unauthorized("Please login"), nil)
				return
			}
			if _, ok := roleSet[id.Role]; !ok {
				httputil.WriteError(w, r, apperrors.Forbidden("Unauthorized"), nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithIdentity returns a context carrying id. Tests and internal callers use
// it to act as a given user without a session.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the authenticated caller, or nil.
func IdentityFromContext(ctx context.Context) *Identity {
	if id, ok := ctx.Value(identityKey).(*Identity); ok {
		return id
	}
	return nil
}

// SessionIDFromContext returns the raw session cookie value, whether or not
// it resolved to an identity.
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// UserIDFromContext extracts the user ID from the request context.
func UserIDFromContext(ctx context.Context) string {
	if id := IdentityFromContext(ctx); id != nil {
		return id.UserID
	}
	return ""
}

// RoleFromContext extracts the user role from the request context.
func RoleFromContext(ctx context.Context) string {
	if id := IdentityFromContext(ctx); id != nil {
		return id.Role
	}
	return ""
}
