package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Jinxhater/LUXE/internal/domain"
	"github.com/Jinxhater/LUXE/internal/service"
	apperrors "github.com/Jinxhater/LUXE/pkg/errors"
	"github.com/Jinxhater/LUXE/pkg/httputil"
	"github.com/Jinxhater/LUXE/pkg/middleware"
)

// ContentTypeJSON rejects request bodies that declare a non-JSON content
// type. A missing Content-Type is accepted.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > 0 || r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct != "" && !strings.HasPrefix(ct, "application/json") {
				httputil.WriteJSON(w, http.StatusUnsupportedMediaType, httputil.Response{
					Error: "Content-Type must be application/json",
					Code:  "UNSUPPORTED_MEDIA_TYPE",
				})
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// sessionResolver adapts AuthService to the Authenticate middleware. Unknown
// and expired sessions resolve to an anonymous caller.
func sessionResolver(auth *service.AuthService) middleware.SessionResolver {
	return func(ctx context.Context, sessionID string) (*middleware.Identity, error) {
		s, err := auth.Session(ctx, sessionID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) {
				return nil, nil
			}
			return nil, err
		}
		return &middleware.Identity{
			UserID: s.UserID,
			Email:  s.Email,
			Name:   s.Name,
			Role:   s.Role,
		}, nil
	}
}

func actorFrom(r *http.Request) service.Actor {
	id := middleware.IdentityFromContext(r.Context())
	if id == nil {
		return service.Actor{}
	}
	return service.Actor{UserID: id.UserID, Admin: id.Role == domain.RoleAdmin}
}
