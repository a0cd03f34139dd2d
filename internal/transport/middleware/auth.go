package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/changetrail/internal/domain"
	"github.com/heartmarshall/changetrail/pkg/ctxutil"
)

//go:generate moq -out token_validator_mock_test.go -pkg middleware . tokenValidator

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Actor, error)
}

// Auth sets the acting identity of the request before any handler runs.
// A request without a bearer token stays anonymous; change entries it
// causes carry no actor. An invalid token is rejected with 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			actor, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithActor(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireStaff rejects anonymous requests with 401 and non-staff actors
// with 403.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch err := CheckStaff(r.Context()); err {
		case nil:
			next.ServeHTTP(w, r)
		case domain.ErrUnauthorized:
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			http.Error(w, "forbidden", http.StatusForbidden)
		}
	})
}

// CheckStaff returns domain.ErrUnauthorized when the context has no actor
// and domain.ErrForbidden when the actor is not staff.
func CheckStaff(ctx context.Context) error {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsStaffCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
