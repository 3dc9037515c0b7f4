package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chat-nosql/internal/domain"
	jwtinfra "github.com/go-chat-nosql/internal/infrastructure/jwt"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity returns middleware that resolves the caller's identity from the
// Bearer JWT and injects it into the request context. A missing header means
// guest mode and passes through as Anonymous; a header that is present but
// invalid is rejected outright.
func Identity(provider *jwtinfra.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				ctx := context.WithValue(r.Context(), identityKey, domain.Anonymous)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			claims, err := provider.Verify(tokenStr)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, domain.Authenticated(claims.UserID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext extracts the resolved identity from the request
// context. Requests that bypassed the Identity middleware read as Anonymous.
func IdentityFromContext(ctx context.Context) domain.Identity {
	if id, ok := ctx.Value(identityKey).(domain.Identity); ok {
		return id
	}
	return domain.Anonymous
}
