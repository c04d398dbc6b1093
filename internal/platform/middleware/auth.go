package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"notary/internal/platform/token"
)

// TokenValidator validates bearer tokens from the Authorization header.
type TokenValidator interface {
	Validate(tokenString string) (*token.Claims, error)
}

type contextKeyCaller struct{}

// ContextKeyCaller is exported for tests that need to seed a request context.
var ContextKeyCaller = contextKeyCaller{}

// GetCaller retrieves the authenticated caller address from the context.
// Empty when the request was not authenticated.
func GetCaller(ctx context.Context) string {
	caller, ok := ctx.Value(ContextKeyCaller).(string)
	if !ok {
		return ""
	}
	return caller
}

// WithCaller stores a caller address in the context; used by tests and by
// RequireAuth.
func WithCaller(ctx context.Context, caller string) context.Context {
	return context.WithValue(ctx, ContextKeyCaller, caller)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller address in the request context.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authHeader := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				logger.WarnContext(ctx, "unauthorized access - missing bearer token",
					"request_id", GetRequestID(ctx),
				)
				writeUnauthorized(w)
				return
			}

			claims, err := validator.Validate(raw)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"request_id", GetRequestID(ctx),
					"error", err,
				)
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(ctx, claims.Address)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
