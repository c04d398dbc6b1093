package testutil

import (
	"net/http"

	"notary/internal/platform/middleware"
)

// WithCaller stamps an authenticated caller address onto the request context,
// simulating what RequireAuth does after validating a bearer token.
func WithCaller(req *http.Request, address string) *http.Request {
	return req.WithContext(middleware.WithCaller(req.Context(), address))
}
