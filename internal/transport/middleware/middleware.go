// Package middleware holds the HTTP middleware of the debt recovery API:
// panic recovery, request IDs, access logging, CORS, authentication,
// rate limiting and action tracking.
package middleware

import "net/http"

// Middleware wraps an http.Handler. It has the shape chi's Router.Use
// expects.
type Middleware = func(http.Handler) http.Handler
