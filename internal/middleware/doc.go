// Package middleware provides HTTP middleware for the hangs API.
//
// # Available Middleware
//
//   - RequestID, Logger, Recovery, CORS: applied to every request
//   - Auth: bearer token validation, stores the caller's user id
//   - RemoveBlanks: drops empty-string fields from the "hang" payload
//   - RateLimit: token bucket per user or client address
//   - Metrics: per-route request counts and latency
//
// Middleware composes with Chain:
//
//	mux.Handle("PATCH /hangs/{id}", middleware.Chain(h,
//		middleware.Auth(tokens),
//		middleware.RemoveBlanks,
//	))
//
// After Auth, handlers read the caller with GetUserID(r.Context()).
package middleware
